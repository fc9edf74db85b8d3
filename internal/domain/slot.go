package domain

// Slot represents a named time window offered for booking. It carries no date
type Slot struct {
	Key   string
	Label string
}
