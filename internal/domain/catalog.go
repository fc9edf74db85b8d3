package domain

// Service услуга салона с базовой ценой
type Service struct {
	Name      string
	BasePrice int64
}

// Branch represents a physical salon location with its own discount schedule
type Branch struct {
	Key       string
	Label     string
	Discounts map[string]int // service name -> percentage off
}

// DiscountFor returns the discount for a service, 0 if the branch has no entry for it
func (b *Branch) DiscountFor(serviceName string) int {
	if b == nil {
		return 0
	}
	return b.Discounts[serviceName]
}

// PricedService услуга с зафиксированной ценой со скидкой
type PricedService struct {
	Name       string
	BasePrice  int64
	Discount   int
	FinalPrice int64
}
