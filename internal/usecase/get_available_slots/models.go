package get_available_slots

import "time"

// Request модель запроса на получение слотов
type Request struct {
	BranchKey string // Ключ филиала (опционально)
}

// Response модель ответа со списком слотов
type Response struct {
	BranchKey string    // Филиал, если был указан
	VisitDate time.Time // Дата визита при бронировании сейчас
	Slots     []Slot
}

// Slot модель временного слота
type Slot struct {
	Key   string // Ключ слота, передается при бронировании
	Label string // Отображаемое время, например "Morning (9AM - 12PM)"
}
