package domain

// Booking constants
const (
	// BookingIDBaseline первые номера зарезервированы, первая бронь получает 1001
	BookingIDBaseline = 1000

	// VisitOffsetDays бронь действует через два дня после подтверждения
	VisitOffsetDays = 2
)

// Business validation constants
const (
	MinRating             = 1.0
	MaxRating             = 5.0
	MinDiscountPercent    = 0
	MaxDiscountPercent    = 100
	MaxCustomerNameLength = 100
	MaxReviewLength       = 1000
	MaxServicesPerBooking = 20
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
