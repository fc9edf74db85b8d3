package quote_services

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Request модель запроса прайса филиала
type Request struct {
	BranchKey string
}

// Response прайс филиала: каждая услуга с базовой ценой, скидкой и ценой после скидки
type Response struct {
	Branch domain.Branch
	Lines  []domain.PricedService
}
