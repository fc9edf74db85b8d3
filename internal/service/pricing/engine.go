package pricing

import "github.com/m04kA/SMC-SalonService/internal/domain"

// DiscountSource источник скидок филиалов (каталог)
type DiscountSource interface {
	DiscountFor(branchKey, serviceName string) int
}

// Engine считает цены со скидкой филиала.
// Скидка округляется вниз: base - floor(base*d/100), всё в целых числах
type Engine struct {
	discounts DiscountSource
}

// NewEngine создает новый экземпляр движка цен
func NewEngine(discounts DiscountSource) *Engine {
	return &Engine{discounts: discounts}
}

// PriceFor цена услуги в филиале с учетом скидки
func (e *Engine) PriceFor(branchKey string, service domain.Service) int64 {
	return e.Price(branchKey, service).FinalPrice
}

// Price возвращает полную строку расчета: базовая цена, скидка, итог
func (e *Engine) Price(branchKey string, service domain.Service) domain.PricedService {
	d := e.discounts.DiscountFor(branchKey, service.Name)
	return domain.PricedService{
		Name:       service.Name,
		BasePrice:  service.BasePrice,
		Discount:   d,
		FinalPrice: applyDiscount(service.BasePrice, d),
	}
}

// Quote считает цены для набора услуг, сохраняя порядок
func (e *Engine) Quote(branchKey string, services []domain.Service) []domain.PricedService {
	out := make([]domain.PricedService, len(services))
	for i, s := range services {
		out[i] = e.Price(branchKey, s)
	}
	return out
}

// TotalFor сумма цен со скидкой. Пустой набор дает 0
func (e *Engine) TotalFor(branchKey string, services []domain.Service) int64 {
	var total int64
	for _, s := range services {
		total += e.PriceFor(branchKey, s)
	}
	return total
}

// Sum сумма уже посчитанных строк
func Sum(lines []domain.PricedService) int64 {
	var total int64
	for _, l := range lines {
		total += l.FinalPrice
	}
	return total
}

func applyDiscount(base int64, percent int) int64 {
	if percent <= 0 {
		return base
	}
	if percent > domain.MaxDiscountPercent {
		percent = domain.MaxDiscountPercent
	}
	// base неотрицательна, поэтому целочисленное деление совпадает с floor
	return base - base*int64(percent)/100
}
