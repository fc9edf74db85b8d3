package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Service справочник салона. Загружается один раз при старте, дальше только чтение,
// поэтому синхронизация не нужна
type Service struct {
	branches []domain.Branch
	slots    []domain.Slot
	services []domain.Service

	branchIdx  map[string]int
	slotIdx    map[string]int
	serviceIdx map[string]int
}

// NewService создает каталог из конфигурации
func NewService(cfg config.Catalog) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		branches:   make([]domain.Branch, 0, len(cfg.Branches)),
		slots:      make([]domain.Slot, 0, len(cfg.Slots)),
		services:   make([]domain.Service, 0, len(cfg.Services)),
		branchIdx:  make(map[string]int, len(cfg.Branches)),
		slotIdx:    make(map[string]int, len(cfg.Slots)),
		serviceIdx: make(map[string]int, len(cfg.Services)),
	}

	for _, b := range cfg.Branches {
		discounts := make(map[string]int, len(b.Discounts))
		for name, d := range b.Discounts {
			discounts[name] = d
		}
		label := b.Label
		if label == "" {
			label = b.Key
		}
		s.branchIdx[b.Key] = len(s.branches)
		s.branches = append(s.branches, domain.Branch{Key: b.Key, Label: label, Discounts: discounts})
	}

	for _, sl := range cfg.Slots {
		label := sl.Label
		if label == "" {
			label = sl.Key
		}
		s.slotIdx[sl.Key] = len(s.slots)
		s.slots = append(s.slots, domain.Slot{Key: sl.Key, Label: label})
	}

	for _, svc := range cfg.Services {
		s.serviceIdx[svc.Name] = len(s.services)
		s.services = append(s.services, domain.Service{Name: svc.Name, BasePrice: svc.Price})
	}

	return s, nil
}

// ListBranches возвращает филиалы в порядке конфигурации
func (s *Service) ListBranches() []domain.Branch {
	out := make([]domain.Branch, len(s.branches))
	for i, b := range s.branches {
		out[i] = copyBranch(b)
	}
	return out
}

// ListSlots возвращает слоты в порядке конфигурации
func (s *Service) ListSlots() []domain.Slot {
	return append([]domain.Slot(nil), s.slots...)
}

// ListServices возвращает услуги в порядке конфигурации
func (s *Service) ListServices() []domain.Service {
	return append([]domain.Service(nil), s.services...)
}

func (s *Service) GetBranch(key string) (domain.Branch, error) {
	i, ok := s.branchIdx[key]
	if !ok {
		return domain.Branch{}, fmt.Errorf("%w: %q", ErrBranchNotFound, key)
	}
	return copyBranch(s.branches[i]), nil
}

func (s *Service) GetSlot(key string) (domain.Slot, error) {
	i, ok := s.slotIdx[key]
	if !ok {
		return domain.Slot{}, fmt.Errorf("%w: %q", ErrSlotNotFound, key)
	}
	return s.slots[i], nil
}

func (s *Service) GetService(name string) (domain.Service, error) {
	i, ok := s.serviceIdx[name]
	if !ok {
		return domain.Service{}, fmt.Errorf("%w: %q", ErrServiceNotFound, name)
	}
	return s.services[i], nil
}

// DiscountFor возвращает скидку филиала на услугу в процентах.
// В отличие от остальных lookup-методов не падает: отсутствие записи означает скидку 0
func (s *Service) DiscountFor(branchKey, serviceName string) int {
	i, ok := s.branchIdx[branchKey]
	if !ok {
		return 0
	}
	return s.branches[i].DiscountFor(serviceName)
}

func copyBranch(b domain.Branch) domain.Branch {
	discounts := make(map[string]int, len(b.Discounts))
	for k, v := range b.Discounts {
		discounts[k] = v
	}
	b.Discounts = discounts
	return b
}
