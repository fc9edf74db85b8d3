package config

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Catalog справочные данные салона: филиалы, слоты, услуги и скидки
//
// Пример TOML:
//
//	[[catalog.branches]]
//	key = "Branch1"
//	label = "Branch1"
//	[catalog.branches.discounts]
//	Haircut = 10
//
//	[[catalog.services]]
//	name = "Haircut"
//	price = 200
type Catalog struct {
	Branches []BranchConfig  `toml:"branches"`
	Slots    []SlotConfig    `toml:"slots"`
	Services []ServiceConfig `toml:"services"`
}

type BranchConfig struct {
	Key       string         `toml:"key"`
	Label     string         `toml:"label"`
	Discounts map[string]int `toml:"discounts"`
}

type SlotConfig struct {
	Key   string `toml:"key"`
	Label string `toml:"label"`
}

type ServiceConfig struct {
	Name  string `toml:"name"`
	Price int64  `toml:"price"`
}

// Validate проверяет уникальность ключей, цены и диапазон скидок
func (c Catalog) Validate() error {
	if len(c.Branches) == 0 {
		return fmt.Errorf("%w: catalog must contain at least one branch", ErrInvalidConfig)
	}
	if len(c.Slots) == 0 {
		return fmt.Errorf("%w: catalog must contain at least one slot", ErrInvalidConfig)
	}
	if len(c.Services) == 0 {
		return fmt.Errorf("%w: catalog must contain at least one service", ErrInvalidConfig)
	}

	services := make(map[string]struct{}, len(c.Services))
	for _, s := range c.Services {
		if s.Name == "" {
			return fmt.Errorf("%w: service name is required", ErrInvalidConfig)
		}
		if s.Price < 0 {
			return fmt.Errorf("%w: service %q has negative price", ErrInvalidConfig, s.Name)
		}
		if _, dup := services[s.Name]; dup {
			return fmt.Errorf("%w: duplicate service %q", ErrInvalidConfig, s.Name)
		}
		services[s.Name] = struct{}{}
	}

	branches := make(map[string]struct{}, len(c.Branches))
	for _, b := range c.Branches {
		if b.Key == "" {
			return fmt.Errorf("%w: branch key is required", ErrInvalidConfig)
		}
		if _, dup := branches[b.Key]; dup {
			return fmt.Errorf("%w: duplicate branch %q", ErrInvalidConfig, b.Key)
		}
		branches[b.Key] = struct{}{}

		for name, d := range b.Discounts {
			if d < domain.MinDiscountPercent || d > domain.MaxDiscountPercent {
				return fmt.Errorf("%w: branch %q discount for %q must be in 0..100", ErrInvalidConfig, b.Key, name)
			}
		}
	}

	slots := make(map[string]struct{}, len(c.Slots))
	for _, s := range c.Slots {
		if s.Key == "" {
			return fmt.Errorf("%w: slot key is required", ErrInvalidConfig)
		}
		if _, dup := slots[s.Key]; dup {
			return fmt.Errorf("%w: duplicate slot %q", ErrInvalidConfig, s.Key)
		}
		slots[s.Key] = struct{}{}
	}

	return nil
}

// DefaultCatalog каталог из исходной версии салона: 4 филиала, 3 слота, 8 услуг
func DefaultCatalog() Catalog {
	return Catalog{
		Branches: []BranchConfig{
			{Key: "Branch1", Label: "Branch1", Discounts: map[string]int{"Haircut": 10, "Facial": 15, "Spa": 20, "Manicure": 5}},
			{Key: "Branch2", Label: "Branch2", Discounts: map[string]int{"Manicure": 10, "Pedicure": 15, "Hair Coloring": 25, "Massage": 10}},
			{Key: "Branch3", Label: "Branch3", Discounts: map[string]int{"Haircut": 5, "Facial": 10, "Spa": 10, "Pedicure": 20}},
			{Key: "Branch4", Label: "Branch4", Discounts: map[string]int{"Manicure": 15, "Hair Coloring": 30, "Massage": 20, "Body Scrub": 25}},
		},
		Slots: []SlotConfig{
			{Key: "morning", Label: "Morning (9AM - 12PM)"},
			{Key: "evening", Label: "Evening (4PM - 7PM)"},
			{Key: "night", Label: "Night (8PM - 10PM)"},
		},
		Services: []ServiceConfig{
			{Name: "Haircut", Price: 200},
			{Name: "Facial", Price: 500},
			{Name: "Spa", Price: 1000},
			{Name: "Manicure", Price: 300},
			{Name: "Pedicure", Price: 400},
			{Name: "Hair Coloring", Price: 800},
			{Name: "Massage", Price: 600},
			{Name: "Body Scrub", Price: 700},
		},
	}
}
