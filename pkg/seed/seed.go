// Package seed holds the sample menu and orders loaded at startup.
package seed

import (
	"github.com/google/uuid"

	"bistro/pkg/menu"
	"bistro/pkg/order"
)

var (
	HamburgerID   = uuid.MustParse("7ab35298-c4e4-4899-9c52-8249cbaaf064")
	GastronomieID = uuid.MustParse("242dd9b0-bd9a-4974-979e-df006fbc353a")
	Table9OrderID = uuid.MustParse("7b14ad1d-ff74-435a-9a99-9ec11433f31a")
)

// Dishes returns the sample menu.
func Dishes() []menu.Dish {
	return []menu.Dish{
		{
			ID:          HamburgerID,
			Name:        "Hamburger et ses frites",
			Description: "Un petit menu pour les enfants de moins de 10ans",
			Category:    menu.CategoryPlat,
			Price:       10,
			Quantity:    3,
		},
		{
			ID:          GastronomieID,
			Name:        "Plat gastronomique",
			Description: "Un petit plat pour une belle gastro",
			Category:    menu.CategoryPlat,
			Price:       50,
			Quantity:    10,
		},
	}
}

// Orders returns the sample orders.
func Orders() []order.Order {
	return []order.Order{
		{
			ID:          Table9OrderID,
			TableNumber: 9,
			Status:      false,
			Dishes:      []uuid.UUID{GastronomieID},
		},
	}
}
