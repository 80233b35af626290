package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category classifies a dish on the menu.
type Category string

const (
	CategoryAperitif Category = "aperitif"
	CategoryEntree   Category = "entree"
	CategoryPlat     Category = "plat"
	CategoryDessert  Category = "dessert"
	CategoryBoisson  Category = "boisson"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAperitif, CategoryEntree, CategoryPlat, CategoryDessert, CategoryBoisson:
		return true
	}
	return false
}

// Dish represents an item on the menu. Quantity is the remaining stock.
type Dish struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

// Available reports whether the dish still has stock.
func (d Dish) Available() bool {
	return d.Quantity != 0
}

// DishInput holds the client-settable fields of a new dish.
// The identifier is always assigned by the repository.
type DishInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
}

// Validate checks the input the way the HTTP boundary expects it.
// Repositories never call it.
func (in DishInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if !in.Category.Valid() {
		return fmt.Errorf("unknown category %q", in.Category)
	}
	if in.Price < 0 {
		return fmt.Errorf("price must be non-negative, got %v", in.Price)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("quantity must be non-negative, got %d", in.Quantity)
	}
	return nil
}

// Repository defines behavior for storing the menu.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (Dish, error)
	List(ctx context.Context, availableOnly bool) ([]Dish, error)
	Create(ctx context.Context, in DishInput) (Dish, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (Dish, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrNotFound indicates the requested dish does not exist.
var ErrNotFound = errors.New("dish not found")
