// Package memory implements an in-memory menu repository.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"bistro/pkg/menu"
)

// Repository provides an in-memory implementation of menu.Repository.
// Dishes are kept in insertion order.
type Repository struct {
	mu     sync.RWMutex
	dishes []menu.Dish
}

// New creates a new in-memory repository holding the given dishes.
// Seed identifiers are kept as is.
func New(seed ...menu.Dish) *Repository {
	dishes := make([]menu.Dish, len(seed))
	copy(dishes, seed)
	return &Repository{dishes: dishes}
}

// index returns the position of the dish with the given id, or -1.
// Callers must hold r.mu.
func (r *Repository) index(id uuid.UUID) int {
	for i := range r.dishes {
		if r.dishes[i].ID == id {
			return i
		}
	}
	return -1
}

// Get retrieves a dish by ID.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (menu.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		return menu.Dish{}, menu.ErrNotFound
	}
	return r.dishes[i], nil
}

// List returns the menu. With availableOnly set, dishes out of stock are left out.
func (r *Repository) List(ctx context.Context, availableOnly bool) ([]menu.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]menu.Dish, 0, len(r.dishes))
	for _, d := range r.dishes {
		if availableOnly && !d.Available() {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// Create appends a dish under a freshly generated ID.
func (r *Repository) Create(ctx context.Context, in menu.DishInput) (menu.Dish, error) {
	d := menu.Dish{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dishes = append(r.dishes, d)
	return d, nil
}

// UpdateQuantity sets the remaining stock of a dish.
func (r *Repository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (menu.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return menu.Dish{}, menu.ErrNotFound
	}
	r.dishes[i].Quantity = quantity
	return r.dishes[i], nil
}

// Delete removes a dish by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return menu.ErrNotFound
	}
	r.dishes = slices.Delete(r.dishes, i, i+1)
	return nil
}
