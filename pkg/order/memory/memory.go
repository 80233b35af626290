// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"bistro/pkg/order"
)

// Repository provides an in-memory implementation of order.Repository.
// Orders are kept in insertion order.
type Repository struct {
	mu     sync.RWMutex
	orders []order.Order
}

// New creates a new in-memory repository holding the given orders.
// Seed identifiers and statuses are kept as is.
func New(seed ...order.Order) *Repository {
	orders := make([]order.Order, len(seed))
	for i, o := range seed {
		orders[i] = clone(o)
	}
	return &Repository{orders: orders}
}

func clone(o order.Order) order.Order {
	o.Dishes = slices.Clone(o.Dishes)
	if o.Dishes == nil {
		o.Dishes = []uuid.UUID{}
	}
	return o
}

// index returns the position of the order with the given id, or -1.
// Callers must hold r.mu.
func (r *Repository) index(id uuid.UUID) int {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// Create stores a new open order under a freshly generated ID.
func (r *Repository) Create(ctx context.Context, in order.Input) (order.Order, error) {
	o := clone(order.Order{
		ID:          uuid.New(),
		TableNumber: in.TableNumber,
		Status:      false,
		Dishes:      in.Dishes,
	})
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	return clone(o), nil
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		return order.Order{}, order.ErrNotFound
	}
	return clone(r.orders[i]), nil
}

// List returns all orders, or order.ErrEmpty when there are none.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.orders) == 0 {
		return nil, order.ErrEmpty
	}
	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, clone(o))
	}
	return out, nil
}

// Update overwrites the status and dish list of an existing order.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, u order.Update) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return order.Order{}, order.ErrNotFound
	}
	r.orders[i].Status = u.Status
	r.orders[i].Dishes = clone(order.Order{Dishes: u.Dishes}).Dishes
	return clone(r.orders[i]), nil
}

// Delete removes an order by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return order.ErrNotFound
	}
	r.orders = slices.Delete(r.orders, i, i+1)
	return nil
}
