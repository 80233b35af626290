package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Order represents a table's order. Status is false while the order is
// open and true once it has been served. Dishes holds menu dish IDs and
// may contain duplicates.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	TableNumber int         `json:"table_number"`
	Status      bool        `json:"status"`
	Dishes      []uuid.UUID `json:"dishes"`
}

// Input holds the client-settable fields of a new order.
type Input struct {
	TableNumber int         `json:"table_number"`
	Dishes      []uuid.UUID `json:"dishes"`
}

// Update replaces the status and the whole dish list of an order.
type Update struct {
	Status bool
	Dishes []uuid.UUID
}

// Repository defines behavior for storing orders.
type Repository interface {
	Create(ctx context.Context, in Input) (Order, error)
	Get(ctx context.Context, id uuid.UUID) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, id uuid.UUID, u Update) (Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var (
	// ErrNotFound indicates the requested order does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrEmpty is returned by List when there are no orders at all.
	ErrEmpty = errors.New("no orders")
)
