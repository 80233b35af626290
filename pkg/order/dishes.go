package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bistro/pkg/menu"
)

// DishLookup finds a single dish on the menu.
type DishLookup interface {
	Get(ctx context.Context, id uuid.UUID) (menu.Dish, error)
}

// ResolveDishes returns the full menu records referenced by an order, in
// the order's sequence and with duplicates kept.
//
// References to dishes no longer on the menu are skipped and reported in
// missing. Any other lookup failure aborts the resolution.
func ResolveDishes(ctx context.Context, orders Repository, dishes DishLookup, id uuid.UUID) (resolved []menu.Dish, missing []uuid.UUID, err error) {
	o, err := orders.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	resolved = make([]menu.Dish, 0, len(o.Dishes))
	for _, dishID := range o.Dishes {
		d, err := dishes.Get(ctx, dishID)
		if errors.Is(err, menu.ErrNotFound) {
			missing = append(missing, dishID)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("lookup dish %s: %w", dishID, err)
		}
		resolved = append(resolved, d)
	}
	return resolved, missing, nil
}
