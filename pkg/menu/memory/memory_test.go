package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"bistro/pkg/menu"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	in := menu.DishInput{Name: "Soupe", Description: "a l'oignon", Category: menu.CategoryEntree, Price: 7.5, Quantity: 4}
	d, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Fatal("expected a generated id")
	}
	got, err := repo.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := menu.Dish{ID: d.ID, Name: "Soupe", Description: "a l'oignon", Category: menu.CategoryEntree, Price: 7.5, Quantity: 4}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	updated, err := repo.UpdateQuantity(ctx, d.ID, 1)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", updated.Quantity)
	}
	if err := repo.Delete(ctx, d.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, d.ID); !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCreateAlwaysGeneratesID(t *testing.T) {
	ctx := context.Background()
	repo := New()
	a, _ := repo.Create(ctx, menu.DishInput{Name: "A", Category: menu.CategoryPlat})
	b, _ := repo.Create(ctx, menu.DishInput{Name: "A", Category: menu.CategoryPlat})
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both %s", a.ID)
	}
}

func TestListAvailableOnly(t *testing.T) {
	ctx := context.Background()
	seed := []menu.Dish{
		{ID: uuid.New(), Name: "one", Quantity: 2},
		{ID: uuid.New(), Name: "two", Quantity: 0},
		{ID: uuid.New(), Name: "three", Quantity: 5},
		{ID: uuid.New(), Name: "four", Quantity: 0},
	}
	repo := New(seed...)

	tests := []struct {
		name          string
		availableOnly bool
		want          []string
	}{
		{"all", false, []string{"one", "two", "three", "four"}},
		{"available", true, []string{"one", "three"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.List(ctx, tt.availableOnly)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(list) != len(tt.want) {
				t.Fatalf("expected %d dishes, got %d", len(tt.want), len(list))
			}
			for i, d := range list {
				if d.Name != tt.want[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.want[i], d.Name)
				}
			}
		})
	}
}

func TestMissingDish(t *testing.T) {
	ctx := context.Background()
	repo := New(menu.Dish{ID: uuid.New(), Name: "kept", Quantity: 1})
	id := uuid.New()

	if _, err := repo.Get(ctx, id); !errors.Is(err, menu.ErrNotFound) {
		t.Errorf("get: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.UpdateQuantity(ctx, id, 3); !errors.Is(err, menu.ErrNotFound) {
		t.Errorf("update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, menu.ErrNotFound) {
		t.Errorf("delete: expected ErrNotFound, got %v", err)
	}
	list, _ := repo.List(ctx, false)
	if len(list) != 1 {
		t.Errorf("expected store untouched, got %d dishes", len(list))
	}
}

func TestSeedIsCopied(t *testing.T) {
	ctx := context.Background()
	seed := []menu.Dish{{ID: uuid.New(), Name: "x", Quantity: 1}}
	repo := New(seed...)
	if _, err := repo.UpdateQuantity(ctx, seed[0].ID, 0); err != nil {
		t.Fatalf("update: %v", err)
	}
	if seed[0].Quantity != 1 {
		t.Fatal("repository mutated the caller's seed slice")
	}
}

// Run with -race.
func TestConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	const workers = 50
	kept := menu.Dish{ID: uuid.New(), Name: "kept", Quantity: 1}
	repo := New(kept)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := repo.Create(ctx, menu.DishInput{Name: "tmp", Category: menu.CategoryPlat, Quantity: 1})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			if _, err := repo.UpdateQuantity(ctx, kept.ID, i); err != nil {
				t.Errorf("update: %v", err)
			}
			if _, err := repo.List(ctx, true); err != nil {
				t.Errorf("list: %v", err)
			}
			if i%2 == 0 {
				if err := repo.Delete(ctx, d.ID); err != nil {
					t.Errorf("delete: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	list, _ := repo.List(ctx, false)
	if want := 1 + workers/2; len(list) != want {
		t.Fatalf("expected %d dishes, got %d", want, len(list))
	}
	got, err := repo.Get(ctx, kept.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quantity < 0 || got.Quantity >= workers {
		t.Fatalf("quantity %d was not written by any worker", got.Quantity)
	}
}
