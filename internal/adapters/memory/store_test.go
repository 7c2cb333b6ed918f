package memory

import (
	"context"
	"errors"
	"testing"

	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/ports"
)

func TestRunInTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	menu := &domain.Menu{ID: "m1", Name: "Carbonara", Stock: 10}
	if err := store.Menus().Create(ctx, menu); err != nil {
		t.Fatal(err)
	}

	failure := errors.New("boom")
	err := store.RunInTransaction(ctx, func(tx ports.Store) error {
		if ok, err := tx.Menus().DecrementStock(ctx, "m1", 4); err != nil || !ok {
			t.Fatalf("decrement inside tx: ok=%v err=%v", ok, err)
		}
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("err = %v, want boom", err)
	}

	got, err := store.Menus().Get(ctx, "m1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Stock != 10 {
		t.Errorf("stock after rollback = %d, want 10", got.Stock)
	}
}

func TestDecrementStockGuard(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	if err := store.Menus().Create(ctx, &domain.Menu{ID: "m1", Stock: 3}); err != nil {
		t.Fatal(err)
	}

	if ok, _ := store.Menus().DecrementStock(ctx, "m1", 5); ok {
		t.Error("decrement beyond stock accepted")
	}
	if ok, _ := store.Menus().DecrementStock(ctx, "missing", 1); ok {
		t.Error("decrement of unknown menu accepted")
	}
	if ok, _ := store.Menus().DecrementStock(ctx, "m1", 3); !ok {
		t.Error("exact decrement rejected")
	}
	got, _ := store.Menus().Get(ctx, "m1")
	if got.Stock != 0 {
		t.Errorf("stock = %d, want 0", got.Stock)
	}
}
