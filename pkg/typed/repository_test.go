package typed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/agenda/pkg/adapters/memory"
	"github.com/aretw0/agenda/pkg/core"
	"github.com/aretw0/agenda/pkg/typed"
)

type profile struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestTypedRepository(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := typed.NewRepository[profile](store)

	// 1. Save
	rec := &typed.Record[profile]{Key: "alice", Data: profile{Name: "Alice", Age: 30}}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if rec.Saver == nil {
		t.Error("expected Save to attach the repository as saver")
	}

	// 2. Get
	got, err := repo.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Data != (profile{Name: "Alice", Age: 30}) {
		t.Errorf("unexpected data: %+v", got.Data)
	}

	// 3. Active record save through the attached saver
	got.Data.Age = 31
	if err := got.Save(ctx); err != nil {
		t.Fatalf("record Save failed: %v", err)
	}
	again, _ := repo.Get(ctx, "alice")
	if again.Data.Age != 31 {
		t.Errorf("expected age 31, got %d", again.Data.Age)
	}

	// 4. Delete
	if err := repo.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Get(ctx, "alice"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTypedRepository_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	if err := store.Put(ctx, "broken", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	_, err := typed.NewRepository[profile](store).Get(ctx, "broken")
	if !errors.Is(err, typed.ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestRecord_Detached(t *testing.T) {
	rec := &typed.Record[profile]{Key: "x"}
	if err := rec.Save(context.Background()); err == nil {
		t.Error("expected error for detached record")
	}
}
