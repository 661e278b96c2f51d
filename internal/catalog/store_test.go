package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"pindex/internal/services"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreUpsertAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	table := &Table{VpxFile: "/tables/mm.vpx", Title: "Medieval Madness", VpsID: "mm-97", Owner: OwnerCommunity}
	if err := store.Upsert(ctx, table); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := store.Get(ctx, "/tables/mm.vpx")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Medieval Madness" || got.VpsID != "mm-97" {
		t.Fatalf("got %+v", got)
	}
}

func TestStoreUpsertReplacesByPath(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Upsert(ctx, &Table{VpxFile: "/tables/x.vpx", Title: "first"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Upsert(ctx, &Table{VpxFile: "/tables/x.vpx", Title: "second"}); err != nil {
		t.Fatal(err)
	}

	tables, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tables) != 1 || tables[0].Title != "second" {
		t.Fatalf("tables = %+v", tables)
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Get(context.Background(), "/tables/absent.vpx")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestStoreUpsertRejectsEmptyPath(t *testing.T) {
	store := openTestStore(t)
	err := store.Upsert(context.Background(), &Table{Title: "nameless"})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestStoreReplace(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Upsert(ctx, &Table{VpxFile: "/tables/old.vpx", Title: "old"}); err != nil {
		t.Fatal(err)
	}
	err := store.Replace(ctx, []Table{
		{VpxFile: "/tables/a.vpx", Title: "A"},
		{VpxFile: "/tables/b.vpx", Title: "B"},
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}

	tables, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 2 || tables[0].Title != "A" || tables[1].Title != "B" {
		t.Fatalf("tables = %+v", tables)
	}
}

func TestStoreDeleteAbsentIsNoError(t *testing.T) {
	store := openTestStore(t)
	if err := store.Delete(context.Background(), "/tables/nothing.vpx"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
