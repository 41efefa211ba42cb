package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgerror"
)

func TestInMemoryStore_PutAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore()
	body := []byte("id\n1\n")

	if err := store.Put(ctx, "intaker/a.csv", body, "text/csv"); err != nil {
		t.Fatalf("Put() err = %v", err)
	}
	body[0] = 'X'

	obj, err := store.Get(ctx, "intaker/a.csv")
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}
	if string(obj.Body) != "id\n1\n" {
		t.Fatalf("Get() body = %q, caller mutation leaked in", obj.Body)
	}
	if obj.ContentType != "text/csv" {
		t.Fatalf("Get() content type = %q", obj.ContentType)
	}
}

func TestInMemoryStore_LastWriteWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore()

	if err := store.Put(ctx, "k", []byte("first"), "text/csv"); err != nil {
		t.Fatalf("Put() err = %v", err)
	}
	if err := store.Put(ctx, "k", []byte("second"), "text/csv"); err != nil {
		t.Fatalf("Put() err = %v", err)
	}

	obj, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}
	if string(obj.Body) != "second" {
		t.Fatalf("Get() body = %q, want second", obj.Body)
	}
	if got := store.Keys(); !reflect.DeepEqual(got, []string{"k"}) {
		t.Fatalf("Keys() = %v", got)
	}
}

func TestInMemoryStore_GetMissing(t *testing.T) {
	t.Parallel()

	_, err := NewInMemoryStore().Get(context.Background(), "nope")
	if !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("Get() err = %v, want ErrNotFound", err)
	}
}

func TestInMemoryStore_PutCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewInMemoryStore()
	if err := store.Put(ctx, "k", []byte("x"), "text/csv"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Put() err = %v, want context.Canceled", err)
	}
	if len(store.Keys()) != 0 {
		t.Fatal("canceled put must not store anything")
	}
}
