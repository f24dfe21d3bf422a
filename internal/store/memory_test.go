package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryLoadMissingKey(t *testing.T) {
	s := NewMemory()
	_, err := s.Load(context.Background(), KeyCart)
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestMemorySaveThenLoad(t *testing.T) {
	s := NewMemory()
	if err := s.Save(context.Background(), KeyOrders, []byte(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Load(context.Background(), KeyOrders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestMemoryOverwrite(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	if err := s.Save(ctx, KeyCart, []byte(`one`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Save(ctx, KeyCart, []byte(`two`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Load(ctx, KeyCart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `two` {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestMemoryLoadReturnsCopy(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	if err := s.Save(ctx, KeyCart, []byte(`abc`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := s.Load(ctx, KeyCart)
	got[0] = 'x'
	again, _ := s.Load(ctx, KeyCart)
	if string(again) != `abc` {
		t.Fatalf("stored value mutated through returned slice: %q", again)
	}
}
