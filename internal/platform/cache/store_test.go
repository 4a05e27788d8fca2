package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start

			v, err := store.GetOrLoad(context.Background(), "catalog:list", loader)
			if err != nil {
				t.Errorf("get or load: %v", err)
				return
			}
			if v != "value" {
				t.Errorf("unexpected value: %v", v)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one loader call, got %d", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loadErr := errors.New("boom")

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, loadErr
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, loadErr) {
		t.Fatalf("expected loader error, got %v", err)
	}

	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if v != "ok" {
		t.Fatalf("unexpected value after retry: %v", v)
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	store.Set(context.Background(), "k", 1)

	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry to be present")
	}

	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "formation:list", 1)
	store.Set(context.Background(), "formation:id:3", 2)
	store.Set(context.Background(), "role-slot:list", 3)

	store.DeletePrefix(context.Background(), "formation:")

	if _, ok := store.Get(context.Background(), "formation:list"); ok {
		t.Fatalf("expected formation:list to be evicted")
	}
	if _, ok := store.Get(context.Background(), "formation:id:3"); ok {
		t.Fatalf("expected formation:id:3 to be evicted")
	}
	if _, ok := store.Get(context.Background(), "role-slot:list"); !ok {
		t.Fatalf("expected role-slot:list to survive")
	}
}
