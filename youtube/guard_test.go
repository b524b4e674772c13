// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package youtube

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type blockingSearcher struct {
	calls   atomic.Int32
	release chan struct{}
	videos  []Video
	err     error
}

func (s *blockingSearcher) Search(ctx context.Context, query string) ([]Video, error) {
	s.calls.Add(1)
	<-s.release
	return s.videos, s.err
}

func TestGuard_CoalescesConcurrentLookups(t *testing.T) {
	upstream := &blockingSearcher{
		release: make(chan struct{}),
		videos:  []Video{{ID: "dy9nwe9_xzw", Title: "Oceans"}},
	}
	guard := NewGuard(upstream)

	const callers = 5
	var wg sync.WaitGroup
	results := make([][]Video, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = guard.Search(context.Background(), "Oceans Hillsong")
		}(i)
	}

	// Give every caller time to join the in-flight lookup before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(upstream.release)
	wg.Wait()

	if n := upstream.calls.Load(); n != 1 {
		t.Errorf("expected 1 upstream call, got %d", n)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Errorf("caller %d: unexpected error %v", i, errs[i])
		}
		if len(results[i]) != 1 || results[i][0].ID != "dy9nwe9_xzw" {
			t.Errorf("caller %d: unexpected result %+v", i, results[i])
		}
	}
}

func TestGuard_AllowsNewLookupAfterSettle(t *testing.T) {
	upstream := &blockingSearcher{release: make(chan struct{}), err: &LookupError{Query: "q", Err: ErrNoResults}}
	close(upstream.release)
	guard := NewGuard(upstream)

	for i := 0; i < 2; i++ {
		_, err := guard.Search(context.Background(), "q")
		if !errors.Is(err, ErrNoResults) {
			t.Fatalf("attempt %d: expected ErrNoResults, got %v", i, err)
		}
	}

	if n := upstream.calls.Load(); n != 2 {
		t.Errorf("expected sequential lookups to each reach upstream, got %d calls", n)
	}
}

func TestGuard_CallerCancellation(t *testing.T) {
	upstream := &blockingSearcher{release: make(chan struct{})}
	defer close(upstream.release)
	guard := NewGuard(upstream)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := guard.Search(ctx, "q")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
