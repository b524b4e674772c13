// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package youtube

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/singleflight"
)

// Guard wraps a Searcher so that identical queries in flight at the same
// time share one upstream lookup. A repeated request while the first is
// pending waits for that result instead of starting another call.
type Guard struct {
	next  Searcher
	group singleflight.Group
}

func NewGuard(next Searcher) *Guard {
	return &Guard{next: next}
}

func (g *Guard) Search(ctx context.Context, query string) ([]Video, error) {
	key := strings.TrimSpace(query)

	// The shared lookup outlives any single caller's cancellation.
	ch := g.group.DoChan(key, func() (any, error) {
		return g.next.Search(context.WithoutCancel(ctx), key)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]Video)), nil
	case <-ctx.Done():
		return nil, &LookupError{Query: key, Err: ctx.Err()}
	}
}
