// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package youtube finds videos to attach to suggested songs.

	client := youtube.NewClient(apiKey, youtube.WithMaxResults(5))
	searcher := youtube.NewGuard(client)

	q, err := youtube.Query(title, artist)   // "Oceans Hillsong"
	videos, err := searcher.Search(ctx, q)

Every failure comes back as a *LookupError. An empty result list is also a
LookupError wrapping ErrNoResults. Neither ever touches wishlist state.

Guard coalesces identical concurrent queries so a double-clicked search
button costs one API call.
*/
package youtube
