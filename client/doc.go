// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package client is a Go client for the song wishlist HTTP API.
//
//	c, err := client.New("localhost:3318", "alice")
//	ranked, err := c.Rankings(ctx, slug)
//
// Server-side failures come back as *APIError; StatusOf extracts the code.
package client
