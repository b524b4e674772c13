// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package gesture turns swipe drags on a song card into vote decisions.
package gesture
