// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package youtube

import (
	"errors"
	"fmt"
)

var (
	ErrNoResults  = errors.New("no videos found")
	ErrEmptyQuery = errors.New("empty search query")
)

// UserMessage is what a person sees when a lookup fails for any reason
// other than an empty result list.
const UserMessage = "Failed to search YouTube. Please try again."

// LookupError reports a failed or empty search
type LookupError struct {
	Query string
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("youtube search %q: %v", e.Query, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
