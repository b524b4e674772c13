// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wishlist

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSubmission = errors.New("invalid submission")
	ErrAlreadyVoted      = errors.New("already voted for this song")
	ErrSongNotFound      = errors.New("song not found")
)

// ValidationError rejects a submission before anything is appended
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSubmission
}

type VoteErrorKind int

const (
	AlreadyVoted VoteErrorKind = iota + 1
	NotFound
)

func (k VoteErrorKind) String() string {
	switch k {
	case AlreadyVoted:
		return "already voted"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// VoteError rejects a vote. The ledger is left exactly as it was.
type VoteError struct {
	Kind   VoteErrorKind
	SongID int64
	Voter  string
}

func (e *VoteError) Error() string {
	return fmt.Sprintf("vote on song %d by %q: %s", e.SongID, e.Voter, e.Kind)
}

func (e *VoteError) Unwrap() error {
	switch e.Kind {
	case AlreadyVoted:
		return ErrAlreadyVoted
	case NotFound:
		return ErrSongNotFound
	default:
		return nil
	}
}
