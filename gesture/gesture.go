// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gesture

import (
	"fmt"
	"strings"
)

// Threshold is how far, in pixels, a card must be dragged before the
// gesture counts as a decision. The boundary itself is still undecided.
const Threshold = 50.0

type Decision int

const (
	Undecided Decision = iota
	Approve
	Skip
)

func (d Decision) String() string {
	switch d {
	case Approve:
		return "approve"
	case Skip:
		return "skip"
	default:
		return "undecided"
	}
}

// ParseDecision accepts the names produced by String. The vote and skip
// buttons send these directly instead of a drag distance.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approve":
		return Approve, nil
	case "skip":
		return Skip, nil
	case "undecided", "":
		return Undecided, nil
	default:
		return Undecided, fmt.Errorf("unknown decision %q", s)
	}
}

func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decision) UnmarshalText(b []byte) error {
	parsed, err := ParseDecision(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Classify maps a horizontal drag offset to a decision: right approves,
// left skips, anything within the threshold is undecided.
func Classify(delta float64) Decision {
	switch {
	case delta > Threshold:
		return Approve
	case delta < -Threshold:
		return Skip
	default:
		return Undecided
	}
}
