// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity handles voter names and session identifiers.

# Display Names

There are no accounts. A voter is whatever name they type in:

	name, err := identity.NormalizeName("  Alice ")  // "Alice"

Names are trimmed and must be 1-50 characters. Two people who pick the same
name are the same voter as far as the vote ledger is concerned.

# Session IDs and Share Slugs

Sessions get a random UUID and a short base62 slug derived from it:

	id := identity.NewSessionID()
	slug := identity.GenerateShareSlug(id, salt)

The slug is deterministic for a given ID and salt, so it can be recomputed
and never needs to be stored separately from the ID.
*/
package identity
