// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to types both SQLite and PostgreSQL accept.
func CreateSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Sessions
CREATE TABLE IF NOT EXISTS wishlist_session (
    id TEXT PRIMARY KEY,
    share_slug TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    created_by TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Songs, numbered per session in submission order
CREATE TABLE IF NOT EXISTS song (
    session_id TEXT NOT NULL REFERENCES wishlist_session(id) ON DELETE CASCADE,
    id BIGINT NOT NULL,
    title TEXT NOT NULL,
    artist TEXT NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    suggested_by TEXT NOT NULL,
    video_id TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (session_id, id)
);

-- Votes; position keeps the order voters arrived in
CREATE TABLE IF NOT EXISTS song_vote (
    session_id TEXT NOT NULL REFERENCES wishlist_session(id) ON DELETE CASCADE,
    song_id BIGINT NOT NULL,
    voter TEXT NOT NULL,
    position INTEGER NOT NULL,
    voted_at TIMESTAMP NOT NULL,
    PRIMARY KEY (session_id, song_id, voter)
);

CREATE INDEX IF NOT EXISTS idx_song_vote_song ON song_vote(session_id, song_id, position);
`
