// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the optional backing store for wishlist sessions.

# Opening a Store

	store, err := db.Open(db.TypeSQLite, "file:wishlist.db")
	store, err := db.Open(db.TypePostgres, "postgres://...")

Open pings the database and runs CreateSchema. CreateSchema is safe to call
multiple times - it uses IF NOT EXISTS for all tables and indexes.

# Write-Through

Store implements hub.Recorder. Every accepted song and vote is inserted
as it happens; nothing is ever updated or deleted. At startup:

	sessions, err := store.LoadSessions(ctx)
	h.Restore(sessions...)

# Tables

  - wishlist_session: one row per group
  - song: per-session songs keyed by (session_id, id)
  - song_vote: one row per voter per song, with arrival position

	wishlist_session 1──* song
	wishlist_session 1──* song_vote

Queries are written with ? placeholders and passed through sqlx Rebind,
so the same SQL runs on both drivers.
*/
package db
