// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/danielhkuo/song-wishlist/wishlist"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wishlist.db")
	store, err := Open(TypeSQLite, "file:"+path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateSchema_Idempotent(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 2; i++ {
		if err := CreateSchema(store.db); err != nil {
			t.Fatalf("CreateSchema() call %d error = %v", i+1, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	info := wishlist.Info{
		ID:        "session-1",
		Slug:      "abc123",
		Name:      "RMC Choir",
		CreatedBy: "alice",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := store.SaveSession(ctx, info); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	live := wishlist.NewSession(info)
	grace, _ := live.Submit(wishlist.Submission{Title: "Amazing Grace", Artist: "Trad.", Notes: "in G"}, "alice")
	oceans, _ := live.Submit(wishlist.Submission{Title: "Oceans", Artist: "Hillsong", VideoID: "dy9nwe9_xzw"}, "bob")
	for _, song := range []wishlist.Song{grace, oceans} {
		if err := store.SaveSong(ctx, info.ID, song); err != nil {
			t.Fatalf("SaveSong() error = %v", err)
		}
	}
	for i, voter := range []string{"carol", "alice", "bob"} {
		if err := store.SaveVote(ctx, info.ID, grace.ID, voter, i); err != nil {
			t.Fatalf("SaveVote() error = %v", err)
		}
	}

	sessions, err := store.LoadSessions(ctx)
	if err != nil {
		t.Fatalf("LoadSessions() error = %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}

	got := sessions[0]
	if got.Info().Slug != "abc123" || got.Info().Name != "RMC Choir" {
		t.Errorf("unexpected info %+v", got.Info())
	}

	songs := got.Songs()
	if len(songs) != 2 {
		t.Fatalf("expected 2 songs, got %d", len(songs))
	}
	if songs[0].Title != "Amazing Grace" || songs[0].Notes != "in G" {
		t.Errorf("unexpected first song %+v", songs[0])
	}
	if !slices.Equal(songs[0].Voters(), []string{"carol", "alice", "bob"}) {
		t.Errorf("voter order lost: %v", songs[0].Voters())
	}
	if songs[1].VideoID != "dy9nwe9_xzw" || songs[1].Votes() != 0 {
		t.Errorf("unexpected second song %+v", songs[1])
	}
}

func TestSaveVote_RejectsDuplicateVoter(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	info := wishlist.Info{ID: "s", Slug: "slug", Name: "n", CreatedBy: "a", CreatedAt: time.Now()}
	store.SaveSession(ctx, info)

	if err := store.SaveVote(ctx, info.ID, 1, "alice", 0); err != nil {
		t.Fatalf("first SaveVote() error = %v", err)
	}
	if err := store.SaveVote(ctx, info.ID, 1, "alice", 1); err == nil {
		t.Error("expected primary key violation for duplicate vote")
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
