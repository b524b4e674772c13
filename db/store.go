// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/song-wishlist/wishlist"
)

const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know by name
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Store writes wishlist sessions through to SQLite or PostgreSQL and reads
// them back at startup. It implements hub.Recorder.
type Store struct {
	db *sqlx.DB
}

// Open connects, verifies the connection and creates the schema
func Open(dbType, url string) (*Store, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dbType, err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s database: %w", dbType, err)
	}

	if driver == TypeSQLite {
		// One writer at a time keeps SQLite from returning SQLITE_BUSY
		conn.SetMaxOpenConns(1)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &Store{db: conn}, nil
}

func driverName(dbType string) (string, error) {
	switch dbType {
	case TypeSQLite, "":
		return TypeSQLite, nil
	case TypePostgres, "postgresql":
		return TypePostgres, nil
	default:
		return "", fmt.Errorf("unsupported database type %q (use sqlite or postgres)", dbType)
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveSession(ctx context.Context, info wishlist.Info) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO wishlist_session (id, share_slug, name, created_by, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), info.ID, info.Slug, info.Name, info.CreatedBy, info.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert session %s: %w", info.Slug, err)
	}
	return nil
}

func (s *Store) SaveSong(ctx context.Context, sessionID string, song wishlist.Song) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO song (session_id, id, title, artist, notes, suggested_by, video_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), sessionID, song.ID, song.Title, song.Artist, song.Notes, song.SuggestedBy, song.VideoID, song.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert song %d: %w", song.ID, err)
	}
	return nil
}

func (s *Store) SaveVote(ctx context.Context, sessionID string, songID int64, voter string, position int) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO song_vote (session_id, song_id, voter, position, voted_at)
		VALUES (?, ?, ?, ?, ?)
	`), sessionID, songID, voter, position, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert vote on song %d: %w", songID, err)
	}
	return nil
}

type sessionRow struct {
	ID        string    `db:"id"`
	Slug      string    `db:"share_slug"`
	Name      string    `db:"name"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

type songRow struct {
	SessionID   string    `db:"session_id"`
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Artist      string    `db:"artist"`
	Notes       string    `db:"notes"`
	SuggestedBy string    `db:"suggested_by"`
	VideoID     string    `db:"video_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type voteRow struct {
	SessionID string `db:"session_id"`
	SongID    int64  `db:"song_id"`
	Voter     string `db:"voter"`
}

// LoadSessions reads every stored session back into memory
func (s *Store) LoadSessions(ctx context.Context) ([]*wishlist.Session, error) {
	var sessions []sessionRow
	if err := s.db.SelectContext(ctx, &sessions, `
		SELECT id, share_slug, name, created_by, created_at
		FROM wishlist_session
		ORDER BY created_at, id
	`); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	var songs []songRow
	if err := s.db.SelectContext(ctx, &songs, `
		SELECT session_id, id, title, artist, notes, suggested_by, video_id, created_at
		FROM song
		ORDER BY session_id, id
	`); err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}

	var votes []voteRow
	if err := s.db.SelectContext(ctx, &votes, `
		SELECT session_id, song_id, voter
		FROM song_vote
		ORDER BY session_id, song_id, position
	`); err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}

	type songKey struct {
		sessionID string
		songID    int64
	}
	voters := make(map[songKey][]string)
	for _, v := range votes {
		k := songKey{v.SessionID, v.SongID}
		voters[k] = append(voters[k], v.Voter)
	}

	records := make(map[string][]wishlist.SongRecord)
	for _, r := range songs {
		records[r.SessionID] = append(records[r.SessionID], wishlist.SongRecord{
			ID:          r.ID,
			Title:       r.Title,
			Artist:      r.Artist,
			Notes:       r.Notes,
			SuggestedBy: r.SuggestedBy,
			VideoID:     r.VideoID,
			CreatedAt:   r.CreatedAt,
			Voters:      voters[songKey{r.SessionID, r.ID}],
		})
	}

	out := make([]*wishlist.Session, 0, len(sessions))
	for _, r := range sessions {
		session, err := wishlist.Restore(wishlist.Info{
			ID:        r.ID,
			Slug:      r.Slug,
			Name:      r.Name,
			CreatedBy: r.CreatedBy,
			CreatedAt: r.CreatedAt,
		}, records[r.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, session)
	}
	return out, nil
}
