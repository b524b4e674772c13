// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "alice", "alice", false},
		{"trims whitespace", "  Bob \t", "Bob", false},
		{"keeps case", "ALICE", "ALICE", false},
		{"unicode counted as runes", strings.Repeat("é", MaxNameLength), strings.Repeat("é", MaxNameLength), false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("a", MaxNameLength+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidName) {
					t.Fatalf("NormalizeName(%q) error = %v, want ErrInvalidName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeName(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewSessionID(t *testing.T) {
	id1 := NewSessionID()
	id2 := NewSessionID()
	if len(id1) != 36 {
		t.Errorf("NewSessionID() length = %d, want 36", len(id1))
	}
	if id1 == id2 {
		t.Error("NewSessionID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateShareSlug(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		salt      string
	}{
		{"standard", "session-abc-123", "slug-salt"},
		{"different session", "session-xyz-456", "slug-salt"},
		{"different salt", "session-abc-123", "other-salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug := GenerateShareSlug(tt.sessionID, tt.salt)

			if slug == "" {
				t.Error("GenerateShareSlug() returned empty string")
			}

			if slug2 := GenerateShareSlug(tt.sessionID, tt.salt); slug != slug2 {
				t.Error("GenerateShareSlug() is not deterministic")
			}

			if len(slug) > 15 {
				t.Errorf("GenerateShareSlug() too long: %d chars", len(slug))
			}

			for _, c := range slug {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
					t.Errorf("GenerateShareSlug() contains non-alphanumeric char: %c", c)
				}
			}
		})
	}

	if GenerateShareSlug("s1", "salt") == GenerateShareSlug("s2", "salt") {
		t.Error("GenerateShareSlug() produced same slug for different session IDs")
	}
	if GenerateShareSlug("s1", "salt1") == GenerateShareSlug("s1", "salt2") {
		t.Error("GenerateShareSlug() produced same slug for different salts")
	}
}

func TestBase62Encode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"zero bytes", []byte{0, 0, 0, 0}, "0"},
		{"one", []byte{0, 0, 0, 1}, "1"},
		{"sixty-two", []byte{62}, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base62Encode(tt.input); got != tt.want {
				t.Errorf("base62Encode(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if base62Encode([]byte{1, 2, 3, 4}) == base62Encode([]byte{5, 6, 7, 8}) {
		t.Error("base62Encode() produced same output for different inputs")
	}
}
