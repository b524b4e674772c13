package main

import (
	"errors"
	"os"
	"strings"

	"github.com/danielhkuo/song-wishlist/client"
)

type commandContext struct {
	server  string
	session string
	name    string
	json    bool
}

func (c *commandContext) client() (*client.Client, error) {
	return client.New(c.server, c.name)
}

// sessionSlug returns --session or an error naming the flag
func (c *commandContext) sessionSlug() (string, error) {
	slug := strings.TrimSpace(c.session)
	if slug == "" {
		return "", errors.New("no session selected; pass --session or set WISHLIST_SESSION")
	}
	return slug, nil
}

// requireName is for commands that act as a member
func (c *commandContext) requireName() error {
	if strings.TrimSpace(c.name) == "" {
		return errors.New("no name given; pass --name or set WISHLIST_NAME")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
