package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/song-wishlist/cliparse"
	"github.com/danielhkuo/song-wishlist/db"
	"github.com/danielhkuo/song-wishlist/hub"
	"github.com/danielhkuo/song-wishlist/router"
	"github.com/danielhkuo/song-wishlist/youtube"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	// Optional backing store
	var h *hub.Hub
	if cfg.StoreEnabled() {
		store, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database open failed", "error", err, "type", cfg.DatabaseType)
			os.Exit(1)
		}
		defer store.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		sessions, err := store.LoadSessions(ctx)
		cancel()
		if err != nil {
			slog.Error("loading sessions failed", "error", err)
			os.Exit(1)
		}

		h = hub.New(cfg.SlugSalt, store)
		h.Restore(sessions...)
		slog.Info("Database ready", "type", cfg.DatabaseType, "sessions", len(sessions))
	} else {
		h = hub.New(cfg.SlugSalt, nil)
		slog.Info("Running in memory; sessions are lost on restart")
	}

	// Video lookup
	var searcher youtube.Searcher
	if cfg.SearchEnabled() {
		searcher = youtube.NewGuard(youtube.NewClient(cfg.YouTubeAPIKey,
			youtube.WithMaxResults(cfg.SearchMaxResults),
		))
	} else {
		slog.Warn("YOUTUBE_API_KEY not set; video search disabled")
	}

	// Create server
	server := http.Server{
		Handler:           router.NewHandler(h, searcher),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
