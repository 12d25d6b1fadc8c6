package cmd

import (
	"context"
	"fmt"

	"github.com/photogroove/pgroove/internal/activity"
	"github.com/photogroove/pgroove/internal/cache"
	"github.com/photogroove/pgroove/internal/config"
	"github.com/photogroove/pgroove/internal/gallery"
	"github.com/photogroove/pgroove/internal/render"
	"github.com/photogroove/pgroove/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := cache.Open(config.CachePath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	client := gallery.NewClient(cfg.BaseURL()).WithListPath(cfg.ListPath)

	var port render.Port = render.NopPort{}
	if r := cfg.Renderer; r != nil {
		port = render.NewExecPort(r.Command, r.Args...)
	}

	source, err := activity.New(cfg.Activity)
	if err != nil {
		return fmt.Errorf("configuring activity feed: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var updates chan string
	if source != nil {
		updates = make(chan string, 8)
		go func() {
			defer close(updates)
			// Feed errors just end the stream; the last status stays up
			source.Listen(ctx, updates)
		}()
	}

	// Serve from cache when the listing is still fresh
	fromCache := flagOffline || (!flagRefresh && !db.NeedsRefresh(cfg.RefreshDuration()))

	return tui.Run(tui.RunOpts{
		Client:   client,
		DB:       db,
		Port:     port,
		Activity: updates,
		Offline:  fromCache,
		Greeting: activity.Greeting(cfg.PastaVersion),
	})
}
