package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/plseed/internal/shared"
	"github.com/urfave/cli/v3"
)

// Generate writes UUID identifiers to the configured track and playlist files.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}

	trackCount := int(cmd.Int("tracks-count"))
	playlistCount := int(cmd.Int("playlists-count"))
	if trackCount < 1 || playlistCount < 1 {
		return fmt.Errorf("%w: counts must be at least 1", shared.ErrInvalidArgument)
	}
	if playlistCount < 2 {
		r.logger.Warn("a single playlist cannot be nested; seeding will stop before the playlist call")
	}

	force := cmd.Bool("force")
	files := []struct {
		path  string
		count int
	}{
		{r.config.Input.Tracks, trackCount},
		{r.config.Input.Playlists, playlistCount},
	}

	for _, f := range files {
		if err := shared.WriteIdentifiers(f.path, shared.GenerateIDs(f.count), force); err != nil {
			return err
		}
		r.logger.Debug("wrote identifiers", "path", f.path, "count", f.count)
		r.writePlain("Wrote %d identifiers to %s\n", f.count, f.path)
	}

	return nil
}
