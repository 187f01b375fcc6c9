package main

import (
	"context"
	"os"

	"github.com/desertthunder/plseed/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// newApp builds the command tree. Running it without a subcommand seeds the service.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "plseed",
		Usage:    "Seed a playlist service with tracks and playlists from identifier files",
		Version:  "0.1.0",
		Flags:    globalFlags(),
		Action:   r.Seed,
		Commands: r.register(),
	}
}
