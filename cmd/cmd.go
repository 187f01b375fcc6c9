// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// globalFlags are shared by the root seeding action and every subcommand.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "Service host and port, e.g. localhost:10000",
		},
		&cli.StringFlag{
			Name:  "email",
			Usage: "Login email",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "Login password",
		},
		&cli.StringFlag{
			Name:  "tracks",
			Usage: "Path to the track identifier file",
		},
		&cli.StringFlag{
			Name:  "playlists",
			Usage: "Path to the playlist identifier file",
		},
		&cli.StringFlag{
			Name:  "journal",
			Usage: "Path to the SQLite run journal (empty disables journaling)",
		},
		&cli.IntFlag{
			Name:  "seed",
			Usage: "Seed for the random track pick (0 picks a random seed)",
		},
	}
}

// loginCommand authenticates without seeding.
func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "login",
		Usage:  "Log in to the service and report the result",
		Action: r.Login,
	}
}

// generateCommand writes identifier files.
func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Write fresh UUID identifiers to the track and playlist files",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "tracks-count",
				Usage: "Number of track identifiers to write",
				Value: 2,
			},
			&cli.IntFlag{
				Name:  "playlists-count",
				Usage: "Number of playlist identifiers to write",
				Value: 2,
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite existing files",
			},
		},
		Action: r.Generate,
	}
}

// historyCommand reads the run journal.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List journaled runs, or the outcomes of one run",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of runs to list (0 lists all)",
				Value: 20,
			},
			&cli.StringFlag{
				Name:  "run",
				Usage: "Run ID whose outcomes should be shown",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
		},
		Action: r.History,
	}
}

// setupCommand writes the config template and initializes the journal.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create config.toml from the template and initialize the run journal",
		Action: r.Setup,
	}
}
