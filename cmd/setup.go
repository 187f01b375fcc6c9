package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/plseed/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the config file from the embedded template and initializes the journal database.
//
// An existing config file is left untouched.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		return fmt.Errorf("%w: setup needs a config path (use --config)", shared.ErrMissingArgument)
	}

	if err := shared.CreateConfigFile(configPath); err != nil {
		if !errors.Is(err, shared.ErrFileExists) {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		r.logger.Info("config file already exists", "path", configPath)
	} else {
		r.logger.Info("config file created", "path", configPath)
		r.writePlain("✓ Config written to %s\n", configPath)
	}

	if err := r.configure(cmd); err != nil {
		return err
	}

	if r.config.Journal.Path == "" {
		r.writePlain("Journal disabled; set journal.path in %s or pass --journal to enable it\n", configPath)
		return nil
	}

	r.logger.Info("initializing journal", "path", r.config.Journal.Path)
	db, err := shared.OpenJournal(r.config.Journal.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize journal: %w", err)
	}
	defer db.Close()

	r.writePlain("✓ Journal ready at %s\n", r.config.Journal.Path)
	return nil
}
