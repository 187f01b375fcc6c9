package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/plseed/internal/formatter"
	"github.com/desertthunder/plseed/internal/models"
	"github.com/desertthunder/plseed/internal/repositories"
	"github.com/desertthunder/plseed/internal/services"
	"github.com/desertthunder/plseed/internal/shared"
	"github.com/desertthunder/plseed/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Seed logs in and populates the service from the configured identifier files.
func (r *Runner) Seed(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}

	playlists, err := shared.ReadIdentifiers(r.config.Input.Playlists)
	if err != nil {
		return err
	}
	tracks, err := shared.ReadIdentifiers(r.config.Input.Tracks)
	if err != nil {
		return err
	}
	r.logger.Debug("loaded identifiers", "playlists", len(playlists), "tracks", len(tracks))

	repo, run, closeJournal, err := r.startRun(len(playlists), len(tracks))
	if err != nil {
		return err
	}
	defer closeJournal()

	api, session, err := r.login(ctx)
	if err != nil {
		status := models.RunAuthFailed
		if errors.Is(err, shared.ErrAPIRequest) {
			status = models.RunAborted
		}
		r.finishRun(repo, run, status)
		return err
	}

	opts := tasks.SeederOpts{
		Picker: tasks.NewPicker(uint64(cmd.Int("seed"))),
		Logger: r.logger,
		Report: func(o models.Outcome) {
			r.progress("%s\n", formatter.Outcome(o))
		},
	}
	if run != nil {
		opts.Recorder = repositories.NewJournalRecorder(repo, run.ID)
		opts.Logger = shared.RunLogger(r.logger, run.ID)
	}

	outcomes, err := tasks.NewSeeder(services.NewPlaylistClient(api, session), opts).Run(ctx, playlists, tracks)
	if err != nil {
		r.finishRun(repo, run, models.RunAborted)
		return err
	}
	r.finishRun(repo, run, models.RunCompleted)

	succeeded := 0
	for _, o := range outcomes {
		if o.OK() {
			succeeded++
		}
	}
	r.logger.Info("seeding finished", "calls", len(outcomes), "succeeded", succeeded, "failed", len(outcomes)-succeeded)

	return nil
}

// Login authenticates with the configured credentials and reports the result.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}

	_, session, err := r.login(ctx)
	if err != nil {
		return err
	}

	r.logger.Debug("session established", "cookie", session.Cookie())
	return nil
}

// login prints "Login successful" or "Login failed: {code}, {body}" and returns the session.
func (r *Runner) login(ctx context.Context) (*services.APIService, *services.Session, error) {
	api := services.NewAPIService(r.config.BaseURL(), r.httpClient)
	auth := services.NewAuthService(api, services.SessionOpts{
		UserAgent:    r.config.Server.UserAgent,
		RefreshToken: r.config.Session.RefreshToken,
		SessionID:    r.config.Session.Session,
	})

	r.logger.Info("logging in", "email", r.config.Credentials.Email, "url", api.BaseURL())

	session, err := auth.Login(ctx, r.config.Credentials.Email, r.config.Credentials.Password)
	if err != nil {
		var loginErr *services.LoginError
		if errors.As(err, &loginErr) {
			r.progress("Login failed: %d, %s\n", loginErr.StatusCode, strings.TrimSpace(loginErr.Body))
		}
		return nil, nil, err
	}

	r.progress("Login successful\n")
	return api, session, nil
}

// startRun opens the journal and creates a run when a journal path is configured.
// The returned repository and run are nil when journaling is disabled.
func (r *Runner) startRun(playlists, tracks int) (*repositories.RunRepository, *models.Run, func(), error) {
	path := r.config.Journal.Path
	if path == "" {
		return nil, nil, func() {}, nil
	}

	db, err := shared.OpenJournal(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open journal: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			r.logger.Warn("failed to close journal", "error", err)
		}
	}

	repo := repositories.NewRunRepository(db)
	run := models.NewRun(shared.GenerateID(), r.config.BaseURL(), r.config.Credentials.Email, playlists, tracks)
	if err := repo.Create(run); err != nil {
		closeDB()
		return nil, nil, nil, fmt.Errorf("failed to create run: %w", err)
	}

	r.logger.Info("journaling run", "id", run.ID, "path", path)
	return repo, run, closeDB, nil
}

func (r *Runner) finishRun(repo *repositories.RunRepository, run *models.Run, status models.RunStatus) {
	if run == nil {
		return
	}
	if err := repo.Finish(run.ID, status); err != nil {
		r.logger.Warn("failed to finish run", "id", run.ID, "error", err)
	}
}

// openJournal opens an existing journal for reading.
func (r *Runner) openJournal() (*sql.DB, error) {
	if r.config.Journal.Path == "" {
		return nil, fmt.Errorf("%w: journal path is not set (use --journal or journal.path)", shared.ErrMissingArgument)
	}
	return shared.OpenJournal(r.config.Journal.Path)
}
