package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/plseed/internal/formatter"
	"github.com/desertthunder/plseed/internal/models"
	"github.com/desertthunder/plseed/internal/repositories"
	"github.com/urfave/cli/v3"
)

type runView struct {
	ID            string     `json:"id"`
	BaseURL       string     `json:"base_url"`
	Email         string     `json:"email"`
	Status        string     `json:"status"`
	PlaylistCount int        `json:"playlist_count"`
	TrackCount    int        `json:"track_count"`
	Calls         int        `json:"calls"`
	Succeeded     int        `json:"succeeded"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

type outcomeView struct {
	Sequence   int    `json:"sequence"`
	Kind       string `json:"kind"`
	Parent     string `json:"parent"`
	Child      string `json:"child"`
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

func newRunView(run *models.Run) runView {
	return runView{
		ID:            run.ID,
		BaseURL:       run.BaseURL,
		Email:         run.Email,
		Status:        string(run.Status),
		PlaylistCount: run.PlaylistCount,
		TrackCount:    run.TrackCount,
		Calls:         run.Calls,
		Succeeded:     run.Succeeded,
		StartedAt:     run.StartedAt,
		FinishedAt:    run.FinishedAt,
	}
}

// History lists journaled runs, or with --run the outcomes of a single run.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}

	db, err := r.openJournal()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewRunRepository(db)
	if id := cmd.String("run"); id != "" {
		return r.showRun(repo, id, cmd.Bool("json"), cmd.Bool("pretty"))
	}

	runs, err := repo.List(int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		views := make([]runView, 0, len(runs))
		for _, run := range runs {
			views = append(views, newRunView(run))
		}
		return r.writeJSON(views, cmd.Bool("pretty"))
	}

	return r.writePlain("%s", formatter.Runs(runs))
}

func (r *Runner) showRun(repo *repositories.RunRepository, id string, asJSON, pretty bool) error {
	run, err := repo.Get(id)
	if err != nil {
		return err
	}
	outcomes, err := repo.Outcomes(id)
	if err != nil {
		return err
	}

	if asJSON {
		views := make([]outcomeView, 0, len(outcomes))
		for _, o := range outcomes {
			views = append(views, outcomeView{
				Sequence:   o.Sequence,
				Kind:       string(o.Kind),
				Parent:     o.Parent,
				Child:      o.Child,
				StatusCode: o.StatusCode,
				Body:       string(o.Body),
			})
		}
		return r.writeJSON(struct {
			Run      runView       `json:"run"`
			Outcomes []outcomeView `json:"outcomes"`
		}{newRunView(run), views}, pretty)
	}

	title := fmt.Sprintf("Run %s (%s)", run.ID, run.Status)
	if err := r.writePlain("%s", formatter.Header(title)); err != nil {
		return err
	}
	if err := r.writePlain("%s", formatter.Outcomes(outcomes)); err != nil {
		return err
	}
	return r.writePlain("%d of %d calls succeeded\n", run.Succeeded, run.Calls)
}
