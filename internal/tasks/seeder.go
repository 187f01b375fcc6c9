package tasks

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/plseed/internal/models"
	"github.com/desertthunder/plseed/internal/services"
	"github.com/desertthunder/plseed/internal/shared"
)

// Associator performs a single association call.
type Associator interface {
	Associate(ctx context.Context, a models.Association) (*services.APIResponse, error)
}

// Picker chooses an index in [0, n). [*rand.Rand] satisfies it.
type Picker interface {
	IntN(n int) int
}

// Recorder persists outcomes as they happen.
type Recorder interface {
	RecordOutcome(o models.Outcome) error
}

// SeederOpts contains the optional collaborators of a [Seeder].
type SeederOpts struct {
	Picker   Picker
	Recorder Recorder
	Logger   *log.Logger
	Report   func(models.Outcome)
}

// Seeder issues association calls for a pair of identifier lists.
type Seeder struct {
	client   Associator
	picker   Picker
	recorder Recorder
	logger   *log.Logger
	report   func(models.Outcome)
}

// NewSeeder creates a Seeder. A nil Picker falls back to a randomly seeded PCG source.
func NewSeeder(client Associator, opts SeederOpts) *Seeder {
	if opts.Picker == nil {
		opts.Picker = NewPicker(0)
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Seeder{
		client:   client,
		picker:   opts.Picker,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		report:   opts.Report,
	}
}

// NewPicker returns a [*rand.Rand]. A zero seed draws one from the runtime source.
func NewPicker(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pairs lists the cartesian association calls in playlist-major order.
func Pairs(playlists, tracks []string) []models.Association {
	plan := make([]models.Association, 0, len(playlists)*len(tracks)+2)
	for _, p := range playlists {
		for _, t := range tracks {
			plan = append(plan, models.Association{Kind: models.KindTrack, Parent: p, Child: t})
		}
	}
	return plan
}

// Run issues every association call in order and returns their outcomes.
func (s *Seeder) Run(ctx context.Context, playlists, tracks []string) ([]models.Outcome, error) {
	outcomes := make([]models.Outcome, 0, len(playlists)*len(tracks)+2)

	for _, a := range Pairs(playlists, tracks) {
		o, err := s.issue(ctx, len(outcomes)+1, a)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, o)
	}

	if len(playlists) == 0 || len(tracks) == 0 {
		return outcomes, fmt.Errorf("%w: random track needs at least one playlist and one track", shared.ErrInvalidInput)
	}

	random := models.Association{
		Kind:   models.KindRandomTrack,
		Parent: playlists[0],
		Child:  tracks[s.picker.IntN(len(tracks))],
	}
	o, err := s.issue(ctx, len(outcomes)+1, random)
	if err != nil {
		return outcomes, err
	}
	outcomes = append(outcomes, o)

	if len(playlists) < 2 {
		return outcomes, fmt.Errorf("%w: nesting a playlist needs at least two playlists", shared.ErrInvalidInput)
	}

	nested := models.Association{Kind: models.KindPlaylist, Parent: playlists[0], Child: playlists[1]}
	o, err = s.issue(ctx, len(outcomes)+1, nested)
	if err != nil {
		return outcomes, err
	}

	return append(outcomes, o), nil
}

func (s *Seeder) issue(ctx context.Context, seq int, a models.Association) (models.Outcome, error) {
	s.logger.Debug("association", "seq", seq, "kind", a.Kind, "parent", a.Parent, "child", a.Child)

	resp, err := s.client.Associate(ctx, a)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("%w: %s %s: %v", shared.ErrAPIRequest, a.Kind, a.Path(), err)
	}

	o := models.Outcome{Association: a, Sequence: seq, StatusCode: resp.StatusCode, Body: resp.Body}
	if !o.OK() {
		s.logger.Debug("association rejected", "seq", seq, "status", resp.StatusCode)
	}

	if s.report != nil {
		s.report(o)
	}
	if s.recorder != nil {
		if err := s.recorder.RecordOutcome(o); err != nil {
			s.logger.Warn("failed to record outcome", "seq", seq, "error", err)
		}
	}

	return o, nil
}
