package repositories

import "github.com/desertthunder/plseed/internal/models"

// JournalRecorder implements tasks.Recorder for a single run.
type JournalRecorder struct {
	repo  *RunRepository
	runID string
}

// NewJournalRecorder creates a recorder that appends outcomes to runID.
func NewJournalRecorder(repo *RunRepository, runID string) *JournalRecorder {
	return &JournalRecorder{repo: repo, runID: runID}
}

// RecordOutcome stores o under the recorder's run.
func (j *JournalRecorder) RecordOutcome(o models.Outcome) error {
	return j.repo.RecordOutcome(j.runID, o)
}
