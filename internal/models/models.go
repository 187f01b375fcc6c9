package models

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// AssociationKind distinguishes the three kinds of association calls made during a run.
type AssociationKind string

const (
	KindTrack       AssociationKind = "track"        // cartesian pair
	KindRandomTrack AssociationKind = "random_track" // random track into the first playlist
	KindPlaylist    AssociationKind = "playlist"     // second playlist into the first playlist
)

// Label is the noun used for the child in progress output.
func (k AssociationKind) Label() string {
	switch k {
	case KindRandomTrack:
		return "random track"
	case KindPlaylist:
		return "playlist"
	default:
		return "track"
	}
}

// Association is a request to add Child to Parent.
type Association struct {
	Kind   AssociationKind
	Parent string
	Child  string
}

// Path is the endpoint path relative to the API base, e.g. /playlist/{parent}/{child}
func (a Association) Path() string {
	return fmt.Sprintf("/playlist/%s/%s", url.PathEscape(a.Parent), url.PathEscape(a.Child))
}

// Outcome is the recorded result of one association call.
type Outcome struct {
	Association
	Sequence   int    // 1-based call order within the run
	StatusCode int    // HTTP status returned by the service
	Body       []byte // Raw response body
}

// OK reports whether the service answered 200.
func (o Outcome) OK() bool {
	return o.StatusCode == http.StatusOK
}

// RunStatus is the lifecycle state of a journaled run.
type RunStatus string

const (
	RunRunning    RunStatus = "running"
	RunCompleted  RunStatus = "completed"
	RunAuthFailed RunStatus = "auth_failed"
	RunAborted    RunStatus = "aborted"
)

// Run describes a single seeding pass.
type Run struct {
	ID            string
	BaseURL       string
	Email         string
	PlaylistCount int
	TrackCount    int
	Status        RunStatus
	StartedAt     time.Time
	FinishedAt    *time.Time

	// Populated by list queries
	Calls     int
	Succeeded int
}

// NewRun creates a running Run stamped with the current time.
func NewRun(id, baseURL, email string, playlists, tracks int) *Run {
	return &Run{
		ID:            id,
		BaseURL:       baseURL,
		Email:         email,
		PlaylistCount: playlists,
		TrackCount:    tracks,
		Status:        RunRunning,
		StartedAt:     time.Now().UTC(),
	}
}
