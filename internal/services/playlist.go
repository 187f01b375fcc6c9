package services

import (
	"context"

	"github.com/desertthunder/plseed/internal/models"
	"github.com/desertthunder/plseed/internal/shared"
)

// PlaylistClient posts association calls on behalf of a [Session].
type PlaylistClient struct {
	api     *APIService
	session *Session
}

// NewPlaylistClient binds the API client to an authenticated session.
func NewPlaylistClient(api *APIService, session *Session) *PlaylistClient {
	return &PlaylistClient{api: api, session: session}
}

// Associate asks the service to add a.Child to a.Parent.
//
// Non-200 answers are returned as a response, not an error.
func (c *PlaylistClient) Associate(ctx context.Context, a models.Association) (*APIResponse, error) {
	if !c.session.Valid() {
		return nil, shared.ErrNotAuthenticated
	}
	return c.api.Post(ctx, a.Path(), nil, c.session.Headers())
}
