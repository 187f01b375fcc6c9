package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/desertthunder/plseed/internal/shared"
)

const loginPath string = "/users/login"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"jwt_token"`
}

// AuthService exchanges credentials for a [Session].
type AuthService struct {
	api  *APIService
	opts SessionOpts
}

// NewAuthService creates an AuthService; opts are applied to every session it creates.
func NewAuthService(api *APIService, opts SessionOpts) *AuthService {
	return &AuthService{api: api, opts: opts}
}

// LoginError carries the service's answer to a rejected login.
type LoginError struct {
	StatusCode int
	Body       string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("%d, %s", e.StatusCode, e.Body)
}

func (e *LoginError) Unwrap() error {
	return shared.ErrAuthFailed
}

// Login posts email and password to /users/login.
//
// A 200 response with a jwt_token yields a Session. Any other status, or a 200 without a token,
// returns a *LoginError which matches [shared.ErrAuthFailed]. Transport failures match [shared.ErrAPIRequest].
func (a *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := a.api.PostJSON(ctx, loginPath, loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() {
		return nil, &LoginError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	var body loginResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.Token == "" {
		return nil, &LoginError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	return NewSession(body.Token, a.opts), nil
}
