package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/desertthunder/plseed/internal/shared"
	tu "github.com/desertthunder/plseed/internal/testing"
)

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("Login Success", func(t *testing.T) {
		server := tu.NewPlaylistServer(t)
		server.Token = "T"

		auth := NewAuthService(NewAPIService(server.BaseURL(), nil), SessionOpts{UserAgent: "test/1"})
		session, err := auth.Login(ctx, "a@a.com", "1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got := session.Headers().Get("Authorization"); got != "Bearer T" {
			t.Errorf("expected Authorization 'Bearer T', got %q", got)
		}

		calls := server.Calls()
		if len(calls) != 1 {
			t.Fatalf("expected 1 call, got %d", len(calls))
		}
		if calls[0].Path != "/v1/users/login" {
			t.Errorf("expected login path, got %s", calls[0].Path)
		}

		var body map[string]string
		if err := json.Unmarshal([]byte(calls[0].Body), &body); err != nil {
			t.Fatalf("login body is not JSON: %v", err)
		}
		if body["email"] != "a@a.com" || body["password"] != "1" {
			t.Errorf("unexpected login body %v", body)
		}
	})

	t.Run("Login Rejected", func(t *testing.T) {
		server := tu.NewPlaylistServer(t)
		server.LoginStatus = http.StatusUnauthorized

		auth := NewAuthService(NewAPIService(server.BaseURL(), nil), SessionOpts{})
		session, err := auth.Login(ctx, "a@a.com", "wrong")

		if session != nil {
			t.Error("expected no session")
		}
		if !errors.Is(err, shared.ErrAuthFailed) {
			t.Fatalf("expected ErrAuthFailed, got %v", err)
		}

		var loginErr *LoginError
		if !errors.As(err, &loginErr) {
			t.Fatalf("expected *LoginError, got %T", err)
		}
		if loginErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", loginErr.StatusCode)
		}
		if loginErr.Body == "" {
			t.Error("expected body to be kept")
		}
	})

	t.Run("Login Without Token", func(t *testing.T) {
		tt := []struct {
			name string
			body string
		}{
			{name: "missing field", body: `{"user": "a@a.com"}`},
			{name: "empty token", body: `{"jwt_token": ""}`},
			{name: "not json", body: `welcome`},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				server := tu.NewPlaylistServer(t)
				server.LoginBody = tc.body

				auth := NewAuthService(NewAPIService(server.BaseURL(), nil), SessionOpts{})
				if _, err := auth.Login(ctx, "a@a.com", "1"); !errors.Is(err, shared.ErrAuthFailed) {
					t.Errorf("expected ErrAuthFailed, got %v", err)
				}
			})
		}
	})

	t.Run("Transport Failure", func(t *testing.T) {
		client := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("dial tcp: connection refused"))}

		auth := NewAuthService(NewAPIService("http://localhost:10000/v1", client), SessionOpts{})
		_, err := auth.Login(ctx, "a@a.com", "1")

		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
		if errors.Is(err, shared.ErrAuthFailed) {
			t.Error("transport failure should not look like a rejected login")
		}
	})
}
