package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tu "github.com/desertthunder/plseed/internal/testing"
)

func TestAPIService(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Custom BaseURL and Client", func(t *testing.T) {
			customClient := &http.Client{}
			srv := NewAPIService("http://example.com/v1/", customClient)

			if srv.baseURL != "http://example.com/v1" {
				t.Errorf("expected baseURL without trailing slash, got %s", srv.baseURL)
			}
			if srv.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("With Empty BaseURL", func(t *testing.T) {
			srv := NewAPIService("", nil)

			if srv.BaseURL() != defaultBaseURL {
				t.Errorf("expected default baseURL %s, got %s", defaultBaseURL, srv.BaseURL())
			}
		})

		t.Run("With Nil Client", func(t *testing.T) {
			srv := NewAPIService("http://example.com", nil)

			if srv.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})
	})

	t.Run("Post", func(t *testing.T) {
		t.Run("Sends Headers And Empty Body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if r.URL.Path != "/v1/playlist/P1/T1" {
					t.Errorf("expected path /v1/playlist/P1/T1, got %s", r.URL.Path)
				}
				if r.Header.Get("X-Test") != "yes" {
					t.Errorf("expected X-Test header, got %q", r.Header.Get("X-Test"))
				}
				if r.ContentLength != 0 {
					t.Errorf("expected Content-Length 0, got %d", r.ContentLength)
				}
				body, _ := io.ReadAll(r.Body)
				if len(body) != 0 {
					t.Errorf("expected empty body, got %q", body)
				}

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]string{"status": "success"})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL+"/v1", nil)
			resp, err := srv.Post(context.Background(), "/playlist/P1/T1", nil, http.Header{"X-Test": {"yes"}})

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !resp.OK() {
				t.Errorf("expected status 200, got %d", resp.StatusCode)
			}
			if !strings.Contains(string(resp.Body), `"status":"success"`) {
				t.Errorf("expected raw JSON body, got %s", resp.Body)
			}
		})

		t.Run("Non-200 Is Not An Error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte("already in playlist"))
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			resp, err := srv.Post(context.Background(), "/x", nil, nil)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.OK() {
				t.Error("expected OK() to be false")
			}
			if string(resp.Body) != "already in playlist" {
				t.Errorf("expected raw body, got %s", resp.Body)
			}
		})

		t.Run("Failed Request Creation", func(t *testing.T) {
			srv := NewAPIService("http://example.com", nil)
			_, err := srv.Post(context.Background(), "/test\x00invalid", nil, nil)

			if err == nil || !strings.Contains(err.Error(), "failed to create request") {
				t.Errorf("expected 'failed to create request' error, got %v", err)
			}
		})

		t.Run("Failed HTTP Request", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused")),
			}

			srv := NewAPIService("http://example.com", client)
			_, err := srv.Post(context.Background(), "/test", nil, nil)

			if err == nil || !strings.Contains(err.Error(), "request failed") {
				t.Errorf("expected 'request failed' error, got %v", err)
			}
		})

		t.Run("Failed Response Body Read", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(&http.Response{
					StatusCode: http.StatusOK,
					Body:       &tu.FCloser{},
					Header:     http.Header{},
				}, nil),
			}

			srv := NewAPIService("http://example.com", client)
			_, err := srv.Post(context.Background(), "/test", nil, nil)

			if err == nil || !strings.Contains(err.Error(), "failed to read response") {
				t.Errorf("expected 'failed to read response' error, got %v", err)
			}
		})
	})

	t.Run("PostJSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
			}

			var payload map[string]string
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			if payload["name"] != "mix" {
				t.Errorf("expected name mix, got %v", payload)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		srv := NewAPIService(server.URL, nil)
		if _, err := srv.PostJSON(context.Background(), "/", map[string]string{"name": "mix"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("PostJSON Marshal Error", func(t *testing.T) {
		srv := NewAPIService("http://example.com", nil)
		_, err := srv.PostJSON(context.Background(), "/", map[string]any{"bad": make(chan int)})
		if err == nil || !strings.Contains(err.Error(), "failed to marshal request") {
			t.Errorf("expected marshal error, got %v", err)
		}
	})
}
