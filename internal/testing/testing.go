// package testing contains shared testing utilities
package testing

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// Call is a request observed by [PlaylistServer].
type Call struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// PlaylistServer fakes the playlist service: POST /v1/users/login and POST /v1/playlist/{parent}/{child}.
type PlaylistServer struct {
	*httptest.Server

	Token       string         // Returned as jwt_token on successful login
	LoginStatus int            // Status for the login endpoint, 200 when zero
	LoginBody   string         // Overrides the login response body when set
	Fail        map[string]int  // Association path (without prefix) -> status to return
	Drop        map[string]bool // Association paths whose connection is closed without an answer

	mu    sync.Mutex
	calls []Call
}

// NewPlaylistServer starts a fake service that accepts any login and every association.
func NewPlaylistServer(t *testing.T) *PlaylistServer {
	t.Helper()

	s := &PlaylistServer{Token: "test-token", Fail: map[string]int{}, Drop: map[string]bool{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the server URL with the /v1 prefix.
func (s *PlaylistServer) BaseURL() string {
	return s.URL + "/v1"
}

// Calls returns a copy of every request received so far.
func (s *PlaylistServer) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Associations returns the paths of association calls, with the /v1 prefix removed.
func (s *PlaylistServer) Associations() []string {
	paths := []string{}
	for _, c := range s.Calls() {
		if strings.HasPrefix(c.Path, "/v1/playlist/") {
			paths = append(paths, strings.TrimPrefix(c.Path, "/v1"))
		}
	}
	return paths
}

func (s *PlaylistServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone(), Body: string(body)})
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/v1/users/login":
		status := s.LoginStatus
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if s.LoginBody != "" {
			w.Write([]byte(s.LoginBody))
			return
		}
		if status != http.StatusOK {
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"jwt_token": s.Token})
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/v1/playlist/"):
		path := strings.TrimPrefix(r.URL.Path, "/v1")
		if s.Drop[path] {
			if hj, ok := w.(http.Hijacker); ok {
				if conn, _, err := hj.Hijack(); err == nil {
					conn.Close()
				}
			}
			return
		}
		if status, ok := s.Fail[path]; ok {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"error": "rejected"})
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.Token {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "added"})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// WriteLines writes lines to name inside dir and returns the full path.
func WriteLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
