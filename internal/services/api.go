package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultBaseURL string = "http://localhost:10000/v1"

// APIService makes raw HTTP requests against the playlist service.
type APIService struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIService creates a new API service rooted at baseURL.
func NewAPIService(baseURL string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// BaseURL returns the URL every request path is appended to.
func (a *APIService) BaseURL() string {
	return a.baseURL
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the service answered 200.
func (r *APIResponse) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Post performs a POST request to path with the given body and headers and returns the raw response.
//
// A nil body is sent as an empty request with Content-Length 0.
func (a *APIService) Post(ctx context.Context, path string, body []byte, header http.Header) (*APIResponse, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &APIResponse{StatusCode: resp.StatusCode, Body: data}, nil
}

// PostJSON marshals payload and posts it with Content-Type application/json.
func (a *APIService) PostJSON(ctx context.Context, path string, payload any) (*APIResponse, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	return a.Post(ctx, path, data, header)
}
