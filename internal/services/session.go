package services

import (
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

const defaultUserAgent string = "plseed/0.1.0"

// SessionOpts contains the optional parts of a [Session].
type SessionOpts struct {
	UserAgent    string
	RefreshToken string // Sent as refresh_token=<value> in the cookie when set
	SessionID    string // Sent as session=<value> in the cookie when set
}

// Session is the authenticated state of a seeding run. It is read-only once built.
type Session struct {
	token     *oauth2.Token
	cookie    string
	userAgent string
}

// NewSession builds a Session around a bearer token.
func NewSession(accessToken string, opts SessionOpts) *Session {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	pairs := []string{"jwt=" + accessToken}
	if opts.RefreshToken != "" {
		pairs = append(pairs, "refresh_token="+opts.RefreshToken)
	}
	if opts.SessionID != "" {
		pairs = append(pairs, "session="+opts.SessionID)
	}

	return &Session{
		token:     &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"},
		cookie:    strings.Join(pairs, "; "),
		userAgent: opts.UserAgent,
	}
}

// Token returns the raw bearer token.
func (s *Session) Token() string {
	return s.token.AccessToken
}

// Valid reports whether the session carries a usable token.
func (s *Session) Valid() bool {
	return s != nil && s.token.Valid()
}

// Cookie returns the synthetic cookie string.
func (s *Session) Cookie() string {
	return s.cookie
}

// Headers returns a fresh copy of the header set attached to authenticated calls.
func (s *Session) Headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", s.token.Type()+" "+s.token.AccessToken)
	h.Set("Cookie", s.cookie)
	h.Set("User-Agent", s.userAgent)
	h.Set("Accept", "*/*")
	return h
}
