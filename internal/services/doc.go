// Package services talks to the playlist web service over HTTP.
//
// # API Client
//
// [APIService] issues raw POST requests against the service base URL (e.g. http://localhost:10000/v1)
// and returns an [APIResponse] holding status, headers and body. Non-2xx statuses are data, not errors:
// callers decide what a failed call means. Only transport failures are returned as errors.
//
// # Authentication
//
// [AuthService.Login] posts credentials to /users/login and turns the jwt_token field of a 200 response
// into a [Session]. Any other answer wraps [shared.ErrAuthFailed].
//
// # Session Headers
//
// A [Session] holds the bearer token as an [oauth2.Token] together with a synthetic cookie
// (jwt=<token> plus optional refresh_token and session pairs) and the user agent.
// [Session.Headers] builds the header set attached to every authenticated call.
//
// # Associations
//
// [PlaylistClient.Associate] posts /playlist/{parent}/{child} with the session headers and an empty body.
package services
