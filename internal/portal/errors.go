package portal

import "errors"

// AuthError represents a failed step of the portal login handshake
type AuthError struct {
	Reason   string
	Wrapping error
}

func (err *AuthError) Error() string {
	return err.Wrapping.Error()
}

// Is matches AuthErrors by their reason so wrapped instances still compare against the
// sentinel values below
func (err *AuthError) Is(target error) bool {
	other, ok := target.(*AuthError)
	return ok && other.Reason == err.Reason
}

var (
	ErrTokenNotFound             = &AuthError{Reason: "token_not_found", Wrapping: errors.New("the login page did not contain a request token")}
	ErrLoginRejected             = &AuthError{Reason: "login_rejected", Wrapping: errors.New("the portal rejected the credential (or the request token was stale)")}
	ErrSessionCookieMissing      = &AuthError{Reason: "session_cookie_missing", Wrapping: errors.New("the login response did not carry a session cookie")}
	ErrSessionFinalizationFailed = &AuthError{Reason: "session_finalization_failed", Wrapping: errors.New("the authenticated landing page could not be fetched")}
)

// QueryError represents a failed leave query against the portal API
type QueryError struct {
	Reason   string
	Wrapping error
}

func (err *QueryError) Error() string {
	return err.Wrapping.Error()
}

// Is matches QueryErrors by their reason so wrapped instances still compare against the
// sentinel values below
func (err *QueryError) Is(target error) bool {
	other, ok := target.(*QueryError)
	return ok && other.Reason == err.Reason
}

var (
	ErrUnexpectedStatus  = &QueryError{Reason: "unexpected_status", Wrapping: errors.New("the leave API responded with an unexpected status code")}
	ErrMalformedResponse = &QueryError{Reason: "malformed_response", Wrapping: errors.New("the leave API response did not match the expected structure")}
)
