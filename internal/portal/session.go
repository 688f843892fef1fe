package portal

import "time"

// Session represents an authenticated portal session.
// It is an opaque bearer of authorization: the cookie value is attached to subsequent API
// requests and is valid for one portal interaction sequence. Sessions are established per
// invocation and never persisted across runs.
type Session struct {
	Cookie        string
	EstablishedAt time.Time
}
