package portal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Authenticate performs the portal's login handshake and returns a validated session.
//
// The handshake is a strict four-step sequence; no step may be skipped or reordered and every
// step is attempted exactly once:
//
//  1. Fetch the login page without following redirects and scrape the request token (and the
//     initial session cookie, if one is offered) out of it.
//  2. Submit the credential together with the token as a form post. The portal signals success
//     exclusively through a 302 redirect to the dashboard.
//  3. Take the session cookie out of the login response headers.
//  4. Fetch the dashboard with that cookie, following redirects, to finalize the session. If
//     this response rotates the cookie, the rotated value supersedes the one from step 3 —
//     the old one would silently stop authorizing requests.
//
// No credential is transmitted when the token cannot be found. Failures carry one of the
// AuthError reasons and abort immediately; there are no retries.
func (client *Client) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	// Step 1: fetch the login page and scrape token + initial cookie
	loginPage, err := client.getNoRedirect(ctx, "/auth/login")
	if err != nil {
		return nil, fmt.Errorf("could not fetch the login page: %w", err)
	}
	html, err := io.ReadAll(loginPage.Body)
	loginPage.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("could not read the login page: %w", err)
	}
	token, ok := ExtractToken(string(html))
	if !ok {
		return nil, ErrTokenNotFound
	}
	initialCookie, hasInitialCookie := ExtractCookie(loginPage.Header)

	// Step 2: submit the credential + token; only a 302 means the login was accepted
	form := url.Values{}
	form.Set("_token", token)
	form.Set("username", username)
	form.Set("password", password)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.BaseURL+"/auth/validate", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("User-Agent", client.UserAgent)
	if hasInitialCookie {
		request.Header.Set("Cookie", sessionCookieName+"="+initialCookie)
	}
	validation, err := client.noRedirect.Do(request)
	if err != nil {
		return nil, fmt.Errorf("could not submit the login form: %w", err)
	}
	io.Copy(io.Discard, validation.Body)
	validation.Body.Close()
	if validation.StatusCode != http.StatusFound {
		return nil, fmt.Errorf("%w (status %d)", ErrLoginRejected, validation.StatusCode)
	}

	// Step 3: the cookie of the validation response is the authoritative session cookie
	sessionCookie, ok := ExtractCookie(validation.Header)
	if !ok {
		return nil, ErrSessionCookieMissing
	}

	// Step 4: warm the session by fetching the dashboard, following redirects
	request, err = http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL+"/dashboard/index", nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Cookie", sessionCookieName+"="+sessionCookie)
	request.Header.Set("User-Agent", client.UserAgent)
	request.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	dashboard, err := client.follow.Do(request)
	if err != nil {
		return nil, fmt.Errorf("could not fetch the dashboard: %w", err)
	}
	io.Copy(io.Discard, dashboard.Body)
	dashboard.Body.Close()
	if dashboard.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w (status %d)", ErrSessionFinalizationFailed, dashboard.StatusCode)
	}

	// Honor cookie rotation
	if rotated, ok := ExtractCookie(dashboard.Header); ok {
		sessionCookie = rotated
	}

	return &Session{
		Cookie:        sessionCookie,
		EstablishedAt: time.Now(),
	}, nil
}

// getNoRedirect performs a GET request against a portal path without following redirects
func (client *Client) getNoRedirect(ctx context.Context, path string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("User-Agent", client.UserAgent)
	return client.noRedirect.Do(request)
}
