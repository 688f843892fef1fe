package portal

import (
	"net/http"
	"regexp"
)

// sessionCookieName is the name of the portal's session cookie
const sessionCookieName = "orangehrm"

var (
	// The login page embeds the request token as an HTML-escaped attribute of its login form
	// component, e.g. :token="&quot;abc123&quot;"
	tokenPattern = regexp.MustCompile(`:token="&quot;([^"]+)&quot;"`)

	cookiePattern = regexp.MustCompile(sessionCookieName + `=([^;]+)`)
)

// ExtractToken scrapes the login request token out of the login page HTML
func ExtractToken(html string) (string, bool) {
	match := tokenPattern.FindStringSubmatch(html)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractCookie scrapes the portal session cookie value out of the given response headers.
// The second return value indicates whether a cookie was offered at all.
func ExtractCookie(header http.Header) (string, bool) {
	for _, setCookie := range header.Values("Set-Cookie") {
		match := cookiePattern.FindStringSubmatch(setCookie)
		if match != nil {
			return match[1], true
		}
	}
	return "", false
}
