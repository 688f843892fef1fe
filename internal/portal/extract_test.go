package portal

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractToken(t *testing.T) {
	html := `<div id="app"><oxd-login :token="&quot;abc123XYZ&quot;" :show-social="false"></oxd-login></div>`
	token, ok := ExtractToken(html)
	assert.True(t, ok)
	assert.Equal(t, "abc123XYZ", token)
}

func TestExtractToken_NotFound(t *testing.T) {
	_, ok := ExtractToken(`<html><body>maintenance</body></html>`)
	assert.False(t, ok)

	// A token attribute without the HTML-escaped quoting must not match
	_, ok = ExtractToken(`:token="abc123"`)
	assert.False(t, ok)
}

func TestExtractCookie(t *testing.T) {
	header := http.Header{}
	header.Add("Set-Cookie", "orangehrm=s3ss10n; path=/; HttpOnly; SameSite=Lax")

	value, ok := ExtractCookie(header)
	assert.True(t, ok)
	assert.Equal(t, "s3ss10n", value)
}

func TestExtractCookie_MultipleCookies(t *testing.T) {
	header := http.Header{}
	header.Add("Set-Cookie", "XSRF-TOKEN=whatever; path=/")
	header.Add("Set-Cookie", "orangehrm=the-one; path=/; HttpOnly")

	value, ok := ExtractCookie(header)
	assert.True(t, ok)
	assert.Equal(t, "the-one", value)
}

func TestExtractCookie_NotOffered(t *testing.T) {
	header := http.Header{}
	header.Add("Set-Cookie", "XSRF-TOKEN=whatever; path=/")

	_, ok := ExtractCookie(header)
	assert.False(t, ok)

	_, ok = ExtractCookie(http.Header{})
	assert.False(t, ok)
}
