package portal

import (
	"net/http"
	"strings"
	"time"
)

// defaultUserAgent is sent with every portal request; the portal serves a reduced login page to
// clients it does not recognize as browsers.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Client represents an HTTP client for the HR portal.
// The portal exposes no stable login API, only an HTML login page with cookie-based session
// semantics, so the client drives a scraped form login (see Authenticate) before it can query
// the leave API.
type Client struct {
	BaseURL   string
	UserAgent string

	follow     *http.Client
	noRedirect *http.Client
}

// NewClient creates a new HR portal client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		UserAgent: defaultUserAgent,
		follow: &http.Client{
			Timeout: timeout,
		},
		noRedirect: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}
