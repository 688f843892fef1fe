package portal

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePortal implements the portal's login handshake for tests
type fakePortal struct {
	token         string
	initialCookie string
	sessionCookie string
	rotatedCookie string

	rejectLogin      bool
	omitLoginCookie  bool
	failDashboard    bool
	validateRequests int
	dashboardCookie  string
}

func (portal *fakePortal) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(writer http.ResponseWriter, request *http.Request) {
		if portal.initialCookie != "" {
			writer.Header().Add("Set-Cookie", "orangehrm="+portal.initialCookie+"; path=/; HttpOnly")
		}
		fmt.Fprintf(writer, `<oxd-login :token="&quot;%s&quot;"></oxd-login>`, portal.token)
	})
	mux.HandleFunc("/auth/validate", func(writer http.ResponseWriter, request *http.Request) {
		portal.validateRequests++
		request.ParseForm()
		if portal.rejectLogin || request.PostForm.Get("_token") != portal.token ||
			request.PostForm.Get("username") != "alice" || request.PostForm.Get("password") != "hunter2" {
			writer.WriteHeader(http.StatusOK)
			return
		}
		if !portal.omitLoginCookie {
			writer.Header().Add("Set-Cookie", "orangehrm="+portal.sessionCookie+"; path=/; HttpOnly")
		}
		writer.Header().Set("Location", "/dashboard/index")
		writer.WriteHeader(http.StatusFound)
	})
	mux.HandleFunc("/dashboard/index", func(writer http.ResponseWriter, request *http.Request) {
		if cookie, err := request.Cookie("orangehrm"); err == nil {
			portal.dashboardCookie = cookie.Value
		}
		if portal.failDashboard {
			writer.WriteHeader(http.StatusInternalServerError)
			return
		}
		if portal.rotatedCookie != "" {
			writer.Header().Add("Set-Cookie", "orangehrm="+portal.rotatedCookie+"; path=/; HttpOnly")
		}
		writer.Write([]byte("<html>dashboard</html>"))
	})
	return mux
}

func TestClient_Authenticate(t *testing.T) {
	fake := &fakePortal{token: "tok-1", initialCookie: "init-1", sessionCookie: "sess-1"}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	session, err := client.Authenticate(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", session.Cookie)
	assert.Equal(t, "sess-1", fake.dashboardCookie, "the dashboard warm-up has to carry the step-3 cookie")
	assert.False(t, session.EstablishedAt.IsZero())
}

func TestClient_Authenticate_CookieRotation(t *testing.T) {
	fake := &fakePortal{token: "tok-1", sessionCookie: "sess-1", rotatedCookie: "sess-2"}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	session, err := client.Authenticate(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "sess-2", session.Cookie, "a rotated cookie supersedes the login one")
}

func TestClient_Authenticate_TokenNotFound(t *testing.T) {
	fake := &fakePortal{token: ""}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	session, err := client.Authenticate(context.Background(), "alice", "hunter2")
	assert.ErrorIs(t, err, ErrTokenNotFound)
	assert.Nil(t, session)
	assert.Zero(t, fake.validateRequests, "no credential may be transmitted without a token")
}

func TestClient_Authenticate_LoginRejected(t *testing.T) {
	fake := &fakePortal{token: "tok-1", sessionCookie: "sess-1", rejectLogin: true}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	session, err := client.Authenticate(context.Background(), "alice", "hunter2")
	assert.ErrorIs(t, err, ErrLoginRejected)
	assert.Nil(t, session)
	assert.Empty(t, fake.dashboardCookie, "no dashboard request may follow a rejected login")
}

func TestClient_Authenticate_SessionCookieMissing(t *testing.T) {
	fake := &fakePortal{token: "tok-1", sessionCookie: "sess-1", omitLoginCookie: true}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Authenticate(context.Background(), "alice", "hunter2")
	assert.ErrorIs(t, err, ErrSessionCookieMissing)
}

func TestClient_Authenticate_SessionFinalizationFailed(t *testing.T) {
	fake := &fakePortal{token: "tok-1", sessionCookie: "sess-1", failDashboard: true}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Authenticate(context.Background(), "alice", "hunter2")
	assert.ErrorIs(t, err, ErrSessionFinalizationFailed)
}
