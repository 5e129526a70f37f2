package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"
)

func googleTestConfig(tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "https://api.example.com/api/auth/oauth/google/callback",
		Scopes:       []string{"email", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.example.com/auth",
			TokenURL: tokenURL,
		},
	}
}

func TestGoogleLoginHandler(t *testing.T) {
	handler := NewGoogleLoginHandler(googleTestConfig("https://accounts.example.com/token"))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/google", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)

	// State cookie is pinned for the callback to verify.
	var state string
	for _, c := range rr.Result().Cookies() {
		if c.Name == "oauth_state" {
			state = c.Value
			assert.True(t, c.HttpOnly)
			assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		}
	}
	assert.NotEmpty(t, state)

	// The redirect carries the same state to the provider.
	loc, err := url.Parse(rr.Header().Get("Location"))
	assert.NoError(t, err)
	assert.Equal(t, "accounts.example.com", loc.Host)
	assert.Equal(t, state, loc.Query().Get("state"))
	assert.Equal(t, "client-id", loc.Query().Get("client_id"))
}

func TestGoogleCallbackHandler_StateMismatch(t *testing.T) {
	handler := NewGoogleCallbackHandler(googleTestConfig("https://accounts.example.com/token"), nil, "https://app.example.com")

	tests := []struct {
		name   string
		cookie *http.Cookie
		state  string
	}{
		{
			name:  "missing cookie",
			state: "some-state",
		},
		{
			name:   "state does not match cookie",
			cookie: &http.Cookie{Name: "oauth_state", Value: "expected"},
			state:  "tampered",
		},
		{
			name:   "empty cookie value",
			cookie: &http.Cookie{Name: "oauth_state", Value: ""},
			state:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/google/callback?state="+url.QueryEscape(tt.state), nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestGoogleCallbackHandler_ExchangeFailure(t *testing.T) {
	// Token endpoint rejects the code, so the exchange fails.
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer tokenSrv.Close()

	handler := NewGoogleCallbackHandler(googleTestConfig(tokenSrv.URL), nil, "https://app.example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/google/callback?state=good&code=bad-code", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "good"})

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
