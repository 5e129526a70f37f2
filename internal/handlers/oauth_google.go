package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/models"
)

const (
	oauthStateCookie = "oauth_state"
	googleUserInfo   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// OAuthUserFinder defines the interface that the service must implement.
type OAuthUserFinder interface {
	FindOrCreateOAuthUser(ctx context.Context, email, firstName, lastName string) (*models.UserDB, error)
	IssueToken(ctx context.Context, user *models.UserDB) (string, error)
}

type googleUser struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// NewGoogleLoginHandler redirects the browser to Google's consent page.
// The random state is pinned in a short-lived cookie and checked on
// callback.
// @Summary Start Google OAuth login
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /api/auth/oauth/google [get]
func NewGoogleLoginHandler(cfg *oauth2.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			logger.Log.Errorw("failed to generate oauth state", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}
		state := base64.RawURLEncoding.EncodeToString(buf)

		http.SetCookie(w, &http.Cookie{
			Name:     oauthStateCookie,
			Value:    state,
			Path:     "/",
			Expires:  time.Now().Add(10 * time.Minute),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, cfg.AuthCodeURL(state), http.StatusTemporaryRedirect)
	}
}

// NewGoogleCallbackHandler completes the OAuth code exchange, upserts
// the account by email and redirects back to the frontend with a
// session token.
// @Summary Complete Google OAuth login
// @Tags auth
// @Success 307 "Redirect to frontend with token"
// @Failure 401 {object} handlers.APIError "State mismatch or exchange failed"
// @Router /api/auth/oauth/google/callback [get]
func NewGoogleCallbackHandler(cfg *oauth2.Config, svc OAuthUserFinder, frontendURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(oauthStateCookie)
		if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
			writeError(w, r, http.StatusUnauthorized, "OAuth state mismatch")
			return
		}

		token, err := cfg.Exchange(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			logger.Log.Errorw("oauth code exchange failed", "err", err)
			writeError(w, r, http.StatusUnauthorized, "OAuth code exchange failed")
			return
		}

		resp, err := cfg.Client(r.Context(), token).Get(googleUserInfo)
		if err != nil {
			logger.Log.Errorw("failed to fetch google userinfo", "err", err)
			writeError(w, r, http.StatusBadGateway, "Failed to fetch user info")
			return
		}
		defer resp.Body.Close()

		var gu googleUser
		if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil || gu.Email == "" {
			logger.Log.Errorw("failed to decode google userinfo", "err", err)
			writeError(w, r, http.StatusBadGateway, "Failed to decode user info")
			return
		}

		user, err := svc.FindOrCreateOAuthUser(r.Context(), gu.Email, gu.GivenName, gu.FamilyName)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		session, err := svc.IssueToken(r.Context(), user)
		if err != nil {
			logger.Log.Errorw("failed to generate token", "err", err)
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		redirect := frontendURL + "/auth/callback?token=" + url.QueryEscape(session)
		http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
	}
}
