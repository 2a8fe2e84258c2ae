package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
	"github.com/staffpoint/presence-backend-go/internal/handler/http/response"
	authsvc "github.com/staffpoint/presence-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService authsvc.AuthService
	oauthHelper OAuthStateHelper
	frontendURL string
}

// OAuthStateHelper covers the parts of the Google service the handler needs.
// Nil when Google login is not configured.
type OAuthStateHelper interface {
	GenerateState(userAgent string) string
	RedirectURL(state string) string
}

func NewAuthHandler(authService authsvc.AuthService, oauthHelper OAuthStateHelper, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		oauthHelper: oauthHelper,
		frontendURL: frontendURL,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	loginResp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", loginResp)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if a.oauthHelper == nil {
		response.HandleError(w, auth.ErrOAuthNotConfigured)
		return
	}

	state := a.oauthHelper.GenerateState(r.UserAgent())
	cookie := &http.Cookie{
		Name:     "state",
		Value:    state,
		Path:     "/api/v1/auth/oauth/callback/google",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	redirect := a.oauthHelper.RedirectURL(state)
	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/auth/callback/google?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	if a.oauthHelper == nil {
		redirectWithError("oauth_not_configured")
		return
	}

	stateReq, err := r.Cookie("state")
	if err != nil {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}

	if errorValue := r.URL.Query().Get("error"); errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	stateCookie := stateReq.Value
	stateParam := r.URL.Query().Get("state")
	if stateCookie == "" || stateParam != stateCookie {
		slog.Error("State mismatch in OAuth callback")
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Error("Authorization code missing in OAuth callback")
		redirectWithError("code_missing")
		return
	}

	loginResp, err := a.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		slog.Error("LoginWithGoogle service error", "error", err)
		redirectWithError("login_failed")
		return
	}

	redirectURL := fmt.Sprintf("%s/auth/callback/google?access_token=%s", a.frontendURL, url.QueryEscape(loginResp.AccessToken))
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}
