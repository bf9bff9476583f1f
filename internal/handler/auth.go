package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/campusmeet/sportsapp/internal/service"
)

type authHandler struct {
	authService    *service.AuthService
	sessionService *service.SessionService
}

func NewAuthHandler(authService *service.AuthService, sessionService *service.SessionService) *authHandler {
	return &authHandler{
		authService:    authService,
		sessionService: sessionService,
	}
}

// Signup creates an unverified account and dispatches the verification
// email. An existing account redirects to login with a success-style
// message, distinct from validation failures.
func (h *authHandler) Signup(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	_, err := h.authService.Signup(username, email, password)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrEmailExists):
			redirectWithMessage(w, r, "/login.html", "success", "Account already exists. Please log in.")
		case errors.As(err, &vErr):
			redirectWithMessage(w, r, "/signup.html", "error", vErr.Reason)
		default:
			slog.Error("signup failed", "error", err, "email", email)
			http.Error(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<h2>Signup successful!</h2>
<p>A verification email has been sent to your campus email.</p>
<p>Please verify before logging in.</p>`)
}

// Verify consumes the emailed single-use token. Invalid and already-used
// tokens get the same generic redirect so token probing learns nothing.
func (h *authHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if token == "" {
		redirectWithMessage(w, r, "/login.html", "error", "Invalid verification link")
		return
	}

	_, err := h.authService.VerifyEmail(token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			redirectWithMessage(w, r, "/login.html", "error", "Invalid or expired verification token")
			return
		}
		slog.Error("verification failed", "error", err)
		redirectWithMessage(w, r, "/login.html", "error", "Server error during verification")
		return
	}

	redirectWithMessage(w, r, "/login.html", "success", "Email verified successfully! You can now log in.")
}

func (h *authHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, r, "login.html")
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := h.authService.Login(email, password)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			redirectWithMessage(w, r, "/login.html", "error", vErr.Reason)
		case errors.Is(err, service.ErrInvalidCredentials):
			redirectWithMessage(w, r, "/login.html", "error", "Incorrect email or password")
		case errors.Is(err, service.ErrEmailNotVerified):
			redirectWithMessage(w, r, "/login.html", "error", "Please verify your email first")
		default:
			slog.Error("login failed", "error", err, "email", email)
			redirectWithMessage(w, r, "/login.html", "error", "Server error")
		}
		return
	}

	session, err := h.sessionService.Create(user.ID, user.Username)
	if err != nil {
		slog.Error("failed to create session", "error", err, "user_id", user.ID)
		redirectWithMessage(w, r, "/login.html", "error", "Server error")
		return
	}

	h.sessionService.SetSessionCookie(w, session)
	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout destroys the session; destroying twice is not an error.
func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(service.SessionCookieName)
	if err == nil {
		err = h.sessionService.Destroy(cookie.Value)
		if err != nil {
			slog.Error("failed to destroy session", "error", err)
		}
	}

	h.sessionService.ClearSessionCookie(w)
	http.Redirect(w, r, "/login.html", http.StatusSeeOther)
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, target, key, message string) {
	http.Redirect(w, r, target+"?"+key+"="+url.QueryEscape(message), http.StatusSeeOther)
}
