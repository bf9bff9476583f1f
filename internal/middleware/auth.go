package middleware

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/campusmeet/sportsapp/internal/ctxkeys"
	"github.com/campusmeet/sportsapp/internal/service"
)

// SessionMiddleware resolves the session cookie and adds the session to the
// request context if it is live. Every response for an authenticated
// request carries a refreshed copy of the cookie with the session's
// original absolute expiry; activity never extends it.
func SessionMiddleware(sessionService *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(service.SessionCookieName)
			if err != nil {
				// No cookie, continue without auth
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessionService.Authenticate(cookie.Value)
			if err != nil {
				// Missing or expired session, clear cookie and continue
				sessionService.ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			sessionService.SetSessionCookie(w, session)

			ctx := ctxkeys.WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth guards page endpoints: unauthenticated requests are
// redirected to the login page.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxkeys.Session(r.Context())
		if session == nil {
			http.Redirect(w, r, "/login.html?error="+url.QueryEscape("Please log in"), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireAuthAPI guards API endpoints: unauthenticated requests get a 401
// JSON error instead of a redirect.
func RequireAuthAPI(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxkeys.Session(r.Context())
		if session == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Not logged in"})
			return
		}
		next.ServeHTTP(w, r)
	}
}
