package middleware

import (
	"errors"
	"net/http"

	"skyward/aerodesk/internal/auth"
	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/logging"
)

// SessionCookieName is the login cookie set by the auth endpoints.
const SessionCookieName = "aerodesk_session"

// SessionMiddleware resolves the login cookie into a session and puts
// it on the request context. Anonymous requests pass through with no
// session; handlers that need one sit behind RequireAuth.
func SessionMiddleware(sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.GetSession(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, common.ErrSessionNotFound) {
					logging.Error("Session lookup failed", "error", err.Error())
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.SetSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.GetSession(r.Context()) == nil {
				http.Error(w, "Unauthorized. Login required", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff rejects sessions that are not flagged staff. Superusers
// always pass.
func RequireStaff() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := auth.GetSession(r.Context())
			if session == nil || (!session.IsStaff && !session.IsSuperuser) {
				http.Error(w, "Unauthorized. Need staff perms", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
