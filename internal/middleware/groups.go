package middleware

import (
	"net/http"

	"skyward/aerodesk/internal/auth"
	"skyward/aerodesk/internal/constants"
)

// RequireGroups guards a route ladder behind staff group membership.
// The session must belong to at least one of the listed groups;
// superusers pass regardless of membership.
func RequireGroups(groups ...constants.StaffGroup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := auth.GetSession(r.Context())
			if !auth.InAnyGroup(session, groups...) {
				http.Error(w, "Unauthorized. Need group perms", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
