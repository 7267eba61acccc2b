package auth

import (
	"context"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/constants"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SetSession attaches the resolved login session to the request context.
func SetSession(ctx context.Context, session *common.SessionData) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// GetSession returns the login session, or nil for anonymous requests.
func GetSession(ctx context.Context) *common.SessionData {
	if session, ok := ctx.Value(sessionContextKey).(*common.SessionData); ok {
		return session
	}
	return nil
}

// InGroup reports whether the session's user belongs to the named staff group.
func InGroup(session *common.SessionData, group constants.StaffGroup) bool {
	if session == nil {
		return false
	}
	for _, g := range session.Groups {
		if g == group.String() {
			return true
		}
	}
	return false
}

// InAnyGroup reports membership in at least one of the given groups,
// with the superuser override the staff guard honors.
func InAnyGroup(session *common.SessionData, groups ...constants.StaffGroup) bool {
	if session == nil {
		return false
	}
	if session.IsSuperuser {
		return true
	}
	for _, g := range groups {
		if InGroup(session, g) {
			return true
		}
	}
	return false
}
