package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"skyward/aerodesk/internal/auth"
	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/constants"
)

func runGuard(t *testing.T, guard func(http.Handler) http.Handler, session *common.SessionData) int {
	t.Helper()

	handler := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/staff/flights", nil)
	if session != nil {
		req = req.WithContext(auth.SetSession(req.Context(), session))
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr.Code
}

func TestRequireGroups(t *testing.T) {
	guard := RequireGroups(constants.GroupCheckInManagers, constants.GroupSupervisors)

	member := &common.SessionData{
		IsStaff: true,
		Groups:  []string{constants.GroupCheckInManagers.String()},
	}
	if code := runGuard(t, guard, member); code != http.StatusOK {
		t.Errorf("Group member got %d, want 200", code)
	}

	outsider := &common.SessionData{
		IsStaff: true,
		Groups:  []string{constants.GroupGateManagers.String()},
	}
	if code := runGuard(t, guard, outsider); code != http.StatusUnauthorized {
		t.Errorf("Non-member got %d, want 401", code)
	}

	superuser := &common.SessionData{IsStaff: true, IsSuperuser: true}
	if code := runGuard(t, guard, superuser); code != http.StatusOK {
		t.Errorf("Superuser got %d, want 200", code)
	}

	if code := runGuard(t, guard, nil); code != http.StatusUnauthorized {
		t.Errorf("Anonymous got %d, want 401", code)
	}
}

func TestRequireStaff(t *testing.T) {
	guard := RequireStaff()

	staff := &common.SessionData{IsStaff: true}
	if code := runGuard(t, guard, staff); code != http.StatusOK {
		t.Errorf("Staff got %d, want 200", code)
	}

	passenger := &common.SessionData{}
	if code := runGuard(t, guard, passenger); code != http.StatusUnauthorized {
		t.Errorf("Passenger got %d, want 401", code)
	}

	superuser := &common.SessionData{IsSuperuser: true}
	if code := runGuard(t, guard, superuser); code != http.StatusOK {
		t.Errorf("Superuser got %d, want 200", code)
	}
}

func TestRequireAuth(t *testing.T) {
	guard := RequireAuth()

	if code := runGuard(t, guard, &common.SessionData{}); code != http.StatusOK {
		t.Errorf("Logged-in got %d, want 200", code)
	}
	if code := runGuard(t, guard, nil); code != http.StatusUnauthorized {
		t.Errorf("Anonymous got %d, want 401", code)
	}
}
