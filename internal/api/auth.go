package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skyward/aerodesk/internal/auth"
	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/middleware"
	"skyward/aerodesk/internal/models/dtos"
	"skyward/aerodesk/internal/services"

	"github.com/go-chi/chi/v5"
)

func setSessionCookie(w http.ResponseWriter, sessionID string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// RegisterHandler handles POST /auth/register
func RegisterHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegistrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid registration payload", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid registration payload", http.StatusBadRequest)
			return
		}

		if _, err := authSvc.Register(r.Context(), &req); err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				common.RespondError(w, initTime, err, "", http.StatusConflict)
				return
			}
			common.RespondError(w, initTime, err, "Failed to register", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Account created", nil, http.StatusCreated)
	}
}

// LoginHandler handles POST /auth/login and POST /staff/login. The
// staff variant refuses accounts without the staff flag using the same
// error as bad credentials.
func LoginHandler(authSvc *services.AuthService, requireStaff bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid login payload", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid login payload", http.StatusBadRequest)
			return
		}

		session, err := authSvc.Login(r.Context(), req.Email, req.Password, requireStaff)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				common.RespondError(w, initTime, err, "", http.StatusUnauthorized)
				return
			}
			common.RespondError(w, initTime, err, "Failed to log in", http.StatusInternalServerError)
			return
		}

		setSessionCookie(w, session.SessionID, session.ExpiresAt)
		common.RespondSuccess(w, initTime, "Logged in", map[string]any{
			"email":    session.Email,
			"is_staff": session.IsStaff,
		})
	}
}

// LogoutHandler handles POST /auth/logout.
func LogoutHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
			if err := authSvc.Logout(r.Context(), cookie.Value); err != nil {
				common.RespondError(w, initTime, err, "Failed to log out", http.StatusInternalServerError)
				return
			}
		}

		clearSessionCookie(w)
		common.RespondSuccess(w, initTime, "Logged out", nil)
	}
}

// TicketLinkHandler handles GET /auth/ticket?token=
//
// Resolves the signed single-use link from a confirmation mail and
// returns the ticket it points at.
func TicketLinkHandler(cabinet *services.CabinetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		token := r.URL.Query().Get("token")
		if token == "" {
			common.RespondError(w, initTime, nil, "Missing token", http.StatusBadRequest)
			return
		}

		info, err := cabinet.ResolveTicketLink(r.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrInvalidTicketLink) {
				common.RespondError(w, initTime, err, "", http.StatusUnauthorized)
				return
			}
			common.RespondError(w, initTime, err, "Failed to resolve ticket link", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Ticket fetched", info)
	}
}

// CabinetHandler handles GET /api/v1/cabinet/flights/{filter} for
// logged-in passengers. Filter is all_flights or future_flights.
func CabinetHandler(cabinet *services.CabinetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := auth.GetSession(r.Context())
		if session == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var futureOnly bool
		switch chi.URLParam(r, "filter") {
		case "all_flights":
			futureOnly = false
		case "future_flights":
			futureOnly = true
		default:
			common.RespondError(w, initTime, nil, "Unknown flights filter", http.StatusBadRequest)
			return
		}

		resp, err := cabinet.Cabinet(r.Context(), session, futureOnly)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch cabinet", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Cabinet fetched", resp)
	}
}
