package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skyward/aerodesk/internal/auth"
	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/models/dtos"
	"skyward/aerodesk/internal/services"

	"github.com/go-chi/chi/v5"
)

// StaffRedirectHandler handles GET /api/v1/staff/redirect
//
// Resolves the landing page for the logged-in staff member from the
// priority-ordered group table.
func StaffRedirectHandler(staff *services.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := auth.GetSession(r.Context())
		redirect := staff.ResolveRedirect(session)
		if redirect == nil {
			common.RespondError(w, initTime, nil, "No staff landing for this account", http.StatusForbidden)
			return
		}

		common.RespondSuccess(w, initTime, "Redirect resolved", redirect)
	}
}

// StaffFlightsHandler handles GET /api/v1/staff/flights, the check-in
// manager's roster of flights that have not departed yet.
func StaffFlightsHandler(staff *services.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flights, err := staff.FutureFlights(r.Context(), time.Now())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch flights", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Flights fetched", flights)
	}
}

// CancelFlightHandler handles POST /api/v1/staff/flights/{flight_slug}/cancel
// and POST /api/v1/staff/flights/{flight_slug}/uncancel.
func CancelFlightHandler(staff *services.StaffService, cancelled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		slug := chi.URLParam(r, "flight_slug")

		var err error
		if cancelled {
			err = staff.CancelFlight(r.Context(), slug)
		} else {
			err = staff.UncancelFlight(r.Context(), slug)
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update flight", http.StatusNotFound)
			return
		}

		message := "Flight cancelled"
		if !cancelled {
			message = "Flight restored"
		}
		common.RespondSuccess(w, initTime, message, nil)
	}
}

// BoardTicketHandler handles POST /api/v1/staff/flights/{flight_slug}/board
//
// Validates a ticket number at the gate. Bad tickets are a normal
// outcome, not an HTTP error: the gate needs the message either way.
func BoardTicketHandler(boarding *services.BoardingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.BoardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid boarding payload", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid boarding payload", http.StatusBadRequest)
			return
		}

		result, err := boarding.ValidateTicket(r.Context(), chi.URLParam(r, "flight_slug"), req.TicketNumber)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to validate ticket", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, result.Message, result)
	}
}

// StaffRegistrationHandler handles POST /api/v1/staff/registration
//
// Supervisors create or promote staff accounts and attach them to a
// group.
func StaffRegistrationHandler(staff *services.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.StaffRegistrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid staff registration payload", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid staff registration payload", http.StatusBadRequest)
			return
		}

		if _, err := staff.RegisterStaff(r.Context(), &req); err != nil {
			if errors.Is(err, services.ErrUnknownGroup) {
				common.RespondError(w, initTime, err, "", http.StatusBadRequest)
				return
			}
			common.RespondError(w, initTime, err, "Failed to register staff", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Staff account registered", nil, http.StatusCreated)
	}
}
