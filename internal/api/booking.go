package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/models/dtos"
	"skyward/aerodesk/internal/services"

	"github.com/go-chi/chi/v5"
)

// BookFlightHandler handles POST /api/v1/booking/{flight_slug}/{date}/{passengers}
//
// @Summary      Book seats on a flight
// @Description  Creates tickets for every passenger in the submission,
// @Description  auto-registering accounts for unknown emails, and
// @Description  returns the checkout redirect data.
// @Tags         Booking
// @Accept       json
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Failure      404  {object}  dtos.APIResponse
// @Router       /api/v1/booking/{flight_slug}/{date}/{passengers} [post]
func BookFlightHandler(booking *services.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		slug := chi.URLParam(r, "flight_slug")
		date, err := common.ParseFlightDate(chi.URLParam(r, "date"))
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid date", http.StatusBadRequest)
			return
		}

		passengers, err := strconv.Atoi(chi.URLParam(r, "passengers"))
		if err != nil || passengers < 1 {
			common.RespondError(w, initTime, nil, "Invalid passenger count", http.StatusBadRequest)
			return
		}

		var req dtos.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid booking payload", http.StatusBadRequest)
			return
		}

		result, err := booking.Book(r.Context(), slug, date, passengers, &req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrFlightNotFound):
				common.RespondError(w, initTime, err, "", http.StatusNotFound)
			case services.IsValidationError(err):
				common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			default:
				common.RespondError(w, initTime, err, "Failed to book flight", http.StatusInternalServerError)
			}
			return
		}

		common.RespondSuccess(w, initTime, "Booking confirmed", result)
	}
}
