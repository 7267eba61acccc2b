package api

import (
	"net/http"
	"strconv"
	"time"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/models/dtos"
	"skyward/aerodesk/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// startLocationLimit caps origin autocomplete suggestions.
const startLocationLimit = 3

// SearchFlightsHandler handles GET /api/v1/search?from&to&date&passengers
//
// @Summary      Search flights
// @Description  Lists bookable flights on the exact route and date with
// @Description  enough open seats for the party. Zero matches is an
// @Description  empty list.
// @Tags         Flights
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/search [get]
func SearchFlightsHandler(availability *services.AvailabilityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := r.URL.Query()
		passengers, err := strconv.Atoi(q.Get("passengers"))
		if err != nil {
			passengers = 0
		}

		req := dtos.SearchFlightRequest{
			StartLocation:   q.Get("from"),
			EndLocation:     q.Get("to"),
			StartDate:       q.Get("date"),
			PassengerNumber: passengers,
		}
		if err := validate.Struct(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid search parameters", http.StatusBadRequest)
			return
		}

		startDate, err := common.ParseFlightDate(req.StartDate)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid start date", http.StatusBadRequest)
			return
		}

		flights, err := availability.SearchFlights(r.Context(), req.StartLocation, req.EndLocation, startDate, req.PassengerNumber)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to search flights", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Flights fetched", flights)
	}
}

// LocationsHandler handles GET /api/v1/locations?from&to&is_end
//
// Autocomplete for the search form. Without is_end it suggests origins
// matching the typed prefix; with is_end it suggests destinations
// reachable from the chosen origin.
func LocationsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := r.URL.Query()
		isEnd, _ := strconv.ParseBool(q.Get("is_end"))

		var (
			locations []string
			err       error
		)
		if isEnd {
			from := q.Get("from")
			if from == "" {
				common.RespondError(w, initTime, nil, "Missing start location", http.StatusBadRequest)
				return
			}
			locations, err = deps.Repo.Location.EndLocations(r.Context(), from, q.Get("to"))
		} else {
			locations, err = deps.Repo.Location.StartLocations(r.Context(), q.Get("from"), startLocationLimit)
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch locations", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Locations fetched", locations)
	}
}

// FlightSeatsHandler handles GET /api/v1/flight/{flight_slug}/{date}
//
// Returns the flight details plus the seat map partitioned by seat
// type, with per-seat availability. The date segment must match the
// flight's departure date.
func FlightSeatsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		date, err := common.ParseFlightDate(chi.URLParam(r, "date"))
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid date", http.StatusBadRequest)
			return
		}

		slug := chi.URLParam(r, "flight_slug")
		flight, err := deps.Repo.Flight.GetBySlug(r.Context(), slug)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch flight", http.StatusInternalServerError)
			return
		}
		if flight == nil || flight.StartDate.Format("2006-01-02") != date.Format("2006-01-02") {
			common.RespondError(w, initTime, services.ErrFlightNotFound, "", http.StatusNotFound)
			return
		}

		info, err := deps.Services.Availability.FlightInfo(r.Context(), flight)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build flight info", http.StatusInternalServerError)
			return
		}

		seatMap, err := deps.Services.Availability.SeatMap(r.Context(), flight)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build seat map", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Flight fetched", dtos.FlightSeatsResponse{
			Flight: *info,
			Seats:  seatMap,
		})
	}
}
