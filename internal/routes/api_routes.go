package routes

import (
	"skyward/aerodesk/internal/api"
	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	// Auth endpoints sit outside /api/v1 and are rate limited against
	// credential stuffing.
	r.Group(func(authRoutes chi.Router) {
		authRoutes.Use(middleware.RateLimitMiddleware)
		authRoutes.Post("/auth/registration", api.RegisterHandler(deps.Services.Auth))
		authRoutes.Post("/auth/login", api.LoginHandler(deps.Services.Auth, false))
		authRoutes.Post("/auth/logout", api.LogoutHandler(deps.Services.Auth))
		authRoutes.Post("/auth/staff/login", api.LoginHandler(deps.Services.Auth, true))
		authRoutes.Post("/auth/staff/logout", api.LogoutHandler(deps.Services.Auth))
		authRoutes.Get("/auth/ticket", api.TicketLinkHandler(deps.Services.Cabinet))
	})

	// Hosted checkout return pages.
	r.Get("/payment/success", api.PaymentSuccessHandler())
	r.Get("/payment/cancel", api.PaymentCancelHandler())

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Public booking surface
		v1.Get("/search", api.SearchFlightsHandler(deps.Services.Availability))
		v1.Get("/locations", api.LocationsHandler(deps))
		v1.Get("/flight/{flight_slug}/{date}", api.FlightSeatsHandler(deps))
		v1.Post("/booking/{flight_slug}/{date}/{passengers}", api.BookFlightHandler(deps.Services.Booking))
		v1.Get("/payment/{name}/{total}/{amount}", api.CheckoutHandler(deps.Services.Payment))

		// Logged-in passengers
		v1.Group(func(registered chi.Router) {
			registered.Use(middleware.RequireAuth())
			registered.Get("/cabinet/flights/{filter}", api.CabinetHandler(deps.Services.Cabinet))
		})

		// Staff console
		v1.Route("/staff", func(staff chi.Router) {
			staff.Use(middleware.RequireStaff())
			staff.Get("/redirect", api.StaffRedirectHandler(deps.Services.Staff))
			staff.Get("/flights", api.StaffFlightsHandler(deps.Services.Staff))

			// Gate managers validate boarding tickets.
			staff.Group(func(gate chi.Router) {
				gate.Use(middleware.RequireGroups(constants.GroupGateManagers, constants.GroupSupervisors))
				gate.Post("/flights/{flight_slug}/board", api.BoardTicketHandler(deps.Services.Boarding))
			})

			// Supervisors run cancellation and staff onboarding.
			staff.Group(func(supervisor chi.Router) {
				supervisor.Use(middleware.RequireGroups(constants.GroupSupervisors))
				supervisor.Post("/flights/{flight_slug}/cancel", api.CancelFlightHandler(deps.Services.Staff, true))
				supervisor.Post("/flights/{flight_slug}/uncancel", api.CancelFlightHandler(deps.Services.Staff, false))
				supervisor.Post("/registration", api.StaffRegistrationHandler(deps.Services.Staff))
			})
		})
	})
}
