package api

import (
	"os"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/db"
	"skyward/aerodesk/internal/db/repositories"
	"skyward/aerodesk/internal/metrics"
	"skyward/aerodesk/internal/services"

	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Flight       *repositories.FlightRepository
	Ticket       *repositories.TicketRepository
	Passenger    *repositories.PassengerRepository
	Boarding     *repositories.BoardingRepository
	Location     *repositories.LocationRepo
	EmailSubject *repositories.EmailSubjectRepo
}

type Services struct {
	Cache        common.CacheInterface
	Session      *common.SessionService
	URLSigner    *common.URLSignerService
	MailQueue    *common.MailQueueService
	Mail         *services.MailService
	Availability *services.AvailabilityService
	Booking      *services.BookingService
	Boarding     *services.BoardingService
	Staff        *services.StaffService
	Auth         *services.AuthService
	Cabinet      *services.CabinetService
	Payment      *services.PaymentService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services off the shared DB
// handles and Redis client.
func InitDependencies(metricsReg *metrics.MetricsRegistry, redisClient *redis.Client) (*Dependencies, error) {

	repos := &Repositories{
		Flight:       repositories.NewFlightRepository(db.PgDB),
		Ticket:       repositories.NewTicketRepository(db.PgDB),
		Passenger:    repositories.NewPassengerRepository(db.PgDB),
		Boarding:     repositories.NewBoardingRepository(db.PgDB),
		Location:     repositories.NewLocationRepo(db.DB),
		EmailSubject: repositories.NewEmailSubjectRepo(db.DB),
	}

	domainURL := os.Getenv("DOMAIN_URL")
	if domainURL == "" {
		domainURL = "http://localhost:8080"
	}

	cacheSvc := common.NewCacheService(60000, 600)
	sessionSvc := common.NewSessionService(redisClient)
	urlSigner := common.NewURLSignerService([]byte(os.Getenv("URL_SIGNER_SECRET")), redisClient)
	mailQueue := common.NewMailQueueService(redisClient)

	mailSvc := services.NewMailService(mailQueue, repos.EmailSubject, urlSigner, cacheSvc, metricsReg, domainURL)
	availabilitySvc := services.NewAvailabilityService(repos.Flight, repos.Ticket)
	bookingSvc := services.NewBookingService(db.PgDB, repos.Flight, repos.Ticket, mailSvc, metricsReg)

	svcs := &Services{
		Cache:        cacheSvc,
		Session:      sessionSvc,
		URLSigner:    urlSigner,
		MailQueue:    mailQueue,
		Mail:         mailSvc,
		Availability: availabilitySvc,
		Booking:      bookingSvc,
		Boarding:     services.NewBoardingService(repos.Ticket, repos.Boarding, metricsReg),
		Staff:        services.NewStaffService(repos.Flight, repos.Passenger, availabilitySvc),
		Auth:         services.NewAuthService(repos.Passenger, sessionSvc),
		Cabinet:      services.NewCabinetService(repos.Ticket, urlSigner),
		Payment:      services.NewPaymentService(os.Getenv("STRIPE_API_KEY"), domainURL, metricsReg),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
