package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/db/repositories"
	gormModels "skyward/aerodesk/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&gormModels.Price{},
		&gormModels.SeatType{},
		&gormModels.Airplane{},
		&gormModels.Seat{},
		&gormModels.Flight{},
		&gormModels.Option{},
		&gormModels.Passenger{},
		&gormModels.StaffGroup{},
		&gormModels.Ticket{},
		&gormModels.Luggage{},
		&gormModels.BoardingRegistration{},
		&gormModels.EmailSubject{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

type testFixture struct {
	db     *gorm.DB
	flight *gormModels.Flight
}

// seedFlight creates an airplane with the given seat count (economy
// seats 1..n, business above 20), and a flight over its full chart.
func seedFlight(t *testing.T, db *gorm.DB, seatCount int, departure time.Time) *testFixture {
	t.Helper()

	economy := gormModels.SeatType{Name: constants.SeatTypeEconomy}
	business := gormModels.SeatType{Name: constants.SeatTypeBusiness}
	for _, st := range []*gormModels.SeatType{&economy, &business} {
		if err := db.Where("name = ?", st.Name).FirstOrCreate(st).Error; err != nil {
			t.Fatalf("Failed to create seat type: %v", err)
		}
	}

	airplane := gormModels.Airplane{Name: "Test Plane", Slug: fmt.Sprintf("test-plane-%d", time.Now().UnixNano())}
	if err := db.Create(&airplane).Error; err != nil {
		t.Fatalf("Failed to create airplane: %v", err)
	}

	var seats []gormModels.Seat
	for n := 1; n <= seatCount; n++ {
		typeID := economy.ID
		if n > 20 {
			typeID = business.ID
		}
		seats = append(seats, gormModels.Seat{
			AirplaneID: airplane.ID,
			SeatTypeID: typeID,
			SeatNumber: n,
		})
	}
	if err := db.Create(&seats).Error; err != nil {
		t.Fatalf("Failed to create seats: %v", err)
	}

	price := gormModels.Price{Amount: 100.00}
	if err := db.Create(&price).Error; err != nil {
		t.Fatalf("Failed to create price: %v", err)
	}

	date := time.Date(departure.Year(), departure.Month(), departure.Day(), 0, 0, 0, 0, time.UTC)
	flight := gormModels.Flight{
		AirplaneID:    airplane.ID,
		PriceID:       price.ID,
		StartLocation: "New York",
		EndLocation:   "Paris",
		StartDate:     date,
		EndDate:       date,
		StartTime:     departure.Format("15:04"),
		EndTime:       "23:59",
		Slug:          fmt.Sprintf("new-york-paris-%d", time.Now().UnixNano()),
	}
	if err := db.Create(&flight).Error; err != nil {
		t.Fatalf("Failed to create flight: %v", err)
	}
	if err := db.Model(&flight).Association("Seats").Append(&seats); err != nil {
		t.Fatalf("Failed to attach seats: %v", err)
	}

	loaded, err := repositories.NewFlightRepository(db).GetBySlug(context.Background(), flight.Slug)
	if err != nil || loaded == nil {
		t.Fatalf("Failed to reload flight: %v", err)
	}

	return &testFixture{db: db, flight: loaded}
}

// addOption attaches a priced add-on to the fixture flight.
func (f *testFixture) addOption(t *testing.T, name string, amount float64) *gormModels.Option {
	t.Helper()

	price := gormModels.Price{Amount: amount}
	if err := f.db.Create(&price).Error; err != nil {
		t.Fatalf("Failed to create option price: %v", err)
	}
	option := gormModels.Option{
		Name:     name,
		FlightID: f.flight.ID,
		PriceID:  price.ID,
	}
	if err := f.db.Create(&option).Error; err != nil {
		t.Fatalf("Failed to create option: %v", err)
	}

	loaded, err := repositories.NewFlightRepository(f.db).GetBySlug(context.Background(), f.flight.Slug)
	if err != nil || loaded == nil {
		t.Fatalf("Failed to reload flight: %v", err)
	}
	f.flight = loaded
	return &option
}

// issueTicket books a seat directly, bypassing the booking service.
func (f *testFixture) issueTicket(t *testing.T, seatNumber int, email string) *gormModels.Ticket {
	t.Helper()
	ctx := context.Background()

	passenger := gormModels.Passenger{
		FirstName:    "Issued",
		LastName:     "Directly",
		Email:        email,
		PasswordHash: "x",
	}
	if err := f.db.Where("email = ?", email).FirstOrCreate(&passenger).Error; err != nil {
		t.Fatalf("Failed to create passenger: %v", err)
	}

	seat, err := repositories.NewFlightRepository(f.db).SeatByNumber(ctx, f.flight.ID, seatNumber)
	if err != nil || seat == nil {
		t.Fatalf("Failed to resolve seat %d: %v", seatNumber, err)
	}

	ticket := gormModels.Ticket{
		FlightID:    f.flight.ID,
		SeatID:      seat.ID,
		PassengerID: passenger.ID,
		Slug:        common.TicketSlug(f.flight.Slug, seatNumber, email),
	}
	if err := f.db.Create(&ticket).Error; err != nil {
		t.Fatalf("Failed to create ticket: %v", err)
	}
	return &ticket
}

// Mail plumbing mocks in the repo's usual func-field style.

type mockEnqueuer struct {
	items []*common.MailQueueItem
}

func (m *mockEnqueuer) Enqueue(ctx context.Context, streamName string, item *common.MailQueueItem) error {
	m.items = append(m.items, item)
	return nil
}

type mockSubjects struct {
	subjectForFunc func(ctx context.Context, name string) (string, error)
}

func (m *mockSubjects) SubjectFor(ctx context.Context, name string) (string, error) {
	if m.subjectForFunc != nil {
		return m.subjectForFunc(ctx, name)
	}
	return "", nil
}

type mockSigner struct {
	generateFunc func(ticketID uint, email string, ttl time.Duration) (string, error)
}

func (m *mockSigner) GenerateTicketToken(ticketID uint, email string, ttl time.Duration) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ticketID, email, ttl)
	}
	return "signed-token", nil
}

func newTestMailService(enqueuer *mockEnqueuer) *MailService {
	return NewMailService(
		enqueuer,
		&mockSubjects{},
		&mockSigner{},
		common.NewCacheService(60, 600),
		nil,
		"http://localhost:8080",
	)
}
