package main

import (
	"fmt"
	"log"
	"time"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/db"
	gormModels "skyward/aerodesk/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the schema and a demo dataset: staff groups, seat types, one
// airplane with a full seating chart, a week of flights on two routes,
// options, mail subjects and a superuser.
func main() {
	gdb, err := db.InitPostgresORM(db.DSNFromEnv())
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	if err := gdb.AutoMigrate(
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
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Schema migrated")

	if err := seed(gdb); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seed data loaded")
}

func seed(gdb *gorm.DB) error {
	// Staff groups
	for _, name := range constants.AllStaffGroups() {
		group := gormModels.StaffGroup{Name: name}
		if err := gdb.Where("name = ?", name.String()).FirstOrCreate(&group).Error; err != nil {
			return err
		}
	}

	// Seat types
	seatTypes := make(map[string]gormModels.SeatType)
	for _, name := range constants.SeatTypeNames {
		st := gormModels.SeatType{Name: name}
		if err := gdb.Where("name = ?", name).FirstOrCreate(&st).Error; err != nil {
			return err
		}
		seatTypes[name] = st
	}

	// Mail subjects
	subjects := map[string]string{
		constants.MailSubjectRegistration: "Welcome to Aerodesk",
		constants.MailSubjectTicket:       "Your Aerodesk ticket",
		constants.MailSubjectBill:         "Your Aerodesk payment summary",
	}
	for name, subject := range subjects {
		row := gormModels.EmailSubject{Name: name, Subject: subject}
		if err := gdb.Where("name = ?", name).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	// Airplane with a 40-seat chart: 1-24 economy, 25-32 premium,
	// 33-38 business, 39-40 first.
	airplane := gormModels.Airplane{Name: "Skyward A320", Slug: common.Slugify("Skyward A320")}
	if err := gdb.Where("slug = ?", airplane.Slug).FirstOrCreate(&airplane).Error; err != nil {
		return err
	}

	typeForSeat := func(n int) gormModels.SeatType {
		switch {
		case n <= 24:
			return seatTypes[constants.SeatTypeEconomy]
		case n <= 32:
			return seatTypes[constants.SeatTypePremium]
		case n <= 38:
			return seatTypes[constants.SeatTypeBusiness]
		default:
			return seatTypes[constants.SeatTypeFirst]
		}
	}

	var seats []gormModels.Seat
	for n := 1; n <= 40; n++ {
		seat := gormModels.Seat{
			AirplaneID: airplane.ID,
			SeatTypeID: typeForSeat(n).ID,
			SeatNumber: n,
		}
		if err := gdb.Where("airplane_id = ? AND seat_number = ?", airplane.ID, n).FirstOrCreate(&seat).Error; err != nil {
			return err
		}
		seats = append(seats, seat)
	}

	// A week of flights on two routes
	routes := []struct {
		from, to             string
		startTime, endTime   string
		price                float64
	}{
		{"New York", "Paris", "10:30", "22:45", 320.00},
		{"Paris", "New York", "09:15", "12:40", 340.00},
	}

	today := time.Now().Truncate(24 * time.Hour)
	for day := 0; day < 7; day++ {
		date := today.AddDate(0, 0, day)
		for _, route := range routes {
			price := gormModels.Price{Amount: route.price}
			if err := gdb.Create(&price).Error; err != nil {
				return err
			}

			slug := common.Slugify(fmt.Sprintf("%s %s %s %s", route.from, route.to, date.Format("2006-01-02"), route.startTime))
			flight := gormModels.Flight{
				AirplaneID:    airplane.ID,
				PriceID:       price.ID,
				StartLocation: route.from,
				EndLocation:   route.to,
				StartDate:     date,
				EndDate:       date,
				StartTime:     route.startTime,
				EndTime:       route.endTime,
				Slug:          slug,
			}

			var existing int64
			if err := gdb.Model(&gormModels.Flight{}).Where("slug = ?", slug).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				continue
			}

			if err := gdb.Create(&flight).Error; err != nil {
				return err
			}
			if err := gdb.Model(&flight).Association("Seats").Append(&seats); err != nil {
				return err
			}

			options := []struct {
				name, description string
				price             float64
			}{
				{"Hot meal", "A warm meal served mid-flight", 15.00},
				{"Extra legroom", "Seat row with additional legroom", 25.00},
				{"Priority boarding", "Board before general boarding opens", 10.00},
			}
			for _, opt := range options {
				optPrice := gormModels.Price{Amount: opt.price}
				if err := gdb.Create(&optPrice).Error; err != nil {
					return err
				}
				option := gormModels.Option{
					Name:        opt.name,
					Description: opt.description,
					FlightID:    flight.ID,
					PriceID:     optPrice.ID,
				}
				if err := gdb.Create(&option).Error; err != nil {
					return err
				}
			}
		}
	}

	// Superuser
	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := gormModels.Passenger{
		FirstName:    "Admin",
		LastName:     "Admin",
		Email:        "admin@aerodesk.local",
		PasswordHash: string(hash),
		IsStaff:      true,
		IsSuperuser:  true,
	}
	return gdb.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error
}
