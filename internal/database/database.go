package database

import (
	"log"
	"strings"

	"fieldserve/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("level=info msg=connecting to postgres")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("level=info msg=using sqlite dsn=" + dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema for every aggregate. Used by cmd/seed and tests;
// production schemas are managed out of band.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Actor{},
		&domain.TechnicianProfile{},
		&domain.AdminDetail{},
		&domain.Service{},
		&domain.Offering{},
		&domain.AvailabilitySlot{},
		&domain.TechnicianSlot{},
		&domain.Reservation{},
		&domain.Payment{},
		&domain.Review{},
		&domain.SupportTicket{},
		&domain.Chat{},
		&domain.Message{},
		&domain.Certification{},
	)
}
