package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fieldserve/internal/database"
	"fieldserve/internal/domain"
)

// Seeds a demo dataset: accounts for every role, a service catalog with
// offerings, weekly availability and a spread of reservations with payments
// and reviews. Safe to re-run; old rows are wiped first.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "fieldserve.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{
		"messages", "chats", "support_tickets", "reviews", "payments",
		"reservations", "technician_slots", "availability_slots",
		"certifications", "offerings", "services",
		"admin_details", "technician_profiles", "actors",
	} {
		db.Exec("DELETE FROM " + table)
	}

	log.Println("Creating actors...")

	admin := createActor(db, "Rita", "Vega", "admin@fieldserve.io", "admin123", domain.RoleAdmin)
	db.Create(&domain.AdminDetail{ActorID: admin.ID, Tier: domain.TierStandard})

	customers := make([]domain.Actor, 0, 3)
	for i, email := range []string{"marc@example.com", "irene@example.com", "tom@example.com"} {
		c := createActor(db, fmt.Sprintf("Customer%d", i+1), "Demo", email, "customer123", domain.RoleCustomer)
		c.Phone = fmt.Sprintf("+34 600 100 1%02d", i)
		db.Save(&c)
		customers = append(customers, c)
	}

	technicians := make([]domain.Actor, 0, 3)
	specialties := [][]string{
		{"plumbing", "appliances"},
		{"electrical"},
		{"cleaning", "gardening"},
	}
	for i, email := range []string{"paco@fieldserve.io", "lucia@fieldserve.io", "omar@fieldserve.io"} {
		t := createActor(db, fmt.Sprintf("Tech%d", i+1), "Demo", email, "tech123", domain.RoleTechnician)
		technicians = append(technicians, t)
		db.Create(&domain.TechnicianProfile{
			ActorID:     t.ID,
			Description: fmt.Sprintf("Demo technician %d", i+1),
			Specialties: specialties[i],
		})
	}

	log.Println("Creating catalog...")
	catalog := []domain.Service{
		{Name: "Pipe repair", Category: domain.CategoryPlumbing, SuggestedPrice: 80, IsActive: true},
		{Name: "Outlet installation", Category: domain.CategoryElectrical, SuggestedPrice: 60, IsActive: true},
		{Name: "Deep cleaning", Category: domain.CategoryCleaning, SuggestedPrice: 120, IsActive: true},
		{Name: "Hedge trimming", Category: domain.CategoryGardening, SuggestedPrice: 50, IsActive: true},
		{Name: "Washer repair", Category: domain.CategoryAppliances, SuggestedPrice: 90, IsActive: true},
	}
	for i := range catalog {
		catalog[i].Description = "Demo catalog entry"
		db.Create(&catalog[i])
	}

	log.Println("Creating offerings...")
	for i, t := range technicians {
		for j := 0; j < 2; j++ {
			svc := catalog[(i*2+j)%len(catalog)]
			db.Create(&domain.Offering{
				TechnicianID: t.ID,
				ServiceID:    svc.ID,
				BaseRate:     svc.SuggestedPrice + float64(rand.Intn(20)),
			})
		}
	}

	log.Println("Creating availability...")
	days := []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday}
	for _, day := range days {
		slot := domain.AvailabilitySlot{
			DayOfWeek: day,
			StartTime: "09:00",
			EndTime:   "18:00",
			Status:    domain.SlotAvailable,
		}
		db.Create(&slot)
		for _, t := range technicians {
			db.Create(&domain.TechnicianSlot{TechnicianID: t.ID, SlotID: slot.ID})
		}
	}

	log.Println("Creating reservations...")
	statuses := []domain.ReservationStatus{
		domain.ReservationPending,
		domain.ReservationConfirmed,
		domain.ReservationCompleted,
		domain.ReservationCancelled,
	}
	reservations := make([]domain.Reservation, 0, 8)
	for i := 0; i < 8; i++ {
		tech := technicians[i%len(technicians)]
		cust := customers[i%len(customers)]
		status := statuses[i%len(statuses)]

		res := domain.Reservation{
			CustomerID:      cust.ID,
			TechnicianID:    tech.ID,
			ServiceID:       catalog[i%len(catalog)].ID,
			ReservationDate: time.Now().AddDate(0, 0, -i),
			ServiceDate:     time.Now().AddDate(0, 0, 3+i),
			StartTime:       fmt.Sprintf("%02d:00", 9+i),
			Address:         fmt.Sprintf("Calle Demo %d, Valencia", i+1),
			Status:          status,
		}
		if status == domain.ReservationCompleted {
			end := "17:30"
			res.EndTime = &end
		}
		db.Create(&res)
		reservations = append(reservations, res)
	}

	log.Println("Creating payments and reviews...")
	for _, res := range reservations {
		if res.Status != domain.ReservationCompleted {
			continue
		}
		db.Create(&domain.Payment{
			ReservationID: res.ID,
			Amount:        75 + float64(rand.Intn(50)),
			PaymentDate:   time.Now(),
			Method:        domain.MethodCard,
			Status:        domain.PaymentCompleted,
		})
		db.Create(&domain.Review{
			ReservationID: res.ID,
			Comment:       "Great job, on time and tidy.",
			Rating:        4 + rand.Intn(2),
			Status:        domain.ReviewActive,
		})
	}

	log.Println("Seed completed.")
	log.Println("Admin:       admin@fieldserve.io / admin123")
	log.Println("Customers:   marc@example.com ... tom@example.com / customer123")
	log.Println("Technicians: paco@fieldserve.io ... omar@fieldserve.io / tech123")
}

func createActor(db *gorm.DB, first, last, email, password string, role domain.Role) domain.Actor {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	a := domain.Actor{
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Enabled:      true,
		RegisterDate: time.Now(),
	}
	db.Create(&a)
	return a
}
