package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"barberbook/internal/database"
	"barberbook/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "barberbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Barber{},
		&domain.Service{},
		&domain.Booking{},
		&domain.Review{},
		&domain.ReviewLike{},
		&domain.ReviewReport{},
		&domain.Notification{},
		&domain.PasswordResetToken{},
	); err != nil {
		log.Fatal(err)
	}

	// One non-cancelled booking per (barber, date, time). A partial index so
	// cancelled slots can be rebooked.
	if err := db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON bookings (barber_id, appointment_date, appointment_time)
WHERE status <> 'cancelled'
`).Error; err != nil {
		log.Fatal(err)
	}

	var count int64
	db.Model(&domain.Barber{}).Count(&count)
	if count > 0 {
		log.Println("Database already seeded, skipping")
		return
	}

	barbers := []domain.Barber{
		{Name: "Marco Silva", Specialty: "Classic cuts and hot towel shaves", Bio: "15 years behind the chair", IsActive: true},
		{Name: "Deshawn Carter", Specialty: "Fades and beard design", Bio: "Precision fade specialist", IsActive: true},
		{Name: "Yusuf Demir", Specialty: "Scissor work and styling", Bio: "Trained in Istanbul", IsActive: true},
	}
	for i := range barbers {
		if err := db.Create(&barbers[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	services := []domain.Service{
		{Name: "Classic Haircut", Category: "haircut", DurationMin: 30, Price: 28, IsActive: true},
		{Name: "Skin Fade", Category: "haircut", DurationMin: 45, Price: 35, IsActive: true},
		{Name: "Beard Trim", Category: "beard", DurationMin: 20, Price: 18, IsActive: true},
		{Name: "Hot Towel Shave", Category: "beard", DurationMin: 30, Price: 25, IsActive: true},
		{Name: "Cut + Beard Combo", Category: "combo", DurationMin: 60, Price: 48, IsActive: true},
	}
	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer12345"), bcrypt.DefaultCost)

	users := []domain.User{
		{Name: "Shop Admin", Email: "admin@barberbook.local", PasswordHash: string(adminHash), Role: domain.RoleAdmin, EmailNotifications: true},
		{Name: "Alex Morgan", Email: "alex@example.com", Phone: "+1 555 0101", PasswordHash: string(customerHash), Role: domain.RoleCustomer, EmailNotifications: true, SMSNotifications: true},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	customer := users[1]
	now := time.Now()

	bookings := []domain.Booking{
		{
			UserID: customer.ID, BarberID: barbers[0].ID, BarberName: barbers[0].Name,
			ServiceID: services[0].ID, ServiceName: services[0].Name,
			AppointmentDate: now.AddDate(0, 0, 7).Format("2006-01-02"), AppointmentTime: "10:00",
			Status: domain.BookingConfirmed, Price: services[0].Price, ReferenceNumber: "BB-SEED0001",
		},
		{
			UserID: customer.ID, BarberID: barbers[1].ID, BarberName: barbers[1].Name,
			ServiceID: services[1].ID, ServiceName: services[1].Name,
			AppointmentDate: now.AddDate(0, 0, -14).Format("2006-01-02"), AppointmentTime: "15:30",
			Status: domain.BookingCompleted, Price: services[1].Price, ReferenceNumber: "BB-SEED0002", HasReview: true,
		},
	}
	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	review := domain.Review{
		UserID: customer.ID, BookingID: bookings[1].ID,
		BarberID: barbers[1].ID, BarberName: barbers[1].Name, ServiceName: services[1].Name,
		Rating: 5, Comment: "Cleanest fade I've had in years.",
	}
	if err := db.Create(&review).Error; err != nil {
		log.Fatal(err)
	}

	notification := domain.Notification{
		UserID: customer.ID, Type: domain.NotifBooking,
		Title: "Booking confirmed", Message: "Your appointment has been confirmed",
		Data: map[string]any{"booking_id": bookings[0].ID},
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete")
}
