package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"barberbook/internal/database"
	"barberbook/internal/middleware"
	"barberbook/internal/modules/admin"
	"barberbook/internal/modules/auth"
	"barberbook/internal/modules/booking"
	"barberbook/internal/modules/catalog"
	"barberbook/internal/modules/notification"
	"barberbook/internal/modules/review"
	"barberbook/internal/pkg/jwt"
	"barberbook/internal/pkg/mailer"
	"barberbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "barberbook.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	pepper := os.Getenv("RESET_TOKEN_PEPPER")
	if pepper == "" {
		pepper = secret
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	resetTokenRepo := repository.NewResetTokenRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	jwtService := jwt.New(secret, 24*time.Hour)

	hub := notification.NewHub()
	defer hub.Close()

	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	authService := auth.NewService(userRepo, resetTokenRepo, mailer.NewLogMailer(), notificationService, pepper)
	authHandler := auth.NewHandler(authService, jwtService)

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogRepo, notificationService)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, bookingRepo, notificationService)
	reviewHandler := review.NewHandler(reviewService)

	adminService := admin.NewService(adminRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		public := v1.Group("")

		protected := v1.Group("")
		protected.Use(middleware.Auth(jwtService))

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.Auth(jwtService), middleware.AdminOnly())

		authHandler.RegisterRoutes(public, protected)
		catalogHandler.RegisterRoutes(public)
		bookingHandler.RegisterRoutes(public, protected, adminGroup)
		reviewHandler.RegisterRoutes(public, protected, adminGroup)
		notificationHandler.RegisterRoutes(protected)
		adminHandler.RegisterRoutes(adminGroup)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
