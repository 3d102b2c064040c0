package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fieldserve/internal/database"
	"fieldserve/internal/events"
	"fieldserve/internal/middleware"
	"fieldserve/internal/modules/auth"
	"fieldserve/internal/modules/catalog"
	"fieldserve/internal/modules/certification"
	"fieldserve/internal/modules/chat"
	"fieldserve/internal/modules/payment"
	"fieldserve/internal/modules/reservation"
	"fieldserve/internal/modules/review"
	"fieldserve/internal/modules/schedule"
	"fieldserve/internal/modules/ticket"
	"fieldserve/internal/notifier"
	jwtsvc "fieldserve/internal/pkg/jwt"
	"fieldserve/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	actorRepo := repository.NewActorRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	offeringRepo := repository.NewOfferingRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	chatRepo := repository.NewChatRepository(db)
	certificationRepo := repository.NewCertificationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	notifs := notifier.New(emailSender())
	bus := events.NewBus(busWorkers(), 64)
	events.NewListeners(notifs).Register(bus)

	hub := chat.NewHub()

	authService := auth.NewService(actorRepo, j, bus)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo, offeringRepo, actorRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	scheduleService := schedule.NewService(scheduleRepo, actorRepo)
	scheduleHandler := schedule.NewHandler(scheduleService)

	reservationService := reservation.NewService(
		reservationRepo, offeringRepo, actorRepo, serviceRepo, paymentRepo, reviewRepo, bus)
	reservationHandler := reservation.NewHandler(reservationService)

	paymentService := payment.NewService(paymentRepo, reservationRepo, actorRepo, bus)
	paymentHandler := payment.NewHandler(paymentService)

	reviewService := review.NewService(reviewRepo, reservationRepo, actorRepo, bus)
	reviewHandler := review.NewHandler(reviewService)

	ticketService := ticket.NewService(ticketRepo, reservationRepo, paymentRepo, actorRepo, bus)
	ticketHandler := ticket.NewHandler(ticketService)

	chatService := chat.NewService(chatRepo, reservationRepo, ticketRepo, hub)
	chatHandler := chat.NewHandler(chatService, hub)

	certificationService := certification.NewService(certificationRepo, actorRepo, bus)
	certificationHandler := certification.NewHandler(certificationService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	adminOnly := middleware.AdminOnly()

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected, adminOnly)
			catalogHandler.RegisterProtectedRoutes(protected, adminOnly)
			scheduleHandler.RegisterRoutes(protected)
			reservationHandler.RegisterRoutes(protected, adminOnly)
			paymentHandler.RegisterRoutes(protected, adminOnly)
			reviewHandler.RegisterRoutes(protected)
			ticketHandler.RegisterRoutes(protected, adminOnly)
			chatHandler.RegisterRoutes(protected)
			certificationHandler.RegisterRoutes(protected, adminOnly)
		}
	}

	srv := &http.Server{
		Addr:    ":" + envOr("PORT", "8080"),
		Handler: r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// stop accepting requests before tearing down the bus, so no in-flight
	// handler publishes into a closed queue
	log.Println("level=info msg=shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("level=error msg=server shutdown err=%v", err)
	}
	hub.Close()
	bus.Close()
}

// emailSender picks SMTP when configured, a log sink otherwise.
func emailSender() notifier.EmailSender {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return notifier.LogSender{}
	}

	port, _ := strconv.Atoi(envOr("SMTP_PORT", "587"))
	return notifier.NewSMTPSender(notifier.SMTPConfig{
		Host: host,
		Port: port,
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: envOr("SMTP_FROM", os.Getenv("SMTP_USER")),
	})
}

func busWorkers() int {
	n, err := strconv.Atoi(os.Getenv("EVENT_WORKERS"))
	if err != nil || n <= 0 {
		return 4
	}
	return n
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
