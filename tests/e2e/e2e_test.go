package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fieldserve/internal/database"
	"fieldserve/internal/domain"
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
	jwtsvc "fieldserve/internal/pkg/jwt"
	"fieldserve/internal/repository"
)

type Suite struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *jwtsvc.Service
	bus    *events.Bus
}

func setupSuite(t *testing.T) *Suite {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

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

	j := jwtsvc.New("e2e_secret_key_32_characters_long", time.Hour)
	bus := events.NewBus(1, 16)
	hub := chat.NewHub()
	t.Cleanup(func() {
		hub.Close()
		bus.Close()
	})

	authHandler := auth.NewHandler(auth.NewService(actorRepo, j, bus))
	catalogHandler := catalog.NewHandler(catalog.NewService(serviceRepo, offeringRepo, actorRepo))
	scheduleHandler := schedule.NewHandler(schedule.NewService(scheduleRepo, actorRepo))
	reservationHandler := reservation.NewHandler(reservation.NewService(
		reservationRepo, offeringRepo, actorRepo, serviceRepo, paymentRepo, reviewRepo, bus))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, reservationRepo, actorRepo, bus))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, reservationRepo, actorRepo, bus))
	ticketHandler := ticket.NewHandler(ticket.NewService(ticketRepo, reservationRepo, paymentRepo, actorRepo, bus))
	chatService := chat.NewService(chatRepo, reservationRepo, ticketRepo, hub)
	chatHandler := chat.NewHandler(chatService, hub)
	certificationHandler := certification.NewHandler(certification.NewService(certificationRepo, actorRepo, bus))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	adminOnly := middleware.AdminOnly()

	v1 := r.Group("/api/v1")
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

	return &Suite{router: r, db: db, jwt: j, bus: bus}
}

func (s *Suite) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// createAdmin inserts an admin directly and mints a token for it.
func (s *Suite) createAdmin(t *testing.T) string {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.Actor{
		FirstName:    "Root",
		LastName:     "Admin",
		Email:        "root@fieldserve.io",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Enabled:      true,
		RegisterDate: time.Now(),
	}
	require.NoError(t, s.db.Create(&admin).Error)

	token, err := s.jwt.GenerateToken(admin.ID, admin.Email, string(admin.Role))
	require.NoError(t, err)
	return token
}

func (s *Suite) register(t *testing.T, body map[string]any) (token string, actorID int64) {
	t.Helper()
	w := s.request(t, http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	resp := decode(t, w)
	token = resp["token"].(string)
	actorID = int64(resp["actor"].(map[string]any)["id"].(float64))
	require.NotEmpty(t, token)
	return token, actorID
}

func TestAuthFlow(t *testing.T) {
	s := setupSuite(t)

	token, _ := s.register(t, map[string]any{
		"first_name": "Nina",
		"last_name":  "Soler",
		"email":      "nina@example.com",
		"password":   "password1",
		"role":       "customer",
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
			"first_name": "Nina",
			"last_name":  "Soler",
			"email":      "NINA@example.com",
			"password":   "password1",
			"role":       "customer",
		}, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("login", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
			"email":    "nina@example.com",
			"password": "password1",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decode(t, w)["token"])
	})

	t.Run("wrong password unauthorized", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
			"email":    "nina@example.com",
			"password": "wrong-one",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("profile", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/auth/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		actor := decode(t, w)["actor"].(map[string]any)
		assert.Equal(t, "nina@example.com", actor["email"])
	})

	t.Run("no token rejected", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/auth/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestReservationLifecycle(t *testing.T) {
	s := setupSuite(t)
	adminToken := s.createAdmin(t)

	customerToken, _ := s.register(t, map[string]any{
		"first_name": "Marc",
		"last_name":  "Pons",
		"email":      "marc@example.com",
		"password":   "password1",
		"role":       "customer",
	})
	techToken, techID := s.register(t, map[string]any{
		"first_name":  "Paco",
		"last_name":   "Ruiz",
		"email":       "paco@example.com",
		"password":    "password1",
		"role":        "technician",
		"specialties": []string{"plumbing"},
	})

	// catalog setup
	w := s.request(t, http.MethodPost, "/api/v1/services", map[string]any{
		"name":            "Pipe repair",
		"category":        "plumbing",
		"suggested_price": 80,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	serviceID := int64(decode(t, w)["id"].(float64))

	t.Run("service create is admin only", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/services", map[string]any{
			"name":     "Rogue service",
			"category": "other",
		}, customerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	w = s.request(t, http.MethodPost, "/api/v1/offerings", map[string]any{
		"technician_id": techID,
		"service_id":    serviceID,
		"base_rate":     95,
	}, techToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	serviceDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	w = s.request(t, http.MethodPost, "/api/v1/reservations", map[string]any{
		"technician_id": techID,
		"service_id":    serviceID,
		"service_date":  serviceDate,
		"start_time":    "10:30",
		"address":       "Calle Mayor 1, Valencia",
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	resBody := decode(t, w)
	reservationID := int64(resBody["id"].(float64))
	assert.Equal(t, "pending", resBody["status"])

	t.Run("only the technician can confirm", func(t *testing.T) {
		w := s.request(t, http.MethodPatch,
			fmt.Sprintf("/api/v1/reservations/%d/confirm", reservationID), nil, customerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("complete before confirm is rejected", func(t *testing.T) {
		w := s.request(t, http.MethodPatch,
			fmt.Sprintf("/api/v1/reservations/%d/complete", reservationID), nil, customerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	w = s.request(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/reservations/%d/confirm", reservationID), nil, techToken)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	assert.Equal(t, "confirmed", decode(t, w)["status"])

	t.Run("review before completion is rejected", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/reviews", map[string]any{
			"reservation_id": reservationID,
			"rating":         5,
		}, customerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	// payment while work is underway
	w = s.request(t, http.MethodPost, "/api/v1/payments", map[string]any{
		"reservation_id": reservationID,
		"amount":         95,
		"method":         "card",
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	paymentID := int64(decode(t, w)["id"].(float64))

	t.Run("refund before processing is rejected", func(t *testing.T) {
		w := s.request(t, http.MethodPatch,
			fmt.Sprintf("/api/v1/payments/%d/refund", paymentID), nil, customerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	w = s.request(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/payments/%d/process", paymentID), nil, customerToken)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	assert.Equal(t, "completed", decode(t, w)["status"])

	t.Run("process twice is rejected", func(t *testing.T) {
		w := s.request(t, http.MethodPatch,
			fmt.Sprintf("/api/v1/payments/%d/process", paymentID), nil, customerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	w = s.request(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/reservations/%d/complete", reservationID), nil, customerToken)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	completed := decode(t, w)
	assert.Equal(t, "completed", completed["status"])
	assert.NotEmpty(t, completed["end_time"])

	w = s.request(t, http.MethodPost, "/api/v1/reviews", map[string]any{
		"reservation_id": reservationID,
		"rating":         5,
		"comment":        "Fast and tidy.",
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	t.Run("second review conflicts", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/reviews", map[string]any{
			"reservation_id": reservationID,
			"rating":         1,
		}, customerToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("details carry derived fields", func(t *testing.T) {
		w := s.request(t, http.MethodGet,
			fmt.Sprintf("/api/v1/reservations/%d", reservationID), nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		details := decode(t, w)
		assert.Equal(t, 95.0, details["final_price"])
		assert.Equal(t, true, details["has_review"])
	})

	t.Run("average rating", func(t *testing.T) {
		w := s.request(t, http.MethodGet,
			fmt.Sprintf("/api/v1/reviews/technician/%d/average-rating", techID), nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5.0, decode(t, w)["average_rating"])
	})

	t.Run("list filters by status", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/reservations?status=completed", nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		out := decode(t, w)
		items := out["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, "completed", items[0].(map[string]any)["status"])

		w = s.request(t, http.MethodGet, "/api/v1/reservations?status=pending", nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode(t, w)["items"])
	})

	t.Run("refund after completion", func(t *testing.T) {
		w := s.request(t, http.MethodPatch,
			fmt.Sprintf("/api/v1/payments/%d/refund", paymentID), nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		assert.Equal(t, "refunded", decode(t, w)["status"])
	})
}

func TestSupportTicketAndChat(t *testing.T) {
	s := setupSuite(t)
	adminToken := s.createAdmin(t)

	customerToken, custID := s.register(t, map[string]any{
		"first_name": "Irene",
		"last_name":  "Vidal",
		"email":      "irene@example.com",
		"password":   "password1",
		"role":       "customer",
	})
	techToken, techID := s.register(t, map[string]any{
		"first_name": "Omar",
		"last_name":  "Haddad",
		"email":      "omar@example.com",
		"password":   "password1",
		"role":       "technician",
	})

	w := s.request(t, http.MethodPost, "/api/v1/services", map[string]any{
		"name":     "Deep cleaning",
		"category": "cleaning",
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)
	serviceID := int64(decode(t, w)["id"].(float64))

	w = s.request(t, http.MethodPost, "/api/v1/offerings", map[string]any{
		"technician_id": techID,
		"service_id":    serviceID,
		"base_rate":     120,
	}, techToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.request(t, http.MethodPost, "/api/v1/reservations", map[string]any{
		"technician_id": techID,
		"service_id":    serviceID,
		"service_date":  time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		"start_time":    "09:00",
		"address":       "Av. del Port 12, Valencia",
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	reservationID := int64(decode(t, w)["id"].(float64))

	// ticket flow
	w = s.request(t, http.MethodPost, "/api/v1/tickets", map[string]any{
		"reservation_id": reservationID,
		"subject":        "Technician has not arrived",
		"description":    "Waited 30 minutes past the start time.",
		"priority":       "high",
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	ticketBody := decode(t, w)
	ticketID := int64(ticketBody["id"].(float64))
	assert.Equal(t, "open", ticketBody["status"])

	var adminID int64
	s.db.Model(&domain.Actor{}).Where("role = ?", domain.RoleAdmin).Select("id").Scan(&adminID)

	w = s.request(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/tickets/%d/assign", ticketID), map[string]any{"admin_id": adminID}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	assert.Equal(t, "in_progress", decode(t, w)["status"])

	w = s.request(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/tickets/%d/resolve", ticketID), nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "resolved", decode(t, w)["status"])

	// chat flow on the same reservation
	w = s.request(t, http.MethodPost, "/api/v1/chats", map[string]any{
		"reservation_id": reservationID,
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	chatID := int64(decode(t, w)["id"].(float64))

	t.Run("reservation chat is reused", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/chats", map[string]any{
			"reservation_id": reservationID,
		}, techToken)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, chatID, int64(decode(t, w)["id"].(float64)))
	})

	w = s.request(t, http.MethodPost,
		fmt.Sprintf("/api/v1/chats/%d/messages", chatID), map[string]any{
			"receiver_id": techID,
			"content":     "Are you on your way?",
		}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	t.Run("messages listed", func(t *testing.T) {
		w := s.request(t, http.MethodGet,
			fmt.Sprintf("/api/v1/chats/%d/messages", chatID), nil, techToken)
		require.Equal(t, http.StatusOK, w.Code)

		var msgs []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msgs))
		require.Len(t, msgs, 1)
		assert.Equal(t, "Are you on your way?", msgs[0]["content"])
		assert.Equal(t, custID, int64(msgs[0]["sender_id"].(float64)))
	})
}
