package events

import (
	"time"

	"github.com/google/uuid"

	"fieldserve/internal/domain"
)

type Type string

const (
	TypeUserRegistered         Type = "user_registered"
	TypeReservationCreated     Type = "reservation_created"
	TypeReservationConfirmed   Type = "reservation_confirmed"
	TypeReservationCompleted   Type = "reservation_completed"
	TypePaymentCompleted       Type = "payment_completed"
	TypeReviewCreated          Type = "review_created"
	TypeCertificationValidated Type = "certification_validated"
	TypeTicketCreated          Type = "ticket_created"
)

// Event is an immutable fact describing a state transition that already
// committed. It lives only for the duration of dispatch.
type Event struct {
	ID         string
	Type       Type
	OccurredAt time.Time
	Payload    any
}

func New(t Type, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		OccurredAt: time.Now(),
		Payload:    payload,
	}
}

type UserRegistered struct {
	ActorID   int64
	Email     string
	FirstName string
	Role      domain.Role
}

type ReservationCreated struct {
	ReservationID   int64
	CustomerID      int64
	TechnicianID    int64
	CustomerEmail   string
	TechnicianEmail string
	ServiceName     string
	ServiceDate     string
}

type ReservationConfirmed struct {
	ReservationID  int64
	CustomerEmail  string
	CustomerPhone  string
	TechnicianName string
	ServiceDate    string
}

type ReservationCompleted struct {
	ReservationID int64
	CustomerID    int64
	TechnicianID  int64
	CustomerEmail string
}

type PaymentCompleted struct {
	PaymentID     int64
	ReservationID int64
	CustomerEmail string
	Amount        float64
	Method        domain.PaymentMethod
}

type ReviewCreated struct {
	ReviewID        int64
	TechnicianID    int64
	TechnicianEmail string
	Rating          int
	Comment         string
}

type CertificationValidated struct {
	CertificationID int64
	TechnicianID    int64
	TechnicianEmail string
	Name            string
}

type TicketCreated struct {
	TicketID      int64
	Subject       string
	Priority      domain.TicketPriority
	CustomerEmail string
}
