package events

import (
	"fmt"
	"log"

	"fieldserve/internal/notifier"
)

// Listeners holds the single consumer pipeline for each event type.
// Deliveries inside a pipeline run in sequence; each one is advisory, so a
// failed send is logged by the notifier and the pipeline carries on.
type Listeners struct {
	notifs *notifier.Notifier
}

func NewListeners(n *notifier.Notifier) *Listeners {
	return &Listeners{notifs: n}
}

// Register subscribes every pipeline on the bus. Call once during wiring.
func (l *Listeners) Register(bus *Bus) {
	bus.Subscribe(TypeUserRegistered, l.onUserRegistered)
	bus.Subscribe(TypeReservationCreated, l.onReservationCreated)
	bus.Subscribe(TypeReservationConfirmed, l.onReservationConfirmed)
	bus.Subscribe(TypeReservationCompleted, l.onReservationCompleted)
	bus.Subscribe(TypePaymentCompleted, l.onPaymentCompleted)
	bus.Subscribe(TypeReviewCreated, l.onReviewCreated)
	bus.Subscribe(TypeCertificationValidated, l.onCertificationValidated)
	bus.Subscribe(TypeTicketCreated, l.onTicketCreated)
}

func (l *Listeners) onUserRegistered(e Event) {
	p, ok := e.Payload.(UserRegistered)
	if !ok {
		logBadPayload(e)
		return
	}

	l.notifs.Email.SendTemplate(p.Email, "Welcome", "welcome", map[string]any{
		"FirstName": p.FirstName,
	})
	l.notifs.LogAction(p.ActorID, "REGISTER", fmt.Sprintf("role=%s", p.Role))
}

func (l *Listeners) onReservationCreated(e Event) {
	p, ok := e.Payload.(ReservationCreated)
	if !ok {
		logBadPayload(e)
		return
	}

	l.notifs.Email.SendTemplate(p.CustomerEmail, "Reservation created", "reservation-created", map[string]any{
		"ReservationID": p.ReservationID,
		"ServiceName":   p.ServiceName,
		"ServiceDate":   p.ServiceDate,
	})
	l.notifs.SendPush(p.TechnicianID, "New reservation",
		fmt.Sprintf("New request for %s", p.ServiceName))
	l.notifs.LogAction(p.CustomerID, "CREATE_RESERVATION",
		fmt.Sprintf("reservation_id=%d", p.ReservationID))
}

func (l *Listeners) onReservationConfirmed(e Event) {
	p, ok := e.Payload.(ReservationConfirmed)
	if !ok {
		logBadPayload(e)
		return
	}

	l.notifs.Email.SendTemplate(p.CustomerEmail, "Reservation confirmed", "reservation-confirmed", map[string]any{
		"ReservationID":  p.ReservationID,
		"TechnicianName": p.TechnicianName,
		"ServiceDate":    p.ServiceDate,
	})
	if p.CustomerPhone != "" {
		l.notifs.SendSMS(p.CustomerPhone,
			fmt.Sprintf("Reservation #%d confirmed for %s", p.ReservationID, p.ServiceDate))
	}
}

func (l *Listeners) onReservationCompleted(e Event) {
	p, ok := e.Payload.(ReservationCompleted)
	if !ok {
		logBadPayload(e)
		return
	}

	l.notifs.Email.SendTemplate(p.CustomerEmail, "How was your experience?", "review-request", map[string]any{
		"ReservationID": p.ReservationID,
	})
	l.notifs.LogAction(p.CustomerID, "COMPLETE_RESERVATION",
		fmt.Sprintf("reservation_id=%d", p.ReservationID))
}

func (l *Listeners) onPaymentCompleted(e Event) {
	p, ok := e.Payload.(PaymentCompleted)
	if !ok {
		logBadPayload(e)
		return
	}

	l.notifs.Email.SendTemplate(p.CustomerEmail, "Payment received", "payment-receipt", map[string]any{
		"ReservationID": p.ReservationID,
		"Amount":        p.Amount,
		"Method":        string(p.Method),
	})
}

func (l *Listeners) onReviewCreated(e Event) {
	p, ok := e.Payload.(ReviewCreated)
	if !ok {
		logBadPayload(e)
		return
	}

	l.notifs.SendPush(p.TechnicianID, "New review",
		fmt.Sprintf("You received a %d-star review", p.Rating))
	l.notifs.Email.Send(p.TechnicianEmail, "New review",
		fmt.Sprintf("Rating %d: %s", p.Rating, p.Comment))
}

func (l *Listeners) onCertificationValidated(e Event) {
	p, ok := e.Payload.(CertificationValidated)
	if !ok {
		logBadPayload(e)
		return
	}

	l.notifs.Email.SendTemplate(p.TechnicianEmail, "Certification validated", "certification-valid", map[string]any{
		"Name": p.Name,
	})
	l.notifs.LogAction(p.TechnicianID, "CERTIFICATION_VALIDATED",
		fmt.Sprintf("certification_id=%d", p.CertificationID))
}

func (l *Listeners) onTicketCreated(e Event) {
	p, ok := e.Payload.(TicketCreated)
	if !ok {
		logBadPayload(e)
		return
	}

	l.notifs.Email.Send(p.CustomerEmail, "Support ticket received",
		fmt.Sprintf("Ticket #%d (%s) was opened with priority %s", p.TicketID, p.Subject, p.Priority))
}

func logBadPayload(e Event) {
	log.Printf("level=error msg=unexpected event payload event_type=%s event_id=%s", e.Type, e.ID)
}
