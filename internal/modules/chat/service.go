package chat

import (
	"context"
	"fmt"
	"time"

	"fieldserve/internal/domain"
	"fieldserve/internal/pkg/apperr"
)

type Service struct {
	chats        ChatRepository
	reservations ReservationGetter
	tickets      TicketGetter
	hub          MessagePusher
}

func NewService(chats ChatRepository, reservations ReservationGetter, tickets TicketGetter, hub MessagePusher) *Service {
	return &Service{chats: chats, reservations: reservations, tickets: tickets, hub: hub}
}

// CreateChat opens a thread on a reservation or a ticket, never both.
func (s *Service) CreateChat(ctx context.Context, req CreateChatRequest) (*domain.Chat, error) {
	if (req.ReservationID == nil) == (req.TicketID == nil) {
		return nil, apperr.Validation(map[string]string{
			"reservation_id": "exactly one of reservation_id or ticket_id is required",
		})
	}

	c := &domain.Chat{
		Status:    domain.ChatOpen,
		CreatedAt: time.Now(),
	}
	if req.ReservationID != nil {
		if _, err := s.reservations.GetByID(ctx, *req.ReservationID); err != nil {
			return nil, apperr.NotFound("Reservation", "id", *req.ReservationID)
		}
		if existing, err := s.chats.GetByReservation(ctx, *req.ReservationID); err == nil {
			return existing, nil
		}
		c.ReservationID = req.ReservationID
		c.Type = domain.ChatReservation
	} else {
		if _, err := s.tickets.GetByID(ctx, *req.TicketID); err != nil {
			return nil, apperr.NotFound("SupportTicket", "id", *req.TicketID)
		}
		c.TicketID = req.TicketID
		c.Type = domain.ChatSupport
	}

	if err := s.chats.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetChat(ctx context.Context, id int64) (*domain.Chat, error) {
	c, err := s.chats.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Chat", "id", id)
	}
	return c, nil
}

func (s *Service) ListChats(ctx context.Context, actorID int64) ([]ChatResponse, error) {
	rows, err := s.chats.ListByParticipant(ctx, actorID)
	if err != nil {
		return nil, err
	}

	out := make([]ChatResponse, 0, len(rows))
	for i := range rows {
		resp := ChatResponse{Chat: rows[i]}
		if n, err := s.chats.CountUnread(ctx, rows[i].ID, actorID); err == nil {
			resp.Unread = n
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*domain.Chat, error) {
	c, err := s.chats.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Chat", "id", id)
	}

	c.Status = domain.ChatStatus(status)
	if err := s.chats.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SendMessage stores the message, then pushes it to the receiver if they
// are connected. The push result is not surfaced to the sender.
func (s *Service) SendMessage(ctx context.Context, chatID, senderID int64, req SendMessageRequest) (*domain.Message, error) {
	c, err := s.chats.GetByID(ctx, chatID)
	if err != nil {
		return nil, apperr.NotFound("Chat", "id", chatID)
	}
	if c.Status != domain.ChatOpen {
		return nil, apperr.InvalidState(fmt.Sprintf("cannot send message into %s chat", c.Status))
	}

	m := &domain.Message{
		ChatID:     chatID,
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Type:       domain.MessageText,
		Status:     domain.MessageSent,
		SentAt:     time.Now(),
	}
	if err := s.chats.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	_ = s.hub.SendToActor(req.ReceiverID, m)
	return m, nil
}

func (s *Service) ListMessages(ctx context.Context, chatID int64, limit, offset int) ([]domain.Message, error) {
	if _, err := s.chats.GetByID(ctx, chatID); err != nil {
		return nil, apperr.NotFound("Chat", "id", chatID)
	}
	return s.chats.ListMessages(ctx, chatID, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, chatID, readerID int64) error {
	if _, err := s.chats.GetByID(ctx, chatID); err != nil {
		return apperr.NotFound("Chat", "id", chatID)
	}
	return s.chats.MarkRead(ctx, chatID, readerID)
}
