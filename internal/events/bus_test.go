package events

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversToSubscribers(t *testing.T) {
	bus := NewBus(2, 8)

	var got atomic.Value
	done := make(chan struct{})
	bus.Subscribe(TypeUserRegistered, func(e Event) {
		got.Store(e.Payload)
		close(done)
	})

	bus.Publish(New(TypeUserRegistered, UserRegistered{ActorID: 7, Email: "a@b.c"}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
	bus.Close()

	payload, ok := got.Load().(UserRegistered)
	assert.True(t, ok)
	assert.Equal(t, int64(7), payload.ActorID)
}

func TestBus_IgnoresUnsubscribedTypes(t *testing.T) {
	bus := NewBus(1, 4)

	var calls int32
	bus.Subscribe(TypeReviewCreated, func(Event) {
		atomic.AddInt32(&calls, 1)
	})

	bus.Publish(New(TypePaymentCompleted, PaymentCompleted{PaymentID: 1}))
	bus.Close()

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestBus_FanOut(t *testing.T) {
	bus := NewBus(4, 16)

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		bus.Subscribe(TypeReservationCreated, func(Event) { wg.Done() })
	}

	bus.Publish(New(TypeReservationCreated, ReservationCreated{ReservationID: 1}))

	waited := make(chan struct{})
	go func() { wg.Wait(); close(waited) }()
	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("not all handlers ran")
	}
	bus.Close()
}

func TestBus_PanicDoesNotKillWorker(t *testing.T) {
	bus := NewBus(1, 4)

	bus.Subscribe(TypeTicketCreated, func(Event) { panic("boom") })

	done := make(chan struct{})
	bus.Subscribe(TypeReviewCreated, func(Event) { close(done) })

	bus.Publish(New(TypeTicketCreated, TicketCreated{TicketID: 1}))
	bus.Publish(New(TypeReviewCreated, ReviewCreated{ReviewID: 2}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker died after handler panic")
	}
	bus.Close()
}

func TestBus_CloseDrainsQueue(t *testing.T) {
	bus := NewBus(1, 32)

	var calls int32
	bus.Subscribe(TypePaymentCompleted, func(Event) {
		atomic.AddInt32(&calls, 1)
	})

	for i := 0; i < 10; i++ {
		bus.Publish(New(TypePaymentCompleted, PaymentCompleted{PaymentID: int64(i)}))
	}
	bus.Close()

	assert.Equal(t, int32(10), atomic.LoadInt32(&calls))
}
