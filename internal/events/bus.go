package events

import (
	"log"
	"sync"
)

type Handler func(Event)

// Bus is an in-process publish/subscribe dispatcher. Services publish an
// event only after the mutating save has returned, so a handler never
// observes uncommitted state. Handlers run on a small fixed worker pool,
// decoupled from the publisher's goroutine; a slow or failing handler delays
// its own worker, never the caller.
//
// Delivery is best-effort: no retry, no ordering across events, no result
// fed back into domain state.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
	queue    chan Event
	wg       sync.WaitGroup

	closeOnce sync.Once
}

func NewBus(workers, buffer int) *Bus {
	if workers <= 0 {
		workers = 4
	}
	if buffer <= 0 {
		buffer = 64
	}
	b := &Bus{
		handlers: make(map[Type][]Handler),
		queue:    make(chan Event, buffer),
	}
	for i := 0; i < workers; i++ {
		b.wg.Add(1)
		go b.worker()
	}
	return b
}

// Subscribe registers a handler for an event type. Subscriptions are expected
// to happen during wiring, before traffic is served.
func (b *Bus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish enqueues the event for asynchronous dispatch. It blocks only when
// the buffer is full.
func (b *Bus) Publish(e Event) {
	b.queue <- e
}

// Close stops accepting events, drains the queue and waits for the workers.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.queue)
	})
	b.wg.Wait()
}

func (b *Bus) worker() {
	defer b.wg.Done()
	for e := range b.queue {
		b.dispatch(e)
	}
}

func (b *Bus) dispatch(e Event) {
	b.mu.RLock()
	hs := b.handlers[e.Type]
	b.mu.RUnlock()

	for _, h := range hs {
		b.run(h, e)
	}
}

func (b *Bus) run(h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("level=error msg=event handler panic event_type=%s event_id=%s err=%v", e.Type, e.ID, r)
		}
	}()
	h(e)
}
