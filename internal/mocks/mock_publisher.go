package mocks

import (
	"context"
	"sync"

	"github.com/metinatakli/movie-booking-api/internal/events"
)

// MockPublisher records published events.
type MockPublisher struct {
	mu     sync.Mutex
	events []events.BookingEvent
	Err    error
}

func (m *MockPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, event)
	return m.Err
}

func (m *MockPublisher) Events() []events.BookingEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]events.BookingEvent, len(m.events))
	copy(out, m.events)
	return out
}

func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = nil
}
