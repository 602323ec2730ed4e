package eventbus

import (
	"log"
	"runtime/debug"
	"sync"
	"time"

	"binminder/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventModeChanged       = domain.EventModeChanged
	EventDateSelected      = domain.EventDateSelected
	EventBinSelected       = domain.EventBinSelected
	EventReminderSubmitted = domain.EventReminderSubmitted
	EventConfigLoaded      = domain.EventConfigLoaded
	EventConfigSaved       = domain.EventConfigSaved
	EventError             = domain.EventError
)

// Re-export domain event types
type ModeChangedEvent = domain.ModeChangedEvent
type DateSelectedEvent = domain.DateSelectedEvent
type BinSelectedEvent = domain.BinSelectedEvent
type ReminderSubmittedEvent = domain.ReminderSubmittedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Events are delivered on a single dispatcher goroutine in publish order.
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once

	publishTimeout time.Duration
}

const (
	queueSize      = 256
	publishTimeout = 2 * time.Second
)

// New creates a new event bus
func New() EventBus {
	return newBus(queueSize, publishTimeout)
}

func newBus(size int, timeout time.Duration) *bus {
	b := &bus{
		handlers:       make(map[EventType][]subscription),
		eventChan:      make(chan DomainEvent, size),
		quit:           make(chan struct{}),
		publishTimeout: timeout,
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers of its type. When the queue is
// full it blocks up to the publish timeout, then drops the event with a log line.
func (b *bus) Publish(event DomainEvent) {
	select {
	case <-b.quit:
		log.Printf("EventBus: closed, dropping event %s", event.Type())
		return
	default:
	}

	select {
	case b.eventChan <- event:
		return
	default:
	}

	// Queue full: wait for the dispatcher before giving up on the event
	timer := time.NewTimer(b.publishTimeout)
	defer timer.Stop()
	select {
	case b.eventChan <- event:
	case <-b.quit:
		log.Printf("EventBus: closed, dropping event %s", event.Type())
	case <-timer.C:
		log.Printf("Event bus channel full for %s, dropping event: %v", b.publishTimeout, event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher after delivering everything already queued
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			s.handler(event)
		}()
	}
}
