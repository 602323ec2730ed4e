// Package controller is the interaction state machine. Apply is the pure
// transition function; Controller owns the single mutable AppState and hands
// out immutable snapshots.
package controller

import (
	"log"
	"sync"

	"binminder/internal/domain"
	"binminder/internal/eventbus"
	"binminder/internal/ui/commands"
	"binminder/internal/ui/state"
)

// Effect lists the diagnostic events produced by a transition.
// It is an observability channel only, never an error channel.
type Effect struct {
	Events []domain.DomainEvent
}

func (e *Effect) add(ev domain.DomainEvent) {
	e.Events = append(e.Events, ev)
}

// Apply computes the state that follows s after cmd. It is total: mode
// commands issued in the wrong mode and unknown commands leave s unchanged.
func Apply(s state.AppState, cmd commands.Command) (state.AppState, Effect) {
	var eff Effect

	switch c := cmd.(type) {
	case commands.StartEdit:
		if s.Mode != domain.ModeEditing {
			eff.add(domain.ModeChangedEvent{From: s.Mode, To: domain.ModeEditing})
			s.Mode = domain.ModeEditing
		}

	case commands.StopEdit:
		if s.Mode != domain.ModeBrowsing {
			eff.add(domain.ModeChangedEvent{From: s.Mode, To: domain.ModeBrowsing})
			s.Mode = domain.ModeBrowsing
		}

	case commands.SubmitReminder:
		// Built and handed out for acknowledgement only; nothing keeps it
		if s.Mode == domain.ModeEditing {
			eff.add(domain.ReminderSubmittedEvent{
				Reminder: domain.NewReminder(c.Description, s.Selection.CurrentDate()),
			})
		}

	case commands.SelectDate:
		s.Selection = s.Selection.WithDate(c.Date)
		eff.add(domain.DateSelectedEvent{Date: c.Date})

	case commands.SelectBin:
		s.Selection = s.Selection.WithBin(c.Index)
		eff.add(domain.BinSelectedEvent{Index: c.Index})
	}

	return s, eff
}

// Controller holds the only mutable copy of the interaction state
type Controller struct {
	mu      sync.Mutex
	state   state.AppState
	catalog domain.BinCatalog
	bus     eventbus.EventBus
}

// New creates a controller starting at initial. bus may be nil.
func New(initial state.AppState, catalog domain.BinCatalog, bus eventbus.EventBus) *Controller {
	return &Controller{
		state:   initial,
		catalog: catalog,
		bus:     bus,
	}
}

// Dispatch applies cmds in order, publishes their effects and returns the resulting snapshot
func (c *Controller) Dispatch(cmds ...commands.Command) state.Snapshot {
	c.mu.Lock()
	var events []domain.DomainEvent
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		log.Printf("Dispatch: %s", cmd.Type())
		var eff Effect
		c.state, eff = Apply(c.state, cmd)
		events = append(events, eff.Events...)
	}
	snap := c.state.Snapshot(c.catalog)

	// Published under the lock so concurrent dispatches log in state order
	if c.bus != nil {
		for _, ev := range events {
			c.bus.Publish(ev)
		}
	}
	c.mu.Unlock()
	return snap
}

// State returns a copy of the current state
func (c *Controller) State() state.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the current read-only snapshot
func (c *Controller) Snapshot() state.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot(c.catalog)
}

// Catalog returns the catalog snapshots are resolved against
func (c *Controller) Catalog() domain.BinCatalog {
	return c.catalog
}
