package backend

import (
	"log"
	"sync"
)

// Status is the engine's activity tag, pushed via state-changed events.
type Status string

const (
	Idle         Status = "idle"
	Recording    Status = "recording"
	Transcribing Status = "transcribing"
)

type EventKind string

const (
	// EventStateChanged replaces the status field.
	EventStateChanged EventKind = "state-changed"
	// EventTranscription carries the finished transcription text.
	EventTranscription EventKind = "transcription"
	// EventError carries a user-visible error message; empty text clears
	// the previous error.
	EventError EventKind = "error"
	// EventGpuFallback has no payload: the engine silently switched away
	// from the configured GPU device and rewrote the saved config.
	EventGpuFallback EventKind = "gpu-fallback"
)

// Event is a fire-and-forget push from the engine. Status is set for
// EventStateChanged, Text for EventTranscription and EventError.
type Event struct {
	Kind   EventKind
	Status Status
	Text   string
}

// Publisher fans events out to subscribers. Delivery is best-effort: a
// subscriber that stops draining loses events rather than blocking the
// engine.
type Publisher struct {
	mu   sync.Mutex
	subs []chan Event
}

func (p *Publisher) Subscribe() <-chan Event {
	ch := make(chan Event, 16)
	p.mu.Lock()
	p.subs = append(p.subs, ch)
	p.mu.Unlock()
	return ch
}

func (p *Publisher) Publish(ev Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.subs {
		select {
		case ch <- ev:
		default:
			log.Printf("Backend: dropping %s event for slow subscriber", ev.Kind)
		}
	}
}
