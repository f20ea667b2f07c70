// Package reconcile folds the engine's push-events into one consistent
// application snapshot. The four event channels are independent and
// unordered; each update is applied atomically to its own field by a
// single reducer goroutine, never by the consumers.
package reconcile

import (
	"context"
	"log"
	"sync"

	"github.com/shytext/shytext/internal/backend"
	"github.com/shytext/shytext/internal/config"
)

// Snapshot is the current application state as seen by the UI. It is
// replaced wholesale on every relevant event and never partially
// mutated by readers.
type Snapshot struct {
	Status            backend.Status
	LastTranscription string
	LastError         string
}

// Reconciler consumes the engine's push channels. A gpu-fallback event
// re-fetches the committed configuration and hands it to the reload
// hook (the settings store), overriding any unsaved draft.
type Reconciler struct {
	statusCh        chan backend.Status
	transcriptionCh chan string
	errorCh         chan string
	fallbackCh      chan struct{}

	fetch  func(ctx context.Context) (config.Config, error)
	reload func(config.Config)

	mu   sync.RWMutex
	snap Snapshot

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a reconciler. fetch retrieves the committed configuration
// from the backend; reload feeds it into the settings store.
func New(fetch func(ctx context.Context) (config.Config, error), reload func(config.Config)) *Reconciler {
	return &Reconciler{
		statusCh:        make(chan backend.Status, 4),
		transcriptionCh: make(chan string, 4),
		errorCh:         make(chan string, 4),
		fallbackCh:      make(chan struct{}, 1),
		fetch:           fetch,
		reload:          reload,
		snap:            Snapshot{Status: backend.Idle},
	}
}

// Snapshot returns the current state. Before any event arrives this is
// Idle with empty transcription and no error.
func (r *Reconciler) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

// Statuses is the state-changed input channel.
func (r *Reconciler) Statuses() chan<- backend.Status { return r.statusCh }

// Transcriptions is the transcription input channel.
func (r *Reconciler) Transcriptions() chan<- string { return r.transcriptionCh }

// Errors is the error input channel; an empty message clears the last
// error.
func (r *Reconciler) Errors() chan<- string { return r.errorCh }

// Fallbacks is the gpu-fallback input channel.
func (r *Reconciler) Fallbacks() chan<- struct{} { return r.fallbackCh }

// Feed routes a multiplexed backend event onto the matching channel.
// Used by subscribers of backend.Publisher.
func (r *Reconciler) Feed(ev backend.Event) {
	switch ev.Kind {
	case backend.EventStateChanged:
		r.statusCh <- ev.Status
	case backend.EventTranscription:
		r.transcriptionCh <- ev.Text
	case backend.EventError:
		r.errorCh <- ev.Text
	case backend.EventGpuFallback:
		select {
		case r.fallbackCh <- struct{}{}:
		default:
			// a fallback reload is already queued
		}
	}
}

// Run starts the reducer goroutine.
func (r *Reconciler) Run(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	go r.run(runCtx)
}

func (r *Reconciler) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Reconciler) run(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case status := <-r.statusCh:
			r.update(func(s *Snapshot) { s.Status = status })

		case text := <-r.transcriptionCh:
			r.update(func(s *Snapshot) { s.LastTranscription = text })

		case msg := <-r.errorCh:
			r.update(func(s *Snapshot) { s.LastError = msg })

		case <-r.fallbackCh:
			r.handleFallback(ctx)

		case <-ctx.Done():
			return
		}
	}
}

func (r *Reconciler) update(apply func(*Snapshot)) {
	r.mu.Lock()
	apply(&r.snap)
	r.mu.Unlock()
}

// handleFallback re-fetches the committed configuration: the engine has
// already rewritten it, so whatever the settings draft held is stale.
func (r *Reconciler) handleFallback(ctx context.Context) {
	cfg, err := r.fetch(ctx)
	if err != nil {
		log.Printf("Reconciler: config re-fetch after gpu fallback failed: %v", err)
		r.update(func(s *Snapshot) { s.LastError = err.Error() })
		return
	}

	log.Printf("Reconciler: gpu fallback, reloading committed configuration")
	r.reload(cfg)
}
