// Package settings holds the draft/committed configuration model behind
// the settings UI: field edits land in a draft, Apply persists and
// commits it, and externally committed values (initial load, GPU
// fallback, config file rewrites) reset the draft wholesale.
package settings

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/shytext/shytext/internal/config"
	"github.com/shytext/shytext/internal/language"
)

// Persister saves a full configuration record. backend.Backend
// satisfies it.
type Persister interface {
	SaveConfig(ctx context.Context, cfg config.Config) error
}

// Store owns a committed configuration and an editable draft. Both are
// single-owner: nothing outside the store mutates them. The store
// deliberately provides no mutual exclusion between Apply and Reload;
// when the two race, the last update to land wins.
type Store struct {
	mu        sync.Mutex
	committed config.Config
	draft     config.Config

	persister    Persister
	languageName func(code string) string
	deviceName   func(id int) string
}

type Option func(*Store)

// WithLanguageRenderer overrides how language codes are displayed in
// change summaries.
func WithLanguageRenderer(fn func(code string) string) Option {
	return func(s *Store) { s.languageName = fn }
}

// WithDeviceRenderer overrides how GPU device ids are displayed in
// change summaries.
func WithDeviceRenderer(fn func(id int) string) Option {
	return func(s *Store) { s.deviceName = fn }
}

// New creates a store with committed and draft both set to initial.
func New(initial config.Config, p Persister, opts ...Option) *Store {
	s := &Store{
		committed:    initial,
		draft:        initial,
		persister:    p,
		languageName: language.DisplayName,
		deviceName:   func(id int) string { return strconv.Itoa(id) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draft returns a copy of the editable draft.
func (s *Store) Draft() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Committed returns a copy of the last persisted configuration.
func (s *Store) Committed() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

func (s *Store) SetHotkey(combo string) {
	s.mu.Lock()
	s.draft.Hotkey = combo
	s.mu.Unlock()
}

func (s *Store) SetLanguage(code string) {
	s.mu.Lock()
	s.draft.Language = code
	s.mu.Unlock()
}

func (s *Store) SetAutoCopy(on bool) {
	s.mu.Lock()
	s.draft.AutoCopy = on
	s.mu.Unlock()
}

func (s *Store) SetShowNotifications(on bool) {
	s.mu.Lock()
	s.draft.ShowNotifications = on
	s.mu.Unlock()
}

func (s *Store) SetUseGpu(on bool) {
	s.mu.Lock()
	s.draft.UseGpu = on
	s.mu.Unlock()
}

func (s *Store) SetGpuDevice(id int) {
	s.mu.Lock()
	s.draft.GpuDevice = id
	s.mu.Unlock()
}

// HasPendingChanges reports whether any tracked field differs between
// draft and committed. ModelPath is owned by the model collaborator and
// is not tracked.
func (s *Store) HasPendingChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.diffLocked()) > 0
}

// Diff returns the tracked fields that differ, in fixed field order,
// rendered for humans.
func (s *Store) Diff() ChangeSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diffLocked()
}

// Apply persists the full draft and, on success, commits it. On failure
// the committed value and the draft are both left untouched so no edits
// are lost; the caller surfaces the error and may retry.
func (s *Store) Apply(ctx context.Context) (ChangeSet, error) {
	s.mu.Lock()
	changes := s.diffLocked()
	draft := s.draft
	s.mu.Unlock()

	// Persist without holding the lock: a reload landing mid-apply is
	// an accepted last-write-wins race, not something to serialize.
	if err := s.persister.SaveConfig(ctx, draft); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}

	s.mu.Lock()
	s.committed = draft
	s.draft = draft
	s.mu.Unlock()

	return changes, nil
}

// Reload replaces the committed configuration from outside the settings
// flow and discards any unsaved draft edits. Used for the initial load,
// config file rewrites and GPU fallback: once the engine has overridden
// the user's choice, a stale draft is no longer valid.
func (s *Store) Reload(cfg config.Config) {
	s.mu.Lock()
	s.committed = cfg
	s.draft = cfg
	s.mu.Unlock()
}
