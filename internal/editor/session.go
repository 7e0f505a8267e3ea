// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/page"
	"github.com/MKhiriev/go-landing-builder/models"
)

// ErrSessionClosed is returned by operations on a closed session.
var ErrSessionClosed = errors.New("editor session is closed")

// Gateway persists landing pages.
type Gateway interface {
	Create(ctx context.Context, doc models.LandingPage) (models.LandingPage, error)
	Get(ctx context.Context, id string) (models.LandingPage, error)
	Update(ctx context.Context, doc models.LandingPage) (models.LandingPage, error)
	Delete(ctx context.Context, id string) error
}

// Session is one open editor. Dispatch is safe for concurrent use. Saves
// never overlap: the debounced autosave, SaveNow and Publish all run under
// the same flight lock.
type Session struct {
	mu      sync.Mutex
	state   State
	reducer Reducer
	closed  bool

	flight sync.Mutex

	gateway  Gateway
	autosave *autosaver
	onChange func(State)
	logger   *logger.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithAutosaveDelay overrides [DefaultAutosaveDelay].
func WithAutosaveDelay(d time.Duration) Option {
	return func(s *Session) {
		s.autosave = newAutosaver(d, s.autosaveTick)
	}
}

// WithOnChange registers fn to be called with a snapshot after every state
// transition. fn runs outside the session lock.
func WithOnChange(fn func(State)) Option {
	return func(s *Session) {
		s.onChange = fn
	}
}

// WithLogger sets the session logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession opens doc for editing. The autosave loop runs until ctx is done
// or Close is called.
func NewSession(ctx context.Context, doc models.LandingPage, gateway Gateway, src page.SectionSource, opts ...Option) *Session {
	s := &Session{
		reducer: NewReducer(src),
		gateway: gateway,
		logger:  logger.Nop(),
	}
	s.autosave = newAutosaver(DefaultAutosaveDelay, s.autosaveTick)
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.reducer.Reduce(State{}, Load{Doc: doc})

	s.autosave.Start(ctx)
	return s
}

// OpenSession loads the page with id from gateway and opens it.
func OpenSession(ctx context.Context, id string, gateway Gateway, src page.SectionSource, opts ...Option) (*Session, error) {
	doc, err := gateway.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSession(ctx, doc, gateway, src, opts...), nil
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Dispatch applies a and returns the resulting state. Document mutations
// re-arm the autosave debounce.
func (s *Session) Dispatch(a Action) State {
	s.mu.Lock()
	if s.closed {
		snap := s.snapshot()
		s.mu.Unlock()
		return snap
	}
	before := s.state.Revision
	s.state = s.reducer.Reduce(s.state, a)
	changed := s.state.Revision != before
	snap := s.snapshot()
	s.mu.Unlock()

	if changed {
		s.autosave.Arm()
	}
	s.notify(snap)
	return snap
}

// SaveNow cancels the pending debounce and saves immediately. The returned
// error is also recorded in the save status.
func (s *Session) SaveNow(ctx context.Context) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	s.autosave.Disarm()

	s.flight.Lock()
	defer s.flight.Unlock()
	return s.saveLocked(ctx, true)
}

// Publish marks the page published on the server. A page that was never
// saved is created first.
func (s *Session) Publish(ctx context.Context) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	s.autosave.Disarm()

	s.flight.Lock()
	defer s.flight.Unlock()

	s.mu.Lock()
	isNew := s.state.Doc.IsNew()
	s.mu.Unlock()

	if isNew {
		if err := s.saveLocked(ctx, true); err != nil {
			return err
		}
	}

	doc, rev := s.begin()
	doc.Status = models.PageStatusPublished
	return s.persist(ctx, doc, rev)
}

// Close stops the autosave loop, waiting for a save in progress. Unsaved
// changes are not flushed; call SaveNow first to keep them.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.autosave.Stop()
	s.flight.Lock()
	s.flight.Unlock()
}

func (s *Session) autosaveTick(ctx context.Context) {
	s.flight.Lock()
	defer s.flight.Unlock()
	_ = s.saveLocked(ctx, false)
}

// saveLocked saves the current document. Callers hold the flight lock. A
// non-forced save is skipped when the server already has this revision.
func (s *Session) saveLocked(ctx context.Context, force bool) error {
	s.mu.Lock()
	skip := !force && !s.state.Dirty() && !s.state.Doc.IsNew()
	s.mu.Unlock()
	if skip {
		return nil
	}

	doc, rev := s.begin()
	return s.persist(ctx, doc, rev)
}

// begin snapshots the document and marks a save as in flight.
func (s *Session) begin() (models.LandingPage, int64) {
	s.mu.Lock()
	doc := s.state.Doc.Clone()
	rev := s.state.Revision
	s.state = s.reducer.Reduce(s.state, SaveStarted{Revision: rev})
	snap := s.snapshot()
	s.mu.Unlock()

	s.notify(snap)
	return doc, rev
}

func (s *Session) persist(ctx context.Context, doc models.LandingPage, rev int64) error {
	var (
		saved models.LandingPage
		err   error
	)
	if doc.IsNew() {
		saved, err = s.gateway.Create(ctx, doc)
	} else {
		saved, err = s.gateway.Update(ctx, doc)
	}

	var result Action = SaveSucceeded{Revision: rev, Page: saved}
	if err != nil {
		s.logger.Err(err).Str("func", "*Session.persist").Str("page_id", doc.ID).Int64("revision", rev).Msg("error saving page")
		result = SaveFailed{Err: err}
	} else {
		s.logger.Debug().Str("func", "*Session.persist").Str("page_id", saved.ID).Int64("revision", rev).Msg("page saved")
	}

	s.mu.Lock()
	s.state = s.reducer.Reduce(s.state, result)
	snap := s.snapshot()
	s.mu.Unlock()

	s.notify(snap)
	return err
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// snapshot copies the state so callers cannot alias the session's document.
// Callers hold mu.
func (s *Session) snapshot() State {
	snap := s.state
	snap.Doc = s.state.Doc.Clone()
	if s.state.Editing != nil {
		p := *s.state.Editing
		snap.Editing = &p
	}
	return snap
}

func (s *Session) notify(snap State) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}
