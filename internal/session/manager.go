package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/assembly"
	"brewer-backend/internal/di"
	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/store"
	"brewer-backend/internal/theme"
	"brewer-backend/internal/viewmodel"
)

// Options are the process-wide services every session shares.
type Options struct {
	TTL      time.Duration
	Units    *modelcontroller.UnitsModelController
	Settings *modelcontroller.SequenceSettingsModelController
	KeyValue modelcontroller.KeyValueStore
	Theme    *theme.Configuration
	Tracker  analytics.Tracker
	Finished screen.BrewFinishedHandler
}

// Manager creates sessions and expires idle ones.
type Manager struct {
	db       *gorm.DB
	opts     Options
	log      *zap.Logger
	sessions *cache.Cache
	now      func() time.Time
}

func NewManager(db *gorm.DB, opts Options, log *zap.Logger) *Manager {
	if opts.Finished == nil {
		opts.Finished = screen.BrewFinishedFunc(func(context.Context, string) {})
	}
	m := &Manager{
		db:       db,
		opts:     opts,
		log:      log.Named("session"),
		sessions: cache.New(opts.TTL, opts.TTL/2),
		now:      time.Now,
	}
	// Expired sessions are closed on the janitor goroutine so that screens
	// saving on disappearance still write their edits.
	m.sessions.OnEvicted(func(id string, v any) {
		m.log.Debug("session evicted", zap.String("session_id", id))
		if s, ok := v.(*Session); ok {
			s.close(context.Background())
		}
	})
	return m
}

func (m *Manager) newSession(ctx context.Context) *Session {
	s := &Session{
		id:        uuid.NewString(),
		createdAt: m.now().UTC(),
		store:     store.NewContext(m.db, model.InsertOrder...),
		stack:     navigation.NewStack(),
		alerts:    &navigation.AlertSlot{},
	}
	s.container = assembly.NewSession(assembly.Shared{
		Log:       m.log.With(zap.String("session_id", s.id)),
		Context:   s.store,
		Stack:     s.stack,
		Presenter: s.alerts,
		Theme:     m.opts.Theme,
		Tracker:   m.opts.Tracker,
		Units:     m.opts.Units,
		Settings:  m.opts.Settings,
		KeyValue:  m.opts.KeyValue,
		Finished:  m.opts.Finished,
	})
	s.list = di.ResolveAs[*screen.BrewListScreen](s.container, di.ServiceBrewListScreen)
	s.stack.SetRoot(ctx, s.list)
	return s
}

func (m *Manager) add(s *Session) {
	m.sessions.Set(s.id, s, cache.DefaultExpiration)
	m.log.Info("session opened", zap.String("session_id", s.id))
}

// OpenBrew starts a session showing the details of brewID.
func (m *Manager) OpenBrew(ctx context.Context, brewID string, editable bool) (*Session, error) {
	s := m.newSession(ctx)
	if _, err := s.list.OpenBrew(ctx, brewID, editable); err != nil {
		return nil, err
	}
	m.add(s)
	return s, nil
}

// StartBrew starts a session in the new brew flow, optionally seeded from referenceID.
func (m *Manager) StartBrew(ctx context.Context, referenceID string) (*Session, error) {
	s := m.newSession(ctx)
	var start viewmodel.StartBrewContext
	if referenceID != "" {
		ref, err := modelcontroller.NewBrewModelController(s.store).LoadBrew(ctx, referenceID)
		if err != nil {
			return nil, err
		}
		start.Reference = ref
	}
	s.list.StartBrew(ctx, start)
	m.add(s)
	return s, nil
}

// Get returns a live session and extends its lifetime.
func (m *Manager) Get(id string) (*Session, error) {
	v, ok := m.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s := v.(*Session)
	m.sessions.Set(id, s, cache.DefaultExpiration)
	return s, nil
}

// Close ends a session. Unsaved edits on screens that save when they
// disappear are written; everything else pending is dropped.
func (m *Manager) Close(ctx context.Context, id string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	s.close(ctx)
	m.sessions.Delete(id)
	return nil
}

// Len is the number of live sessions.
func (m *Manager) Len() int { return m.sessions.ItemCount() }
