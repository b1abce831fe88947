// Package session keeps one navigation stack per remote client.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/di"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/store"
	"brewer-backend/internal/theme"
	"brewer-backend/internal/viewmodel"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrAlertPending    = errors.New("an alert is waiting for an answer")
	ErrAtRoot          = errors.New("already at the root screen")
	ErrUnknownSegue    = errors.New("unknown segue")
	ErrNoSegue         = errors.New("screen performs no segues")
)

// Session is one client's navigation state. Every exported method holds the
// session lock, so screens and the store context only ever run on one goroutine
// at a time.
type Session struct {
	id        string
	createdAt time.Time

	mu        sync.Mutex
	store     *store.Context
	stack     *navigation.Stack
	alerts    *navigation.AlertSlot
	container *di.Container
	list      *screen.BrewListScreen
	closed    bool
}

func (s *Session) ID() string { return s.id }

// StackEntry is a screen below (or at) the top of the stack.
type StackEntry struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// ScreenView is the rendered top screen.
type ScreenView struct {
	StackEntry
	NavigationItem navigation.NavigationItem `json:"navigationItem"`
	Theme          *theme.Configuration      `json:"theme,omitempty"`
	Content        any                       `json:"content"`
}

// View is what a client renders after every call.
type View struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"createdAt"`
	Screen    ScreenView        `json:"screen"`
	Stack     []StackEntry      `json:"stack"`
	Alert     *navigation.Alert `json:"alert,omitempty"`
}

func screenType(sc navigation.Screen) string {
	switch sc.(type) {
	case *screen.BrewListScreen:
		return "brewList"
	case *screen.BrewDetailsScreen:
		return analytics.ScreenBrewDetails
	case *screen.BrewScoreDetailsScreen:
		return analytics.ScreenBrewScoreDetails
	case *screen.NewBrewScreen:
		return analytics.ScreenNewBrew
	case *screen.SelectableSearchScreen:
		return analytics.ScreenSelectableSearch
	case *screen.NumericalInputScreen:
		return analytics.ScreenNumericalInput
	case *screen.GrindSizeScreen:
		return analytics.ScreenGrindSize
	case *screen.TampingScreen:
		return analytics.ScreenTamping
	case *screen.NotesScreen:
		return analytics.ScreenNotes
	default:
		return fmt.Sprintf("%T", sc)
	}
}

func entry(sc navigation.Screen) StackEntry {
	return StackEntry{ID: sc.ID(), Type: screenType(sc), Title: sc.Title()}
}

type themed interface {
	Theme() *theme.Configuration
}

func (s *Session) view() View {
	v := View{
		ID:        s.id,
		CreatedAt: s.createdAt,
		Alert:     s.alerts.Pending(),
	}
	top := s.stack.Top()
	if top == nil {
		return v
	}
	v.Screen = ScreenView{
		StackEntry:     entry(top),
		NavigationItem: *top.NavigationItem(),
		Content:        top.View(),
	}
	if t, ok := top.(themed); ok {
		v.Screen.Theme = t.Theme()
	}
	for _, sc := range s.stack.Screens() {
		v.Stack = append(v.Stack, entry(sc))
	}
	return v
}

// View renders the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) do(fn func() error) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.view(), ErrSessionNotFound
	}
	if s.alerts.Pending() != nil {
		return s.view(), ErrAlertPending
	}
	if err := fn(); err != nil {
		return s.view(), err
	}
	return s.view(), nil
}

// Select taps a row of the top screen.
func (s *Session) Select(ctx context.Context, ip viewmodel.IndexPath) (View, error) {
	return s.do(func() error {
		sel, ok := s.stack.Top().(screen.Selectable)
		if !ok {
			return screen.ErrNotSelectable
		}
		return sel.Select(ctx, ip)
	})
}

// PerformSegue runs a named transition out of the top screen.
func (s *Session) PerformSegue(ctx context.Context, raw string) (View, error) {
	return s.do(func() error {
		id, ok := navigation.ParseSegueIdentifier(raw)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSegue, raw)
		}
		details, ok := s.stack.Top().(*screen.BrewDetailsScreen)
		if !ok {
			return ErrNoSegue
		}
		details.PerformSegue(ctx, id)
		return nil
	})
}

// Input applies a client action to the top screen.
func (s *Session) Input(ctx context.Context, in screen.Input) (View, error) {
	return s.do(func() error {
		h, ok := s.stack.Top().(screen.InputHandler)
		if !ok {
			return screen.ErrNoInput
		}
		return h.HandleInput(ctx, in)
	})
}

// Back pops the top screen.
func (s *Session) Back(ctx context.Context) (View, error) {
	return s.do(func() error {
		if _, ok := s.stack.Pop(ctx); !ok {
			return ErrAtRoot
		}
		return nil
	})
}

// AnswerAlert answers the pending alert with the action titled action.
func (s *Session) AnswerAlert(ctx context.Context, action string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.view(), ErrSessionNotFound
	}
	err := s.alerts.Answer(ctx, action)
	return s.view(), err
}

// close runs once; later calls are no-ops.
func (s *Session) close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.stack.Clear(ctx)
	s.store.Rollback()
}
