// Package navigation models a stack of headless screens driven by remote clients.
package navigation

import (
	"context"

	"github.com/google/uuid"

	"brewer-backend/internal/theme"
)

// Screen is one entry of a navigation stack.
type Screen interface {
	ID() string
	Title() string
	NavigationItem() *NavigationItem
	// View is the JSON-able state a client renders.
	View() any
}

// NavigationItem holds the bar controls of a screen.
type NavigationItem struct {
	BackButton  bool `json:"backButton"`
	SwipeToBack bool `json:"swipeToBack"`
}

// Activable screens run only while they are on top of the stack.
type Activable interface {
	Active() bool
	SetActive(active bool)
}

// Appearer is notified before a screen becomes the top of the stack.
type Appearer interface {
	WillAppear(ctx context.Context)
}

// Disappearer is notified before a screen stops being the top of the stack.
type Disappearer interface {
	WillDisappear(ctx context.Context)
}

// BaseScreen implements the bookkeeping shared by all screens.
type BaseScreen struct {
	id    string
	title string
	item  NavigationItem
	theme *theme.Configuration
}

func NewBaseScreen(title string) BaseScreen {
	return BaseScreen{id: uuid.NewString(), title: title}
}

func (b *BaseScreen) ID() string                      { return b.id }
func (b *BaseScreen) Title() string                   { return b.title }
func (b *BaseScreen) SetTitle(title string)           { b.title = title }
func (b *BaseScreen) NavigationItem() *NavigationItem { return &b.item }
func (b *BaseScreen) Theme() *theme.Configuration     { return b.theme }

func (b *BaseScreen) ConfigureWithTheme(t *theme.Configuration) { b.theme = t }

// EnableSwipeToBack lets the client pop the screen with a gesture.
func (b *BaseScreen) EnableSwipeToBack() { b.item.SwipeToBack = true }

// ShowBackButton places a back button in the navigation bar.
func (b *BaseScreen) ShowBackButton() { b.item.BackButton = true }
