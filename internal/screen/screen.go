// Package screen implements the headless screens of a navigation session.
package screen

import (
	"context"
	"errors"
	"fmt"

	"brewer-backend/internal/navigation"
	"brewer-backend/internal/viewmodel"
)

var (
	ErrUnknownAction = errors.New("unknown input action")
	ErrMissingValue  = errors.New("missing input value")
	ErrNotSelectable = errors.New("screen has no selectable rows")
	ErrNoInput       = errors.New("screen does not accept input")
)

// Input is a client action applied to the top screen.
type Input struct {
	Action   string   `json:"action" binding:"required"`
	Value    string   `json:"value,omitempty"`
	Number   *float64 `json:"number,omitempty"`
	ID       string   `json:"id,omitempty"`
	Category string   `json:"category,omitempty"`
}

func (in Input) number() (float64, error) {
	if in.Number == nil {
		return 0, fmt.Errorf("%w: %s needs a number", ErrMissingValue, in.Action)
	}
	return *in.Number, nil
}

func unknownAction(in Input) error {
	return fmt.Errorf("%w: %q", ErrUnknownAction, in.Action)
}

// InputHandler is implemented by screens that accept Input.
type InputHandler interface {
	HandleInput(ctx context.Context, in Input) error
}

// Selectable is implemented by screens with tappable table rows.
type Selectable interface {
	Select(ctx context.Context, ip viewmodel.IndexPath) error
}

// BrewFinishedHandler is told about every brew the new brew flow logs.
type BrewFinishedHandler interface {
	BrewFinished(ctx context.Context, brewID string)
}

// BrewFinishedFunc adapts a function to BrewFinishedHandler.
type BrewFinishedFunc func(ctx context.Context, brewID string)

func (f BrewFinishedFunc) BrewFinished(ctx context.Context, brewID string) { f(ctx, brewID) }

// Pushable is a screen that can be pushed with back navigation.
type Pushable interface {
	navigation.Screen
	ShowBackButton()
	EnableSwipeToBack()
}

func prepareChild(c Pushable) {
	c.ShowBackButton()
	c.EnableSwipeToBack()
}
