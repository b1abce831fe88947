package navigation

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNoAlert       = errors.New("no alert is presented")
	ErrUnknownAction = errors.New("unknown alert action")
)

// AlertActionStyle mirrors the button styles of a confirmation dialog.
type AlertActionStyle int

const (
	AlertActionDefault AlertActionStyle = iota
	AlertActionCancel
	AlertActionDestructive
)

func (s AlertActionStyle) MarshalText() ([]byte, error) {
	switch s {
	case AlertActionCancel:
		return []byte("cancel"), nil
	case AlertActionDestructive:
		return []byte("destructive"), nil
	default:
		return []byte("default"), nil
	}
}

// AlertAction is one button of an alert. Handler may be nil.
type AlertAction struct {
	Title   string                    `json:"title"`
	Style   AlertActionStyle          `json:"style"`
	Handler func(ctx context.Context) `json:"-"`
}

// Alert is a blocking question presented over the top screen.
type Alert struct {
	Title   string        `json:"title"`
	Message string        `json:"message,omitempty"`
	Actions []AlertAction `json:"actions"`
}

// Action finds the action titled title.
func (a *Alert) Action(title string) (AlertAction, error) {
	for _, action := range a.Actions {
		if action.Title == title {
			return action, nil
		}
	}
	return AlertAction{}, fmt.Errorf("%w: %q", ErrUnknownAction, title)
}

// Presenter shows alerts. Answers arrive later and run the chosen handler.
type Presenter interface {
	Present(alert *Alert)
}

// AlertSlot is a Presenter holding at most one pending alert.
type AlertSlot struct {
	pending *Alert
}

func (p *AlertSlot) Present(alert *Alert) { p.pending = alert }

// Pending returns the alert awaiting an answer, or nil.
func (p *AlertSlot) Pending() *Alert { return p.pending }

// Answer dismisses the pending alert and runs the handler of the chosen action.
func (p *AlertSlot) Answer(ctx context.Context, title string) error {
	if p.pending == nil {
		return ErrNoAlert
	}
	action, err := p.pending.Action(title)
	if err != nil {
		return err
	}
	p.pending = nil
	if action.Handler != nil {
		action.Handler(ctx)
	}
	return nil
}
