// Package modelcontroller mediates between view models and the persistence
// context, one controller per entity family.
package modelcontroller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brewer-backend/internal/model"
	"brewer-backend/internal/store"
)

var (
	ErrNoBrew       = errors.New("no brew selected")
	ErrBrewNotFound = errors.New("brew not found")
)

// BrewModelController owns one brew (possibly none yet) inside a store context.
type BrewModelController struct {
	context *store.Context
	brews   store.Operations[model.Brew, *model.Brew]
	brew    *model.Brew
	now     func() time.Time
}

// NewBrewModelController returns a controller without a current brew.
func NewBrewModelController(c *store.Context) *BrewModelController {
	return &BrewModelController{
		context: c,
		brews:   store.NewOperations[model.Brew](c),
		now:     time.Now,
	}
}

// NewBrewModelControllerForBrew returns a controller bound to brew.
func NewBrewModelControllerForBrew(c *store.Context, brew *model.Brew) *BrewModelController {
	m := NewBrewModelController(c)
	m.brew = brew
	return m
}

// Context is the store context the controller writes through.
func (m *BrewModelController) Context() *store.Context { return m.context }

// CurrentBrew returns the brew being edited, or nil.
func (m *BrewModelController) CurrentBrew() *model.Brew { return m.brew }

// CreateNewBrew inserts a temporary brew and makes it current.
func (m *BrewModelController) CreateNewBrew() *model.Brew {
	brew := m.brews.Create()
	brew.CreatedAt = m.now().UTC()
	brew.Temporary = true
	m.brew = brew
	return brew
}

// Brews lists finished brews, newest first.
func (m *BrewModelController) Brews(ctx context.Context) ([]*model.Brew, error) {
	return m.brews.Fetch(ctx, store.FetchRequest{
		Predicate:       store.Where("temporary = ?", false),
		SortDescriptors: []store.SortDescriptor{store.Descending("created_at")},
		Preload:         []string{"Coffee", "CoffeeMachine"},
	})
}

// LoadBrew makes the brew with id current, preferring the registered instance.
func (m *BrewModelController) LoadBrew(ctx context.Context, id string) (*model.Brew, error) {
	if brew, ok := m.brews.ObjectForID(id); ok {
		m.brew = brew
		return brew, nil
	}
	found, err := m.brews.Fetch(ctx, store.FetchRequest{
		Predicate: store.Where("id = ?", id),
		Preload:   []string{"Coffee", "CoffeeMachine"},
		Limit:     1,
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBrewNotFound, id)
	}
	m.brew = found[0]
	return m.brew, nil
}

func (m *BrewModelController) current() (*model.Brew, error) {
	if m.brew == nil {
		return nil, ErrNoBrew
	}
	return m.brew, nil
}

// SetAttribute stores a value in canonical units; a nil value clears it.
func (m *BrewModelController) SetAttribute(a model.AttributeType, value *float64) error {
	brew, err := m.current()
	if err != nil {
		return err
	}
	if value == nil {
		brew.ClearAttribute(a)
	} else if err := brew.SetAttribute(a, *value); err != nil {
		return err
	}
	m.brews.MarkChanged(brew)
	return nil
}

// SetNotes replaces the brew notes.
func (m *BrewModelController) SetNotes(notes string) error {
	brew, err := m.current()
	if err != nil {
		return err
	}
	brew.Notes = notes
	m.brews.MarkChanged(brew)
	return nil
}

// SetScore records one score category.
func (m *BrewModelController) SetScore(category model.ScoreCategory, value float64) error {
	brew, err := m.current()
	if err != nil {
		return err
	}
	brew.SetScore(category, value)
	m.brews.MarkChanged(brew)
	return nil
}

// SetCoffee references coffee from the brew.
func (m *BrewModelController) SetCoffee(coffee *model.Coffee) error {
	brew, err := m.current()
	if err != nil {
		return err
	}
	brew.Coffee = coffee
	brew.CoffeeID = &coffee.ID
	m.brews.MarkChanged(brew)
	return nil
}

// SetCoffeeMachine references machine from the brew.
func (m *BrewModelController) SetCoffeeMachine(machine *model.CoffeeMachine) error {
	brew, err := m.current()
	if err != nil {
		return err
	}
	brew.CoffeeMachine = machine
	brew.CoffeeMachineID = &machine.ID
	m.brews.MarkChanged(brew)
	return nil
}

// HasChanges reports whether SaveBrew would write anything.
func (m *BrewModelController) HasChanges() bool {
	return m.context.HasChanges()
}

// SaveBrew commits the context.
func (m *BrewModelController) SaveBrew(ctx context.Context) error {
	if err := m.context.Save(ctx); err != nil {
		return fmt.Errorf("failed to save brew: %w", err)
	}
	return nil
}

// FinishBrew turns the temporary brew into a logged one and saves it.
func (m *BrewModelController) FinishBrew(ctx context.Context) error {
	brew, err := m.current()
	if err != nil {
		return err
	}
	brew.Temporary = false
	m.brews.MarkChanged(brew)
	return m.SaveBrew(ctx)
}

// RemoveBrew deletes the current brew. On failure the deletion is withdrawn
// and the brew stays current.
func (m *BrewModelController) RemoveBrew(ctx context.Context) error {
	brew, err := m.current()
	if err != nil {
		return err
	}
	m.brews.Delete(brew)
	if err := m.context.Save(ctx); err != nil {
		m.context.CancelDelete(brew)
		return fmt.Errorf("failed to remove brew %s: %w", brew.ID, err)
	}
	m.brew = nil
	return nil
}
