package viewmodel

import (
	"context"
	"errors"
	"fmt"

	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
)

// ErrBrewFinished is returned when a finished or cancelled flow is used again.
var ErrBrewFinished = errors.New("new brew flow already ended")

// StartBrewContext configures a new brew flow. A non-nil Reference seeds the
// new brew with the coffee, machine and attributes of an earlier one.
type StartBrewContext struct {
	Reference *model.Brew
}

// PageMetrics describes progress through a paged flow.
type PageMetrics struct {
	Index int `json:"index"`
	Count int `json:"count"`
}

// Progress is the fraction of pages reached, in (0,1].
func (m PageMetrics) Progress() float64 {
	if m.Count == 0 {
		return 0
	}
	return float64(m.Index+1) / float64(m.Count)
}

func (m PageMetrics) String() string { return fmt.Sprintf("%d / %d", m.Index+1, m.Count) }

// NewBrewViewModel walks a temporary brew through the configured attribute steps.
type NewBrewViewModel struct {
	brewModelController *modelcontroller.BrewModelController
	pages               []model.AttributeType
	index               int
	ended               bool
}

func NewNewBrewViewModel(
	brewContext StartBrewContext,
	settings *modelcontroller.SequenceSettingsModelController,
	brewModelController *modelcontroller.BrewModelController,
) *NewBrewViewModel {
	brew := brewModelController.CreateNewBrew()
	if ref := brewContext.Reference; ref != nil {
		if ref.Coffee != nil {
			_ = brewModelController.SetCoffee(ref.Coffee)
		}
		if ref.CoffeeMachine != nil {
			_ = brewModelController.SetCoffeeMachine(ref.CoffeeMachine)
		}
		for _, a := range model.Attributes {
			if v, ok := ref.Attribute(a); ok {
				_ = brew.SetAttribute(a, v)
			}
		}
	}
	return &NewBrewViewModel{
		brewModelController: brewModelController,
		pages:               settings.Sequence(),
	}
}

func (vm *NewBrewViewModel) BrewModelController() *modelcontroller.BrewModelController {
	return vm.brewModelController
}

func (vm *NewBrewViewModel) Pages() []model.AttributeType { return vm.pages }

func (vm *NewBrewViewModel) CurrentPage() model.AttributeType { return vm.pages[vm.index] }

func (vm *NewBrewViewModel) Metrics() PageMetrics {
	return PageMetrics{Index: vm.index, Count: len(vm.pages)}
}

// Next moves forward one page; false on the last page.
func (vm *NewBrewViewModel) Next() bool {
	if vm.index >= len(vm.pages)-1 {
		return false
	}
	vm.index++
	return true
}

// Previous moves back one page; false on the first page.
func (vm *NewBrewViewModel) Previous() bool {
	if vm.index == 0 {
		return false
	}
	vm.index--
	return true
}

// Finish logs the brew and returns it.
func (vm *NewBrewViewModel) Finish(ctx context.Context) (*model.Brew, error) {
	if vm.ended {
		return nil, ErrBrewFinished
	}
	brew := vm.brewModelController.CurrentBrew()
	if err := vm.brewModelController.FinishBrew(ctx); err != nil {
		return nil, err
	}
	vm.ended = true
	return brew, nil
}

// Cancel discards the temporary brew.
func (vm *NewBrewViewModel) Cancel(ctx context.Context) error {
	if vm.ended {
		return ErrBrewFinished
	}
	if err := vm.brewModelController.RemoveBrew(ctx); err != nil {
		return err
	}
	vm.ended = true
	return nil
}
