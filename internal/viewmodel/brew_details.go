package viewmodel

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
)

// ErrInvalidIndexPath is returned for a section or row the details table does not have.
var ErrInvalidIndexPath = errors.New("invalid index path")

// SectionType classifies the rows of the brew details table.
type SectionType int

const (
	SectionScore SectionType = iota + 1
	SectionCoffeeInfo
	SectionAttributes
	SectionNotes
	SectionRemove
)

func (s SectionType) String() string {
	switch s {
	case SectionScore:
		return "score"
	case SectionCoffeeInfo:
		return "coffeeInfo"
	case SectionAttributes:
		return "attributes"
	case SectionNotes:
		return "notes"
	case SectionRemove:
		return "remove"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// MarshalText renders the section by name in JSON views.
func (s SectionType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// IndexPath addresses one row of a sectioned table.
type IndexPath struct {
	Section int `json:"section"`
	Row     int `json:"row"`
}

// Row is one rendered table cell.
type Row struct {
	Title      string `json:"title"`
	Value      string `json:"value,omitempty"`
	Disclosure bool   `json:"disclosure"`
}

// Section is one rendered table section.
type Section struct {
	Type  SectionType `json:"type"`
	Title string      `json:"title,omitempty"`
	Rows  []Row       `json:"rows"`
}

var coffeeInfoRows = []modelcontroller.SelectableSearchIdentifier{
	modelcontroller.SearchCoffee,
	modelcontroller.SearchCoffeeMachine,
}

// BrewDetailsViewModel presents a single brew as a sectioned table.
type BrewDetailsViewModel struct {
	brewModelController *modelcontroller.BrewModelController
	units               *modelcontroller.UnitsModelController
	editable            bool
	sections            []Section
	log                 *zap.Logger
}

func NewBrewDetailsViewModel(
	brewModelController *modelcontroller.BrewModelController,
	units *modelcontroller.UnitsModelController,
	editable bool,
	log *zap.Logger,
) *BrewDetailsViewModel {
	vm := &BrewDetailsViewModel{
		brewModelController: brewModelController,
		units:               units,
		editable:            editable,
		log:                 log,
	}
	vm.RefreshData()
	return vm
}

// Editable reports whether coffee info and attribute rows can be changed.
func (vm *BrewDetailsViewModel) Editable() bool { return vm.editable }

func (vm *BrewDetailsViewModel) BrewModelController() *modelcontroller.BrewModelController {
	return vm.brewModelController
}

func (vm *BrewDetailsViewModel) CurrentBrew() *model.Brew {
	return vm.brewModelController.CurrentBrew()
}

// Sections returns the rows built by the last RefreshData.
func (vm *BrewDetailsViewModel) Sections() []Section { return vm.sections }

// RefreshData rebuilds the table from the current brew.
func (vm *BrewDetailsViewModel) RefreshData() {
	brew := vm.CurrentBrew()
	if brew == nil {
		vm.sections = nil
		return
	}

	score := Row{Title: "Final score", Disclosure: true}
	if s, ok := brew.Score(); ok {
		score.Value = formatScore(s)
	}

	coffeeInfo := make([]Row, 0, len(coffeeInfoRows))
	for _, id := range coffeeInfoRows {
		row := Row{Title: id.Description(), Disclosure: vm.editable}
		switch id {
		case modelcontroller.SearchCoffee:
			if brew.Coffee != nil {
				row.Value = brew.Coffee.Name
			}
		case modelcontroller.SearchCoffeeMachine:
			if brew.CoffeeMachine != nil {
				row.Value = brew.CoffeeMachine.Name
			}
		}
		coffeeInfo = append(coffeeInfo, row)
	}

	attributes := make([]Row, 0, len(model.Attributes))
	for _, a := range model.Attributes {
		row := Row{Title: a.Title(), Disclosure: vm.editable}
		if v, ok := brew.Attribute(a); ok {
			row.Value = FormatAttribute(a, v, vm.units)
		}
		attributes = append(attributes, row)
	}

	vm.sections = []Section{
		{Type: SectionScore, Rows: []Row{score}},
		{Type: SectionCoffeeInfo, Title: "Coffee", Rows: coffeeInfo},
		{Type: SectionAttributes, Title: "Brew", Rows: attributes},
		{Type: SectionNotes, Title: "Notes", Rows: []Row{{Title: "Notes", Value: brew.Notes, Disclosure: true}}},
		{Type: SectionRemove, Rows: []Row{{Title: "Remove brew"}}},
	}
}

func (vm *BrewDetailsViewModel) section(ip IndexPath) (Section, error) {
	if ip.Section < 0 || ip.Section >= len(vm.sections) {
		return Section{}, fmt.Errorf("%w: section %d", ErrInvalidIndexPath, ip.Section)
	}
	s := vm.sections[ip.Section]
	if ip.Row < 0 || ip.Row >= len(s.Rows) {
		return Section{}, fmt.Errorf("%w: row %d in section %s", ErrInvalidIndexPath, ip.Row, s.Type)
	}
	return s, nil
}

// SectionType classifies the row at ip.
func (vm *BrewDetailsViewModel) SectionType(ip IndexPath) (SectionType, error) {
	s, err := vm.section(ip)
	if err != nil {
		return 0, err
	}
	return s.Type, nil
}

// CoffeeAttribute returns the catalog edited by a coffee info row.
func (vm *BrewDetailsViewModel) CoffeeAttribute(ip IndexPath) (modelcontroller.SelectableSearchIdentifier, error) {
	s, err := vm.section(ip)
	if err != nil {
		return 0, err
	}
	if s.Type != SectionCoffeeInfo {
		return 0, fmt.Errorf("%w: %s row is not coffee info", ErrInvalidIndexPath, s.Type)
	}
	return coffeeInfoRows[ip.Row], nil
}

// BrewAttributeType returns the attribute shown by an attributes row.
func (vm *BrewDetailsViewModel) BrewAttributeType(ip IndexPath) (model.AttributeType, error) {
	s, err := vm.section(ip)
	if err != nil {
		return 0, err
	}
	if s.Type != SectionAttributes {
		return 0, fmt.Errorf("%w: %s row is not an attribute", ErrInvalidIndexPath, s.Type)
	}
	return model.Attributes[ip.Row], nil
}

// SaveBrewIfNeeded writes pending edits, if any.
func (vm *BrewDetailsViewModel) SaveBrewIfNeeded(ctx context.Context) error {
	if !vm.brewModelController.HasChanges() {
		return nil
	}
	return vm.brewModelController.SaveBrew(ctx)
}

// RemoveCurrentBrew deletes the brew and reports the outcome to completion.
func (vm *BrewDetailsViewModel) RemoveCurrentBrew(ctx context.Context, completion func(didRemove bool)) {
	brew := vm.CurrentBrew()
	if err := vm.brewModelController.RemoveBrew(ctx); err != nil {
		vm.log.Error("failed to remove brew", zap.Error(err))
		completion(false)
		return
	}
	if brew != nil {
		vm.log.Info("brew removed", zap.String("brew_id", brew.ID))
	}
	completion(true)
}
