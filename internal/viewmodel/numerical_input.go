package viewmodel

import (
	"fmt"
	"strings"

	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/parse"
)

// NumericalInputViewModel edits one numeric brew attribute in display units.
type NumericalInputViewModel interface {
	Attribute() model.AttributeType
	Title() string
	Unit() string
	// Value is the current display value, empty when unset.
	Value() string
	// SetValue parses a display value; an empty string clears the attribute.
	SetValue(input string) error
}

type numericalInput struct {
	attribute   model.AttributeType
	unit        func() string
	parse       func(string) (float64, error)
	format      func(float64) string
	fromDisplay func(float64) float64
	toDisplay   func(float64) float64
	brew        *modelcontroller.BrewModelController
}

func identity(v float64) float64 { return v }

func (n *numericalInput) Attribute() model.AttributeType { return n.attribute }
func (n *numericalInput) Title() string                  { return n.attribute.Title() }
func (n *numericalInput) Unit() string                   { return n.unit() }

func (n *numericalInput) Value() string {
	brew := n.brew.CurrentBrew()
	if brew == nil {
		return ""
	}
	v, ok := brew.Attribute(n.attribute)
	if !ok {
		return ""
	}
	return n.format(n.toDisplay(v))
}

func (n *numericalInput) SetValue(input string) error {
	if strings.TrimSpace(input) == "" {
		return n.brew.SetAttribute(n.attribute, nil)
	}
	v, err := n.parse(input)
	if err != nil {
		return err
	}
	canonical := n.fromDisplay(v)
	return n.brew.SetAttribute(n.attribute, &canonical)
}

func newWeightInput(a model.AttributeType, units *modelcontroller.UnitsModelController, brew *modelcontroller.BrewModelController) numericalInput {
	return numericalInput{
		attribute:   a,
		unit:        func() string { return string(units.WeightUnit()) },
		parse:       parseNumber,
		format:      func(v float64) string { return trimFloat(v, 1) },
		fromDisplay: units.WeightFromDisplay,
		toDisplay:   units.WeightToDisplay,
		brew:        brew,
	}
}

func parseSeconds(raw string) (float64, error) {
	v, err := parse.Seconds(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return v, nil
}

// WeightInputViewModel edits the coffee dose.
type WeightInputViewModel struct{ numericalInput }

func NewWeightInputViewModel(units *modelcontroller.UnitsModelController, brew *modelcontroller.BrewModelController) *WeightInputViewModel {
	return &WeightInputViewModel{newWeightInput(model.AttributeCoffeeWeight, units, brew)}
}

// WaterInputViewModel edits the beverage (water) weight.
type WaterInputViewModel struct{ numericalInput }

func NewWaterInputViewModel(units *modelcontroller.UnitsModelController, brew *modelcontroller.BrewModelController) *WaterInputViewModel {
	return &WaterInputViewModel{newWeightInput(model.AttributeWaterWeight, units, brew)}
}

// TemperatureInputViewModel edits the water temperature.
type TemperatureInputViewModel struct{ numericalInput }

func NewTemperatureInputViewModel(units *modelcontroller.UnitsModelController, brew *modelcontroller.BrewModelController) *TemperatureInputViewModel {
	return &TemperatureInputViewModel{numericalInput{
		attribute:   model.AttributeWaterTemperature,
		unit:        func() string { return "°" + string(units.TemperatureUnit()) },
		parse:       parseNumber,
		format:      func(v float64) string { return trimFloat(v, 1) },
		fromDisplay: units.TemperatureFromDisplay,
		toDisplay:   units.TemperatureToDisplay,
		brew:        brew,
	}}
}

// TimeInputViewModel edits the extraction time; accepts "m:ss" or seconds.
type TimeInputViewModel struct{ numericalInput }

func NewTimeInputViewModel(_ *modelcontroller.UnitsModelController, brew *modelcontroller.BrewModelController) *TimeInputViewModel {
	return &TimeInputViewModel{numericalInput{
		attribute:   model.AttributeTime,
		unit:        func() string { return "m:ss" },
		parse:       parseSeconds,
		format:      parse.Clock,
		fromDisplay: identity,
		toDisplay:   identity,
		brew:        brew,
	}}
}

// PreInfusionTimeInputViewModel edits the pre-infusion time in seconds.
type PreInfusionTimeInputViewModel struct{ numericalInput }

func NewPreInfusionTimeInputViewModel(_ *modelcontroller.UnitsModelController, brew *modelcontroller.BrewModelController) *PreInfusionTimeInputViewModel {
	return &PreInfusionTimeInputViewModel{numericalInput{
		attribute:   model.AttributePreInfusionTime,
		unit:        func() string { return "s" },
		parse:       parseSeconds,
		format:      func(v float64) string { return trimFloat(v, 1) },
		fromDisplay: identity,
		toDisplay:   identity,
		brew:        brew,
	}}
}
