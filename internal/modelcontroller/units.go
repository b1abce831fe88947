package modelcontroller

import (
	"fmt"
	"strings"
)

// WeightUnit is the display unit for coffee and water weights.
type WeightUnit string

// TemperatureUnit is the display unit for water temperature.
type TemperatureUnit string

const (
	Grams  WeightUnit = "g"
	Ounces WeightUnit = "oz"

	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"

	gramsPerOunce = 28.349523125
)

// UnitsModelController converts between display units and the canonical
// units brews are stored in (grams, degrees Celsius).
type UnitsModelController struct {
	weight      WeightUnit
	temperature TemperatureUnit
}

// NewUnitsModelController validates the configured unit names.
func NewUnitsModelController(weight, temperature string) (*UnitsModelController, error) {
	u := &UnitsModelController{}
	switch w := WeightUnit(strings.ToLower(weight)); w {
	case Grams, Ounces:
		u.weight = w
	default:
		return nil, fmt.Errorf("unsupported weight unit %q", weight)
	}
	switch t := TemperatureUnit(strings.ToUpper(temperature)); t {
	case Celsius, Fahrenheit:
		u.temperature = t
	default:
		return nil, fmt.Errorf("unsupported temperature unit %q", temperature)
	}
	return u, nil
}

func (u *UnitsModelController) WeightUnit() WeightUnit           { return u.weight }
func (u *UnitsModelController) TemperatureUnit() TemperatureUnit { return u.temperature }

// WeightToDisplay converts grams to the display unit.
func (u *UnitsModelController) WeightToDisplay(grams float64) float64 {
	if u.weight == Ounces {
		return grams / gramsPerOunce
	}
	return grams
}

// WeightFromDisplay converts a display value to grams.
func (u *UnitsModelController) WeightFromDisplay(v float64) float64 {
	if u.weight == Ounces {
		return v * gramsPerOunce
	}
	return v
}

// TemperatureToDisplay converts Celsius to the display unit.
func (u *UnitsModelController) TemperatureToDisplay(celsius float64) float64 {
	if u.temperature == Fahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

// TemperatureFromDisplay converts a display value to Celsius.
func (u *UnitsModelController) TemperatureFromDisplay(v float64) float64 {
	if u.temperature == Fahrenheit {
		return (v - 32) * 5 / 9
	}
	return v
}
