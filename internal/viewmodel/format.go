// Package viewmodel holds per-screen state between screens and model controllers.
package viewmodel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/parse"
)

// ErrInvalidInput is returned for values a user typed that cannot be stored.
var ErrInvalidInput = errors.New("invalid input")

func parseNumber(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidInput, raw)
	}
	return v, nil
}

func trimFloat(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// FormatAttribute renders a canonical attribute value in display units.
func FormatAttribute(a model.AttributeType, v float64, units *modelcontroller.UnitsModelController) string {
	switch a {
	case model.AttributeCoffeeWeight, model.AttributeWaterWeight:
		return trimFloat(units.WeightToDisplay(v), 1) + " " + string(units.WeightUnit())
	case model.AttributeWaterTemperature:
		return trimFloat(units.TemperatureToDisplay(v), 1) + " °" + string(units.TemperatureUnit())
	case model.AttributeTime:
		return parse.Clock(v)
	case model.AttributePreInfusionTime:
		return trimFloat(v, 1) + " s"
	case model.AttributeGrindSize:
		return trimFloat(v, 0) + " (" + GrindSizeDescription(v) + ")"
	case model.AttributeTamping:
		return TampingDescription(v)
	default:
		return trimFloat(v, 2)
	}
}

func formatScore(score float64) string {
	return trimFloat(score, 1)
}
