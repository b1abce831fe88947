package viewmodel

import (
	"fmt"
	"math"

	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
)

// ScoreRow is one score category of a brew.
type ScoreRow struct {
	Category model.ScoreCategory `json:"category"`
	Value    *float64            `json:"value,omitempty"`
}

// BrewScoreDetailsViewModel edits the per-category scores of a brew.
type BrewScoreDetailsViewModel struct {
	brewModelController *modelcontroller.BrewModelController
}

func NewBrewScoreDetailsViewModel(brewModelController *modelcontroller.BrewModelController) *BrewScoreDetailsViewModel {
	return &BrewScoreDetailsViewModel{brewModelController: brewModelController}
}

func (vm *BrewScoreDetailsViewModel) Brew() *model.Brew {
	return vm.brewModelController.CurrentBrew()
}

func (vm *BrewScoreDetailsViewModel) Categories() []ScoreRow {
	brew := vm.Brew()
	rows := make([]ScoreRow, 0, len(model.ScoreCategories))
	for _, c := range model.ScoreCategories {
		row := ScoreRow{Category: c}
		if brew != nil {
			if v, ok := brew.Scores[c]; ok {
				row.Value = &v
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (vm *BrewScoreDetailsViewModel) SetScore(category model.ScoreCategory, value float64) error {
	known := false
	for _, c := range model.ScoreCategories {
		known = known || c == category
	}
	if !known {
		return fmt.Errorf("%w: unknown score category %q", ErrInvalidInput, category)
	}
	if value < 0 || value > model.MaxScore || math.IsNaN(value) {
		return fmt.Errorf("%w: score %.1f outside 0-%.0f", ErrInvalidInput, value, model.MaxScore)
	}
	return vm.brewModelController.SetScore(category, value)
}

// FinalScore is the mean over the filled categories.
func (vm *BrewScoreDetailsViewModel) FinalScore() (float64, bool) {
	if brew := vm.Brew(); brew != nil {
		return brew.Score()
	}
	return 0, false
}
