package screen

import (
	"context"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/model"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/theme"
	"brewer-backend/internal/viewmodel"
)

// BrewScoreDetailsScreen edits the score sheet. Its view model is attached
// by the segue that shows it.
type BrewScoreDetailsScreen struct {
	navigation.BaseScreen
	viewModel *viewmodel.BrewScoreDetailsViewModel
	tracker   analytics.Tracker
}

func NewBrewScoreDetailsScreen(th *theme.Configuration, tracker analytics.Tracker) *BrewScoreDetailsScreen {
	s := &BrewScoreDetailsScreen{BaseScreen: navigation.NewBaseScreen("Score"), tracker: tracker}
	s.ConfigureWithTheme(th)
	return s
}

func (s *BrewScoreDetailsScreen) ViewModel() *viewmodel.BrewScoreDetailsViewModel { return s.viewModel }

func (s *BrewScoreDetailsScreen) SetViewModel(vm *viewmodel.BrewScoreDetailsViewModel) {
	s.viewModel = vm
}

func (s *BrewScoreDetailsScreen) WillAppear(context.Context) {
	s.tracker.TrackScreen(analytics.ScreenBrewScoreDetails)
}

func (s *BrewScoreDetailsScreen) HandleInput(_ context.Context, in Input) error {
	if in.Action != "score" {
		return unknownAction(in)
	}
	v, err := in.number()
	if err != nil {
		return err
	}
	return s.viewModel.SetScore(model.ScoreCategory(in.Category), v)
}

func (s *BrewScoreDetailsScreen) View() any {
	view := struct {
		Categories []viewmodel.ScoreRow `json:"categories"`
		FinalScore *float64             `json:"finalScore,omitempty"`
	}{Categories: s.viewModel.Categories()}
	if score, ok := s.viewModel.FinalScore(); ok {
		view.FinalScore = &score
	}
	return view
}
