package screen

import (
	"context"

	"go.uber.org/zap"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/theme"
	"brewer-backend/internal/viewmodel"
)

// SelectableSearchScreen picks or adds a catalog entry for the brew.
type SelectableSearchScreen struct {
	navigation.BaseScreen
	viewModel *viewmodel.SelectableSearchViewModel
	tracker   analytics.Tracker
	log       *zap.Logger
}

func NewSelectableSearchScreen(vm *viewmodel.SelectableSearchViewModel, th *theme.Configuration, tracker analytics.Tracker, log *zap.Logger) *SelectableSearchScreen {
	s := &SelectableSearchScreen{BaseScreen: navigation.NewBaseScreen(""), viewModel: vm, tracker: tracker, log: log}
	s.ConfigureWithTheme(th)
	return s
}

func (s *SelectableSearchScreen) ViewModel() *viewmodel.SelectableSearchViewModel { return s.viewModel }

func (s *SelectableSearchScreen) WillAppear(ctx context.Context) {
	if err := s.viewModel.Refresh(ctx); err != nil {
		s.log.Warn("failed to load search items", zap.Error(err))
	}
	s.tracker.TrackScreen(analytics.ScreenSelectableSearch)
}

func (s *SelectableSearchScreen) HandleInput(ctx context.Context, in Input) error {
	switch in.Action {
	case "query":
		return s.viewModel.SetQuery(ctx, in.Value)
	case "select":
		return s.viewModel.Select(ctx, in.ID)
	case "add":
		_, err := s.viewModel.Add(ctx, in.Value)
		return err
	}
	return unknownAction(in)
}

func (s *SelectableSearchScreen) View() any {
	items := s.viewModel.Items()
	if items == nil {
		items = []modelcontroller.SearchItem{}
	}
	return struct {
		Query string                       `json:"query"`
		Items []modelcontroller.SearchItem `json:"items"`
	}{s.viewModel.Query(), items}
}
