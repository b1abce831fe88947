package screen

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/di"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/theme"
	"brewer-backend/internal/viewmodel"
)

// BrewDetailsScreen shows one brew and routes row taps to editor screens.
// It is the stack delegate while it is shown and activates pushed editors.
type BrewDetailsScreen struct {
	navigation.BaseScreen
	viewModel *viewmodel.BrewDetailsViewModel
	resolver  di.Resolver
	stack     *navigation.Stack
	presenter navigation.Presenter
	tracker   analytics.Tracker
	log       *zap.Logger

	pushedScreenID string
	removeFailed   bool
}

func NewBrewDetailsScreen(
	vm *viewmodel.BrewDetailsViewModel,
	th *theme.Configuration,
	resolver di.Resolver,
	stack *navigation.Stack,
	presenter navigation.Presenter,
	tracker analytics.Tracker,
	log *zap.Logger,
) *BrewDetailsScreen {
	s := &BrewDetailsScreen{
		BaseScreen: navigation.NewBaseScreen("Brew details"),
		viewModel:  vm,
		resolver:   resolver,
		stack:      stack,
		presenter:  presenter,
		tracker:    tracker,
		log:        log,
	}
	s.ConfigureWithTheme(th)
	return s
}

func (s *BrewDetailsScreen) ViewModel() *viewmodel.BrewDetailsViewModel { return s.viewModel }

// PushedScreenID is the id of the editor pushed from this screen, if any.
func (s *BrewDetailsScreen) PushedScreenID() string { return s.pushedScreenID }

func (s *BrewDetailsScreen) WillAppear(context.Context) {
	s.stack.SetDelegate(s)
	s.deactivatePushedScreen()
	s.viewModel.RefreshData()
	s.tracker.TrackScreen(analytics.ScreenBrewDetails)
}

func (s *BrewDetailsScreen) WillDisappear(ctx context.Context) {
	if err := s.viewModel.SaveBrewIfNeeded(ctx); err != nil {
		s.log.Error("failed to save brew", zap.Error(err))
	}
}

// DidShow activates the screen the stack just showed.
func (s *BrewDetailsScreen) DidShow(_ context.Context, shown navigation.Screen) {
	if a, ok := shown.(navigation.Activable); ok {
		a.SetActive(true)
	}
}

func (s *BrewDetailsScreen) deactivatePushedScreen() {
	if s.pushedScreenID == "" {
		return
	}
	if pushed, ok := s.stack.Find(s.pushedScreenID); ok {
		if a, ok := pushed.(navigation.Activable); ok {
			a.SetActive(false)
		}
	}
	s.pushedScreenID = ""
}

// Select handles a tap on the row at ip.
func (s *BrewDetailsScreen) Select(ctx context.Context, ip viewmodel.IndexPath) error {
	section, err := s.viewModel.SectionType(ip)
	if err != nil {
		return err
	}
	bmc := di.BrewModelController(s.viewModel.BrewModelController())

	switch section {
	case viewmodel.SectionScore:
		s.PerformSegue(ctx, navigation.SegueBrewScoreDetails)
	case viewmodel.SectionCoffeeInfo:
		if !s.viewModel.Editable() {
			return nil
		}
		id, err := s.viewModel.CoffeeAttribute(ip)
		if err != nil {
			return err
		}
		search := di.ResolveAs[*SelectableSearchScreen](s.resolver, di.ServiceSelectableSearchScreen, di.SearchIdentifier(id), bmc)
		search.SetTitle(id.Description())
		s.push(ctx, search)
	case viewmodel.SectionAttributes:
		if !s.viewModel.Editable() {
			return nil
		}
		a, err := s.viewModel.BrewAttributeType(ip)
		if err != nil {
			return err
		}
		s.push(ctx, AttributeScreen(s.resolver, a, s.viewModel.BrewModelController()))
	case viewmodel.SectionNotes:
		s.push(ctx, di.ResolveAs[*NotesScreen](s.resolver, di.ServiceNotesScreen, bmc))
	case viewmodel.SectionRemove:
		s.confirmRemove()
	}
	return nil
}

// PerformSegue runs a fixed transition. Unknown identifiers panic.
func (s *BrewDetailsScreen) PerformSegue(ctx context.Context, id navigation.SegueIdentifier) {
	var destination Pushable
	switch id {
	case navigation.SegueBrewScoreDetails:
		score := di.ResolveAs[*BrewScoreDetailsScreen](s.resolver, di.ServiceBrewScoreDetailsScreen)
		score.SetViewModel(di.ResolveAs[*viewmodel.BrewScoreDetailsViewModel](
			s.resolver, di.ServiceBrewScoreDetailsViewModel, di.Brew(s.viewModel.CurrentBrew())))
		destination = score
	default:
		panic(fmt.Sprintf("unknown segue %q performed", id))
	}
	s.push(ctx, destination)
}

func (s *BrewDetailsScreen) push(ctx context.Context, c Pushable) {
	prepareChild(c)
	s.pushedScreenID = c.ID()
	s.stack.Push(ctx, c)
}

func (s *BrewDetailsScreen) confirmRemove() {
	s.presenter.Present(&navigation.Alert{
		Title: "Remove this brew?",
		Actions: []navigation.AlertAction{
			{Title: "Yes", Style: navigation.AlertActionDestructive, Handler: func(ctx context.Context) {
				s.viewModel.RemoveCurrentBrew(ctx, func(didRemove bool) {
					s.removeFailed = !didRemove
					if didRemove {
						s.stack.Pop(ctx)
					}
				})
			}},
			{Title: "No", Style: navigation.AlertActionCancel},
		},
	})
}

func (s *BrewDetailsScreen) View() any {
	view := struct {
		Editable bool                `json:"editable"`
		BrewID   string              `json:"brewId,omitempty"`
		Sections []viewmodel.Section `json:"sections"`
		Error    string              `json:"error,omitempty"`
	}{Editable: s.viewModel.Editable(), Sections: s.viewModel.Sections()}
	if brew := s.viewModel.CurrentBrew(); brew != nil {
		view.BrewID = brew.ID
	}
	if s.removeFailed {
		view.Error = "brew could not be removed"
	}
	return view
}
