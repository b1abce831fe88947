package screen

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/di"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/theme"
	"brewer-backend/internal/viewmodel"
)

// NewBrewScreen pages through the attribute screens of a new brew. The
// current page is embedded rather than pushed, and is active while the flow
// is on top of the stack.
type NewBrewScreen struct {
	navigation.BaseScreen
	viewModel *viewmodel.NewBrewViewModel
	resolver  di.Resolver
	stack     *navigation.Stack
	tracker   analytics.Tracker
	finished  BrewFinishedHandler
	log       *zap.Logger

	page Pushable
}

func NewNewBrewScreen(
	vm *viewmodel.NewBrewViewModel,
	th *theme.Configuration,
	resolver di.Resolver,
	stack *navigation.Stack,
	tracker analytics.Tracker,
	finished BrewFinishedHandler,
	log *zap.Logger,
) *NewBrewScreen {
	s := &NewBrewScreen{
		BaseScreen: navigation.NewBaseScreen("New brew"),
		viewModel:  vm,
		resolver:   resolver,
		stack:      stack,
		tracker:    tracker,
		finished:   finished,
		log:        log,
	}
	s.ConfigureWithTheme(th)
	return s
}

func (s *NewBrewScreen) ViewModel() *viewmodel.NewBrewViewModel { return s.viewModel }

// Page returns the embedded attribute screen.
func (s *NewBrewScreen) Page() navigation.Screen { return s.page }

func (s *NewBrewScreen) WillAppear(ctx context.Context) {
	if s.page == nil {
		s.showPage(ctx)
	} else {
		setActive(s.page, true)
	}
	s.tracker.TrackScreen(analytics.ScreenNewBrew)
}

func (s *NewBrewScreen) WillDisappear(context.Context) {
	setActive(s.page, false)
}

func (s *NewBrewScreen) showPage(ctx context.Context) {
	setActive(s.page, false)
	s.page = AttributeScreen(s.resolver, s.viewModel.CurrentPage(), s.viewModel.BrewModelController())
	if a, ok := s.page.(navigation.Appearer); ok {
		a.WillAppear(ctx)
	}
	setActive(s.page, true)
}

func setActive(screen navigation.Screen, active bool) {
	if a, ok := screen.(navigation.Activable); ok && a.Active() != active {
		a.SetActive(active)
	}
}

func (s *NewBrewScreen) HandleInput(ctx context.Context, in Input) error {
	switch in.Action {
	case "next":
		if s.viewModel.Next() {
			s.showPage(ctx)
		}
		return nil
	case "previous":
		if s.viewModel.Previous() {
			s.showPage(ctx)
		}
		return nil
	case "search":
		return s.search(ctx, in.Value)
	case "finish":
		setActive(s.page, false)
		brew, err := s.viewModel.Finish(ctx)
		if err != nil {
			return err
		}
		s.log.Info("brew logged", zap.String("brew_id", brew.ID))
		s.finished.BrewFinished(ctx, brew.ID)
		s.stack.Pop(ctx)
		return nil
	case "cancel":
		setActive(s.page, false)
		if err := s.viewModel.Cancel(ctx); err != nil {
			return err
		}
		s.stack.Pop(ctx)
		return nil
	}
	if h, ok := s.page.(InputHandler); ok {
		return h.HandleInput(ctx, in)
	}
	return unknownAction(in)
}

func (s *NewBrewScreen) search(ctx context.Context, catalog string) error {
	var id modelcontroller.SelectableSearchIdentifier
	switch catalog {
	case modelcontroller.SearchCoffee.String():
		id = modelcontroller.SearchCoffee
	case modelcontroller.SearchCoffeeMachine.String():
		id = modelcontroller.SearchCoffeeMachine
	default:
		return fmt.Errorf("%w: unknown catalog %q", ErrMissingValue, catalog)
	}
	search := di.ResolveAs[*SelectableSearchScreen](s.resolver, di.ServiceSelectableSearchScreen,
		di.SearchIdentifier(id), di.BrewModelController(s.viewModel.BrewModelController()))
	search.SetTitle(id.Description())
	prepareChild(search)
	s.stack.Push(ctx, search)
	return nil
}

func (s *NewBrewScreen) View() any {
	metrics := s.viewModel.Metrics()
	view := struct {
		Page     string                `json:"page"`
		Metrics  viewmodel.PageMetrics `json:"metrics"`
		Progress float64               `json:"progress"`
		Label    string                `json:"label"`
		Content  any                   `json:"content,omitempty"`
	}{
		Page:     s.viewModel.CurrentPage().String(),
		Metrics:  metrics,
		Progress: metrics.Progress(),
		Label:    metrics.String(),
	}
	if s.page != nil {
		view.Content = s.page.View()
	}
	return view
}
