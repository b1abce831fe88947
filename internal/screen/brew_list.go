package screen

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"brewer-backend/internal/di"
	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/theme"
	"brewer-backend/internal/viewmodel"
)

// BrewSummary is one row of the brew list.
type BrewSummary struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Coffee        string    `json:"coffee,omitempty"`
	CoffeeMachine string    `json:"coffeeMachine,omitempty"`
	Score         *float64  `json:"score,omitempty"`
	Ratio         *float64  `json:"ratio,omitempty"`
}

// Summarize flattens a brew for list views.
func Summarize(b *model.Brew) BrewSummary {
	s := BrewSummary{ID: b.ID, CreatedAt: b.CreatedAt}
	if b.Coffee != nil {
		s.Coffee = b.Coffee.Name
	}
	if b.CoffeeMachine != nil {
		s.CoffeeMachine = b.CoffeeMachine.Name
	}
	if score, ok := b.Score(); ok {
		s.Score = &score
	}
	if ratio, ok := b.Ratio(); ok {
		s.Ratio = &ratio
	}
	return s
}

// BrewListScreen is the root of every session: the logged brews, newest first.
type BrewListScreen struct {
	navigation.BaseScreen
	brews    *modelcontroller.BrewModelController
	resolver di.Resolver
	stack    *navigation.Stack
	log      *zap.Logger

	items []*model.Brew
}

func NewBrewListScreen(
	brews *modelcontroller.BrewModelController,
	th *theme.Configuration,
	resolver di.Resolver,
	stack *navigation.Stack,
	log *zap.Logger,
) *BrewListScreen {
	s := &BrewListScreen{
		BaseScreen: navigation.NewBaseScreen("Brews"),
		brews:      brews,
		resolver:   resolver,
		stack:      stack,
		log:        log,
	}
	s.ConfigureWithTheme(th)
	return s
}

func (s *BrewListScreen) WillAppear(ctx context.Context) {
	s.stack.SetDelegate(nil)
	if err := s.Reload(ctx); err != nil {
		s.log.Error("failed to load brews", zap.Error(err))
	}
}

func (s *BrewListScreen) Reload(ctx context.Context) error {
	items, err := s.brews.Brews(ctx)
	if err != nil {
		return err
	}
	s.items = items
	return nil
}

// Select opens the tapped brew read-only.
func (s *BrewListScreen) Select(ctx context.Context, ip viewmodel.IndexPath) error {
	if ip.Section != 0 || ip.Row < 0 || ip.Row >= len(s.items) {
		return fmt.Errorf("%w: section %d row %d", viewmodel.ErrInvalidIndexPath, ip.Section, ip.Row)
	}
	s.showDetails(ctx, s.items[ip.Row], false)
	return nil
}

// OpenBrew pushes the details of the brew with id.
func (s *BrewListScreen) OpenBrew(ctx context.Context, id string, editable bool) (*BrewDetailsScreen, error) {
	brew, err := s.brews.LoadBrew(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.showDetails(ctx, brew, editable), nil
}

// StartBrew pushes the new brew flow.
func (s *BrewListScreen) StartBrew(ctx context.Context, start viewmodel.StartBrewContext) *NewBrewScreen {
	flow := di.ResolveAs[*NewBrewScreen](s.resolver, di.ServiceNewBrewScreen, di.StartBrewContext(start))
	prepareChild(flow)
	s.stack.Push(ctx, flow)
	return flow
}

func (s *BrewListScreen) showDetails(ctx context.Context, brew *model.Brew, editable bool) *BrewDetailsScreen {
	details := di.ResolveAs[*BrewDetailsScreen](s.resolver, di.ServiceBrewDetailsScreen, di.Brew(brew), di.Editable(editable))
	prepareChild(details)
	s.stack.Push(ctx, details)
	return details
}

func (s *BrewListScreen) View() any {
	rows := make([]BrewSummary, 0, len(s.items))
	for _, b := range s.items {
		rows = append(rows, Summarize(b))
	}
	return struct {
		Brews []BrewSummary `json:"brews"`
	}{rows}
}
