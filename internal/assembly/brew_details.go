package assembly

import (
	"brewer-backend/internal/di"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/viewmodel"
)

// BrewDetails registers the brew list and the brew details screen.
type BrewDetails struct{}

func (BrewDetails) Assemble(c *di.Container) {
	c.Register(di.ServiceBrewListScreen, noArgs, func(r di.Resolver, _ di.Args) any {
		return screen.NewBrewListScreen(
			di.ResolveAs[*modelcontroller.BrewModelController](r, di.ServiceBrewModelController),
			themeConfiguration(r), r, stack(r), logger(r),
		)
	})

	c.Register(di.ServiceBrewDetailsScreen, brewEditableShape, func(r di.Resolver, a di.Args) any {
		return screen.NewBrewDetailsScreen(
			di.ResolveAs[*viewmodel.BrewDetailsViewModel](r, di.ServiceBrewDetailsViewModel, a...),
			themeConfiguration(r), r, stack(r),
			di.ResolveAs[navigation.Presenter](r, di.ServicePresenter),
			tracker(r), logger(r),
		)
	})

	c.Register(di.ServiceBrewDetailsViewModel, brewEditableShape, func(r di.Resolver, a di.Args) any {
		return viewmodel.NewBrewDetailsViewModel(
			di.ResolveAs[*modelcontroller.BrewModelController](r, di.ServiceBrewModelController, di.Brew(a.Brew(0))),
			units(r), a.Editable(1), logger(r),
		)
	})
}

// BrewScoreDetails registers the score sheet.
type BrewScoreDetails struct{}

func (BrewScoreDetails) Assemble(c *di.Container) {
	c.Register(di.ServiceBrewScoreDetailsScreen, noArgs, func(r di.Resolver, _ di.Args) any {
		return screen.NewBrewScoreDetailsScreen(themeConfiguration(r), tracker(r))
	})

	c.Register(di.ServiceBrewScoreDetailsViewModel, brewShape, func(r di.Resolver, a di.Args) any {
		return viewmodel.NewBrewScoreDetailsViewModel(
			di.ResolveAs[*modelcontroller.BrewModelController](r, di.ServiceBrewModelController, a...),
		)
	})
}
