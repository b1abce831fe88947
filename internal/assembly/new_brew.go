package assembly

import (
	"brewer-backend/internal/di"
	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/viewmodel"
)

// NewBrew registers the new brew flow and the editors it shares with brew details.
type NewBrew struct{}

func (NewBrew) Assemble(c *di.Container) {
	c.Register(di.ServiceNewBrewScreen, startBrewShape, func(r di.Resolver, a di.Args) any {
		return screen.NewNewBrewScreen(
			di.ResolveAs[*viewmodel.NewBrewViewModel](r, di.ServiceNewBrewViewModel, a...),
			themeConfiguration(r), r, stack(r), tracker(r),
			di.ResolveAs[screen.BrewFinishedHandler](r, di.ServiceBrewFinishedHandler),
			logger(r),
		)
	})

	c.Register(di.ServiceNewBrewViewModel, startBrewShape, func(r di.Resolver, a di.Args) any {
		return viewmodel.NewNewBrewViewModel(a.StartBrewContext(0),
			di.ResolveAs[*modelcontroller.SequenceSettingsModelController](r, di.ServiceSequenceSettings),
			di.ResolveAs[*modelcontroller.BrewModelController](r, di.ServiceBrewModelController),
		)
	})

	c.Register(di.ServiceBrewModelController, noArgs, func(r di.Resolver, _ di.Args) any {
		return modelcontroller.NewBrewModelController(storeContext(r))
	})

	c.Register(di.ServiceBrewModelController, brewShape, func(r di.Resolver, a di.Args) any {
		return modelcontroller.NewBrewModelControllerForBrew(storeContext(r), a.Brew(0))
	})

	// Selectable search

	c.Register(di.ServiceSelectableSearchScreen, searchShape, func(r di.Resolver, a di.Args) any {
		return screen.NewSelectableSearchScreen(
			di.ResolveAs[*viewmodel.SelectableSearchViewModel](r, di.ServiceSelectableSearchViewModel, a...),
			themeConfiguration(r), tracker(r), logger(r),
		)
	})

	c.Register(di.ServiceSelectableSearchViewModel, searchShape, func(r di.Resolver, a di.Args) any {
		return viewmodel.NewSelectableSearchViewModel(
			di.ResolveAs[modelcontroller.SelectableSearchModelController](r, di.ServiceSelectableSearchModelController, a...),
		)
	})

	c.Register(di.ServiceSelectableSearchModelController, searchShape, func(r di.Resolver, a di.Args) any {
		controller := di.BrewModelController(a.BrewModelController(1))
		switch id := a.SearchIdentifier(0); id {
		case modelcontroller.SearchCoffee:
			return r.Resolve(di.ServiceCoffeeSelectableSearchModelController, controller)
		case modelcontroller.SearchCoffeeMachine:
			return r.Resolve(di.ServiceCoffeeMachineSelectableSearchModelController, controller)
		default:
			di.Fail(di.ServiceSelectableSearchModelController, a, "unknown search identifier %s", id)
			return nil
		}
	})

	// Coffee and coffee machine

	c.Register(di.ServiceCoffeeSelectableSearchModelController, controllerShape, func(r di.Resolver, a di.Args) any {
		return modelcontroller.NewCoffeeSelectableSearchModelController(storeContext(r), a.BrewModelController(0))
	})

	c.Register(di.ServiceCoffeeMachineSelectableSearchModelController, controllerShape, func(r di.Resolver, a di.Args) any {
		return modelcontroller.NewCoffeeMachineSelectableSearchModelController(storeContext(r), a.BrewModelController(0))
	})

	// Numerical input

	c.Register(di.ServiceNumericalInputScreen, attributeShape, func(r di.Resolver, a di.Args) any {
		return screen.NewNumericalInputScreen(
			di.ResolveAs[viewmodel.NumericalInputViewModel](r, di.ServiceNumericalInputViewModel, a...),
			themeConfiguration(r), tracker(r),
		)
	})

	c.Register(di.ServiceNumericalInputViewModel, attributeShape, func(r di.Resolver, a di.Args) any {
		controller := di.BrewModelController(a.BrewModelController(1))
		switch attribute := a.Attribute(0); attribute {
		case model.AttributePreInfusionTime:
			return r.Resolve(di.ServicePreInfusionTimeInputViewModel, controller)
		case model.AttributeTime:
			return r.Resolve(di.ServiceTimeInputViewModel, controller)
		case model.AttributeCoffeeWeight:
			return r.Resolve(di.ServiceWeightInputViewModel, controller)
		case model.AttributeWaterWeight:
			return r.Resolve(di.ServiceWaterInputViewModel, controller)
		case model.AttributeWaterTemperature:
			return r.Resolve(di.ServiceTemperatureInputViewModel, controller)
		default:
			di.Fail(di.ServiceNumericalInputViewModel, a, "wrong attribute %s selected for numeric input", attribute)
			return nil
		}
	})

	// Weight, water, temperature, time

	c.Register(di.ServiceWeightInputViewModel, controllerShape, func(r di.Resolver, a di.Args) any {
		return viewmodel.NewWeightInputViewModel(units(r), a.BrewModelController(0))
	})

	c.Register(di.ServiceWaterInputViewModel, controllerShape, func(r di.Resolver, a di.Args) any {
		return viewmodel.NewWaterInputViewModel(units(r), a.BrewModelController(0))
	})

	c.Register(di.ServiceTemperatureInputViewModel, controllerShape, func(r di.Resolver, a di.Args) any {
		return viewmodel.NewTemperatureInputViewModel(units(r), a.BrewModelController(0))
	})

	c.Register(di.ServiceTimeInputViewModel, controllerShape, func(r di.Resolver, a di.Args) any {
		return viewmodel.NewTimeInputViewModel(units(r), a.BrewModelController(0))
	})

	c.Register(di.ServicePreInfusionTimeInputViewModel, controllerShape, func(r di.Resolver, a di.Args) any {
		return viewmodel.NewPreInfusionTimeInputViewModel(units(r), a.BrewModelController(0))
	})

	// Notes

	c.Register(di.ServiceNotesScreen, controllerShape, func(r di.Resolver, a di.Args) any {
		return screen.NewNotesScreen(
			di.ResolveAs[*viewmodel.NotesViewModel](r, di.ServiceNotesViewModel, a...),
			themeConfiguration(r), tracker(r),
		)
	})

	c.Register(di.ServiceNotesViewModel, controllerShape, func(_ di.Resolver, a di.Args) any {
		return viewmodel.NewNotesViewModel(a.BrewModelController(0))
	})

	// Grind size

	c.Register(di.ServiceGrindSizeScreen, controllerShape, func(r di.Resolver, a di.Args) any {
		return screen.NewGrindSizeScreen(
			di.ResolveAs[*viewmodel.GrindSizeViewModel](r, di.ServiceGrindSizeViewModel, a...),
			themeConfiguration(r), tracker(r),
		)
	})

	c.Register(di.ServiceGrindSizeViewModel, controllerShape, func(r di.Resolver, a di.Args) any {
		return viewmodel.NewGrindSizeViewModel(a.BrewModelController(0),
			di.ResolveAs[modelcontroller.KeyValueStore](r, di.ServiceKeyValueStore))
	})

	// Tamping

	c.Register(di.ServiceTampingScreen, controllerShape, func(r di.Resolver, a di.Args) any {
		return screen.NewTampingScreen(
			di.ResolveAs[*viewmodel.TampingViewModel](r, di.ServiceTampingViewModel, a...),
			themeConfiguration(r), tracker(r),
		)
	})

	c.Register(di.ServiceTampingViewModel, controllerShape, func(_ di.Resolver, a di.Args) any {
		return viewmodel.NewTampingViewModel(a.BrewModelController(0))
	})
}
