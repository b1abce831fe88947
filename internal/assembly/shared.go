// Package assembly registers the services of a navigation session.
package assembly

import (
	"go.uber.org/zap"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/di"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/store"
	"brewer-backend/internal/theme"
)

var (
	noArgs            di.Shape
	controllerShape   = di.Shape{di.KindBrewModelController}
	brewShape         = di.Shape{di.KindBrew}
	brewEditableShape = di.Shape{di.KindBrew, di.KindEditable}
	startBrewShape    = di.Shape{di.KindStartBrewContext}
	searchShape       = di.Shape{di.KindSearchIdentifier, di.KindBrewModelController}
	attributeShape    = di.Shape{di.KindAttribute, di.KindBrewModelController}
)

// Shared registers the session-wide infrastructure every other assembly builds on.
type Shared struct {
	Log       *zap.Logger
	Context   *store.Context
	Stack     *navigation.Stack
	Presenter navigation.Presenter
	Theme     *theme.Configuration
	Tracker   analytics.Tracker
	Units     *modelcontroller.UnitsModelController
	Settings  *modelcontroller.SequenceSettingsModelController
	KeyValue  modelcontroller.KeyValueStore
	Finished  screen.BrewFinishedHandler
}

func (s Shared) Assemble(c *di.Container) {
	register := func(service di.Service, v any) {
		c.Register(service, noArgs, func(di.Resolver, di.Args) any { return v })
	}
	register(di.ServiceLogger, s.Log)
	register(di.ServiceStoreContext, s.Context)
	register(di.ServiceNavigationStack, s.Stack)
	register(di.ServicePresenter, s.Presenter)
	register(di.ServiceTheme, s.Theme)
	register(di.ServiceTracker, s.Tracker)
	register(di.ServiceUnits, s.Units)
	register(di.ServiceSequenceSettings, s.Settings)
	register(di.ServiceKeyValueStore, s.KeyValue)
	register(di.ServiceBrewFinishedHandler, s.Finished)
}

func logger(r di.Resolver) *zap.Logger { return di.ResolveAs[*zap.Logger](r, di.ServiceLogger) }

func storeContext(r di.Resolver) *store.Context {
	return di.ResolveAs[*store.Context](r, di.ServiceStoreContext)
}

func stack(r di.Resolver) *navigation.Stack {
	return di.ResolveAs[*navigation.Stack](r, di.ServiceNavigationStack)
}

func themeConfiguration(r di.Resolver) *theme.Configuration {
	return di.ResolveAs[*theme.Configuration](r, di.ServiceTheme)
}

func tracker(r di.Resolver) analytics.Tracker {
	return di.ResolveAs[analytics.Tracker](r, di.ServiceTracker)
}

func units(r di.Resolver) *modelcontroller.UnitsModelController {
	return di.ResolveAs[*modelcontroller.UnitsModelController](r, di.ServiceUnits)
}

// NewSession returns the container for one navigation session.
func NewSession(shared Shared) *di.Container {
	return di.NewAssembler(shared, NewBrew{}, BrewDetails{}, BrewScoreDetails{})
}
