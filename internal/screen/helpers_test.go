package screen_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brewer-backend/config"
	"brewer-backend/internal/analytics"
	"brewer-backend/internal/assembly"
	"brewer-backend/internal/di"
	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/store"
	"brewer-backend/internal/theme"
)

type fixture struct {
	ctx       context.Context
	db        *gorm.DB
	store     *store.Context
	stack     *navigation.Stack
	alerts    *navigation.AlertSlot
	tracker   *analytics.Recorder
	container *di.Container
	list      *screen.BrewListScreen
	finished  []string
}

func newFixture(t *testing.T, sequence ...string) *fixture {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Coffee{}, &model.CoffeeMachine{}, &model.Brew{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	units, err := modelcontroller.NewUnitsModelController("g", "C")
	require.NoError(t, err)
	if len(sequence) == 0 {
		sequence = config.DefaultSequence
	}
	settings, err := modelcontroller.NewSequenceSettingsModelController(sequence)
	require.NoError(t, err)

	f := &fixture{
		ctx:     context.Background(),
		db:      db,
		store:   store.NewContext(db, model.InsertOrder...),
		stack:   navigation.NewStack(),
		alerts:  &navigation.AlertSlot{},
		tracker: analytics.NewRecorder(zap.NewNop()),
	}
	f.container = assembly.NewSession(assembly.Shared{
		Log:       zap.NewNop(),
		Context:   f.store,
		Stack:     f.stack,
		Presenter: f.alerts,
		Theme:     theme.FromConfig(config.ThemeConfig{Name: "test"}),
		Tracker:   f.tracker,
		Units:     units,
		Settings:  settings,
		KeyValue:  modelcontroller.NewCacheKeyValueStore(),
		Finished: screen.BrewFinishedFunc(func(_ context.Context, id string) {
			f.finished = append(f.finished, id)
		}),
	})
	f.list = di.ResolveAs[*screen.BrewListScreen](f.container, di.ServiceBrewListScreen)
	f.stack.SetRoot(f.ctx, f.list)
	return f
}

// seedBrew logs a finished brew through a separate store context.
func (f *fixture) seedBrew(t *testing.T) *model.Brew {
	t.Helper()
	m := modelcontroller.NewBrewModelController(store.NewContext(f.db, model.InsertOrder...))
	brew := m.CreateNewBrew()
	v := 18.0
	require.NoError(t, m.SetAttribute(model.AttributeCoffeeWeight, &v))
	require.NoError(t, m.FinishBrew(f.ctx))
	return brew
}

func (f *fixture) openDetails(t *testing.T, editable bool) *screen.BrewDetailsScreen {
	t.Helper()
	brew := f.seedBrew(t)
	details, err := f.list.OpenBrew(f.ctx, brew.ID, editable)
	require.NoError(t, err)
	require.Same(t, details, f.stack.Top())
	return details
}

func (f *fixture) loadBrew(t *testing.T, id string) (*model.Brew, error) {
	t.Helper()
	return modelcontroller.NewBrewModelController(store.NewContext(f.db)).LoadBrew(f.ctx, id)
}

func viewJSON(t *testing.T, s navigation.Screen) string {
	t.Helper()
	raw, err := json.Marshal(s.View())
	require.NoError(t, err)
	return string(raw)
}
