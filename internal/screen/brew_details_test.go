package screen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/viewmodel"
)

func TestBrewDetailsScreen_SelectPushesEditor(t *testing.T) {
	tests := []struct {
		name  string
		ip    viewmodel.IndexPath
		check func(t *testing.T, top navigation.Screen)
	}{
		{"score", viewmodel.IndexPath{Section: 0, Row: 0}, func(t *testing.T, top navigation.Screen) {
			score, ok := top.(*screen.BrewScoreDetailsScreen)
			require.True(t, ok, "%T", top)
			assert.NotNil(t, score.ViewModel())
		}},
		{"coffee", viewmodel.IndexPath{Section: 1, Row: 0}, func(t *testing.T, top navigation.Screen) {
			require.IsType(t, &screen.SelectableSearchScreen{}, top)
			assert.Equal(t, "Coffee", top.Title())
		}},
		{"coffee machine", viewmodel.IndexPath{Section: 1, Row: 1}, func(t *testing.T, top navigation.Screen) {
			require.IsType(t, &screen.SelectableSearchScreen{}, top)
			assert.Equal(t, "Coffee machine", top.Title())
		}},
		{"grind size", viewmodel.IndexPath{Section: 2, Row: 0}, func(t *testing.T, top navigation.Screen) {
			assert.IsType(t, &screen.GrindSizeScreen{}, top)
		}},
		{"tamping", viewmodel.IndexPath{Section: 2, Row: 1}, func(t *testing.T, top navigation.Screen) {
			assert.IsType(t, &screen.TampingScreen{}, top)
		}},
		{"time", viewmodel.IndexPath{Section: 2, Row: 6}, func(t *testing.T, top navigation.Screen) {
			input, ok := top.(*screen.NumericalInputScreen)
			require.True(t, ok, "%T", top)
			assert.Equal(t, model.AttributeTime, input.ViewModel().Attribute())
			assert.IsType(t, &viewmodel.TimeInputViewModel{}, input.ViewModel())
		}},
		{"notes", viewmodel.IndexPath{Section: 3, Row: 0}, func(t *testing.T, top navigation.Screen) {
			assert.IsType(t, &screen.NotesScreen{}, top)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			details := f.openDetails(t, true)

			require.NoError(t, details.Select(f.ctx, tt.ip))
			require.Equal(t, 3, f.stack.Len())
			top := f.stack.Top()
			tt.check(t, top)
			assert.Equal(t, navigation.NavigationItem{BackButton: true, SwipeToBack: true}, *top.NavigationItem())
			assert.Equal(t, top.ID(), details.PushedScreenID())

			_, ok := f.stack.Pop(f.ctx)
			require.True(t, ok)
			assert.Same(t, details, f.stack.Top())
			assert.Empty(t, details.PushedScreenID())
		})
	}
}

func TestBrewDetailsScreen_ReadOnlyIgnoresEditors(t *testing.T) {
	f := newFixture(t)
	details := f.openDetails(t, false)

	for _, ip := range []viewmodel.IndexPath{{Section: 1, Row: 0}, {Section: 1, Row: 1}, {Section: 2, Row: 0}, {Section: 2, Row: 4}} {
		require.NoError(t, details.Select(f.ctx, ip))
		assert.Same(t, details, f.stack.Top(), "%+v", ip)
	}

	require.NoError(t, details.Select(f.ctx, viewmodel.IndexPath{Section: 3, Row: 0}))
	assert.IsType(t, &screen.NotesScreen{}, f.stack.Top(), "notes stay reachable")
}

func TestBrewDetailsScreen_InvalidIndexPath(t *testing.T) {
	f := newFixture(t)
	details := f.openDetails(t, true)

	err := details.Select(f.ctx, viewmodel.IndexPath{Section: 9, Row: 0})
	assert.ErrorIs(t, err, viewmodel.ErrInvalidIndexPath)
	assert.Equal(t, 2, f.stack.Len())
}

func TestBrewDetailsScreen_UnknownSeguePanics(t *testing.T) {
	f := newFixture(t)
	details := f.openDetails(t, true)
	assert.Panics(t, func() { details.PerformSegue(f.ctx, navigation.SegueIdentifier("Settings")) })
}

func TestBrewDetailsScreen_RemoveConfirmed(t *testing.T) {
	f := newFixture(t)
	details := f.openDetails(t, true)
	id := details.ViewModel().CurrentBrew().ID

	require.NoError(t, details.Select(f.ctx, viewmodel.IndexPath{Section: 4, Row: 0}))
	alert := f.alerts.Pending()
	require.NotNil(t, alert)
	assert.Len(t, alert.Actions, 2)
	assert.Same(t, details, f.stack.Top(), "nothing happens before an answer")

	require.NoError(t, f.alerts.Answer(f.ctx, "Yes"))
	assert.Same(t, f.list, f.stack.Top())
	assert.Equal(t, 1, f.stack.Len())

	_, err := f.loadBrew(t, id)
	assert.ErrorIs(t, err, modelcontroller.ErrBrewNotFound)
}

func TestBrewDetailsScreen_RemoveDeclined(t *testing.T) {
	f := newFixture(t)
	details := f.openDetails(t, true)

	require.NoError(t, details.Select(f.ctx, viewmodel.IndexPath{Section: 4, Row: 0}))
	require.NoError(t, f.alerts.Answer(f.ctx, "No"))

	assert.Same(t, details, f.stack.Top())
	assert.NotNil(t, details.ViewModel().CurrentBrew())
}

func TestBrewDetailsScreen_RemoveFailureKeepsScreen(t *testing.T) {
	f := newFixture(t)
	details := f.openDetails(t, true)

	require.NoError(t, details.Select(f.ctx, viewmodel.IndexPath{Section: 4, Row: 0}))
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	require.NoError(t, f.alerts.Answer(f.ctx, "Yes"))
	assert.Same(t, details, f.stack.Top())
	assert.Equal(t, 2, f.stack.Len())
	assert.NotNil(t, details.ViewModel().CurrentBrew())
	assert.Contains(t, viewJSON(t, details), "brew could not be removed")
}

func TestBrewDetailsScreen_ActivatesOnlyPushedEditor(t *testing.T) {
	f := newFixture(t)
	details := f.openDetails(t, true)

	require.NoError(t, details.Select(f.ctx, viewmodel.IndexPath{Section: 2, Row: 1}))
	tamping, ok := f.stack.Top().(*screen.TampingScreen)
	require.True(t, ok)
	assert.True(t, tamping.Active())

	require.NoError(t, tamping.HandleInput(f.ctx, screen.Input{Action: "sample", Number: ptr(0.4)}))
	require.NoError(t, tamping.HandleInput(f.ctx, screen.Input{Action: "sample", Number: ptr(0.9)}))

	f.stack.Pop(f.ctx)
	assert.False(t, tamping.Active())
	v, ok := details.ViewModel().CurrentBrew().Attribute(model.AttributeTamping)
	require.True(t, ok)
	assert.Equal(t, 0.9, v)

	require.NoError(t, details.Select(f.ctx, viewmodel.IndexPath{Section: 2, Row: 1}))
	second := f.stack.Top().(*screen.TampingScreen)
	assert.True(t, second.Active())
	assert.False(t, tamping.Active())
}

func TestBrewDetailsScreen_SavesOnDisappear(t *testing.T) {
	f := newFixture(t)
	details := f.openDetails(t, true)
	id := details.ViewModel().CurrentBrew().ID

	require.NoError(t, details.Select(f.ctx, viewmodel.IndexPath{Section: 3, Row: 0}))
	notes := f.stack.Top().(*screen.NotesScreen)
	require.NoError(t, notes.HandleInput(f.ctx, screen.Input{Action: "set", Value: " bright "}))

	f.stack.Pop(f.ctx)
	assert.Contains(t, viewJSON(t, details), "bright")
	f.stack.Pop(f.ctx)
	assert.Same(t, f.list, f.stack.Top())

	stored, err := f.loadBrew(t, id)
	require.NoError(t, err)
	assert.Equal(t, "bright", stored.Notes)
}

func TestBrewDetailsScreen_TracksAppearance(t *testing.T) {
	f := newFixture(t)
	details := f.openDetails(t, true)
	require.NoError(t, details.Select(f.ctx, viewmodel.IndexPath{Section: 3, Row: 0}))
	f.stack.Pop(f.ctx)

	counts := map[string]int{}
	for _, c := range f.tracker.Counts() {
		counts[c.Screen] = c.Count
	}
	assert.Equal(t, 2, counts[analytics.ScreenBrewDetails])
	assert.Equal(t, 1, counts[analytics.ScreenNotes])
}

func ptr(v float64) *float64 { return &v }
