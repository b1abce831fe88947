package viewmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
)

func newSequence(t *testing.T, names ...string) *modelcontroller.SequenceSettingsModelController {
	s, err := modelcontroller.NewSequenceSettingsModelController(names)
	require.NoError(t, err)
	return s
}

func TestNewBrewViewModel_Paging(t *testing.T) {
	m := modelcontroller.NewBrewModelController(newTestContext(t))
	vm := NewNewBrewViewModel(StartBrewContext{}, newSequence(t, "grindSize", "coffeeWeight", "time"), m)

	require.NotNil(t, m.CurrentBrew())
	assert.True(t, m.CurrentBrew().Temporary)
	assert.Equal(t, model.AttributeGrindSize, vm.CurrentPage())
	assert.False(t, vm.Previous())
	assert.Equal(t, "1 / 3", vm.Metrics().String())

	assert.True(t, vm.Next())
	assert.True(t, vm.Next())
	assert.False(t, vm.Next())
	assert.Equal(t, model.AttributeTime, vm.CurrentPage())
	assert.Equal(t, 1.0, vm.Metrics().Progress())

	assert.True(t, vm.Previous())
	assert.Equal(t, model.AttributeCoffeeWeight, vm.CurrentPage())
}

func TestNewBrewViewModel_FinishAndCancel(t *testing.T) {
	ctx := context.Background()
	c := newTestContext(t)
	settings := newSequence(t, "time")

	finished := modelcontroller.NewBrewModelController(c)
	vm := NewNewBrewViewModel(StartBrewContext{}, settings, finished)
	require.NoError(t, finished.SetAttribute(model.AttributeTime, ptr(30)))
	brew, err := vm.Finish(ctx)
	require.NoError(t, err)
	assert.False(t, brew.Temporary)
	_, err = vm.Finish(ctx)
	assert.ErrorIs(t, err, ErrBrewFinished)

	cancelled := modelcontroller.NewBrewModelController(c)
	vm = NewNewBrewViewModel(StartBrewContext{}, settings, cancelled)
	require.NoError(t, vm.Cancel(ctx))
	assert.Nil(t, cancelled.CurrentBrew())
	assert.ErrorIs(t, vm.Cancel(ctx), ErrBrewFinished)

	brews, err := finished.Brews(ctx)
	require.NoError(t, err)
	require.Len(t, brews, 1)
	assert.Equal(t, brew.ID, brews[0].ID)
}

func TestNewBrewViewModel_SeedsFromReference(t *testing.T) {
	ctx := context.Background()
	c := newTestContext(t)

	ref := modelcontroller.NewBrewModelController(c)
	ref.CreateNewBrew()
	_, err := modelcontroller.NewCoffeeSelectableSearchModelController(c, ref).Add(ctx, "Kenya AA")
	require.NoError(t, err)
	require.NoError(t, ref.SetAttribute(model.AttributeCoffeeWeight, ptr(18)))
	require.NoError(t, ref.SetNotes("reference"))
	require.NoError(t, ref.FinishBrew(ctx))

	m := modelcontroller.NewBrewModelController(c)
	NewNewBrewViewModel(StartBrewContext{Reference: ref.CurrentBrew()}, newSequence(t, "time"), m)

	brew := m.CurrentBrew()
	assert.NotEqual(t, ref.CurrentBrew().ID, brew.ID)
	require.NotNil(t, brew.Coffee)
	assert.Equal(t, "Kenya AA", brew.Coffee.Name)
	v, ok := brew.Attribute(model.AttributeCoffeeWeight)
	assert.True(t, ok)
	assert.Equal(t, 18.0, v)
	assert.Empty(t, brew.Notes, "notes are not carried over")
}
