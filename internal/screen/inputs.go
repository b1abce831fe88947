package screen

import (
	"context"
	"strings"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/model"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/theme"
	"brewer-backend/internal/viewmodel"
)

// NumericalInputScreen edits one numeric attribute.
type NumericalInputScreen struct {
	navigation.BaseScreen
	viewModel viewmodel.NumericalInputViewModel
	tracker   analytics.Tracker
}

func NewNumericalInputScreen(vm viewmodel.NumericalInputViewModel, th *theme.Configuration, tracker analytics.Tracker) *NumericalInputScreen {
	s := &NumericalInputScreen{BaseScreen: navigation.NewBaseScreen(vm.Title()), viewModel: vm, tracker: tracker}
	s.ConfigureWithTheme(th)
	return s
}

func (s *NumericalInputScreen) ViewModel() viewmodel.NumericalInputViewModel { return s.viewModel }

func (s *NumericalInputScreen) WillAppear(context.Context) {
	s.tracker.TrackScreen(analytics.ScreenNumericalInput)
}

func (s *NumericalInputScreen) HandleInput(_ context.Context, in Input) error {
	switch in.Action {
	case "set":
		return s.viewModel.SetValue(in.Value)
	case "clear":
		return s.viewModel.SetValue("")
	}
	return unknownAction(in)
}

func (s *NumericalInputScreen) View() any {
	return struct {
		Attribute string `json:"attribute"`
		Unit      string `json:"unit"`
		Value     string `json:"value"`
	}{s.viewModel.Attribute().String(), s.viewModel.Unit(), s.viewModel.Value()}
}

// TampingScreen samples tamping pressure while active.
type TampingScreen struct {
	navigation.BaseScreen
	viewModel *viewmodel.TampingViewModel
	tracker   analytics.Tracker
}

func NewTampingScreen(vm *viewmodel.TampingViewModel, th *theme.Configuration, tracker analytics.Tracker) *TampingScreen {
	s := &TampingScreen{BaseScreen: navigation.NewBaseScreen(model.AttributeTamping.Title()), viewModel: vm, tracker: tracker}
	s.ConfigureWithTheme(th)
	return s
}

func (s *TampingScreen) ViewModel() *viewmodel.TampingViewModel { return s.viewModel }

func (s *TampingScreen) Active() bool          { return s.viewModel.Active() }
func (s *TampingScreen) SetActive(active bool) { s.viewModel.SetActive(active) }

func (s *TampingScreen) WillAppear(context.Context) {
	s.tracker.TrackScreen(analytics.ScreenTamping)
}

func (s *TampingScreen) HandleInput(_ context.Context, in Input) error {
	v, err := in.number()
	if err != nil {
		return err
	}
	switch in.Action {
	case "sample":
		s.viewModel.Record(v)
		return nil
	case "set":
		return s.viewModel.SetStrength(v)
	}
	return unknownAction(in)
}

func (s *TampingScreen) View() any {
	return struct {
		Active      bool    `json:"active"`
		Strength    float64 `json:"strength"`
		Description string  `json:"description"`
	}{s.viewModel.Active(), s.viewModel.Strength(), s.viewModel.Description()}
}

// GrindSizeScreen edits the grind setting.
type GrindSizeScreen struct {
	navigation.BaseScreen
	viewModel *viewmodel.GrindSizeViewModel
	tracker   analytics.Tracker
}

func NewGrindSizeScreen(vm *viewmodel.GrindSizeViewModel, th *theme.Configuration, tracker analytics.Tracker) *GrindSizeScreen {
	s := &GrindSizeScreen{BaseScreen: navigation.NewBaseScreen(model.AttributeGrindSize.Title()), viewModel: vm, tracker: tracker}
	s.ConfigureWithTheme(th)
	return s
}

func (s *GrindSizeScreen) WillAppear(context.Context) {
	s.tracker.TrackScreen(analytics.ScreenGrindSize)
}

func (s *GrindSizeScreen) HandleInput(_ context.Context, in Input) error {
	if in.Action != "set" {
		return unknownAction(in)
	}
	v, err := in.number()
	if err != nil {
		return err
	}
	return s.viewModel.SetValue(v)
}

func (s *GrindSizeScreen) View() any {
	return struct {
		Value       float64 `json:"value"`
		Min         float64 `json:"min"`
		Max         float64 `json:"max"`
		Description string  `json:"description"`
	}{s.viewModel.Value(), viewmodel.MinGrindSize, viewmodel.MaxGrindSize, s.viewModel.Description()}
}

// NotesScreen edits the free-text notes.
type NotesScreen struct {
	navigation.BaseScreen
	viewModel *viewmodel.NotesViewModel
	tracker   analytics.Tracker
}

func NewNotesScreen(vm *viewmodel.NotesViewModel, th *theme.Configuration, tracker analytics.Tracker) *NotesScreen {
	s := &NotesScreen{BaseScreen: navigation.NewBaseScreen("Notes"), viewModel: vm, tracker: tracker}
	s.ConfigureWithTheme(th)
	return s
}

func (s *NotesScreen) WillAppear(context.Context) {
	s.tracker.TrackScreen(analytics.ScreenNotes)
}

func (s *NotesScreen) HandleInput(_ context.Context, in Input) error {
	if in.Action != "set" {
		return unknownAction(in)
	}
	return s.viewModel.SetNotes(strings.TrimSpace(in.Value))
}

func (s *NotesScreen) View() any {
	return struct {
		Notes string `json:"notes"`
	}{s.viewModel.Notes()}
}
