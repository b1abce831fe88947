package viewmodel

import (
	"fmt"
	"math"

	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
)

// TampingDescription names a 0..1 tamping strength.
func TampingDescription(v float64) string {
	switch {
	case v < 0.33:
		return "light"
	case v < 0.66:
		return "medium"
	default:
		return "strong"
	}
}

// TampingViewModel samples pressure readings while its screen is active and
// stores the peak as the tamping strength when it is deactivated.
type TampingViewModel struct {
	brewModelController *modelcontroller.BrewModelController

	active  bool
	peak    float64
	samples int
}

func NewTampingViewModel(brewModelController *modelcontroller.BrewModelController) *TampingViewModel {
	return &TampingViewModel{brewModelController: brewModelController}
}

func (vm *TampingViewModel) Active() bool { return vm.active }

// SetActive starts a fresh sampling run, or ends one and commits its peak.
func (vm *TampingViewModel) SetActive(active bool) {
	if active == vm.active {
		return
	}
	vm.active = active
	if active {
		vm.peak, vm.samples = 0, 0
		return
	}
	if vm.samples > 0 {
		peak := vm.peak
		_ = vm.brewModelController.SetAttribute(model.AttributeTamping, &peak)
	}
}

// Record adds one reading. Readings while inactive are dropped.
func (vm *TampingViewModel) Record(reading float64) bool {
	if !vm.active || math.IsNaN(reading) {
		return false
	}
	reading = math.Max(0, math.Min(1, reading))
	if vm.samples == 0 || reading > vm.peak {
		vm.peak = reading
	}
	vm.samples++
	return true
}

// Strength is the peak of the running sample, else the stored value.
func (vm *TampingViewModel) Strength() float64 {
	if vm.active && vm.samples > 0 {
		return vm.peak
	}
	if brew := vm.brewModelController.CurrentBrew(); brew != nil {
		if v, ok := brew.Attribute(model.AttributeTamping); ok {
			return v
		}
	}
	return 0
}

func (vm *TampingViewModel) Description() string {
	return TampingDescription(vm.Strength())
}

// SetStrength stores a strength directly, for clients without a sensor.
func (vm *TampingViewModel) SetStrength(v float64) error {
	if v < 0 || v > 1 || math.IsNaN(v) {
		return fmt.Errorf("%w: tamping %.2f outside 0-1", ErrInvalidInput, v)
	}
	return vm.brewModelController.SetAttribute(model.AttributeTamping, &v)
}
