package viewmodel

import (
	"fmt"

	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
)

const (
	MinGrindSize     = 0.0
	MaxGrindSize     = 100.0
	DefaultGrindSize = 50.0
)

// GrindSizeDescription names a 0..100 grind setting.
func GrindSizeDescription(v float64) string {
	switch {
	case v < 33:
		return "fine"
	case v < 66:
		return "medium"
	default:
		return "coarse"
	}
}

// GrindSizeViewModel edits the grind setting. The last value used on a coffee
// machine becomes the starting value for the next brew on that machine.
type GrindSizeViewModel struct {
	brewModelController *modelcontroller.BrewModelController
	keyValueStore       modelcontroller.KeyValueStore
}

func NewGrindSizeViewModel(brewModelController *modelcontroller.BrewModelController, keyValueStore modelcontroller.KeyValueStore) *GrindSizeViewModel {
	return &GrindSizeViewModel{brewModelController: brewModelController, keyValueStore: keyValueStore}
}

func (vm *GrindSizeViewModel) storeKey() string {
	key := "grindSize"
	if brew := vm.brewModelController.CurrentBrew(); brew != nil && brew.CoffeeMachineID != nil {
		key += "." + *brew.CoffeeMachineID
	}
	return key
}

// Value is the brew's grind size, else the remembered one, else DefaultGrindSize.
func (vm *GrindSizeViewModel) Value() float64 {
	if brew := vm.brewModelController.CurrentBrew(); brew != nil {
		if v, ok := brew.Attribute(model.AttributeGrindSize); ok {
			return v
		}
	}
	if v, ok := vm.keyValueStore.Float(vm.storeKey()); ok {
		return v
	}
	return DefaultGrindSize
}

func (vm *GrindSizeViewModel) Description() string {
	return GrindSizeDescription(vm.Value())
}

func (vm *GrindSizeViewModel) SetValue(v float64) error {
	if v < MinGrindSize || v > MaxGrindSize {
		return fmt.Errorf("%w: grind size %.1f outside %.0f-%.0f", ErrInvalidInput, v, MinGrindSize, MaxGrindSize)
	}
	if err := vm.brewModelController.SetAttribute(model.AttributeGrindSize, &v); err != nil {
		return err
	}
	vm.keyValueStore.SetFloat(vm.storeKey(), v)
	return nil
}
