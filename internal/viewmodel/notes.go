package viewmodel

import "brewer-backend/internal/modelcontroller"

type NotesViewModel struct {
	brewModelController *modelcontroller.BrewModelController
}

func NewNotesViewModel(brewModelController *modelcontroller.BrewModelController) *NotesViewModel {
	return &NotesViewModel{brewModelController: brewModelController}
}

func (vm *NotesViewModel) Notes() string {
	if brew := vm.brewModelController.CurrentBrew(); brew != nil {
		return brew.Notes
	}
	return ""
}

func (vm *NotesViewModel) SetNotes(notes string) error {
	return vm.brewModelController.SetNotes(notes)
}
