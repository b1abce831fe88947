package viewmodel

import (
	"context"

	"brewer-backend/internal/modelcontroller"
)

// SelectableSearchViewModel keeps the query and result list of a catalog search.
type SelectableSearchViewModel struct {
	modelController modelcontroller.SelectableSearchModelController
	query           string
	items           []modelcontroller.SearchItem
}

func NewSelectableSearchViewModel(modelController modelcontroller.SelectableSearchModelController) *SelectableSearchViewModel {
	return &SelectableSearchViewModel{modelController: modelController}
}

func (vm *SelectableSearchViewModel) Query() string { return vm.query }

func (vm *SelectableSearchViewModel) Items() []modelcontroller.SearchItem { return vm.items }

// Refresh reruns the current query.
func (vm *SelectableSearchViewModel) Refresh(ctx context.Context) error {
	items, err := vm.modelController.Items(ctx, vm.query)
	if err != nil {
		return err
	}
	vm.items = items
	return nil
}

func (vm *SelectableSearchViewModel) SetQuery(ctx context.Context, query string) error {
	vm.query = query
	return vm.Refresh(ctx)
}

func (vm *SelectableSearchViewModel) Select(ctx context.Context, id string) error {
	if err := vm.modelController.Select(ctx, id); err != nil {
		return err
	}
	return vm.Refresh(ctx)
}

// Add creates (or reuses) an entry named name, selects it and clears the query.
func (vm *SelectableSearchViewModel) Add(ctx context.Context, name string) (modelcontroller.SearchItem, error) {
	item, err := vm.modelController.Add(ctx, name)
	if err != nil {
		return modelcontroller.SearchItem{}, err
	}
	vm.query = ""
	return item, vm.Refresh(ctx)
}

func (vm *SelectableSearchViewModel) Selected() (modelcontroller.SearchItem, bool) {
	return vm.modelController.Selected()
}
