package modelcontroller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brewer-backend/internal/model"
	"brewer-backend/internal/store"
)

// SelectableSearchIdentifier names a catalog a brew references.
type SelectableSearchIdentifier int

const (
	SearchCoffee SelectableSearchIdentifier = iota + 1
	SearchCoffeeMachine
)

func (id SelectableSearchIdentifier) String() string {
	switch id {
	case SearchCoffee:
		return "coffee"
	case SearchCoffeeMachine:
		return "coffeeMachine"
	default:
		return fmt.Sprintf("search(%d)", int(id))
	}
}

// Description is the screen title for the catalog.
func (id SelectableSearchIdentifier) Description() string {
	switch id {
	case SearchCoffee:
		return "Coffee"
	case SearchCoffeeMachine:
		return "Coffee machine"
	default:
		return id.String()
	}
}

var (
	ErrEmptyName    = errors.New("name must not be empty")
	ErrItemNotFound = errors.New("item not found")
)

// SearchItem is one selectable catalog entry.
type SearchItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// SelectableSearchModelController searches a catalog and assigns entries to the current brew.
type SelectableSearchModelController interface {
	Items(ctx context.Context, query string) ([]SearchItem, error)
	Select(ctx context.Context, id string) error
	Add(ctx context.Context, name string) (SearchItem, error)
	Selected() (SearchItem, bool)
}

type named interface {
	store.Record
	DisplayName() string
	SetDisplayName(string)
}

type selectableSearch[T any, PT interface {
	*T
	named
}] struct {
	items   store.Operations[T, PT]
	brew    *BrewModelController
	current func(*model.Brew) PT
	assign  func(*BrewModelController, PT) error
	now     func() time.Time
}

func (s *selectableSearch[T, PT]) Selected() (SearchItem, bool) {
	brew := s.brew.CurrentBrew()
	if brew == nil {
		return SearchItem{}, false
	}
	item := s.current(brew)
	if item == nil {
		return SearchItem{}, false
	}
	return SearchItem{ID: item.PrimaryKey(), Name: item.DisplayName(), Selected: true}, true
}

func (s *selectableSearch[T, PT]) Items(ctx context.Context, query string) ([]SearchItem, error) {
	req := store.FetchRequest{SortDescriptors: []store.SortDescriptor{store.Ascending("name")}}
	if q := strings.TrimSpace(query); q != "" {
		req.Predicate = store.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	found, err := s.items.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	selected, _ := s.Selected()
	out := make([]SearchItem, 0, len(found))
	for _, f := range found {
		out = append(out, SearchItem{
			ID:       f.PrimaryKey(),
			Name:     f.DisplayName(),
			Selected: f.PrimaryKey() == selected.ID,
		})
	}
	return out, nil
}

func (s *selectableSearch[T, PT]) Select(ctx context.Context, id string) error {
	item, ok := s.items.ObjectForID(id)
	if !ok {
		found, err := s.items.Fetch(ctx, store.FetchRequest{Predicate: store.Where("id = ?", id), Limit: 1})
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return fmt.Errorf("%w: %s", ErrItemNotFound, id)
		}
		item = found[0]
	}
	return s.assign(s.brew, item)
}

// Add creates a catalog entry and selects it. An existing entry with the same
// name (case-insensitive) is selected instead of creating a duplicate.
func (s *selectableSearch[T, PT]) Add(ctx context.Context, name string) (SearchItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SearchItem{}, ErrEmptyName
	}

	existing, err := s.items.Fetch(ctx, store.FetchRequest{
		Predicate: store.Where("LOWER(name) = ?", strings.ToLower(name)),
		Limit:     1,
	})
	if err != nil {
		return SearchItem{}, err
	}

	var item PT
	if len(existing) > 0 {
		item = existing[0]
	} else {
		item = s.items.Create()
		item.SetDisplayName(name)
		stampCreated(item, s.now().UTC())
	}
	if err := s.assign(s.brew, item); err != nil {
		return SearchItem{}, err
	}
	return SearchItem{ID: item.PrimaryKey(), Name: item.DisplayName(), Selected: true}, nil
}

func stampCreated(r store.Record, at time.Time) {
	switch v := r.(type) {
	case *model.Coffee:
		v.CreatedAt = at
	case *model.CoffeeMachine:
		v.CreatedAt = at
	}
}

// CoffeeSelectableSearchModelController selects the coffee of a brew.
type CoffeeSelectableSearchModelController struct {
	selectableSearch[model.Coffee, *model.Coffee]
}

// NewCoffeeSelectableSearchModelController binds the coffee catalog to brewController.
func NewCoffeeSelectableSearchModelController(c *store.Context, brewController *BrewModelController) *CoffeeSelectableSearchModelController {
	return &CoffeeSelectableSearchModelController{selectableSearch[model.Coffee, *model.Coffee]{
		items:   store.NewOperations[model.Coffee](c),
		brew:    brewController,
		current: func(b *model.Brew) *model.Coffee { return b.Coffee },
		assign:  (*BrewModelController).SetCoffee,
		now:     time.Now,
	}}
}

// CoffeeMachineSelectableSearchModelController selects the machine of a brew.
type CoffeeMachineSelectableSearchModelController struct {
	selectableSearch[model.CoffeeMachine, *model.CoffeeMachine]
}

// NewCoffeeMachineSelectableSearchModelController binds the machine catalog to brewController.
func NewCoffeeMachineSelectableSearchModelController(c *store.Context, brewController *BrewModelController) *CoffeeMachineSelectableSearchModelController {
	return &CoffeeMachineSelectableSearchModelController{selectableSearch[model.CoffeeMachine, *model.CoffeeMachine]{
		items:   store.NewOperations[model.CoffeeMachine](c),
		brew:    brewController,
		current: func(b *model.Brew) *model.CoffeeMachine { return b.CoffeeMachine },
		assign:  (*BrewModelController).SetCoffeeMachine,
		now:     time.Now,
	}}
}
