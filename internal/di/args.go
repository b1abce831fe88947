package di

import (
	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/viewmodel"
)

// Kind is the type tag of a resolution argument.
type Kind string

const (
	KindStartBrewContext    Kind = "startBrewContext"
	KindBrew                Kind = "brew"
	KindBrewModelController Kind = "brewModelController"
	KindAttribute           Kind = "attribute"
	KindSearchIdentifier    Kind = "searchIdentifier"
	KindEditable            Kind = "editable"
)

// Arg is a tagged resolution argument.
type Arg struct {
	Kind  Kind
	Value any
}

func StartBrewContext(c viewmodel.StartBrewContext) Arg {
	return Arg{KindStartBrewContext, c}
}

func Brew(b *model.Brew) Arg { return Arg{KindBrew, b} }

func BrewModelController(m *modelcontroller.BrewModelController) Arg {
	return Arg{KindBrewModelController, m}
}

func Attribute(a model.AttributeType) Arg { return Arg{KindAttribute, a} }

func SearchIdentifier(id modelcontroller.SelectableSearchIdentifier) Arg {
	return Arg{KindSearchIdentifier, id}
}

func Editable(editable bool) Arg { return Arg{KindEditable, editable} }

// Args are the arguments handed to a factory.
type Args []Arg

func (a Args) Shape() Shape {
	shape := make(Shape, len(a))
	for i, arg := range a {
		shape[i] = arg.Kind
	}
	return shape
}

func (a Args) StartBrewContext(i int) viewmodel.StartBrewContext {
	return a[i].Value.(viewmodel.StartBrewContext)
}

func (a Args) Brew(i int) *model.Brew { return a[i].Value.(*model.Brew) }

func (a Args) BrewModelController(i int) *modelcontroller.BrewModelController {
	return a[i].Value.(*modelcontroller.BrewModelController)
}

func (a Args) Attribute(i int) model.AttributeType { return a[i].Value.(model.AttributeType) }

func (a Args) SearchIdentifier(i int) modelcontroller.SelectableSearchIdentifier {
	return a[i].Value.(modelcontroller.SelectableSearchIdentifier)
}

func (a Args) Editable(i int) bool { return a[i].Value.(bool) }
