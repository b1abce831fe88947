package screen

import (
	"brewer-backend/internal/di"
	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
)

// AttributeScreen resolves the input screen editing attribute a of the brew
// owned by brewModelController. An attribute without an input screen is a
// configuration error.
func AttributeScreen(r di.Resolver, a model.AttributeType, brewModelController *modelcontroller.BrewModelController) Pushable {
	kind, ok := a.InputKind()
	if !ok {
		di.Fail(di.ServiceNumericalInputScreen, di.Args{di.Attribute(a)}, "no input screen for attribute %s", a)
	}
	switch kind {
	case model.InputNumerical:
		return di.ResolveAs[*NumericalInputScreen](r, di.ServiceNumericalInputScreen,
			di.Attribute(a), di.BrewModelController(brewModelController))
	case model.InputTamping:
		return di.ResolveAs[*TampingScreen](r, di.ServiceTampingScreen, di.BrewModelController(brewModelController))
	case model.InputGrindSize:
		return di.ResolveAs[*GrindSizeScreen](r, di.ServiceGrindSizeScreen, di.BrewModelController(brewModelController))
	}
	di.Fail(di.ServiceNumericalInputScreen, di.Args{di.Attribute(a)}, "unmapped input kind %s", kind)
	return nil
}
