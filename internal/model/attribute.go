package model

import "fmt"

// AttributeType identifies one measurable attribute of a brew.
type AttributeType int

const (
	AttributeGrindSize AttributeType = iota + 1
	AttributeTamping
	AttributeCoffeeWeight
	AttributeWaterWeight
	AttributeWaterTemperature
	AttributePreInfusionTime
	AttributeTime
)

// Attributes lists every attribute in display order.
var Attributes = []AttributeType{
	AttributeGrindSize,
	AttributeTamping,
	AttributeCoffeeWeight,
	AttributeWaterWeight,
	AttributeWaterTemperature,
	AttributePreInfusionTime,
	AttributeTime,
}

var attributeNames = map[AttributeType]string{
	AttributeGrindSize:        "grindSize",
	AttributeTamping:          "tamping",
	AttributeCoffeeWeight:     "coffeeWeight",
	AttributeWaterWeight:      "waterWeight",
	AttributeWaterTemperature: "waterTemperature",
	AttributePreInfusionTime:  "preInfusionTime",
	AttributeTime:             "time",
}

var attributeTitles = map[AttributeType]string{
	AttributeGrindSize:        "Grind size",
	AttributeTamping:          "Tamping",
	AttributeCoffeeWeight:     "Coffee weight",
	AttributeWaterWeight:      "Water weight",
	AttributeWaterTemperature: "Water temperature",
	AttributePreInfusionTime:  "Pre-infusion time",
	AttributeTime:             "Time",
}

func (a AttributeType) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("attribute(%d)", int(a))
}

// Title is the human readable label of the attribute.
func (a AttributeType) Title() string {
	if title, ok := attributeTitles[a]; ok {
		return title
	}
	return a.String()
}

// ParseAttributeType maps a configuration / API name onto an attribute.
func ParseAttributeType(name string) (AttributeType, error) {
	for a, n := range attributeNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown brew attribute %q", name)
}

// InputKind is the kind of screen used to enter an attribute.
type InputKind int

const (
	InputNumerical InputKind = iota + 1
	InputTamping
	InputGrindSize
)

func (k InputKind) String() string {
	switch k {
	case InputNumerical:
		return "NumericalInput"
	case InputTamping:
		return "Tamping"
	case InputGrindSize:
		return "GrindSize"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// InputKind reports which input screen edits the attribute. ok is false for
// values outside the known attribute set.
func (a AttributeType) InputKind() (kind InputKind, ok bool) {
	switch a {
	case AttributeGrindSize:
		return InputGrindSize, true
	case AttributeTamping:
		return InputTamping, true
	case AttributeCoffeeWeight, AttributeWaterWeight, AttributeWaterTemperature,
		AttributePreInfusionTime, AttributeTime:
		return InputNumerical, true
	default:
		return 0, false
	}
}
