package modelcontroller

import (
	"fmt"

	"brewer-backend/internal/model"
)

// SequenceSettingsModelController holds the ordered attribute steps of the new brew flow.
type SequenceSettingsModelController struct {
	sequence []model.AttributeType
}

// NewSequenceSettingsModelController parses attribute names. Duplicates are rejected.
func NewSequenceSettingsModelController(names []string) (*SequenceSettingsModelController, error) {
	seen := make(map[model.AttributeType]bool, len(names))
	sequence := make([]model.AttributeType, 0, len(names))
	for _, name := range names {
		a, err := model.ParseAttributeType(name)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			return nil, fmt.Errorf("attribute %s listed twice in brew sequence", a)
		}
		seen[a] = true
		sequence = append(sequence, a)
	}
	if len(sequence) == 0 {
		return nil, fmt.Errorf("brew sequence must not be empty")
	}
	return &SequenceSettingsModelController{sequence: sequence}, nil
}

// Sequence returns a copy of the configured steps.
func (s *SequenceSettingsModelController) Sequence() []model.AttributeType {
	return append([]model.AttributeType(nil), s.sequence...)
}
