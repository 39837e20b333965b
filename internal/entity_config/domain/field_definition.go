package domain

import (
	"slices"

	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

type FieldDefinition struct {
	Name        shareddomain.Name
	Label       shareddomain.DisplayName
	Type        FieldType
	Required    bool
	Validations []ValidationRule
	Options     []FieldOption
}

type FieldOption struct {
	Label string
	Value Scalar
}

// DisplayLabel is the label used in violation messages.
func (f FieldDefinition) DisplayLabel() string {
	if f.Label != "" {
		return f.Label.String()
	}
	return f.Name.String()
}

func (f FieldDefinition) Clone() FieldDefinition {
	result := f
	result.Validations = make([]ValidationRule, len(f.Validations))
	for i, rule := range f.Validations {
		result.Validations[i] = rule.Clone()
	}
	if f.Options != nil {
		result.Options = slices.Clone(f.Options)
	}
	return result
}
