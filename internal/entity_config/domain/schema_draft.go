package domain

import (
	"fmt"
	"strings"
	"time"

	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

// SchemaDraft is an editing copy of an EntitySchema. It is owned by a single
// editing session and is never persisted until committed.
type SchemaDraft struct {
	schema  EntitySchema
	catalog *RuleCatalog
}

func NewSchemaDraft(schema EntitySchema, catalog *RuleCatalog) *SchemaDraft {
	return &SchemaDraft{
		schema:  schema.Clone(),
		catalog: catalog,
	}
}

func (d *SchemaDraft) Schema() EntitySchema {
	return d.schema.Clone()
}

type FieldPatch struct {
	Name     *string
	Label    *string
	Type     *FieldType
	Required *bool
}

type OptionPatch struct {
	Label *string
	Value *Scalar
}

type ValidationPatch struct {
	Params       RuleParams
	ErrorMessage *string
}

// AddField appends a string field with no rules. The caller names it
// afterwards.
func (d *SchemaDraft) AddField() FieldDefinition {
	field := FieldDefinition{
		Type:        FieldTypeString,
		Required:    false,
		Validations: make([]ValidationRule, 0),
	}
	d.schema.Fields = append(d.schema.Fields, field)
	d.touch()
	return field.Clone()
}

// UpdateField applies patch to the field at index. A type change drops the
// field's validations, and its options when it stops being a select. The
// field is left untouched on error.
func (d *SchemaDraft) UpdateField(index int, patch FieldPatch) error {
	field, err := d.field(index)
	if err != nil {
		return err
	}

	if patch.Type != nil && !patch.Type.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownFieldType, *patch.Type)
	}
	if patch.Name != nil {
		if err := d.checkFieldName(index, *patch.Name); err != nil {
			return err
		}
	}

	if patch.Type != nil {
		if *patch.Type != field.Type {
			field.Validations = make([]ValidationRule, 0)
			if *patch.Type != FieldTypeSelect {
				field.Options = nil
			}
			field.Type = *patch.Type
		}
	}
	if patch.Name != nil {
		field.Name = shareddomain.Name(*patch.Name)
	}
	if patch.Label != nil {
		field.Label = shareddomain.DisplayName(*patch.Label)
	}
	if patch.Required != nil {
		field.Required = *patch.Required
	}

	d.touch()
	return nil
}

func (d *SchemaDraft) RemoveField(index int) error {
	if _, err := d.field(index); err != nil {
		return err
	}
	d.schema.Fields = append(d.schema.Fields[:index], d.schema.Fields[index+1:]...)
	d.touch()
	return nil
}

func (d *SchemaDraft) AddOption(fieldIndex int) (FieldOption, error) {
	field, err := d.selectField(fieldIndex)
	if err != nil {
		return FieldOption{}, err
	}
	option := FieldOption{Label: "", Value: TextScalar("")}
	field.Options = append(field.Options, option)
	d.touch()
	return option, nil
}

func (d *SchemaDraft) UpdateOption(fieldIndex, optionIndex int, patch OptionPatch) error {
	field, err := d.selectField(fieldIndex)
	if err != nil {
		return err
	}
	if optionIndex < 0 || optionIndex >= len(field.Options) {
		return ErrOptionIndexOutOfRange
	}
	if patch.Value != nil {
		if err := checkOptionValue(field.Options, optionIndex, *patch.Value); err != nil {
			return err
		}
	}
	if patch.Label != nil {
		field.Options[optionIndex].Label = *patch.Label
	}
	if patch.Value != nil {
		field.Options[optionIndex].Value = *patch.Value
	}
	d.touch()
	return nil
}

// checkFieldName rejects a blank name or one used by another field.
// Placeholders left by AddField have no name and never collide.
func (d *SchemaDraft) checkFieldName(index int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrFieldNameRequired
	}
	for i, other := range d.schema.Fields {
		if i != index && strings.TrimSpace(other.Name.String()) == name {
			return fmt.Errorf("%w: %q by field #%d", ErrDuplicatedFieldName, name, i+1)
		}
	}
	return nil
}

// checkOptionValue rejects a value another option of the field already has.
// Blank values stay allowed so that placeholders from AddOption can be edited
// in any order.
func checkOptionValue(options []FieldOption, index int, value Scalar) error {
	text := strings.TrimSpace(value.String())
	if text == "" {
		return nil
	}
	for i, other := range options {
		if i != index && strings.TrimSpace(other.Value.String()) == text {
			return fmt.Errorf("%w: %q by option #%d", ErrDuplicatedOptionValue, text, i+1)
		}
	}
	return nil
}

func (d *SchemaDraft) RemoveOption(fieldIndex, optionIndex int) error {
	field, err := d.selectField(fieldIndex)
	if err != nil {
		return err
	}
	if optionIndex < 0 || optionIndex >= len(field.Options) {
		return ErrOptionIndexOutOfRange
	}
	field.Options = append(field.Options[:optionIndex], field.Options[optionIndex+1:]...)
	d.touch()
	return nil
}

// AddValidation attaches the default instance of the first catalog kind that
// applies to the field type. When none applies nothing happens and added is
// false.
func (d *SchemaDraft) AddValidation(fieldIndex int) (rule ValidationRule, added bool, err error) {
	field, err := d.field(fieldIndex)
	if err != nil {
		return ValidationRule{}, false, err
	}

	kind, ok := d.catalog.firstApplicableTo(field.Type)
	if !ok {
		return ValidationRule{}, false, nil
	}

	rule = NewValidationRule(kind)
	field.Validations = append(field.Validations, rule)
	d.touch()
	return rule.Clone(), true, nil
}

// UpdateValidationAction switches the rule to another kind and resets its
// params to that kind's defaults. The rule is left untouched on error.
func (d *SchemaDraft) UpdateValidationAction(fieldIndex, validationIndex int, key string) error {
	field, rule, err := d.validation(fieldIndex, validationIndex)
	if err != nil {
		return err
	}

	kind, err := d.catalog.Get(key)
	if err != nil {
		return err
	}
	if !kind.AppliesTo(field.Type) {
		return fmt.Errorf("%w: %s on %s", ErrIncompatibleRuleKind, key, field.Type)
	}

	rule.Action = kind.Key
	rule.Params = kind.DefaultParams()
	d.touch()
	return nil
}

// UpdateValidation sets the given params and error message. Params not named
// in patch keep their value.
func (d *SchemaDraft) UpdateValidation(fieldIndex, validationIndex int, patch ValidationPatch) error {
	_, rule, err := d.validation(fieldIndex, validationIndex)
	if err != nil {
		return err
	}

	if len(patch.Params) > 0 {
		kind, err := d.catalog.Get(rule.Action)
		if err != nil {
			return err
		}
		params := rule.Params.Clone()
		for name, value := range patch.Params {
			params[name] = value
		}
		if _, err := kind.ResolveParams(params); err != nil {
			return err
		}
		rule.Params = params
	}
	if patch.ErrorMessage != nil {
		rule.ErrorMessage = *patch.ErrorMessage
	}

	d.touch()
	return nil
}

func (d *SchemaDraft) RemoveValidation(fieldIndex, validationIndex int) error {
	field, _, err := d.validation(fieldIndex, validationIndex)
	if err != nil {
		return err
	}
	field.Validations = append(field.Validations[:validationIndex], field.Validations[validationIndex+1:]...)
	d.touch()
	return nil
}

func (d *SchemaDraft) field(index int) (*FieldDefinition, error) {
	if index < 0 || index >= len(d.schema.Fields) {
		return nil, ErrFieldIndexOutOfRange
	}
	return &d.schema.Fields[index], nil
}

func (d *SchemaDraft) selectField(index int) (*FieldDefinition, error) {
	field, err := d.field(index)
	if err != nil {
		return nil, err
	}
	if field.Type != FieldTypeSelect {
		return nil, ErrFieldNotSelect
	}
	return field, nil
}

func (d *SchemaDraft) validation(fieldIndex, validationIndex int) (*FieldDefinition, *ValidationRule, error) {
	field, err := d.field(fieldIndex)
	if err != nil {
		return nil, nil, err
	}
	if validationIndex < 0 || validationIndex >= len(field.Validations) {
		return nil, nil, ErrValidationIndexOutOfRange
	}
	return field, &field.Validations[validationIndex], nil
}

func (d *SchemaDraft) touch() {
	d.schema.UpdatedAt = time.Now()
}
