package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entity-config-server/internal/entity_config/domain"
	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

type EntitySchema struct {
	ID         string           `json:"id" msgpack:"id" gorm:"primaryKey"`
	TenantID   string           `json:"tenant_id" msgpack:"tenant_id" gorm:"not null;uniqueIndex:idx_entity_schemas_key"`
	EntityType string           `json:"entity_type" msgpack:"entity_type" gorm:"not null;uniqueIndex:idx_entity_schemas_key"`
	Fields     FieldDefinitions `json:"fields" msgpack:"fields" gorm:"type:json"`
	Version    int              `json:"version" msgpack:"version"`
	CreatedAt  time.Time        `json:"created_at" msgpack:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" msgpack:"updated_at"`
}

func (EntitySchema) TableName() string {
	return "entity_schemas"
}

type FieldDefinitions []FieldDefinition

type FieldDefinition struct {
	Name        string           `json:"name" msgpack:"name"`
	Label       string           `json:"label" msgpack:"label"`
	Type        string           `json:"type" msgpack:"type"`
	Required    bool             `json:"required" msgpack:"required"`
	Validations []ValidationRule `json:"validations" msgpack:"validations"`
	Options     []FieldOption    `json:"options" msgpack:"options"`
}

type ValidationRule struct {
	Action       string         `json:"action" msgpack:"action"`
	Params       map[string]any `json:"params" msgpack:"params"`
	ErrorMessage string         `json:"error_message" msgpack:"error_message"`
}

type FieldOption struct {
	Label string `json:"label" msgpack:"label"`
	Value any    `json:"value" msgpack:"value"`
}

func (v FieldDefinitions) Value() (driver.Value, error) {
	if v == nil {
		return "[]", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (v *FieldDefinitions) Scan(value any) error {
	switch data := value.(type) {
	case nil:
		*v = FieldDefinitions{}
		return nil
	case string:
		return json.Unmarshal([]byte(data), v)
	case []byte:
		return json.Unmarshal(data, v)
	default:
		return errors.New("type assertion to string failed")
	}
}

func (s EntitySchema) ToDomain() domain.EntitySchema {
	fields := make([]domain.FieldDefinition, len(s.Fields))
	for i, field := range s.Fields {
		fields[i] = field.toDomain()
	}

	return domain.EntitySchema{
		ID:         shareddomain.ID(s.ID),
		TenantID:   shareddomain.ID(s.TenantID),
		EntityType: domain.EntityType(s.EntityType),
		Fields:     fields,
		Version:    shareddomain.Version(s.Version),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (f FieldDefinition) toDomain() domain.FieldDefinition {
	result := domain.FieldDefinition{
		Name:        shareddomain.Name(f.Name),
		Label:       shareddomain.DisplayName(f.Label),
		Type:        domain.FieldType(f.Type),
		Required:    f.Required,
		Validations: make([]domain.ValidationRule, len(f.Validations)),
	}

	for i, rule := range f.Validations {
		result.Validations[i] = domain.ValidationRule{
			Action:       rule.Action,
			Params:       paramsToDomain(rule.Params),
			ErrorMessage: rule.ErrorMessage,
		}
	}

	if f.Options != nil {
		result.Options = make([]domain.FieldOption, len(f.Options))
		for i, option := range f.Options {
			result.Options[i] = domain.FieldOption{Label: option.Label, Value: scalarOf(option.Value)}
		}
	}

	return result
}

func paramsToDomain(params map[string]any) domain.RuleParams {
	if params == nil {
		return nil
	}
	result := make(domain.RuleParams, len(params))
	for name, value := range params {
		result[name] = scalarOf(value)
	}
	return result
}

func scalarOf(value any) domain.Scalar {
	scalar, err := domain.ScalarFromAny(value)
	if err != nil {
		return domain.TextScalar(fmt.Sprint(value))
	}
	return scalar
}

func FromEntitySchema(value domain.EntitySchema) EntitySchema {
	fields := make(FieldDefinitions, len(value.Fields))
	for i, field := range value.Fields {
		fields[i] = fromFieldDefinition(field)
	}

	return EntitySchema{
		ID:         value.ID.String(),
		TenantID:   value.TenantID.String(),
		EntityType: value.EntityType.String(),
		Fields:     fields,
		Version:    int(value.Version),
		CreatedAt:  value.CreatedAt,
		UpdatedAt:  value.UpdatedAt,
	}
}

func fromFieldDefinition(value domain.FieldDefinition) FieldDefinition {
	result := FieldDefinition{
		Name:        value.Name.String(),
		Label:       value.Label.String(),
		Type:        value.Type.String(),
		Required:    value.Required,
		Validations: make([]ValidationRule, len(value.Validations)),
	}

	for i, rule := range value.Validations {
		var params map[string]any
		if rule.Params != nil {
			params = make(map[string]any, len(rule.Params))
			for name, scalar := range rule.Params {
				params[name] = scalar.Any()
			}
		}
		result.Validations[i] = ValidationRule{
			Action:       rule.Action,
			Params:       params,
			ErrorMessage: rule.ErrorMessage,
		}
	}

	if value.Options != nil {
		result.Options = make([]FieldOption, len(value.Options))
		for i, option := range value.Options {
			result.Options[i] = FieldOption{Label: option.Label, Value: option.Value.Any()}
		}
	}

	return result
}
