package internal

import (
	"fmt"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/infra/utils"
	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

type FieldOption struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

type ValidationRule struct {
	Action       string         `json:"action"`
	Params       map[string]any `json:"params"`
	ErrorMessage string         `json:"error_message"`
}

type FieldDefinition struct {
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	Type        string           `json:"type"`
	Required    bool             `json:"required"`
	Validations []ValidationRule `json:"validations"`
	Options     []FieldOption    `json:"options,omitempty"`
}

// EntitySchemaRequest is the body of a schema replacement. The entity type
// comes from the path.
type EntitySchemaRequest struct {
	EntityType string            `json:"entity_type,omitempty"`
	Fields     []FieldDefinition `json:"fields"`
}

type EntitySchemaResponse struct {
	ID         string            `json:"id"`
	TenantID   string            `json:"tenant_id"`
	EntityType string            `json:"entity_type"`
	Fields     []FieldDefinition `json:"fields"`
	Version    int               `json:"version"`
	CreatedAt  utils.Time        `json:"created_at"`
	UpdatedAt  utils.Time        `json:"updated_at"`
}

func ToEntitySchemaResponse(schema domain.EntitySchema) EntitySchemaResponse {
	return EntitySchemaResponse{
		ID:         schema.ID.String(),
		TenantID:   schema.TenantID.String(),
		EntityType: schema.EntityType.String(),
		Fields:     ToFieldDefinitions(schema.Fields),
		Version:    int(schema.Version),
		CreatedAt:  utils.Time{Time: schema.CreatedAt},
		UpdatedAt:  utils.Time{Time: schema.UpdatedAt},
	}
}

func ToEntitySchemaResponses(schemas []domain.EntitySchema) []EntitySchemaResponse {
	result := make([]EntitySchemaResponse, len(schemas))
	for i, schema := range schemas {
		result[i] = ToEntitySchemaResponse(schema)
	}
	return result
}

func ToFieldDefinitions(fields []domain.FieldDefinition) []FieldDefinition {
	result := make([]FieldDefinition, len(fields))
	for i, field := range fields {
		dto := FieldDefinition{
			Name:        field.Name.String(),
			Label:       field.Label.String(),
			Type:        field.Type.String(),
			Required:    field.Required,
			Validations: make([]ValidationRule, len(field.Validations)),
		}
		for j, rule := range field.Validations {
			params := make(map[string]any, len(rule.Params))
			for name, value := range rule.Params {
				params[name] = value.Any()
			}
			dto.Validations[j] = ValidationRule{
				Action:       rule.Action,
				Params:       params,
				ErrorMessage: rule.ErrorMessage,
			}
		}
		if field.Type == domain.FieldTypeSelect || len(field.Options) > 0 {
			dto.Options = make([]FieldOption, len(field.Options))
			for j, option := range field.Options {
				dto.Options[j] = FieldOption{Label: option.Label, Value: option.Value.Any()}
			}
		}
		result[i] = dto
	}
	return result
}

// ToDomainFields converts request fields. Structural checks are left to the
// store; only values that have no domain representation are rejected here.
func (r EntitySchemaRequest) ToDomainFields() ([]domain.FieldDefinition, error) {
	result := make([]domain.FieldDefinition, len(r.Fields))
	for i, field := range r.Fields {
		converted := domain.FieldDefinition{
			Name:        shareddomain.Name(field.Name),
			Label:       shareddomain.DisplayName(field.Label),
			Type:        domain.FieldType(field.Type),
			Required:    field.Required,
			Validations: make([]domain.ValidationRule, len(field.Validations)),
		}

		for j, rule := range field.Validations {
			params, err := ToRuleParams(rule.Params)
			if err != nil {
				return nil, fmt.Errorf("field #%d validation #%d: %w", i, j, err)
			}
			converted.Validations[j] = domain.ValidationRule{
				Action:       rule.Action,
				Params:       params,
				ErrorMessage: rule.ErrorMessage,
			}
		}

		if field.Options != nil {
			converted.Options = make([]domain.FieldOption, len(field.Options))
			for j, option := range field.Options {
				value, err := domain.ScalarFromAny(option.Value)
				if err != nil {
					return nil, fmt.Errorf("field #%d option #%d: %w", i, j, err)
				}
				converted.Options[j] = domain.FieldOption{Label: option.Label, Value: value}
			}
		}

		result[i] = converted
	}
	return result, nil
}

func ToRuleParams(params map[string]any) (domain.RuleParams, error) {
	result := make(domain.RuleParams, len(params))
	for name, value := range params {
		scalar, err := domain.ScalarFromAny(value)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", name, err)
		}
		result[name] = scalar
	}
	return result, nil
}

type SchemaIssue struct {
	FieldIndex int    `json:"field_index"`
	Field      string `json:"field,omitempty"`
	Reason     string `json:"reason"`
}

type SchemaInvalidResponse struct {
	Message string        `json:"message"`
	Issues  []SchemaIssue `json:"issues"`
}

func ToSchemaInvalidResponse(err *domain.SchemaInvalidError) SchemaInvalidResponse {
	issues := make([]SchemaIssue, len(err.Issues))
	for i, issue := range err.Issues {
		issues[i] = SchemaIssue{
			FieldIndex: issue.FieldIndex,
			Field:      issue.Field,
			Reason:     issue.Reason,
		}
	}
	return SchemaInvalidResponse{
		Message: domain.ErrSchemaInvalid.Error(),
		Issues:  issues,
	}
}
