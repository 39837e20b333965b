package internal

import (
	"fmt"

	"entity-config-server/internal/entity_config/domain"
)

type FieldPatchRequest struct {
	Name     *string `json:"name"`
	Label    *string `json:"label"`
	Type     *string `json:"type"`
	Required *bool   `json:"required"`
}

func (r FieldPatchRequest) ToDomain() domain.FieldPatch {
	patch := domain.FieldPatch{
		Name:     r.Name,
		Label:    r.Label,
		Required: r.Required,
	}
	if r.Type != nil {
		fieldType := domain.FieldType(*r.Type)
		patch.Type = &fieldType
	}
	return patch
}

type OptionPatchRequest struct {
	Label *string `json:"label"`
	Value *any    `json:"value"`
}

func (r OptionPatchRequest) ToDomain() (domain.OptionPatch, error) {
	patch := domain.OptionPatch{Label: r.Label}
	if r.Value != nil {
		value, err := domain.ScalarFromAny(*r.Value)
		if err != nil {
			return domain.OptionPatch{}, fmt.Errorf("option value: %w", err)
		}
		patch.Value = &value
	}
	return patch, nil
}

type ValidationActionRequest struct {
	Action string `json:"action"`
}

type ValidationPatchRequest struct {
	Params       map[string]any `json:"params"`
	ErrorMessage *string        `json:"error_message"`
}

func (r ValidationPatchRequest) ToDomain() (domain.ValidationPatch, error) {
	patch := domain.ValidationPatch{ErrorMessage: r.ErrorMessage}
	if r.Params != nil {
		params, err := ToRuleParams(r.Params)
		if err != nil {
			return domain.ValidationPatch{}, err
		}
		patch.Params = params
	}
	return patch, nil
}
