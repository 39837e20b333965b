package internal

import "entity-config-server/internal/entity_config/domain"

type ParamSpec struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Optional bool     `json:"optional,omitempty"`
}

type RuleKindResponse struct {
	Key             string      `json:"key"`
	Label           string      `json:"label"`
	ApplicableTypes []string    `json:"applicable_types"`
	Params          []ParamSpec `json:"params"`
}

type RuleKindListResponse struct {
	Data []RuleKindResponse `json:"data"`
}

func ToRuleKindListResponse(kinds []domain.RuleKind) RuleKindListResponse {
	data := make([]RuleKindResponse, len(kinds))
	for i, kind := range kinds {
		types := make([]string, len(kind.ApplicableTypes))
		for j, t := range kind.ApplicableTypes {
			types[j] = t.String()
		}
		params := make([]ParamSpec, len(kind.Params))
		for j, param := range kind.Params {
			params[j] = ParamSpec{
				Name:     param.Name,
				Label:    param.Label,
				Type:     string(param.Type),
				Options:  param.Options,
				Optional: param.Optional,
			}
		}
		data[i] = RuleKindResponse{
			Key:             kind.Key,
			Label:           kind.Label,
			ApplicableTypes: types,
			Params:          params,
		}
	}
	return RuleKindListResponse{Data: data}
}
