package internal

import "entity-config-server/internal/entity_config/validation"

type ValidateRecordRequest struct {
	Data map[string]any `json:"data"`
}

type ValidateRecordResponse struct {
	Valid      bool                        `json:"valid"`
	Violations []validation.FieldViolation `json:"violations"`
}

func ToValidateRecordResponse(violations []validation.FieldViolation) ValidateRecordResponse {
	if violations == nil {
		violations = []validation.FieldViolation{}
	}
	return ValidateRecordResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
