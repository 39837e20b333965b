package domain

import "errors"

var (
	ErrUnknownRuleKind      = errors.New("unknown rule kind")
	ErrIncompatibleRuleKind = errors.New("rule kind not applicable to field type")
	ErrSchemaInvalid        = errors.New("schema invalid")
	ErrUnknownFieldType     = errors.New("unknown field type")
	ErrInvalidParam         = errors.New("invalid rule parameter")
	ErrDuplicatedRuleKind   = errors.New("duplicated rule kind")

	ErrFieldIndexOutOfRange      = errors.New("field index out of range")
	ErrOptionIndexOutOfRange     = errors.New("option index out of range")
	ErrValidationIndexOutOfRange = errors.New("validation index out of range")
	ErrFieldNotSelect            = errors.New("field is not select typed")

	ErrFieldNameRequired     = errors.New("field name is required")
	ErrDuplicatedFieldName   = errors.New("field name already used")
	ErrOptionValueRequired   = errors.New("option value is required")
	ErrDuplicatedOptionValue = errors.New("option value already used")

	ErrTenantIDRequired   = errors.New("tenant ID is required")
	ErrEntityTypeRequired = errors.New("entity type is required")
)
