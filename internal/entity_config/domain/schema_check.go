package domain

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaIssue is one invariant violation found in a schema. FieldIndex is -1
// for issues that concern the schema itself.
type SchemaIssue struct {
	FieldIndex int
	Field      string
	Reason     string
	Err        error
}

type SchemaInvalidError struct {
	Issues []SchemaIssue
}

func (e *SchemaInvalidError) Error() string {
	reasons := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		if issue.Field != "" {
			reasons[i] = issue.Field + ": " + issue.Reason
			continue
		}
		reasons[i] = issue.Reason
	}
	return ErrSchemaInvalid.Error() + ": " + strings.Join(reasons, "; ")
}

func (e *SchemaInvalidError) Unwrap() []error {
	result := []error{ErrSchemaInvalid}
	for _, issue := range e.Issues {
		if issue.Err != nil {
			result = append(result, issue.Err)
		}
	}
	return result
}

// CheckSchema verifies every structural invariant of schema against the
// catalog. It returns nil or a *SchemaInvalidError listing all issues.
func (c *RuleCatalog) CheckSchema(schema EntitySchema) error {
	issues := make([]SchemaIssue, 0)
	report := func(index int, field string, err error) {
		issues = append(issues, SchemaIssue{FieldIndex: index, Field: field, Reason: err.Error(), Err: err})
	}

	if schema.TenantID == "" {
		report(-1, "", ErrTenantIDRequired)
	}
	if schema.EntityType == "" {
		report(-1, "", ErrEntityTypeRequired)
	}

	seen := make(map[string]int, len(schema.Fields))
	for i, field := range schema.Fields {
		name := strings.TrimSpace(field.Name.String())
		if name == "" {
			report(i, "", fmt.Errorf("field #%d: %w", i+1, ErrFieldNameRequired))
		} else if first, dup := seen[name]; dup {
			report(i, name, fmt.Errorf("%w by field #%d", ErrDuplicatedFieldName, first+1))
		} else {
			seen[name] = i
		}

		if !field.Type.IsValid() {
			report(i, name, fmt.Errorf("%w: %q", ErrUnknownFieldType, field.Type))
			continue
		}

		for _, err := range checkOptions(field) {
			report(i, name, err)
		}

		for j, rule := range field.Validations {
			if err := c.checkRule(field.Type, rule); err != nil {
				report(i, name, fmt.Errorf("validation #%d: %w", j+1, err))
			}
		}
	}

	if len(issues) > 0 {
		return &SchemaInvalidError{Issues: issues}
	}
	return nil
}

func checkOptions(field FieldDefinition) []error {
	if field.Type != FieldTypeSelect {
		if len(field.Options) > 0 {
			return []error{fmt.Errorf("options are only allowed on select fields")}
		}
		return nil
	}

	if len(field.Options) == 0 {
		return []error{fmt.Errorf("select fields need at least one option")}
	}

	result := make([]error, 0)
	values := make(map[string]struct{}, len(field.Options))
	for i, option := range field.Options {
		value := strings.TrimSpace(option.Value.String())
		if value == "" {
			result = append(result, fmt.Errorf("option #%d: %w", i+1, ErrOptionValueRequired))
			continue
		}
		if _, dup := values[value]; dup {
			result = append(result, fmt.Errorf("option #%d: %w: %q", i+1, ErrDuplicatedOptionValue, value))
			continue
		}
		values[value] = struct{}{}
	}
	return result
}

func (c *RuleCatalog) checkRule(fieldType FieldType, rule ValidationRule) error {
	kind, err := c.Get(rule.Action)
	if err != nil {
		return err
	}
	if !kind.AppliesTo(fieldType) {
		return fmt.Errorf("%w: %s on %s", ErrIncompatibleRuleKind, kind.Key, fieldType)
	}
	if _, err := kind.ResolveParams(rule.Params); err != nil {
		return err
	}
	return nil
}

// IsSchemaInvalid extracts the issue list from err when it carries one.
func IsSchemaInvalid(err error) (*SchemaInvalidError, bool) {
	var invalid *SchemaInvalidError
	if errors.As(err, &invalid) {
		return invalid, true
	}
	return nil, false
}
