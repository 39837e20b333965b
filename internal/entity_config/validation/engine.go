package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"entity-config-server/internal/entity_config/domain"
)

// DataBag is a submitted record, keyed by field name.
type DataBag map[string]any

type FieldViolation struct {
	Field   string `json:"field"`
	Action  string `json:"action,omitempty"`
	Message string `json:"message"`
}

var (
	errNotANumber = errors.New("not a number")
	errNotADate   = errors.New("not a date")
)

// Engine checks data bags against entity schemas. It keeps no state between
// calls and is safe for concurrent use.
type Engine struct {
	catalog *domain.RuleCatalog
}

func NewEngine(catalog *domain.RuleCatalog) *Engine {
	return &Engine{catalog: catalog}
}

// Validate returns every violation of bag against schema, in field order and
// then rule order. at is the instant relative date rules are evaluated
// against; its location is used for values that carry no offset.
func (e *Engine) Validate(schema domain.EntitySchema, bag DataBag, at time.Time) []FieldViolation {
	violations := make([]FieldViolation, 0)
	for _, field := range schema.Fields {
		violations = append(violations, e.validateField(field, bag, at)...)
	}
	return violations
}

func (e *Engine) validateField(field domain.FieldDefinition, bag DataBag, at time.Time) []FieldViolation {
	name := field.Name.String()
	label := field.DisplayLabel()

	value, present := bag[name]
	if !present || isEmpty(value) {
		if field.Required {
			return []FieldViolation{{Field: name, Message: label + " is required"}}
		}
		return nil
	}

	operand, err := coerce(field.Type, value, at.Location())
	switch {
	case errors.Is(err, errNotANumber):
		return []FieldViolation{{Field: name, Message: label + " must be a valid number"}}
	case errors.Is(err, errNotADate):
		return []FieldViolation{{Field: name, Message: label + " must be a valid date"}}
	}

	result := make([]FieldViolation, 0)
	subject := domain.Subject{Field: field, Value: operand, At: at}
	for _, rule := range field.Validations {
		if e.passes(subject, rule) {
			continue
		}
		message := rule.ErrorMessage
		if message == "" {
			message = fmt.Sprintf("%s failed %s", label, rule.Action)
		}
		result = append(result, FieldViolation{Field: name, Action: rule.Action, Message: message})
	}
	return result
}

// passes reports whether subject satisfies rule. A rule that cannot be
// evaluated counts as failed.
func (e *Engine) passes(subject domain.Subject, rule domain.ValidationRule) bool {
	kind, err := e.catalog.Get(rule.Action)
	if err != nil || !kind.AppliesTo(subject.Field.Type) {
		return false
	}
	params, err := kind.ResolveParams(rule.Params)
	if err != nil {
		return false
	}
	ok, err := kind.Compare(subject, params)
	return err == nil && ok
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

func coerce(fieldType domain.FieldType, value any, loc *time.Location) (domain.Operand, error) {
	switch {
	case fieldType.IsNumeric():
		number, err := toNumber(value)
		if err != nil {
			return domain.Operand{}, err
		}
		if fieldType == domain.FieldTypeInteger && number != math.Trunc(number) {
			return domain.Operand{}, errNotANumber
		}
		return domain.Operand{Number: number, Text: strconv.FormatFloat(number, 'f', -1, 64)}, nil
	case fieldType.IsTemporal():
		t, dateOnly, err := toTime(value, loc)
		if err != nil {
			return domain.Operand{}, err
		}
		return domain.Operand{Time: t, DateOnly: dateOnly, Text: fmt.Sprint(value)}, nil
	default:
		return domain.Operand{Text: toText(value)}, nil
	}
}

func toNumber(value any) (float64, error) {
	var number float64
	switch v := value.(type) {
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, errNotANumber
		}
		number = parsed
	case bool:
		return 0, errNotANumber
	default:
		scalar, err := domain.ScalarFromAny(v)
		if err != nil || !scalar.IsNumber() {
			return 0, errNotANumber
		}
		number = scalar.Number
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, errNotANumber
	}
	return number, nil
}

func toTime(value any, loc *time.Location) (time.Time, bool, error) {
	switch v := value.(type) {
	case time.Time:
		return v, false, nil
	case string:
		t, dateOnly, err := domain.ParseTemporal(v, loc)
		if err != nil {
			return time.Time{}, false, errNotADate
		}
		return t, dateOnly, nil
	default:
		return time.Time{}, false, errNotADate
	}
}

func toText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	}
	if scalar, err := domain.ScalarFromAny(value); err == nil {
		return scalar.String()
	}
	return fmt.Sprint(value)
}
