package domain

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	OperatorGreaterThan        = "gt"
	OperatorLessThan           = "lt"
	OperatorGreaterThanOrEqual = "gte"
	OperatorLessThanOrEqual    = "lte"
	OperatorEqual              = "eq"
	OperatorNotEqual           = "neq"

	DateModeNow    = "now"
	DateModeToday  = "today"
	DateModeCustom = "custom"

	RuleKindDateComparison = "date_comparison"
	RuleKindMinLength      = "min_length"
	RuleKindMaxLength      = "max_length"
	RuleKindPattern        = "pattern"
	RuleKindInOptions      = "in_options"
)

var (
	comparisonOperators = []string{
		OperatorGreaterThan,
		OperatorLessThan,
		OperatorGreaterThanOrEqual,
		OperatorLessThanOrEqual,
		OperatorEqual,
		OperatorNotEqual,
	}
	dateModes    = []string{DateModeNow, DateModeToday, DateModeCustom}
	numericTypes = []FieldType{FieldTypeInteger, FieldTypeFloat}
	textTypes    = []FieldType{FieldTypeString, FieldTypeEmail, FieldTypePhone, FieldTypeURL}
)

// DefaultRuleCatalog returns the built-in rule kinds. Their order decides
// which kind a freshly added rule gets.
func DefaultRuleCatalog() *RuleCatalog {
	catalog, err := NewRuleCatalog(
		numericComparison(OperatorGreaterThan, "Greater than"),
		numericComparison(OperatorLessThan, "Less than"),
		numericComparison(OperatorGreaterThanOrEqual, "Greater than or equal to"),
		numericComparison(OperatorLessThanOrEqual, "Less than or equal to"),
		numericComparison(OperatorEqual, "Equal to"),
		numericComparison(OperatorNotEqual, "Different from"),
		dateComparison(),
		lengthBound(RuleKindMinLength, "Minimum length", func(length, bound int) bool { return length >= bound }),
		lengthBound(RuleKindMaxLength, "Maximum length", func(length, bound int) bool { return length <= bound }),
		patternMatch(),
		inOptions(),
	)
	if err != nil {
		panic(fmt.Errorf("building default rule catalog: %w", err))
	}
	return catalog
}

func numericComparison(operator, label string) RuleKind {
	return RuleKind{
		Key:             operator,
		Label:           label,
		ApplicableTypes: numericTypes,
		Params: []ParamSpec{
			{Name: "value", Label: "Threshold", Type: ParamTypeNumber},
		},
		Compare: func(subject Subject, params RuleParams) (bool, error) {
			return satisfies(operator, cmp.Compare(subject.Value.Number, params.Number("value")))
		},
	}
}

func dateComparison() RuleKind {
	return RuleKind{
		Key:             RuleKindDateComparison,
		Label:           "Relative date",
		ApplicableTypes: []FieldType{FieldTypeDate, FieldTypeDatetime},
		Params: []ParamSpec{
			{Name: "operator", Label: "Operator", Type: ParamTypeSelect, Options: comparisonOperators},
			{Name: "mode", Label: "Reference date", Type: ParamTypeSelect, Options: dateModes},
			{Name: "value", Label: "Custom date", Type: ParamTypeString, Optional: true},
		},
		CheckParams: func(params RuleParams) error {
			if params.Text("mode") != DateModeCustom {
				return nil
			}
			if _, _, err := ParseTemporal(params.Text("value"), time.UTC); err != nil {
				return fmt.Errorf("%w: value must be a date or date-time when mode is custom", ErrInvalidParam)
			}
			return nil
		},
		Compare: func(subject Subject, params RuleParams) (bool, error) {
			loc := subject.At.Location()
			reference := subject.At
			dateOnly := subject.Value.DateOnly || subject.Field.Type == FieldTypeDate

			switch params.Text("mode") {
			case DateModeNow:
			case DateModeToday:
				dateOnly = true
			case DateModeCustom:
				literal, literalDateOnly, err := ParseTemporal(params.Text("value"), loc)
				if err != nil {
					return false, err
				}
				reference = literal
				dateOnly = dateOnly || literalDateOnly
			default:
				return false, fmt.Errorf("%w: unknown mode %q", ErrInvalidParam, params.Text("mode"))
			}

			if dateOnly {
				return satisfies(params.Text("operator"), compareDates(subject.Value.Time.In(loc), reference.In(loc)))
			}
			return satisfies(params.Text("operator"), subject.Value.Time.Compare(reference))
		},
	}
}

func lengthBound(key, label string, within func(length, bound int) bool) RuleKind {
	return RuleKind{
		Key:             key,
		Label:           label,
		ApplicableTypes: textTypes,
		Params: []ParamSpec{
			{Name: "length", Label: "Length", Type: ParamTypeNumber},
		},
		CheckParams: func(params RuleParams) error {
			length := params.Number("length")
			if length < 0 || length != math.Trunc(length) {
				return fmt.Errorf("%w: length must be a non-negative whole number", ErrInvalidParam)
			}
			return nil
		},
		Compare: func(subject Subject, params RuleParams) (bool, error) {
			return within(utf8.RuneCountInString(subject.Value.Text), int(params.Number("length"))), nil
		},
	}
}

func patternMatch() RuleKind {
	return RuleKind{
		Key:             RuleKindPattern,
		Label:           "Regular expression",
		ApplicableTypes: textTypes,
		Params: []ParamSpec{
			{Name: "pattern", Label: "Pattern", Type: ParamTypeString},
		},
		CheckParams: func(params RuleParams) error {
			if _, err := regexp.Compile(params.Text("pattern")); err != nil {
				return fmt.Errorf("%w: pattern: %s", ErrInvalidParam, err.Error())
			}
			return nil
		},
		Compare: func(subject Subject, params RuleParams) (bool, error) {
			return regexp.MatchString(params.Text("pattern"), subject.Value.Text)
		},
	}
}

func inOptions() RuleKind {
	return RuleKind{
		Key:             RuleKindInOptions,
		Label:           "Value in option set",
		ApplicableTypes: []FieldType{FieldTypeSelect},
		Params:          []ParamSpec{},
		Compare: func(subject Subject, _ RuleParams) (bool, error) {
			for _, option := range subject.Field.Options {
				if option.Value.String() == subject.Value.Text {
					return true, nil
				}
			}
			return false, nil
		},
	}
}

func satisfies(operator string, comparison int) (bool, error) {
	switch operator {
	case OperatorGreaterThan:
		return comparison > 0, nil
	case OperatorLessThan:
		return comparison < 0, nil
	case OperatorGreaterThanOrEqual:
		return comparison >= 0, nil
	case OperatorLessThanOrEqual:
		return comparison <= 0, nil
	case OperatorEqual:
		return comparison == 0, nil
	case OperatorNotEqual:
		return comparison != 0, nil
	default:
		return false, fmt.Errorf("%w: unknown operator %q", ErrInvalidParam, operator)
	}
}

func compareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if c := cmp.Compare(ay, by); c != 0 {
		return c
	}
	if c := cmp.Compare(am, bm); c != 0 {
		return c
	}
	return cmp.Compare(ad, bd)
}

var (
	dateLayout      = "2006-01-02"
	localTimeLayout = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
)

// ParseTemporal parses an ISO 8601 date or date-time. Values without an
// offset are read in loc. dateOnly reports whether value had no time part.
func ParseTemporal(value string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, fmt.Errorf("empty date")
	}

	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, false, nil
	}
	for _, layout := range localTimeLayout {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, false, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("invalid date %q", value)
}
