package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

type ParamType string

const (
	ParamTypeString ParamType = "string"
	ParamTypeNumber ParamType = "number"
	ParamTypeSelect ParamType = "select"
)

type ParamSpec struct {
	Name    string
	Label   string
	Type    ParamType
	Options []string
	// Optional parameters take their Default when left out. The kind's
	// CheckParams decides when an empty value is acceptable.
	Optional bool
}

// Default is the value a parameter takes when a rule is first attached:
// the first option of a select parameter, zero or empty otherwise.
func (p ParamSpec) Default() Scalar {
	switch p.Type {
	case ParamTypeSelect:
		if len(p.Options) > 0 {
			return TextScalar(p.Options[0])
		}
		return TextScalar("")
	case ParamTypeNumber:
		return NumberScalar(0)
	default:
		return TextScalar("")
	}
}

// Coerce checks value against the parameter type and returns it in its
// canonical variant. Numeric text is accepted for number parameters.
func (p ParamSpec) Coerce(value Scalar) (Scalar, error) {
	switch p.Type {
	case ParamTypeNumber:
		if value.IsNumber() {
			return value, nil
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(value.Text), 64)
		if err != nil {
			return Scalar{}, fmt.Errorf("%w: %s must be a number", ErrInvalidParam, p.Name)
		}
		return NumberScalar(number), nil
	case ParamTypeSelect:
		if value.IsNumber() || !slices.Contains(p.Options, value.Text) {
			return Scalar{}, fmt.Errorf("%w: %s must be one of %s", ErrInvalidParam, p.Name, strings.Join(p.Options, ", "))
		}
		return value, nil
	case ParamTypeString:
		if value.IsNumber() {
			return Scalar{}, fmt.Errorf("%w: %s must be a string", ErrInvalidParam, p.Name)
		}
		return value, nil
	default:
		return Scalar{}, fmt.Errorf("%w: %s has unknown type %q", ErrInvalidParam, p.Name, p.Type)
	}
}

type RuleParams map[string]Scalar

func (p RuleParams) Number(name string) float64 {
	value := p[name]
	if value.IsNumber() {
		return value.Number
	}
	number, _ := strconv.ParseFloat(strings.TrimSpace(value.Text), 64)
	return number
}

func (p RuleParams) Text(name string) string {
	return p[name].String()
}

func (p RuleParams) Clone() RuleParams {
	result := make(RuleParams, len(p))
	for name, value := range p {
		result[name] = value
	}
	return result
}

// Operand is a data bag value already coerced to the comparison type of its
// field.
type Operand struct {
	Text     string
	Number   float64
	Time     time.Time
	DateOnly bool
}

type Subject struct {
	Field FieldDefinition
	Value Operand
	At    time.Time
}

type Comparator func(subject Subject, params RuleParams) (bool, error)

type RuleKind struct {
	Key             string
	Label           string
	ApplicableTypes []FieldType
	Params          []ParamSpec
	Compare         Comparator
	// CheckParams validates relations between parameters after each one was
	// coerced on its own. Optional.
	CheckParams func(RuleParams) error
}

func (k RuleKind) AppliesTo(fieldType FieldType) bool {
	return slices.Contains(k.ApplicableTypes, fieldType)
}

func (k RuleKind) DefaultParams() RuleParams {
	result := make(RuleParams, len(k.Params))
	for _, param := range k.Params {
		result[param.Name] = param.Default()
	}
	return result
}

// ResolveParams requires params to carry exactly the declared parameter
// names and returns a normalised copy.
func (k RuleKind) ResolveParams(params RuleParams) (RuleParams, error) {
	result := make(RuleParams, len(k.Params))
	for _, param := range k.Params {
		value, ok := params[param.Name]
		if !ok && param.Optional {
			result[param.Name] = param.Default()
			continue
		}
		if !ok {
			return nil, fmt.Errorf("%w: missing parameter %q for %s", ErrInvalidParam, param.Name, k.Key)
		}
		coerced, err := param.Coerce(value)
		if err != nil {
			return nil, err
		}
		result[param.Name] = coerced
	}

	for name := range params {
		if _, ok := result[name]; !ok {
			return nil, fmt.Errorf("%w: unexpected parameter %q for %s", ErrInvalidParam, name, k.Key)
		}
	}

	if k.CheckParams != nil {
		if err := k.CheckParams(result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// RuleCatalog is the read-only registry of rule kinds. Declaration order is
// part of its contract: List, ApplicableTo and the default kind picked for a
// new rule all follow it.
type RuleCatalog struct {
	kinds []RuleKind
	index map[string]int
}

func NewRuleCatalog(kinds ...RuleKind) (*RuleCatalog, error) {
	catalog := &RuleCatalog{
		kinds: make([]RuleKind, 0, len(kinds)),
		index: make(map[string]int, len(kinds)),
	}

	for _, kind := range kinds {
		if kind.Key == "" {
			return nil, fmt.Errorf("rule kind key is required")
		}
		if _, exists := catalog.index[kind.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatedRuleKind, kind.Key)
		}
		if kind.Compare == nil {
			return nil, fmt.Errorf("rule kind %s has no comparator", kind.Key)
		}
		for _, param := range kind.Params {
			if param.Type == ParamTypeSelect && len(param.Options) == 0 {
				return nil, fmt.Errorf("rule kind %s: select parameter %s has no options", kind.Key, param.Name)
			}
		}

		catalog.index[kind.Key] = len(catalog.kinds)
		catalog.kinds = append(catalog.kinds, kind)
	}

	return catalog, nil
}

func (c *RuleCatalog) List() []RuleKind {
	return slices.Clone(c.kinds)
}

func (c *RuleCatalog) Get(key string) (RuleKind, error) {
	i, ok := c.index[key]
	if !ok {
		return RuleKind{}, fmt.Errorf("%w: %s", ErrUnknownRuleKind, key)
	}
	return c.kinds[i], nil
}

func (c *RuleCatalog) ApplicableTo(fieldType FieldType) []RuleKind {
	result := make([]RuleKind, 0)
	for _, kind := range c.kinds {
		if kind.AppliesTo(fieldType) {
			result = append(result, kind)
		}
	}
	return result
}

func (c *RuleCatalog) firstApplicableTo(fieldType FieldType) (RuleKind, bool) {
	for _, kind := range c.kinds {
		if kind.AppliesTo(fieldType) {
			return kind, true
		}
	}
	return RuleKind{}, false
}
