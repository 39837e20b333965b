package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type ScalarKind uint8

const (
	ScalarText ScalarKind = iota
	ScalarNumber
)

// Scalar holds either a text or a numeric literal. Option values and rule
// parameters are scalars.
type Scalar struct {
	Kind   ScalarKind
	Text   string
	Number float64
}

func TextScalar(value string) Scalar {
	return Scalar{Kind: ScalarText, Text: value}
}

func NumberScalar(value float64) Scalar {
	return Scalar{Kind: ScalarNumber, Number: value}
}

func (s Scalar) IsNumber() bool {
	return s.Kind == ScalarNumber
}

func (s Scalar) IsBlank() bool {
	return s.Kind == ScalarText && s.Text == ""
}

func (s Scalar) String() string {
	if s.Kind == ScalarNumber {
		return strconv.FormatFloat(s.Number, 'f', -1, 64)
	}
	return s.Text
}

// Any returns the plain Go value used by the wire and storage encodings.
func (s Scalar) Any() any {
	if s.Kind == ScalarNumber {
		return s.Number
	}
	return s.Text
}

// ScalarFromAny converts a decoded JSON/msgpack value into a Scalar.
func ScalarFromAny(value any) (Scalar, error) {
	switch v := value.(type) {
	case nil:
		return TextScalar(""), nil
	case string:
		return TextScalar(v), nil
	case float64:
		return NumberScalar(v), nil
	case float32:
		return NumberScalar(float64(v)), nil
	case int:
		return NumberScalar(float64(v)), nil
	case int8:
		return NumberScalar(float64(v)), nil
	case int16:
		return NumberScalar(float64(v)), nil
	case int32:
		return NumberScalar(float64(v)), nil
	case int64:
		return NumberScalar(float64(v)), nil
	case uint:
		return NumberScalar(float64(v)), nil
	case uint8:
		return NumberScalar(float64(v)), nil
	case uint16:
		return NumberScalar(float64(v)), nil
	case uint32:
		return NumberScalar(float64(v)), nil
	case uint64:
		return NumberScalar(float64(v)), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Scalar{}, fmt.Errorf("parsing number %q: %w", v.String(), err)
		}
		return NumberScalar(f), nil
	case Scalar:
		return v, nil
	default:
		return Scalar{}, fmt.Errorf("unsupported scalar type %T", value)
	}
}
