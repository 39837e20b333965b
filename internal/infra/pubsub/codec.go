package pubsub

import (
	"encoding/json"
	"fmt"
	"reflect"
)

type Codec interface {
	Encode(value any) (data []byte, err error)
	Decode(data []byte) (value any, err error)
}

func newJSONCodec(prototype any) *JSONCodec {
	return &JSONCodec{prototype}
}

var _ Codec = &JSONCodec{}

type JSONCodec struct {
	prototype any
}

func (c *JSONCodec) Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling data: %w", err)
	}

	return data, nil
}

// Decode returns a value of the prototype type, not a pointer to it
func (c *JSONCodec) Decode(data []byte) (any, error) {
	pt := reflect.TypeOf(c.prototype)
	if pt == nil {
		var value any
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("unmarshaling data: %w", err)
		}
		return value, nil
	}

	instance := reflect.New(pt)
	if err := json.Unmarshal(data, instance.Interface()); err != nil {
		return nil, fmt.Errorf("unmarshaling data: %w", err)
	}

	return instance.Elem().Interface(), nil
}
