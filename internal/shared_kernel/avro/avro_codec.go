package avro

import (
	"fmt"
	"reflect"

	"github.com/hamba/avro/v2"
)

// AvroCodec encodes the event types it knows a static Avro schema for
type AvroCodec struct {
	prototype any
	schemas   map[string]avro.Schema
}

const (
	entitySchemaSavedSchema = `{
		"type": "record",
		"name": "EntitySchemaSaved",
		"namespace": "entity_config",
		"fields": [
			{"name": "schema_id", "type": "string"},
			{"name": "tenant_id", "type": "string"},
			{"name": "entity_type", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "field_names", "type": {"type": "array", "items": "string"}},
			{"name": "saved_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`
)

var schemaNames = map[string]string{
	"EntitySchemaSaved":     "EntitySchemaSaved",
	"AvroEntitySchemaSaved": "EntitySchemaSaved",
}

func NewAvroCodec(prototype any) *AvroCodec {
	return &AvroCodec{
		prototype: prototype,
		schemas: map[string]avro.Schema{
			"EntitySchemaSaved": avro.MustParse(entitySchemaSavedSchema),
		},
	}
}

// Supports reports whether a static schema exists for the type of value
func Supports(value any) bool {
	_, ok := schemaNames[typeName(value)]
	return ok
}

func typeName(value any) string {
	t := reflect.TypeOf(value)
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func (c *AvroCodec) schemaFor(value any) (avro.Schema, error) {
	name, ok := schemaNames[typeName(value)]
	if !ok {
		return nil, fmt.Errorf("no Avro schema found for message type: %s", typeName(value))
	}
	return c.schemas[name], nil
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	avroValue, err := toAvroStruct(value)
	if err != nil {
		return nil, fmt.Errorf("converting to Avro struct: %w", err)
	}

	schema, err := c.schemaFor(value)
	if err != nil {
		return nil, fmt.Errorf("getting schema: %w", err)
	}

	data, err := avro.Marshal(schema, avroValue)
	if err != nil {
		return nil, fmt.Errorf("marshaling to Avro: %w", err)
	}

	return data, nil
}

// Decode returns the domain value matching the prototype the codec was
// built with.
func (c *AvroCodec) Decode(data []byte) (any, error) {
	schema, err := c.schemaFor(c.prototype)
	if err != nil {
		return nil, err
	}

	var message AvroEntitySchemaSaved
	if err := avro.Unmarshal(schema, data, &message); err != nil {
		return nil, fmt.Errorf("unmarshaling from Avro: %w", err)
	}

	if typeName(c.prototype) == "AvroEntitySchemaSaved" {
		return message, nil
	}
	return message.ToDomain(), nil
}

func toAvroStruct(value any) (any, error) {
	switch v := value.(type) {
	case AvroEntitySchemaSaved, *AvroEntitySchemaSaved:
		return v, nil
	default:
		return ToAvroEntitySchemaSaved(value)
	}
}
