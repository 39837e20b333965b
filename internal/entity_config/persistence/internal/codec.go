package internal

import (
	"fmt"

	"entity-config-server/internal/entity_config/domain"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeEntitySchema renders schema in the msgpack form kept in caches.
func EncodeEntitySchema(schema domain.EntitySchema) ([]byte, error) {
	return msgpack.Marshal(FromEntitySchema(schema))
}

func DecodeEntitySchema(value any) (domain.EntitySchema, error) {
	data, ok := value.([]byte)
	if !ok {
		return domain.EntitySchema{}, fmt.Errorf("unexpected cached value type %T", value)
	}

	var entity EntitySchema
	if err := msgpack.Unmarshal(data, &entity); err != nil {
		return domain.EntitySchema{}, fmt.Errorf("decoding cached schema: %w", err)
	}
	return entity.ToDomain(), nil
}
