package avro

import (
	"fmt"
	"time"

	"entity-config-server/internal/entity_config/domain"
)

type AvroEntitySchemaSaved struct {
	SchemaID   string    `avro:"schema_id"`
	TenantID   string    `avro:"tenant_id"`
	EntityType string    `avro:"entity_type"`
	Version    int       `avro:"version"`
	FieldNames []string  `avro:"field_names"`
	SavedAt    time.Time `avro:"saved_at"`
}

func ToAvroEntitySchemaSaved(value any) (AvroEntitySchemaSaved, error) {
	var event domain.EntitySchemaSaved
	switch v := value.(type) {
	case domain.EntitySchemaSaved:
		event = v
	case *domain.EntitySchemaSaved:
		event = *v
	default:
		return AvroEntitySchemaSaved{}, fmt.Errorf("unsupported message type for Avro conversion: %T", value)
	}

	names := event.FieldNames
	if names == nil {
		names = []string{}
	}

	return AvroEntitySchemaSaved{
		SchemaID:   event.SchemaID,
		TenantID:   event.TenantID,
		EntityType: event.EntityType,
		Version:    event.Version,
		FieldNames: names,
		SavedAt:    event.SavedAt,
	}, nil
}

func (m AvroEntitySchemaSaved) ToDomain() domain.EntitySchemaSaved {
	return domain.EntitySchemaSaved{
		SchemaID:   m.SchemaID,
		TenantID:   m.TenantID,
		EntityType: m.EntityType,
		Version:    m.Version,
		FieldNames: m.FieldNames,
		SavedAt:    m.SavedAt,
	}
}
