package domain

import "time"

// EntitySchemaSaved is published after a schema replaced the previous
// version of its key.
type EntitySchemaSaved struct {
	SchemaID   string
	TenantID   string
	EntityType string
	Version    int
	FieldNames []string
	SavedAt    time.Time
}

func NewEntitySchemaSaved(schema EntitySchema) EntitySchemaSaved {
	names := make([]string, len(schema.Fields))
	for i, field := range schema.Fields {
		names[i] = field.Name.String()
	}
	return EntitySchemaSaved{
		SchemaID:   schema.ID.String(),
		TenantID:   schema.TenantID.String(),
		EntityType: schema.EntityType.String(),
		Version:    int(schema.Version),
		FieldNames: names,
		SavedAt:    schema.UpdatedAt,
	}
}
