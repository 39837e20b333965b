package domain

import (
	"time"

	"entity-config-server/internal/infra/utils"
	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

type EntityType string

func (t EntityType) String() string {
	return string(t)
}

// EntitySchema is the current field layout of one entity type for one
// tenant. (TenantID, EntityType) identifies it.
type EntitySchema struct {
	ID         shareddomain.ID
	TenantID   shareddomain.ID
	EntityType EntityType
	Fields     []FieldDefinition
	Version    shareddomain.Version
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s EntitySchema) Key() SchemaKey {
	return SchemaKey{TenantID: s.TenantID, EntityType: s.EntityType}
}

func (s EntitySchema) Clone() EntitySchema {
	result := s
	result.Fields = make([]FieldDefinition, len(s.Fields))
	for i, field := range s.Fields {
		result.Fields[i] = field.Clone()
	}
	return result
}

func (s EntitySchema) FieldByName(name shareddomain.Name) (FieldDefinition, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDefinition{}, false
}

type SchemaKey struct {
	TenantID   shareddomain.ID
	EntityType EntityType
}

func (k SchemaKey) String() string {
	return k.TenantID.String() + "/" + k.EntityType.String()
}

func NewEntitySchemaBuilder() *entitySchemaBuilder {
	return &entitySchemaBuilder{}
}

type entitySchemaBuilder struct {
	actions []entitySchemaHandler
}

type entitySchemaHandler func(s *EntitySchema) error

func (b *entitySchemaBuilder) WithTenantID(value shareddomain.ID) *entitySchemaBuilder {
	b.actions = append(b.actions, func(s *EntitySchema) error {
		if value == "" {
			return ErrTenantIDRequired
		}
		s.TenantID = value
		return nil
	})
	return b
}

func (b *entitySchemaBuilder) WithEntityType(value string) *entitySchemaBuilder {
	b.actions = append(b.actions, func(s *EntitySchema) error {
		if value == "" {
			return ErrEntityTypeRequired
		}
		s.EntityType = EntityType(value)
		return nil
	})
	return b
}

func (b *entitySchemaBuilder) WithFields(value []FieldDefinition) *entitySchemaBuilder {
	b.actions = append(b.actions, func(s *EntitySchema) error {
		s.Fields = make([]FieldDefinition, len(value))
		for i, field := range value {
			s.Fields[i] = field.Clone()
		}
		return nil
	})
	return b
}

func (b *entitySchemaBuilder) Build() (EntitySchema, error) {
	now := time.Now()
	result := EntitySchema{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Fields:    make([]FieldDefinition, 0),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return EntitySchema{}, err
		}
	}

	if result.TenantID == "" {
		return EntitySchema{}, ErrTenantIDRequired
	}
	if result.EntityType == "" {
		return EntitySchema{}, ErrEntityTypeRequired
	}

	return result, nil
}
