package usecases

import (
	"context"
	"errors"

	"entity-config-server/internal/entity_config/domain"
	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/entity_config/usecases/repository_port_mock.go -package=usecases -mock_names=EntitySchemaRepository=MockEntitySchemaRepository,DraftRepository=MockDraftRepository

var (
	ErrEntitySchemaNotFound = errors.New("entity schema not found")
	ErrDraftNotFound        = errors.New("draft not found")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type EntitySchemaRepository interface {
	Get(context.Context, shareddomain.ID, domain.EntityType) (domain.EntitySchema, error)
	// Put replaces the schema stored under the same key and returns the
	// stored version. Invalid schemas are rejected without writing.
	Put(context.Context, domain.EntitySchema) (domain.EntitySchema, error)
	FindByTenant(context.Context, shareddomain.ID, Pagination) ([]domain.EntitySchema, int, error)
}

type DraftRepository interface {
	Get(context.Context, domain.SchemaKey) (domain.EntitySchema, error)
	Save(context.Context, domain.EntitySchema) error
	Delete(context.Context, domain.SchemaKey) error
}
