package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/persistence/internal"
	"entity-config-server/internal/entity_config/usecases"
	"entity-config-server/internal/infra/pubsub"
	"entity-config-server/internal/infra/sql"
	"entity-config-server/internal/infra/utils"
	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

const EntitySchemasTopic pubsub.Topic = "entity_schemas"

func NewEntitySchemaRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM, catalog *domain.RuleCatalog) (*SimpleEntitySchemaRepository, error) {
	publisher, err := publisherFactory.New(EntitySchemasTopic, domain.EntitySchemaSaved{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.EntitySchema{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleEntitySchemaRepository{
		publisher: publisher,
		orm:       orm,
		catalog:   catalog,
	}, nil
}

var _ usecases.EntitySchemaRepository = (*SimpleEntitySchemaRepository)(nil)

type SimpleEntitySchemaRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
	catalog   *domain.RuleCatalog
	locks     utils.KeyedMutex
}

func (r *SimpleEntitySchemaRepository) Get(ctx context.Context, tenantID shareddomain.ID, entityType domain.EntityType) (domain.EntitySchema, error) {
	var entity internal.EntitySchema
	err := r.orm.
		WithContext(ctx).
		Where("tenant_id = ? AND entity_type = ?", tenantID.String(), entityType.String()).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.EntitySchema{}, usecases.ErrEntitySchemaNotFound
	}

	if err != nil {
		return domain.EntitySchema{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

// Put replaces the schema of the key in one transaction. The stored row keeps
// its id and creation time; the version grows by one on every replace.
func (r *SimpleEntitySchemaRepository) Put(ctx context.Context, schema domain.EntitySchema) (domain.EntitySchema, error) {
	if err := r.catalog.CheckSchema(schema); err != nil {
		return domain.EntitySchema{}, err
	}

	defer r.locks.Lock(schema.Key().String())()

	var stored domain.EntitySchema
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var existing internal.EntitySchema
		err := tx.
			Where("tenant_id = ? AND entity_type = ?", schema.TenantID.String(), schema.EntityType.String()).
			First(&existing).
			Error()

		next := schema.Clone()
		now := time.Now()
		switch {
		case errors.Is(err, sql.ErrRecordNotFound):
			if next.ID == "" {
				next.ID = shareddomain.ID(utils.GenerateUUID())
			}
			if next.CreatedAt.IsZero() {
				next.CreatedAt = now
			}
			next.Version = 1
		case err != nil:
			return fmt.Errorf("database query: %w", err)
		default:
			next.ID = shareddomain.ID(existing.ID)
			next.CreatedAt = existing.CreatedAt
			next.Version = shareddomain.Version(existing.Version + 1)
		}
		next.UpdatedAt = now

		entity := internal.FromEntitySchema(next)
		if err := tx.Save(&entity).Error(); err != nil {
			return fmt.Errorf("saving entity schema: %w", err)
		}

		stored = next
		return nil
	})
	if err != nil {
		return domain.EntitySchema{}, err
	}

	event := domain.NewEntitySchemaSaved(stored)
	if err := r.publisher.Publish(ctx, pubsub.Key(stored.Key().String()), event); err != nil {
		slog.Error("publishing entity schema saved",
			slog.String("key", stored.Key().String()),
			slog.String("error", err.Error()))
	}

	return stored, nil
}

func (r *SimpleEntitySchemaRepository) FindByTenant(ctx context.Context, tenantID shareddomain.ID, pagination usecases.Pagination) ([]domain.EntitySchema, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.EntitySchema{}).
		Where("tenant_id = ?", tenantID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.EntitySchema
	err = r.orm.
		WithContext(ctx).
		Where("tenant_id = ?", tenantID.String()).
		Order("entity_type").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.EntitySchema, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
