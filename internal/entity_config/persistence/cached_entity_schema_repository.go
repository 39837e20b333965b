package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/persistence/internal"
	"entity-config-server/internal/entity_config/usecases"
	"entity-config-server/internal/infra/cache"
	"entity-config-server/internal/infra/pubsub"
	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

const schemaKeyPrefix = "entity_schema:"

// CachedEntitySchemaRepository serves reads from the cache layer and falls
// back to the wrapped repository. Writes go through and refresh the key.
//
// The highest version seen per key is kept so that a load started before a
// write cannot leave an older schema in the cache.
type CachedEntitySchemaRepository struct {
	repository usecases.EntitySchemaRepository
	cache      cache.Cache
	ttl        time.Duration

	mu       sync.Mutex
	versions map[string]shareddomain.Version
}

var _ usecases.EntitySchemaRepository = (*CachedEntitySchemaRepository)(nil)

func NewCachedEntitySchemaRepository(repository usecases.EntitySchemaRepository, c cache.Cache, ttl time.Duration) *CachedEntitySchemaRepository {
	return &CachedEntitySchemaRepository{
		repository: repository,
		cache:      c,
		ttl:        ttl,
		versions:   make(map[string]shareddomain.Version),
	}
}

func (r *CachedEntitySchemaRepository) Get(ctx context.Context, tenantID shareddomain.ID, entityType domain.EntityType) (domain.EntitySchema, error) {
	key := schemaCacheKey(domain.SchemaKey{TenantID: tenantID, EntityType: entityType})

	value, err := r.cache.GetOrSet(ctx, key, r.ttl, func() (any, error) {
		schema, err := r.repository.Get(ctx, tenantID, entityType)
		if err != nil {
			return nil, err
		}
		return internal.EncodeEntitySchema(schema)
	})
	if err != nil {
		return domain.EntitySchema{}, err
	}

	schema, err := internal.DecodeEntitySchema(value)
	if err != nil {
		slog.Warn("dropping unreadable cached schema",
			slog.String("cache_key", key),
			slog.String("error", err.Error()))
		r.cache.Delete(ctx, key)
		return r.repository.Get(ctx, tenantID, entityType)
	}

	if latest := r.latestVersion(key); schema.Version < latest {
		slog.Debug("reloading stale cached schema",
			slog.String("cache_key", key),
			slog.Int("cached_version", int(schema.Version)),
			slog.Int("latest_version", int(latest)))
		r.cache.Delete(ctx, key)
		return r.reload(ctx, key, tenantID, entityType)
	}

	return schema, nil
}

func (r *CachedEntitySchemaRepository) Put(ctx context.Context, schema domain.EntitySchema) (domain.EntitySchema, error) {
	stored, err := r.repository.Put(ctx, schema)
	if err != nil {
		return domain.EntitySchema{}, err
	}

	key := schemaCacheKey(stored.Key())
	r.observeVersion(key, stored.Version)
	r.store(ctx, key, stored)
	return stored, nil
}

func (r *CachedEntitySchemaRepository) reload(ctx context.Context, key string, tenantID shareddomain.ID, entityType domain.EntityType) (domain.EntitySchema, error) {
	schema, err := r.repository.Get(ctx, tenantID, entityType)
	if err != nil {
		return domain.EntitySchema{}, err
	}
	if schema.Version >= r.latestVersion(key) {
		r.store(ctx, key, schema)
	}
	return schema, nil
}

func (r *CachedEntitySchemaRepository) store(ctx context.Context, key string, schema domain.EntitySchema) {
	data, err := internal.EncodeEntitySchema(schema)
	if err != nil {
		slog.Warn("evicting schema that cannot be cached",
			slog.String("cache_key", key),
			slog.String("error", err.Error()))
		r.cache.Delete(ctx, key)
		return
	}
	r.cache.Set(ctx, key, data, r.ttl)
}

func (r *CachedEntitySchemaRepository) observeVersion(key string, version shareddomain.Version) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if version > r.versions[key] {
		r.versions[key] = version
	}
}

func (r *CachedEntitySchemaRepository) latestVersion(key string) shareddomain.Version {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.versions[key]
}

func (r *CachedEntitySchemaRepository) FindByTenant(ctx context.Context, tenantID shareddomain.ID, pagination usecases.Pagination) ([]domain.EntitySchema, int, error) {
	return r.repository.FindByTenant(ctx, tenantID, pagination)
}

func (r *CachedEntitySchemaRepository) Invalidate(ctx context.Context, key domain.SchemaKey) {
	r.cache.Delete(ctx, schemaCacheKey(key))
}

// Subscribe evicts cached schemas saved by any instance sharing the topic.
func (r *CachedEntitySchemaRepository) Subscribe(consumerFactory pubsub.ConsumerFactory) error {
	consumer := consumerFactory.New()
	err := consumer.Consume(EntitySchemasTopic, r.handleSchemaSaved, domain.EntitySchemaSaved{})
	if err != nil {
		return fmt.Errorf("consuming %s: %w", EntitySchemasTopic, err)
	}
	return nil
}

func (r *CachedEntitySchemaRepository) handleSchemaSaved(ctx context.Context, _ pubsub.Key, message pubsub.Prototype) error {
	var event domain.EntitySchemaSaved
	switch v := message.(type) {
	case domain.EntitySchemaSaved:
		event = v
	case *domain.EntitySchemaSaved:
		event = *v
	default:
		return fmt.Errorf("unexpected message type %T", message)
	}

	key := domain.SchemaKey{
		TenantID:   shareddomain.ID(event.TenantID),
		EntityType: domain.EntityType(event.EntityType),
	}
	r.observeVersion(schemaCacheKey(key), shareddomain.Version(event.Version))
	r.Invalidate(ctx, key)

	slog.Debug("evicted cached entity schema",
		slog.String("key", key.String()),
		slog.Int("version", event.Version))
	return nil
}

func schemaCacheKey(key domain.SchemaKey) string {
	return schemaKeyPrefix + key.String()
}
