package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/persistence/internal"
	"entity-config-server/internal/entity_config/usecases"
	"entity-config-server/internal/infra/cache"
)

const draftKeyPrefix = "entity_schema_draft:"

// CacheDraftRepository keeps editing drafts in the cache layer. A draft
// untouched for longer than the TTL is gone.
type CacheDraftRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

type CacheDraftRepositoryConfig struct {
	Cache cache.Cache
	TTL   time.Duration
}

func DefaultCacheDraftRepositoryConfig() *CacheDraftRepositoryConfig {
	return &CacheDraftRepositoryConfig{
		TTL: 24 * time.Hour,
	}
}

var _ usecases.DraftRepository = (*CacheDraftRepository)(nil)

func NewCacheDraftRepository(config *CacheDraftRepositoryConfig) (*CacheDraftRepository, error) {
	if config == nil {
		config = DefaultCacheDraftRepositoryConfig()
	}
	if config.Cache == nil {
		return nil, fmt.Errorf("cache instance is required")
	}

	slog.Info("draft repository initialized", slog.Duration("ttl", config.TTL))

	return &CacheDraftRepository{
		cache: config.Cache,
		ttl:   config.TTL,
	}, nil
}

func (r *CacheDraftRepository) Get(ctx context.Context, key domain.SchemaKey) (domain.EntitySchema, error) {
	value, found := r.cache.Get(ctx, draftCacheKey(key))
	if !found {
		return domain.EntitySchema{}, usecases.ErrDraftNotFound
	}

	schema, err := internal.DecodeEntitySchema(value)
	if err != nil {
		return domain.EntitySchema{}, err
	}
	return schema, nil
}

func (r *CacheDraftRepository) Save(ctx context.Context, schema domain.EntitySchema) error {
	data, err := internal.EncodeEntitySchema(schema)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}

	if !r.cache.Set(ctx, draftCacheKey(schema.Key()), data, r.ttl) {
		return fmt.Errorf("failed to store draft %s", schema.Key())
	}
	return nil
}

func (r *CacheDraftRepository) Delete(ctx context.Context, key domain.SchemaKey) error {
	r.cache.Delete(ctx, draftCacheKey(key))
	return nil
}

func draftCacheKey(key domain.SchemaKey) string {
	return draftKeyPrefix + key.String()
}
