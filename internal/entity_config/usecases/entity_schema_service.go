package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/validation"
	"entity-config-server/internal/infra/utils"
	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

func NewEntitySchemaService(repository EntitySchemaRepository, engine *validation.Engine, clock utils.Clock) *SimpleEntitySchemaService {
	return &SimpleEntitySchemaService{
		repository: repository,
		engine:     engine,
		clock:      clock,
	}
}

var _ EntitySchemaService = (*SimpleEntitySchemaService)(nil)

type SimpleEntitySchemaService struct {
	repository EntitySchemaRepository
	engine     *validation.Engine
	clock      utils.Clock
}

func (s *SimpleEntitySchemaService) GetSchema(ctx context.Context, tenantID shareddomain.ID, entityType domain.EntityType) (domain.EntitySchema, error) {
	schema, err := s.repository.Get(ctx, tenantID, entityType)
	if err != nil {
		if errors.Is(err, ErrEntitySchemaNotFound) {
			return domain.EntitySchema{}, ErrEntitySchemaNotFound
		}
		slog.Error("getting entity schema", slog.String("error", err.Error()))
		return domain.EntitySchema{}, fmt.Errorf("getting entity schema: %w", err)
	}

	return schema, nil
}

func (s *SimpleEntitySchemaService) SaveSchema(ctx context.Context, schema domain.EntitySchema) (domain.EntitySchema, error) {
	stored, err := s.repository.Put(ctx, schema)
	if err != nil {
		if errors.Is(err, domain.ErrSchemaInvalid) {
			slog.Warn("rejected invalid entity schema",
				slog.String("key", schema.Key().String()),
				slog.String("error", err.Error()))
			return domain.EntitySchema{}, err
		}
		slog.Error("saving entity schema", slog.String("error", err.Error()))
		return domain.EntitySchema{}, fmt.Errorf("saving entity schema: %w", err)
	}

	slog.Info("entity schema saved",
		slog.String("key", stored.Key().String()),
		slog.Int("version", int(stored.Version)),
		slog.Int("fields", len(stored.Fields)))

	return stored, nil
}

func (s *SimpleEntitySchemaService) ListSchemas(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.EntitySchema, int, error) {
	schemas, total, err := s.repository.FindByTenant(ctx, tenantID, pagination)
	if err != nil {
		slog.Error("listing entity schemas", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing entity schemas: %w", err)
	}

	return schemas, total, nil
}

// ValidateRecord checks bag against the schema stored for the key. A key
// without schema has no custom fields, so every bag is valid.
func (s *SimpleEntitySchemaService) ValidateRecord(ctx context.Context, tenantID shareddomain.ID, entityType domain.EntityType, bag validation.DataBag) ([]validation.FieldViolation, error) {
	schema, err := s.repository.Get(ctx, tenantID, entityType)
	if errors.Is(err, ErrEntitySchemaNotFound) {
		slog.Debug("no entity schema for record",
			slog.String("tenant_id", tenantID.String()),
			slog.String("entity_type", entityType.String()))
		return []validation.FieldViolation{}, nil
	}
	if err != nil {
		slog.Error("getting entity schema", slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting entity schema: %w", err)
	}

	return s.engine.Validate(schema, bag, s.clock()), nil
}
