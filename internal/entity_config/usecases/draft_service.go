package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/infra/utils"
)

func NewDraftService(drafts DraftRepository, schemas EntitySchemaRepository, catalog *domain.RuleCatalog) *SimpleDraftService {
	return &SimpleDraftService{
		drafts:  drafts,
		schemas: schemas,
		catalog: catalog,
	}
}

var _ DraftService = (*SimpleDraftService)(nil)

// SimpleDraftService keeps one editing draft per schema key. Edits on the
// same key are applied one at a time.
type SimpleDraftService struct {
	drafts  DraftRepository
	schemas EntitySchemaRepository
	catalog *domain.RuleCatalog
	locks   utils.KeyedMutex
}

// OpenDraft starts a draft from the stored schema, or from an empty schema
// when the key has none. A previous draft for the key is replaced.
func (s *SimpleDraftService) OpenDraft(ctx context.Context, key domain.SchemaKey) (domain.EntitySchema, error) {
	defer s.locks.Lock(key.String())()

	schema, err := s.schemas.Get(ctx, key.TenantID, key.EntityType)
	if errors.Is(err, ErrEntitySchemaNotFound) {
		schema, err = domain.NewEntitySchemaBuilder().
			WithTenantID(key.TenantID).
			WithEntityType(key.EntityType.String()).
			Build()
	}
	if err != nil {
		slog.Error("loading schema for draft", slog.String("error", err.Error()))
		return domain.EntitySchema{}, fmt.Errorf("loading schema for draft: %w", err)
	}

	if err := s.drafts.Save(ctx, schema); err != nil {
		slog.Error("saving draft", slog.String("error", err.Error()))
		return domain.EntitySchema{}, fmt.Errorf("saving draft: %w", err)
	}

	return schema, nil
}

func (s *SimpleDraftService) GetDraft(ctx context.Context, key domain.SchemaKey) (domain.EntitySchema, error) {
	return s.load(ctx, key)
}

func (s *SimpleDraftService) DiscardDraft(ctx context.Context, key domain.SchemaKey) error {
	defer s.locks.Lock(key.String())()

	if _, err := s.load(ctx, key); err != nil {
		return err
	}

	if err := s.drafts.Delete(ctx, key); err != nil {
		slog.Error("deleting draft", slog.String("error", err.Error()))
		return fmt.Errorf("deleting draft: %w", err)
	}

	return nil
}

// CommitDraft stores the draft as the current schema of its key. The draft
// survives a rejected commit so it can be fixed.
func (s *SimpleDraftService) CommitDraft(ctx context.Context, key domain.SchemaKey) (domain.EntitySchema, error) {
	defer s.locks.Lock(key.String())()

	draft, err := s.load(ctx, key)
	if err != nil {
		return domain.EntitySchema{}, err
	}

	stored, err := s.schemas.Put(ctx, draft)
	if err != nil {
		if errors.Is(err, domain.ErrSchemaInvalid) {
			return domain.EntitySchema{}, err
		}
		slog.Error("committing draft", slog.String("error", err.Error()))
		return domain.EntitySchema{}, fmt.Errorf("committing draft: %w", err)
	}

	if err := s.drafts.Delete(ctx, key); err != nil {
		slog.Warn("deleting committed draft",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
	}

	slog.Info("draft committed",
		slog.String("key", key.String()),
		slog.Int("version", int(stored.Version)))

	return stored, nil
}

func (s *SimpleDraftService) AddField(ctx context.Context, key domain.SchemaKey) (domain.EntitySchema, error) {
	return s.mutate(ctx, key, func(d *domain.SchemaDraft) error {
		d.AddField()
		return nil
	})
}

func (s *SimpleDraftService) UpdateField(ctx context.Context, key domain.SchemaKey, index int, patch domain.FieldPatch) (domain.EntitySchema, error) {
	return s.mutate(ctx, key, func(d *domain.SchemaDraft) error {
		return d.UpdateField(index, patch)
	})
}

func (s *SimpleDraftService) RemoveField(ctx context.Context, key domain.SchemaKey, index int) (domain.EntitySchema, error) {
	return s.mutate(ctx, key, func(d *domain.SchemaDraft) error {
		return d.RemoveField(index)
	})
}

func (s *SimpleDraftService) AddOption(ctx context.Context, key domain.SchemaKey, fieldIndex int) (domain.EntitySchema, error) {
	return s.mutate(ctx, key, func(d *domain.SchemaDraft) error {
		_, err := d.AddOption(fieldIndex)
		return err
	})
}

func (s *SimpleDraftService) UpdateOption(ctx context.Context, key domain.SchemaKey, fieldIndex, optionIndex int, patch domain.OptionPatch) (domain.EntitySchema, error) {
	return s.mutate(ctx, key, func(d *domain.SchemaDraft) error {
		return d.UpdateOption(fieldIndex, optionIndex, patch)
	})
}

func (s *SimpleDraftService) RemoveOption(ctx context.Context, key domain.SchemaKey, fieldIndex, optionIndex int) (domain.EntitySchema, error) {
	return s.mutate(ctx, key, func(d *domain.SchemaDraft) error {
		return d.RemoveOption(fieldIndex, optionIndex)
	})
}

// AddValidation leaves the draft unchanged when no rule kind applies to the
// field type.
func (s *SimpleDraftService) AddValidation(ctx context.Context, key domain.SchemaKey, fieldIndex int) (domain.EntitySchema, error) {
	return s.mutate(ctx, key, func(d *domain.SchemaDraft) error {
		_, added, err := d.AddValidation(fieldIndex)
		if err == nil && !added {
			slog.Debug("no rule kind applies to field",
				slog.String("key", key.String()),
				slog.Int("field_index", fieldIndex))
		}
		return err
	})
}

func (s *SimpleDraftService) UpdateValidationAction(ctx context.Context, key domain.SchemaKey, fieldIndex, validationIndex int, action string) (domain.EntitySchema, error) {
	return s.mutate(ctx, key, func(d *domain.SchemaDraft) error {
		return d.UpdateValidationAction(fieldIndex, validationIndex, action)
	})
}

func (s *SimpleDraftService) UpdateValidation(ctx context.Context, key domain.SchemaKey, fieldIndex, validationIndex int, patch domain.ValidationPatch) (domain.EntitySchema, error) {
	return s.mutate(ctx, key, func(d *domain.SchemaDraft) error {
		return d.UpdateValidation(fieldIndex, validationIndex, patch)
	})
}

func (s *SimpleDraftService) RemoveValidation(ctx context.Context, key domain.SchemaKey, fieldIndex, validationIndex int) (domain.EntitySchema, error) {
	return s.mutate(ctx, key, func(d *domain.SchemaDraft) error {
		return d.RemoveValidation(fieldIndex, validationIndex)
	})
}

func (s *SimpleDraftService) mutate(ctx context.Context, key domain.SchemaKey, op func(*domain.SchemaDraft) error) (domain.EntitySchema, error) {
	defer s.locks.Lock(key.String())()

	schema, err := s.load(ctx, key)
	if err != nil {
		return domain.EntitySchema{}, err
	}

	draft := domain.NewSchemaDraft(schema, s.catalog)
	if err := op(draft); err != nil {
		return domain.EntitySchema{}, err
	}

	updated := draft.Schema()
	if err := s.drafts.Save(ctx, updated); err != nil {
		slog.Error("saving draft", slog.String("error", err.Error()))
		return domain.EntitySchema{}, fmt.Errorf("saving draft: %w", err)
	}

	return updated, nil
}

func (s *SimpleDraftService) load(ctx context.Context, key domain.SchemaKey) (domain.EntitySchema, error) {
	schema, err := s.drafts.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return domain.EntitySchema{}, ErrDraftNotFound
		}
		slog.Error("getting draft", slog.String("error", err.Error()))
		return domain.EntitySchema{}, fmt.Errorf("getting draft: %w", err)
	}
	return schema, nil
}
