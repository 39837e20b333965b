package usecases

import (
	"context"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/validation"
	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=api.go -destination=../../../test/unit/doubles/entity_config/usecases/api_mock.go -package=usecases -mock_names=EntitySchemaService=MockEntitySchemaService,DraftService=MockDraftService

type EntitySchemaService interface {
	GetSchema(context.Context, shareddomain.ID, domain.EntityType) (domain.EntitySchema, error)
	SaveSchema(context.Context, domain.EntitySchema) (domain.EntitySchema, error)
	ListSchemas(context.Context, shareddomain.ID, Pagination) ([]domain.EntitySchema, int, error)
	ValidateRecord(context.Context, shareddomain.ID, domain.EntityType, validation.DataBag) ([]validation.FieldViolation, error)
}

type DraftService interface {
	OpenDraft(context.Context, domain.SchemaKey) (domain.EntitySchema, error)
	GetDraft(context.Context, domain.SchemaKey) (domain.EntitySchema, error)
	DiscardDraft(context.Context, domain.SchemaKey) error
	CommitDraft(context.Context, domain.SchemaKey) (domain.EntitySchema, error)

	AddField(context.Context, domain.SchemaKey) (domain.EntitySchema, error)
	UpdateField(context.Context, domain.SchemaKey, int, domain.FieldPatch) (domain.EntitySchema, error)
	RemoveField(context.Context, domain.SchemaKey, int) (domain.EntitySchema, error)

	AddOption(context.Context, domain.SchemaKey, int) (domain.EntitySchema, error)
	UpdateOption(context.Context, domain.SchemaKey, int, int, domain.OptionPatch) (domain.EntitySchema, error)
	RemoveOption(context.Context, domain.SchemaKey, int, int) (domain.EntitySchema, error)

	AddValidation(context.Context, domain.SchemaKey, int) (domain.EntitySchema, error)
	UpdateValidationAction(context.Context, domain.SchemaKey, int, int, string) (domain.EntitySchema, error)
	UpdateValidation(context.Context, domain.SchemaKey, int, int, domain.ValidationPatch) (domain.EntitySchema, error)
	RemoveValidation(context.Context, domain.SchemaKey, int, int) (domain.EntitySchema, error)
}
