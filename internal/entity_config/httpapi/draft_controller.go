package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/httpapi/internal"
	"entity-config-server/internal/entity_config/usecases"
	"entity-config-server/internal/infra/httpserver"
)

const draftPath = "/v1/tenants/{tenant_id}/entity-schemas/{entity_type}/draft"

func NewDraftController(service usecases.DraftService) *DraftController {
	return &DraftController{
		service: service,
	}
}

var _ httpserver.Controller = &DraftController{}

// DraftController exposes the editing session of a schema. Every mutation
// answers with the whole draft.
type DraftController struct {
	service usecases.DraftService
}

func (c *DraftController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST "+draftPath, c.openDraft())
	router.Handle("GET "+draftPath, c.getDraft())
	router.Handle("DELETE "+draftPath, c.discardDraft())
	router.Handle("POST "+draftPath+"/commit", c.commitDraft())

	router.Handle("POST "+draftPath+"/fields", c.addField())
	router.Handle("PATCH "+draftPath+"/fields/{field_index}", c.updateField())
	router.Handle("DELETE "+draftPath+"/fields/{field_index}", c.removeField())

	router.Handle("POST "+draftPath+"/fields/{field_index}/options", c.addOption())
	router.Handle("PATCH "+draftPath+"/fields/{field_index}/options/{option_index}", c.updateOption())
	router.Handle("DELETE "+draftPath+"/fields/{field_index}/options/{option_index}", c.removeOption())

	router.Handle("POST "+draftPath+"/fields/{field_index}/validations", c.addValidation())
	router.Handle("PUT "+draftPath+"/fields/{field_index}/validations/{validation_index}/action", c.updateValidationAction())
	router.Handle("PATCH "+draftPath+"/fields/{field_index}/validations/{validation_index}", c.updateValidation())
	router.Handle("DELETE "+draftPath+"/fields/{field_index}/validations/{validation_index}", c.removeValidation())
}

func (c *DraftController) openDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft, err := c.service.OpenDraft(r.Context(), schemaKey(r))
		if replyWithDomainError(w, "opening draft", err) {
			return
		}
		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToEntitySchemaResponse(draft))
	}
}

func (c *DraftController) getDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft, err := c.service.GetDraft(r.Context(), schemaKey(r))
		if replyWithDomainError(w, "getting draft", err) {
			return
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToEntitySchemaResponse(draft))
	}
}

func (c *DraftController) discardDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := c.service.DiscardDraft(r.Context(), schemaKey(r))
		if replyWithDomainError(w, "discarding draft", err) {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *DraftController) commitDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := c.service.CommitDraft(r.Context(), schemaKey(r))
		if replyWithDomainError(w, "committing draft", err) {
			return
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToEntitySchemaResponse(stored))
	}
}

func (c *DraftController) addField() http.HandlerFunc {
	return c.mutation(func(ctx context.Context, key domain.SchemaKey, _ indices, _ *http.Request) (domain.EntitySchema, error) {
		return c.service.AddField(ctx, key)
	})
}

func (c *DraftController) updateField() http.HandlerFunc {
	return c.mutation(func(ctx context.Context, key domain.SchemaKey, idx indices, r *http.Request) (domain.EntitySchema, error) {
		var body internal.FieldPatchRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			return domain.EntitySchema{}, badRequest(err)
		}
		return c.service.UpdateField(ctx, key, idx.field, body.ToDomain())
	}, "field_index")
}

func (c *DraftController) removeField() http.HandlerFunc {
	return c.mutation(func(ctx context.Context, key domain.SchemaKey, idx indices, _ *http.Request) (domain.EntitySchema, error) {
		return c.service.RemoveField(ctx, key, idx.field)
	}, "field_index")
}

func (c *DraftController) addOption() http.HandlerFunc {
	return c.mutation(func(ctx context.Context, key domain.SchemaKey, idx indices, _ *http.Request) (domain.EntitySchema, error) {
		return c.service.AddOption(ctx, key, idx.field)
	}, "field_index")
}

func (c *DraftController) updateOption() http.HandlerFunc {
	return c.mutation(func(ctx context.Context, key domain.SchemaKey, idx indices, r *http.Request) (domain.EntitySchema, error) {
		var body internal.OptionPatchRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			return domain.EntitySchema{}, badRequest(err)
		}
		patch, err := body.ToDomain()
		if err != nil {
			return domain.EntitySchema{}, badRequest(err)
		}
		return c.service.UpdateOption(ctx, key, idx.field, idx.option, patch)
	}, "field_index", "option_index")
}

func (c *DraftController) removeOption() http.HandlerFunc {
	return c.mutation(func(ctx context.Context, key domain.SchemaKey, idx indices, _ *http.Request) (domain.EntitySchema, error) {
		return c.service.RemoveOption(ctx, key, idx.field, idx.option)
	}, "field_index", "option_index")
}

func (c *DraftController) addValidation() http.HandlerFunc {
	return c.mutation(func(ctx context.Context, key domain.SchemaKey, idx indices, _ *http.Request) (domain.EntitySchema, error) {
		return c.service.AddValidation(ctx, key, idx.field)
	}, "field_index")
}

func (c *DraftController) updateValidationAction() http.HandlerFunc {
	return c.mutation(func(ctx context.Context, key domain.SchemaKey, idx indices, r *http.Request) (domain.EntitySchema, error) {
		var body internal.ValidationActionRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			return domain.EntitySchema{}, badRequest(err)
		}
		return c.service.UpdateValidationAction(ctx, key, idx.field, idx.validation, body.Action)
	}, "field_index", "validation_index")
}

func (c *DraftController) updateValidation() http.HandlerFunc {
	return c.mutation(func(ctx context.Context, key domain.SchemaKey, idx indices, r *http.Request) (domain.EntitySchema, error) {
		var body internal.ValidationPatchRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			return domain.EntitySchema{}, badRequest(err)
		}
		patch, err := body.ToDomain()
		if err != nil {
			return domain.EntitySchema{}, badRequest(err)
		}
		return c.service.UpdateValidation(ctx, key, idx.field, idx.validation, patch)
	}, "field_index", "validation_index")
}

func (c *DraftController) removeValidation() http.HandlerFunc {
	return c.mutation(func(ctx context.Context, key domain.SchemaKey, idx indices, _ *http.Request) (domain.EntitySchema, error) {
		return c.service.RemoveValidation(ctx, key, idx.field, idx.validation)
	}, "field_index", "validation_index")
}

type indices struct {
	field      int
	option     int
	validation int
}

type badRequestError struct {
	err error
}

func (e badRequestError) Error() string {
	return e.err.Error()
}

func badRequest(err error) error {
	return badRequestError{err: err}
}

type draftMutation func(context.Context, domain.SchemaKey, indices, *http.Request) (domain.EntitySchema, error)

// mutation parses the named index path parameters, runs op and replies with
// the resulting draft.
func (c *DraftController) mutation(op draftMutation, indexNames ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var idx indices
		for _, name := range indexNames {
			value, err := httpserver.GetPathIndex(r, name)
			if err != nil {
				httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			switch name {
			case "field_index":
				idx.field = value
			case "option_index":
				idx.option = value
			case "validation_index":
				idx.validation = value
			}
		}

		draft, err := op(r.Context(), schemaKey(r), idx, r)
		var bad badRequestError
		if errors.As(err, &bad) {
			slog.Warn("decoding draft request", slog.String("error", bad.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}
		if replyWithDomainError(w, "editing draft", err) {
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToEntitySchemaResponse(draft))
	}
}
