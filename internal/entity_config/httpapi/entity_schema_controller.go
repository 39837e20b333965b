package httpapi

import (
	"log/slog"
	"net/http"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/httpapi/internal"
	"entity-config-server/internal/entity_config/usecases"
	"entity-config-server/internal/entity_config/validation"
	"entity-config-server/internal/infra/httpserver"
	shareddomain "entity-config-server/internal/shared_kernel/domain"
)

const entityTypeMismatchErrMessage = "entity type in body does not match the path"

func NewEntitySchemaController(service usecases.EntitySchemaService) *EntitySchemaController {
	return &EntitySchemaController{
		service: service,
	}
}

var _ httpserver.Controller = &EntitySchemaController{}

type EntitySchemaController struct {
	service usecases.EntitySchemaService
}

func (c *EntitySchemaController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/tenants/{tenant_id}/entity-schemas", c.listSchemas())
	router.Handle("GET /v1/tenants/{tenant_id}/entity-schemas/{entity_type}", c.getSchema())
	router.Handle("PUT /v1/tenants/{tenant_id}/entity-schemas/{entity_type}", c.putSchema())
	router.Handle("POST /v1/tenants/{tenant_id}/entity-schemas/{entity_type}/validate", c.validateRecord())
}

func (c *EntitySchemaController) listSchemas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := shareddomain.ID(httpserver.GetPathParam(r, "tenant_id"))
		params := httpserver.ExtractPaginationParams(r)

		schemas, total, err := c.service.ListSchemas(r.Context(), tenantID, usecases.Pagination{
			Limit:  params.Limit,
			Offset: params.Offset(),
		})
		if replyWithDomainError(w, "listing entity schemas", err) {
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToEntitySchemaResponses(schemas), total, params)
	}
}

func (c *EntitySchemaController) getSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := schemaKey(r)

		schema, err := c.service.GetSchema(r.Context(), key.TenantID, key.EntityType)
		if replyWithDomainError(w, "getting entity schema", err) {
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToEntitySchemaResponse(schema))
	}
}

func (c *EntitySchemaController) putSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := schemaKey(r)

		var body internal.EntitySchemaRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Warn("decoding entity schema request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}
		if body.EntityType != "" && body.EntityType != key.EntityType.String() {
			httpserver.ReplyWithError(w, http.StatusBadRequest, entityTypeMismatchErrMessage)
			return
		}

		fields, err := body.ToDomainFields()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		schema, err := domain.NewEntitySchemaBuilder().
			WithTenantID(key.TenantID).
			WithEntityType(key.EntityType.String()).
			WithFields(fields).
			Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		stored, err := c.service.SaveSchema(r.Context(), schema)
		if replyWithDomainError(w, "saving entity schema", err) {
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToEntitySchemaResponse(stored))
	}
}

func (c *EntitySchemaController) validateRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := schemaKey(r)

		var body internal.ValidateRecordRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Warn("decoding validate record request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		violations, err := c.service.ValidateRecord(r.Context(), key.TenantID, key.EntityType, validation.DataBag(body.Data))
		if replyWithDomainError(w, "validating record", err) {
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToValidateRecordResponse(violations))
	}
}

func schemaKey(r *http.Request) domain.SchemaKey {
	return domain.SchemaKey{
		TenantID:   shareddomain.ID(httpserver.GetPathParam(r, "tenant_id")),
		EntityType: domain.EntityType(httpserver.GetPathParam(r, "entity_type")),
	}
}
