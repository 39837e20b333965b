package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/httpapi/internal"
	"entity-config-server/internal/entity_config/usecases"
	"entity-config-server/internal/infra/httpserver"
)

const (
	invalidBodyErrMessage          = "invalid request body"
	entitySchemaNotFoundErrMessage = "entity schema not found"
	draftNotFoundErrMessage        = "draft not found"
	internalErrMessage             = "internal server error"
)

// replyWithDomainError maps the error of a schema or draft operation to a
// response. It returns false when err is nil.
func replyWithDomainError(w http.ResponseWriter, operation string, err error) bool {
	if err == nil {
		return false
	}

	if invalid, ok := domain.IsSchemaInvalid(err); ok {
		httpserver.ReplyJSONResponse(w, http.StatusUnprocessableEntity, internal.ToSchemaInvalidResponse(invalid))
		return true
	}

	switch {
	case errors.Is(err, usecases.ErrEntitySchemaNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, entitySchemaNotFoundErrMessage)
	case errors.Is(err, usecases.ErrDraftNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, draftNotFoundErrMessage)
	case errors.Is(err, domain.ErrFieldIndexOutOfRange),
		errors.Is(err, domain.ErrOptionIndexOutOfRange),
		errors.Is(err, domain.ErrValidationIndexOutOfRange):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnknownRuleKind),
		errors.Is(err, domain.ErrIncompatibleRuleKind),
		errors.Is(err, domain.ErrInvalidParam),
		errors.Is(err, domain.ErrUnknownFieldType),
		errors.Is(err, domain.ErrFieldNotSelect),
		errors.Is(err, domain.ErrFieldNameRequired),
		errors.Is(err, domain.ErrDuplicatedFieldName),
		errors.Is(err, domain.ErrDuplicatedOptionValue):
		httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error(operation, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage)
	}
	return true
}
