package httpapi

import (
	"net/http"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/httpapi/internal"
	"entity-config-server/internal/infra/httpserver"
)

const unknownFieldTypeErrMessage = "unknown field type"

func NewRuleCatalogController(catalog *domain.RuleCatalog) *RuleCatalogController {
	return &RuleCatalogController{
		catalog: catalog,
	}
}

var _ httpserver.Controller = &RuleCatalogController{}

type RuleCatalogController struct {
	catalog *domain.RuleCatalog
}

func (c *RuleCatalogController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/validation-rules", c.listRuleKinds())
}

func (c *RuleCatalogController) listRuleKinds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kinds := c.catalog.List()

		if value := httpserver.GetQueryParam(r, "field_type"); value != "" {
			fieldType := domain.FieldType(value)
			if !fieldType.IsValid() {
				httpserver.ReplyWithError(w, http.StatusBadRequest, unknownFieldTypeErrMessage)
				return
			}
			kinds = c.catalog.ApplicableTo(fieldType)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRuleKindListResponse(kinds))
	}
}
