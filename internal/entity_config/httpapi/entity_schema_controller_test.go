package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/httpapi"
	"entity-config-server/internal/entity_config/usecases"
	"entity-config-server/internal/entity_config/validation"
	"entity-config-server/internal/infra/httpserver"
	shareddomain "entity-config-server/internal/shared_kernel/domain"
	mockusecases "entity-config-server/test/unit/doubles/entity_config/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

const usuarioBody = `{
	"entity_type": "usuario",
	"fields": [{
		"name": "edad",
		"label": "Edad",
		"type": "integer",
		"required": true,
		"validations": [{"action": "gte", "params": {"value": 18}, "error_message": "Debe ser mayor de edad"}]
	}, {
		"name": "plan",
		"label": "Plan",
		"type": "select",
		"required": false,
		"validations": [],
		"options": [{"label": "Basic", "value": "b"}, {"label": "Pro", "value": 2}]
	}]
}`

var _ = Describe("EntitySchemaController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockEntitySchemaService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockEntitySchemaService(ctrl)
		router = http.NewServeMux()
		httpapi.NewEntitySchemaController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("PUT schema", func() {
		It("stores the decoded schema", func() {
			mockService.EXPECT().SaveSchema(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, schema domain.EntitySchema) (domain.EntitySchema, error) {
					Expect(schema.TenantID.String()).To(Equal("tenant-1"))
					Expect(schema.EntityType.String()).To(Equal("usuario"))
					Expect(schema.Fields).To(HaveLen(2))
					Expect(schema.Fields[0].Validations[0].Params["value"]).To(Equal(domain.NumberScalar(18)))
					Expect(schema.Fields[1].Options[0].Value).To(Equal(domain.TextScalar("b")))
					Expect(schema.Fields[1].Options[1].Value).To(Equal(domain.NumberScalar(2)))
					schema.Version = 1
					return schema, nil
				})

			request := httptest.NewRequest(http.MethodPut, "/v1/tenants/tenant-1/entity-schemas/usuario", strings.NewReader(usuarioBody))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var body map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body["entity_type"]).To(Equal("usuario"))
			Expect(body["version"]).To(BeEquivalentTo(1))
			fields := body["fields"].([]any)
			plan := fields[1].(map[string]any)
			Expect(plan["options"]).To(Equal([]any{
				map[string]any{"label": "Basic", "value": "b"},
				map[string]any{"label": "Pro", "value": 2.0},
			}))
		})

		It("answers 422 with the issues of an invalid schema", func() {
			invalid := &domain.SchemaInvalidError{Issues: []domain.SchemaIssue{{
				FieldIndex: 0,
				Field:      "edad",
				Reason:     "validation #0: unknown rule kind",
				Err:        domain.ErrUnknownRuleKind,
			}}}
			mockService.EXPECT().SaveSchema(gomock.Any(), gomock.Any()).Return(domain.EntitySchema{}, invalid)

			request := httptest.NewRequest(http.MethodPut, "/v1/tenants/tenant-1/entity-schemas/usuario", strings.NewReader(usuarioBody))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(recorder.Body.String()).To(MatchJSON(`{
				"message": "schema invalid",
				"issues": [{"field_index": 0, "field": "edad", "reason": "validation #0: unknown rule kind"}]
			}`))
		})

		It("rejects a body for another entity type", func() {
			request := httptest.NewRequest(http.MethodPut, "/v1/tenants/tenant-1/entity-schemas/pedido", strings.NewReader(usuarioBody))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects malformed json", func() {
			request := httptest.NewRequest(http.MethodPut, "/v1/tenants/tenant-1/entity-schemas/usuario", strings.NewReader(`{"fields": [`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects parameter values that are not scalars", func() {
			body := `{"fields":[{"name":"edad","type":"integer","validations":[{"action":"gte","params":{"value":[18]}}]}]}`
			request := httptest.NewRequest(http.MethodPut, "/v1/tenants/tenant-1/entity-schemas/usuario", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("GET schema", func() {
		It("returns 404 for a key without schema", func() {
			mockService.EXPECT().GetSchema(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(domain.EntitySchema{}, usecases.ErrEntitySchemaNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/tenants/tenant-1/entity-schemas/pedido", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 500 on unexpected failures", func() {
			mockService.EXPECT().GetSchema(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(domain.EntitySchema{}, errors.New("database down"))

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/tenants/tenant-1/entity-schemas/usuario", nil))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("database down"))
		})

		It("renders select fields with their options", func() {
			schema := domain.EntitySchema{
				ID: "schema-1", TenantID: "tenant-1", EntityType: "usuario", Version: 4,
				Fields: []domain.FieldDefinition{{
					Name: "plan", Type: domain.FieldTypeSelect, Validations: []domain.ValidationRule{},
					Options: []domain.FieldOption{{Label: "Basic", Value: domain.TextScalar("b")}},
				}},
			}
			mockService.EXPECT().GetSchema(gomock.Any(), shareddomain.ID("tenant-1"), domain.EntityType("usuario")).Return(schema, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/tenants/tenant-1/entity-schemas/usuario", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var body map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body["version"]).To(BeEquivalentTo(4))
			Expect(body["fields"]).To(HaveLen(1))
		})
	})

	Context("GET schemas", func() {
		It("pages the tenant schemas", func() {
			mockService.EXPECT().
				ListSchemas(gomock.Any(), shareddomain.ID("tenant-1"), usecases.Pagination{Limit: 2, Offset: 2}).
				Return([]domain.EntitySchema{{TenantID: "tenant-1", EntityType: "usuario"}}, 3, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/tenants/tenant-1/entity-schemas?page=2&limit=2", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var body httpserver.PaginatedResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Pagination).To(Equal(httpserver.PaginationMeta{Page: 2, Limit: 2, Total: 3, TotalPages: 2}))
			Expect(body.Data).To(HaveLen(1))
		})
	})

	Context("POST validate", func() {
		It("returns every violation", func() {
			violations := []validation.FieldViolation{{Field: "edad", Action: "gte", Message: "Debe ser mayor de edad"}}
			mockService.EXPECT().
				ValidateRecord(gomock.Any(), shareddomain.ID("tenant-1"), domain.EntityType("usuario"), validation.DataBag{"edad": 15.0}).
				Return(violations, nil)

			request := httptest.NewRequest(http.MethodPost, "/v1/tenants/tenant-1/entity-schemas/usuario/validate", strings.NewReader(`{"data":{"edad":15}}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{
				"valid": false,
				"violations": [{"field": "edad", "action": "gte", "message": "Debe ser mayor de edad"}]
			}`))
		})

		It("reports a valid record", func() {
			mockService.EXPECT().ValidateRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]validation.FieldViolation{}, nil)

			request := httptest.NewRequest(http.MethodPost, "/v1/tenants/tenant-1/entity-schemas/usuario/validate", strings.NewReader(`{"data":{"edad":21}}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"valid": true, "violations": []}`))
		})

		It("rejects an empty body", func() {
			request := httptest.NewRequest(http.MethodPost, "/v1/tenants/tenant-1/entity-schemas/usuario/validate", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
