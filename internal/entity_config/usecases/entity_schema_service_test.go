package usecases_test

import (
	"context"
	"errors"
	"time"

	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/usecases"
	"entity-config-server/internal/entity_config/validation"
	"entity-config-server/internal/infra/utils"
	mockusecases "entity-config-server/test/unit/doubles/entity_config/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("EntitySchemaService", func() {
	var (
		ctrl     *gomock.Controller
		repo     *mockusecases.MockEntitySchemaRepository
		service  *usecases.SimpleEntitySchemaService
		ctx      context.Context
		schema   domain.EntitySchema
		evalTime time.Time
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		repo = mockusecases.NewMockEntitySchemaRepository(ctrl)
		evalTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		catalog := domain.DefaultRuleCatalog()
		service = usecases.NewEntitySchemaService(repo, validation.NewEngine(catalog), utils.FixedClock(evalTime))
		ctx = context.Background()

		var err error
		schema, err = domain.NewEntitySchemaBuilder().
			WithTenantID("tenant-1").
			WithEntityType("usuario").
			WithFields([]domain.FieldDefinition{{
				Name:     "edad",
				Label:    "Edad",
				Type:     domain.FieldTypeInteger,
				Required: true,
				Validations: []domain.ValidationRule{{
					Action:       "gte",
					Params:       domain.RuleParams{"value": domain.NumberScalar(18)},
					ErrorMessage: "Debe ser mayor de edad",
				}},
			}}).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("GetSchema", func() {
		ginkgo.It("returns the stored schema", func() {
			repo.EXPECT().Get(gomock.Any(), schema.TenantID, schema.EntityType).Return(schema, nil)

			result, err := service.GetSchema(ctx, schema.TenantID, schema.EntityType)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result).To(gomega.Equal(schema))
		})

		ginkgo.It("maps a missing schema to ErrEntitySchemaNotFound", func() {
			repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(domain.EntitySchema{}, usecases.ErrEntitySchemaNotFound)

			_, err := service.GetSchema(ctx, "tenant-1", "pedido")

			gomega.Expect(err).To(gomega.MatchError(usecases.ErrEntitySchemaNotFound))
		})

		ginkgo.It("wraps repository failures", func() {
			repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(domain.EntitySchema{}, errors.New("connection refused"))

			_, err := service.GetSchema(ctx, "tenant-1", "usuario")

			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("getting entity schema")))
		})
	})

	ginkgo.Context("SaveSchema", func() {
		ginkgo.It("returns the stored version", func() {
			stored := schema
			stored.Version = 2
			repo.EXPECT().Put(gomock.Any(), schema).Return(stored, nil)

			result, err := service.SaveSchema(ctx, schema)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.Version).To(gomega.BeEquivalentTo(2))
		})

		ginkgo.It("passes schema issues through unchanged", func() {
			invalid := &domain.SchemaInvalidError{Issues: []domain.SchemaIssue{{
				FieldIndex: 0, Field: "edad", Reason: "unknown rule kind", Err: domain.ErrUnknownRuleKind,
			}}}
			repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(domain.EntitySchema{}, invalid)

			_, err := service.SaveSchema(ctx, schema)

			gomega.Expect(err).To(gomega.MatchError(domain.ErrSchemaInvalid))
			issues, ok := domain.IsSchemaInvalid(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(issues.Issues).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Context("ListSchemas", func() {
		ginkgo.It("forwards pagination", func() {
			pagination := usecases.Pagination{Limit: 5, Offset: 10}
			repo.EXPECT().FindByTenant(gomock.Any(), schema.TenantID, pagination).
				Return([]domain.EntitySchema{schema}, 11, nil)

			schemas, total, err := service.ListSchemas(ctx, schema.TenantID, pagination)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(schemas).To(gomega.HaveLen(1))
			gomega.Expect(total).To(gomega.Equal(11))
		})
	})

	ginkgo.Context("ValidateRecord", func() {
		ginkgo.It("reports the custom message of a failed rule", func() {
			repo.EXPECT().Get(gomock.Any(), schema.TenantID, schema.EntityType).Return(schema, nil)

			violations, err := service.ValidateRecord(ctx, schema.TenantID, schema.EntityType, validation.DataBag{"edad": 15})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(violations).To(gomega.Equal([]validation.FieldViolation{{
				Field:   "edad",
				Action:  "gte",
				Message: "Debe ser mayor de edad",
			}}))
		})

		ginkgo.It("accepts a valid record", func() {
			repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(schema, nil)

			violations, err := service.ValidateRecord(ctx, schema.TenantID, schema.EntityType, validation.DataBag{"edad": 30})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(violations).To(gomega.BeEmpty())
		})

		ginkgo.It("accepts anything when the key has no schema", func() {
			repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(domain.EntitySchema{}, usecases.ErrEntitySchemaNotFound)

			violations, err := service.ValidateRecord(ctx, "tenant-1", "pedido", validation.DataBag{"x": "y"})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(violations).NotTo(gomega.BeNil())
			gomega.Expect(violations).To(gomega.BeEmpty())
		})

		ginkgo.It("fails when the schema cannot be loaded", func() {
			repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(domain.EntitySchema{}, errors.New("timeout"))

			_, err := service.ValidateRecord(ctx, "tenant-1", "usuario", validation.DataBag{})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("evaluates relative date rules at the clock instant", func() {
			dated, err := domain.NewEntitySchemaBuilder().
				WithTenantID("tenant-1").
				WithEntityType("evento").
				WithFields([]domain.FieldDefinition{{
					Name:  "fecha",
					Label: "Fecha",
					Type:  domain.FieldTypeDate,
					Validations: []domain.ValidationRule{{
						Action: "date_comparison",
						Params: domain.RuleParams{
							"operator": domain.TextScalar("gt"),
							"mode":     domain.TextScalar("today"),
							"value":    domain.TextScalar(""),
						},
					}},
				}}).
				Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(dated, nil).Times(2)

			violations, err := service.ValidateRecord(ctx, "tenant-1", "evento", validation.DataBag{"fecha": "2024-06-16"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(violations).To(gomega.BeEmpty())

			violations, err = service.ValidateRecord(ctx, "tenant-1", "evento", validation.DataBag{"fecha": "2024-06-15"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(violations).To(gomega.HaveLen(1))
		})
	})
})
