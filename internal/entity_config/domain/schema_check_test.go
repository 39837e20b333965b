package domain_test

import (
	"entity-config-server/internal/entity_config/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CheckSchema", func() {
	var (
		catalog *domain.RuleCatalog
		schema  domain.EntitySchema
	)

	BeforeEach(func() {
		catalog = domain.DefaultRuleCatalog()
		var err error
		schema, err = domain.NewEntitySchemaBuilder().
			WithTenantID("tenant-1").
			WithEntityType("usuario").
			WithFields([]domain.FieldDefinition{
				{
					Name:     "edad",
					Label:    "Edad",
					Type:     domain.FieldTypeInteger,
					Required: true,
					Validations: []domain.ValidationRule{
						{Action: "gte", Params: domain.RuleParams{"value": domain.NumberScalar(18)}},
					},
				},
				{
					Name: "estado",
					Type: domain.FieldTypeSelect,
					Options: []domain.FieldOption{
						{Label: "Activo", Value: domain.TextScalar("activo")},
						{Label: "Uno", Value: domain.NumberScalar(1)},
					},
				},
			}).
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts a well formed schema", func() {
		Expect(catalog.CheckSchema(schema)).To(Succeed())
	})

	It("rejects unknown rule kinds", func() {
		schema.Fields[0].Validations[0].Action = "between"
		err := catalog.CheckSchema(schema)
		Expect(err).To(MatchError(domain.ErrSchemaInvalid))
		Expect(err).To(MatchError(domain.ErrUnknownRuleKind))
	})

	It("rejects kinds that do not apply to the field type", func() {
		schema.Fields[0].Validations[0] = domain.ValidationRule{
			Action: domain.RuleKindPattern,
			Params: domain.RuleParams{"pattern": domain.TextScalar(".*")},
		}
		Expect(catalog.CheckSchema(schema)).To(MatchError(domain.ErrIncompatibleRuleKind))
	})

	It("rejects bad params", func() {
		schema.Fields[0].Validations[0].Params = domain.RuleParams{"value": domain.TextScalar("old")}
		Expect(catalog.CheckSchema(schema)).To(MatchError(domain.ErrInvalidParam))
	})

	It("rejects duplicated and blank names", func() {
		schema.Fields[1].Name = "edad"
		schema.Fields = append(schema.Fields, domain.FieldDefinition{Type: domain.FieldTypeString})

		err := catalog.CheckSchema(schema)
		invalid, ok := domain.IsSchemaInvalid(err)
		Expect(ok).To(BeTrue())
		Expect(invalid.Issues).To(HaveLen(2))
		Expect(invalid.Issues[0].FieldIndex).To(Equal(1))
		Expect(invalid.Issues[1].FieldIndex).To(Equal(2))
	})

	It("rejects options on non select fields", func() {
		schema.Fields[0].Options = []domain.FieldOption{{Label: "x", Value: domain.TextScalar("x")}}
		Expect(catalog.CheckSchema(schema)).To(MatchError(domain.ErrSchemaInvalid))
	})

	It("rejects select fields without options or with repeated values", func() {
		schema.Fields[1].Options = nil
		Expect(catalog.CheckSchema(schema)).To(MatchError(domain.ErrSchemaInvalid))

		schema.Fields[1].Options = []domain.FieldOption{
			{Label: "a", Value: domain.TextScalar("1")},
			{Label: "b", Value: domain.NumberScalar(1)},
		}
		invalid, ok := domain.IsSchemaInvalid(catalog.CheckSchema(schema))
		Expect(ok).To(BeTrue())
		Expect(invalid.Issues).To(HaveLen(1))
	})

	It("rejects unknown field types", func() {
		schema.Fields[0].Type = "money"
		Expect(catalog.CheckSchema(schema)).To(MatchError(domain.ErrUnknownFieldType))
	})

	It("requires the key", func() {
		schema.TenantID = ""
		Expect(catalog.CheckSchema(schema)).To(MatchError(domain.ErrTenantIDRequired))
	})
})
