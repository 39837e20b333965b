package domain_test

import (
	"entity-config-server/internal/entity_config/domain"
	shareddomain "entity-config-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ptr[T any](value T) *T {
	return &value
}

var _ = Describe("SchemaDraft", func() {
	var (
		catalog *domain.RuleCatalog
		draft   *domain.SchemaDraft
	)

	BeforeEach(func() {
		catalog = domain.DefaultRuleCatalog()
		schema, err := domain.NewEntitySchemaBuilder().
			WithTenantID("tenant-1").
			WithEntityType("usuario").
			Build()
		Expect(err).NotTo(HaveOccurred())
		draft = domain.NewSchemaDraft(schema, catalog)
	})

	It("adds a blank optional string field", func() {
		field := draft.AddField()
		Expect(field.Type).To(Equal(domain.FieldTypeString))
		Expect(field.Required).To(BeFalse())
		Expect(field.Validations).To(BeEmpty())
		Expect(draft.Schema().Fields).To(HaveLen(1))
	})

	It("does not expose its internal state", func() {
		draft.AddField()
		schema := draft.Schema()
		schema.Fields[0].Name = "leaked"
		Expect(draft.Schema().Fields[0].Name).To(BeEmpty())
	})

	Context("when the field type changes", func() {
		BeforeEach(func() {
			draft.AddField()
			Expect(draft.UpdateField(0, domain.FieldPatch{
				Name: ptr("edad"),
				Type: ptr(domain.FieldTypeInteger),
			})).To(Succeed())
			_, added, err := draft.AddValidation(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(BeTrue())
		})

		It("clears the validations", func() {
			Expect(draft.UpdateField(0, domain.FieldPatch{Type: ptr(domain.FieldTypeString)})).To(Succeed())
			field := draft.Schema().Fields[0]
			Expect(field.Type).To(Equal(domain.FieldTypeString))
			Expect(field.Validations).To(BeEmpty())
			Expect(field.Name).To(Equal(shareddomain.Name("edad")))
		})

		It("keeps the validations when the type is the same", func() {
			Expect(draft.UpdateField(0, domain.FieldPatch{Type: ptr(domain.FieldTypeInteger)})).To(Succeed())
			Expect(draft.Schema().Fields[0].Validations).To(HaveLen(1))
		})

		It("rejects unknown types", func() {
			err := draft.UpdateField(0, domain.FieldPatch{Type: ptr(domain.FieldType("money"))})
			Expect(err).To(MatchError(domain.ErrUnknownFieldType))
			Expect(draft.Schema().Fields[0].Validations).To(HaveLen(1))
		})
	})

	Describe("field names", func() {
		BeforeEach(func() {
			draft.AddField()
			draft.AddField()
			Expect(draft.UpdateField(0, domain.FieldPatch{Name: ptr("email")})).To(Succeed())
		})

		It("rejects a name used by another field", func() {
			err := draft.UpdateField(1, domain.FieldPatch{
				Name: ptr(" email "),
				Type: ptr(domain.FieldTypeInteger),
			})
			Expect(err).To(MatchError(domain.ErrDuplicatedFieldName))
			field := draft.Schema().Fields[1]
			Expect(field.Name).To(BeEmpty())
			Expect(field.Type).To(Equal(domain.FieldTypeString))
		})

		It("rejects a blank name", func() {
			Expect(draft.UpdateField(0, domain.FieldPatch{Name: ptr("  ")})).To(MatchError(domain.ErrFieldNameRequired))
			Expect(draft.Schema().Fields[0].Name).To(Equal(shareddomain.Name("email")))
		})

		It("lets a field keep its own name", func() {
			Expect(draft.UpdateField(0, domain.FieldPatch{Name: ptr("email"), Label: ptr("Correo")})).To(Succeed())
			Expect(draft.Schema().Fields[0].Label).To(Equal(shareddomain.DisplayName("Correo")))
		})

		It("keeps the committed schema consistent with the draft checks", func() {
			Expect(draft.UpdateField(1, domain.FieldPatch{Name: ptr("edad")})).To(Succeed())
			Expect(catalog.CheckSchema(draft.Schema())).To(Succeed())
		})
	})

	It("drops options when a select field changes type", func() {
		draft.AddField()
		Expect(draft.UpdateField(0, domain.FieldPatch{Type: ptr(domain.FieldTypeSelect)})).To(Succeed())
		_, err := draft.AddOption(0)
		Expect(err).NotTo(HaveOccurred())

		Expect(draft.UpdateField(0, domain.FieldPatch{Type: ptr(domain.FieldTypeString)})).To(Succeed())
		Expect(draft.Schema().Fields[0].Options).To(BeEmpty())
	})

	It("adds and removes options on select fields only", func() {
		draft.AddField()
		_, err := draft.AddOption(0)
		Expect(err).To(MatchError(domain.ErrFieldNotSelect))

		Expect(draft.UpdateField(0, domain.FieldPatch{Type: ptr(domain.FieldTypeSelect)})).To(Succeed())
		option, err := draft.AddOption(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(option).To(Equal(domain.FieldOption{Label: "", Value: domain.TextScalar("")}))

		_, err = draft.AddOption(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(draft.UpdateOption(0, 1, domain.OptionPatch{
			Label: ptr("Activo"),
			Value: ptr(domain.TextScalar("activo")),
		})).To(Succeed())

		Expect(draft.RemoveOption(0, 0)).To(Succeed())
		options := draft.Schema().Fields[0].Options
		Expect(options).To(HaveLen(1))
		Expect(options[0].Label).To(Equal("Activo"))

		Expect(draft.RemoveOption(0, 5)).To(MatchError(domain.ErrOptionIndexOutOfRange))
	})

	Describe("option values", func() {
		BeforeEach(func() {
			draft.AddField()
			Expect(draft.UpdateField(0, domain.FieldPatch{Type: ptr(domain.FieldTypeSelect)})).To(Succeed())
			for range 3 {
				_, err := draft.AddOption(0)
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(draft.UpdateOption(0, 0, domain.OptionPatch{Value: ptr(domain.TextScalar("activo"))})).To(Succeed())
		})

		It("rejects a value already in the field", func() {
			err := draft.UpdateOption(0, 1, domain.OptionPatch{
				Label: ptr("Otro"),
				Value: ptr(domain.TextScalar("activo")),
			})
			Expect(err).To(MatchError(domain.ErrDuplicatedOptionValue))
			option := draft.Schema().Fields[0].Options[1]
			Expect(option.Label).To(BeEmpty())
			Expect(option.Value).To(Equal(domain.TextScalar("")))
		})

		It("compares numbers and text by their printed value", func() {
			Expect(draft.UpdateOption(0, 1, domain.OptionPatch{Value: ptr(domain.NumberScalar(1))})).To(Succeed())
			err := draft.UpdateOption(0, 2, domain.OptionPatch{Value: ptr(domain.TextScalar("1"))})
			Expect(err).To(MatchError(domain.ErrDuplicatedOptionValue))
		})

		It("allows several blank placeholders", func() {
			Expect(draft.UpdateOption(0, 0, domain.OptionPatch{Value: ptr(domain.TextScalar(""))})).To(Succeed())
			Expect(draft.UpdateOption(0, 0, domain.OptionPatch{Value: ptr(domain.TextScalar("inactivo"))})).To(Succeed())
		})
	})

	It("attaches the first applicable kind with default params", func() {
		draft.AddField()
		Expect(draft.UpdateField(0, domain.FieldPatch{Type: ptr(domain.FieldTypeDate)})).To(Succeed())

		rule, added, err := draft.AddValidation(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(added).To(BeTrue())
		Expect(rule.Action).To(Equal(domain.RuleKindDateComparison))
		Expect(rule.Params["operator"]).To(Equal(domain.TextScalar("gt")))
		Expect(rule.Params["mode"]).To(Equal(domain.TextScalar("now")))
	})

	It("does nothing when no kind applies", func() {
		empty, err := domain.NewRuleCatalog()
		Expect(err).NotTo(HaveOccurred())
		schema, _ := domain.NewEntitySchemaBuilder().WithTenantID("t").WithEntityType("e").Build()
		draft = domain.NewSchemaDraft(schema, empty)
		draft.AddField()

		_, added, err := draft.AddValidation(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(added).To(BeFalse())
		Expect(draft.Schema().Fields[0].Validations).To(BeEmpty())
	})

	Describe("UpdateValidationAction", func() {
		BeforeEach(func() {
			draft.AddField()
			Expect(draft.UpdateField(0, domain.FieldPatch{Type: ptr(domain.FieldTypeInteger)})).To(Succeed())
			_, _, err := draft.AddValidation(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(draft.UpdateValidation(0, 0, domain.ValidationPatch{
				Params:       domain.RuleParams{"value": domain.NumberScalar(18)},
				ErrorMessage: ptr("too young"),
			})).To(Succeed())
		})

		It("switches the kind and resets the params", func() {
			Expect(draft.UpdateValidationAction(0, 0, "lte")).To(Succeed())
			rule := draft.Schema().Fields[0].Validations[0]
			Expect(rule.Action).To(Equal("lte"))
			Expect(rule.Params).To(Equal(domain.RuleParams{"value": domain.NumberScalar(0)}))
		})

		It("leaves the rule untouched when the kind is unknown", func() {
			Expect(draft.UpdateValidationAction(0, 0, "between")).To(MatchError(domain.ErrUnknownRuleKind))
			rule := draft.Schema().Fields[0].Validations[0]
			Expect(rule.Action).To(Equal("gt"))
			Expect(rule.Params["value"]).To(Equal(domain.NumberScalar(18)))
		})

		It("leaves the rule untouched when the kind does not apply", func() {
			Expect(draft.UpdateValidationAction(0, 0, domain.RuleKindPattern)).To(MatchError(domain.ErrIncompatibleRuleKind))
			Expect(draft.Schema().Fields[0].Validations[0].Action).To(Equal("gt"))
		})
	})

	It("checks params against the kind on update", func() {
		draft.AddField()
		_, _, err := draft.AddValidation(0)
		Expect(err).NotTo(HaveOccurred())

		err = draft.UpdateValidation(0, 0, domain.ValidationPatch{
			Params: domain.RuleParams{"length": domain.TextScalar("abc")},
		})
		Expect(err).To(MatchError(domain.ErrInvalidParam))
		Expect(draft.Schema().Fields[0].Validations[0].Params["length"]).To(Equal(domain.NumberScalar(0)))
	})

	It("removes validations and fields", func() {
		draft.AddField()
		draft.AddField()
		_, _, err := draft.AddValidation(1)
		Expect(err).NotTo(HaveOccurred())

		Expect(draft.RemoveValidation(1, 0)).To(Succeed())
		Expect(draft.RemoveValidation(1, 0)).To(MatchError(domain.ErrValidationIndexOutOfRange))
		Expect(draft.RemoveField(0)).To(Succeed())
		Expect(draft.Schema().Fields).To(HaveLen(1))
		Expect(draft.RemoveField(3)).To(MatchError(domain.ErrFieldIndexOutOfRange))
	})
})
