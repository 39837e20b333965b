package domain_test

import (
	"time"

	"entity-config-server/internal/entity_config/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func keysOf(kinds []domain.RuleKind) []string {
	result := make([]string, len(kinds))
	for i, kind := range kinds {
		result[i] = kind.Key
	}
	return result
}

var _ = Describe("RuleCatalog", func() {
	var catalog *domain.RuleCatalog

	BeforeEach(func() {
		catalog = domain.DefaultRuleCatalog()
	})

	It("lists the built-in kinds in declaration order", func() {
		Expect(keysOf(catalog.List())).To(Equal([]string{
			"gt", "lt", "gte", "lte", "eq", "neq",
			"date_comparison", "min_length", "max_length", "pattern", "in_options",
		}))
	})

	It("returns a copy from List", func() {
		kinds := catalog.List()
		kinds[0].Key = "changed"
		Expect(catalog.List()[0].Key).To(Equal("gt"))
	})

	It("fails on unknown keys", func() {
		_, err := catalog.Get("between")
		Expect(err).To(MatchError(domain.ErrUnknownRuleKind))
	})

	DescribeTable("ApplicableTo",
		func(fieldType domain.FieldType, expected []string) {
			Expect(keysOf(catalog.ApplicableTo(fieldType))).To(Equal(expected))
		},
		Entry("integer", domain.FieldTypeInteger, []string{"gt", "lt", "gte", "lte", "eq", "neq"}),
		Entry("float", domain.FieldTypeFloat, []string{"gt", "lt", "gte", "lte", "eq", "neq"}),
		Entry("date", domain.FieldTypeDate, []string{"date_comparison"}),
		Entry("datetime", domain.FieldTypeDatetime, []string{"date_comparison"}),
		Entry("email", domain.FieldTypeEmail, []string{"min_length", "max_length", "pattern"}),
		Entry("select", domain.FieldTypeSelect, []string{"in_options"}),
	)

	It("uses the first option of select params as default", func() {
		kind, err := catalog.Get(domain.RuleKindDateComparison)
		Expect(err).NotTo(HaveOccurred())

		params := kind.DefaultParams()
		Expect(params).To(HaveLen(3))
		Expect(params["operator"]).To(Equal(domain.TextScalar("gt")))
		Expect(params["mode"]).To(Equal(domain.TextScalar("now")))
		Expect(params["value"]).To(Equal(domain.TextScalar("")))
	})

	It("uses zero as number default", func() {
		kind, err := catalog.Get("gt")
		Expect(err).NotTo(HaveOccurred())
		Expect(kind.DefaultParams()).To(Equal(domain.RuleParams{"value": domain.NumberScalar(0)}))
	})

	It("rejects duplicated keys", func() {
		kind, _ := catalog.Get("gt")
		_, err := domain.NewRuleCatalog(kind, kind)
		Expect(err).To(MatchError(domain.ErrDuplicatedRuleKind))
	})

	It("rejects select params without options", func() {
		_, err := domain.NewRuleCatalog(domain.RuleKind{
			Key:     "broken",
			Params:  []domain.ParamSpec{{Name: "op", Type: domain.ParamTypeSelect}},
			Compare: func(domain.Subject, domain.RuleParams) (bool, error) { return true, nil },
		})
		Expect(err).To(HaveOccurred())
	})

	Describe("ResolveParams", func() {
		It("normalises numeric text", func() {
			kind, _ := catalog.Get("gte")
			params, err := kind.ResolveParams(domain.RuleParams{"value": domain.TextScalar(" 18 ")})
			Expect(err).NotTo(HaveOccurred())
			Expect(params["value"]).To(Equal(domain.NumberScalar(18)))
		})

		It("rejects missing and extra names", func() {
			kind, _ := catalog.Get("gte")
			_, err := kind.ResolveParams(domain.RuleParams{})
			Expect(err).To(MatchError(domain.ErrInvalidParam))

			_, err = kind.ResolveParams(domain.RuleParams{
				"value": domain.NumberScalar(1),
				"other": domain.NumberScalar(2),
			})
			Expect(err).To(MatchError(domain.ErrInvalidParam))
		})

		It("rejects select values outside the options", func() {
			kind, _ := catalog.Get(domain.RuleKindDateComparison)
			_, err := kind.ResolveParams(domain.RuleParams{
				"operator": domain.TextScalar("between"),
				"mode":     domain.TextScalar("now"),
				"value":    domain.TextScalar(""),
			})
			Expect(err).To(MatchError(domain.ErrInvalidParam))
		})

		It("requires a date literal in custom mode", func() {
			kind, _ := catalog.Get(domain.RuleKindDateComparison)
			_, err := kind.ResolveParams(domain.RuleParams{
				"operator": domain.TextScalar("lt"),
				"mode":     domain.TextScalar("custom"),
				"value":    domain.TextScalar("tomorrow"),
			})
			Expect(err).To(MatchError(domain.ErrInvalidParam))

			_, err = kind.ResolveParams(domain.RuleParams{
				"operator": domain.TextScalar("lt"),
				"mode":     domain.TextScalar("custom"),
				"value":    domain.TextScalar("2024-01-31"),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("leaves the date literal out unless the mode is custom", func() {
			kind, _ := catalog.Get(domain.RuleKindDateComparison)
			for _, mode := range []string{"now", "today"} {
				params, err := kind.ResolveParams(domain.RuleParams{
					"operator": domain.TextScalar("lt"),
					"mode":     domain.TextScalar(mode),
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(params["value"]).To(Equal(domain.TextScalar("")))
			}

			_, err := kind.ResolveParams(domain.RuleParams{
				"operator": domain.TextScalar("lt"),
				"mode":     domain.TextScalar("custom"),
			})
			Expect(err).To(MatchError(domain.ErrInvalidParam))
		})

		It("rejects patterns that do not compile", func() {
			kind, _ := catalog.Get(domain.RuleKindPattern)
			_, err := kind.ResolveParams(domain.RuleParams{"pattern": domain.TextScalar("([a-z")})
			Expect(err).To(MatchError(domain.ErrInvalidParam))
		})

		It("rejects negative lengths", func() {
			kind, _ := catalog.Get(domain.RuleKindMinLength)
			_, err := kind.ResolveParams(domain.RuleParams{"length": domain.NumberScalar(-1)})
			Expect(err).To(MatchError(domain.ErrInvalidParam))
		})
	})
})

var _ = Describe("ParseTemporal", func() {
	It("flags date-only values", func() {
		_, dateOnly, err := domain.ParseTemporal("2024-02-29", time.UTC)
		Expect(err).NotTo(HaveOccurred())
		Expect(dateOnly).To(BeTrue())
	})

	It("parses offsets and local date-times", func() {
		_, dateOnly, err := domain.ParseTemporal("2024-02-29T10:00:00Z", time.UTC)
		Expect(err).NotTo(HaveOccurred())
		Expect(dateOnly).To(BeFalse())

		_, _, err = domain.ParseTemporal("2024-02-29 10:00", time.UTC)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects anything else", func() {
		_, _, err := domain.ParseTemporal("29/02/2024", time.UTC)
		Expect(err).To(HaveOccurred())
	})
})
