package persistence_test

import (
	"entity-config-server/internal/entity_config/domain"
	shareddomain "entity-config-server/internal/shared_kernel/domain"

	"github.com/onsi/gomega"
)

func usuarioSchema(tenantID shareddomain.ID) domain.EntitySchema {
	schema, err := domain.NewEntitySchemaBuilder().
		WithTenantID(tenantID).
		WithEntityType("usuario").
		WithFields([]domain.FieldDefinition{
			{
				Name:     "edad",
				Label:    "Edad",
				Type:     domain.FieldTypeInteger,
				Required: true,
				Validations: []domain.ValidationRule{{
					Action:       "gte",
					Params:       domain.RuleParams{"value": domain.NumberScalar(18)},
					ErrorMessage: "Debe ser mayor de edad",
				}},
			},
			{
				Name:  "estado",
				Label: "Estado",
				Type:  domain.FieldTypeSelect,
				Validations: []domain.ValidationRule{{
					Action: "in_options",
					Params: domain.RuleParams{},
				}},
				Options: []domain.FieldOption{
					{Label: "Activo", Value: domain.TextScalar("active")},
					{Label: "Nivel 2", Value: domain.NumberScalar(2)},
				},
			},
		}).
		Build()
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return schema
}
