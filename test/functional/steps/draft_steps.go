package steps

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
)

func (fc *FeatureContext) iOpenADraftOfTheSchema(entityType string) error {
	if err := fc.keep(fc.apiDriver.OpenDraft(fc.tenantID, entityType)); err != nil {
		return err
	}
	return fc.expectStatus(http.StatusCreated)
}

func (fc *FeatureContext) iAddAnOptionToFieldOfTheDraft(fieldIndex int, entityType string) error {
	return fc.keep(fc.apiDriver.AddOption(fc.tenantID, entityType, fieldIndex))
}

func (fc *FeatureContext) iRemoveOptionOfFieldOfTheDraft(optionIndex, fieldIndex int, entityType string) error {
	return fc.keep(fc.apiDriver.RemoveOption(fc.tenantID, entityType, fieldIndex, optionIndex))
}

func (fc *FeatureContext) iAddAValidationToFieldOfTheDraft(fieldIndex int, entityType string) error {
	return fc.keep(fc.apiDriver.AddValidation(fc.tenantID, entityType, fieldIndex))
}

func (fc *FeatureContext) iChangeValidationOfFieldOfTheDraftTo(validationIndex, fieldIndex int, entityType, action string) error {
	return fc.keep(fc.apiDriver.UpdateValidationAction(fc.tenantID, entityType, fieldIndex, validationIndex, action))
}

func (fc *FeatureContext) iCommitTheDraft(entityType string) error {
	return fc.keep(fc.apiDriver.CommitDraft(fc.tenantID, entityType))
}

func (fc *FeatureContext) draftField(fieldIndex int) (fieldBody, error) {
	if err := fc.expectStatus(http.StatusOK); err != nil {
		return fieldBody{}, err
	}
	var draft schemaBody
	if err := fc.decodeBody(&draft); err != nil {
		return fieldBody{}, err
	}
	if fieldIndex >= len(draft.Fields) {
		return fieldBody{}, fmt.Errorf("draft has %d fields", len(draft.Fields))
	}
	return draft.Fields[fieldIndex], nil
}

func (fc *FeatureContext) fieldShouldHaveOptions(fieldIndex int, options string) error {
	field, err := fc.draftField(fieldIndex)
	if err != nil {
		return err
	}
	return assertExpectedAndActual(assert.Equal, parseOptions(options), field.Options)
}

func (fc *FeatureContext) fieldShouldHaveTheValidations(fieldIndex int, actions string) error {
	field, err := fc.draftField(fieldIndex)
	if err != nil {
		return err
	}

	actual := make([]string, 0, len(field.Validations))
	for _, rule := range field.Validations {
		actual = append(actual, rule.Action)
	}
	return assertExpectedAndActual(assert.Equal, strings.Split(actions, ","), actual)
}
