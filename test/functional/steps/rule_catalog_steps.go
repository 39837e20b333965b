package steps

import (
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
)

func (fc *FeatureContext) iListTheValidationRulesForFieldType(fieldType string) error {
	return fc.keep(fc.apiDriver.ListRuleKinds(fieldType))
}

func (fc *FeatureContext) theRuleListShouldBe(keys string) error {
	if err := fc.expectStatus(http.StatusOK); err != nil {
		return err
	}

	var list struct {
		Data []struct {
			Key string `json:"key"`
		} `json:"data"`
	}
	if err := fc.decodeBody(&list); err != nil {
		return err
	}

	actual := make([]string, 0, len(list.Data))
	for _, kind := range list.Data {
		actual = append(actual, kind.Key)
	}
	return assertExpectedAndActual(assert.Equal, strings.Split(keys, ","), actual)
}
