package steps

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
)

type fieldBody struct {
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	Type        string           `json:"type"`
	Required    bool             `json:"required"`
	Validations []validationBody `json:"validations"`
	Options     []optionBody     `json:"options,omitempty"`
}

type validationBody struct {
	Action       string         `json:"action"`
	Params       map[string]any `json:"params"`
	ErrorMessage string         `json:"error_message"`
}

type optionBody struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

type schemaBody struct {
	TenantID   string      `json:"tenant_id"`
	EntityType string      `json:"entity_type"`
	Fields     []fieldBody `json:"fields"`
	Version    int         `json:"version"`
}

func (fc *FeatureContext) putSchema(entityType string, fields ...fieldBody) error {
	return fc.keep(fc.apiDriver.PutSchema(fc.tenantID, entityType, map[string]any{"fields": fields}))
}

func (fc *FeatureContext) theSchemaHasARequiredIntegerFieldWithRule(entityType, name, label, action string, value int, message string) error {
	err := fc.putSchema(entityType, fieldBody{
		Name:     name,
		Label:    label,
		Type:     "integer",
		Required: true,
		Validations: []validationBody{{
			Action:       action,
			Params:       map[string]any{"value": value},
			ErrorMessage: message,
		}},
	})
	if err != nil {
		return err
	}
	return fc.expectStatus(http.StatusOK)
}

// options are written as "Label:value" pairs separated by commas
func (fc *FeatureContext) theSchemaHasASelectFieldWithOptions(entityType, name, options string) error {
	err := fc.putSchema(entityType, fieldBody{
		Name:        name,
		Label:       name,
		Type:        "select",
		Validations: []validationBody{},
		Options:     parseOptions(options),
	})
	if err != nil {
		return err
	}
	return fc.expectStatus(http.StatusOK)
}

func (fc *FeatureContext) iSaveTheSchemaWithARuleOnTheStringField(entityType, action, name string) error {
	return fc.putSchema(entityType, fieldBody{
		Name:  name,
		Label: name,
		Type:  "string",
		Validations: []validationBody{{
			Action: action,
			Params: map[string]any{"value": 1},
		}},
	})
}

func (fc *FeatureContext) iValidateARecordWithData(entityType, data string) error {
	var bag map[string]any
	if err := json.Unmarshal([]byte(data), &bag); err != nil {
		return err
	}
	return fc.keep(fc.apiDriver.ValidateRecord(fc.tenantID, entityType, bag))
}

type validateResponse struct {
	Valid      bool `json:"valid"`
	Violations []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"violations"`
}

func (fc *FeatureContext) validation() (validateResponse, error) {
	var result validateResponse
	if err := fc.expectStatus(http.StatusOK); err != nil {
		return result, err
	}
	err := fc.decodeBody(&result)
	return result, err
}

func (fc *FeatureContext) theRecordShouldBeValid() error {
	result, err := fc.validation()
	if err != nil {
		return err
	}
	if !result.Valid || len(result.Violations) != 0 {
		return fmt.Errorf("expected a valid record, got %s", string(fc.responseBody))
	}
	return nil
}

func (fc *FeatureContext) theRecordShouldHaveASingleViolationOnSaying(field, message string) error {
	result, err := fc.validation()
	if err != nil {
		return err
	}
	if result.Valid || len(result.Violations) != 1 {
		return fmt.Errorf("expected exactly one violation, got %s", string(fc.responseBody))
	}
	if err := assertExpectedAndActual(assert.Equal, field, result.Violations[0].Field); err != nil {
		return err
	}
	return assertExpectedAndActual(assert.Equal, message, result.Violations[0].Message)
}

func (fc *FeatureContext) theResponseShouldReportAnIssueOnField(field string) error {
	var body struct {
		Issues []struct {
			Field string `json:"field"`
		} `json:"issues"`
	}
	if err := fc.decodeBody(&body); err != nil {
		return err
	}
	for _, issue := range body.Issues {
		if issue.Field == field {
			return nil
		}
	}
	return fmt.Errorf("no issue reported on %q: %s", field, string(fc.responseBody))
}

func (fc *FeatureContext) theStoredSchemaShouldBeAtVersion(entityType string, version int) error {
	if err := fc.keep(fc.apiDriver.GetSchema(fc.tenantID, entityType)); err != nil {
		return err
	}
	if err := fc.expectStatus(http.StatusOK); err != nil {
		return err
	}
	var schema schemaBody
	if err := fc.decodeBody(&schema); err != nil {
		return err
	}
	return assertExpectedAndActual(assert.Equal, version, schema.Version)
}

func parseOptions(options string) []optionBody {
	result := make([]optionBody, 0)
	for _, pair := range strings.Split(options, ",") {
		label, value, _ := strings.Cut(strings.TrimSpace(pair), ":")
		result = append(result, optionBody{Label: label, Value: value})
	}
	return result
}
