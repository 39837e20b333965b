package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"entity-config-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseBody []byte
	tenantID     string
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Given(`^a fresh tenant$`, fc.aFreshTenant)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Rule catalog steps
	ctx.When(`^I list the validation rules for field type "([^"]*)"$`, fc.iListTheValidationRulesForFieldType)
	ctx.Then(`^the rule list should be "([^"]*)"$`, fc.theRuleListShouldBe)

	// Entity schema steps
	ctx.Given(`^the "([^"]*)" schema has a required integer field "([^"]*)" labelled "([^"]*)" with rule "([^"]*)" (\d+) and message "([^"]*)"$`, fc.theSchemaHasARequiredIntegerFieldWithRule)
	ctx.Given(`^the "([^"]*)" schema has a select field "([^"]*)" with options "([^"]*)"$`, fc.theSchemaHasASelectFieldWithOptions)
	ctx.When(`^I save the "([^"]*)" schema with a "([^"]*)" rule on the string field "([^"]*)"$`, fc.iSaveTheSchemaWithARuleOnTheStringField)
	ctx.When(`^I validate a "([^"]*)" record with data '([^']*)'$`, fc.iValidateARecordWithData)
	ctx.Then(`^the record should be valid$`, fc.theRecordShouldBeValid)
	ctx.Then(`^the record should have a single violation on "([^"]*)" saying "([^"]*)"$`, fc.theRecordShouldHaveASingleViolationOnSaying)
	ctx.Then(`^the response should report an issue on field "([^"]*)"$`, fc.theResponseShouldReportAnIssueOnField)
	ctx.Then(`^the stored "([^"]*)" schema should be at version (\d+)$`, fc.theStoredSchemaShouldBeAtVersion)

	// Draft steps
	ctx.When(`^I open a draft of the "([^"]*)" schema$`, fc.iOpenADraftOfTheSchema)
	ctx.When(`^I add an option to field (\d+) of the "([^"]*)" draft$`, fc.iAddAnOptionToFieldOfTheDraft)
	ctx.When(`^I remove option (\d+) of field (\d+) of the "([^"]*)" draft$`, fc.iRemoveOptionOfFieldOfTheDraft)
	ctx.When(`^I add a validation to field (\d+) of the "([^"]*)" draft$`, fc.iAddAValidationToFieldOfTheDraft)
	ctx.When(`^I change validation (\d+) of field (\d+) of the "([^"]*)" draft to "([^"]*)"$`, fc.iChangeValidationOfFieldOfTheDraftTo)
	ctx.When(`^I commit the "([^"]*)" draft$`, fc.iCommitTheDraft)
	ctx.Then(`^field (\d+) should have options "([^"]*)"$`, fc.fieldShouldHaveOptions)
	ctx.Then(`^field (\d+) should have the validations "([^"]*)"$`, fc.fieldShouldHaveTheValidations)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.tenantID = uuid.NewString()
		fc.response = nil
		fc.responseBody = nil
		return ctx, nil
	})
}

func (fc *FeatureContext) aFreshTenant() error {
	fc.tenantID = uuid.NewString()
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	return assertExpectedAndActual(assert.Equal, code, fc.response.StatusCode,
		"unexpected status code, body: %s", string(fc.responseBody))
}

// keep reads the whole body so that later steps can decode it more than once
func (fc *FeatureContext) keep(resp *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	fc.response = resp
	fc.responseBody = body
	return nil
}

func (fc *FeatureContext) decodeBody(target any) error {
	if err := json.Unmarshal(fc.responseBody, target); err != nil {
		return fmt.Errorf("decoding %q: %w", string(fc.responseBody), err)
	}
	return nil
}

func (fc *FeatureContext) expectStatus(code int) error {
	if fc.response.StatusCode != code {
		return fmt.Errorf("expected status %d, got %d: %s", code, fc.response.StatusCode, string(fc.responseBody))
	}
	return nil
}

type expectedAndActualAssertion func(t assert.TestingT, expected, actual any, msgAndArgs ...any) bool

func assertExpectedAndActual(a expectedAndActualAssertion, expected, actual any, msgAndArgs ...any) error {
	var t asserter
	a(&t, expected, actual, msgAndArgs...)
	return t.err
}

// asserter collects the first testify failure as a step error
type asserter struct {
	err error
}

func (a *asserter) Errorf(format string, args ...any) {
	if a.err == nil {
		a.err = fmt.Errorf(format, args...)
	}
}
