package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) ListRuleKinds(fieldType string) (*http.Response, error) {
	query := url.Values{}
	if fieldType != "" {
		query.Set("field_type", fieldType)
	}
	return d.client.Get(fmt.Sprintf("%s/v1/validation-rules?%s", d.baseURL, query.Encode()))
}

func (d *APIDriver) PutSchema(tenantID, entityType string, body any) (*http.Response, error) {
	return d.send(http.MethodPut, d.schemaURL(tenantID, entityType), body)
}

func (d *APIDriver) GetSchema(tenantID, entityType string) (*http.Response, error) {
	return d.client.Get(d.schemaURL(tenantID, entityType))
}

func (d *APIDriver) ValidateRecord(tenantID, entityType string, data map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, d.schemaURL(tenantID, entityType)+"/validate", map[string]any{"data": data})
}

func (d *APIDriver) OpenDraft(tenantID, entityType string) (*http.Response, error) {
	return d.send(http.MethodPost, d.draftURL(tenantID, entityType), nil)
}

func (d *APIDriver) GetDraft(tenantID, entityType string) (*http.Response, error) {
	return d.client.Get(d.draftURL(tenantID, entityType))
}

func (d *APIDriver) CommitDraft(tenantID, entityType string) (*http.Response, error) {
	return d.send(http.MethodPost, d.draftURL(tenantID, entityType)+"/commit", nil)
}

func (d *APIDriver) AddOption(tenantID, entityType string, fieldIndex int) (*http.Response, error) {
	return d.send(http.MethodPost, fmt.Sprintf("%s/fields/%d/options", d.draftURL(tenantID, entityType), fieldIndex), nil)
}

func (d *APIDriver) RemoveOption(tenantID, entityType string, fieldIndex, optionIndex int) (*http.Response, error) {
	return d.send(http.MethodDelete, fmt.Sprintf("%s/fields/%d/options/%d", d.draftURL(tenantID, entityType), fieldIndex, optionIndex), nil)
}

func (d *APIDriver) AddValidation(tenantID, entityType string, fieldIndex int) (*http.Response, error) {
	return d.send(http.MethodPost, fmt.Sprintf("%s/fields/%d/validations", d.draftURL(tenantID, entityType), fieldIndex), nil)
}

func (d *APIDriver) UpdateValidationAction(tenantID, entityType string, fieldIndex, validationIndex int, action string) (*http.Response, error) {
	return d.send(http.MethodPut,
		fmt.Sprintf("%s/fields/%d/validations/%d/action", d.draftURL(tenantID, entityType), fieldIndex, validationIndex),
		map[string]any{"action": action})
}

func (d *APIDriver) schemaURL(tenantID, entityType string) string {
	return fmt.Sprintf("%s/v1/tenants/%s/entity-schemas/%s", d.baseURL, tenantID, entityType)
}

func (d *APIDriver) draftURL(tenantID, entityType string) string {
	return d.schemaURL(tenantID, entityType) + "/draft"
}

func (d *APIDriver) send(method, target string, body any) (*http.Response, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequest(method, target, &payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}
