package domain

import "slices"

type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeFloat    FieldType = "float"
	FieldTypeDate     FieldType = "date"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeURL      FieldType = "url"
	FieldTypeSelect   FieldType = "select"
)

var FieldTypes = []FieldType{
	FieldTypeString,
	FieldTypeInteger,
	FieldTypeFloat,
	FieldTypeDate,
	FieldTypeDatetime,
	FieldTypeEmail,
	FieldTypePhone,
	FieldTypeURL,
	FieldTypeSelect,
}

func (t FieldType) IsValid() bool {
	return slices.Contains(FieldTypes, t)
}

func (t FieldType) IsNumeric() bool {
	return t == FieldTypeInteger || t == FieldTypeFloat
}

func (t FieldType) IsTemporal() bool {
	return t == FieldTypeDate || t == FieldTypeDatetime
}

func (t FieldType) String() string {
	return string(t)
}
