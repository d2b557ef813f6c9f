package validation

import (
	"fmt"
	"strings"
	"time"
)

// FieldType is the expected shape of a schema field.
type FieldType string

const (
	FieldTypeString    FieldType = "string"
	FieldTypeBool      FieldType = "bool"
	FieldTypeArray     FieldType = "array"
	FieldTypeObject    FieldType = "object"
	FieldTypeTimestamp FieldType = "timestamp"
)

// RecordField defines one field in the scenario record schema. For object
// fields, Children are the member fields; for array fields, Children (when
// set) are the required fields of each element object.
type RecordField struct {
	Name     string
	Type     FieldType
	Required bool
	Enum     []string
	Children []RecordField
}

// ScenarioSchema is the structural schema for one scenario record.
var ScenarioSchema = []RecordField{
	{Name: "scenario_id", Type: FieldTypeString, Required: true},
	{Name: "title", Type: FieldTypeString, Required: true},
	{Name: "description", Type: FieldTypeString, Required: true},
	{Name: "vulnerabilities", Type: FieldTypeArray, Required: true},
	{
		Name: "metadata", Type: FieldTypeObject, Required: true,
		Children: []RecordField{
			{Name: "created_at", Type: FieldTypeTimestamp, Required: true},
			{Name: "last_updated", Type: FieldTypeTimestamp, Required: true},
			{Name: "validation_status", Type: FieldTypeString, Required: true},
		},
	},
	{
		Name: "urgency_level", Type: FieldTypeString,
		Enum: []string{"Low", "Medium", "High", "Critical", "Emergency"},
	},
	{
		Name: "vulnerability_context", Type: FieldTypeObject,
		Children: []RecordField{
			{Name: "primary", Type: FieldTypeString, Required: true},
			{Name: "intersectional", Type: FieldTypeArray},
			{Name: "trauma_history", Type: FieldTypeString},
		},
	},
	{
		Name: "legal_basis", Type: FieldTypeObject,
		Children: []RecordField{
			{Name: "federal", Type: FieldTypeArray},
			{Name: "state", Type: FieldTypeArray},
			{Name: "local", Type: FieldTypeArray},
		},
	},
	{
		Name: "messages", Type: FieldTypeArray,
		Children: []RecordField{
			{Name: "role", Type: FieldTypeString, Required: true},
			{Name: "content", Type: FieldTypeString, Required: true},
		},
	},
	{Name: "tags", Type: FieldTypeArray},
	{Name: "version", Type: FieldTypeString},
}

// SchemaValidator checks a scenario record's structural shape against the
// dataset schema, independent of semantic content. Every failure appends
// one error of the form "field='<name>': <reason>"; validation never stops
// at the first error.
type SchemaValidator struct {
	fields []RecordField
}

// NewSchemaValidator returns a validator over the scenario schema.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{fields: ScenarioSchema}
}

// ValidateRecord checks the record and returns validity plus the full
// accumulated error list.
func (v *SchemaValidator) ValidateRecord(record map[string]any) (bool, []string) {
	var errs []string
	validateFields(record, "", v.fields, &errs)
	return len(errs) == 0, errs
}

func validateFields(obj map[string]any, prefix string, fields []RecordField, errs *[]string) {
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}

		val, present := obj[f.Name]
		if !present {
			if f.Required {
				addFieldError(errs, path, "required field is missing")
			}
			continue
		}
		validateFieldValue(val, path, f, errs)
	}
}

func validateFieldValue(val any, path string, f RecordField, errs *[]string) {
	switch f.Type {
	case FieldTypeString, FieldTypeTimestamp:
		s, ok := val.(string)
		if !ok {
			addFieldError(errs, path, fmt.Sprintf("expected string, got %s", jsonTypeName(val)))
			return
		}
		if f.Type == FieldTypeTimestamp {
			if err := parseTimestamp(s); err != nil {
				addFieldError(errs, path, fmt.Sprintf("invalid timestamp %q: %v", s, err))
			}
			return
		}
		if len(f.Enum) > 0 && !containsString(f.Enum, s) {
			addFieldError(errs, path, fmt.Sprintf("invalid value %q: must be one of %s", s, strings.Join(f.Enum, ", ")))
		}

	case FieldTypeBool:
		if _, ok := val.(bool); !ok {
			addFieldError(errs, path, fmt.Sprintf("expected bool, got %s", jsonTypeName(val)))
		}

	case FieldTypeObject:
		m, ok := val.(map[string]any)
		if !ok {
			addFieldError(errs, path, fmt.Sprintf("expected object, got %s", jsonTypeName(val)))
			return
		}
		validateFields(m, path, f.Children, errs)

	case FieldTypeArray:
		items, ok := val.([]any)
		if !ok {
			addFieldError(errs, path, fmt.Sprintf("expected array, got %s", jsonTypeName(val)))
			return
		}
		if len(f.Children) == 0 {
			return
		}
		for i, item := range items {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			m, ok := item.(map[string]any)
			if !ok {
				addFieldError(errs, elemPath, fmt.Sprintf("expected object, got %s", jsonTypeName(item)))
				continue
			}
			validateFields(m, elemPath, f.Children, errs)
		}

	default:
		panic(fmt.Sprintf("validation: unknown field type %q for %s", f.Type, path))
	}
}

func addFieldError(errs *[]string, path, reason string) {
	*errs = append(*errs, fmt.Sprintf("field='%s': %s", path, reason))
}

// parseTimestamp accepts ISO-8601 timestamps. A trailing Z is normalized to
// an explicit UTC offset before parsing, matching how the dataset stores
// created_at/last_updated values.
func parseTimestamp(s string) error {
	norm := s
	if strings.HasSuffix(norm, "Z") {
		norm = strings.TrimSuffix(norm, "Z") + "+00:00"
	}
	layouts := []string{
		"2006-01-02T15:04:05.999999999-07:00",
		"2006-01-02T15:04:05-07:00",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if _, err := time.Parse(layout, norm); err == nil {
			return nil
		}
	}
	return fmt.Errorf("must be ISO-8601")
}

func jsonTypeName(val any) string {
	switch val.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", val)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
