package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["text"],
	"properties": {
		"text": {"type": "string", "minLength": 1}
	}
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidDocument(t *testing.T) {
	schemaPath := writeTempFile(t, "schema.json", testSchema)
	jsonPath := writeTempFile(t, "doc.json", `{"text": "The cat sat."}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingField(t *testing.T) {
	schemaPath := writeTempFile(t, "schema.json", testSchema)
	jsonPath := writeTempFile(t, "doc.json", `{}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_WrongType(t *testing.T) {
	schemaPath := writeTempFile(t, "schema.json", testSchema)
	jsonPath := writeTempFile(t, "doc.json", `{"text": 42}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeTempFile(t, "doc.json", `{"text": "hi"}`)

	err := ValidateJSON("testdata/nonexistent_schema.json", jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	schemaPath := writeTempFile(t, "schema.json", testSchema)

	err := ValidateJSON(schemaPath, "testdata/nonexistent_doc.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedDocument(t *testing.T) {
	schemaPath := writeTempFile(t, "schema.json", testSchema)
	jsonPath := writeTempFile(t, "doc.json", `{ invalid json }`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)
}

func TestValidateZonesFile(t *testing.T) {
	valid := writeTempFile(t, "zones.json", `{
		"zones": [{"text": "The cat sat.", "category": "Narration"}]
	}`)
	assert.NoError(t, ValidateZonesFile(valid))

	invalid := writeTempFile(t, "bad_zones.json", `{
		"zones": [{"text": "The cat sat.", "category": "Poetry"}]
	}`)
	err := ValidateZonesFile(invalid)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type, got %T: %v", err, err)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(testSchema, `{"text": "test"}`))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"other": 30}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "text", Message: "is required"},
			{Field: "category", Message: "must be one of the known labels"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "text")
	assert.Contains(t, errorMsg, "category")
}

func TestResolveSchemaPath_FindsZonesSchema(t *testing.T) {
	// Running from internal/schemas, the repo schema sits two levels up.
	path := ResolveSchemaPath(ZonesSchemaPath)
	assert.NotEmpty(t, path)
}
