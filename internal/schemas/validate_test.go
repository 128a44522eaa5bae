package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cvSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["personal"],
	"properties": {
		"personal": {
			"type": "object",
			"properties": {"name": {"type": "string"}}
		},
		"summary": {"type": "string"}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	doc := `{"personal": {"name": "Thandi"}, "summary": "Engineer"}`
	assert.NoError(t, ValidateJSONString(cvSchema, doc))
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `{"summary": "Engineer"}`
	err := ValidateJSONString(cvSchema, doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "personal")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	doc := `{"personal": {"name": 42}}`
	err := ValidateJSONString(cvSchema, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": nonsense}`, `{}`)
	assert.Error(t, err)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "cv.schema.json")
	docPath := filepath.Join(dir, "cv.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(cvSchema), 0644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"personal": {}}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "cv.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(cvSchema), 0644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(filepath.Join(dir, "absent.schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/no_such.schema.json"))
}
