package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "required": ["name", "tags"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "tags": {"type": "array", "items": {"type": "string"}},
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["role"],
        "properties": {"role": {"enum": ["user", "assistant"]}}
      }
    }
  }
}`

func TestSchema_ValidateBytes(t *testing.T) {
	schema := MustCompile(testSchema)

	tests := []struct {
		name       string
		doc        string
		valid      bool
		wantFields []string
	}{
		{
			name:  "valid document",
			doc:   `{"name":"a","tags":["x"]}`,
			valid: true,
		},
		{
			name:       "missing required",
			doc:        `{"name":"a"}`,
			wantFields: []string{"tags"},
		},
		{
			name:       "wrong type",
			doc:        `{"name":"a","tags":"x"}`,
			wantFields: []string{"tags"},
		},
		{
			name:       "nested required",
			doc:        `{"name":"a","tags":[],"items":[{}]}`,
			wantFields: []string{"items"},
		},
		{
			name:       "multiple errors",
			doc:        `{"name":""}`,
			wantFields: []string{"name", "tags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := schema.ValidateBytes([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, !tt.valid, result.HasErrors())
			if !tt.valid {
				assert.ElementsMatch(t, tt.wantFields, result.TopLevelFields())
				assert.NotEmpty(t, result.GetErrorMessages())
			}
		})
	}
}

func TestSchema_NestedRequiredField(t *testing.T) {
	schema := MustCompile(testSchema)

	result, err := schema.ValidateBytes([]byte(`{"name":"a","tags":[],"items":[{}]}`))
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "items.0.role", result.Errors[0].Field)
	assert.Equal(t, "required", result.Errors[0].Code)
}

func TestSchema_InvalidJSON(t *testing.T) {
	schema := MustCompile(testSchema)

	_, err := schema.ValidateBytes([]byte(`{"name":`))
	assert.Error(t, err)
}

func TestSchema_ValidateValue(t *testing.T) {
	schema := MustCompile(testSchema)

	result, err := schema.ValidateValue(map[string]interface{}{
		"name": "a",
		"tags": []interface{}{"x", "y"},
	})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Error())
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile(`{"type": 12}`)
	assert.Error(t, err)
	assert.Panics(t, func() { MustCompile(`not json`) })
}
