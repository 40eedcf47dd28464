package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imuii/templatekit/internal/template"
)

func TestExtractPlaceholders_Dedup(t *testing.T) {
	keys := ExtractPlaceholders(`<h1>{{name}}</h1><p>{{bio}}</p><span>{{name}}</span>`)
	assert.Equal(t, []string{"name", "bio"}, keys)
}

func TestExtractPlaceholders_Empty(t *testing.T) {
	assert.Empty(t, ExtractPlaceholders(""))
	assert.Empty(t, ExtractPlaceholders("<p>no tokens here</p>"))
}

func TestExtractPlaceholders_NamespacedAndDerived(t *testing.T) {
	keys := ExtractPlaceholders(`{{personalInfo.name}} {{custom.links.github}} {{name.substring(0,1)}}`)
	assert.Equal(t, []string{"personalInfo.name", "custom.links.github", "name.substring(0,1)"}, keys)
}

func TestExtractPlaceholders_Exhaustive(t *testing.T) {
	// Every {{...}} substring must surface as a key, modulo de-duplication.
	h := `{{a}}{{b}}{{a}}{{c}}{{b}}`
	keys := ExtractPlaceholders(h)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, keys)
}

func TestGenerateFieldsFromPlaceholders_TypeInference(t *testing.T) {
	tests := []struct {
		key  string
		want template.FieldType
	}{
		{"email", template.FieldEmail},
		{"contactEmail", template.FieldEmail},
		{"phone", template.FieldPhone},
		{"skills", template.FieldArray},
		{"experience", template.FieldArray},
		{"education", template.FieldArray},
		{"projects", template.FieldArray},
		{"languages", template.FieldArray},
		{"certifications", template.FieldArray},
		{"startDate", template.FieldDate},
		{"date", template.FieldDate},
		{"name", template.FieldText},
		{"bio", template.FieldText},
	}

	for _, tt := range tests {
		fields := GenerateFieldsFromPlaceholders([]string{tt.key})
		require.Len(t, fields, 1, "key %q", tt.key)
		assert.Equal(t, tt.want, fields[0].Type, "key %q", tt.key)
	}
}

func TestGenerateFieldsFromPlaceholders_Labels(t *testing.T) {
	fields := GenerateFieldsFromPlaceholders([]string{"startDate", "name"})
	require.Len(t, fields, 2)
	assert.Equal(t, "Start Date", fields[0].Label)
	assert.Equal(t, "Name", fields[1].Label)
	assert.False(t, fields[0].Required)
}

func TestGenerateFieldsFromPlaceholders_DedupByKey(t *testing.T) {
	fields := GenerateFieldsFromPlaceholders([]string{"name", "name", "bio"})
	assert.Len(t, fields, 2)
}

func TestGenerateFieldsFromTemplate(t *testing.T) {
	fields := GenerateFieldsFromTemplate(`<h1>{{name}}</h1><a href="mailto:{{email}}">{{email}}</a>`)
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Key)
	assert.Equal(t, template.FieldEmail, fields[1].Type)

	assert.Empty(t, GenerateFieldsFromTemplate(""))
}
