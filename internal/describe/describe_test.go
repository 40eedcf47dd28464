package describe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imuii/templatekit/internal/template"
)

func TestNewGeminiDescriber_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiDescriber(context.Background(), "", "gemini-2.5-flash")
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("Minimal",
		[]template.Section{
			{Type: template.TypeHero},
			{Type: template.TypeSkills},
		},
		[]template.Field{
			{Key: "name"},
			{Key: "email"},
		})

	assert.Contains(t, prompt, "Template name: Minimal")
	assert.Contains(t, prompt, "Sections: hero, skills")
	assert.Contains(t, prompt, "Editable fields: name, email")
}

func TestBuildPrompt_OmitsEmptyParts(t *testing.T) {
	prompt := buildPrompt("Bare", nil, nil)

	assert.NotContains(t, prompt, "Sections:")
	assert.NotContains(t, prompt, "Editable fields:")
}

func TestCleanOutput(t *testing.T) {
	assert.Equal(t, "A clean template.", cleanOutput("```\nA clean template.\n```"))
	assert.Equal(t, "Quoted.", cleanOutput(`"Quoted."`))
	assert.Equal(t, "Plain.", cleanOutput("  Plain.  "))
}
