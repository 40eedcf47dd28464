// Package describe generates short template descriptions with Gemini. It is
// entirely optional: without an API key the rest of the toolkit works
// unchanged.
package describe

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/imuii/templatekit/internal/template"
)

// Describer produces a one-paragraph description for a parsed template.
type Describer interface {
	Describe(ctx context.Context, name string, sections []template.Section, fields []template.Field) (string, error)
}

// GeminiDescriber implements Describer using Gemini text generation.
type GeminiDescriber struct {
	client *genai.Client
	model  string
}

func NewGeminiDescriber(ctx context.Context, apiKey string, modelName string) (*GeminiDescriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiDescriber{client: client, model: modelName}, nil
}

func (d *GeminiDescriber) Describe(ctx context.Context, name string, sections []template.Section, fields []template.Field) (string, error) {
	prompt := buildPrompt(name, sections, fields)

	contents := genai.Text(prompt)
	resp, err := d.client.Models.GenerateContent(ctx, d.model, contents, nil)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "Portfolio template.", nil
	}
	return cleanOutput(text), nil
}

func buildPrompt(name string, sections []template.Section, fields []template.Field) string {
	var b strings.Builder
	b.WriteString("Write a single-sentence description for a portfolio HTML template, ")
	b.WriteString("suitable as a catalog blurb. No markdown, no quotes.\n\n")
	fmt.Fprintf(&b, "Template name: %s\n", name)

	if len(sections) > 0 {
		b.WriteString("Sections: ")
		names := make([]string, 0, len(sections))
		for _, s := range sections {
			names = append(names, string(s.Type))
		}
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n")
	}
	if len(fields) > 0 {
		b.WriteString("Editable fields: ")
		keys := make([]string, 0, len(fields))
		for _, f := range fields {
			keys = append(keys, f.Key)
		}
		b.WriteString(strings.Join(keys, ", "))
		b.WriteString("\n")
	}
	return b.String()
}

// cleanOutput strips the code fences and quote wrapping models sometimes add
// despite instructions.
func cleanOutput(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.Trim(text, `"`)
	return strings.TrimSpace(text)
}
