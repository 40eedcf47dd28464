package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imuii/templatekit/internal/filler"
	"github.com/imuii/templatekit/internal/template"
)

func heroSection(order int) template.Section {
	return template.Section{
		ID:          "section-hero",
		Type:        template.TypeHero,
		Name:        "Hero",
		Order:       order,
		HTMLContent: "<h1>{{name}}</h1>",
		Visible:     true,
	}
}

func TestRenderTemplateWithSections_SortsByOrder(t *testing.T) {
	sections := []template.Section{
		{ID: "b", Type: template.TypeFooter, Order: 2, HTMLContent: "<footer>end</footer>"},
		{ID: "a", Type: template.TypeHero, Order: 1, HTMLContent: "<h1>start</h1>"},
	}

	got := RenderTemplateWithSections(sections, filler.GenerateDummyData(nil), Options{}, nil)

	assert.Less(t, 0, len(got))
	assert.Less(t, strings.Index(got, "<h1>start</h1>"), strings.Index(got, "<footer>end</footer>"))
}

func TestRenderTemplateWithSections_FillsPlaceholders(t *testing.T) {
	got := RenderTemplateWithSections([]template.Section{heroSection(1)},
		filler.GenerateDummyData(nil), Options{}, nil)

	assert.Contains(t, got, "<h1>John Doe</h1>")
}

func TestRenderTemplateWithSections_OptionalSuppression(t *testing.T) {
	sec := template.Section{
		ID:          "section-exp",
		Type:        template.TypeExperience,
		Order:       1,
		IsOptional:  true,
		Condition:   "if:experience",
		HTMLContent: `<div id="exp">{{experience}}</div>`,
	}

	empty := &template.FillData{}
	filled := &template.FillData{Experience: []template.Experience{{Company: "Acme"}}}

	assert.NotContains(t, RenderTemplateWithSections([]template.Section{sec}, empty, Options{}, nil), `id="exp"`)
	assert.Contains(t, RenderTemplateWithSections([]template.Section{sec}, filled, Options{}, nil), `id="exp"`)
}

func TestRenderTemplateWithSections_ConditionFailureSkipsEvenIfNotOptional(t *testing.T) {
	sec := template.Section{
		ID:          "section-skills",
		Type:        template.TypeSkills,
		Order:       1,
		IsOptional:  false,
		Condition:   "if:skills",
		HTMLContent: `<div id="skills">{{skills}}</div>`,
	}

	got := RenderTemplateWithSections([]template.Section{sec}, &template.FillData{}, Options{}, nil)

	assert.NotContains(t, got, `id="skills"`)
}

func TestRenderTemplateWithSections_Wrapper(t *testing.T) {
	got := RenderTemplateWithSections([]template.Section{heroSection(1)},
		filler.GenerateDummyData(nil), Options{IncludeWrapper: true}, nil)

	assert.Contains(t, got, "<!DOCTYPE html>")
	assert.Contains(t, got, "cdn.tailwindcss.com") // synthesized default head
	assert.Contains(t, got, "</html>")
}

func TestRenderTemplateWithSections_NoWrapper(t *testing.T) {
	got := RenderTemplateWithSections([]template.Section{heroSection(1)},
		filler.GenerateDummyData(nil), Options{IncludeWrapper: false}, nil)

	assert.NotContains(t, got, "<!DOCTYPE html>")
}

func TestRenderTemplateWithSections_ExplicitMetaWins(t *testing.T) {
	meta := &TemplateMeta{
		HeadContent:    "<title>Custom</title>",
		BodyAttributes: `class="dark"`,
	}

	got := RenderTemplateWithSections([]template.Section{heroSection(1)},
		filler.GenerateDummyData(nil), Options{IncludeWrapper: true}, meta)

	assert.Contains(t, got, "<title>Custom</title>")
	assert.Contains(t, got, `<body class="dark">`)
	assert.NotContains(t, got, "cdn.tailwindcss.com")
}

func TestResolveDocumentMeta_JSONMetadata(t *testing.T) {
	meta := &TemplateMeta{
		HTMLTemplate: `{"headContent":"<title>J</title>","bodyAttributes":"data-mode=\"x\""}`,
	}

	head, body := resolveDocumentMeta(meta, true)

	assert.Equal(t, "<title>J</title>", head)
	assert.Equal(t, `data-mode="x"`, body)
}

func TestResolveDocumentMeta_RegexFallback(t *testing.T) {
	meta := &TemplateMeta{
		HTMLTemplate: `<html><head><title>R</title></head><body class="lite"><p>x</p></body></html>`,
	}

	head, body := resolveDocumentMeta(meta, true)

	assert.Equal(t, "<title>R</title>", head)
	assert.Equal(t, `class="lite"`, body)
}

func TestResolveDocumentMeta_MalformedJSONFallsThrough(t *testing.T) {
	meta := &TemplateMeta{
		HTMLTemplate: `{not json<head><title>F</title></head><body><p>x</p></body>`,
	}

	head, _ := resolveDocumentMeta(meta, true)

	assert.Equal(t, "<title>F</title>", head)
}

func TestResolveDocumentMeta_DefaultHeadOnlyWithWrapper(t *testing.T) {
	head, _ := resolveDocumentMeta(nil, false)
	assert.Empty(t, head)

	head, _ = resolveDocumentMeta(nil, true)
	assert.NotEmpty(t, head)
}

func TestRenderTemplateWithSections_DynamicSlotInjection(t *testing.T) {
	sections := []template.Section{
		{ID: "section-main", Type: template.TypeHero, Order: 1,
			HTMLContent: "<main>{{customSections}}</main>"},
		{ID: "custom-1", Type: template.TypeCustom, Order: 2,
			HTMLContent: "<div>custom block {{name}}</div>"},
	}

	got := RenderTemplateWithSections(sections, filler.GenerateDummyData(nil), Options{}, nil)

	assert.Contains(t, got, "<main><div>custom block John Doe</div>")
	// Injected once, at the slot, not appended again at the end.
	assert.Equal(t, 1, strings.Count(got, "custom block"))
}

func TestRenderTemplateWithSections_CustomAppendedWithoutSlot(t *testing.T) {
	sections := []template.Section{
		{ID: "section-main", Type: template.TypeHero, Order: 1, HTMLContent: "<main>m</main>"},
		{ID: "custom-1", Type: template.TypeCustom, Order: 2, HTMLContent: "<div>tail</div>"},
	}

	got := RenderTemplateWithSections(sections, filler.GenerateDummyData(nil), Options{}, nil)

	assert.Less(t, strings.Index(got, "<main>m</main>"), strings.Index(got, "<div>tail</div>"))
}

func TestRenderTemplateWithSections_SlotEmptyWithoutCustoms(t *testing.T) {
	sections := []template.Section{
		{ID: "section-main", Type: template.TypeHero, Order: 1,
			HTMLContent: "<main>{{customSections}}</main>"},
	}

	got := RenderTemplateWithSections(sections, filler.GenerateDummyData(nil), Options{}, nil)

	assert.Contains(t, got, "<main></main>")
	assert.NotContains(t, got, "{{customSections}}")
}

func TestConditionSatisfied(t *testing.T) {
	data := &template.FillData{
		PersonalInfo: template.PersonalInfo{Bio: "hi", Email: "a@b.c"},
		Skills:       []template.Skill{{Name: "Go"}},
	}

	tests := []struct {
		condition string
		want      bool
	}{
		{"", true},
		{"if:skills", true},
		{"if:experience", false},
		{"if:projects", false},
		{"if:education", false},
		{"if:about", true},
		{"if:bio", true},
		{"if:contact", true},
		{"if:somethingElse", true},
		{"not-a-condition", true},
	}

	for _, tt := range tests {
		sec := template.Section{Condition: tt.condition}
		assert.Equal(t, tt.want, conditionSatisfied(sec, data), "condition %q", tt.condition)
	}
}

func TestConditionSatisfied_NilData(t *testing.T) {
	sec := template.Section{Condition: "if:experience"}
	assert.False(t, conditionSatisfied(sec, nil))
}

func TestRenderTemplateWithSections_CleansSectionMetadataArtifacts(t *testing.T) {
	sections := []template.Section{
		{ID: "s", Type: template.TypeHero, Order: 1,
			HTMLContent: "<p>map[description: junk]{{name}}</p>"},
	}

	got := RenderTemplateWithSections(sections, filler.GenerateDummyData(nil), Options{}, nil)

	require.Contains(t, got, "John Doe")
	assert.NotContains(t, got, "map[description")
}


