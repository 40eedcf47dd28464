package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imuii/templatekit/internal/template"
)

func TestGetPreset(t *testing.T) {
	preset := GetPreset(template.TypeHero)
	require.NotNil(t, preset)
	assert.Equal(t, "Hero Section", preset.Name)
	assert.Equal(t, "full-width", preset.DefaultLayout)
	assert.Len(t, preset.Templates, 3)

	assert.Nil(t, GetPreset(template.SectionType("banner")))
}

func TestGetSectionTemplate_FallsBackToDefaultLayout(t *testing.T) {
	tpl := GetSectionTemplate(template.TypeAbout, "no-such-layout")
	assert.Equal(t, GetSectionTemplate(template.TypeAbout, "simple"), tpl)
	assert.Empty(t, GetSectionTemplate(template.SectionType("banner"), "simple"))
}

func TestConvertFullCodeToSections(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head><title>t</title></head>
<body>
<!-- [HEADER] Site Header -->
<header class="sticky top-0"><nav>{{name}}</nav></header>
<!-- [SKILLS] [OPTIONAL] My Skills -->
<section class="flex flex-wrap gap-3">{{skills}}</section>
</body>
</html>`

	sections := ConvertFullCodeToSections(html)

	require.Len(t, sections, 2)
	assert.Equal(t, template.TypeHeader, sections[0].Type)
	assert.Equal(t, "Site Header", sections[0].Name)
	assert.Equal(t, "sticky", sections[0].Layout)
	assert.Equal(t, 1, sections[0].Order)
	assert.True(t, sections[0].Visible)
	assert.NotEmpty(t, sections[0].ID)

	assert.Equal(t, template.TypeSkills, sections[1].Type)
	assert.True(t, sections[1].IsOptional)
	assert.Equal(t, "tags", sections[1].Layout)
}

func TestConvertFullCodeToSections_Empty(t *testing.T) {
	assert.Empty(t, ConvertFullCodeToSections(""))
	assert.Empty(t, ConvertFullCodeToSections("   "))
	assert.Empty(t, ConvertFullCodeToSections("<html><body><p>no markers</p></body></html>"))
}

func TestConvertSectionsToFullCode(t *testing.T) {
	sections := []template.Section{
		{ID: "b", Type: template.TypeFooter, Name: "Footer", Order: 2},
		{ID: "a", Type: template.TypeHero, Name: "Hero", Order: 1, IsOptional: true, Layout: "centered"},
		{ID: "a", Type: template.TypeHero, Name: "Duplicate", Order: 3},
	}

	html := ConvertSectionsToFullCode(sections, "", "")

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "https://cdn.tailwindcss.com")
	assert.NotContains(t, html, "Duplicate")

	heroAt := strings.Index(html, "<!-- [HERO] [OPTIONAL] Hero -->")
	footerAt := strings.Index(html, "<!-- [FOOTER] Footer -->")
	require.GreaterOrEqual(t, heroAt, 0)
	require.GreaterOrEqual(t, footerAt, 0)
	assert.Less(t, heroAt, footerAt)
}

func TestConvertSectionsToFullCode_Empty(t *testing.T) {
	assert.Empty(t, ConvertSectionsToFullCode(nil, "", ""))
}

func TestConvertSectionsToFullCode_HeadAndBodyAttrs(t *testing.T) {
	sections := []template.Section{{ID: "a", Type: template.TypeHero, Name: "Hero", Order: 1}}

	html := ConvertSectionsToFullCode(sections, "<title>Custom</title>", `class="dark"`)

	assert.Contains(t, html, "<title>Custom</title>")
	assert.Contains(t, html, `<body class="dark">`)
	assert.NotContains(t, html, "cdn.tailwindcss.com")
}

func TestConvertSectionsToFullCode_StripsPresetMarkers(t *testing.T) {
	// The about preset already carries a marker comment; it must not be
	// doubled.
	sections := []template.Section{{ID: "a", Type: template.TypeAbout, Name: "About", Order: 1, Layout: "simple"}}

	html := ConvertSectionsToFullCode(sections, "", "")

	assert.Equal(t, 1, strings.Count(html, "<!-- [ABOUT]"))
}

func TestConvertSectionsToFullCode_ComponentsOverridePreset(t *testing.T) {
	sections := []template.Section{{
		ID: "a", Type: template.TypeHero, Name: "Hero", Order: 1,
		Components: []template.Component{
			{ID: "c2", Type: "button", Order: 2, Config: template.Config{"text": "Hire"}},
			{ID: "c1", Type: "title", Order: 1, Config: template.Config{"text": "Hi"}},
		},
	}}

	html := ConvertSectionsToFullCode(sections, "", "")

	titleAt := strings.Index(html, ">Hi</h1>")
	buttonAt := strings.Index(html, ">Hire</a>")
	require.GreaterOrEqual(t, titleAt, 0)
	require.GreaterOrEqual(t, buttonAt, 0)
	assert.Less(t, titleAt, buttonAt)
	assert.NotContains(t, html, "min-h-screen") // preset skeleton not used
}

func TestMarkerRoundTrip(t *testing.T) {
	sections := []template.Section{
		{ID: NewSectionID(), Type: template.TypeHeader, Name: "Header Navigation", Order: 1},
		{ID: NewSectionID(), Type: template.TypeHero, Name: "Hero Section", Order: 2, IsOptional: true},
		{ID: NewSectionID(), Type: template.TypeSkills, Name: "Skills", Order: 3, IsOptional: true},
		{ID: NewSectionID(), Type: template.TypeFooter, Name: "Footer", Order: 4},
	}

	roundTripped := ConvertFullCodeToSections(ConvertSectionsToFullCode(sections, "", ""))

	require.Len(t, roundTripped, len(sections))
	for i, want := range sections {
		assert.Equal(t, want.Type, roundTripped[i].Type, "section %d type", i)
		assert.Equal(t, want.Name, roundTripped[i].Name, "section %d name", i)
		assert.Equal(t, want.IsOptional, roundTripped[i].IsOptional, "section %d optional", i)
	}
}

func TestApplySectionConfig_BackgroundColor(t *testing.T) {
	section := template.Section{
		ID: "a", Type: template.TypeSkills, Name: "Skills", Order: 1, Layout: "tags",
		Config: template.Config{"backgroundColor": "black/50"},
	}

	html := generateSectionHTML(section)

	assert.Contains(t, html, `<section id="skills" class="bg-black/50 py-20">`)
	assert.NotContains(t, html, "bg-white/5")
}

func TestApplySectionConfig_GradientBackground(t *testing.T) {
	section := template.Section{
		ID: "a", Type: template.TypeHero, Name: "Hero", Order: 1, Layout: "full-width",
		Config: template.Config{"backgroundColor": "white/10"},
	}

	html := generateSectionHTML(section)

	assert.Contains(t, html, "bg-white/10")
	assert.NotContains(t, html, "from-primary/20")
	assert.NotContains(t, html, "to-purple-500/20")
}

func TestApplySectionConfig_NavItems(t *testing.T) {
	section := template.Section{
		ID: "a", Type: template.TypeHeader, Name: "Header", Order: 1, Layout: "centered",
		Config: template.Config{"navItems": []any{
			map[string]any{"label": "Work", "href": "#work"},
			"Blog",
		}},
	}

	html := generateSectionHTML(section)

	assert.Contains(t, html, `<a href="#work" class="text-white/80 hover:text-white transition">Work</a>`)
	assert.Contains(t, html, `<a href="#blog"`)
	assert.NotContains(t, html, `href="#about"`)
}

func TestDetectLayout(t *testing.T) {
	tests := []struct {
		name string
		typ  template.SectionType
		html string
		want string
	}{
		{"sticky header", template.TypeHeader, `<header class="sticky top-0">`, "sticky"},
		{"centered header", template.TypeHeader, `<header class="text-center">`, "centered"},
		{"timeline about", template.TypeAbout, `<div class="border-l-4">`, "timeline"},
		{"no match falls back", template.TypeHero, `<div>plain</div>`, "full-width"},
		{"unknown type", template.SectionType("banner"), `<div></div>`, "default"},
		{"empty html", template.TypeHero, "", "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLayout(tt.typ, tt.html))
		})
	}
}

func TestExtractConfig(t *testing.T) {
	config := ExtractConfig(template.TypeHero, `<h1>{{title}}</h1>`)

	assert.Equal(t, "{{name}}", config["title"])
	assert.NotContains(t, config, "subtitle") // placeholder absent
	assert.Equal(t, false, config["showPhoto"])

	assert.Empty(t, ExtractConfig(template.SectionType("banner"), "<div></div>"))
}

func TestGetDefaultSection(t *testing.T) {
	assert.Nil(t, GetDefaultSection(template.SectionType("banner"), ""))

	header := GetDefaultSection(template.TypeHeader, "")
	require.NotNil(t, header)
	assert.False(t, header.IsOptional)
	assert.Empty(t, header.Condition)
	assert.Equal(t, 0, header.Order)
	assert.Equal(t, "centered", header.Layout)
	assert.NotEmpty(t, header.HTMLContent)

	hero := GetDefaultSection(template.TypeHero, "split")
	require.NotNil(t, hero)
	assert.True(t, hero.IsOptional)
	assert.Empty(t, hero.Condition)
	assert.Equal(t, "split", hero.Layout)

	skills := GetDefaultSection(template.TypeSkills, "")
	require.NotNil(t, skills)
	assert.True(t, skills.IsOptional)
	assert.Equal(t, "if:skills", skills.Condition)

	footer := GetDefaultSection(template.TypeFooter, "")
	require.NotNil(t, footer)
	assert.False(t, footer.IsOptional)
	assert.Empty(t, footer.Condition)
}

func TestValidateSection(t *testing.T) {
	valid, errs := ValidateSection(template.Section{
		ID: "a", Type: template.TypeAbout, Name: "About", Order: 1,
	})
	assert.True(t, valid)
	assert.Empty(t, errs)

	valid, errs = ValidateSection(template.Section{Order: -1})
	assert.False(t, valid)
	assert.Contains(t, errs, "Section type is required")
	assert.Contains(t, errs, "Section name is required")
	assert.Contains(t, errs, "Section order is required")
}

func TestValidateSection_PresetConstraints(t *testing.T) {
	// Hero's title field is required.
	valid, errs := ValidateSection(template.Section{
		ID: "a", Type: template.TypeHero, Name: "Hero", Order: 1,
	})
	assert.False(t, valid)
	assert.Contains(t, errs, "title is required")

	valid, errs = ValidateSection(template.Section{
		ID: "a", Type: template.TypeHero, Name: "Hero", Order: 1,
		Config: template.Config{"title": strings.Repeat("x", 101)},
	})
	assert.False(t, valid)
	assert.Contains(t, errs, "title exceeds maximum length of 100")
}
