package builder

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/imuii/templatekit/internal/parser"
	"github.com/imuii/templatekit/internal/template"
)

// layoutKeywords drives layout detection from raw section HTML. The first
// layout of a preset whose keywords appear in the HTML wins.
var layoutKeywords = map[string][]string{
	"centered":     {"center", "text-center", "justify-center"},
	"left-aligned": {"left", "justify-start"},
	"sticky":       {"sticky", "top-0"},
	"full-width":   {"full", "w-full"},
	"split":        {"grid", "grid-cols-2", "split"},
	"simple":       {"simple", "basic"},
	"card":         {"card", "rounded", "bg-white"},
	"timeline":     {"timeline", "border-l"},
	"list":         {"list", "space-y"},
	"grid":         {"grid", "grid-cols"},
	"tags":         {"flex", "flex-wrap", "gap"},
	"progress":     {"progress", "w-full"},
	"masonry":      {"columns", "masonry"},
	"links":        {"links", "ul", "li"},
	"social":       {"social", "flex", "gap"},
}

var (
	markerStripRe = regexp.MustCompile(`(?i)<!--\s*\[[A-Z_]+\]\s*(?:\[OPTIONAL\])?\s*.*?-->\s*`)
	bgClassRe     = regexp.MustCompile(`^(bg-|from-|to-)`)
	desktopNavRe  = regexp.MustCompile(`(?s)(<div class="[^"]*hidden md:flex gap-6[^"]*">).*?(</div>)`)
	plainNavRe    = regexp.MustCompile(`(?s)(<div class="[^"]*flex gap-6[^"]*">).*?(</div>)`)
)

// ConvertFullCodeToSections parses a full HTML template into the section
// model the visual editor works on: each parsed section gets a fresh ID, a
// layout inferred from its HTML, and a best-effort config extraction.
func ConvertFullCodeToSections(htmlTemplate string) []template.Section {
	if strings.TrimSpace(htmlTemplate) == "" {
		return nil
	}

	parsed := parser.ParseTemplate(htmlTemplate)
	if len(parsed.Sections) == 0 {
		return nil
	}

	sections := make([]template.Section, 0, len(parsed.Sections))
	for i, s := range parsed.Sections {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("%s Section", s.Type)
		}
		order := s.Order
		if order == 0 {
			order = i + 1
		}
		sections = append(sections, template.Section{
			ID:          NewSectionID(),
			Type:        s.Type,
			Name:        name,
			Layout:      DetectLayout(s.Type, s.HTMLContent),
			Order:       order,
			IsOptional:  s.IsOptional,
			Condition:   s.Condition,
			HTMLContent: s.HTMLContent,
			Visible:     true,
			Config:      ExtractConfig(s.Type, s.HTMLContent),
		})
	}
	return sections
}

// ConvertSectionsToFullCode regenerates a complete HTML document from the
// section model. Sections are de-duplicated by ID (first wins) and sorted by
// order; each section's HTML is rebuilt from its components or preset, any
// pre-existing marker comment is stripped, and the canonical marker is
// prefixed.
func ConvertSectionsToFullCode(sections []template.Section, headContent, bodyAttributes string) string {
	if len(sections) == 0 {
		return ""
	}

	seen := make(map[string]bool, len(sections))
	unique := make([]template.Section, 0, len(sections))
	for _, s := range sections {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		unique = append(unique, s)
	}
	sort.SliceStable(unique, func(i, j int) bool { return unique[i].Order < unique[j].Order })

	parts := make([]string, 0, len(unique))
	for _, s := range unique {
		html := generateSectionHTML(s)
		html = strings.TrimSpace(markerStripRe.ReplaceAllString(html, ""))

		marker := fmt.Sprintf("<!-- [%s]", strings.ToUpper(string(s.Type)))
		if s.IsOptional {
			marker += " [OPTIONAL]"
		}
		marker += fmt.Sprintf(" %s -->", s.Name)

		parts = append(parts, marker+"\n"+html)
	}
	sectionsHTML := strings.Join(parts, "\n\n")

	head := headContent
	if head == "" {
		head = `
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Portfolio Template</title>
  <script src="https://cdn.tailwindcss.com"></script>`
	}
	bodyAttrs := ""
	if strings.TrimSpace(bodyAttributes) != "" {
		bodyAttrs = " " + strings.TrimSpace(bodyAttributes)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>%s
</head>
<body%s>
%s
</body>
</html>`, head, bodyAttrs, sectionsHTML)
}

// generateSectionHTML rebuilds one section's HTML. Sections carrying nested
// components render those inside a generic container; otherwise the preset
// template for (type, layout) is used with the section's config applied.
// Sections of unknown type keep their raw HTML.
func generateSectionHTML(s template.Section) string {
	if len(s.Components) > 0 {
		comps := make([]template.Component, len(s.Components))
		copy(comps, s.Components)
		sort.SliceStable(comps, func(i, j int) bool { return comps[i].Order < comps[j].Order })

		rendered := make([]string, 0, len(comps))
		for _, c := range comps {
			if html := GenerateComponentHTML(c); html != "" {
				rendered = append(rendered, html)
			}
		}
		return fmt.Sprintf(`<section class="py-20">
  <div class="container mx-auto px-6">
    %s
  </div>
</section>`, strings.Join(rendered, "\n    "))
	}

	preset := GetPreset(s.Type)
	if preset == nil {
		return s.HTMLContent
	}
	layout := s.Layout
	if layout == "" {
		layout = preset.DefaultLayout
	}
	tpl := GetSectionTemplate(s.Type, layout)
	if tpl == "" {
		return s.HTMLContent
	}
	return applySectionConfig(tpl, s, preset)
}

// applySectionConfig bakes a section's config into its preset HTML:
// background color tokens swap the root tag's bg classes, and navItems
// re-render the header nav list.
func applySectionConfig(tpl string, s template.Section, preset *Preset) string {
	if len(s.Config) == 0 || len(preset.Configurable) == 0 {
		return tpl
	}
	html := tpl

	if bg, ok := s.Config["backgroundColor"].(string); ok && bg != "" {
		if field, ok := preset.Configurable["backgroundColor"]; ok {
			for _, opt := range field.Options {
				if opt.Value != bg {
					continue
				}
				for _, tag := range []string{"header", "section", "footer"} {
					html = replaceBackground(html, tag, opt.Class)
				}
				break
			}
		}
	}

	if navItems := coerceNavItems(s.Config["navItems"]); len(navItems) > 0 && s.Type == template.TypeHeader {
		html = applyNavItems(html, navItems, s.Layout)
	}

	return html
}

// replaceBackground rewrites the first <tag ... class="..."> occurrence,
// dropping every bg-*, from-* and to-* class and prepending the chosen
// option's classes.
func replaceBackground(html, tag, optionClass string) string {
	re := regexp.MustCompile(`(?i)(<` + tag + `[^>]*class=")([^"]*)(")`)
	loc := re.FindStringSubmatchIndex(html)
	if loc == nil {
		return html
	}
	classContent := html[loc[4]:loc[5]]

	var classes []string
	classes = append(classes, strings.Fields(optionClass)...)
	for _, cls := range strings.Fields(classContent) {
		if !bgClassRe.MatchString(cls) {
			classes = append(classes, cls)
		}
	}
	return html[:loc[4]] + strings.Join(classes, " ") + html[loc[5]:]
}

func coerceNavItems(raw any) []NavItem {
	switch v := raw.(type) {
	case []NavItem:
		return v
	case []any:
		items := make([]NavItem, 0, len(v))
		for _, e := range v {
			switch it := e.(type) {
			case NavItem:
				items = append(items, it)
			case map[string]any:
				label, _ := it["label"].(string)
				href, _ := it["href"].(string)
				items = append(items, NavItem{Label: label, Href: href})
			case string:
				items = append(items, NavItem{Label: it})
			}
		}
		return items
	}
	return nil
}

func applyNavItems(html string, items []NavItem, layout string) string {
	rendered := make([]string, 0, len(items))
	for i, item := range items {
		href := item.Href
		if href == "" {
			href = "#" + strings.ReplaceAll(strings.ToLower(item.Label), " ", "-")
		}
		last := i == len(items)-1
		if last && layout == "sticky" && strings.EqualFold(item.Label, "contact") {
			rendered = append(rendered, fmt.Sprintf(`<a href="%s" class="px-4 py-2 bg-primary text-white rounded-lg hover:opacity-90 transition">%s</a>`, href, item.Label))
			continue
		}
		rendered = append(rendered, fmt.Sprintf(`<a href="%s" class="text-white/80 hover:text-white transition">%s</a>`, href, item.Label))
	}
	navHTML := strings.Join(rendered, "\n        ")

	if loc := desktopNavRe.FindStringSubmatchIndex(html); loc != nil {
		return html[:loc[3]] + "\n        " + navHTML + "\n      " + html[loc[4]:]
	}
	if loc := plainNavRe.FindStringSubmatchIndex(html); loc != nil {
		open := html[loc[2]:loc[3]]
		if !strings.Contains(open, "hidden md:flex") {
			return html[:loc[3]] + "\n        " + navHTML + "\n      " + html[loc[4]:]
		}
	}
	return html
}

// DetectLayout infers a layout name from a section's HTML by keyword match,
// checking the preset's layouts in declaration order. No match falls back to
// the preset's default layout, unknown types to "default".
func DetectLayout(t template.SectionType, htmlContent string) string {
	preset := GetPreset(t)
	if preset == nil || htmlContent == "" {
		return "default"
	}
	lower := strings.ToLower(htmlContent)
	for _, layout := range preset.Layouts {
		for _, keyword := range layoutKeywords[layout] {
			if strings.Contains(lower, keyword) {
				return layout
			}
		}
	}
	return preset.DefaultLayout
}

// ExtractConfig recovers a best-effort config from a section's HTML: only
// configurable text keys whose placeholder literally appears are populated,
// with the preset default; booleans always take their default.
func ExtractConfig(t template.SectionType, htmlContent string) template.Config {
	preset := GetPreset(t)
	if preset == nil || len(preset.Configurable) == 0 {
		return template.Config{}
	}

	config := template.Config{}
	for key, field := range preset.Configurable {
		switch field.Type {
		case "text":
			if strings.Contains(htmlContent, "{{"+key+"}}") {
				config[key] = field.Default
			}
		case "boolean":
			config[key] = field.Default
		}
	}
	return config
}

// GetDefaultSection builds a fresh section for a preset type. Unknown types
// return nil. Order is left at 0 for the caller to renormalize. Header and
// footer are the only non-optional types, and conditions attach to content
// types only.
func GetDefaultSection(t template.SectionType, layout string) *template.Section {
	preset := GetPreset(t)
	if preset == nil {
		return nil
	}
	if layout == "" {
		layout = preset.DefaultLayout
	}

	condition := ""
	switch t {
	case template.TypeHeader, template.TypeFooter, template.TypeHero, template.TypeAbout:
	default:
		condition = "if:" + string(t)
	}

	return &template.Section{
		ID:          NewSectionID(),
		Type:        preset.Type,
		Name:        preset.Name,
		Layout:      layout,
		Order:       0,
		IsOptional:  t != template.TypeHeader && t != template.TypeFooter,
		Condition:   condition,
		HTMLContent: GetSectionTemplate(t, layout),
		Visible:     true,
		Config:      template.Config{},
	}
}

// ValidateSection checks a section against its preset's constraints.
func ValidateSection(s template.Section) (bool, []string) {
	var errors []string

	if s.Type == "" {
		errors = append(errors, "Section type is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		errors = append(errors, "Section name is required")
	}
	if s.Order < 0 {
		errors = append(errors, "Section order is required")
	}

	if preset := GetPreset(s.Type); preset != nil {
		for key, field := range preset.Configurable {
			value, present := s.Config[key]
			if field.Required && (!present || value == nil || value == "") {
				errors = append(errors, fmt.Sprintf("%s is required", key))
			}
			if text, ok := value.(string); ok && field.Type == "text" && field.MaxLength > 0 {
				if len([]rune(text)) > field.MaxLength {
					errors = append(errors, fmt.Sprintf("%s exceeds maximum length of %d", key, field.MaxLength))
				}
			}
		}
	}

	return len(errors) == 0, errors
}
