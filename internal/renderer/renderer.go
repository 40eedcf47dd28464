// Package renderer composes a full HTML document from an ordered section
// list plus head/body metadata, applying per-section conditional inclusion
// and custom-section slot injection before delegating substitution to the
// filler.
package renderer

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/imuii/templatekit/internal/filler"
	"github.com/imuii/templatekit/internal/template"
)

// Options controls document assembly.
type Options struct {
	// IncludeWrapper wraps the output in a full <!DOCTYPE html> document.
	// When false only the concatenated section fragments are returned.
	IncludeWrapper bool
}

// TemplateMeta carries the head/body metadata of a stored template. Any of
// the fields may be empty; resolution falls back through HTMLTemplate and
// finally to a built-in default head.
type TemplateMeta struct {
	Name           string `json:"name"`
	HeadContent    string `json:"head_content"`
	BodyAttributes string `json:"body_attributes"`
	HTMLTemplate   string `json:"html_template"`
}

// customIDPrefix marks sections added by the user on top of a template's own
// sections. They are injected at the dynamic slot, or appended at the end
// for templates authored before the slot mechanism existed.
const customIDPrefix = "custom-"

const defaultHeadContent = `  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Portfolio Template</title>
  <script src="https://cdn.tailwindcss.com"></script>`

var (
	headRe    = regexp.MustCompile(`(?is)<head[^>]*>(.*?)</head>`)
	bodyTagRe = regexp.MustCompile(`(?i)<body([^>]*)>`)
)

// RenderTemplateWithSections renders the sections with data into a final
// HTML string. Sections whose condition fails are skipped; custom sections
// are injected at the {{customSections}} slot when one exists, otherwise
// appended after all template sections.
func RenderTemplateWithSections(sections []template.Section, data *template.FillData, opts Options, meta *TemplateMeta) string {
	sorted := make([]template.Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	headContent, bodyAttributes := resolveDocumentMeta(meta, opts.IncludeWrapper)

	var templateSections, customSections []template.Section
	for _, sec := range sorted {
		if strings.HasPrefix(sec.ID, customIDPrefix) {
			customSections = append(customSections, sec)
		} else {
			templateSections = append(templateSections, sec)
		}
	}

	// Fill custom sections up front; their HTML is injected verbatim so the
	// generic placeholder cleanup never touches it again.
	var customHTML strings.Builder
	for _, sec := range customSections {
		customHTML.WriteString(filler.FillTemplate(sec.HTMLContent, data))
		customHTML.WriteString("\n")
	}

	hasDynamicSlot := false
	for _, sec := range templateSections {
		if sectionHasSlot(sec) {
			hasDynamicSlot = true
			break
		}
	}

	var body strings.Builder
	for _, sec := range templateSections {
		if !conditionSatisfied(sec, data) {
			// A failing condition always skips; IsOptional only marks the
			// skip as expected.
			continue
		}

		sectionHTML := filler.CleanupMetadataArtifacts(sec.HTMLContent)
		if strings.Contains(sectionHTML, filler.CustomSectionsToken) {
			sectionHTML = strings.ReplaceAll(sectionHTML, filler.CustomSectionsToken, customHTML.String())
		}
		body.WriteString(filler.FillTemplate(sectionHTML, data))
		body.WriteString("\n")
	}

	if !hasDynamicSlot && customHTML.Len() > 0 {
		body.WriteString(customHTML.String())
	}

	if !opts.IncludeWrapper {
		return body.String()
	}

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	doc.WriteString(headContent)
	doc.WriteString("\n</head>\n<body")
	if bodyAttributes != "" {
		doc.WriteString(" " + bodyAttributes)
	}
	doc.WriteString(">\n")
	doc.WriteString(body.String())
	doc.WriteString("</body>\n</html>")
	return doc.String()
}

// sectionHasSlot reports whether sec marks the injection point for custom
// sections, either via the literal slot token or a dynamic_slot type.
func sectionHasSlot(sec template.Section) bool {
	if strings.Contains(sec.HTMLContent, filler.CustomSectionsToken) {
		return true
	}
	t := strings.ToLower(string(sec.Type))
	return t == "dynamic_slot"
}

// resolveDocumentMeta resolves head content and body attributes with the
// priority chain: explicit meta fields, JSON metadata embedded in
// html_template, regex extraction from html_template, then a synthesized
// default head (only when a wrapper was requested, so it is never empty).
func resolveDocumentMeta(meta *TemplateMeta, includeWrapper bool) (string, string) {
	headContent := ""
	bodyAttributes := ""

	if meta != nil {
		headContent = meta.HeadContent
		bodyAttributes = meta.BodyAttributes

		if (headContent == "" || bodyAttributes == "") && meta.HTMLTemplate != "" {
			jsonHead, jsonBody, ok := metaFromJSON(meta.HTMLTemplate)
			if ok {
				if headContent == "" {
					headContent = jsonHead
				}
				if bodyAttributes == "" {
					bodyAttributes = jsonBody
				}
			} else {
				if headContent == "" {
					if m := headRe.FindStringSubmatch(meta.HTMLTemplate); m != nil {
						headContent = strings.TrimSpace(m[1])
					}
				}
				if bodyAttributes == "" {
					if m := bodyTagRe.FindStringSubmatch(meta.HTMLTemplate); m != nil {
						bodyAttributes = strings.TrimSpace(m[1])
					}
				}
			}
		}
	}

	if headContent == "" && includeWrapper {
		headContent = defaultHeadContent
	}
	return headContent, bodyAttributes
}

// metaFromJSON attempts to read html_template as a JSON metadata document.
// Malformed JSON is not an error: it falls through to regex extraction.
func metaFromJSON(raw string) (headContent, bodyAttributes string, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return "", "", false
	}

	var payload struct {
		HeadContent    string `json:"headContent"`
		BodyAttributes string `json:"bodyAttributes"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return "", "", false
	}
	return payload.HeadContent, payload.BodyAttributes, true
}
