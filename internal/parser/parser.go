// Package parser extracts marked sections and placeholders from raw template
// HTML. It deliberately scans with regular expressions instead of building a
// DOM: the input is typed live in an editor and is often a fragment or
// mid-edit malformed, so it must never be rejected for being unparseable.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/imuii/templatekit/internal/template"
)

var (
	headRe    = regexp.MustCompile(`(?is)<head[^>]*>(.*?)</head>`)
	bodyTagRe = regexp.MustCompile(`(?i)<body([^>]*)>`)
	bodyRe    = regexp.MustCompile(`(?is)<body[^>]*>(.*?)</body>`)

	// markerRe matches section markers of the form
	// <!-- [TYPE] [OPTIONAL] Free text name -->. The type token is uppercase
	// letters/underscore only.
	markerRe = regexp.MustCompile(`(?i)<!--\s*\[([A-Z_]+)\]\s*(?:\[OPTIONAL\])?\s*(.*?)\s*-->`)
)

// marker is one matched section comment with its span in the body text.
type marker struct {
	sectionType template.SectionType
	name        string
	isOptional  bool
	start       int
	end         int
}

// ParseTemplate splits an HTML template into ordered sections using comment
// markers. It never panics: unexpected failures are converted into a single
// entry in the result's Errors slice, and whatever was accumulated before
// the failure is still returned.
func ParseTemplate(htmlTemplate string) *template.ParseResult {
	result := &template.ParseResult{
		Sections: []template.Section{},
		Warnings: []string{},
		Errors:   []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Parse error: %v", r))
		}
	}()

	if m := headRe.FindStringSubmatch(htmlTemplate); m != nil {
		result.HeadContent = strings.TrimSpace(m[1])
	} else {
		result.Warnings = append(result.Warnings, "No <head> tag found")
	}

	if m := bodyTagRe.FindStringSubmatch(htmlTemplate); m != nil {
		result.BodyAttributes = strings.TrimSpace(m[1])
	}

	bodyMatch := bodyRe.FindStringSubmatch(htmlTemplate)
	if bodyMatch == nil {
		result.Errors = append(result.Errors, "No <body> tag found in template")
		return result
	}
	bodyContent := bodyMatch[1]

	// Pass 1: collect every marker with its offsets. The span of each
	// section is computed purely from this sorted offset list; the pattern
	// is never re-executed against its own match.
	markers := scanMarkers(bodyContent)

	// Pass 2: pair consecutive markers. Section i owns the text between the
	// end of marker i and the start of marker i+1 (or end of body).
	for i, m := range markers {
		contentEnd := len(bodyContent)
		if i+1 < len(markers) {
			contentEnd = markers[i+1].start
		}
		htmlContent := strings.TrimSpace(bodyContent[m.end:contentEnd])

		if htmlContent == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Section %q (%s) is empty", m.name, m.sectionType))
		}

		result.Sections = append(result.Sections, template.Section{
			Type:        m.sectionType,
			Name:        m.name,
			HTMLContent: htmlContent,
			Order:       i + 1,
			IsOptional:  m.isOptional,
			Visible:     true,
		})
	}

	if len(result.Sections) == 0 {
		result.Warnings = append(result.Warnings,
			"No sections found. Make sure to use section markers: <!-- [SECTION_TYPE] Section Name -->")
	}

	for _, s := range result.Sections {
		if !template.IsValidSectionType(s.Type) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Unknown section type: %s", s.Type))
		}
	}

	return result
}

// scanMarkers finds all section markers in bodyContent in a single forward
// pass and returns them in source order.
func scanMarkers(bodyContent string) []marker {
	var markers []marker
	for _, idx := range markerRe.FindAllStringSubmatchIndex(bodyContent, -1) {
		full := bodyContent[idx[0]:idx[1]]
		rawType := bodyContent[idx[2]:idx[3]]
		name := strings.TrimSpace(bodyContent[idx[4]:idx[5]])

		sectionType := template.SectionType(strings.ToLower(rawType))
		if name == "" {
			name = string(sectionType)
		}

		markers = append(markers, marker{
			sectionType: sectionType,
			name:        name,
			isOptional:  strings.Contains(full, "[OPTIONAL]"),
			start:       idx[0],
			end:         idx[1],
		})
	}
	return markers
}
