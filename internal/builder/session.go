package builder

import (
	"fmt"

	"github.com/imuii/templatekit/internal/layoutjson"
	"github.com/imuii/templatekit/internal/template"
)

// Session is an in-memory editing session over an ordered section list. It
// keeps orders normalized to 1..n and offers round trips to full HTML and to
// Layout JSON. Sessions are not safe for concurrent use.
type Session struct {
	sections []template.Section

	headContent    string
	bodyAttributes string
}

// NewSession starts a session, optionally seeded from an HTML template.
func NewSession(initialHTML string) *Session {
	s := &Session{}
	if initialHTML != "" {
		s.SyncFromFullCode(initialHTML)
	}
	return s
}

// Sections returns a copy of the current section list.
func (s *Session) Sections() []template.Section {
	out := make([]template.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// SetSections replaces the section list wholesale.
func (s *Session) SetSections(sections []template.Section) {
	s.sections = make([]template.Section, len(sections))
	copy(s.sections, sections)
}

// AddSection appends a fresh default section of the given type, assigning it
// the next order slot.
func (s *Session) AddSection(t template.SectionType) (*template.Section, error) {
	section := GetDefaultSection(t, "")
	if section == nil {
		return nil, fmt.Errorf("unknown section type %q", t)
	}
	section.Order = len(s.sections) + 1
	s.sections = append(s.sections, *section)
	return section, nil
}

// UpdateSection applies a mutation to the section with the given ID.
func (s *Session) UpdateSection(id string, apply func(*template.Section)) bool {
	for i := range s.sections {
		if s.sections[i].ID == id {
			apply(&s.sections[i])
			return true
		}
	}
	return false
}

// DeleteSection removes a section and renormalizes the remaining orders to
// 1..n.
func (s *Session) DeleteSection(id string) bool {
	kept := s.sections[:0]
	found := false
	for _, sec := range s.sections {
		if sec.ID == id {
			found = true
			continue
		}
		kept = append(kept, sec)
	}
	s.sections = kept
	s.renumber()
	return found
}

// Reorder replaces the list with newSections, renumbering orders by position.
func (s *Session) Reorder(newSections []template.Section) {
	s.SetSections(newSections)
	s.renumber()
}

// ToggleVisibility flips a section's visible flag.
func (s *Session) ToggleVisibility(id string) bool {
	return s.UpdateSection(id, func(sec *template.Section) {
		sec.Visible = !sec.Visible
	})
}

func (s *Session) renumber() {
	for i := range s.sections {
		s.sections[i].Order = i + 1
	}
}

// SyncFromFullCode reparses an HTML template and replaces the session's
// sections. Empty input clears the session; input that parses to zero
// sections leaves the current list untouched.
func (s *Session) SyncFromFullCode(htmlTemplate string) {
	if htmlTemplate == "" {
		s.sections = nil
		return
	}
	if parsed := ConvertFullCodeToSections(htmlTemplate); len(parsed) > 0 {
		s.sections = parsed
	}
}

// SetDocumentMeta records the head content and body attributes GenerateHTML
// wraps the sections with.
func (s *Session) SetDocumentMeta(headContent, bodyAttributes string) {
	s.headContent = headContent
	s.bodyAttributes = bodyAttributes
}

// GenerateHTML renders the session back into a full HTML document.
func (s *Session) GenerateHTML() string {
	return ConvertSectionsToFullCode(s.sections, s.headContent, s.bodyAttributes)
}

// LayoutJSON exports the session's sections as a Layout JSON document.
func (s *Session) LayoutJSON() *layoutjson.Document {
	return layoutjson.ConvertSectionsToLayoutJSON(s.sections)
}

// ValidatedLayoutJSON exports Layout JSON together with its validation
// result.
func (s *Session) ValidatedLayoutJSON() (*layoutjson.Document, layoutjson.Result) {
	doc := s.LayoutJSON()
	return doc, layoutjson.ValidateLayoutJSON(doc)
}

// LoadLayoutJSON replaces the session's sections from a Layout JSON
// document. Documents yielding no sections are rejected.
func (s *Session) LoadLayoutJSON(doc *layoutjson.Document) bool {
	sections := layoutjson.ConvertLayoutJSONToSections(doc)
	if len(sections) == 0 {
		return false
	}
	s.sections = sections
	return true
}
