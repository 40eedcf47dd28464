// Package layoutjson implements the portable Layout JSON interchange format:
// a component/slot-shaped serialization of a section list. The codec is
// independent of any specific section semantics; validation always returns a
// structured result and never panics.
package layoutjson

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/imuii/templatekit/internal/template"
)

// Version is the current Layout JSON schema version.
const Version = "1.0"

// Document is the top-level Layout JSON object.
type Document struct {
	Version  string   `json:"version"`
	Metadata Metadata `json:"metadata"`
	Layout   Layout   `json:"layout"`
}

// Metadata carries export bookkeeping.
type Metadata struct {
	GeneratedAt   string `json:"generatedAt"`
	TotalSections int    `json:"totalSections"`
	LastUpdated   string `json:"lastUpdated,omitempty"`
}

// Layout holds the ordered component list.
type Layout struct {
	Components []ComponentEntry `json:"components"`
}

// ComponentEntry is one section in component form. Props carry the section
// metadata plus its open config map; Slots.Content carries nested
// components.
type ComponentEntry struct {
	ID        string         `json:"id"`
	Component string         `json:"component"`
	Props     map[string]any `json:"props"`
	Slots     Slots          `json:"slots"`
}

// Slots groups the nested content of a component.
type Slots struct {
	Content []SlotEntry `json:"content,omitempty"`
}

// SlotEntry is one nested component inside a section slot.
type SlotEntry struct {
	ID        string         `json:"id"`
	Component string         `json:"component"`
	Props     map[string]any `json:"props"`
	Order     int            `json:"order"`
}

// metadataProps are the props keys reserved for section metadata; everything
// else round-trips through the section's config map.
var metadataProps = map[string]bool{
	"name":       true,
	"layout":     true,
	"isOptional": true,
	"condition":  true,
	"visible":    true,
}

// ConvertSectionsToLayoutJSON maps a section list to a Layout JSON document.
// Sections are sorted by order; nested components become slot content.
func ConvertSectionsToLayoutJSON(sections []template.Section) *Document {
	sorted := make([]template.Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	components := make([]ComponentEntry, 0, len(sorted))
	for _, sec := range sorted {
		props := map[string]any{
			"name":       sec.Name,
			"layout":     layoutOrDefault(sec.Layout),
			"isOptional": sec.IsOptional,
			"visible":    sec.Visible,
		}
		if sec.Condition != "" {
			props["condition"] = sec.Condition
		} else {
			props["condition"] = nil
		}
		for k, v := range sec.Config {
			props[k] = v
		}

		entry := ComponentEntry{
			ID:        sec.ID,
			Component: string(sec.Type),
			Props:     props,
		}

		if len(sec.Components) > 0 {
			nested := make([]template.Component, len(sec.Components))
			copy(nested, sec.Components)
			sort.SliceStable(nested, func(i, j int) bool { return nested[i].Order < nested[j].Order })

			for _, comp := range nested {
				entry.Slots.Content = append(entry.Slots.Content, SlotEntry{
					ID:        comp.ID,
					Component: comp.Type,
					Props:     map[string]any(comp.Config),
					Order:     comp.Order,
				})
			}
		}

		components = append(components, entry)
	}

	return &Document{
		Version: Version,
		Metadata: Metadata{
			GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
			TotalSections: len(components),
		},
		Layout: Layout{Components: components},
	}
}

// ConvertLayoutJSONToSections maps a Layout JSON document back to sections.
// Missing metadata props default sensibly: name to "<component> Section",
// order to the array position.
func ConvertLayoutJSONToSections(doc *Document) []template.Section {
	if doc == nil || len(doc.Layout.Components) == 0 {
		return []template.Section{}
	}

	sections := make([]template.Section, 0, len(doc.Layout.Components))
	for i, comp := range doc.Layout.Components {
		sec := template.Section{
			ID:      comp.ID,
			Type:    template.SectionType(comp.Component),
			Name:    fmt.Sprintf("%s Section", comp.Component),
			Layout:  "default",
			Order:   i + 1,
			Visible: true,
			Config:  template.Config{},
		}
		if sec.ID == "" {
			sec.ID = "section-" + uuid.NewString()
		}

		if name, ok := comp.Props["name"].(string); ok && name != "" {
			sec.Name = name
		}
		if layout, ok := comp.Props["layout"].(string); ok && layout != "" {
			sec.Layout = layout
		}
		if opt, ok := comp.Props["isOptional"].(bool); ok {
			sec.IsOptional = opt
		}
		if cond, ok := comp.Props["condition"].(string); ok {
			sec.Condition = cond
		}
		if visible, ok := comp.Props["visible"].(bool); ok {
			sec.Visible = visible
		}

		for k, v := range comp.Props {
			if !metadataProps[k] {
				sec.Config[k] = v
			}
		}

		for _, slot := range comp.Slots.Content {
			id := slot.ID
			if id == "" {
				id = "component-" + uuid.NewString()
			}
			sec.Components = append(sec.Components, template.Component{
				ID:     id,
				Type:   slot.Component,
				Order:  slot.Order,
				Config: template.Config(slot.Props),
			})
		}

		sections = append(sections, sec)
	}
	return sections
}

// MergeLayoutJSON upserts update's components into base by id: matching
// components get their props and slots shallow-merged, unmatched ones are
// appended. Metadata.lastUpdated is stamped on the result.
func MergeLayoutJSON(base, update *Document) *Document {
	if base == nil || len(base.Layout.Components) == 0 {
		if update != nil {
			return update
		}
		return base
	}
	if update == nil || len(update.Layout.Components) == 0 {
		return base
	}

	merged := make([]ComponentEntry, len(base.Layout.Components))
	copy(merged, base.Layout.Components)

	for _, up := range update.Layout.Components {
		idx := -1
		for i, existing := range merged {
			if existing.ID == up.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			merged = append(merged, cloneComponent(up))
			continue
		}

		target := merged[idx]
		target.Component = up.Component
		// Copy before merging so the base document's maps stay untouched.
		props := make(map[string]any, len(target.Props)+len(up.Props))
		for k, v := range target.Props {
			props[k] = v
		}
		for k, v := range up.Props {
			props[k] = v
		}
		target.Props = props
		if len(up.Slots.Content) > 0 {
			content := make([]SlotEntry, len(up.Slots.Content))
			copy(content, up.Slots.Content)
			target.Slots.Content = content
		}
		merged[idx] = target
	}

	result := *base
	result.Layout = Layout{Components: merged}
	result.Metadata.TotalSections = len(merged)
	result.Metadata.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	if update.Metadata.GeneratedAt != "" {
		result.Metadata.GeneratedAt = update.Metadata.GeneratedAt
	}
	return &result
}

func cloneComponent(c ComponentEntry) ComponentEntry {
	if c.Props != nil {
		props := make(map[string]any, len(c.Props))
		for k, v := range c.Props {
			props[k] = v
		}
		c.Props = props
	}
	if len(c.Slots.Content) > 0 {
		content := make([]SlotEntry, len(c.Slots.Content))
		copy(content, c.Slots.Content)
		c.Slots.Content = content
	}
	return c
}

func layoutOrDefault(layout string) string {
	if layout == "" {
		return "default"
	}
	return layout
}
