package builder

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/imuii/templatekit/internal/template"
)

// NavItem is one navigation entry a header section renders.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// ComponentType describes one element kind a section can hold, with the
// config defaults applied when a component of that kind is created.
type ComponentType struct {
	Type          string
	Name          string
	DefaultConfig template.Config
}

var componentTypes = map[string]ComponentType{
	"title": {
		Type: "title",
		Name: "Title",
		DefaultConfig: template.Config{
			"text":  "{{name}}",
			"size":  "large",
			"align": "center",
			"color": "white",
		},
	},
	"subtitle": {
		Type: "subtitle",
		Name: "Subtitle",
		DefaultConfig: template.Config{
			"text":  "{{bio}}",
			"size":  "medium",
			"align": "center",
			"color": "white/80",
		},
	},
	"button": {
		Type: "button",
		Name: "Button",
		DefaultConfig: template.Config{
			"text":  "Get In Touch",
			"style": "primary",
			"link":  "#contact",
			"size":  "medium",
		},
	},
	"image": {
		Type: "image",
		Name: "Image",
		DefaultConfig: template.Config{
			"src":   "{{photo}}",
			"alt":   "{{name}}",
			"size":  "medium",
			"shape": "circle",
		},
	},
	"text": {
		Type: "text",
		Name: "Text",
		DefaultConfig: template.Config{
			"content": "Your text here",
			"size":    "medium",
			"align":   "left",
		},
	},
	"spacer": {
		Type: "spacer",
		Name: "Spacer",
		DefaultConfig: template.Config{
			"height": "medium",
		},
	},
}

// sectionComponentMap restricts which component kinds each section type
// offers. Types not listed here accept every kind.
var sectionComponentMap = map[template.SectionType][]string{
	template.TypeHero:       {"title", "subtitle", "button", "image", "spacer"},
	template.TypeHeader:     {"title", "button"},
	template.TypeAbout:      {"title", "text", "image"},
	template.TypeFooter:     {"text", "button"},
	template.TypeExperience: {"title", "text"},
	template.TypeProjects:   {"title", "text", "image", "button"},
	template.TypeSkills:     {"title", "text"},
	template.TypeEducation:  {"title", "text"},
}

// GetComponentType looks up a component kind, returning ok=false for unknown
// names.
func GetComponentType(kind string) (ComponentType, bool) {
	ct, ok := componentTypes[kind]
	return ct, ok
}

// AvailableComponentTypes returns all component kind names, sorted.
func AvailableComponentTypes() []string {
	kinds := make([]string, 0, len(componentTypes))
	for k := range componentTypes {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// ComponentsForSection returns the component kinds available for a section
// type. Unmapped types get the full set.
func ComponentsForSection(t template.SectionType) []string {
	if kinds, ok := sectionComponentMap[t]; ok {
		return kinds
	}
	return AvailableComponentTypes()
}

// NewComponentID mints an ID for a freshly created component.
func NewComponentID() string {
	return "component-" + uuid.NewString()
}

// NewSectionID mints an ID for a freshly created section.
func NewSectionID() string {
	return "section-" + uuid.NewString()
}

func configString(cfg template.Config, key, fallback string) string {
	if cfg != nil {
		if s, ok := cfg[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func pickClass(options map[string]string, key, fallback string) string {
	if cls, ok := options[key]; ok {
		return cls
	}
	return options[fallback]
}

// GenerateComponentHTML renders one component into its HTML fragment.
// Unknown component kinds render as the empty string.
func GenerateComponentHTML(c template.Component) string {
	ct, ok := GetComponentType(c.Type)
	if !ok {
		return ""
	}
	cfg := c.Config
	if cfg == nil {
		cfg = ct.DefaultConfig
	}

	switch c.Type {
	case "title":
		size := pickClass(map[string]string{
			"small":  "text-2xl",
			"medium": "text-4xl",
			"large":  "text-5xl md:text-7xl",
			"xlarge": "text-6xl md:text-8xl",
		}, configString(cfg, "size", "large"), "large")
		align := pickClass(map[string]string{
			"left":   "text-left",
			"center": "text-center",
			"right":  "text-right",
		}, configString(cfg, "align", "center"), "center")
		color := "text-white"
		if configString(cfg, "color", "white") == "white/80" {
			color = "text-white/80"
		}
		return fmt.Sprintf(`<h1 class="%s font-bold %s mb-4 %s">%s</h1>`,
			size, color, align, configString(cfg, "text", "{{name}}"))

	case "subtitle":
		size := pickClass(map[string]string{
			"small":  "text-sm",
			"medium": "text-xl md:text-2xl",
			"large":  "text-2xl md:text-3xl",
		}, configString(cfg, "size", "medium"), "medium")
		align := pickClass(map[string]string{
			"left":   "text-left",
			"center": "text-center",
			"right":  "text-right",
		}, configString(cfg, "align", "center"), "center")
		color := "text-white/80"
		if configString(cfg, "color", "white/80") == "white" {
			color = "text-white"
		}
		return fmt.Sprintf(`<p class="%s %s mb-8 %s">%s</p>`,
			size, color, align, configString(cfg, "text", "{{bio}}"))

	case "button":
		style := pickClass(map[string]string{
			"primary":   "bg-primary text-white hover:opacity-90",
			"secondary": "bg-white/10 text-white hover:bg-white/20",
			"outline":   "bg-transparent text-white border border-white/20 hover:bg-white/10",
		}, configString(cfg, "style", "primary"), "primary")
		size := pickClass(map[string]string{
			"small":  "px-4 py-2 text-sm",
			"medium": "px-6 py-3",
			"large":  "px-8 py-4 text-lg",
		}, configString(cfg, "size", "medium"), "medium")
		return fmt.Sprintf(`<a href="%s" class="%s %s rounded-lg transition font-medium">%s</a>`,
			configString(cfg, "link", "#contact"), size, style, configString(cfg, "text", "Button"))

	case "image":
		size := pickClass(map[string]string{
			"small":  "w-24 h-24",
			"medium": "w-32 h-32",
			"large":  "w-64 h-64",
		}, configString(cfg, "size", "medium"), "medium")
		shape := pickClass(map[string]string{
			"circle":  "rounded-full",
			"square":  "rounded-none",
			"rounded": "rounded-lg",
		}, configString(cfg, "shape", "circle"), "circle")
		return fmt.Sprintf(`<img src="%s" alt="%s" class="%s %s border-4 border-white/20" />`,
			configString(cfg, "src", "{{photo}}"), configString(cfg, "alt", "{{name}}"), size, shape)

	case "text":
		size := pickClass(map[string]string{
			"small":  "text-sm",
			"medium": "text-base",
			"large":  "text-lg",
		}, configString(cfg, "size", "medium"), "medium")
		align := pickClass(map[string]string{
			"left":   "text-left",
			"center": "text-center",
			"right":  "text-right",
		}, configString(cfg, "align", "left"), "left")
		return fmt.Sprintf(`<p class="%s text-white/80 %s mb-4">%s</p>`,
			size, align, configString(cfg, "content", "Your text here"))

	case "spacer":
		height := pickClass(map[string]string{
			"small":  "h-4",
			"medium": "h-8",
			"large":  "h-12",
		}, configString(cfg, "height", "medium"), "medium")
		return fmt.Sprintf(`<div class="%s"></div>`, height)
	}
	return ""
}

// DefaultComponents returns the starter component set for a section type.
func DefaultComponents(t template.SectionType) []template.Component {
	switch t {
	case template.TypeHero:
		return []template.Component{
			{ID: NewComponentID(), Type: "title", Order: 1, Config: template.Config{"text": "{{name}}", "size": "large", "align": "center"}},
			{ID: NewComponentID(), Type: "subtitle", Order: 2, Config: template.Config{"text": "{{bio}}", "size": "medium", "align": "center"}},
			{ID: NewComponentID(), Type: "button", Order: 3, Config: template.Config{"text": "Get In Touch", "style": "primary", "link": "#contact"}},
		}
	case template.TypeHeader:
		return []template.Component{
			{ID: NewComponentID(), Type: "title", Order: 1, Config: template.Config{"text": "{{name}}", "size": "medium", "align": "left"}},
		}
	case template.TypeAbout:
		return []template.Component{
			{ID: NewComponentID(), Type: "title", Order: 1, Config: template.Config{"text": "About Me", "size": "large", "align": "center"}},
			{ID: NewComponentID(), Type: "text", Order: 2, Config: template.Config{"content": "{{bio}}", "size": "medium", "align": "left"}},
		}
	default:
		return []template.Component{
			{ID: NewComponentID(), Type: "title", Order: 1, Config: template.Config{"text": "Section Title", "size": "large", "align": "center"}},
		}
	}
}
