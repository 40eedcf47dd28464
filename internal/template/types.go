package template

// SectionType is the fixed vocabulary of section markers. Unknown types are
// tolerated at parse time with a warning, so this is not an exhaustive enum.
type SectionType string

const (
	TypeHeader     SectionType = "header"
	TypeHero       SectionType = "hero"
	TypeAbout      SectionType = "about"
	TypeExperience SectionType = "experience"
	TypeEducation  SectionType = "education"
	TypeSkills     SectionType = "skills"
	TypeProjects   SectionType = "projects"
	TypeFooter     SectionType = "footer"
	TypeCustom     SectionType = "custom"
)

// ValidSectionTypes lists the known marker types in vocabulary order.
var ValidSectionTypes = []SectionType{
	TypeHeader,
	TypeHero,
	TypeAbout,
	TypeExperience,
	TypeEducation,
	TypeSkills,
	TypeProjects,
	TypeFooter,
	TypeCustom,
}

// IsValidSectionType reports whether t belongs to the fixed vocabulary.
func IsValidSectionType(t SectionType) bool {
	for _, v := range ValidSectionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Section is a named, typed, ordered span of template markup. It is created
// either by the parser (from a marker scan) or by the visual builder (from a
// preset), and owned by the editing session.
type Section struct {
	ID          string      `json:"id"`
	Type        SectionType `json:"type"`
	Name        string      `json:"name"`
	Order       int         `json:"order"`
	IsOptional  bool        `json:"is_optional"`
	Condition   string      `json:"condition,omitempty"` // "if:<dataKey>" or empty
	HTMLContent string      `json:"html_content"`
	Layout      string      `json:"layout,omitempty"`
	Visible     bool        `json:"visible"`
	Config      Config      `json:"config,omitempty"`
	Components  []Component `json:"components,omitempty"`
}

// Config is an open key→value map of per-section style and content
// parameters applied when regenerating HTML from a layout preset.
type Config map[string]any

// Component is a single renderable content unit nested under a section
// (title, subtitle, button, image, text, spacer). It is owned exclusively by
// its parent section and deleted with it.
type Component struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Order  int    `json:"order"`
	Config Config `json:"config,omitempty"`
}

// FieldType classifies a placeholder key for form rendering.
type FieldType string

const (
	FieldText  FieldType = "text"
	FieldEmail FieldType = "email"
	FieldPhone FieldType = "phone"
	FieldDate  FieldType = "date"
	FieldArray FieldType = "array"
)

// Field is a derived schema entry describing one placeholder key. Fields are
// a pure projection of placeholder occurrences and are recomputed whenever
// the source HTML changes.
type Field struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Description string    `json:"description,omitempty"`
}

// ParseResult is the output of the section parser. It is transient: the
// result is recomputed on every parse and never persisted independently of
// the source HTML.
type ParseResult struct {
	Sections       []Section `json:"sections"`
	HeadContent    string    `json:"head_content"`
	BodyAttributes string    `json:"body_attributes"`
	Warnings       []string  `json:"warnings"`
	Errors         []string  `json:"errors"`
}

// HasErrors reports whether the parse hit a fatal structural error.
func (r *ParseResult) HasErrors() bool {
	return len(r.Errors) > 0
}
