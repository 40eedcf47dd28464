package filler

import (
	"fmt"
	"html"
	"strings"

	"github.com/imuii/templatekit/internal/template"
)

// Variant selects the visual style of a generated collection fragment.
// Every collection placeholder exists in two spellings: {{<field>}} renders
// the plain variant, {{<field>-colorful}} the glassmorphism one.
type Variant string

const (
	VariantPlain    Variant = "plain"
	VariantColorful Variant = "colorful"
)

// fragmentFunc renders one collection field of the fill data into an HTML
// fragment. Strategies are keyed by (field name, variant) so that further
// themes can be added without duplicating the substitution branches.
type fragmentFunc func(data *template.FillData) string

var fragmentRenderers = map[string]map[Variant]fragmentFunc{
	"skills": {
		VariantPlain:    skillsPlain,
		VariantColorful: skillsColorful,
	},
	"experience": {
		VariantPlain:    experiencePlain,
		VariantColorful: experienceColorful,
	},
	"education": {
		VariantPlain:    educationPlain,
		VariantColorful: educationColorful,
	},
	"projects": {
		VariantPlain:    projectsPlain,
		VariantColorful: projectsColorful,
	},
}

// CollectionFields returns the field names that expand into fragments.
func CollectionFields() []string {
	return []string{"skills", "experience", "education", "projects"}
}

func skillsPlain(data *template.FillData) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, s := range data.Skills {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(s.Name))
	}
	b.WriteString("</ul>")
	return b.String()
}

func skillsColorful(data *template.FillData) string {
	var b strings.Builder
	for _, s := range data.Skills {
		fmt.Fprintf(&b,
			`<span class="px-4 py-2 bg-white/10 backdrop-blur-md border border-white/20 rounded-full text-white">%s</span>`,
			html.EscapeString(s.Name))
	}
	return b.String()
}

func experiencePlain(data *template.FillData) string {
	var b strings.Builder
	for _, exp := range data.Experience {
		fmt.Fprintf(&b,
			`<div class="border-l-4 border-gray-300 pl-4 mb-6"><h3 class="font-bold">%s at %s</h3><p class="text-sm">%s</p><p>%s</p></div>`,
			html.EscapeString(exp.Position),
			html.EscapeString(exp.Company),
			html.EscapeString(dateRange(exp.StartDate, exp.EndDate, exp.Current)),
			html.EscapeString(exp.Description))
	}
	return b.String()
}

func experienceColorful(data *template.FillData) string {
	var b strings.Builder
	for _, exp := range data.Experience {
		fmt.Fprintf(&b,
			`<div class="bg-white/10 backdrop-blur-md border border-white/20 rounded-xl p-6"><h3 class="text-xl font-bold text-white">%s</h3><p class="text-white/60">%s</p><p class="text-white/60 text-sm">%s</p><p class="text-white/80 mt-2">%s</p></div>`,
			html.EscapeString(exp.Position),
			html.EscapeString(exp.Company),
			html.EscapeString(dateRange(exp.StartDate, exp.EndDate, exp.Current)),
			html.EscapeString(exp.Description))
	}
	return b.String()
}

func educationPlain(data *template.FillData) string {
	var b strings.Builder
	for _, edu := range data.Education {
		fmt.Fprintf(&b,
			`<div class="mb-4"><h3 class="font-bold">%s in %s</h3><p>%s</p><p class="text-sm">%s</p></div>`,
			html.EscapeString(edu.Degree),
			html.EscapeString(edu.Field),
			html.EscapeString(edu.Institution),
			html.EscapeString(dateRange(edu.StartDate, edu.EndDate, false)))
	}
	return b.String()
}

func educationColorful(data *template.FillData) string {
	var b strings.Builder
	for _, edu := range data.Education {
		gpa := ""
		if edu.GPA != "" {
			gpa = fmt.Sprintf(`<p class="text-white/60 text-sm">GPA: %s</p>`, html.EscapeString(edu.GPA))
		}
		fmt.Fprintf(&b,
			`<div class="bg-white/10 backdrop-blur-md border border-white/20 rounded-xl p-6"><h3 class="text-xl font-bold text-white">%s in %s</h3><p class="text-white/60">%s</p><p class="text-white/60 text-sm">%s</p>%s</div>`,
			html.EscapeString(edu.Degree),
			html.EscapeString(edu.Field),
			html.EscapeString(edu.Institution),
			html.EscapeString(dateRange(edu.StartDate, edu.EndDate, false)),
			gpa)
	}
	return b.String()
}

func projectsPlain(data *template.FillData) string {
	var b strings.Builder
	for _, proj := range data.Projects {
		fmt.Fprintf(&b, `<div class="mb-4"><h3 class="font-bold">%s</h3><p>%s</p></div>`,
			html.EscapeString(proj.Name),
			html.EscapeString(proj.Description))
	}
	return b.String()
}

func projectsColorful(data *template.FillData) string {
	var b strings.Builder
	for _, proj := range data.Projects {
		var tech strings.Builder
		for _, t := range proj.Technologies {
			fmt.Fprintf(&tech, `<span class="px-3 py-1 bg-white/10 rounded-full text-sm text-white/80">%s</span>`,
				html.EscapeString(t))
		}
		link := ""
		if proj.URL != "" {
			link = fmt.Sprintf(`<a href="%s" class="text-white/60 hover:text-white transition text-sm">View Project</a>`,
				html.EscapeString(proj.URL))
		}
		fmt.Fprintf(&b,
			`<div class="bg-white/10 backdrop-blur-md border border-white/20 rounded-xl p-6"><h3 class="text-xl font-bold text-white">%s</h3><p class="text-white/80 mt-2">%s</p><div class="flex flex-wrap gap-2 mt-4">%s</div>%s</div>`,
			html.EscapeString(proj.Name),
			html.EscapeString(proj.Description),
			tech.String(),
			link)
	}
	return b.String()
}

func dateRange(start, end string, current bool) string {
	if current || end == "" {
		end = "Present"
	}
	if start == "" {
		return end
	}
	return start + " - " + end
}
