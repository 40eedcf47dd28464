package renderer

import (
	"strings"

	"github.com/imuii/templatekit/internal/template"
)

// conditionSatisfied evaluates a section's "if:<dataKey>" condition against
// the fill data using a fixed per-key presence check. Sections without a
// condition, and keys outside the known set, are always satisfied.
func conditionSatisfied(sec template.Section, data *template.FillData) bool {
	if sec.Condition == "" {
		return true
	}
	key, ok := strings.CutPrefix(sec.Condition, "if:")
	if !ok {
		return true
	}
	if data == nil {
		data = &template.FillData{}
	}

	switch key {
	case "experience":
		return len(data.Experience) > 0
	case "projects":
		return len(data.Projects) > 0
	case "education":
		return len(data.Education) > 0
	case "skills":
		return len(data.Skills) > 0
	case "about", "bio":
		return data.PersonalInfo.Bio != ""
	case "contact":
		return data.PersonalInfo.Email != "" || data.PersonalInfo.Phone != ""
	default:
		return true
	}
}
