package filler

import "github.com/imuii/templatekit/internal/template"

// GenerateDummyData returns the fixed synthetic profile used to preview
// templates without real user data. The fields argument is accepted for
// interface symmetry but does not influence the output: previews always use
// the same representative sample profile, not schema-driven stubs.
func GenerateDummyData(fields []template.Field) *template.FillData {
	return &template.FillData{
		PersonalInfo: template.PersonalInfo{
			Name:     "John Doe",
			Email:    "john.doe@example.com",
			Phone:    "+1234567890",
			Address:  "123 Main St, City, Country",
			Website:  "https://johndoe.com",
			LinkedIn: "https://linkedin.com/in/johndoe",
			GitHub:   "https://github.com/johndoe",
			Bio:      "Experienced software developer with passion for creating innovative solutions.",
		},
		Skills: []template.Skill{
			{Name: "JavaScript", Level: "advanced"},
			{Name: "React", Level: "advanced"},
			{Name: "Node.js", Level: "intermediate"},
			{Name: "TypeScript", Level: "intermediate"},
		},
		Experience: []template.Experience{
			{
				Company:     "Tech Corp",
				Position:    "Senior Software Engineer",
				StartDate:   "2020-01",
				EndDate:     "2024-12",
				Current:     false,
				Description: "Led development of multiple web applications",
			},
		},
		Education: []template.Education{
			{
				Institution: "University of Technology",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				StartDate:   "2014",
				EndDate:     "2018",
				GPA:         "3.8",
			},
		},
		Projects: []template.Project{
			{
				Name:         "E-Commerce Platform",
				Description:  "Full-stack e-commerce solution",
				Technologies: []string{"React", "Node.js", "MongoDB"},
				URL:          "https://example.com",
			},
		},
	}
}
