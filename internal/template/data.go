package template

// PersonalInfo holds the scalar profile fields substituted into a template.
// Bio may legitimately contain markup and is substituted unescaped.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Photo    string `json:"photo"`
	Bio      string `json:"bio"`
}

// Skill is one entry of the skills collection.
type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Experience is one entry of the work experience collection.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one entry of the education collection.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
}

// Project is one entry of the projects collection.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// FillData is the data object a template is filled with. Custom holds
// arbitrary user-defined tabs addressed as {{custom.<tab>.<field>}}; a tab
// value may be a map of fields, an array, or a bare scalar.
type FillData struct {
	PersonalInfo PersonalInfo   `json:"personalInfo"`
	Skills       []Skill        `json:"skills,omitempty"`
	Experience   []Experience   `json:"experience,omitempty"`
	Education    []Education    `json:"education,omitempty"`
	Projects     []Project      `json:"projects,omitempty"`
	Custom       map[string]any `json:"custom,omitempty"`
}
