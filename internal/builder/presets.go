// Package builder bridges raw template HTML and the structured section model
// the visual editor works on: layout detection, config extraction, HTML
// regeneration from presets, and the editing session itself.
package builder

import "github.com/imuii/templatekit/internal/template"

// ColorOption is one selectable background color token and the Tailwind
// class list it expands to.
type ColorOption struct {
	Value string
	Label string
	Class string
}

// ConfigField describes one configurable parameter of a section preset.
type ConfigField struct {
	Type      string // text, boolean, color, array, select
	Default   any
	MaxLength int
	Required  bool
	Options   []ColorOption
}

// Preset is the catalog entry for a section type: its named layout variants,
// the HTML skeleton per layout, and the configurable parameters.
type Preset struct {
	Type          template.SectionType
	Name          string
	Layouts       []string
	DefaultLayout string
	Templates     map[string]string
	Configurable  map[string]ConfigField
}

var standardBackgrounds = []ColorOption{
	{Value: "white/5", Label: "White 5%", Class: "bg-white/5"},
	{Value: "white/10", Label: "White 10%", Class: "bg-white/10"},
	{Value: "white/20", Label: "White 20%", Class: "bg-white/20"},
	{Value: "black/50", Label: "Black 50%", Class: "bg-black/50"},
	{Value: "primary/20", Label: "Primary 20%", Class: "bg-primary/20"},
	{Value: "transparent", Label: "Transparent", Class: "bg-transparent"},
}

var gradientBackgrounds = append([]ColorOption{
	{Value: "gradient", Label: "Gradient", Class: "bg-gradient-to-br from-primary/20 to-purple-500/20"},
}, standardBackgrounds...)

var sectionPresets = map[template.SectionType]*Preset{
	template.TypeHeader: {
		Type:          template.TypeHeader,
		Name:          "Header Navigation",
		Layouts:       []string{"centered", "left-aligned", "sticky"},
		DefaultLayout: "centered",
		Templates: map[string]string{
			"centered": `<header class="bg-white/10 backdrop-blur-md border-b border-white/20 sticky top-0 z-50">
  <nav class="container mx-auto px-6 py-4">
    <div class="flex items-center justify-between">
      <div class="text-xl font-bold text-white">{{name}}</div>
      <div class="hidden md:flex gap-6">
        <a href="#about" class="text-white/80 hover:text-white transition">About</a>
        <a href="#experience" class="text-white/80 hover:text-white transition">Experience</a>
        <a href="#projects" class="text-white/80 hover:text-white transition">Projects</a>
        <a href="#contact" class="text-white/80 hover:text-white transition">Contact</a>
      </div>
    </div>
  </nav>
</header>`,
			"left-aligned": `<header class="bg-white/10 backdrop-blur-md border-b border-white/20">
  <nav class="container mx-auto px-6 py-4">
    <div class="flex items-center gap-8">
      <div class="text-xl font-bold text-white">{{name}}</div>
      <div class="flex gap-6">
        <a href="#about" class="text-white/80 hover:text-white transition">About</a>
        <a href="#experience" class="text-white/80 hover:text-white transition">Experience</a>
        <a href="#projects" class="text-white/80 hover:text-white transition">Projects</a>
        <a href="#contact" class="text-white/80 hover:text-white transition">Contact</a>
      </div>
    </div>
  </nav>
</header>`,
			"sticky": `<header class="bg-white/10 backdrop-blur-md border-b border-white/20 sticky top-0 z-50 shadow-lg">
  <nav class="container mx-auto px-6 py-4">
    <div class="flex items-center justify-between">
      <div class="text-xl font-bold text-white">{{name}}</div>
      <div class="hidden md:flex gap-6">
        <a href="#about" class="text-white/80 hover:text-white transition">About</a>
        <a href="#experience" class="text-white/80 hover:text-white transition">Experience</a>
        <a href="#projects" class="text-white/80 hover:text-white transition">Projects</a>
        <a href="#contact" class="px-4 py-2 bg-primary text-white rounded-lg hover:opacity-90 transition">Contact</a>
      </div>
    </div>
  </nav>
</header>`,
		},
		Configurable: map[string]ConfigField{
			"backgroundColor": {Type: "color", Default: "white/10", Options: standardBackgrounds[1:]},
			"navItems": {Type: "array", Default: []NavItem{
				{Label: "About", Href: "#about"},
				{Label: "Experience", Href: "#experience"},
				{Label: "Projects", Href: "#projects"},
				{Label: "Contact", Href: "#contact"},
			}},
		},
	},

	template.TypeHero: {
		Type:          template.TypeHero,
		Name:          "Hero Section",
		Layouts:       []string{"full-width", "split", "centered"},
		DefaultLayout: "full-width",
		Templates: map[string]string{
			"full-width": `<section class="min-h-screen flex items-center justify-center bg-gradient-to-br from-primary/20 to-purple-500/20">
  <div class="container mx-auto px-6 text-center">
    <h1 class="text-5xl md:text-7xl font-bold text-white mb-4">{{name}}</h1>
    <p class="text-xl md:text-2xl text-white/80 mb-8 max-w-2xl mx-auto">{{bio}}</p>
    <div class="flex gap-4 justify-center">
      <a href="#contact" class="px-6 py-3 bg-primary text-white rounded-lg hover:opacity-90 transition font-medium">Get In Touch</a>
      <a href="#projects" class="px-6 py-3 bg-white/10 text-white rounded-lg hover:bg-white/20 transition font-medium border border-white/20">View Projects</a>
    </div>
  </div>
</section>`,
			"split": `<section class="min-h-screen flex items-center bg-gradient-to-br from-primary/20 to-purple-500/20">
  <div class="container mx-auto px-6 grid md:grid-cols-2 gap-12 items-center">
    <div>
      <h1 class="text-5xl md:text-6xl font-bold text-white mb-4">{{name}}</h1>
      <p class="text-xl text-white/80 mb-8">{{bio}}</p>
      <div class="flex gap-4">
        <a href="#contact" class="px-6 py-3 bg-primary text-white rounded-lg hover:opacity-90 transition font-medium">Contact Me</a>
        <a href="#projects" class="px-6 py-3 bg-white/10 text-white rounded-lg hover:bg-white/20 transition font-medium">Projects</a>
      </div>
    </div>
    <div class="flex justify-center">
      <img src="{{photo}}" alt="{{name}}" class="w-64 h-64 rounded-full border-4 border-white/20" />
    </div>
  </div>
</section>`,
			"centered": `<section class="min-h-screen flex items-center justify-center bg-gradient-to-br from-primary/20 to-purple-500/20">
  <div class="container mx-auto px-6 text-center max-w-3xl">
    <img src="{{photo}}" alt="{{name}}" class="w-32 h-32 rounded-full border-4 border-white/20 mx-auto mb-6" />
    <h1 class="text-5xl md:text-6xl font-bold text-white mb-4">{{name}}</h1>
    <p class="text-xl text-white/80 mb-8">{{bio}}</p>
    <a href="#contact" class="px-8 py-3 bg-primary text-white rounded-lg hover:opacity-90 transition font-medium inline-block">Get Started</a>
  </div>
</section>`,
		},
		Configurable: map[string]ConfigField{
			"backgroundColor": {Type: "color", Default: "gradient", Options: gradientBackgrounds},
			"title":           {Type: "text", MaxLength: 100, Required: true, Default: "{{name}}"},
			"subtitle":        {Type: "text", MaxLength: 200, Default: "{{bio}}"},
			"showPhoto":       {Type: "boolean", Default: false},
		},
	},

	template.TypeAbout: {
		Type:          template.TypeAbout,
		Name:          "About Me",
		Layouts:       []string{"simple", "card", "timeline"},
		DefaultLayout: "simple",
		Templates: map[string]string{
			"simple": `<!-- [ABOUT] [OPTIONAL] About Me -->
<section id="about" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-8 text-center">About Me</h2>
    <div class="max-w-3xl mx-auto">
      <p class="text-lg text-white/80 leading-relaxed">{{bio}}</p>
    </div>
  </div>
</section>`,
			"card": `<!-- [ABOUT] [OPTIONAL] About Me -->
<section id="about" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">About Me</h2>
    <div class="max-w-3xl mx-auto bg-white/10 backdrop-blur-md rounded-xl p-8 border border-white/20">
      <p class="text-lg text-white/80 leading-relaxed">{{bio}}</p>
    </div>
  </div>
</section>`,
			"timeline": `<section id="about" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">About Me</h2>
    <div class="max-w-3xl mx-auto">
      <div class="border-l-4 border-primary pl-8">
        <p class="text-lg text-white/80 leading-relaxed">{{bio}}</p>
      </div>
    </div>
  </div>
</section>`,
		},
		Configurable: map[string]ConfigField{
			"title":   {Type: "text", MaxLength: 100, Default: "About Me"},
			"content": {Type: "text", MaxLength: 1000, Default: "{{bio}}"},
		},
	},

	template.TypeExperience: {
		Type:          template.TypeExperience,
		Name:          "Work Experience",
		Layouts:       []string{"list", "timeline", "grid"},
		DefaultLayout: "list",
		Templates: map[string]string{
			"list": `<!-- [EXPERIENCE] [OPTIONAL] Work Experience -->
<section id="experience" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Work Experience</h2>
    <div class="max-w-4xl mx-auto space-y-8">
      {{experience}}
    </div>
  </div>
</section>`,
			"timeline": `<!-- [EXPERIENCE] [OPTIONAL] Work Experience -->
<section id="experience" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Work Experience</h2>
    <div class="max-w-4xl mx-auto">
      <div class="relative">
        <div class="absolute left-8 top-0 bottom-0 w-0.5 bg-primary/30"></div>
        <div class="space-y-12">
          {{experience}}
        </div>
      </div>
    </div>
  </div>
</section>`,
			"grid": `<!-- [EXPERIENCE] [OPTIONAL] Work Experience -->
<section id="experience" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Work Experience</h2>
    <div class="max-w-6xl mx-auto grid md:grid-cols-2 gap-6">
      {{experience}}
    </div>
  </div>
</section>`,
		},
		Configurable: map[string]ConfigField{
			"backgroundColor": {Type: "color", Default: "white/5", Options: standardBackgrounds},
			"title":           {Type: "text", MaxLength: 100, Default: "Work Experience"},
			"showDates":       {Type: "boolean", Default: true},
		},
	},

	template.TypeEducation: {
		Type:          template.TypeEducation,
		Name:          "Education",
		Layouts:       []string{"list", "card", "timeline"},
		DefaultLayout: "list",
		Templates: map[string]string{
			"list": `<!-- [EDUCATION] [OPTIONAL] Education -->
<section id="education" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Education</h2>
    <div class="max-w-4xl mx-auto space-y-6">
      {{education}}
    </div>
  </div>
</section>`,
			"card": `<!-- [EDUCATION] [OPTIONAL] Education -->
<section id="education" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Education</h2>
    <div class="max-w-4xl mx-auto grid md:grid-cols-2 gap-6">
      {{education}}
    </div>
  </div>
</section>`,
			"timeline": `<!-- [EDUCATION] [OPTIONAL] Education -->
<section id="education" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Education</h2>
    <div class="max-w-4xl mx-auto">
      <div class="border-l-4 border-primary pl-8 space-y-8">
        {{education}}
      </div>
    </div>
  </div>
</section>`,
		},
		Configurable: map[string]ConfigField{
			"backgroundColor": {Type: "color", Default: "white/5", Options: standardBackgrounds},
			"title":           {Type: "text", MaxLength: 100, Default: "Education"},
			"showGPA":         {Type: "boolean", Default: true},
		},
	},

	template.TypeSkills: {
		Type:          template.TypeSkills,
		Name:          "Skills",
		Layouts:       []string{"tags", "grid", "progress"},
		DefaultLayout: "tags",
		Templates: map[string]string{
			"tags": `<!-- [SKILLS] [OPTIONAL] Skills -->
<section id="skills" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Skills</h2>
    <div class="max-w-4xl mx-auto flex flex-wrap gap-3 justify-center">
      {{skills}}
    </div>
  </div>
</section>`,
			"grid": `<!-- [SKILLS] [OPTIONAL] Skills -->
<section id="skills" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Skills</h2>
    <div class="max-w-4xl mx-auto grid grid-cols-2 md:grid-cols-4 gap-4">
      {{skills}}
    </div>
  </div>
</section>`,
			"progress": `<!-- [SKILLS] [OPTIONAL] Skills -->
<section id="skills" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Skills</h2>
    <div class="max-w-4xl mx-auto space-y-4">
      {{skills}}
    </div>
  </div>
</section>`,
		},
		Configurable: map[string]ConfigField{
			"backgroundColor": {Type: "color", Default: "white/5", Options: standardBackgrounds},
			"title":           {Type: "text", MaxLength: 100, Default: "Skills"},
			"showLevel":       {Type: "boolean", Default: false},
		},
	},

	template.TypeProjects: {
		Type:          template.TypeProjects,
		Name:          "Projects",
		Layouts:       []string{"grid", "list", "masonry"},
		DefaultLayout: "grid",
		Templates: map[string]string{
			"grid": `<!-- [PROJECTS] [OPTIONAL] Projects -->
<section id="projects" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Projects</h2>
    <div class="max-w-6xl mx-auto grid md:grid-cols-2 lg:grid-cols-3 gap-6">
      {{projects}}
    </div>
  </div>
</section>`,
			"list": `<!-- [PROJECTS] [OPTIONAL] Projects -->
<section id="projects" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Projects</h2>
    <div class="max-w-4xl mx-auto space-y-6">
      {{projects}}
    </div>
  </div>
</section>`,
			"masonry": `<!-- [PROJECTS] [OPTIONAL] Projects -->
<section id="projects" class="py-20 bg-white/5">
  <div class="container mx-auto px-6">
    <h2 class="text-4xl font-bold text-white mb-12 text-center">Projects</h2>
    <div class="max-w-6xl mx-auto columns-1 md:columns-2 lg:columns-3 gap-6">
      {{projects}}
    </div>
  </div>
</section>`,
		},
		Configurable: map[string]ConfigField{
			"backgroundColor":  {Type: "color", Default: "white/5", Options: standardBackgrounds},
			"title":            {Type: "text", MaxLength: 100, Default: "Projects"},
			"showTechnologies": {Type: "boolean", Default: true},
		},
	},

	template.TypeFooter: {
		Type:          template.TypeFooter,
		Name:          "Footer",
		Layouts:       []string{"simple", "links", "social"},
		DefaultLayout: "simple",
		Templates: map[string]string{
			"simple": `<!-- [FOOTER] Footer -->
<footer class="bg-white/10 backdrop-blur-md border-t border-white/20 py-8">
  <div class="container mx-auto px-6 text-center">
    <p class="text-white/60">&copy; 2024 {{name}}. All rights reserved.</p>
  </div>
</footer>`,
			"links": `<!-- [FOOTER] Footer -->
<footer class="bg-white/10 backdrop-blur-md border-t border-white/20 py-12">
  <div class="container mx-auto px-6">
    <div class="grid md:grid-cols-3 gap-8 mb-8">
      <div>
        <h3 class="text-white font-semibold mb-4">Quick Links</h3>
        <ul class="space-y-2">
          <li><a href="#about" class="text-white/60 hover:text-white transition">About</a></li>
          <li><a href="#experience" class="text-white/60 hover:text-white transition">Experience</a></li>
          <li><a href="#projects" class="text-white/60 hover:text-white transition">Projects</a></li>
        </ul>
      </div>
      <div>
        <h3 class="text-white font-semibold mb-4">Contact</h3>
        <ul class="space-y-2">
          <li class="text-white/60">{{email}}</li>
          <li class="text-white/60">{{phone}}</li>
        </ul>
      </div>
      <div>
        <h3 class="text-white font-semibold mb-4">Follow</h3>
        <ul class="space-y-2">
          <li><a href="{{linkedin}}" class="conditional-link text-white/60 hover:text-white transition">LinkedIn</a></li>
          <li><a href="{{github}}" class="conditional-link text-white/60 hover:text-white transition">GitHub</a></li>
        </ul>
      </div>
    </div>
    <div class="text-center text-white/60">
      <p>&copy; 2024 {{name}}. All rights reserved.</p>
    </div>
  </div>
</footer>`,
			"social": `<!-- [FOOTER] Footer -->
<footer class="bg-white/10 backdrop-blur-md border-t border-white/20 py-12">
  <div class="container mx-auto px-6 text-center">
    <div class="flex justify-center gap-6 mb-6">
      <a href="mailto:{{email}}" class="conditional-link text-white/60 hover:text-white transition">Email</a>
      <a href="{{linkedin}}" class="conditional-link text-white/60 hover:text-white transition">LinkedIn</a>
      <a href="{{github}}" class="conditional-link text-white/60 hover:text-white transition">GitHub</a>
      <a href="{{website}}" class="conditional-link text-white/60 hover:text-white transition">Website</a>
    </div>
    <p class="text-white/60">&copy; 2024 {{name}}. All rights reserved.</p>
  </div>
</footer>`,
		},
		Configurable: map[string]ConfigField{
			"backgroundColor": {Type: "color", Default: "white/10", Options: standardBackgrounds[1:]},
			"showCopyright":   {Type: "boolean", Default: true},
			"showSocialLinks": {Type: "boolean", Default: true},
		},
	},
}

// GetPreset returns the preset for a section type, or nil for unknown types.
func GetPreset(t template.SectionType) *Preset {
	return sectionPresets[t]
}

// AvailableSectionTypes returns the preset catalog's types in vocabulary
// order.
func AvailableSectionTypes() []template.SectionType {
	types := make([]template.SectionType, 0, len(sectionPresets))
	for _, t := range template.ValidSectionTypes {
		if _, ok := sectionPresets[t]; ok {
			types = append(types, t)
		}
	}
	return types
}

// GetSectionTemplate returns the HTML skeleton for (type, layout), falling
// back to the type's default layout for unknown layout names.
func GetSectionTemplate(t template.SectionType, layout string) string {
	preset := GetPreset(t)
	if preset == nil {
		return ""
	}
	if tpl, ok := preset.Templates[layout]; ok {
		return tpl
	}
	return preset.Templates[preset.DefaultLayout]
}
