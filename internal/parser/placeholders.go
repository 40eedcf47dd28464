package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/imuii/templatekit/internal/template"
)

var placeholderRe = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// arrayFieldKeys are the placeholder keys that always describe a collection.
var arrayFieldKeys = map[string]bool{
	"skills":         true,
	"experience":     true,
	"education":      true,
	"projects":       true,
	"languages":      true,
	"certifications": true,
}

// ExtractPlaceholders returns the de-duplicated set of {{key}} tokens in h,
// in first-occurrence order. Nested braces are not supported: the key is
// everything between the double braces up to the first closing brace.
func ExtractPlaceholders(h string) []string {
	if h == "" {
		return []string{}
	}

	seen := make(map[string]bool)
	keys := []string{}
	for _, m := range placeholderRe.FindAllStringSubmatch(h, -1) {
		key := m[1]
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// GenerateFieldsFromPlaceholders infers a field schema from placeholder
// keys. Type inference is substring-based: "email" and "phone" anywhere in
// the key, the fixed collection key set, then "date"/"Date", else text.
func GenerateFieldsFromPlaceholders(placeholders []string) []template.Field {
	if len(placeholders) == 0 {
		return []template.Field{}
	}

	seen := make(map[string]bool)
	fields := []template.Field{}
	for _, key := range placeholders {
		if seen[key] {
			continue
		}
		seen[key] = true

		fields = append(fields, template.Field{
			Key:      key,
			Label:    labelFromKey(key),
			Type:     inferFieldType(key),
			Required: false,
		})
	}
	return fields
}

// GenerateFieldsFromTemplate extracts placeholders from an HTML template and
// derives the field schema in one step.
func GenerateFieldsFromTemplate(htmlTemplate string) []template.Field {
	if htmlTemplate == "" {
		return []template.Field{}
	}
	return GenerateFieldsFromPlaceholders(ExtractPlaceholders(htmlTemplate))
}

func inferFieldType(key string) template.FieldType {
	switch {
	case strings.Contains(key, "email"):
		return template.FieldEmail
	case strings.Contains(key, "phone"):
		return template.FieldPhone
	case arrayFieldKeys[key]:
		return template.FieldArray
	case strings.Contains(key, "date") || strings.Contains(key, "Date"):
		return template.FieldDate
	default:
		return template.FieldText
	}
}

// labelFromKey turns a camelCase key into a human label: a space is inserted
// before each uppercase rune and the first rune is capitalized.
func labelFromKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	label := strings.TrimSpace(b.String())
	if label == "" {
		label = key
	}
	runes := []rune(label)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
