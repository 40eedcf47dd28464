// Package filler substitutes fill data into template HTML. Substitution is a
// pure string transformation: scalar fields, derived accessors, collection
// expansion through pluggable fragment renderers, custom tab data, and a
// final sweep that strips unresolved placeholders.
package filler

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/imuii/templatekit/internal/template"
)

// CustomSectionsToken is the one placeholder the filler never strips. It is
// substituted later by the section renderer, which injects user-added custom
// sections at that spot.
const CustomSectionsToken = "{{customSections}}"

var (
	residualRe = regexp.MustCompile(`\{\{([^}]+)\}\}`)

	// conditionalLinkRe matches anchor tags carrying the conditional-link
	// class with an empty href. The element is hidden, not removed.
	conditionalLinkRe  = regexp.MustCompile(`(?i)<a([^>]*class="[^"]*conditional-link[^"]*"[^>]*href="")([^>]*)>`)
	conditionalLinkRe2 = regexp.MustCompile(`(?i)<a([^>]*href=""[^>]*class="[^"]*conditional-link[^"]*")([^>]*)>`)
	conditionalPhoneRe = regexp.MustCompile(`(?i)<([a-z0-9]+)([^>]*class="[^"]*conditional-phone[^"]*"[^>]*)>\s*</`)
)

// scalarKeys maps flat placeholder keys to their personal-info accessor.
// Every key except bio is HTML-escaped before substitution.
func scalarValues(info template.PersonalInfo) map[string]string {
	return map[string]string{
		"name":     info.Name,
		"email":    info.Email,
		"phone":    info.Phone,
		"address":  info.Address,
		"website":  info.Website,
		"linkedin": info.LinkedIn,
		"github":   info.GitHub,
		"photo":    info.Photo,
	}
}

// FillTemplate substitutes data into tpl and returns the filled HTML. The
// output is a pure function of (tpl, data); no placeholder other than
// {{customSections}} survives in it.
func FillTemplate(tpl string, data *template.FillData) string {
	if tpl == "" {
		return ""
	}
	if data == nil {
		data = &template.FillData{}
	}

	filled := tpl

	// 1. Scalar personal info. bio is substituted raw: it may legitimately
	// contain markup authored by the user.
	for key, value := range scalarValues(data.PersonalInfo) {
		escaped := html.EscapeString(value)
		filled = strings.ReplaceAll(filled, "{{"+key+"}}", escaped)
		filled = strings.ReplaceAll(filled, "{{personalInfo."+key+"}}", escaped)
	}
	filled = strings.ReplaceAll(filled, "{{bio}}", data.PersonalInfo.Bio)
	filled = strings.ReplaceAll(filled, "{{personalInfo.bio}}", data.PersonalInfo.Bio)

	// 2. Derived accessors resolving to the first character of the name.
	initial := ""
	if runes := []rune(data.PersonalInfo.Name); len(runes) > 0 {
		initial = html.EscapeString(string(runes[0]))
	}
	for _, accessor := range []string{"{{name.substring(0,1)}}", "{{name.[0]}}", "{{name.charAt(0)}}"} {
		filled = strings.ReplaceAll(filled, accessor, initial)
	}

	// 3. Conditional visibility: elements tied to absent data are hidden via
	// CSS rather than removed, so the document structure stays stable.
	filled = applyConditionalDisplay(filled)

	// 4. Collection fields. Both variants are always computed; whichever
	// placeholder spelling is present gets substituted.
	for _, field := range CollectionFields() {
		for variant, render := range fragmentRenderers[field] {
			token := "{{" + field + "}}"
			if variant == VariantColorful {
				token = "{{" + field + "-colorful}}"
			}
			if strings.Contains(filled, token) {
				filled = strings.ReplaceAll(filled, token, render(data))
			}
		}
	}

	// 5. Custom tab data: {{custom.<tab>.<field>}} and whole-tab
	// {{custom.<tab>}} references.
	filled = fillCustomData(filled, data.Custom)

	// 6. Strip every unresolved placeholder except the custom-sections slot,
	// which belongs to the section renderer.
	filled = residualRe.ReplaceAllStringFunc(filled, func(m string) string {
		if m == CustomSectionsToken {
			return m
		}
		return ""
	})

	// 7. Remove serialized-metadata artifacts.
	return CleanupMetadataArtifacts(filled)
}

// applyConditionalDisplay hides conditional-link anchors whose href resolved
// empty and conditional-phone elements whose text resolved empty.
func applyConditionalDisplay(h string) string {
	h = conditionalLinkRe.ReplaceAllStringFunc(h, addHiddenClass)
	h = conditionalLinkRe2.ReplaceAllStringFunc(h, addHiddenClass)
	h = conditionalPhoneRe.ReplaceAllStringFunc(h, func(tag string) string {
		if strings.Contains(tag, "display:none") {
			return tag
		}
		idx := strings.Index(tag, ">")
		return tag[:idx] + ` style="display:none"` + tag[idx:]
	})
	return h
}

func addHiddenClass(tag string) string {
	if strings.Contains(tag, "hidden") {
		return tag
	}
	return strings.Replace(tag, "conditional-link", "conditional-link hidden", 1)
}

// fillCustomData substitutes {{custom.*}} placeholders. A field whose value
// is an array renders as pill spans; a whole-tab reference renders as a pill
// list (array tab), a JSON string (object tab), or the literal scalar.
func fillCustomData(h string, custom map[string]any) string {
	if len(custom) == 0 {
		return h
	}

	for tab, tabValue := range custom {
		if fields, ok := tabValue.(map[string]any); ok {
			for field, value := range fields {
				token := fmt.Sprintf("{{custom.%s.%s}}", tab, field)
				if !strings.Contains(h, token) {
					continue
				}
				h = strings.ReplaceAll(h, token, renderCustomValue(value))
			}
		}

		tabToken := fmt.Sprintf("{{custom.%s}}", tab)
		if !strings.Contains(h, tabToken) {
			continue
		}
		h = strings.ReplaceAll(h, tabToken, renderCustomTab(tabValue))
	}
	return h
}

func renderCustomValue(value any) string {
	if items, ok := value.([]any); ok {
		return renderPills(items)
	}
	return html.EscapeString(fmt.Sprint(value))
}

func renderCustomTab(value any) string {
	switch v := value.(type) {
	case []any:
		return renderPills(v)
	case map[string]any:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return html.EscapeString(string(raw))
	default:
		return html.EscapeString(fmt.Sprint(v))
	}
}

func renderPills(items []any) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, `<span class="px-3 py-1 bg-white/10 rounded-full text-sm">%s</span>`,
			html.EscapeString(fmt.Sprint(item)))
	}
	return b.String()
}
