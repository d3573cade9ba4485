// Package guard redacts sensitive substrings crossing external call
// boundaries and restores them on the way back.
//
// A before pass replaces pattern matches in a designated tool argument with
// placeholder tokens and records the placeholder-to-original mapping. An
// after pass substitutes the originals back into the tool's designated
// response field. Mappings are scoped per tool name and accumulate across
// invocations within a run.
package guard

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
)

// MapKeyPrefix prefixes the session state key holding a tool's
// placeholder-to-original mapping.
const MapKeyPrefix = "sensitive_map_"

// MapKey returns the session state key for a tool's sensitive mapping.
func MapKey(tool string) string {
	return MapKeyPrefix + tool
}

type rule struct {
	pattern *regexp.Regexp
	label   string
}

// designation names the argument redacted before a tool call and the
// response field restored after it.
type designation struct {
	argField      string
	responseField string
}

// Guard applies redaction rules around designated tool invocations.
type Guard struct {
	rules        []rule
	designations map[string]designation
}

// New creates a Guard with the default rules: labeled confidential markers
// and ISO-date-shaped tokens.
func New() *Guard {
	return &Guard{
		rules: []rule{
			{pattern: regexp.MustCompile(`\b(Confidential Info \d+)\b`), label: "CONFIDENTIAL"},
			{pattern: regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`), label: "DATE"},
		},
		designations: map[string]designation{
			"translate_text":    {argField: "text", responseField: "translated_text"},
			"check_translation": {argField: "original_text", responseField: "feedback_text"},
		},
	}
}

// ArgField returns the argument field redacted before calling the named
// tool, if the tool is designated.
func (g *Guard) ArgField(tool string) (string, bool) {
	d, ok := g.designations[tool]
	if !ok {
		return "", false
	}
	return d.argField, true
}

// ResponseField returns the response field restored after calling the named
// tool, if the tool is designated.
func (g *Guard) ResponseField(tool string) (string, bool) {
	d, ok := g.designations[tool]
	if !ok {
		return "", false
	}
	return d.responseField, true
}

// Redact replaces every rule match in text with a placeholder token and
// returns the redacted text along with the mapping extended from existing.
// The existing map is not mutated. One counter spans all rules within a
// call and restarts on the next one, so repeated redaction under the same
// tool may reassign placeholder numbers; entries are only ever added,
// never removed.
func (g *Guard) Redact(text string, existing map[string]string) (string, map[string]string) {
	mapping := make(map[string]string, len(existing))
	maps.Copy(mapping, existing)

	count := 0
	for _, r := range g.rules {
		text = r.pattern.ReplaceAllStringFunc(text, func(match string) string {
			count++
			placeholder := fmt.Sprintf("__%s_%d__", r.label, count)
			mapping[placeholder] = match
			return placeholder
		})
	}

	return text, mapping
}

// Restore substitutes original values back for every placeholder present in
// text. Text without placeholders passes through unchanged.
func (g *Guard) Restore(text string, mapping map[string]string) string {
	for placeholder, original := range mapping {
		text = strings.ReplaceAll(text, placeholder, original)
	}
	return text
}
