package patloc

import (
	"regexp"
	"strings"
)

// The placeholder variables recognised in locator templates.
const (
	VarFieldName     = "${loc.auto.fieldName}"
	VarFieldInstance = "${loc.auto.fieldInstance}"
	VarForValue      = "${loc.auto.forValue}"
	VarFieldValue    = "${loc.auto.fieldValue}"
)

var (
	quotedCandidate = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
	placeholder     = regexp.MustCompile(`\$\{[^}]*\}`)
)

// SplitTemplate parses a raw template value into its ordered candidate
// list. The documented format is a comma-separated list of quoted strings
// (possibly spanning property continuation lines); unquoted values are
// accepted as well and split on '|', the separator legacy pattern files
// used.
func SplitTemplate(raw string) []string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, `"`) {
		matches := quotedCandidate.FindAllStringSubmatch(raw, -1)
		candidates := make([]string, 0, len(matches))
		for _, m := range matches {
			if c := strings.ReplaceAll(m[1], `\"`, `"`); c != "" {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) > 0 {
			return candidates
		}
	}
	var candidates []string
	for _, c := range strings.Split(raw, "|") {
		if c = strings.TrimSpace(c); c != "" {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// UnknownPlaceholders returns the ${...} tokens in raw that are not part of
// the supported variable set, in order of appearance.
func UnknownPlaceholders(raw string) []string {
	var unknown []string
	for _, ph := range placeholder.FindAllString(raw, -1) {
		switch ph {
		case VarFieldName, VarFieldInstance, VarForValue, VarFieldValue:
		default:
			unknown = append(unknown, ph)
		}
	}
	return unknown
}

// vars holds the resolution variables substituted into a template. A fresh
// value is built for every resolution call, so concurrent resolutions can
// never observe each other's values.
type vars struct {
	fieldName     string
	fieldInstance string
	forValue      string
	fieldValue    string
}

func (v vars) substitute(candidate string) string {
	return strings.NewReplacer(
		VarFieldName, v.fieldName,
		VarFieldInstance, v.fieldInstance,
		VarForValue, v.forValue,
		VarFieldValue, v.fieldValue,
	).Replace(candidate)
}
