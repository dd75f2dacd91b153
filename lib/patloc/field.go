package patloc

import "strings"

// ParseField splits a field name from its optional bracketed repetition
// index: "Submit[2]" yields ("Submit", "2"), plain "Submit" yields
// ("Submit", "1"). Empty or non-numeric bracket content is rejected instead
// of being coerced, since it always means a typo in the test step.
func ParseField(field string) (name, instance string, err error) {
	trimmed := strings.TrimSpace(field)
	if !strings.HasSuffix(trimmed, "]") {
		return trimmed, "1", nil
	}
	open := strings.LastIndex(trimmed, "[")
	if open < 0 {
		// A stray closing bracket is not instance notation.
		return trimmed, "1", nil
	}
	name = strings.TrimSpace(trimmed[:open])
	instance = trimmed[open+1 : len(trimmed)-1]
	if name == "" || !isDigits(instance) {
		return "", "", MalformedFieldError{Field: field}
	}
	return name, instance, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
