package patloc

import (
	"fmt"
	"strings"
)

// MissingTemplateError is returned when no usable locator template is
// configured for a role. It names the exact key and the triple being
// resolved, so the failure is attributable to its configuration root cause
// instead of surfacing later as a generic element-not-found.
type MissingTemplateError struct {
	Key   string
	Page  string
	Role  Role
	Field string
}

func (e MissingTemplateError) Error() string {
	msg := fmt.Sprintf("locator template '%s' not available", e.Key)
	if e.Page != "" || e.Field != "" {
		msg += fmt.Sprintf(" (resolving %s.%s.%s)", e.Page, e.Role, e.Field)
	}
	return msg
}

// Hint implements errext.HasHint.
func (e MissingTemplateError) Hint() string {
	return fmt.Sprintf("add %s to the pattern properties file, or configure an explicit locator for the field", e.Key)
}

// MalformedFieldError is returned when a field name carries a bracket
// instance suffix that cannot be parsed.
type MalformedFieldError struct {
	Field string
}

func (e MalformedFieldError) Error() string {
	return fmt.Sprintf("field name %q has a malformed instance suffix", e.Field)
}

// Hint implements errext.HasHint.
func (e MalformedFieldError) Hint() string {
	return `the repetition index must be a positive number, e.g. "Submit[2]"`
}

// UnknownRoleError is returned by dispatch-by-name when the role is outside
// the supported set.
type UnknownRoleError struct {
	Name string
}

func (e UnknownRoleError) Error() string {
	return fmt.Sprintf("unsupported element role %q", e.Name)
}

// Hint implements errext.HasHint.
func (e UnknownRoleError) Hint() string {
	return "run 'patloc roles' for the supported role set"
}

// BadTemplateError is returned when a template uses placeholders outside the
// supported variable set, which would otherwise leak ${...} tokens into the
// generated locators.
type BadTemplateError struct {
	Key          string
	Placeholders []string
}

func (e BadTemplateError) Error() string {
	return fmt.Sprintf("locator template '%s' contains unsupported placeholders: %s",
		e.Key, strings.Join(e.Placeholders, ", "))
}

// Hint implements errext.HasHint.
func (e BadTemplateError) Hint() string {
	return fmt.Sprintf("supported placeholders are %s, %s, %s and %s",
		VarFieldName, VarFieldInstance, VarForValue, VarFieldValue)
}

// LabelDepthError is returned when label association recurses past its
// depth limit, which only happens with a self-referential label template.
type LabelDepthError struct {
	Field string
}

func (e LabelDepthError) Error() string {
	return fmt.Sprintf("label association for %q exceeded the recursion limit", e.Field)
}

// Hint implements errext.HasHint.
func (e LabelDepthError) Hint() string {
	return "check the label template in the pattern properties for self-references"
}
