package patloc

import (
	"regexp"
	"strings"

	"github.com/serenize/snaker"
)

// Characters outside this set act as word separators in key fragments.
var nonAlnum = regexp.MustCompile("[^a-zA-Z0-9]+")

// Normalize converts a free-form key fragment into its canonical lower-camel
// form. Words are split on punctuation, whitespace and camel-case
// boundaries, so separator and casing noise doesn't change the resulting
// key: "Login Page" and "loginPage" normalize identically. Normalizing an
// already canonical fragment is a no-op.
func Normalize(fragment string) string {
	fragment = strings.Trim(nonAlnum.ReplaceAllString(fragment, "_"), "_")
	if fragment == "" {
		return ""
	}
	return snaker.SnakeToCamelLower(snaker.CamelToSnake(fragment))
}

// Key returns the namespaced resolution key for a (page, role, field)
// triple: code + page + role + fieldName, each fragment normalized.
func (r *Resolver) Key(page string, role Role, field string) string {
	return strings.Join([]string{
		r.bundle.PatternCode(),
		Normalize(page),
		r.roleFragment(role),
		Normalize(field),
	}, ".")
}

// templateKey returns the page-independent key holding the role's template.
func (r *Resolver) templateKey(role Role) string {
	return r.bundle.PatternCode() + ".pattern." + r.roleFragment(role)
}

// roleFragment normalizes a role name for key building, stripping any
// configured role-family prefix ("d365_" style) first.
func (r *Resolver) roleFragment(role Role) string {
	return Normalize(stripRolePrefix(string(role), r.opts.RolePrefixes))
}

func stripRolePrefix(name string, prefixes []string) string {
	for _, prefix := range prefixes {
		if rest := strings.TrimPrefix(name, prefix); rest != name {
			return rest
		}
	}
	return name
}
