// Package patloc implements pattern-based locator resolution for browser
// test automation: semantic (page, role, field) triples are resolved into
// concrete element locators, either from explicit per-page overrides or from
// role-level templates with variable substitution.
package patloc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/qaforge/patloc/lib/bundle"
)

// Stored override values shorter than this are treated as noise rather than
// locators, matching the original heuristic (see DESIGN.md).
const minLocatorLen = 5

// Resolver computes locator resolutions against a property bundle. It holds
// no per-call state; all transient resolution variables live on the stack of
// one Resolve call, so a Resolver is safe for concurrent use.
type Resolver struct {
	bundle *bundle.Bundle
	opts   Options
	probe  LabelProbe
	logger logrus.FieldLogger
}

// New returns a Resolver reading from b. probe may be nil, in which case
// label association is skipped and ${loc.auto.forValue} renders empty.
func New(b *bundle.Bundle, opts Options, probe LabelProbe, logger logrus.FieldLogger) *Resolver {
	return &Resolver{
		bundle: b,
		opts:   DefaultOptions().Apply(opts),
		probe:  probe,
		logger: logger,
	}
}

// Resolve computes the resolution for a triple. An explicit override
// configured under the triple's key always wins; otherwise the role-level
// template is instantiated and the result is written back into the bundle,
// so the next resolution of the same triple is served from the override
// slot without re-substitution.
func (r *Resolver) Resolve(page string, role Role, field string) (Resolution, error) {
	return r.resolve(page, role, field, "", 0)
}

// ResolveValue is Resolve with an explicit field value substituted for the
// ${loc.auto.fieldValue} placeholder.
func (r *Resolver) ResolveValue(page string, role Role, field, value string) (Resolution, error) {
	return r.resolve(page, role, field, value, 0)
}

// ByRole resolves using a role given by name, the closed-set replacement
// for the reflection dispatch the original step layer used. Configured
// role-family prefixes are stripped before the lookup.
func (r *Resolver) ByRole(page, roleName, field string) (Resolution, error) {
	return r.ByRoleValue(page, roleName, field, "")
}

// ByRoleValue is ByRole with an explicit field value.
func (r *Resolver) ByRoleValue(page, roleName, field, value string) (Resolution, error) {
	role, ok := LookupRole(stripRolePrefix(roleName, r.opts.RolePrefixes))
	if !ok {
		return Resolution{}, UnknownRoleError{Name: roleName}
	}
	return r.resolve(page, role, field, value, 0)
}

func (r *Resolver) resolve(page string, role Role, field, value string, depth int) (Resolution, error) {
	key := r.Key(page, role, field)
	if raw, ok := r.override(key); ok {
		if res, ok := decodeResolution(raw); ok {
			r.logger.WithField("key", key).Debug("Served generated locator from write-back cache")
			return res, nil
		}
		r.logger.WithField("key", key).Debug("Resolved explicit locator override")
		return Resolution{Locator: raw}, nil
	}
	if raw, altKey, ok := r.alternative(page, role, field); ok {
		r.logger.WithField("key", altKey).Debug("Resolved explicit locator from alternative key")
		return Resolution{Locator: raw}, nil
	}
	return r.generate(key, page, role, field, value, depth)
}

// alternative probes the legacy shorthand key forms between the primary
// override and template generation, in order: page.field, field.role and
// bare field. Each candidate key gets the same plausibility check as the
// primary one.
func (r *Resolver) alternative(page string, role Role, field string) (string, string, bool) {
	pageFrag, roleFrag, fieldFrag := Normalize(page), r.roleFragment(role), Normalize(field)
	for _, key := range []string{
		pageFrag + "." + fieldFrag,
		fieldFrag + "." + roleFrag,
		fieldFrag,
	} {
		if raw, ok := r.override(key); ok {
			return raw, key, true
		}
	}
	return "", "", false
}

// override looks the key up in the bundle and applies the plausibility
// check: values shorter than minLocatorLen (or echoing the key itself) fall
// through to generation the way unconfigured keys do.
func (r *Resolver) override(key string) (string, bool) {
	value, ok := r.bundle.Get(key)
	if !ok || value == key || len(value) < minLocatorLen {
		return "", false
	}
	return value, true
}

func (r *Resolver) generate(key, page string, role Role, field, value string, depth int) (Resolution, error) {
	name, instance, err := ParseField(field)
	if err != nil {
		return Resolution{}, err
	}

	v := vars{fieldName: name, fieldInstance: instance, fieldValue: value}
	if role.InputLike() {
		forValue, err := r.labelForValue(page, name, depth)
		if err != nil {
			return Resolution{}, err
		}
		v.forValue = forValue
	}

	tmplKey := r.templateKey(role)
	raw, ok := r.bundle.Get(tmplKey)
	candidates := SplitTemplate(raw)
	// A value that yields no candidates (blank separators only) is as
	// unusable as an absent one and must never produce an empty locator.
	if !ok || len(raw) < minLocatorLen || len(candidates) == 0 {
		r.logger.WithFields(logrus.Fields{
			"key":   tmplKey,
			"page":  page,
			"role":  role,
			"field": field,
		}).Error("Locator template not available")
		return Resolution{}, MissingTemplateError{Key: tmplKey, Page: page, Role: role, Field: field}
	}
	if unknown := UnknownPlaceholders(raw); len(unknown) > 0 {
		return Resolution{}, BadTemplateError{Key: tmplKey, Placeholders: unknown}
	}

	for i, c := range candidates {
		candidates[i] = v.substitute(c)
	}
	res := Resolution{
		Candidates:  candidates,
		Description: fmt.Sprintf("%s : [%s] Field", name, role),
	}
	r.bundle.Set(key, res.encode())
	r.logger.WithFields(logrus.Fields{
		"key":        key,
		"template":   tmplKey,
		"candidates": len(candidates),
	}).Debug("Generated locator from role template")
	return res, nil
}

// labelForValue resolves the label template for the field's display name
// and asks the probe for the matching label's "for" attribute. Association
// is best-effort: no probe, no label template or no matching label all
// leave the variable empty instead of failing the resolution.
func (r *Resolver) labelForValue(page, name string, depth int) (string, error) {
	if r.probe == nil {
		return "", nil
	}
	if depth >= maxLabelDepth {
		return "", LabelDepthError{Field: name}
	}
	labelRes, err := r.resolve(page, RoleLabel, name, "", depth+1)
	if err != nil {
		var missing MissingTemplateError
		if errors.As(err, &missing) {
			r.logger.WithField("key", missing.Key).Debug("No label template, skipping label association")
			return "", nil
		}
		return "", err
	}
	return r.probe.ForValue(labelRes.All())
}

// Roles returns the roles that currently have a template configured, in
// bundle order.
func (r *Resolver) Roles() []Role {
	prefix := r.bundle.PatternCode() + ".pattern."
	var out []Role
	for _, key := range r.bundle.Keys() {
		name, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		if role, found := LookupRole(name); found {
			out = append(out, role)
		}
	}
	return out
}

// CheckTemplates validates every configured template under the pattern
// namespace: the value must split into at least one plausible candidate and
// may only use supported placeholders. Template keys for roles outside the
// supported set are reported as well.
func (r *Resolver) CheckTemplates() []error {
	prefix := r.bundle.PatternCode() + ".pattern."
	var errs []error
	for _, key := range r.bundle.Keys() {
		name, ok := strings.CutPrefix(key, prefix)
		if !ok || name == "code" || name == "enabled" || name == "file" {
			continue
		}
		if _, found := LookupRole(stripRolePrefix(name, r.opts.RolePrefixes)); !found {
			errs = append(errs, UnknownRoleError{Name: name})
			continue
		}
		raw, _ := r.bundle.Get(key)
		if len(raw) < minLocatorLen || len(SplitTemplate(raw)) == 0 {
			errs = append(errs, MissingTemplateError{Key: key})
		}
		if unknown := UnknownPlaceholders(raw); len(unknown) > 0 {
			errs = append(errs, BadTemplateError{Key: key, Placeholders: unknown})
		}
	}
	return errs
}
