package patloc

import (
	null "gopkg.in/guregu/null.v3"
)

// DefaultPatternFile is where role templates are looked for when nothing
// else is configured.
const DefaultPatternFile = "resources/locators/locPattern.properties"

// Options configure the resolution engine. Unset fields keep the defaults
// from DefaultOptions; Apply merges another Options value on top, which is
// how CLI flags end up overriding environment variables.
type Options struct {
	// Enabled turns loading of the role-template file on or off. With it
	// off, only explicit overrides resolve; template generation fails with
	// a missing-template error, same as with an empty pattern file.
	Enabled null.Bool `json:"enabled" envconfig:"PATLOC_PATTERN_ENABLED"`

	// PatternCode overrides the loc.pattern.code namespace prefix from the
	// property files.
	PatternCode null.String `json:"patternCode" envconfig:"PATLOC_PATTERN_CODE"`

	// PatternFile is the properties file holding the role templates.
	PatternFile null.String `json:"patternFile" envconfig:"PATLOC_PATTERN_FILE"`

	// RolePrefixes are role-family prefix tokens stripped before role
	// normalization, so "d365_input" and "input" address the same template.
	RolePrefixes []string `json:"rolePrefixes" envconfig:"PATLOC_ROLE_PREFIXES"`
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		Enabled:      null.BoolFrom(true),
		PatternFile:  null.StringFrom(DefaultPatternFile),
		RolePrefixes: []string{"d365_"},
	}
}

// Apply overlays the set fields of opts and returns the result.
func (o Options) Apply(opts Options) Options {
	if opts.Enabled.Valid {
		o.Enabled = opts.Enabled
	}
	if opts.PatternCode.Valid {
		o.PatternCode = opts.PatternCode
	}
	if opts.PatternFile.Valid {
		o.PatternFile = opts.PatternFile
	}
	if len(opts.RolePrefixes) > 0 {
		o.RolePrefixes = opts.RolePrefixes
	}
	return o
}
