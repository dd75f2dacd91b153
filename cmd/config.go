package cmd

import (
	"io"

	"github.com/mstoykov/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	null "gopkg.in/guregu/null.v3"

	"github.com/qaforge/patloc/errext"
	"github.com/qaforge/patloc/errext/exitcodes"
	"github.com/qaforge/patloc/lib/bundle"
	"github.com/qaforge/patloc/lib/patloc"
)

// config collects everything needed to build a resolver: the engine options
// plus the property files holding overrides and templates.
type config struct {
	patloc.Options
	PropertyFiles []string `envconfig:"PATLOC_PROPERTIES"`
}

func (c config) apply(cfg config) config {
	c.Options = c.Options.Apply(cfg.Options)
	if len(cfg.PropertyFiles) > 0 {
		c.PropertyFiles = cfg.PropertyFiles
	}
	return c
}

func configFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.StringSliceP("properties", "p", nil, "property files with explicit locators, loaded in order")
	flags.String("pattern-file", "", "properties file holding the role templates")
	flags.String("pattern-code", "", "namespace prefix for resolution keys")
	flags.Bool("no-pattern", false, "don't load role templates, resolve explicit locators only")
	flags.StringSlice("role-prefix", nil, "role-family prefixes stripped before role lookup")
	return flags
}

// getConfig consolidates the three configuration tiers in override order:
// defaults, then environment, then CLI flags.
func getConfig(flags *pflag.FlagSet) (config, error) {
	envConf := config{}
	if err := envconfig.Process("", &envConf); err != nil {
		return config{}, errext.WithExitCodeIfNone(err, exitcodes.InvalidConfig)
	}

	flagConf := config{}
	if flags.Changed("pattern-file") {
		v, _ := flags.GetString("pattern-file")
		flagConf.PatternFile = null.StringFrom(v)
	}
	if flags.Changed("pattern-code") {
		v, _ := flags.GetString("pattern-code")
		flagConf.PatternCode = null.StringFrom(v)
	}
	if flags.Changed("no-pattern") {
		v, _ := flags.GetBool("no-pattern")
		flagConf.Enabled = null.BoolFrom(!v)
	}
	if flags.Changed("role-prefix") {
		flagConf.RolePrefixes, _ = flags.GetStringSlice("role-prefix")
	}
	if flags.Changed("properties") {
		flagConf.PropertyFiles, _ = flags.GetStringSlice("properties")
	}

	conf := config{Options: patloc.DefaultOptions()}
	return conf.apply(envConf).apply(flagConf), nil
}

// loadBundle builds the property bundle for conf: the role-template file
// first, then the explicit property files, so later files win and an
// override file can replace individual templates. With templates disabled
// the pattern file is skipped entirely and only explicit locators resolve.
func loadBundle(fs afero.Fs, conf config, logger logrus.FieldLogger) (*bundle.Bundle, error) {
	b := bundle.New(logger)
	if conf.Enabled.Bool {
		patternFile, configured := patternFileFor(fs, conf)
		err := b.Load(fs, patternFile)
		switch {
		case err == nil:
		case configured:
			// an explicitly configured pattern file must exist
			return nil, errext.WithExitCodeIfNone(err, exitcodes.InvalidConfig)
		default:
			logger.WithField("path", patternFile).Debug("No pattern file, resolving explicit locators only")
		}
	} else {
		logger.Debug("Role templates disabled")
	}
	if err := b.Load(fs, conf.PropertyFiles...); err != nil {
		return nil, errext.WithExitCodeIfNone(err, exitcodes.InvalidConfig)
	}
	if conf.PatternCode.Valid {
		b.Set("loc.pattern.code", conf.PatternCode.String)
	}
	return b, nil
}

// patternFileFor picks the role-template file: flag/env configuration wins,
// then a loc.pattern.file property, then the default location. The property
// files are scanned ahead of the real load so the file they name can still
// be loaded before them.
func patternFileFor(fs afero.Fs, conf config) (string, bool) {
	if conf.PatternFile.String != patloc.DefaultPatternFile {
		return conf.PatternFile.String, true
	}
	scanLogger := logrus.New()
	scanLogger.SetOutput(io.Discard)
	scratch := bundle.New(scanLogger)
	if err := scratch.Load(fs, conf.PropertyFiles...); err == nil {
		if fromProps, ok := scratch.Get("loc.pattern.file"); ok && fromProps != "" {
			return fromProps, true
		}
	}
	return patloc.DefaultPatternFile, false
}

// newResolver is the common construction path of the subcommands.
func newResolver(flags *pflag.FlagSet, logger logrus.FieldLogger) (*patloc.Resolver, *bundle.Bundle, error) {
	conf, err := getConfig(flags)
	if err != nil {
		return nil, nil, err
	}
	b, err := loadBundle(afero.NewOsFs(), conf, logger)
	if err != nil {
		return nil, nil, err
	}
	return patloc.New(b, conf.Options, nil, logger), b, nil
}
