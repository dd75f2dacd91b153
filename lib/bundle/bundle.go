// Package bundle implements the property bundle backing locator resolution:
// an ordered, namespaced string-to-string store holding role templates,
// page-specific overrides and values written back by the resolver.
package bundle

import (
	"fmt"
	"sync"

	"github.com/magiconair/properties"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DefaultPatternCode is the namespace prefix used when the configuration
// doesn't set loc.pattern.code.
const DefaultPatternCode = "loc.qaf"

// patternCodeKey holds the configured namespace prefix inside the bundle.
const patternCodeKey = "loc.pattern.code"

// Bundle is an ordered key/value property store. Lookups report absence
// explicitly; the store itself never fails, since a missing override is the
// common case during resolution, not an error.
//
// A Bundle is safe for concurrent use.
type Bundle struct {
	mx     sync.RWMutex
	order  []string
	values map[string]string

	patternCodeOnce sync.Once
	patternCode     string

	logger logrus.FieldLogger
}

// New returns an empty Bundle.
func New(logger logrus.FieldLogger) *Bundle {
	return &Bundle{
		values: make(map[string]string),
		logger: logger,
	}
}

// Load reads one or more Java-style property files into the bundle, in the
// given order; keys from later files overwrite earlier ones. Value expansion
// is disabled so ${loc.auto.*} placeholders survive verbatim until the
// resolver substitutes them.
func (b *Bundle) Load(fs afero.Fs, paths ...string) error {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	for _, path := range paths {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("could not read properties file '%s': %w", path, err)
		}
		props, err := loader.LoadBytes(data)
		if err != nil {
			return fmt.Errorf("could not parse properties file '%s': %w", path, err)
		}
		for _, key := range props.Keys() {
			value, _ := props.Get(key)
			b.Set(key, value)
		}
		b.logger.WithFields(logrus.Fields{
			"path": path,
			"keys": len(props.Keys()),
		}).Debug("Loaded properties file")
	}
	return nil
}

// Get returns the value stored under key and whether the key is configured
// at all.
func (b *Bundle) Get(key string) (string, bool) {
	b.mx.RLock()
	defer b.mx.RUnlock()
	value, ok := b.values[key]
	return value, ok
}

// Set creates or overwrites an entry. Setting an unknown key is not an
// error; the resolver relies on that to write generated locators back.
func (b *Bundle) Set(key, value string) {
	b.mx.Lock()
	defer b.mx.Unlock()
	if _, ok := b.values[key]; !ok {
		b.order = append(b.order, key)
	}
	b.values[key] = value
}

// Keys returns all configured keys in insertion order.
func (b *Bundle) Keys() []string {
	b.mx.RLock()
	defer b.mx.RUnlock()
	keys := make([]string, len(b.order))
	copy(keys, b.order)
	return keys
}

// Len returns the number of configured entries.
func (b *Bundle) Len() int {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return len(b.values)
}

// PatternCode returns the namespace prefix used to build resolution keys.
// It is read from loc.pattern.code on first use and constant afterwards, so
// all keys built during one run share a prefix even if the bundle is
// mutated later.
func (b *Bundle) PatternCode() string {
	b.patternCodeOnce.Do(func() {
		if code, ok := b.Get(patternCodeKey); ok && code != "" {
			b.patternCode = code
			return
		}
		b.patternCode = DefaultPatternCode
	})
	return b.patternCode
}
