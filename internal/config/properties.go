package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Property names. Each is reachable as an environment variable by upper-casing it and
// replacing dots with underscores (courgette.run_level -> COURGETTE_RUN_LEVEL), or as a
// -D definition on the command line.
const (
	PropThreads              = "courgette.threads"
	PropRunLevel             = "courgette.run_level"
	PropRerunFailedScenarios = "courgette.rerun_failed_scenarios"
	PropRerunAttempts        = "courgette.rerun_attempts"
	PropShowTestOutput       = "courgette.show_test_output"
	PropReportTitle          = "courgette.report_title"
	PropReportTargetDir      = "courgette.report_target_dir"

	PropFeatures  = "cucumber.features"
	PropGlue      = "cucumber.glue"
	PropExtraGlue = "cucumber.extra_glue"
	PropTags      = "cucumber.tags"
	PropPlugin    = "cucumber.plugin"
	PropName      = "cucumber.name"
)

// envPrefixes are the environment namespaces read as properties.
var envPrefixes = []string{"COURGETTE_", "CUCUMBER_"}

// PropertySource looks up process-level named properties.
type PropertySource interface {
	Lookup(key string) (string, bool)
}

// MapProperties is a fixed set of properties, mostly useful in tests.
type MapProperties map[string]string

// Lookup implements PropertySource.
func (m MapProperties) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Properties holds the process-level properties: environment variables overlaid with
// command-line definitions.
type Properties struct {
	k *koanf.Koanf
}

// LoadProperties reads COURGETTE_* and CUCUMBER_* environment variables, then applies
// definitions (key=value pairs from -D flags) on top. Definition keys may be written in
// camelCase; they are normalized to the snake_case property names.
func LoadProperties(definitions map[string]string) (*Properties, error) {
	k := koanf.New(".")

	for _, prefix := range envPrefixes {
		if err := k.Load(env.Provider(prefix, ".", envTransform), nil); err != nil {
			return nil, fmt.Errorf("failed to load %s environment properties: %w", strings.TrimSuffix(prefix, "_"), err)
		}
	}

	keys := make([]string, 0, len(definitions))
	for key := range definitions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := k.Set(NormalizePropertyKey(key), definitions[key]); err != nil {
			return nil, fmt.Errorf("setting property %s: %w", key, err)
		}
	}

	return &Properties{k: k}, nil
}

// Lookup implements PropertySource.
func (p *Properties) Lookup(key string) (string, bool) {
	if p == nil || !p.k.Exists(key) {
		return "", false
	}
	return p.k.String(key), true
}

// Keys returns every property currently defined, sorted.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := p.k.Keys()
	sort.Strings(keys)
	return keys
}

// NormalizePropertyKey converts each dotted segment of key to snake_case, so
// "cucumber.extraGlue" becomes "cucumber.extra_glue".
func NormalizePropertyKey(key string) string {
	segments := strings.Split(strings.TrimSpace(key), ".")
	for i, s := range segments {
		segments[i] = toSnakeCase(s)
	}
	return strings.Join(segments, ".")
}

// envTransform converts environment variable names to property keys
// Example: COURGETTE_RUN_LEVEL -> courgette.run_level
func envTransform(s string) string {
	return strings.Replace(strings.ToLower(s), "_", ".", 1)
}
