// Package config resolves the run configuration for parallel engine execution.
// Each option is resolved with priority: process property (COURGETTE_*/CUCUMBER_*
// environment variables, -D definitions) > declared value (courgette.yml or
// courgette.json) > built-in fallback. The result is built once and only read afterwards.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrOptionsNotFound is returned when the declared options file does not exist.
var ErrOptionsNotFound = errors.New("options file not found")

// RunLevel selects the unit of parallel work.
type RunLevel string

const (
	RunLevelFeature  RunLevel = "FEATURE"
	RunLevelScenario RunLevel = "SCENARIO"
)

// SnippetType selects the engine's snippet naming style.
type SnippetType string

const (
	SnippetsUnderscore SnippetType = "UNDERSCORE"
	SnippetsCamelCase  SnippetType = "CAMELCASE"
)

// CucumberOptions is the engine-native option set.
type CucumberOptions struct {
	Features      []string    `koanf:"features" yaml:"features"`
	Glue          []string    `koanf:"glue" yaml:"glue"`
	ExtraGlue     []string    `koanf:"extra_glue" yaml:"extra_glue"`
	Tags          []string    `koanf:"tags" yaml:"tags"`
	Plugin        []string    `koanf:"plugin" yaml:"plugin"`
	Name          []string    `koanf:"name" yaml:"name"`
	Snippets      SnippetType `koanf:"snippets" yaml:"snippets" validate:"omitempty,oneof=UNDERSCORE CAMELCASE"`
	DryRun        bool        `koanf:"dry_run" yaml:"dry_run"`
	Strict        bool        `koanf:"strict" yaml:"strict"`
	Monochrome    bool        `koanf:"monochrome" yaml:"monochrome"`
	ObjectFactory string      `koanf:"object_factory" yaml:"object_factory"`

	// DeclaredPlugin is Plugin as written in the options file, before any property
	// override. Only set on a resolved RunConfiguration.
	DeclaredPlugin []string `koanf:"-" yaml:"-"`
}

// DeclaredOptions is the content of the options file, layered over GetDefaults.
type DeclaredOptions struct {
	Threads              int      `koanf:"threads" validate:"min=0"`
	RunLevel             RunLevel `koanf:"run_level" validate:"omitempty,oneof=FEATURE SCENARIO"`
	RerunFailedScenarios bool     `koanf:"rerun_failed_scenarios"`
	RerunAttempts        int      `koanf:"rerun_attempts" validate:"min=0"`
	ShowTestOutput       bool     `koanf:"show_test_output"`
	ReportTitle          string   `koanf:"report_title"`
	ReportTargetDir      string   `koanf:"report_target_dir"`
	// Plugin lists integrations handled by this tool itself, e.g. "reportportal".
	Plugin          []string        `koanf:"plugin"`
	ResourcePaths   []string        `koanf:"resource_paths"`
	CucumberOptions CucumberOptions `koanf:"cucumber_options"`
}

// RunConfiguration is the resolved, read-only view shared by every worker.
type RunConfiguration struct {
	Threads              int             `yaml:"threads" validate:"min=1"`
	RunLevel             RunLevel        `yaml:"run_level" validate:"oneof=FEATURE SCENARIO"`
	RerunFailedScenarios bool            `yaml:"rerun_failed_scenarios"`
	RerunAttempts        int             `yaml:"rerun_attempts" validate:"min=0"`
	ShowTestOutput       bool            `yaml:"show_test_output"`
	ReportTitle          string          `yaml:"report_title" validate:"required"`
	ReportTargetDir      string          `yaml:"report_target_dir" validate:"required"`
	Plugin               []string        `yaml:"plugin"`
	ResourcePaths        []string        `yaml:"resource_paths"`
	CucumberOptions      CucumberOptions `yaml:"cucumber_options"`

	// Source is the options file the declared values came from.
	Source string `yaml:"-"`
}

// HasPlugin reports whether the tool-level plugin list names plugin, ignoring case.
func (c *RunConfiguration) HasPlugin(plugin string) bool {
	for _, p := range c.Plugin {
		if strings.EqualFold(p, plugin) {
			return true
		}
	}
	return false
}

// LoadOptions configures how the run configuration is loaded
type LoadOptions struct {
	// OptionsPath overrides the options file path (default: courgette.yml)
	OptionsPath string
	// Properties supplies overrides; nil means environment variables only.
	Properties PropertySource
}

// Load loads the options file at path and resolves it against environment properties.
func Load(path string) (*RunConfiguration, error) {
	return LoadWithOptions(LoadOptions{OptionsPath: path})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*RunConfiguration, error) {
	path := opts.OptionsPath
	if path == "" {
		path = DefaultOptionsPath
	}

	declared, err := LoadDeclared(path)
	if err != nil {
		return nil, err
	}

	props := opts.Properties
	if props == nil {
		p, err := LoadProperties(nil)
		if err != nil {
			return nil, err
		}
		props = p
	}

	cfg, err := Build(declared, props)
	if err != nil {
		return nil, err
	}
	cfg.Source = path
	return cfg, nil
}

// LoadDeclared reads and validates the options file. YAML is assumed unless the file
// has a .json extension.
func LoadDeclared(path string) (*DeclaredOptions, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrOptionsNotFound, path)
	}

	k := koanf.New(".")
	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("applying default %s: %w", key, err)
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load options %s: %w", path, err)
		}
	} else {
		if err := ValidateYAMLSyntax(path); err != nil {
			return nil, fmt.Errorf("validating YAML syntax: %w", err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load options %s: %w", path, err)
		}
	}

	var declared DeclaredOptions
	if err := k.Unmarshal("", &declared); err != nil {
		return nil, fmt.Errorf("failed to unmarshal options: %w", err)
	}
	if err := ValidateStruct(&declared, path); err != nil {
		return nil, fmt.Errorf("options validation failed: %w", err)
	}
	return &declared, nil
}

// Build resolves every option of declared against props and validates the result.
func Build(declared *DeclaredOptions, props PropertySource) (*RunConfiguration, error) {
	r := resolver{props: props}
	cucumber := declared.CucumberOptions

	cfg := &RunConfiguration{
		Threads:              resolveInto(&r, PositiveInt, PropThreads, declared.Threads, DefaultThreads),
		RunLevel:             resolveInto(&r, Enum(RunLevelFeature, RunLevelScenario), PropRunLevel, declared.RunLevel, DefaultRunLevel),
		RerunFailedScenarios: resolveInto(&r, Bool, PropRerunFailedScenarios, declared.RerunFailedScenarios, false),
		RerunAttempts:        resolveInto(&r, Int, PropRerunAttempts, declared.RerunAttempts, 1),
		ShowTestOutput:       resolveInto(&r, Bool, PropShowTestOutput, declared.ShowTestOutput, false),
		ReportTitle:          resolveInto(&r, NonEmptyString, PropReportTitle, declared.ReportTitle, DefaultReportTitle),
		ReportTargetDir:      resolveInto(&r, NonEmptyString, PropReportTargetDir, declared.ReportTargetDir, DefaultReportTargetDir),
		Plugin:               declared.Plugin,
		ResourcePaths:        declared.ResourcePaths,
		CucumberOptions: CucumberOptions{
			Features:      ResolveStrings(props, PropFeatures, cucumber.Features),
			Glue:          ResolveStrings(props, PropGlue, cucumber.Glue),
			ExtraGlue:     ResolveStrings(props, PropExtraGlue, cucumber.ExtraGlue),
			Tags:          ResolveStrings(props, PropTags, cucumber.Tags),
			Plugin:        ResolveStrings(props, PropPlugin, cucumber.Plugin),
			Name:          ResolveStrings(props, PropName, cucumber.Name),
			Snippets:      cucumber.Snippets,
			DryRun:        cucumber.DryRun,
			Strict:        cucumber.Strict,
			Monochrome:    cucumber.Monochrome,
			ObjectFactory: cucumber.ObjectFactory,

			DeclaredPlugin: cucumber.Plugin,
		},
	}
	if r.err != nil {
		return nil, r.err
	}
	if cfg.CucumberOptions.Snippets == "" {
		cfg.CucumberOptions.Snippets = DefaultSnippets
	}

	if err := ValidateStruct(cfg, "resolved configuration"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// resolver keeps the first resolution error so Build can resolve every field in one
// expression and fail once.
type resolver struct {
	props PropertySource
	err   error
}

func resolveInto[T any](r *resolver, kind Kind[T], key string, declared, fallback T) T {
	v, err := Resolve(r.props, kind, key, declared, fallback)
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}
