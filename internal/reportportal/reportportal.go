// Package reportportal validates the optional ReportPortal result-service integration
// and computes where its JUnit input must be written.
//
// The integration is enabled by listing "reportportal" among the tool-level plugins.
// Its companion file, reportportal.yml, must then be present on the resource search
// path and name the service endpoint, API key, project and launch.
package reportportal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ariel-frischer/courgette/internal/config"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// PluginName enables the integration when listed in the tool-level plugins.
	PluginName = "reportportal"
	// PropertiesFile is the companion file looked up on the resource paths.
	PropertiesFile = "reportportal.yml"
)

// ErrPropertiesNotFound is returned when the integration is enabled but the companion
// file is not on the resource paths.
var ErrPropertiesNotFound = errors.New(PropertiesFile + " not found on resource paths")

// Properties is the content of the companion file.
type Properties struct {
	Endpoint string `koanf:"endpoint" validate:"required,url"`
	APIKey   string `koanf:"api_key" validate:"required"`
	Project  string `koanf:"project" validate:"required"`
	Launch   string `koanf:"launch" validate:"required"`
	// Path is the file the properties were read from.
	Path string `koanf:"-"`
}

// Load reads and validates the companion file found under searchPaths.
func Load(searchPaths []string) (*Properties, error) {
	p := config.FindResource(searchPaths, PropertiesFile)
	if p == "" {
		return nil, ErrPropertiesNotFound
	}

	if err := config.ValidateYAMLSyntax(p); err != nil {
		return nil, fmt.Errorf("validating YAML syntax: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(p), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", p, err)
	}

	var props Properties
	if err := k.Unmarshal("", &props); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", p, err)
	}
	if err := config.ValidateStruct(&props, p); err != nil {
		return nil, err
	}
	props.Path = p
	return &props, nil
}

// Handle is a construct-once cell for the integration state of one run. The first
// call to Properties loads and validates the companion file; every later call, from
// any goroutine, observes the same outcome.
type Handle struct {
	enabled bool
	load    func() (*Properties, error)
}

// NewHandle creates the handle for cfg. Nothing is read until first use.
func NewHandle(cfg *config.RunConfiguration) *Handle {
	return newHandle(cfg.HasPlugin(PluginName), func() (*Properties, error) {
		return Load(cfg.ResourcePaths)
	})
}

func newHandle(enabled bool, load func() (*Properties, error)) *Handle {
	return &Handle{enabled: enabled, load: sync.OnceValues(load)}
}

// Enabled reports whether the integration was requested.
func (h *Handle) Enabled() bool {
	return h != nil && h.enabled
}

// Validate loads the companion file when the integration is enabled. It is a no-op
// otherwise.
func (h *Handle) Validate() error {
	if !h.Enabled() {
		return nil
	}
	_, err := h.load()
	return err
}

// Properties returns the validated companion file content.
func (h *Handle) Properties() (*Properties, error) {
	if !h.Enabled() {
		return nil, errors.New("reportportal integration is not enabled")
	}
	return h.load()
}

// XMLPath returns the JUnit file the service reads, inside dataDir.
func (h *Handle) XMLPath(dataDir string) (string, error) {
	props, err := h.Properties()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s.xml", dataDir, props.Launch), nil
}
