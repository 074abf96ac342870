package runopts

import (
	"fmt"
	"slices"

	"github.com/ariel-frischer/courgette/internal/config"
	"github.com/ariel-frischer/courgette/internal/selection"
)

// ResultService is the optional result-service integration.
type ResultService interface {
	Enabled() bool
	XMLPath(dataDir string) (string, error)
}

// WorkerOptionSet is the engine option vector of one worker invocation, with the rerun
// file and report files it will produce.
type WorkerOptionSet struct {
	cfg          *config.RunConfiguration
	feature      selection.Feature
	identity     Identity
	resourcePath string
	optionMap    OptionMap
	rerunFile    string
	reportFiles  []string
}

// Option configures a WorkerOptionSet under construction.
type Option func(*builder)

type builder struct {
	instanceID    uint32
	resultService ResultService
}

// WithInstanceID fixes the per-instance disambiguator instead of drawing a random one.
func WithInstanceID(id uint32) Option {
	return func(b *builder) {
		b.instanceID = id
	}
}

// WithResultService enables the result-service JUnit spec when rs is enabled.
func WithResultService(rs ResultService) Option {
	return func(b *builder) {
		b.resultService = rs
	}
}

// NewWorker builds the option set for a single feature.
func NewWorker(cfg *config.RunConfiguration, session Session, feature selection.Feature, opts ...Option) (*WorkerOptionSet, error) {
	if feature == nil {
		return nil, fmt.Errorf("worker option set needs a feature")
	}
	return build(cfg, session, feature, opts)
}

// NewAggregate builds the option set for the whole suite in one engine run.
func NewAggregate(cfg *config.RunConfiguration, session Session, opts ...Option) (*WorkerOptionSet, error) {
	return build(cfg, session, nil, opts)
}

func build(cfg *config.RunConfiguration, session Session, feature selection.Feature, opts []Option) (*WorkerOptionSet, error) {
	b := builder{instanceID: newInstanceID()}
	for _, opt := range opts {
		opt(&b)
	}

	ws := &WorkerOptionSet{cfg: cfg, feature: feature}

	targets := PluginTargets{
		WorkerMode:         feature != nil,
		ReportJSON:         ReportJSON(cfg.ReportTargetDir),
		InheritedRerunFile: InheritedRerunFile(cfg.CucumberOptions.DeclaredPlugin),
		AggregateRerunFile: AggregateRerunFile(cfg.ReportTargetDir),
	}

	features := cfg.CucumberOptions.Features
	if feature != nil {
		ws.identity = Identity{
			SessionID:          session.ID,
			FeatureFingerprint: Fingerprint(feature),
			InstanceID:         b.instanceID,
		}
		ws.resourcePath = ResourcePath(feature.URI())
		targets.ReportStem = ws.identity.ReportStem(session.TempDir)
		targets.WorkerRerunFile = ws.identity.RerunFile(session.TempDir)
		features = []string{ws.resourcePath}
	}

	if b.resultService != nil && b.resultService.Enabled() {
		xml, err := b.resultService.XMLPath(ReportDataDir(cfg.ReportTargetDir))
		if err != nil {
			return nil, fmt.Errorf("resolving result-service report path: %w", err)
		}
		targets.ResultServiceXML = xml
	}

	rewrite := RewritePlugins(cfg.CucumberOptions.Plugin, targets)
	ws.rerunFile = rewrite.RerunFile
	ws.reportFiles = rewrite.ReportFiles
	ws.optionMap = buildOptionMap(cfg.CucumberOptions, rewrite.Specs, features)
	return ws, nil
}

// Tokens is the ordered vector fed to the engine's option parser.
func (ws *WorkerOptionSet) Tokens() []string {
	return ws.optionMap.Tokens()
}

// OptionMap is the named option set before flattening.
func (ws *WorkerOptionSet) OptionMap() OptionMap {
	return ws.optionMap
}

// RerunFilePath is where the engine writes failed scenarios for this invocation.
func (ws *WorkerOptionSet) RerunFilePath() string {
	return ws.rerunFile
}

// CucumberRerunFile returns the rerun destination declared in the options file, or
// RerunFilePath when none is declared.
func (ws *WorkerOptionSet) CucumberRerunFile() string {
	if inherited := InheritedRerunFile(ws.cfg.CucumberOptions.DeclaredPlugin); inherited != "" {
		return inherited
	}
	return ws.rerunFile
}

// ReportFilePaths are the destinations of every html, json and junit plugin.
func (ws *WorkerOptionSet) ReportFilePaths() []string {
	return slices.Clone(ws.reportFiles)
}

// WorkerMode reports whether the set was built for a single feature.
func (ws *WorkerOptionSet) WorkerMode() bool {
	return ws.feature != nil
}

// Feature returns the feature of a worker-mode set, nil otherwise.
func (ws *WorkerOptionSet) Feature() selection.Feature {
	return ws.feature
}

// Identity returns the worker identity; the zero value in aggregate mode.
func (ws *WorkerOptionSet) Identity() Identity {
	return ws.identity
}

// ResourcePath is the feature argument of a worker-mode set.
func (ws *WorkerOptionSet) ResourcePath() string {
	return ws.resourcePath
}

// ReportDataDir is the aggregated report data directory of the run.
func (ws *WorkerOptionSet) ReportDataDir() string {
	return ReportDataDir(ws.cfg.ReportTargetDir)
}

// ReportJSON is the aggregation JSON report of the run.
func (ws *WorkerOptionSet) ReportJSON() string {
	return ReportJSON(ws.cfg.ReportTargetDir)
}
