package config

// Fallback values used when neither a property nor the options file supplies one.
const (
	DefaultThreads         = 5
	DefaultReportTitle     = "Courgette-JVM Report"
	DefaultReportTargetDir = "target"
	DefaultRunLevel        = RunLevelFeature
	DefaultSnippets        = SnippetsUnderscore
)

// NoObjectFactory is the declared object factory meaning "let the engine pick its own".
const NoObjectFactory = "courgette.NoObjectFactory"

// GetDefaultConfigTemplate returns a fully commented options file template
func GetDefaultConfigTemplate() string {
	return `# Courgette options
# Every courgette.* and cucumber.* value below can be overridden with an environment
# variable (COURGETTE_THREADS=8) or a -D flag (-D courgette.threads=8).

threads: 5                            # Concurrent workers
run_level: FEATURE                    # FEATURE | SCENARIO
rerun_failed_scenarios: false         # Rerun failed scenarios after the first pass
rerun_attempts: 1                     # Attempts per failed scenario
show_test_output: false               # Forward worker output to the console
report_title: ""                      # Empty = "Courgette-JVM Report"
report_target_dir: ""                 # Empty = "target"
plugin: []                            # Integrations, e.g. [reportportal]
resource_paths: ["."]                 # Where companion files (reportportal.yml) are looked up

cucumber_options:
  features: []                        # Feature paths for the whole suite
  glue: []
  extra_glue: []
  tags: []
  plugin: []                          # kind:destination, e.g. html:target/report
  name: []
  snippets: UNDERSCORE                # UNDERSCORE | CAMELCASE
  dry_run: false
  strict: false
  monochrome: false
  object_factory: ""                  # Empty = engine default
`
}

// GetDefaults returns the declared values assumed for keys the options file omits.
// Report title and target dir are left empty so the resolver falls back to the
// constants above.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"threads":                DefaultThreads,
		"run_level":              string(DefaultRunLevel),
		"rerun_failed_scenarios": false,
		"rerun_attempts":         1,
		"show_test_output":       false,
		"report_title":           "",
		"report_target_dir":      "",
		"plugin":                 []string{},
		"resource_paths":         []string{"."},
		"cucumber_options": map[string]interface{}{
			"features":       []string{},
			"glue":           []string{},
			"extra_glue":     []string{},
			"tags":           []string{},
			"plugin":         []string{},
			"name":           []string{},
			"snippets":       string(DefaultSnippets),
			"dry_run":        false,
			"strict":         false,
			"monochrome":     false,
			"object_factory": NoObjectFactory,
		},
	}
}
