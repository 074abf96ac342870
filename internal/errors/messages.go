package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the courgette CLI.
// These templates ensure consistent, actionable error messages.

// OptionsFileNotFound creates an error for a missing options file.
func OptionsFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("options file not found: %s", path),
		"Create one with: courgette config init",
		"Or point at an existing file with --config <path>",
	)
}

// InvalidOptions creates an error for an options file that fails to load or validate.
func InvalidOptions(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid options",
		"Fix the reported field in the options file",
		"List overridable properties with: courgette config keys",
	)
}

// MalformedProperty creates an error for a property override that cannot be parsed.
func MalformedProperty(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid property override",
		"Check COURGETTE_*/CUCUMBER_* environment variables and -D flags",
		"List accepted values with: courgette config keys",
	)
}

// ReportPortalPropertiesMissing creates an error when the reportportal integration is
// enabled without its companion file.
func ReportPortalPropertiesMissing(file string, searchPaths []string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("the %s file must be on the resource paths to use the reportportal plugin", file),
		fmt.Sprintf("Searched: %s", strings.Join(searchPaths, ", ")),
		"Add the file or remove 'reportportal' from plugin",
	)
}

// ReportPortalInvalid creates an error when the companion file fails validation.
func ReportPortalInvalid(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid reportportal properties",
		"reportportal.yml must set endpoint, api_key, project and launch",
	)
}

// FeatureRequired creates an error when a command needs at least one feature.
func FeatureRequired(usage string) *CLIError {
	return NewArgumentErrorWithUsage(
		"at least one feature is required",
		usage,
		"Pass feature URIs, e.g. classpath:features/orders.feature",
	)
}
