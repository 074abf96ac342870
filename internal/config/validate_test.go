package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"threads":              "threads",
		"runLevel":             "run_level",
		"RerunFailedScenarios": "rerun_failed_scenarios",
		"APIKey":               "api_key",
		"dryRun2x":             "dry_run2x",
		"objectFactoryURL":     "object_factory_url",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, toSnakeCase(in))
		})
	}
}

func TestValidateStruct_ReportsEveryField(t *testing.T) {
	t.Parallel()

	declared := DeclaredOptions{
		Threads:  -1,
		RunLevel: "STEP",
		CucumberOptions: CucumberOptions{
			Snippets: "KEBAB",
		},
	}

	err := ValidateStruct(&declared, "courgette.yml")
	require.Error(t, err)

	var fields []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var vErr *ValidationError
		require.True(t, errors.As(e, &vErr))
		fields = append(fields, vErr.Field)
	}
	assert.ElementsMatch(t, []string{"threads", "run_level", "cucumber_options.snippets"}, fields)
	assert.Contains(t, err.Error(), "courgette.yml: field 'cucumber_options.snippets': must be one of: UNDERSCORE, CAMELCASE")
}

func TestValidateYAMLSyntax(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := map[string]struct {
		path    string
		wantErr bool
	}{
		"valid":   {path: write("valid.yml", "threads: 3\n")},
		"empty":   {path: write("empty.yml", "  \n")},
		"missing": {path: filepath.Join(dir, "missing.yml")},
		"unclosed flow sequence": {
			path:    write("broken.yml", "threads: 3\nplugin: [html\n"),
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := ValidateYAMLSyntax(tt.path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.path, vErr.FilePath)
			assert.Positive(t, vErr.Line)
		})
	}
}
