package cli

import (
	"encoding/json"
	"testing"

	clierrors "github.com/ariel-frischer/courgette/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCommand_JSON(t *testing.T) {
	t.Parallel()

	uris := []string{
		"classpath:features/orders.feature",
		"classpath:features/payments.feature",
		"features/search.feature",
	}
	path := writeOptionsFile(t, suiteOptions)
	args := append([]string{"--config", path, "plan", "--json"}, uris...)

	stdout, _, err := executeCommand(t, args...)
	require.NoError(t, err)

	var views []workerView
	require.NoError(t, json.Unmarshal([]byte(stdout), &views))
	require.Len(t, views, len(uris))

	rerunFiles := make(map[string]bool)
	for i, view := range views {
		assert.Equal(t, "worker", view.Mode)
		assert.Equal(t, uris[i], view.Feature)
		rerunFiles[view.RerunFile] = true
	}
	assert.Len(t, rerunFiles, len(uris), "every worker gets its own rerun file")
}

func TestPlanCommand_SameFeatureTwice(t *testing.T) {
	t.Parallel()

	path := writeOptionsFile(t, suiteOptions)
	stdout, _, err := executeCommand(t, "--config", path, "plan", "--json", "a.feature", "a.feature")
	require.NoError(t, err)

	var views []workerView
	require.NoError(t, json.Unmarshal([]byte(stdout), &views))
	require.Len(t, views, 2)

	assert.NotEqual(t, views[0].RerunFile, views[1].RerunFile)
	for _, f := range views[0].ReportFiles {
		if f == "build/courgette-report/data/report.json" {
			continue
		}
		assert.NotContains(t, views[1].ReportFiles, f)
	}
}

func TestPlanCommand_Text(t *testing.T) {
	t.Parallel()

	path := writeOptionsFile(t, suiteOptions)
	stdout, _, err := executeCommand(t, "--config", path, "plan", "--parallel", "1", "a.feature", "b.feature")
	require.NoError(t, err)

	assert.Contains(t, stdout, "2 worker(s)")
	assert.Contains(t, stdout, "Feature: a.feature")
	assert.Contains(t, stdout, "Feature: b.feature")
}

func TestPlanCommand_Errors(t *testing.T) {
	t.Parallel()

	path := writeOptionsFile(t, suiteOptions)

	tests := map[string]struct {
		args     []string
		category clierrors.ErrorCategory
		contains string
	}{
		"no features": {
			args:     []string{"--config", path, "plan"},
			category: clierrors.Argument,
			contains: "at least one feature is required",
		},
		"negative parallelism": {
			args:     []string{"--config", path, "plan", "--parallel", "-1", "a.feature"},
			category: clierrors.Argument,
			contains: "--parallel",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)

			cliErr := clierrors.AsCLIError(err)
			require.NotNil(t, cliErr)
			assert.Equal(t, tt.category, cliErr.Category)
			assert.Contains(t, cliErr.Error(), tt.contains)
		})
	}
}
