package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProperties_Environment(t *testing.T) {
	t.Setenv("COURGETTE_THREADS", "7")
	t.Setenv("COURGETTE_RUN_LEVEL", "SCENARIO")
	t.Setenv("CUCUMBER_EXTRA_GLUE", "hooks,support")

	props, err := LoadProperties(nil)
	require.NoError(t, err)

	v, ok := props.Lookup(PropThreads)
	require.True(t, ok)
	assert.Equal(t, "7", v)

	v, ok = props.Lookup(PropRunLevel)
	require.True(t, ok)
	assert.Equal(t, "SCENARIO", v)

	v, ok = props.Lookup(PropExtraGlue)
	require.True(t, ok)
	assert.Equal(t, "hooks,support", v)

	_, ok = props.Lookup(PropReportTitle)
	assert.False(t, ok)
}

func TestLoadProperties_DefinitionsOverrideEnvironment(t *testing.T) {
	t.Setenv("COURGETTE_THREADS", "7")

	props, err := LoadProperties(map[string]string{
		"courgette.threads":  "9",
		"cucumber.extraGlue": "hooks",
	})
	require.NoError(t, err)

	v, _ := props.Lookup(PropThreads)
	assert.Equal(t, "9", v)

	v, ok := props.Lookup(PropExtraGlue)
	require.True(t, ok)
	assert.Equal(t, "hooks", v)
	assert.Contains(t, props.Keys(), PropExtraGlue)
}

func TestNormalizePropertyKey(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"courgette.threads":              "courgette.threads",
		"courgette.runLevel":             "courgette.run_level",
		"courgette.rerunFailedScenarios": "courgette.rerun_failed_scenarios",
		"cucumber.extraGlue":             "cucumber.extra_glue",
		" cucumber.tags ":                "cucumber.tags",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, NormalizePropertyKey(in))
		})
	}
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "courgette.run_level", envTransform("COURGETTE_RUN_LEVEL"))
	assert.Equal(t, "cucumber.glue", envTransform("CUCUMBER_GLUE"))
}

func TestGetPropertySchema(t *testing.T) {
	t.Parallel()

	schema, err := GetPropertySchema(PropRunLevel)
	require.NoError(t, err)
	assert.Equal(t, TypeEnum, schema.Type)
	assert.Equal(t, []string{"FEATURE", "SCENARIO"}, schema.AllowedValues)

	_, err = GetPropertySchema("courgette.nope")
	assert.ErrorIs(t, err, ErrUnknownProperty{Key: "courgette.nope"})

	assert.Len(t, SortedProperties(), len(KnownProperties))
}
