package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		props    MapProperties
		declared int
		want     int
		wantErr  error
	}{
		"property wins": {
			props:    MapProperties{PropThreads: "8"},
			declared: 3,
			want:     8,
		},
		"property is trimmed": {
			props:    MapProperties{PropThreads: " 8 "},
			declared: 3,
			want:     8,
		},
		"blank property falls through": {
			props:    MapProperties{PropThreads: "  "},
			declared: 3,
			want:     3,
		},
		"declared when property absent": {
			props:    MapProperties{},
			declared: 3,
			want:     3,
		},
		"fallback when declared unset": {
			props:    MapProperties{},
			declared: 0,
			want:     DefaultThreads,
		},
		"malformed property": {
			props:    MapProperties{PropThreads: "many"},
			declared: 3,
			wantErr:  ErrMalformedProperty,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tt.props, PositiveInt, PropThreads, tt.declared, DefaultThreads)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveKinds(t *testing.T) {
	t.Parallel()

	t.Run("int keeps declared zero", func(t *testing.T) {
		t.Parallel()
		got, err := Resolve(MapProperties{}, Int, PropRerunAttempts, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("bool property", func(t *testing.T) {
		t.Parallel()
		got, err := Resolve(MapProperties{PropShowTestOutput: "true"}, Bool, PropShowTestOutput, false, false)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("bool malformed", func(t *testing.T) {
		t.Parallel()
		_, err := Resolve(MapProperties{PropShowTestOutput: "yes please"}, Bool, PropShowTestOutput, false, false)
		require.ErrorIs(t, err, ErrMalformedProperty)
	})

	t.Run("enum property", func(t *testing.T) {
		t.Parallel()
		kind := Enum(RunLevelFeature, RunLevelScenario)
		got, err := Resolve(MapProperties{PropRunLevel: "SCENARIO"}, kind, PropRunLevel, RunLevelFeature, DefaultRunLevel)
		require.NoError(t, err)
		assert.Equal(t, RunLevelScenario, got)
	})

	t.Run("enum is case-sensitive", func(t *testing.T) {
		t.Parallel()
		kind := Enum(RunLevelFeature, RunLevelScenario)
		_, err := Resolve(MapProperties{PropRunLevel: "scenario"}, kind, PropRunLevel, RunLevelFeature, DefaultRunLevel)
		require.ErrorIs(t, err, ErrMalformedProperty)
		assert.Contains(t, err.Error(), "FEATURE, SCENARIO")
	})

	t.Run("enum declared empty falls back", func(t *testing.T) {
		t.Parallel()
		kind := Enum(RunLevelFeature, RunLevelScenario)
		got, err := Resolve(MapProperties{}, kind, PropRunLevel, "", DefaultRunLevel)
		require.NoError(t, err)
		assert.Equal(t, RunLevelFeature, got)
	})

	t.Run("string declared empty falls back", func(t *testing.T) {
		t.Parallel()
		got, err := Resolve(MapProperties{}, NonEmptyString, PropReportTitle, "", DefaultReportTitle)
		require.NoError(t, err)
		assert.Equal(t, DefaultReportTitle, got)
	})

	t.Run("nil property source", func(t *testing.T) {
		t.Parallel()
		got, err := Resolve(nil, NonEmptyString, PropReportTargetDir, "build", DefaultReportTargetDir)
		require.NoError(t, err)
		assert.Equal(t, "build", got)
	})
}

func TestResolveStrings(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		props    MapProperties
		declared []string
		want     []string
	}{
		"property replaces declared entirely": {
			props:    MapProperties{PropTags: "@smoke, @fast ,@api"},
			declared: []string{"@regression"},
			want:     []string{"@smoke", "@fast", "@api"},
		},
		"blank property keeps declared": {
			props:    MapProperties{PropTags: " "},
			declared: []string{"@regression"},
			want:     []string{"@regression"},
		},
		"absent property keeps declared": {
			props:    MapProperties{},
			declared: []string{"steps", "hooks"},
			want:     []string{"steps", "hooks"},
		},
		"absent property keeps empty declared": {
			props:    MapProperties{},
			declared: []string{},
			want:     []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveStrings(tt.props, PropTags, tt.declared))
		})
	}
}

func TestMalformedPropertyMessage(t *testing.T) {
	t.Parallel()

	_, err := Resolve(MapProperties{PropRerunAttempts: "2x"}, Int, PropRerunAttempts, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedProperty))
	assert.Contains(t, err.Error(), `courgette.rerun_attempts="2x"`)
}
