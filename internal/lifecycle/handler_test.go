package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	name     string
	err      error
	duration time.Duration
	calls    int
}

func (h *recordingHandler) OnCommandComplete(name string, err error, duration time.Duration) {
	h.name = name
	h.err = err
	h.duration = duration
	h.calls++
}

func TestRun(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := map[string]struct {
		fnErr error
	}{
		"success": {fnErr: nil},
		"failure": {fnErr: boom},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := &recordingHandler{}
			err := Run(h, "plan", func() error {
				time.Sleep(time.Millisecond)
				return tt.fnErr
			})

			assert.Equal(t, tt.fnErr, err)
			require.Equal(t, 1, h.calls)
			assert.Equal(t, "plan", h.name)
			assert.Equal(t, tt.fnErr, h.err)
			assert.GreaterOrEqual(t, h.duration, time.Millisecond)
		})
	}
}

func TestRun_NilHandler(t *testing.T) {
	t.Parallel()

	called := false
	err := Run(nil, "options", func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
