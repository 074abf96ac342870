package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = original })
}

func TestPrinters(t *testing.T) {
	withoutColor(t)

	tests := map[string]struct {
		print func(*bytes.Buffer)
		want  string
	}{
		"heading": {
			print: func(b *bytes.Buffer) { PrintHeading(b, "Aggregate run") },
			want:  "Aggregate run\n",
		},
		"labeled pads label": {
			print: func(b *bytes.Buffer) { PrintLabeled(b, 2, 12, "rerun file:", "/tmp/S1_rerun_1.txt") },
			want:  "  rerun file:  /tmp/S1_rerun_1.txt\n",
		},
		"success": {
			print: func(b *bytes.Buffer) { PrintSuccess(b, "Created courgette.yml") },
			want:  "✓ Created courgette.yml\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPlainStyles(t *testing.T) {
	withoutColor(t)

	assert.Equal(t, "(none)", Dim("(none)"))
	assert.Equal(t, "8", Value("8"))
}

func TestGetTerminalWidth(t *testing.T) {
	assert.Positive(t, GetTerminalWidth())
}
