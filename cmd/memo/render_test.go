package main

import (
	"strings"
	"testing"

	"github.com/ik5/voicememo/meter"
)

func TestRenderWaveform(t *testing.T) {
	t.Parallel()

	if got := renderWaveform([]float64{0, 1, 0.5, 2, -1}); got != "▁█▅█▁" {
		t.Errorf("renderWaveform() = %q", got)
	}
	if got := renderWaveform(nil); got != "" {
		t.Errorf("renderWaveform(nil) = %q", got)
	}
}

func TestRenderLevel(t *testing.T) {
	t.Parallel()

	got := renderLevel(meter.Reading{Level: 0.25, Peak: 0.5})
	want := "[" + strings.Repeat("#", 10) + strings.Repeat(" ", 9) + "|" + strings.Repeat(" ", 20) + "]"
	if got != want {
		t.Errorf("renderLevel() = %q, want %q", got, want)
	}

	if got := renderLevel(meter.Reading{Level: 3}); got != "["+strings.Repeat("#", 40)+"]" {
		t.Errorf("over-range level = %q", got)
	}
}

func TestRenderProgress(t *testing.T) {
	t.Parallel()

	got := renderProgress(0.5, 10)
	want := "[" + strings.Repeat("=", 20) + strings.Repeat(" ", 20) + "]   5.0s / 10.0s"
	if got != want {
		t.Errorf("renderProgress() = %q, want %q", got, want)
	}
}
