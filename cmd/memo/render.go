package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ik5/voicememo/meter"
)

var bars = []rune("▁▂▃▄▅▆▇█")

// renderWaveform draws one bar per point. Points are clamped to [0,1].
func renderWaveform(points []float64) string {
	var sb strings.Builder
	for _, p := range points {
		p = math.Min(math.Max(p, 0), 1)
		sb.WriteRune(bars[int(math.Round(p*float64(len(bars)-1)))])
	}

	return sb.String()
}

const meterWidth = 40

// renderLevel draws the level as a filled bar with the held peak marked.
func renderLevel(r meter.Reading) string {
	cells := func(v float64) int {
		return int(math.Round(math.Min(math.Max(v, 0), 1) * meterWidth))
	}

	line := []byte(strings.Repeat("#", cells(r.Level)) + strings.Repeat(" ", meterWidth-cells(r.Level)))
	if peak := cells(r.Peak); peak > 0 {
		line[peak-1] = '|'
	}

	return "[" + string(line) + "]"
}

// renderProgress draws elapsed time out of duration for a play-head position.
func renderProgress(position, duration float64) string {
	done := int(math.Round(math.Min(math.Max(position, 0), 1) * meterWidth))

	return fmt.Sprintf("[%s%s] %5.1fs / %.1fs", strings.Repeat("=", done),
		strings.Repeat(" ", meterWidth-done), position*duration, duration)
}

func levelPrinter(w io.Writer) func(meter.Reading) {
	return func(r meter.Reading) {
		fmt.Fprintf(w, "\r%s", renderLevel(r))
	}
}

func progressPrinter(w io.Writer, duration float64) func(float64) {
	return func(pos float64) {
		fmt.Fprintf(w, "\r%s", renderProgress(pos, duration))
	}
}
