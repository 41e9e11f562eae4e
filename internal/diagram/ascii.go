package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/osama-ata/structural-analysis/internal/beam"
)

// PlotField renders the deflection, bending moment and shear diagrams as
// terminal line charts, one under the other.
func PlotField(f *beam.Field) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(plotSeries(f.Deflection, "DEFLECTION (m)"))
	sb.WriteString("\n")
	sb.WriteString(plotSeries(f.Moment, "BENDING MOMENT (N·m)"))
	sb.WriteString("\n")
	sb.WriteString(plotSeries(f.Shear, "SHEAR (N)"))
	sb.WriteString("\n")

	return sb.String()
}

func plotSeries(data []float64, caption string) string {
	if flat(data) {
		// asciigraph renders a flat zero series as an empty band; a single
		// line reads better.
		return fmt.Sprintf("  %s\n  0 ┼%s (zero everywhere)\n", caption, strings.Repeat("─", 40))
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	) + "\n"
}

func flat(data []float64) bool {
	for _, v := range data {
		if v != 0 {
			return false
		}
	}
	return true
}

// DrawBeamSchematic sketches the beam with its supports and load marker.
func DrawBeamSchematic(b beam.Beam, load beam.Load) string {
	const span = 40
	var sb strings.Builder

	sb.WriteString("\n  BEAM CONFIGURATION\n")
	sb.WriteString("  ──────────────────\n\n")

	// Load marker line
	marks := []rune(strings.Repeat(" ", span+4))
	switch load.Kind {
	case beam.DistributedLoad:
		for i := 2; i < span+2; i += 2 {
			marks[i] = '↓'
		}
	case beam.PointLoad, beam.MomentLoad:
		pos := 2 + int(load.Position/b.Length*float64(span))
		if pos < 2 {
			pos = 2
		}
		if pos > span+1 {
			pos = span + 1
		}
		if load.Kind == beam.PointLoad {
			marks[pos] = '↓'
		} else {
			marks[pos] = '↻'
		}
	}
	sb.WriteString("  " + string(marks) + "\n")

	// Beam line with supports
	line := strings.Repeat("═", span)
	switch b.Support {
	case beam.SimplySupported:
		sb.WriteString("  ▲" + line + "▲\n")
	case beam.Cantilever:
		sb.WriteString("  ▌" + line + " \n")
	case beam.FixedFixed:
		sb.WriteString("  ▌" + line + "▐\n")
	}
	sb.WriteString(fmt.Sprintf("  ├%s┤\n", strings.Repeat("─", span)))
	sb.WriteString(fmt.Sprintf("   L = %.3g m\n", b.Length))

	switch load.Kind {
	case beam.PointLoad:
		sb.WriteString(fmt.Sprintf("   P = %g N at a = %.3g m\n", load.Magnitude, load.Position))
	case beam.DistributedLoad:
		sb.WriteString(fmt.Sprintf("   w = %g N/m over the full span\n", load.Magnitude))
	case beam.MomentLoad:
		sb.WriteString(fmt.Sprintf("   M = %g N·m at a = %.3g m\n", load.Magnitude, load.Position))
	}

	return sb.String()
}

// DrawSummaryBox frames a titled list of result lines. Widths are
// measured in runes so lines with units like N·m keep the border aligned.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// padRight pads s with spaces to the given rune width. Sprintf's %-*s
// pads by bytes and misaligns multi-byte runes.
func padRight(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
