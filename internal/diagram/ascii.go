package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gohsjoint/internal/check"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"github.com/guptarohit/asciigraph"
)

// DrawJointSketch creates an ASCII elevation of the joint with the key
// geometry annotated
func DrawJointSketch(g *joint.Geometry) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s-JOINT ELEVATION\n", g.Kind))
	sb.WriteString("  ─────────────────\n\n")

	if g.Kind == joint.T {
		sb.WriteString("                 │     │\n")
		sb.WriteString(fmt.Sprintf("                 │     │   brace %s\n", g.Brace.Label()))
		sb.WriteString(fmt.Sprintf("                 │     │   θ = %.1f°\n", g.ThetaDegrees()))
		sb.WriteString("  ═══════════════╧═════╧═══════════════\n")
		sb.WriteString(fmt.Sprintf("  chord %s, α = %.2f, C = %.2f\n", g.Chord.Label(), g.Alpha, g.Fixity))
		return sb.String()
	}

	sb.WriteString("          ╲       ╱\n")
	sb.WriteString(fmt.Sprintf("           ╲     ╱     brace %s\n", g.Brace.Label()))
	sb.WriteString(fmt.Sprintf("            ╲   ╱      θ = %.1f°\n", g.ThetaDegrees()))
	if g.Classification == joint.Gap {
		sb.WriteString(fmt.Sprintf("  ══════════╧═══╧══════════   g' = %.2f (%.1f mm)\n", g.GPrime, g.GPrime*g.Chord.Thickness*1000))
	} else {
		sb.WriteString(fmt.Sprintf("  ════════════╳════════════   Ov = %.1f%%\n", g.Ov*100))
	}
	sb.WriteString(fmt.Sprintf("  chord %s, e = %.0f mm\n", g.Chord.Label(), g.Eccentricity*1000))
	return sb.String()
}

// DrawLimitBars shows each dimensionless parameter against its allowable range
func DrawLimitBars(g *joint.Geometry, res joint.LimitsResult) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  DIMENSIONAL PARAMETERS\n")
	sb.WriteString("  ──────────────────────\n\n")

	width := 30
	rows := []struct {
		name  string
		value float64
		min   float64
		max   float64
	}{
		{"β", g.Beta, res.Limits.Beta.Min, res.Limits.Beta.Max},
		{"2γ", g.TwoGamma, res.Limits.TwoGamma.Min, res.Limits.TwoGamma.Max},
		{"τ", g.Tau, res.Limits.Tau.Min, res.Limits.Tau.Max},
	}
	if res.Limits.Alpha != nil {
		rows = append(rows, struct {
			name  string
			value float64
			min   float64
			max   float64
		}{"α", g.Alpha, res.Limits.Alpha.Min, res.Limits.Alpha.Max})
	}

	for _, r := range rows {
		bar := []rune(strings.Repeat("─", width))
		pos := int(math.Round((r.value - r.min) / (r.max - r.min) * float64(width-1)))
		status := "OK"
		switch {
		case pos < 0:
			status = "LOW"
		case pos >= width:
			status = "HIGH"
		default:
			bar[pos] = '●'
		}
		sb.WriteString(fmt.Sprintf("  %s %7.3f  %6.2f ├%s┤ %-6.2f %s\n", pad(r.name, 3), r.value, r.min, string(bar), r.max, status))
	}
	sb.WriteString("\n  " + res.Message() + "\n")
	return sb.String()
}

// DrawStressBars draws each stress component as a bar scaled to σ_max
func DrawStressBars(res stress.Result) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  HOT-SPOT STRESSES (%s)\n", res.Strategy))
	sb.WriteString("  ─────────────────────────────\n\n")

	width := 40
	peak := math.Max(res.SigmaMax, math.Max(res.Chord, res.Brace))
	scale := float64(width) / peak

	bar := func(name, glyph string, v float64) string {
		n := min(int(math.Abs(v)*scale), width)
		return fmt.Sprintf("  %s │%s %8.2f MPa\n", pad(name, 28), pad(strings.Repeat(glyph, n), width), v/1e6)
	}
	for _, c := range res.Components {
		sb.WriteString(bar(c.Name, "█", c.Value))
	}

	limit := int(res.SigmaMax * scale)
	sb.WriteString(fmt.Sprintf("\n  %s │%s┤ %8.2f MPa\n", pad("σ_max", 28), strings.Repeat("─", max(limit-1, 0)), res.SigmaMax/1e6))
	sb.WriteString(bar("σ_chord", "▓", res.Chord))
	sb.WriteString(bar("σ_brace", "▓", res.Brace))
	return sb.String()
}

// DrawSweepChart plots the governing chord and brace stresses of every
// evaluated pair, in sweep order, against σ_max
func DrawSweepChart(results []check.SweepResult, sigmaMax float64) string {
	var chord, brace, limit []float64
	for _, r := range results {
		if r.Report == nil {
			continue
		}
		gc := r.Report.GoverningCase()
		if gc == nil {
			continue
		}
		chord = append(chord, gc.Result.Chord/1e6)
		brace = append(brace, gc.Result.Brace/1e6)
		limit = append(limit, sigmaMax/1e6)
	}
	if len(chord) == 0 {
		return "\n  No pair passed the geometry and limits gates.\n"
	}

	return "\n" + asciigraph.PlotMany([][]float64{chord, brace, limit},
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Red),
		asciigraph.Caption("σ_chord (blue), σ_brace (green), σ_max (red) in MPa per pair"),
	) + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes and breaks on β, γ, τ
func pad(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
