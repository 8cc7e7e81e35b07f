package check

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"golang.org/x/sync/errgroup"
)

// SweepOptions configure a catalog sweep
type SweepOptions struct {
	Kind    joint.Kind
	K       joint.KLayout
	T       joint.TLayout
	Stress  stress.Options
	Workers int // 0 = runtime.NumCPU
	Logger  *slog.Logger
}

// SweepResult is the evaluation of one chord/brace pair. Err holds an
// input or formula error for this pair only.
type SweepResult struct {
	Chord  section.Properties
	Brace  section.Properties
	Report *Report
	Err    error
}

// Pairs lists the chord/brace combinations worth evaluating: braces no wider
// than the chord and of a compatible class
func Pairs(chords, braces []section.Properties) [][2]section.Properties {
	var out [][2]section.Properties
	for _, c := range chords {
		for _, b := range braces {
			if b.Width > c.Width || b.Class.Circular() != c.Class.Circular() {
				continue
			}
			out = append(out, [2]section.Properties{c, b})
		}
	}
	return out
}

// Sweep evaluates every compatible chord/brace pair concurrently. Results
// keep the order of Pairs. Cancelling ctx stops new evaluations from
// starting; pairs that never ran carry ctx.Err().
func Sweep(ctx context.Context, chords, braces []section.Properties, cases []stress.LoadCase, opts SweepOptions) ([]SweepResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pairs := Pairs(chords, braces)
	results := make([]SweepResult, len(pairs))
	logger.Info("Starting sweep", slog.Int("pairs", len(pairs)), slog.Int("workers", workers))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, p := range pairs {
		results[i] = SweepResult{Chord: p[0], Brace: p[1]}
		if ctx.Err() != nil {
			results[i].Err = ctx.Err()
			continue
		}
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			j := Joint{Kind: opts.Kind, Chord: p[0], Brace: p[1], K: opts.K, T: opts.T}
			report, err := Evaluate(j, cases, opts.Stress)
			if err != nil {
				logger.Debug("Skipped combination",
					slog.String("chord", p[0].Label()),
					slog.String("brace", p[1].Label()),
					slog.String("error", err.Error()))
			}
			results[i].Report = report
			results[i].Err = err
			return nil
		})
	}

	// per-pair errors are recorded in results, so Wait has nothing to report
	_ = g.Wait()

	passed := 0
	for _, r := range results {
		if r.Report != nil && r.Report.Pass {
			passed++
		}
	}
	logger.Info("Sweep finished", slog.Int("pairs", len(pairs)), slog.Int("passed", passed))
	return results, ctx.Err()
}
