package check

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPairs(t *testing.T) {
	chords := []section.Properties{
		{Class: section.SHS, Width: 0.2},
		{Class: section.CHS, Width: 0.3},
	}
	braces := []section.Properties{
		{Class: section.SHS, Width: 0.1},
		{Class: section.RHS, Width: 0.25},
		{Class: section.CHS, Width: 0.1},
	}
	pairs := Pairs(chords, braces)
	require.Len(t, pairs, 2)
	assert.Equal(t, section.SHS, pairs[0][1].Class)
	assert.Equal(t, section.CHS, pairs[1][1].Class)
}

func TestSweep(t *testing.T) {
	cat := defaultCatalog(t)
	chords := cat.Filter("EN", section.SHS)[:8]
	braces := cat.Filter("EN", section.SHS)[:6]

	opts := SweepOptions{
		Kind:    joint.K,
		K:       joint.KLayout{ChordSpacing: 2, ChordLength: 8, Divisions: 4},
		Stress:  options(24),
		Workers: 3,
		Logger:  quietLogger(),
	}
	results, err := Sweep(context.Background(), chords, braces, serviceCase, opts)
	require.NoError(t, err)

	pairs := Pairs(chords, braces)
	require.Len(t, results, len(pairs))
	for i, r := range results {
		assert.Equal(t, pairs[i][0], r.Chord)
		assert.Equal(t, pairs[i][1], r.Brace)
		assert.True(t, (r.Report != nil) != (r.Err != nil), "pair %d", i)
	}

	// every result matches a serial evaluation
	for _, r := range results {
		want, err := Evaluate(Joint{Kind: joint.K, Chord: r.Chord, Brace: r.Brace, K: opts.K}, serviceCase, opts.Stress)
		assert.Equal(t, err, r.Err)
		assert.Equal(t, want, r.Report)
	}
}

func TestSweepRecordsPairErrors(t *testing.T) {
	chords := []section.Properties{{Class: section.SHS, Width: 0.4, Depth: 0.4, Thickness: 0.016}}
	braces := []section.Properties{{Class: section.SHS, Width: 0.2}}

	results, err := Sweep(context.Background(), chords, braces, serviceCase, SweepOptions{
		Kind:   joint.K,
		K:      joint.KLayout{ChordSpacing: 2, ChordLength: 8, Divisions: 4},
		Stress: options(24),
		Logger: quietLogger(),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.Nil(t, results[0].Report)
}

func TestSweepCancelled(t *testing.T) {
	cat := defaultCatalog(t)
	chords := cat.Filter("EN", section.CHS)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Sweep(ctx, chords, chords, serviceCase, SweepOptions{
		Kind:   joint.K,
		K:      joint.KLayout{ChordSpacing: 2, ChordLength: 8, Divisions: 4},
		Stress: options(24),
		Logger: quietLogger(),
	})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Report)
	}
}
