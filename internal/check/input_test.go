package check

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gohsjoint/internal/catalog"
	"github.com/alexiusacademia/gohsjoint/internal/config"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kJointFile = `
joint: K
standard: EN
chord:
  designation: 400x400x16 SHS
brace:
  class: SHS
  d: 200
  t: 10
  area: 7200
layout:
  eccentricity: -150
  spacing: 2000
  length: 8000
  divisions: 4
fatigue:
  sigma_max: 80
  strategy: components
cases:
  - description: service
    p_chord: 70
    p_brace: 50
    mip_chord: 5
    mop_chord: 5
    mop_brace: 5
  - id: LC2
    p_chord: 120
    p_brace: 80
    scf_brace_op: 2.5
`

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func TestResolveKFile(t *testing.T) {
	f, err := ParseFile(strings.NewReader(kJointFile))
	require.NoError(t, err)

	j, cases, opts, err := f.Resolve(defaultCatalog(t), config.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, joint.K, j.Kind)
	assert.Equal(t, "400x400x16 SHS", j.Chord.Designation)
	assert.InDelta(t, 0.2, j.Brace.Width, 1e-12)
	assert.InDelta(t, 7200e-6, j.Brace.Area, 1e-12)
	assert.InDelta(t, -0.15, j.K.Eccentricity, 1e-12)
	assert.InDelta(t, 2.0, j.K.ChordSpacing, 1e-12)
	assert.Equal(t, 4, j.K.Divisions)

	assert.Equal(t, 80e6, opts.SigmaMax)
	assert.Equal(t, stress.Components, opts.Strategy)
	assert.Equal(t, 1.5, opts.Magnification.Chord)

	require.Len(t, cases, 2)
	assert.Equal(t, "1", cases[0].ID)
	assert.Equal(t, "service", cases[0].Description)
	assert.InDelta(t, 70e3, cases[0].Forces.PChord, 1e-9)
	assert.InDelta(t, 5e3, cases[0].Forces.MopBrace, 1e-9)
	assert.Equal(t, 2.0, cases[0].Forces.SCFChordOP)
	assert.Equal(t, "LC2", cases[1].ID)
	assert.Equal(t, 2.5, cases[1].Forces.SCFBraceOP)

	r, err := Evaluate(j, cases, opts)
	require.NoError(t, err)
	assert.Equal(t, joint.Overlap, r.Geometry.Classification)
}

func TestResolveTFile(t *testing.T) {
	src := `
joint: t
chord: {class: CHS, d: 406.4, t: 12.5}
brace: {class: CHS, d: 219.1, t: 8}
layout: {length: 6000, divisions: 3, angle: 60}
cases:
  - {p_brace: 100, mip_brace: 5}
`
	f, err := ParseFile(strings.NewReader(src))
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	fixity := 0.5
	cfg.TJoint.Fixity = &fixity

	j, cases, _, err := f.Resolve(nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, joint.T, j.Kind)
	assert.InDelta(t, math.Pi/3, j.T.Angle, 1e-12)
	assert.Equal(t, 0.5, j.T.Fixity)
	assert.InDelta(t, 5e3, cases[0].Forces.MipBrace, 1e-9)
	// the base config is left untouched
	assert.Equal(t, 24.0, cfg.Fatigue.SigmaMax)
}

func TestResolveCombinations(t *testing.T) {
	src := `
chord: {class: SHS, d: 400, t: 16}
brace: {class: SHS, d: 200, t: 10}
layout: {spacing: 2000, length: 8000, divisions: 4}
cases:
  - {id: dead, p_chord: 60, p_brace: 40}
  - {id: live, p_chord: 20, p_brace: 10, scf_chord_op: 3}
combinations:
  - factors: {dead: 1, live: 1}
  - id: ULS
    factors: {dead: 1.2, live: 1.6}
`
	f, err := ParseFile(strings.NewReader(src))
	require.NoError(t, err)

	_, cases, _, err := f.Resolve(nil, config.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "C1", cases[0].ID)
	assert.InDelta(t, 80e3, cases[0].Forces.PChord, 1e-9)
	assert.InDelta(t, 50e3, cases[0].Forces.PBrace, 1e-9)
	assert.Equal(t, 3.0, cases[0].Forces.SCFChordOP)
	assert.Equal(t, "ULS", cases[1].ID)
	assert.InDelta(t, 104e3, cases[1].Forces.PChord, 1e-9)

	f.Combinations[1].Factors["wind"] = 1
	_, _, _, err = f.Resolve(nil, config.DefaultConfig())
	assert.ErrorContains(t, err, "unknown load case")
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown kind", "joint: Y\nchord: {class: SHS, d: 400, t: 16}\nbrace: {class: SHS, d: 200, t: 10}\n", "unknown joint kind"},
		{"bad chord class", "chord: {class: HEB, d: 400, t: 16}\nbrace: {class: SHS, d: 200, t: 10}\n", "chord:"},
		{"designation without catalog", "chord: {designation: 400x400x16 SHS}\nbrace: {class: SHS, d: 200, t: 10}\n", "no catalog"},
		{"rotate SHS", "chord: {class: SHS, d: 400, t: 16}\nbrace: {class: SHS, d: 200, t: 10, rotate: true}\n", "only RHS"},
		{"bad strategy", "chord: {class: SHS, d: 400, t: 16}\nbrace: {class: SHS, d: 200, t: 10}\nfatigue: {strategy: peak}\n", "strategy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFile(strings.NewReader(tt.src))
			require.NoError(t, err)
			_, _, _, err = f.Resolve(nil, config.DefaultConfig())
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestMemberRotate(t *testing.T) {
	m := MemberInput{Class: "RHS", D: 300, B: 200, T: 10, Rotate: true}
	p, err := m.Properties(nil, "")
	require.NoError(t, err)
	assert.Equal(t, section.RHS, p.Class)
	assert.InDelta(t, 0.3, p.Width, 1e-12)
	assert.InDelta(t, 0.2, p.Depth, 1e-12)
	assert.Less(t, p.Ix, p.Iy)
}

func TestParseFileErrors(t *testing.T) {
	_, err := ParseFile(strings.NewReader(""))
	assert.ErrorContains(t, err, "empty")

	_, err = ParseFile(strings.NewReader("joint: K\nchrod: {}\n"))
	assert.ErrorContains(t, err, "failed to parse")

	path := filepath.Join(t.TempDir(), "joint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(kJointFile), 0644))
	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Cases, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "sub/b.yaml", "sub/deep/c.yaml", "notes.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(kJointFile), 0644))
	}

	files, err := Files(filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "sub", "b.yaml"),
		filepath.Join(dir, "sub", "deep", "c.yaml"),
	}, files)

	files, err = Files(filepath.Join(dir, "a.yaml"))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	_, err = Files(filepath.Join(dir, "*.json"))
	assert.ErrorContains(t, err, "no joint files")

	_, err = Files(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
