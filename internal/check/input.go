package check

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alexiusacademia/gohsjoint/internal/catalog"
	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/config"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// File is a joint definition file in user units: mm, mm², 10⁶ mm⁴, kN,
// kN·m and degrees.
type File struct {
	Joint    string      `yaml:"joint"`    // K or T
	Standard string      `yaml:"standard"` // catalog standard for designations
	Chord    MemberInput `yaml:"chord"`
	Brace    MemberInput `yaml:"brace"`
	Layout   LayoutInput `yaml:"layout"`

	Fatigue       config.FatigueConfig       `yaml:"fatigue"`
	Magnification config.MagnificationConfig `yaml:"magnification"`

	Cases []CaseInput `yaml:"cases"`
	// Combinations, when present, replace the cases as the evaluated set
	Combinations []CombinationInput `yaml:"combinations"`
}

// MemberInput describes a chord or brace either by catalog designation or
// by its dimensions
type MemberInput struct {
	Designation string  `yaml:"designation"`
	Class       string  `yaml:"class"`
	D           float64 `yaml:"d"`
	B           float64 `yaml:"b"`
	T           float64 `yaml:"t"`
	Area        float64 `yaml:"area"`
	Ix          float64 `yaml:"ix"`
	Iy          float64 `yaml:"iy"`
	Rotate      bool    `yaml:"rotate"` // RHS turned through 90 degrees
}

// LayoutInput is the truss layout around the joint
type LayoutInput struct {
	Eccentricity float64  `yaml:"eccentricity"`
	Spacing      float64  `yaml:"spacing"`
	Length       float64  `yaml:"length"`
	Divisions    int      `yaml:"divisions"`
	Angle        float64  `yaml:"angle"`
	Fixity       *float64 `yaml:"fixity"`
}

// CaseInput is one load case
type CaseInput struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description"`
	PChord      float64  `yaml:"p_chord"`
	PBrace      float64  `yaml:"p_brace"`
	MipChord    float64  `yaml:"mip_chord"`
	MopChord    float64  `yaml:"mop_chord"`
	MopBrace    float64  `yaml:"mop_brace"`
	MipBrace    float64  `yaml:"mip_brace"`
	SCFChordOP  *float64 `yaml:"scf_chord_op"`
	SCFBraceOP  *float64 `yaml:"scf_brace_op"`
}

// CombinationInput is a factored sum of cases keyed by case ID
type CombinationInput struct {
	ID          string             `yaml:"id"`
	Description string             `yaml:"description"`
	Factors     map[string]float64 `yaml:"factors"`
}

// Files expands a joint file path or a glob pattern (** included) into
// the matching regular files, sorted
func Files(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		if _, err := os.Stat(pattern); err != nil {
			return nil, fmt.Errorf("failed to read joint file: %w", err)
		}
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no joint files match pattern: %s", pattern)
	}
	sort.Strings(files)
	return files, nil
}

// LoadFile reads a joint definition file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read joint file: %w", err)
	}
	return ParseFile(bytes.NewReader(data))
}

// ParseFile decodes a joint definition, rejecting unknown keys
func ParseFile(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, cidect.NewInputError("joint file", "empty document")
		}
		return nil, fmt.Errorf("failed to parse joint file: %w", err)
	}
	return &f, nil
}

// Resolve converts the file to SI core inputs. Designations are looked up in
// cat and the file's fatigue settings are merged over base.
func (f *File) Resolve(cat *catalog.Catalog, base *config.Config) (Joint, []stress.LoadCase, stress.Options, error) {
	var j Joint
	var err error

	switch strings.ToUpper(strings.TrimSpace(f.Joint)) {
	case "K", "":
		j.Kind = joint.K
	case "T":
		j.Kind = joint.T
	default:
		return Joint{}, nil, stress.Options{}, cidect.NewInputError("joint", "unknown joint kind %q (want K or T)", f.Joint)
	}

	if j.Chord, err = f.Chord.Properties(cat, f.Standard); err != nil {
		return Joint{}, nil, stress.Options{}, fmt.Errorf("chord: %w", err)
	}
	if j.Brace, err = f.Brace.Properties(cat, f.Standard); err != nil {
		return Joint{}, nil, stress.Options{}, fmt.Errorf("brace: %w", err)
	}

	cfg := *base
	cfg.Merge(&config.Config{Fatigue: f.Fatigue, Magnification: f.Magnification})
	if err := cfg.Validate(); err != nil {
		return Joint{}, nil, stress.Options{}, cidect.NewInputError("fatigue", "%v", err)
	}
	opts, err := cfg.StressOptions()
	if err != nil {
		return Joint{}, nil, stress.Options{}, err
	}

	l := f.Layout
	j.K = joint.KLayout{
		Eccentricity: l.Eccentricity * cidect.MM,
		ChordSpacing: l.Spacing * cidect.MM,
		ChordLength:  l.Length * cidect.MM,
		Divisions:    l.Divisions,
	}
	fixity := cfg.Fixity()
	if l.Fixity != nil {
		fixity = *l.Fixity
	}
	angle := l.Angle
	if angle == 0 {
		angle = 90
	}
	j.T = joint.TLayout{
		ChordLength: l.Length * cidect.MM,
		Divisions:   l.Divisions,
		Angle:       cidect.Radians(angle),
		Fixity:      fixity,
	}

	cases := make([]stress.LoadCase, len(f.Cases))
	for i, c := range f.Cases {
		cases[i] = c.LoadCase(i, cfg.Fatigue)
	}
	if len(f.Combinations) > 0 {
		combos := make([]stress.Combination, len(f.Combinations))
		for i, c := range f.Combinations {
			id := c.ID
			if id == "" {
				id = fmt.Sprintf("C%d", i+1)
			}
			combos[i] = stress.Combination{ID: id, Description: c.Description, Factors: c.Factors}
		}
		if cases, err = stress.Combine(cases, combos); err != nil {
			return Joint{}, nil, stress.Options{}, err
		}
	}
	return j, cases, opts, nil
}

// Properties resolves the member to an SI section record
func (m MemberInput) Properties(cat *catalog.Catalog, standard string) (section.Properties, error) {
	var p section.Properties
	var err error

	switch {
	case m.D == 0 && m.Designation != "":
		if cat == nil {
			return section.Properties{}, cidect.NewInputError("designation", "no catalog loaded for %q", m.Designation)
		}
		if standard != "" {
			p, err = cat.LookupIn(standard, m.Designation)
		} else {
			p, err = cat.Lookup(m.Designation)
		}
	default:
		var class section.Class
		if class, err = section.ParseClass(m.Class); err != nil {
			return section.Properties{}, err
		}
		b := m.B
		if b == 0 {
			b = m.D
		}
		p, err = section.Generate(class, b*cidect.MM, m.D*cidect.MM, m.T*cidect.MM)
		if err != nil {
			return section.Properties{}, err
		}
		if m.Area != 0 {
			p.Area = m.Area * cidect.MM2
		}
		if m.Ix != 0 {
			p.Ix = m.Ix * cidect.MM4E6
		}
		if m.Iy != 0 {
			p.Iy = m.Iy * cidect.MM4E6
		}
		p.Designation = m.Designation
		err = p.Validate()
	}
	if err != nil {
		return section.Properties{}, err
	}

	if m.Rotate {
		if p.Class != section.RHS {
			return section.Properties{}, cidect.NewInputError("rotate", "only RHS sections can be rotated, got %s", p.Class)
		}
		p = p.Rotated()
	}
	return p, nil
}

// LoadCase converts the case to SI. Missing out-of-plane SCFs take the
// configured defaults.
func (c CaseInput) LoadCase(i int, fatigue config.FatigueConfig) stress.LoadCase {
	id := c.ID
	if id == "" {
		id = fmt.Sprint(i + 1)
	}
	f := stress.Forces{
		PChord:     c.PChord * cidect.KN,
		PBrace:     c.PBrace * cidect.KN,
		MipChord:   c.MipChord * cidect.KNM,
		MopChord:   c.MopChord * cidect.KNM,
		MopBrace:   c.MopBrace * cidect.KNM,
		MipBrace:   c.MipBrace * cidect.KNM,
		SCFChordOP: fatigue.SCFChordOP,
		SCFBraceOP: fatigue.SCFBraceOP,
	}
	if c.SCFChordOP != nil {
		f.SCFChordOP = *c.SCFChordOP
	}
	if c.SCFBraceOP != nil {
		f.SCFBraceOP = *c.SCFBraceOP
	}
	return stress.LoadCase{ID: id, Description: c.Description, Forces: f}
}
