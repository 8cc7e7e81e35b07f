// Package catalog provides hollow section lookup from the built-in size
// tables or a user spreadsheet.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/xuri/excelize/v2"
)

//go:embed data/sections.csv
var builtin []byte

// Entry is one catalog section
type Entry struct {
	Standard   string
	Properties section.Properties
}

// Catalog is an ordered, read-only collection of sections
type Catalog struct {
	entries []Entry
	index   map[string]int // standard|designation
	byName  map[string]int // designation, first standard wins
}

// Default returns the built-in EN 10219 and AS/NZS 1163 sizes
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(builtin))
}

// Load reads a catalog from a .csv or .xlsx file
func Load(path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		defer f.Close()
		return ParseWorkbook(f)
	case ".csv":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		return Parse(bytes.NewReader(data))
	}
	return nil, cidect.NewInputError("catalog", "unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
}

// Parse reads a CSV catalog. The header names the columns, see fromRows.
func Parse(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return fromRows(rows)
}

// ParseWorkbook reads the first sheet of a workbook
func ParseWorkbook(f *excelize.File) (*Catalog, error) {
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return fromRows(rows)
}

// column names, case-insensitive. Dimensions are mm, area mm², I in 10⁶ mm⁴.
// area/ix/iy are optional and override the generated values when present.
var required = []string{"designation", "class", "d", "t"}

func fromRows(rows [][]string) (*Catalog, error) {
	if len(rows) < 2 {
		return nil, cidect.NewInputError("catalog", "no sections found")
	}
	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, cidect.NewInputError("catalog", "missing column %q", name)
		}
	}

	c := &Catalog{index: map[string]int{}, byName: map[string]int{}}
	for n, row := range rows[1:] {
		if blank(row) {
			continue
		}
		e, err := parseRow(row, col)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", n+2, err)
		}
		name := normalize(e.Properties.Designation)
		key := normalize(e.Standard) + "|" + name
		if _, dup := c.index[key]; dup {
			return nil, cidect.NewInputError("catalog", "row %d: duplicate designation %q", n+2, e.Properties.Designation)
		}
		c.index[key] = len(c.entries)
		if _, seen := c.byName[name]; !seen {
			c.byName[name] = len(c.entries)
		}
		c.entries = append(c.entries, e)
	}
	return c, nil
}

func parseRow(row []string, col map[string]int) (Entry, error) {
	get := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(name string) (float64, error) {
		v, err := strconv.ParseFloat(get(name), 64)
		if err != nil {
			return 0, cidect.NewInputError(name, "not a number: %q", get(name))
		}
		return v, nil
	}

	class, err := section.ParseClass(get("class"))
	if err != nil {
		return Entry{}, err
	}
	d, err := num("d")
	if err != nil {
		return Entry{}, err
	}
	t, err := num("t")
	if err != nil {
		return Entry{}, err
	}
	b := d
	if get("b") != "" {
		if b, err = num("b"); err != nil {
			return Entry{}, err
		}
	}

	p, err := section.Generate(class, b/1000, d/1000, t/1000)
	if err != nil {
		return Entry{}, err
	}
	for _, o := range []struct {
		name  string
		scale float64
		dst   *float64
	}{
		{"area", 1e-6, &p.Area},
		{"ix", 1e-6, &p.Ix},
		{"iy", 1e-6, &p.Iy},
	} {
		if get(o.name) == "" {
			continue
		}
		v, err := num(o.name)
		if err != nil {
			return Entry{}, err
		}
		*o.dst = v * o.scale
	}
	if err := p.Validate(); err != nil {
		return Entry{}, err
	}

	p.Designation = get("designation")
	if p.Designation == "" {
		p.Designation = p.Label()
	}
	return Entry{Standard: strings.ToUpper(get("standard")), Properties: p}, nil
}

// Len returns the number of sections
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the sections in file order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds a section by designation, ignoring case and spaces. When
// several standards list the same designation the first one in the file wins.
func (c *Catalog) Lookup(designation string) (section.Properties, error) {
	i, ok := c.byName[normalize(designation)]
	if !ok {
		return section.Properties{}, cidect.NewInputError("designation", "section %q not in catalog", designation)
	}
	return c.entries[i].Properties, nil
}

// LookupIn finds a section by designation within one standard
func (c *Catalog) LookupIn(standard, designation string) (section.Properties, error) {
	i, ok := c.index[normalize(standard)+"|"+normalize(designation)]
	if !ok {
		return section.Properties{}, cidect.NewInputError("designation", "section %q not in %s catalog", designation, standard)
	}
	return c.entries[i].Properties, nil
}

// Filter returns the sections of the given classes and standard, sorted by
// depth then thickness. An empty standard matches all.
func (c *Catalog) Filter(standard string, classes ...section.Class) []section.Properties {
	var out []section.Properties
	for _, e := range c.entries {
		if standard != "" && !strings.EqualFold(e.Standard, standard) {
			continue
		}
		if len(classes) > 0 && !slices.Contains(classes, e.Properties.Class) {
			continue
		}
		out = append(out, e.Properties)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return out[i].Depth < out[j].Depth
		}
		if out[i].Width != out[j].Width {
			return out[i].Width < out[j].Width
		}
		return out[i].Thickness < out[j].Thickness
	})
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
