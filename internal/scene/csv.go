package scene

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadCSV reads points from CSV with a header row. Columns are matched by
// name, case-insensitively: x, y and optionally z (default 0). If a "line"
// column is present, consecutive rows sharing its value form a polyline and
// rows with an empty value stay points.
func ReadCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Data{}, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return Data{}, fmt.Errorf("csv: %w", ErrNoGeometry)
	}
	idx := map[string]int{"x": -1, "y": -1, "z": -1, "line": -1}
	for i, h := range recs[0] {
		h = strings.ToLower(strings.TrimSpace(h))
		if j, ok := idx[h]; ok && j == -1 {
			idx[h] = i
		}
	}
	if idx["x"] == -1 || idx["y"] == -1 {
		return Data{}, errors.New("csv: x/y columns not found")
	}

	var d Data
	var cur []Vec
	curID := ""
	flush := func() {
		if len(cur) == 1 {
			d.AddPoint(cur[0])
		} else {
			d.AddLine(cur)
		}
		cur = nil
	}
	for n, row := range recs[1:] {
		field := func(name string) string {
			if i := idx[name]; i >= 0 && i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		var c [3]float64
		for k, name := range []string{"x", "y", "z"} {
			s := field(name)
			if s == "" && name == "z" {
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Data{}, fmt.Errorf("csv: row %d: %w: %v", n+2, ErrSyntax, err)
			}
			c[k] = v
		}
		p := Vec{X: c[0], Y: c[1], Z: c[2]}
		id := field("line")
		if id == "" {
			flush()
			d.AddPoint(p)
			continue
		}
		if id != curID {
			flush()
		}
		curID = id
		cur = append(cur, p)
	}
	flush()
	if d.Empty() {
		return Data{}, fmt.Errorf("csv: %w", ErrNoGeometry)
	}
	return d, nil
}

// LoadCSV reads the CSV file at path. See ReadCSV.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}
