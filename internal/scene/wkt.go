package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNoGeometry  = errors.New("scene: no coordinates parsed")
	ErrUnsupported = errors.New("scene: unsupported geometry")
	ErrSyntax      = errors.New("scene: malformed geometry")
)

// ParseWKT parses a subset of WKT into Data. Supported: POINT, MULTIPOINT,
// LINESTRING, MULTILINESTRING and POLYGON, each with or without the Z
// modifier. Two-coordinate tuples get z=0.
func ParseWKT(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, fmt.Errorf("wkt: %w", ErrNoGeometry)
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return Data{}, fmt.Errorf("wkt: %w: unbalanced parentheses", ErrSyntax)
	}
	kind := strings.Fields(strings.ToUpper(s[:i]))
	if n := len(kind); n > 1 && (kind[n-1] == "Z" || kind[n-1] == "M" || kind[n-1] == "ZM") {
		kind = kind[:n-1]
	}
	body := s[i+1 : j]

	var d Data
	switch strings.Join(kind, " ") {
	case "POINT", "MULTIPOINT":
		pts, err := parseTuples(body)
		if err != nil {
			return Data{}, fmt.Errorf("wkt point: %w", err)
		}
		for _, p := range pts {
			d.AddPoint(p)
		}
	case "LINESTRING":
		ls, err := parseTuples(body)
		if err != nil {
			return Data{}, fmt.Errorf("wkt linestring: %w", err)
		}
		d.AddLine(ls)
	case "MULTILINESTRING":
		for _, part := range splitGroups(body) {
			ls, err := parseTuples(part)
			if err != nil {
				return Data{}, fmt.Errorf("wkt multilinestring: %w", err)
			}
			d.AddLine(ls)
		}
	case "POLYGON":
		var rings [][]Vec
		for _, part := range splitGroups(body) {
			r, err := parseTuples(part)
			if err != nil {
				return Data{}, fmt.Errorf("wkt polygon: %w", err)
			}
			rings = append(rings, r)
		}
		d.AddPolygon(rings)
	default:
		return Data{}, fmt.Errorf("wkt: %w: %q", ErrUnsupported, strings.Join(kind, " "))
	}
	if d.Empty() {
		return Data{}, fmt.Errorf("wkt: %w", ErrNoGeometry)
	}
	return d, nil
}

// splitGroups splits "(a), (b)" into "a" and "b".
func splitGroups(body string) []string {
	var out []string
	depth, start := 0, -1
	for i, ch := range body {
		switch ch {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				out = append(out, body[start:i])
				start = -1
			}
		}
	}
	return out
}

// parseTuples parses "x y [z], ..." tuples. MULTIPOINT's "(x y z), ..."
// form is accepted too.
func parseTuples(block string) ([]Vec, error) {
	var out []Vec
	for _, tup := range strings.Split(block, ",") {
		tup = strings.Trim(strings.TrimSpace(tup), "()")
		if tup == "" {
			continue
		}
		p, err := parseFields(strings.Fields(tup))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, ErrNoGeometry
	}
	return out, nil
}

func parseFields(parts []string) (Vec, error) {
	if len(parts) < 2 || len(parts) > 4 {
		return Vec{}, fmt.Errorf("%w: tuple %q", ErrSyntax, strings.Join(parts, " "))
	}
	var c [3]float64
	for k := 0; k < len(parts) && k < 3; k++ {
		v, err := strconv.ParseFloat(parts[k], 64)
		if err != nil {
			return Vec{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		c[k] = v
	}
	return Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}
