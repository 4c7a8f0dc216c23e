package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadOBJ reads the geometric subset of a Wavefront OBJ stream: vertices
// ("v"), polylines ("l") and faces ("f"). Faces become single-ring polygons.
// Texture and normal references in face corners are ignored, as are all
// other statements.
func ReadOBJ(r io.Reader) (Data, error) {
	var (
		d    Data
		vs   []Vec
		line int
	)
	resolve := func(ref string) (Vec, error) {
		if k := strings.IndexByte(ref, '/'); k >= 0 {
			ref = ref[:k]
		}
		i, err := strconv.Atoi(ref)
		if err != nil {
			return Vec{}, fmt.Errorf("obj: line %d: %w: %v", line, ErrSyntax, err)
		}
		if i < 0 {
			i += len(vs) + 1
		}
		if i < 1 || i > len(vs) {
			return Vec{}, fmt.Errorf("obj: line %d: %w: vertex %s out of range", line, ErrSyntax, ref)
		}
		return vs[i-1], nil
	}
	refs := func(fields []string) ([]Vec, error) {
		out := make([]Vec, 0, len(fields))
		for _, f := range fields {
			p, err := resolve(f)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if k := strings.IndexByte(text, '#'); k >= 0 {
			text = text[:k]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return Data{}, fmt.Errorf("obj: line %d: %w: vertex needs x y z", line, ErrSyntax)
			}
			p, err := parseFields(fields[1:4])
			if err != nil {
				return Data{}, fmt.Errorf("obj: line %d: %w", line, err)
			}
			vs = append(vs, p)
		case "l":
			pts, err := refs(fields[1:])
			if err != nil {
				return Data{}, err
			}
			if len(pts) >= 2 {
				d.AddLine(pts)
			}
		case "f":
			pts, err := refs(fields[1:])
			if err != nil {
				return Data{}, err
			}
			if len(pts) >= 3 {
				d.AddPolygon([][]Vec{pts})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Data{}, fmt.Errorf("obj: %w", err)
	}
	if d.Empty() {
		// A bare point cloud is still worth showing.
		for _, p := range vs {
			d.AddPoint(p)
		}
	}
	if d.Empty() {
		return Data{}, fmt.Errorf("obj: %w", ErrNoGeometry)
	}
	return d, nil
}

// LoadOBJ reads the OBJ file at path. See ReadOBJ.
func LoadOBJ(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return ReadOBJ(f)
}
