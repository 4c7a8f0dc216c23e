package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// geoObject is any GeoJSON object. Only the members for its Type are set.
type geoObject struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometry    *geoObject      `json:"geometry"`
	Geometries  []geoObject     `json:"geometries"`
	Features    []geoObject     `json:"features"`
}

// ReadGeoJSON reads a GeoJSON geometry, Feature or FeatureCollection. The
// optional third element of a position (altitude) becomes z; two-element
// positions get z=0. Features with a null geometry are skipped.
func ReadGeoJSON(r io.Reader) (Data, error) {
	var obj geoObject
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	var d Data
	if err := obj.walk(&d); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	if d.Empty() {
		return Data{}, fmt.Errorf("geojson: %w", ErrNoGeometry)
	}
	return d, nil
}

// LoadGeoJSON reads the GeoJSON file at path. See ReadGeoJSON.
func LoadGeoJSON(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return ReadGeoJSON(f)
}

func (g *geoObject) walk(d *Data) error {
	switch g.Type {
	case "FeatureCollection":
		for i := range g.Features {
			if err := g.Features[i].walk(d); err != nil {
				return err
			}
		}
	case "Feature":
		if g.Geometry != nil {
			return g.Geometry.walk(d)
		}
	case "GeometryCollection":
		for i := range g.Geometries {
			if err := g.Geometries[i].walk(d); err != nil {
				return err
			}
		}
	case "Point":
		c, err := coordinates[[]float64](g)
		if err != nil {
			return err
		}
		p, err := position(c)
		if err != nil {
			return err
		}
		d.AddPoint(p)
	case "MultiPoint":
		c, err := coordinates[[][]float64](g)
		if err != nil {
			return err
		}
		ps, err := positions(c)
		if err != nil {
			return err
		}
		for _, p := range ps {
			d.AddPoint(p)
		}
	case "LineString":
		c, err := coordinates[[][]float64](g)
		if err != nil {
			return err
		}
		ls, err := positions(c)
		if err != nil {
			return err
		}
		d.AddLine(ls)
	case "MultiLineString":
		c, err := coordinates[[][][]float64](g)
		if err != nil {
			return err
		}
		for _, part := range c {
			ls, err := positions(part)
			if err != nil {
				return err
			}
			d.AddLine(ls)
		}
	case "Polygon":
		c, err := coordinates[[][][]float64](g)
		if err != nil {
			return err
		}
		rings, err := polygon(c)
		if err != nil {
			return err
		}
		d.AddPolygon(rings)
	case "MultiPolygon":
		c, err := coordinates[[][][][]float64](g)
		if err != nil {
			return err
		}
		for _, poly := range c {
			rings, err := polygon(poly)
			if err != nil {
				return err
			}
			d.AddPolygon(rings)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupported, g.Type)
	}
	return nil
}

func coordinates[C any](g *geoObject) (C, error) {
	var c C
	if err := json.Unmarshal(g.Coordinates, &c); err != nil {
		return c, fmt.Errorf("%w: %s coordinates: %v", ErrSyntax, g.Type, err)
	}
	return c, nil
}

func position(c []float64) (Vec, error) {
	if len(c) < 2 {
		return Vec{}, fmt.Errorf("%w: position %v has fewer than 2 numbers", ErrSyntax, c)
	}
	p := Vec{X: c[0], Y: c[1]}
	if len(c) > 2 {
		p.Z = c[2]
	}
	return p, nil
}

func positions(cs [][]float64) ([]Vec, error) {
	out := make([]Vec, 0, len(cs))
	for _, c := range cs {
		p, err := position(c)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func polygon(cs [][][]float64) ([][]Vec, error) {
	rings := make([][]Vec, 0, len(cs))
	for _, c := range cs {
		r, err := positions(c)
		if err != nil {
			return nil, err
		}
		rings = append(rings, r)
	}
	return rings, nil
}
