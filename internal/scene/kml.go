package scene

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// kmlGeometry holds the geometry elements of a Placemark or MultiGeometry.
type kmlGeometry struct {
	Points   []kmlCoords   `xml:"Point"`
	Lines    []kmlCoords   `xml:"LineString"`
	Rings    []kmlCoords   `xml:"LinearRing"`
	Polygons []kmlPolygon  `xml:"Polygon"`
	Multi    []kmlGeometry `xml:"MultiGeometry"`
}

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords   `xml:"outerBoundaryIs>LinearRing"`
	Inner []kmlCoords `xml:"innerBoundaryIs>LinearRing"`
}

// ReadKML reads the geometry of every Placemark in a KML document, at any
// depth of Document and Folder nesting. Coordinates are "lon,lat[,alt]"
// tuples; lon, lat and alt become x, y and z.
func ReadKML(r io.Reader) (Data, error) {
	var d Data
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var g kmlGeometry
		if err := dec.DecodeElement(&g, &se); err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
		if err := g.add(&d); err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
	}
	if d.Empty() {
		return Data{}, fmt.Errorf("kml: %w", ErrNoGeometry)
	}
	return d, nil
}

// LoadKML reads the KML file at path. See ReadKML.
func LoadKML(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return ReadKML(f)
}

func (g *kmlGeometry) add(d *Data) error {
	for _, c := range g.Points {
		ps, err := c.tuples()
		if err != nil {
			return err
		}
		for _, p := range ps {
			d.AddPoint(p)
		}
	}
	for _, c := range g.Lines {
		ls, err := c.tuples()
		if err != nil {
			return err
		}
		d.AddLine(ls)
	}
	for _, c := range g.Rings {
		r, err := c.tuples()
		if err != nil {
			return err
		}
		d.AddPolygon([][]Vec{r})
	}
	for _, poly := range g.Polygons {
		outer, err := poly.Outer.tuples()
		if err != nil {
			return err
		}
		rings := [][]Vec{outer}
		for _, c := range poly.Inner {
			r, err := c.tuples()
			if err != nil {
				return err
			}
			rings = append(rings, r)
		}
		d.AddPolygon(rings)
	}
	for i := range g.Multi {
		if err := g.Multi[i].add(d); err != nil {
			return err
		}
	}
	return nil
}

// tuples parses whitespace-separated "x,y[,z]" tuples.
func (c kmlCoords) tuples() ([]Vec, error) {
	fields := strings.Fields(c.Coordinates)
	out := make([]Vec, 0, len(fields))
	for _, tuple := range fields {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 || len(vals) > 3 {
			return nil, fmt.Errorf("%w: coordinate tuple %q", ErrSyntax, tuple)
		}
		var xyz [3]float64
		for k, s := range vals {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			xyz[k] = v
		}
		out = append(out, Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	return out, nil
}
