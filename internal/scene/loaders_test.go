package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// dataOpts compares Data by its exported geometry.
var dataOpts = cmp.Options{cmpopts.IgnoreUnexported(Data{}), cmpopts.EquateEmpty()}

func v(x, y, z float64) Vec { return Vec{X: x, Y: y, Z: z} }

func TestParseWKT(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Data
	}{
		{
			"point z",
			"POINT Z (1 2 3)",
			Data{Points: []Vec{v(1, 2, 3)}},
		},
		{
			"point 2d",
			"point(1 2)",
			Data{Points: []Vec{v(1, 2, 0)}},
		},
		{
			"multipoint nested",
			"MULTIPOINT Z ((1 2 3), (4 5 6))",
			Data{Points: []Vec{v(1, 2, 3), v(4, 5, 6)}},
		},
		{
			"multipoint flat",
			"MULTIPOINT (1 2, 4 5)",
			Data{Points: []Vec{v(1, 2, 0), v(4, 5, 0)}},
		},
		{
			"linestring",
			"LINESTRING Z (0 0 0, 1 1 1, 2 0 -1)",
			Data{Lines: [][]Vec{{v(0, 0, 0), v(1, 1, 1), v(2, 0, -1)}}},
		},
		{
			"multilinestring",
			"MULTILINESTRING Z ((0 0 0, 1 0 0), (0 1 0, 0 1 1))",
			Data{Lines: [][]Vec{{v(0, 0, 0), v(1, 0, 0)}, {v(0, 1, 0), v(0, 1, 1)}}},
		},
		{
			"polygon with hole",
			"POLYGON Z ((0 0 0, 4 0 0, 4 4 0, 0 0 0), (1 1 0, 2 1 0, 2 2 0, 1 1 0))",
			Data{Polygons: [][][]Vec{{
				{v(0, 0, 0), v(4, 0, 0), v(4, 4, 0), v(0, 0, 0)},
				{v(1, 1, 0), v(2, 1, 0), v(2, 2, 0), v(1, 1, 0)},
			}}},
		},
		{
			"zm drops m",
			"POINT ZM (1 2 3 4)",
			Data{Points: []Vec{v(1, 2, 3)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWKT(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got, dataOpts, cmpopts.IgnoreFields(Data{}, "Box"))
		})
	}
}

func TestParseWKTErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrNoGeometry},
		{"   ", ErrNoGeometry},
		{"POINT Z 1 2 3", ErrSyntax},
		{"POINT (1)", ErrSyntax},
		{"POINT (1 a 3)", ErrSyntax},
		{"LINESTRING ()", ErrNoGeometry},
		{"POLYGON (1 2 3)", ErrNoGeometry},
		{"GEOMETRYCOLLECTION (POINT (1 2))", ErrUnsupported},
	}
	for _, tt := range tests {
		if _, err := ParseWKT(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("%q: got error %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestDataBox(t *testing.T) {
	d, err := ParseWKT("LINESTRING Z (1 -2 3, -4 5 0, 2 2 9)")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Box{Min: v(-4, -2, 0), Max: v(2, 5, 9)}, d.Box)
	diff(t, v(-1, 1.5, 4.5), d.Box.Center())
	if d.Vertices() != 3 {
		t.Errorf("got %d vertices, want 3", d.Vertices())
	}

	var m Data
	m.AddPoint(v(10, 10, 10))
	m.Merge(&d)
	diff(t, Box{Min: v(-4, -2, 0), Max: v(10, 10, 10)}, m.Box)
	if got := m.Counts(); got != "pts=1 ls=1 poly=0" {
		t.Errorf("got counts %q", got)
	}
}

func TestReadCSV(t *testing.T) {
	in := strings.Join([]string{
		"name, X, y, Z, line",
		"a, 1, 2, 3,",
		"b, 0, 0, 0, edge",
		"c, 1, 0, 0, edge",
		"d, 1, 1, 0, edge",
		"e, 5, 5, 5, other",
		"f, 7, 8, , ",
	}, "\n")
	got, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Data{
		Points: []Vec{v(1, 2, 3), v(5, 5, 5), v(7, 8, 0)},
		Lines:  [][]Vec{{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0)}},
	}
	diff(t, want, got, dataOpts, cmpopts.IgnoreFields(Data{}, "Box"))
}

func TestReadCSVErrors(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("lat,lon\n1,2\n")); err == nil {
		t.Error("missing x/y columns accepted")
	}
	if _, err := ReadCSV(strings.NewReader("x,y\n1,nope\n")); !errors.Is(err, ErrSyntax) {
		t.Errorf("got error %v, want %v", err, ErrSyntax)
	}
	if _, err := ReadCSV(strings.NewReader("x,y\n")); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("got error %v, want %v", err, ErrNoGeometry)
	}
	if _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("got error %v, want %v", err, ErrNoGeometry)
	}
}

const tetra = `# tetrahedron
o tet
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1 1.0
vt 0 0
f 1/1 2/1 3/1
f -4 -3 -1
l 1 4
`

func TestReadOBJ(t *testing.T) {
	got, err := ReadOBJ(strings.NewReader(tetra))
	if err != nil {
		t.Fatal(err)
	}
	want := Data{
		Lines: [][]Vec{{v(0, 0, 0), v(0, 0, 1)}},
		Polygons: [][][]Vec{
			{{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)}},
			{{v(0, 0, 0), v(1, 0, 0), v(0, 0, 1)}},
		},
	}
	diff(t, want, got, dataOpts, cmpopts.IgnoreFields(Data{}, "Box"))
	diff(t, Box{Min: v(0, 0, 0), Max: v(1, 1, 1)}, got.Box)
}

func TestReadOBJPointCloud(t *testing.T) {
	got, err := ReadOBJ(strings.NewReader("v 1 2 3\nv 4 5 6\n"))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Vec{v(1, 2, 3), v(4, 5, 6)}, got.Points)
}

func TestReadOBJErrors(t *testing.T) {
	for _, in := range []string{
		"v 1 2\n",
		"v 1 2 3\nf 1 2 5\n",
		"v 1 2 3\nl 1 x\n",
		"v 1 2 3\nl 0 1\n",
	} {
		if _, err := ReadOBJ(strings.NewReader(in)); !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got error %v, want %v", in, err, ErrSyntax)
		}
	}
	if _, err := ReadOBJ(strings.NewReader("# nothing\n")); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("got error %v, want %v", err, ErrNoGeometry)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.wkt":     "LINESTRING Z (0 0 0, 1 1 1)",
		"b.CSV":     "x,y,z\n1,2,3\n",
		"c.obj":     tetra,
		"d.geojson": `{"type":"Point","coordinates":[1,2,3]}`,
		"e.json":    `{"type":"LineString","coordinates":[[0,0],[1,1]]}`,
		"f.kml":     `<kml><Placemark><Point><coordinates>1,2,3</coordinates></Point></Placemark></kml>`,
	}
	for name, body := range files {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if !Supported(p) {
			t.Errorf("%s not supported", name)
		}
		d, err := Load(p)
		if err != nil {
			t.Errorf("%s: %s", name, err)
			continue
		}
		if d.Empty() {
			t.Errorf("%s: no geometry", name)
		}
	}
	if Supported("x.shp") {
		t.Error("shapefile reported supported")
	}
	if _, err := Load(filepath.Join(dir, "x.shp")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got error %v, want %v", err, ErrUnsupported)
	}
	if _, err := Load(filepath.Join(dir, "missing.wkt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v, want %v", err, os.ErrNotExist)
	}
}

func TestReadGeoJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Data
	}{
		{
			"point with altitude",
			`{"type":"Point","coordinates":[10,20,300]}`,
			Data{Points: []Vec{v(10, 20, 300)}},
		},
		{
			"multipoint mixed",
			`{"type":"MultiPoint","coordinates":[[1,2],[3,4,5]]}`,
			Data{Points: []Vec{v(1, 2, 0), v(3, 4, 5)}},
		},
		{
			"feature linestring",
			`{"type":"Feature","properties":{"name":"ridge"},
			  "geometry":{"type":"LineString","coordinates":[[0,0,1],[1,0,2]]}}`,
			Data{Lines: [][]Vec{{v(0, 0, 1), v(1, 0, 2)}}},
		},
		{
			"multilinestring",
			`{"type":"MultiLineString","coordinates":[[[0,0],[1,0]],[[0,1],[0,2]]]}`,
			Data{Lines: [][]Vec{{v(0, 0, 0), v(1, 0, 0)}, {v(0, 1, 0), v(0, 2, 0)}}},
		},
		{
			"multipolygon with hole",
			`{"type":"MultiPolygon","coordinates":[
			  [[[0,0,1],[4,0,1],[4,4,1],[0,0,1]],[[1,1,1],[2,1,1],[2,2,1],[1,1,1]]],
			  [[[5,5],[6,5],[6,6],[5,5]]]]}`,
			Data{Polygons: [][][]Vec{
				{
					{v(0, 0, 1), v(4, 0, 1), v(4, 4, 1), v(0, 0, 1)},
					{v(1, 1, 1), v(2, 1, 1), v(2, 2, 1), v(1, 1, 1)},
				},
				{{v(5, 5, 0), v(6, 5, 0), v(6, 6, 0), v(5, 5, 0)}},
			}},
		},
		{
			"feature collection",
			`{"type":"FeatureCollection","features":[
			  {"type":"Feature","geometry":null},
			  {"type":"Feature","geometry":{"type":"Point","coordinates":[1,1,1]}},
			  {"type":"Feature","geometry":{"type":"GeometryCollection","geometries":[
			    {"type":"Point","coordinates":[2,2,2]},
			    {"type":"Polygon","coordinates":[[[0,0],[1,0],[0,1],[0,0]]]}]}}]}`,
			Data{
				Points:   []Vec{v(1, 1, 1), v(2, 2, 2)},
				Polygons: [][][]Vec{{{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0), v(0, 0, 0)}}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadGeoJSON(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want.Points, got.Points, cmpopts.EquateEmpty())
			diff(t, tt.want.Lines, got.Lines, cmpopts.EquateEmpty())
			diff(t, tt.want.Polygons, got.Polygons, cmpopts.EquateEmpty())
		})
	}

	d, err := ReadGeoJSON(strings.NewReader(`{"type":"LineString","coordinates":[[0,0,-5],[2,4,7]]}`))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Box{Min: v(0, 0, -5), Max: v(2, 4, 7)}, d.Box)

	for _, tt := range []struct {
		in   string
		want error
	}{
		{`{"type":"Point","coordinates":[1]}`, ErrSyntax},
		{`{"type":"Point","coordinates":"1 2"}`, ErrSyntax},
		{`{"type":"Point"}`, ErrSyntax},
		{`{"type":"Circle","coordinates":[0,0]}`, ErrUnsupported},
		{`{"type":"FeatureCollection","features":[]}`, ErrNoGeometry},
	} {
		if _, err := ReadGeoJSON(strings.NewReader(tt.in)); !errors.Is(err, tt.want) {
			t.Errorf("%s: got error %v, want %v", tt.in, err, tt.want)
		}
	}
	if _, err := ReadGeoJSON(strings.NewReader(`{"type":`)); err == nil {
		t.Error("truncated document parsed")
	}
}

func TestReadKML(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>summit</name>
      <Point><coordinates>7.65,45.97,4478</coordinates></Point>
    </Placemark>
    <Folder>
      <Placemark>
        <LineString>
          <coordinates>
            0,0,10 1,0,20
            1,1
          </coordinates>
        </LineString>
      </Placemark>
      <Placemark>
        <MultiGeometry>
          <Point><coordinates>5,5</coordinates></Point>
          <Polygon>
            <outerBoundaryIs><LinearRing><coordinates>0,0,1 4,0,1 4,4,1 0,0,1</coordinates></LinearRing></outerBoundaryIs>
            <innerBoundaryIs><LinearRing><coordinates>1,1,1 2,1,1 2,2,1 1,1,1</coordinates></LinearRing></innerBoundaryIs>
          </Polygon>
        </MultiGeometry>
      </Placemark>
    </Folder>
  </Document>
</kml>`
	got, err := ReadKML(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := Data{
		Points: []Vec{v(7.65, 45.97, 4478), v(5, 5, 0)},
		Lines:  [][]Vec{{v(0, 0, 10), v(1, 0, 20), v(1, 1, 0)}},
		Polygons: [][][]Vec{{
			{v(0, 0, 1), v(4, 0, 1), v(4, 4, 1), v(0, 0, 1)},
			{v(1, 1, 1), v(2, 1, 1), v(2, 2, 1), v(1, 1, 1)},
		}},
	}
	diff(t, want.Points, got.Points)
	diff(t, want.Lines, got.Lines)
	diff(t, want.Polygons, got.Polygons)

	for _, tt := range []struct {
		in   string
		want error
	}{
		{`<kml><Placemark><Point><coordinates>1</coordinates></Point></Placemark></kml>`, ErrSyntax},
		{`<kml><Placemark><Point><coordinates>1,x</coordinates></Point></Placemark></kml>`, ErrSyntax},
		{`<kml><Document><name>empty</name></Document></kml>`, ErrNoGeometry},
	} {
		if _, err := ReadKML(strings.NewReader(tt.in)); !errors.Is(err, tt.want) {
			t.Errorf("%s: got error %v, want %v", tt.in, err, tt.want)
		}
	}
}
