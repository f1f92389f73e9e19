package formatter

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

func TestEmptyCollectionYieldsEmptyOutput(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV})

	b, err := f.Write(ctx, Options{}, geojson.NewFeatureCollection())
	is.NoErr(err)
	is.Equal(len(b), 0)

	b, err = f.Write(ctx, Options{}, nil)
	is.NoErr(err)
	is.Equal(len(b), 0)
}

func TestHeaderContainsIDAndSortedPropertyKeys(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV})

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("home", 10, 20, geojson.Properties{"b": 2, "a": 1}))

	b, err := f.Write(ctx, Options{}, fc)
	is.NoErr(err)
	is.Equal(string(b), "id,a,b\nhome,1,2\n")
}

func TestPointFlattening(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV, Geom: true})

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("home", 10, 20, geojson.Properties{"name": "rådhuset"}))

	b, err := f.Write(ctx, Options{}, fc)
	is.NoErr(err)

	records := readAll(t, b)
	is.Equal(records[0], []string{"id", "x", "y", "name"})
	is.Equal(records[1], []string{"home", "10", "20", "rådhuset"})
}

func TestPointFlatteningWithCustomColumnNames(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV, Geom: true})

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("home", 17.3, 62.4, geojson.Properties{"name": "kajen"}))

	options := Options{CSV: CSVOptions{LatColname: "lon", LonColname: "lat"}}

	b, err := f.Write(ctx, options, fc)
	is.NoErr(err)

	records := readAll(t, b)
	is.Equal(records[0], []string{"id", "lon", "lat", "name"})
	is.Equal(records[1], []string{"home", "17.3", "62.4", "kajen"})
}

func TestNonPointGeometryIsWrittenAsWKT(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV, Geom: true})

	polygon := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}

	feature := geojson.NewFeature(polygon)
	feature.ID = "area-001"
	feature.Properties = geojson.Properties{"name": "badplats"}

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	b, err := f.Write(ctx, Options{}, fc)
	is.NoErr(err)

	records := readAll(t, b)
	is.Equal(records[0], []string{"id", "coordinates", "name"})
	is.Equal(records[1], []string{"area-001", wkt.MarshalString(polygon), "badplats"})
}

func TestNonPointGeometryHonoursGeomField(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV, Geom: true})

	line := orb.LineString{{0, 0}, {1, 1}}

	feature := geojson.NewFeature(line)
	feature.ID = "route-001"
	feature.Properties = geojson.Properties{"name": "slinga"}

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	b, err := f.Write(ctx, Options{GeomField: "geom"}, fc)
	is.NoErr(err)

	records := readAll(t, b)
	is.Equal(records[0], []string{"id", "geom", "name"})
	is.Equal(records[1][1], wkt.MarshalString(line))
}

func TestNullGeometryLeavesColumnEmpty(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV, Geom: true})

	feature := &geojson.Feature{
		Type:       "Feature",
		Properties: geojson.Properties{"name": "okänd"},
	}
	feature.ID = "no-geom"

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	b, err := f.Write(ctx, Options{}, fc)
	is.NoErr(err)

	records := readAll(t, b)
	is.Equal(records[0], []string{"id", "coordinates", "name"})
	is.Equal(records[1], []string{"no-geom", "", "okänd"})
}

func TestNonPointRowInPointCollectionLeavesCoordinateCellsEmpty(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV, Geom: true})

	second := &geojson.Feature{
		Type:       "Feature",
		Properties: geojson.Properties{"name": "b"},
	}
	second.ID = "2"

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("1", 10, 20, geojson.Properties{"name": "a"}))
	fc.Append(second)

	b, err := f.Write(ctx, Options{}, fc)
	is.NoErr(err)

	records := readAll(t, b)
	is.Equal(records[1], []string{"1", "10", "20", "a"})
	is.Equal(records[2], []string{"2", "", "", "b"})
}

func TestRepeatedWritesAreByteIdentical(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV, Geom: true})

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("1", 17.31, 62.39, geojson.Properties{"name": "a", "type": "Beach", "tenant": "default", "depth": 2.5}))
	fc.Append(pointFeature("2", 17.41, 62.40, geojson.Properties{"name": "b", "type": "Beach", "tenant": "default", "depth": 1.25}))

	first, err := f.Write(ctx, Options{}, fc)
	is.NoErr(err)

	second, err := f.Write(ctx, Options{}, fc)
	is.NoErr(err)

	is.True(bytes.Equal(first, second))
}

func TestIncludeIDFalseRemovesIDColumn(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV})

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("home", 10, 20, geojson.Properties{"a": 1, "b": 2}))

	includeID := false

	b, err := f.Write(ctx, Options{CSV: CSVOptions{IncludeID: &includeID}}, fc)
	is.NoErr(err)
	is.Equal(string(b), "a,b\n1,2\n")
}

func TestMissingPropertySerializesAsEmptyCell(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV})

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("1", 0, 0, geojson.Properties{"a": 1, "b": 2}))
	fc.Append(pointFeature("2", 0, 0, geojson.Properties{"a": 3}))

	b, err := f.Write(ctx, Options{}, fc)
	is.NoErr(err)

	records := readAll(t, b)
	is.Equal(records[2], []string{"2", "3", ""})
}

func TestExtraPropertyFailsTheWholeWrite(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV})

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("1", 0, 0, geojson.Properties{"a": 1}))
	fc.Append(pointFeature("2", 0, 0, geojson.Properties{"a": 2, "b": 3}))

	b, err := f.Write(ctx, Options{}, fc)
	is.True(errors.Is(err, ErrSerialization))
	is.Equal(b, nil)
}

func TestExtraPropertyIsDroppedWhenIgnored(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV})

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("1", 0, 0, geojson.Properties{"a": 1}))
	fc.Append(pointFeature("2", 0, 0, geojson.Properties{"a": 2, "b": 3}))

	b, err := f.Write(ctx, Options{CSV: CSVOptions{IgnoreExtraProperties: true}}, fc)
	is.NoErr(err)
	is.Equal(string(b), "id,a\n1,1\n2,2\n")
}

func TestUnencodableValueFailsTheWholeWrite(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV})

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("1", 0, 0, geojson.Properties{"a": make(chan int)}))

	b, err := f.Write(ctx, Options{}, fc)
	is.True(errors.Is(err, ErrSerialization))
	is.Equal(b, nil)
}

func TestWriteDoesNotMutateCallerProperties(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV, Geom: true})

	shared := geojson.Properties{"name": "a"}

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("1", 10, 20, shared))
	fc.Append(pointFeature("2", 30, 40, shared))

	_, err := f.Write(ctx, Options{}, fc)
	is.NoErr(err)

	is.Equal(len(shared), 1)
	is.Equal(shared["name"], "a")
}

func TestComplexValuesSerializeAsJSON(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	f := NewCSV(Definition{Name: FormatCSV})

	fc := geojson.NewFeatureCollection()
	fc.Append(pointFeature("1", 0, 0, geojson.Properties{"tags": []string{"strand", "bad"}}))

	b, err := f.Write(ctx, Options{}, fc)
	is.NoErr(err)

	records := readAll(t, b)
	is.Equal(records[1][1], `["strand","bad"]`)
}

func pointFeature(id string, x, y float64, properties geojson.Properties) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{x, y})
	f.ID = id
	f.Properties = properties
	return f
}

func readAll(t *testing.T, b []byte) [][]string {
	t.Helper()

	r := csv.NewReader(bytes.NewReader(b))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatal("could not parse csv output", err)
	}

	return records
}
