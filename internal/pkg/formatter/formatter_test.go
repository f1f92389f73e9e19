package formatter

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v2"
)

func TestNewReturnsCSVFormatter(t *testing.T) {
	is := is.New(t)

	f, err := New(Definition{Name: FormatCSV, Geom: true})
	is.NoErr(err)
	is.Equal(f.Name(), "csv")
	is.Equal(f.MimeType(), "text/csv; charset=utf-8")
}

func TestNewFailsOnUnknownFormat(t *testing.T) {
	is := is.New(t)

	_, err := New(Definition{Name: "shapefile"})
	is.True(errors.Is(err, ErrUnknownFormat))
}

func TestOptionsResolveAppliesDefaults(t *testing.T) {
	is := is.New(t)

	s := Options{}.resolve()
	is.Equal(s.geomField, "coordinates")
	is.Equal(s.latColname, "x")
	is.Equal(s.lonColname, "y")
	is.True(s.includeID)
	is.Equal(s.ignoreExtra, false)
}

func TestOptionsResolveKeepsOverrides(t *testing.T) {
	is := is.New(t)

	includeID := false

	s := Options{
		GeomField: "geom",
		CSV: CSVOptions{
			IncludeID:             &includeID,
			LatColname:            "longitude",
			LonColname:            "latitude",
			IgnoreExtraProperties: true,
		},
	}.resolve()

	is.Equal(s.geomField, "geom")
	is.Equal(s.latColname, "longitude")
	is.Equal(s.lonColname, "latitude")
	is.Equal(s.includeID, false)
	is.True(s.ignoreExtra)
}

func TestOptionsUnmarshalFromYAML(t *testing.T) {
	is := is.New(t)

	config := `
geom_field: geom
csv_formatting_options:
  include_id: false
  lat_colname: longitude
  lon_colname: latitude
`

	options := Options{}
	err := yaml.Unmarshal([]byte(config), &options)
	is.NoErr(err)

	s := options.resolve()
	is.Equal(s.geomField, "geom")
	is.Equal(s.includeID, false)
	is.Equal(s.latColname, "longitude")
	is.Equal(s.lonColname, "latitude")
}
