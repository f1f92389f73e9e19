// Package formatter renders feature collections into alternative output
// representations. Formatters are configured once and may be shared across
// concurrent calls to Write.
package formatter

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/orb/geojson"
)

const (
	FormatCSV = "csv"

	DefaultGeometryField = "coordinates"
	DefaultLatColname    = "x"
	DefaultLonColname    = "y"
)

var ErrUnknownFormat = errors.New("unknown format")
var ErrSerialization = errors.New("serialization error")

type Formatter interface {
	Name() string
	MimeType() string
	Write(ctx context.Context, options Options, collection *geojson.FeatureCollection) ([]byte, error)
}

// Definition holds the construction time configuration of a formatter.
type Definition struct {
	Name string `yaml:"name" json:"name"`
	Geom bool   `yaml:"geom" json:"geom"`
}

// Options hold the per write formatting options, typically taken from a
// collection's provider definition.
type Options struct {
	// GeomField names the column used for non point geometry (default "coordinates")
	GeomField string     `yaml:"geom_field" json:"geom_field"`
	CSV       CSVOptions `yaml:"csv_formatting_options" json:"csv_formatting_options"`
}

type CSVOptions struct {
	// IncludeID controls whether an id column is emitted (default true)
	IncludeID *bool `yaml:"include_id" json:"include_id"`
	// LatColname names the column that receives the first coordinate of a
	// point (default "x"). The first coordinate of a GeoJSON point is the
	// longitude, but the column naming follows the upstream contract.
	LatColname string `yaml:"lat_colname" json:"lat_colname"`
	// LonColname names the column that receives the second coordinate of a
	// point (default "y")
	LonColname string `yaml:"lon_colname" json:"lon_colname"`
	// IgnoreExtraProperties drops properties that are not part of the header
	// instead of failing the whole write (default false)
	IgnoreExtraProperties bool `yaml:"ignore_extra_properties" json:"ignore_extra_properties"`
}

type settings struct {
	geomField   string
	includeID   bool
	latColname  string
	lonColname  string
	ignoreExtra bool
}

func (o Options) resolve() settings {
	s := settings{
		geomField:   o.GeomField,
		includeID:   true,
		latColname:  o.CSV.LatColname,
		lonColname:  o.CSV.LonColname,
		ignoreExtra: o.CSV.IgnoreExtraProperties,
	}

	if s.geomField == "" {
		s.geomField = DefaultGeometryField
	}
	if o.CSV.IncludeID != nil {
		s.includeID = *o.CSV.IncludeID
	}
	if s.latColname == "" {
		s.latColname = DefaultLatColname
	}
	if s.lonColname == "" {
		s.lonColname = DefaultLonColname
	}

	return s
}

func New(def Definition) (Formatter, error) {
	switch def.Name {
	case FormatCSV:
		return NewCSV(def), nil
	default:
		return nil, fmt.Errorf("%w [%s]", ErrUnknownFormat, def.Name)
	}
}
