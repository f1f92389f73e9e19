package formatter

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

type CSVFormatter struct {
	name     string
	mimetype string
	geom     bool
}

func NewCSV(def Definition) *CSVFormatter {
	return &CSVFormatter{
		name:     FormatCSV,
		mimetype: "text/csv; charset=utf-8",
		geom:     def.Geom,
	}
}

func (f *CSVFormatter) Name() string {
	return f.name
}

func (f *CSVFormatter) MimeType() string {
	return f.mimetype
}

// Write renders a feature collection as CSV. The header is derived from the
// first feature only: its property keys in lexical order, preceded by the
// geometry column(s) when geometry is enabled, preceded by the id column when
// ids are enabled. Every row carries exactly the header's column set; columns
// missing from a feature serialize as empty cells.
func (f *CSVFormatter) Write(ctx context.Context, options Options, collection *geojson.FeatureCollection) ([]byte, error) {
	log := logging.GetFromContext(ctx)
	s := options.resolve()

	if collection == nil || len(collection.Features) == 0 {
		log.Debug("no features to format")
		return []byte{}, nil
	}

	first := collection.Features[0]
	fields := slices.Sorted(maps.Keys(first.Properties))

	isPoint := false

	if f.geom {
		if first.Geometry != nil && first.Geometry.GeoJSONType() == "Point" {
			fields = append([]string{s.latColname, s.lonColname}, fields...)
			isPoint = true
		} else {
			fields = append([]string{s.geomField}, fields...)
		}
	}

	if s.includeID {
		fields = append([]string{"id"}, fields...)
	}

	log.Debug("derived csv fields", "fields", fields)

	columns := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		columns[field] = struct{}{}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(fields); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSerialization, err.Error())
	}

	for _, feature := range collection.Features {
		// each row gets a fresh cell map so that property maps shared by the
		// caller are never mutated
		row := make(map[string]string, len(fields))

		for key, value := range feature.Properties {
			if _, ok := columns[key]; !ok {
				if s.ignoreExtra {
					continue
				}
				return nil, fmt.Errorf("%w: property [%s] is not part of the header", ErrSerialization, key)
			}

			cell, err := formatValue(value)
			if err != nil {
				return nil, fmt.Errorf("%w: could not encode property [%s]: %s", ErrSerialization, key, err.Error())
			}

			row[key] = cell
		}

		if isPoint {
			if point, ok := feature.Geometry.(orb.Point); ok {
				row[s.latColname] = formatFloat(point[0])
				row[s.lonColname] = formatFloat(point[1])
			}
		} else if f.geom && feature.Geometry != nil {
			row[s.geomField] = wkt.MarshalString(feature.Geometry)
		}

		if s.includeID {
			cell, err := formatValue(feature.ID)
			if err != nil {
				return nil, fmt.Errorf("%w: could not encode feature id: %s", ErrSerialization, err.Error())
			}
			row["id"] = cell
		}

		record := make([]string, len(fields))
		for i, field := range fields {
			record[i] = row[field]
		}

		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSerialization, err.Error())
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSerialization, err.Error())
	}

	return buf.Bytes(), nil
}

func formatValue(value any) (string, error) {
	if value == nil {
		return "", nil
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return formatFloat(v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
