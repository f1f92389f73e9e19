package storage

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/diwise/api-features/internal/app/features"
	"github.com/jackc/pgx/v5"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var ErrAlreadyExists error = features.ErrAlreadyExists
var ErrNotExist error = features.ErrFeatureNotFound

type featureRecord struct {
	collection string
	featureID  string
	geomType   *string
	lat        *float64
	lon        *float64
	data       string
	tenant     string
}

func newFeatureRecord(collectionID string, f *geojson.Feature) (featureRecord, error) {
	if f == nil {
		return featureRecord{}, fmt.Errorf("feature is nil")
	}

	r := featureRecord{
		collection: collectionID,
		featureID:  featureID(f),
		tenant:     features.DefaultTenant,
	}

	if r.collection == "" {
		return featureRecord{}, fmt.Errorf("data contains no collection")
	}
	if r.featureID == "" {
		return featureRecord{}, fmt.Errorf("data contains no feature id")
	}

	if tenant, ok := f.Properties["tenant"].(string); ok && tenant != "" {
		r.tenant = tenant
	}

	if f.Geometry != nil {
		geomType := f.Geometry.GeoJSONType()
		r.geomType = &geomType

		if p, ok := f.Geometry.(orb.Point); ok {
			lon, lat := p[0], p[1]
			r.lon = &lon
			r.lat = &lat
		}
	}

	b, err := json.Marshal(f)
	if err != nil {
		return featureRecord{}, err
	}
	r.data = string(b)

	return r, nil
}

// point(@lon,@lat) yields NULL for non point geometry since both args are NULL
func (r featureRecord) namedArgs() pgx.NamedArgs {
	return pgx.NamedArgs{
		"collection": r.collection,
		"feature_id": r.featureID,
		"geom_type":  r.geomType,
		"lon":        r.lon,
		"lat":        r.lat,
		"data":       r.data,
		"tenant":     r.tenant,
	}
}

func featureID(f *geojson.Feature) string {
	if f == nil || f.ID == nil {
		return ""
	}

	switch id := f.ID.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", id)
	}
}
