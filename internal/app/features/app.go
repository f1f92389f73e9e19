package features

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/api-features/internal/pkg/formatter"
	"github.com/diwise/api-features/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gopkg.in/yaml.v2"
)

//go:generate moq -rm -out app_mock.go . FeaturesApp
type FeaturesApp interface {
	AddFeature(ctx context.Context, collectionID string, b []byte) error
	SaveFeature(ctx context.Context, collectionID string, f *geojson.Feature) error
	DeleteFeature(ctx context.Context, collectionID, featureID string, tenants []string) error
	QueryFeatures(ctx context.Context, collectionID string, params map[string][]string) (QueryResult, error)
	RetrieveFeature(ctx context.Context, collectionID, featureID string, tenants []string) (*geojson.Feature, error)
	GetConnectedFeatures(ctx context.Context, deviceID string) ([]*geojson.Feature, error)
	GetCollections(ctx context.Context, tenants []string) ([]Collection, error)
	ExportFeatures(ctx context.Context, collectionID, format string, params map[string][]string) ([]byte, string, error)
	Seed(ctx context.Context, r io.Reader) error

	LoadConfig(ctx context.Context, r io.Reader) error
}

//go:generate moq -rm -out reader_mock.go . FeaturesReader
type FeaturesReader interface {
	QueryFeatures(ctx context.Context, conditions ...ConditionFunc) (QueryResult, error)
	GetCollections(ctx context.Context, tenants []string) ([]string, error)
}

//go:generate moq -rm -out writer_mock.go . FeaturesWriter
type FeaturesWriter interface {
	AddFeature(ctx context.Context, collectionID string, f *geojson.Feature) error
	SaveFeature(ctx context.Context, collectionID string, f *geojson.Feature) error
	DeleteFeature(ctx context.Context, collectionID, featureID string) error
}

var ErrFeatureNotFound = errors.New("feature not found")
var ErrAlreadyExists = errors.New("feature already exists")

const DefaultTenant = "default"

type Collection struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title,omitempty" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
}

type app struct {
	reader FeaturesReader
	writer FeaturesWriter
	msgCtx messaging.MsgContext
	cfg    *config
}

type config struct {
	Collections []collectionConfig `json:"collections" yaml:"collections"`
}

type collectionConfig struct {
	Collection `yaml:",inline"`
	Provider   formatter.Options `json:"provider" yaml:"provider"`
}

func New(r FeaturesReader, w FeaturesWriter, msgCtx messaging.MsgContext) FeaturesApp {
	return &app{
		reader: r,
		writer: w,
		msgCtx: msgCtx,
	}
}

func (a *app) LoadConfig(ctx context.Context, r io.Reader) error {
	c := config{}
	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil {
		return err
	}

	a.cfg = &c

	return nil
}

func (a *app) AddFeature(ctx context.Context, collectionID string, b []byte) error {
	if collectionID == "" {
		return errors.New("collection must be provided")
	}

	f, err := geojson.UnmarshalFeature(b)
	if err != nil {
		return err
	}

	if featureID(f) == "" {
		return errors.New("feature ID must be provided")
	}

	normalize(f, collectionID)

	err = a.writer.AddFeature(ctx, collectionID, f)
	if err != nil {
		return err
	}

	a.publishFeatureUpdated(ctx, collectionID, f)

	return nil
}

func (a *app) SaveFeature(ctx context.Context, collectionID string, f *geojson.Feature) error {
	if collectionID == "" {
		return errors.New("collection must be provided")
	}
	if featureID(f) == "" {
		return errors.New("feature ID must be provided")
	}

	normalize(f, collectionID)

	err := a.writer.SaveFeature(ctx, collectionID, f)
	if err != nil {
		return err
	}

	a.publishFeatureUpdated(ctx, collectionID, f)

	return nil
}

func (a *app) DeleteFeature(ctx context.Context, collectionID, featureID string, tenants []string) error {
	if len(tenants) == 0 {
		return errors.New("tenants must be provided")
	}

	result, err := a.reader.QueryFeatures(ctx, WithCollection(collectionID), WithFeatureID(featureID), WithTenants(tenants))
	if err != nil {
		return err
	}
	if len(result.Data) != 1 {
		return ErrFeatureNotFound
	}

	return a.writer.DeleteFeature(ctx, collectionID, featureID)
}

func (a *app) QueryFeatures(ctx context.Context, collectionID string, params map[string][]string) (QueryResult, error) {
	conditions := append(WithParams(params), WithCollection(collectionID))

	result, err := a.reader.QueryFeatures(ctx, conditions...)
	if err != nil {
		return QueryResult{}, err
	}

	return result, nil
}

func (a *app) RetrieveFeature(ctx context.Context, collectionID, featureID string, tenants []string) (*geojson.Feature, error) {
	conditions := []ConditionFunc{WithCollection(collectionID), WithFeatureID(featureID)}
	if len(tenants) > 0 {
		conditions = append(conditions, WithTenants(tenants))
	}

	result, err := a.reader.QueryFeatures(ctx, conditions...)
	if err != nil {
		return nil, err
	}
	if len(result.Data) != 1 {
		return nil, ErrFeatureNotFound
	}

	return geojson.UnmarshalFeature(result.Data[0])
}

func (a *app) GetConnectedFeatures(ctx context.Context, deviceID string) ([]*geojson.Feature, error) {
	result, err := a.reader.QueryFeatures(ctx, WithRefDevice(deviceID))
	if err != nil {
		return nil, err
	}

	connected := make([]*geojson.Feature, 0)

	for _, b := range result.Data {
		f, err := geojson.UnmarshalFeature(b)
		if err != nil {
			return nil, err
		}

		connected = append(connected, f)
	}

	return connected, nil
}

func (a *app) GetCollections(ctx context.Context, tenants []string) ([]Collection, error) {
	collections := make([]Collection, 0)
	known := make(map[string]bool)

	if a.cfg != nil {
		for _, c := range a.cfg.Collections {
			collections = append(collections, c.Collection)
			known[c.ID] = true
		}
	}

	ids, err := a.reader.GetCollections(ctx, tenants)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		if !known[id] {
			collections = append(collections, Collection{ID: id})
		}
	}

	return collections, nil
}

func (a *app) ExportFeatures(ctx context.Context, collectionID, format string, params map[string][]string) ([]byte, string, error) {
	f, err := formatter.New(formatter.Definition{Name: format, Geom: true})
	if err != nil {
		return nil, "", err
	}

	result, err := a.QueryFeatures(ctx, collectionID, params)
	if err != nil {
		return nil, "", err
	}

	collection := geojson.NewFeatureCollection()

	for _, b := range result.Data {
		feature, err := geojson.UnmarshalFeature(b)
		if err != nil {
			return nil, "", err
		}

		collection.Append(feature)
	}

	b, err := f.Write(ctx, a.providerOptions(collectionID), collection)
	if err != nil {
		return nil, "", err
	}

	return b, f.MimeType(), nil
}

func (a *app) Seed(ctx context.Context, r io.Reader) error {
	f := csv.NewReader(r)
	f.Comma = ';'
	rowNum := 0

	point := func(s string) orb.Geometry {
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return nil
		}

		parse := func(s string) float64 {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return 0.0
			}
			return f
		}

		lat := parse(parts[0])
		lon := parse(parts[1])

		return orb.Point{lon, lat}
	}

	refDevices := func(t string) []map[string]string {
		if t == "" {
			return nil
		}
		devices := []map[string]string{}
		for _, s := range strings.Split(t, ",") {
			devices = append(devices, map[string]string{"device_id": s})
		}
		return devices
	}

	args := func(t string) map[string]any {
		m := make(map[string]any)
		if t == "" {
			return nil
		}
		t = strings.ReplaceAll(t, "'", "\"")
		err := json.Unmarshal([]byte(t), &m)
		if err != nil {
			return nil
		}
		return m
	}

	for {
		record, err := f.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if rowNum == 0 {
			rowNum++
			continue
		}

		//  0       1        2        3          4        5        6          7
		// id, collection, name, description, location, tenant, refDevices, properties

		feature := geojson.NewFeature(point(record[4]))
		feature.ID = record[0]
		feature.Properties["name"] = record[2]
		feature.Properties["description"] = record[3]
		feature.Properties["tenant"] = record[5]

		if devices := refDevices(record[6]); len(devices) > 0 {
			feature.Properties["ref_devices"] = devices
		}

		for k, v := range args(record[7]) {
			feature.Properties[k] = v
		}

		err = a.SaveFeature(ctx, record[1], feature)
		if err != nil {
			return err
		}
	}

	return nil
}

func (a *app) providerOptions(collectionID string) formatter.Options {
	if a.cfg == nil {
		return formatter.Options{}
	}

	for _, c := range a.cfg.Collections {
		if c.ID == collectionID {
			return c.Provider
		}
	}

	return formatter.Options{}
}

func (a *app) publishFeatureUpdated(ctx context.Context, collectionID string, f *geojson.Feature) {
	msg := &types.FeatureUpdated{
		ID:         featureID(f),
		Collection: collectionID,
		Feature:    f,
		Tenant:     tenantOf(f),
		Timestamp:  time.Now().UTC(),
	}

	err := a.msgCtx.PublishOnTopic(ctx, msg)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("could not publish feature update", "err", err.Error())
	}
}

func normalize(f *geojson.Feature, collectionID string) {
	if f.Properties == nil {
		f.Properties = geojson.Properties{}
	}

	if tenant, ok := f.Properties["tenant"].(string); !ok || tenant == "" {
		f.Properties["tenant"] = DefaultTenant
	}

	f.Properties["collection"] = collectionID
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

func tenantOf(f *geojson.Feature) string {
	if tenant, ok := f.Properties["tenant"].(string); ok && tenant != "" {
		return tenant
	}
	return DefaultTenant
}

func collectionOf(f *geojson.Feature) string {
	if collection, ok := f.Properties["collection"].(string); ok {
		return collection
	}
	return ""
}
