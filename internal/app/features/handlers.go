package features

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/senml"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-features")

// ThingsCollection is the collection that mirrored things end up in.
const ThingsCollection = "things"

func NewThingUpdatedHandler(app FeaturesApp) messaging.TopicMessageHandler {
	return func(ctx context.Context, d messaging.IncomingTopicMessage, logger *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, d.TopicName())
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		msg := struct {
			ID        string         `json:"id"`
			Type      string         `json:"type"`
			Thing     map[string]any `json:"thing"`
			Tenant    string         `json:"tenant"`
			Timestamp time.Time      `json:"timestamp"`
		}{}

		err = json.Unmarshal(d.Body(), &msg)
		if err != nil {
			log.Error("could not unmarshal message", "err", err.Error())
			return
		}

		if msg.ID == "" {
			log.Debug("message contains no thing id")
			return
		}

		feature := convToFeature(msg.ID, msg.Type, msg.Tenant, msg.Thing)

		err = app.SaveFeature(ctx, ThingsCollection, feature)
		if err != nil {
			log.Error("could not save feature", "err", err.Error())
			return
		}
	}
}

func NewMeasurementsHandler(app FeaturesApp) messaging.TopicMessageHandler {
	return func(ctx context.Context, d messaging.IncomingTopicMessage, logger *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, d.TopicName())
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		msg := struct {
			Pack      senml.Pack `json:"pack"`
			Timestamp time.Time  `json:"timestamp"`
		}{}

		err = json.Unmarshal(d.Body(), &msg)
		if err != nil {
			log.Error("could not unmarshal message", "err", err.Error())
			return
		}

		if msg.Pack.Validate() != nil {
			log.Error("message contains an invalid package")
			return
		}

		refDeviceID, ok := extractDeviceID(msg.Pack)
		if !ok {
			log.Debug("no deviceID found in package")
			return
		}

		lat, lon, ok := extractLatLon(msg.Pack)
		if !ok {
			log.Debug("no position found in package", "device_id", refDeviceID)
			return
		}

		connected, err := app.GetConnectedFeatures(ctx, refDeviceID)
		if err != nil {
			log.Error("could not get connected features", "err", err.Error())
			return
		}

		if len(connected) == 0 {
			log.Debug("no connected features found")
			return
		}

		point := orb.Point{lon, lat}
		errs := make([]error, 0)

		for _, f := range connected {
			if p, ok := f.Geometry.(orb.Point); ok && p.Equal(point) {
				continue
			}

			f.Geometry = point

			errs = append(errs, app.SaveFeature(ctx, collectionOf(f), f))
		}

		if err = errors.Join(errs...); err != nil {
			log.Error("errors occured when handling measurements", "err", err.Error())
			return
		}
	}
}

func convToFeature(id, thingType, tenant string, thing map[string]any) *geojson.Feature {
	var geometry orb.Geometry

	if lat, lon, ok := location(thing); ok {
		geometry = orb.Point{lon, lat}
	}

	feature := geojson.NewFeature(geometry)
	feature.ID = id

	for k, v := range thing {
		if k == "id" || k == "location" {
			continue
		}
		feature.Properties[k] = v
	}

	if thingType != "" {
		feature.Properties["type"] = thingType
	}
	if tenant != "" {
		feature.Properties["tenant"] = tenant
	}

	return feature
}

func location(m map[string]any) (float64, float64, bool) {
	loc, ok := m["location"].(map[string]any)
	if !ok {
		return 0, 0, false
	}

	lat, latOk := loc["latitude"].(float64)
	lon, lonOk := loc["longitude"].(float64)

	return lat, lon, latOk && lonOk
}

func extractLatLon(pack senml.Pack) (float64, float64, bool) {
	var lat, lon *float64

	for _, r := range pack {
		if r.Value == nil {
			continue
		}

		switch r.Unit {
		case "lat":
			lat = r.Value
		case "lon":
			lon = r.Value
		}
	}

	if lat == nil || lon == nil {
		return 0, 0, false
	}

	return *lat, *lon, true
}

func extractDeviceID(pack senml.Pack) (string, bool) {
	r, ok := pack.GetRecord(senml.FindByName("0"))
	if !ok {
		return "", false
	}
	return strings.Split(r.Name, "/")[0], true
}
