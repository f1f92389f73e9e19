package features

import (
	"context"
	"log/slog"
	"testing"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestThingUpdatedCreatesFeature(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := appMock()

	NewThingUpdatedHandler(a)(ctx, msgMock(thingUpdatedMsg, "thing.updated"), slog.Default())

	saved := a.SaveFeatureCalls()
	is.Equal(len(saved), 1)
	is.Equal(saved[0].CollectionID, ThingsCollection)

	f := saved[0].F
	is.Equal(f.ID, "urn:diwise:beach:ume-123")
	is.Equal(f.Geometry, orb.Point{20.312, 63.821})
	is.Equal(f.Properties["type"], "Beach")
	is.Equal(f.Properties["name"], "Umebadet")
	is.Equal(f.Properties["tenant"], "default")
}

func TestThingUpdatedWithoutIDIsIgnored(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := appMock()

	NewThingUpdatedHandler(a)(ctx, msgMock(`{"type":"Beach","thing":{},"tenant":"default"}`, "thing.updated"), slog.Default())

	is.Equal(len(a.SaveFeatureCalls()), 0)
}

func TestMeasurementsMoveConnectedFeature(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	connected, err := geojson.UnmarshalFeature([]byte(connectedFeatureJSON))
	is.NoErr(err)

	a := appMock(connected)

	NewMeasurementsHandler(a)(ctx, msgMock(distanceMsg, "message.accepted"), slog.Default())

	saved := a.SaveFeatureCalls()
	is.Equal(len(saved), 1)
	is.Equal(saved[0].CollectionID, "beaches")
	is.Equal(saved[0].F.Geometry, orb.Point{17, 62})
}

func TestMeasurementsSkipUnchangedPosition(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	connected := geojson.NewFeature(orb.Point{17, 62})
	connected.ID = "beach-001"
	connected.Properties["collection"] = "beaches"

	a := appMock(connected)

	NewMeasurementsHandler(a)(ctx, msgMock(distanceMsg, "message.accepted"), slog.Default())

	is.Equal(len(a.SaveFeatureCalls()), 0)
}

func TestMeasurementsWithoutPositionAreIgnored(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := appMock()

	NewMeasurementsHandler(a)(ctx, msgMock(noPositionMsg, "message.accepted"), slog.Default())

	is.Equal(len(a.GetConnectedFeaturesCalls()), 0)
	is.Equal(len(a.SaveFeatureCalls()), 0)
}

func appMock(connected ...*geojson.Feature) *FeaturesAppMock {
	return &FeaturesAppMock{
		GetConnectedFeaturesFunc: func(ctx context.Context, deviceID string) ([]*geojson.Feature, error) {
			return connected, nil
		},
		SaveFeatureFunc: func(ctx context.Context, collectionID string, f *geojson.Feature) error {
			return nil
		},
	}
}

func msgMock(body, topic string) *messaging.IncomingTopicMessageMock {
	return &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			return []byte(body)
		},
		TopicNameFunc: func() string {
			return topic
		},
		ContentTypeFunc: func() string {
			return "application/json"
		},
	}
}

var (
	thingUpdatedMsg      = `{"id":"urn:diwise:beach:ume-123","type":"Beach","thing":{"id":"urn:diwise:beach:ume-123","type":"Beach","name":"Umebadet","description":"Badplats vid älven","location":{"latitude":63.821,"longitude":20.312},"ref_devices":[{"device_id":"9fb5801ebafc"}],"tenant":"default"},"tenant":"default","timestamp":"2025-06-18T06:32:10Z"}`
	distanceMsg          = `{"pack":[{"bn":"9fb5801ebafc/3330/","bt":1730124849,"n":"0","vs":"urn:oma:lwm2m:ext:3330"},{"n":"5700","u":"m","v":2.51},{"n":"5701","vs":"metre"},{"u":"lat","v":62},{"u":"lon","v":17},{"n":"tenant","vs":"default"}],"timestamp":"2024-10-28T14:14:09.424249918Z"}`
	noPositionMsg        = `{"pack":[{"bn":"9fb5801ebafc/3330/","bt":1730124849,"n":"0","vs":"urn:oma:lwm2m:ext:3330"},{"n":"5700","u":"m","v":2.51},{"n":"tenant","vs":"default"}],"timestamp":"2024-10-28T14:14:09.424249918Z"}`
	connectedFeatureJSON = `{"type":"Feature","id":"beach-001","geometry":{"type":"Point","coordinates":[17.31,62.39]},"properties":{"name":"Slädaviken","tenant":"default","collection":"beaches","ref_devices":[{"device_id":"9fb5801ebafc"}]}}`
)
