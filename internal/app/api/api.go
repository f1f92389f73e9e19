package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	app "github.com/diwise/api-features/internal/app/features"
	"github.com/diwise/api-features/internal/pkg/auth"
	"github.com/diwise/api-features/internal/pkg/formatter"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/paulmach/orb/geojson"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-features/api/collections")

func Register(ctx context.Context, a app.FeaturesApp, policies io.Reader) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	authenticator, err := auth.NewAuthenticator(ctx, log, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/collections", func(r chi.Router) {
				r.Get("/", getCollectionsHandler(log, a))

				r.Route("/{collectionId}", func(r chi.Router) {
					r.Get("/items", getItemsHandler(log, a))
					r.Post("/items", addItemHandler(log, a))
					r.Get("/items/{id}", getItemByIDHandler(log, a))
					r.Delete("/items/{id}", deleteItemHandler(log, a))
				})
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r, nil
}

func getCollectionsHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-collections")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		tenants := auth.GetAllowedTenantsFromContext(ctx)

		collections, err := a.GetCollections(ctx, tenants)
		if err != nil {
			logger.Error("could not get collections", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		response := struct {
			Collections []app.Collection `json:"collections"`
		}{
			Collections: collections,
		}

		b, err := json.Marshal(response)
		if err != nil {
			logger.Error("could not marshal collections", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getItemsHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-items")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID := chi.URLParam(r, "collectionId")
		if collectionID == "" {
			logger.Error("no collection id parameter found in request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if format, ok := requestedFormat(r); ok {
			b, contentType, err := a.ExportFeatures(ctx, collectionID, format, r.URL.Query())
			if err != nil {
				if errors.Is(err, formatter.ErrUnknownFormat) {
					logger.Debug("export format is not supported", "format", format)
					w.WriteHeader(http.StatusBadRequest)
					return
				}

				logger.Error("could not export features", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(err.Error()))
				return
			}

			w.Header().Set("Content-Type", contentType)
			w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, collectionID, format))
			w.WriteHeader(http.StatusOK)
			w.Write(b)
			return
		}

		result, err := a.QueryFeatures(ctx, collectionID, r.URL.Query())
		if err != nil {
			logger.Error("could not query features", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		collection := geojson.NewFeatureCollection()

		for _, item := range result.Data {
			f, err := geojson.UnmarshalFeature(item)
			if err != nil {
				logger.Error("could not unmarshal feature", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(err.Error()))
				return
			}
			collection.Append(f)
		}

		collection.ExtraMembers = geojson.Properties{
			"numberMatched":  result.TotalCount,
			"numberReturned": result.Count,
		}

		if links := createLinks(r.URL, int64(result.Count), result.TotalCount, int64(result.Offset), int64(result.Limit)); links != nil {
			collection.ExtraMembers["links"] = links
		}

		b, err := json.Marshal(collection)
		if err != nil {
			logger.Error("could not marshal feature collection", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getItemByIDHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-item-byID")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID := chi.URLParam(r, "collectionId")
		featureID := chi.URLParam(r, "id")
		if collectionID == "" || featureID == "" {
			logger.Error("no collection id or feature id parameter found in request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		tenants := auth.GetAllowedTenantsFromContext(ctx)

		feature, err := a.RetrieveFeature(ctx, collectionID, featureID, tenants)
		if err != nil {
			if errors.Is(err, app.ErrFeatureNotFound) {
				logger.Debug("feature not found", "id", featureID)
				w.WriteHeader(http.StatusNotFound)
				return
			}

			logger.Error("could not retrieve feature", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		b, err := json.Marshal(feature)
		if err != nil {
			logger.Error("could not marshal feature", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func addItemHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		if isMultipartFormData(r) {
			ctx, span := tracer.Start(r.Context(), "seed")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
			_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

			file, _, err := r.FormFile("fileupload")
			if err != nil {
				logger.Error("unable to get file from fileupload", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			defer file.Close()

			err = a.Seed(ctx, file)
			if err != nil {
				logger.Error("could not seed", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(err.Error()))
				return
			}

			w.WriteHeader(http.StatusCreated)
			return
		}

		ctx, span := tracer.Start(r.Context(), "create-item")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID := chi.URLParam(r, "collectionId")
		if collectionID == "" {
			logger.Error("no collection id parameter found in request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("could not read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		err = a.AddFeature(ctx, collectionID, b)
		if err != nil && errors.Is(err, app.ErrAlreadyExists) {
			w.WriteHeader(http.StatusConflict)
			return
		}
		if err != nil {
			logger.Error("could not create feature", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func deleteItemHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-item")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID := chi.URLParam(r, "collectionId")
		featureID := chi.URLParam(r, "id")
		if collectionID == "" || featureID == "" {
			logger.Error("no collection id or feature id parameter found in request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		tenants := auth.GetAllowedTenantsFromContext(ctx)

		err = a.DeleteFeature(ctx, collectionID, featureID, tenants)
		if err != nil {
			if errors.Is(err, app.ErrFeatureNotFound) {
				logger.Debug("feature not found", "id", featureID)
				w.WriteHeader(http.StatusNotFound)
				return
			}

			logger.Error("could not delete feature", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func requestedFormat(r *http.Request) (string, bool) {
	if f := r.URL.Query().Get("f"); f != "" && f != "json" && f != "geojson" {
		return f, true
	}

	if strings.Contains(r.Header.Get("Accept"), "text/csv") {
		return formatter.FormatCSV, true
	}

	return "", false
}

func isMultipartFormData(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	return strings.Contains(contentType, "multipart/form-data")
}
