package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/diwise/api-features/internal/app/api"
	app "github.com/diwise/api-features/internal/app/features"

	"github.com/diwise/api-features/internal/pkg/storage"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
)

const serviceName string = "api-features"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx, log, cleanup := o11y.Init(ctx, serviceName, serviceVersion)
	defer cleanup()

	var opa, cf, fp string

	flag.StringVar(&opa, "policies", "/opt/diwise/config/authz.rego", "An authorization policy file")
	flag.StringVar(&cf, "collections", "/opt/diwise/config/collections.yaml", "A file with collection configuration")
	flag.StringVar(&fp, "features", "/opt/diwise/config/features.csv", "A file with features")
	flag.Parse()

	s, err := storage.New(ctx, storage.LoadConfiguration(ctx))
	if err != nil {
		log.Error("could not configure storage", "err", err.Error())
		os.Exit(1)
	}

	config := messaging.LoadConfiguration(ctx, serviceName, log)
	messenger, err := messaging.Initialize(ctx, config)
	if err != nil {
		log.Error("failed to init messenger")
		os.Exit(1)
	}

	a := app.New(s, s, messenger)

	err = loadConfig(ctx, cf, a)
	if err != nil {
		log.Error("file with collections found but could not load configuration", "err", err.Error())
		os.Exit(1)
	}

	r, err := newRouter(ctx, opa, a)
	if err != nil {
		log.Error("could not setup router", "err", err.Error())
		os.Exit(1)
	}

	err = seed(ctx, fp, a)
	if err != nil {
		log.Error("file with features found but could not seed data", "err", err.Error())
		os.Exit(1)
	}

	messenger.Start()
	messenger.RegisterTopicMessageHandler("thing.updated", app.NewThingUpdatedHandler(a))
	messenger.RegisterTopicMessageHandler("message.accepted", app.NewMeasurementsHandler(a))

	webServer := &http.Server{Addr: ":8080", Handler: r}

	go func() {
		if err := webServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("could not listen and serve", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	webServer.Shutdown(ctx)
	messenger.Close()
	s.Close()
}

func newRouter(ctx context.Context, opa string, a app.FeaturesApp) (*chi.Mux, error) {
	policies, err := os.Open(opa)
	if err != nil {
		return nil, fmt.Errorf("unable to open opa policy file: %s", err.Error())
	}
	defer policies.Close()

	return api.Register(ctx, a, policies)
}

func loadConfig(ctx context.Context, fp string, a app.FeaturesApp) error {
	log := logging.GetFromContext(ctx)

	cfg, err := os.Open(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no file with collection configuration found", "path", fp)
			return nil
		}
		return err
	}
	defer cfg.Close()

	return a.LoadConfig(ctx, cfg)
}

func seed(ctx context.Context, fp string, a app.FeaturesApp) error {
	log := logging.GetFromContext(ctx)

	features, err := os.Open(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no file with features found", "path", fp)
			return nil
		}
		return err
	}
	defer features.Close()

	return a.Seed(ctx, features)
}
