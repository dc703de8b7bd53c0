package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"afropulse/buzz"
	"afropulse/config"
	fs "afropulse/firestore"
	"afropulse/handlers"
	"afropulse/sources"
	spot "afropulse/spotify"
)

func main() {
	fx.New(
		fx.Provide(
			config.Options,
			fs.Options,
			spot.Options,
			ProvideLogger,
			fs.NewStore,
			ProvideSources,
			ProvidePipeline,
			handlers.NewHandler,
			NewRouter,
		),
		fx.Invoke(StartServer),
	).Run()
}

func ProvideLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	return logger.Sugar()
}

// ProvideSources assembles the adapter set. The catalog adapters are always
// on; the mention endpoints only when configured.
func ProvideSources(cfg config.Config, sp *spot.SpotifyClient) []sources.Source {
	srcs := []sources.Source{
		sources.NewCatalog(sp),
		sources.NewAfroCharts(cfg.ChartsURL),
	}
	if cfg.SocialBuzzURL != "" {
		srcs = append(srcs, sources.NewSocial(cfg.SocialBuzzURL))
	}
	if cfg.WebBuzzURL != "" {
		srcs = append(srcs, sources.NewWebPress(cfg.WebBuzzURL))
	}

	var press []string
	for _, site := range strings.Split(cfg.PressSites, ",") {
		if site = strings.TrimSpace(site); site != "" {
			press = append(press, site)
		}
	}
	srcs = append(srcs, sources.NewPressScan(press))

	return srcs
}

func ProvidePipeline(cfg config.Config, srcs []sources.Source, store *fs.Store, logger *zap.SugaredLogger) (*buzz.Pipeline, error) {
	return buzz.NewPipeline(srcs, store, cfg.MaxResults, cfg.AdapterTimeout, logger)
}

func NewRouter(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/buzz", h.HandleBuzz).Methods("GET")
	r.HandleFunc("/digest/run", h.HandleDigestRun).Methods("POST")
	r.HandleFunc("/subscribers", h.HandleSubscribe).Methods("POST")
	r.HandleFunc("/subscribers", h.HandleListSubscribers).Methods("GET")
	r.HandleFunc("/admin/cleanup", h.HandleCleanup).Methods("POST")

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API is running"))
	})
	return r
}

func StartServer(lifecycle fx.Lifecycle, router *mux.Router, logger *zap.SugaredLogger) {
	server := &http.Server{
		Addr:    ":8080",
		Handler: router,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				logger.Infow("Starting server", "addr", server.Addr)
				if err := server.ListenAndServe(); err != nil {
					logger.Errorw("Server failed", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
