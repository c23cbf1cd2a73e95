// Package server exposes the GraphQL API over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/prakasham-tecinyaw/serverless-api/internal/cache"
	"github.com/prakasham-tecinyaw/serverless-api/internal/config"
	"github.com/prakasham-tecinyaw/serverless-api/internal/graph"
	"github.com/prakasham-tecinyaw/serverless-api/internal/loaders"
	"github.com/prakasham-tecinyaw/serverless-api/internal/obs"
	"github.com/prakasham-tecinyaw/serverless-api/internal/resolvers"
	"github.com/prakasham-tecinyaw/serverless-api/internal/store"
)

// New builds the store described by cfg and returns the full handler chain.
func New(cfg config.Config, log *zap.Logger, reg *prometheus.Registry) (http.Handler, error) {
	st := store.New()
	if cfg.SeedData {
		st = store.Seeded()
	}
	return NewRouter(cfg, st, log, reg)
}

// NewRouter mounts the GraphQL endpoint, the health probe and the metrics
// endpoint over st.
func NewRouter(cfg config.Config, st resolvers.Store, log *zap.Logger, reg *prometheus.Registry) (http.Handler, error) {
	schema, err := graph.NewResolver(st).Schema()
	if err != nil {
		return nil, errors.Wrap(err, "build schema")
	}

	gql := &GraphQLHandler{
		Schema:       schema,
		Queries:      cache.New(cfg.APQTTL),
		Metrics:      obs.NewMetrics(reg),
		Log:          log,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}
	if cfg.Playground {
		gql.Explorer = explorer(cfg.GraphQLPath)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", healthHandler(time.Now()))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle(cfg.GraphQLPath, loaders.Middleware(st, cfg.LoaderWait)(gql))

	return WithRequestID(WithLogging(log, WithCORS(mux))), nil
}

func healthHandler(started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":         "ok",
			"uptime_seconds": int64(time.Since(started).Seconds()),
		})
	}
}
