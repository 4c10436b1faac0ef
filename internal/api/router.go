package api

import (
	"github.com/gorilla/mux"
	"github.com/haagahelia/hidb-back/internal/metrics"
	"github.com/haagahelia/hidb-back/internal/service"
	"github.com/haagahelia/hidb-back/internal/stats"
	"github.com/haagahelia/hidb-back/internal/validation"
	"go.uber.org/zap"
)

// NewRouter creates the HTTP router. Every /api route goes through
// validator → service → envelope; the id routes additionally pass the
// validation gate before the handler runs.
func NewRouter(
	svc service.CatalogService,
	statsCollector *stats.Collector,
	metricsRegistry *metrics.Registry,
	logger *zap.Logger,
	exposeErrors bool,
) *mux.Router {
	handler := NewHandler(svc, logger, exposeErrors)
	statsHandler := NewStatsHandler(statsCollector)

	router := mux.NewRouter()
	router.Use(RequestLogging(logger))
	router.Use(metricsRegistry.Instrument())

	router.HandleFunc("/", handler.Index).Methods("GET")
	router.HandleFunc("/hello", handler.Hello).Methods("GET")
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.Handle("/metrics", metricsRegistry.Handler()).Methods("GET")
	router.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/aircraft", handler.ListAircraft).Methods("GET")
	api.HandleFunc("/aircraft/{id}",
		validation.Gate(handler.GetAircraft, validation.IDParam("id"))).Methods("GET")
	api.HandleFunc("/organizations", handler.ListOrganizations).Methods("GET")
	api.HandleFunc("/organizations/{id}",
		validation.Gate(handler.GetOrganization, validation.IDParam("id"))).Methods("GET")
	api.HandleFunc("/media", handler.ListMedia).Methods("GET")
	api.HandleFunc("/media/{id}",
		validation.Gate(handler.GetMedia, validation.IDParam("id"))).Methods("GET")

	return router
}
