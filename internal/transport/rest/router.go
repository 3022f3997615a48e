package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/lmoreira/requerimento-service/internal/dimension"
	"github.com/lmoreira/requerimento-service/internal/requerimento"
	"github.com/lmoreira/requerimento-service/internal/transport/middleware"
	"github.com/lmoreira/requerimento-service/internal/transport/swagger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Users             *dimension.UserHandler
	UOs               *dimension.LookupHandler
	Cargos            *dimension.CargoHandler
	LocaisAtividade   *dimension.LookupHandler
	RegimesTrabalho   *dimension.LookupHandler
	TiposRequerimento *dimension.LookupHandler
	Riscos            *dimension.RiscoHandler
	Requerimentos     *requerimento.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec at root, UI under /swagger
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/users", handlers.Users.RegisterRoutes)
		r.Route("/uos", handlers.UOs.RegisterRoutes)
		r.Route("/cargos", handlers.Cargos.RegisterRoutes)
		r.Route("/locais-atividade", handlers.LocaisAtividade.RegisterRoutes)
		r.Route("/regimes-trabalho", handlers.RegimesTrabalho.RegisterRoutes)
		r.Route("/tipos-requerimento", handlers.TiposRequerimento.RegisterRoutes)
		r.Route("/riscos", handlers.Riscos.RegisterRoutes)
		r.Route("/requerimentos", handlers.Requerimentos.RegisterRoutes)
	})
}
