package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lmoreira/requerimento-service/internal"
	"github.com/lmoreira/requerimento-service/internal/dimension"
	dimPostgres "github.com/lmoreira/requerimento-service/internal/dimension/postgres"
	"github.com/lmoreira/requerimento-service/internal/refdata"
	"github.com/lmoreira/requerimento-service/internal/requerimento"
	reqPostgres "github.com/lmoreira/requerimento-service/internal/requerimento/postgres"
	"github.com/lmoreira/requerimento-service/internal/transport"
	"github.com/lmoreira/requerimento-service/internal/transport/rest"
	"github.com/lmoreira/requerimento-service/pkg/logger"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	// Reference catalogs are merged before the server accepts traffic. A sync
	// failure is logged and never aborts startup.
	syncer := refdata.NewSyncer(deps.GormDB, deps.Config.RefData, deps.Logger)
	if err := syncer.Run(); err != nil {
		deps.Logger.Warn("dimension sync failed, continuing startup", "error", err)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	base := transport.NewBaseHandler(deps.Logger)
	db := deps.GormDB

	uoRepo := dimPostgres.NewUORepository(db)
	userService := dimension.NewUserService(dimPostgres.NewUserRepository(db), uoRepo, deps.Logger)
	uoService := dimension.NewLookupService("uo", uoRepo, deps.Logger)
	cargoService := dimension.NewCargoService(dimPostgres.NewCargoRepository(db), deps.Logger)
	localService := dimension.NewLookupService("local_atividade", dimPostgres.NewLocalAtividadeRepository(db), deps.Logger)
	regimeService := dimension.NewLookupService("regime_trabalho", dimPostgres.NewRegimeTrabalhoRepository(db), deps.Logger)
	tipoService := dimension.NewLookupService("tipo_requerimento", dimPostgres.NewTipoRequerimentoRepository(db), deps.Logger)
	riscoService := dimension.NewRiscoService(dimPostgres.NewRiscoRepository(db), deps.Logger)

	reqService := requerimento.NewService(
		reqPostgres.NewRequerimentoRepository(db),
		reqPostgres.NewDimensionResolver(db),
		deps.Logger,
	)

	handlers := rest.Handlers{
		Users:             dimension.NewUserHandler(base, userService),
		UOs:               dimension.NewLookupHandler(base, uoService),
		Cargos:            dimension.NewCargoHandler(base, cargoService),
		LocaisAtividade:   dimension.NewLookupHandler(base, localService),
		RegimesTrabalho:   dimension.NewLookupHandler(base, regimeService),
		TiposRequerimento: dimension.NewLookupHandler(base, tipoService),
		Riscos:            dimension.NewRiscoHandler(base, riscoService),
		Requerimentos:     requerimento.NewHandler(base, reqService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers GORM on the already-open pgx connection. TranslateError
// turns constraint failures into gorm sentinel errors the repositories map
// onto the API taxonomy.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
