package cmd

import (
	"context"
	"log"

	"github.com/lmoreira/requerimento-service/internal/refdata"
	"github.com/lmoreira/requerimento-service/pkg/logger"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files under db/migrations directory",
	}
	migrateDir string
)

func init() {
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "db/migrations", "sql migrations directory")
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.Database.Source)
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v\n", err)
	}
	goose.SetTableName("schema_migrations")

	if err := goose.RunContext(ctx, "up", db, migrateDir); err != nil {
		log.Fatalf("goose up: %v", err)
	}

	// With the dimension schema in place, merge the reference catalogs. A
	// sync failure must not fail the migration itself.
	sqlxDB, err := initDB(cfg.Database)
	if err != nil {
		log.Fatalf("failed to reconnect for dimension sync: %v", err)
	}
	defer sqlxDB.Close()

	gormDB, err := initGorm(sqlxDB)
	if err != nil {
		log.Fatalf("failed to initialize gorm for dimension sync: %v", err)
	}

	syncer := refdata.NewSyncer(gormDB, cfg.RefData, logger.L())
	if err := syncer.Run(); err != nil {
		logger.L().Warn("dimension sync failed after migration", "error", err)
	}

	return nil
}
