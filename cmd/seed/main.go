package main

import (
	"context"
	"log/slog"
	"os"

	"staybook-server/cmd/config"
	"staybook-server/internal/infra/sql"
	"staybook-server/internal/schema_plane/persistence"
	"staybook-server/internal/schema_plane/usecases"
)

var logLevelMapping = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// seed migrates the schema tables and registers the reserved field types.
// It is safe to run repeatedly.
func main() {
	cfg := config.LoadConfig()

	level := logLevelMapping[cfg.General.LogLevel]
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level})),
	)
	slog.Info("seed starting")

	orm, err := openORM(cfg.Database)
	if err != nil {
		slog.Error("opening database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fieldTypes, err := persistence.NewFieldTypeRepository(orm)
	if err != nil {
		slog.Error("initializing field type repository", slog.String("error", err.Error()))
		os.Exit(1)
	}

	definitions, err := persistence.NewFieldDefinitionRepository(orm)
	if err != nil {
		slog.Error("initializing field definition repository", slog.String("error", err.Error()))
		os.Exit(1)
	}

	service := usecases.NewFieldTypeService(fieldTypes, definitions)

	ctx := context.Background()
	if err := service.SeedReservedTypes(ctx); err != nil {
		slog.Error("seeding reserved field types", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The audit trail is host-owned; this host records the seeding run.
	var audit usecases.AuditSink = usecases.SlogAuditSink{}
	audit.Record(ctx, usecases.AuditEntry{
		EntityType: "field_type",
		Action:     "seed_reserved",
	})

	slog.Info("seed finished")
}

func openORM(cfg config.DatabaseConfig) (sql.ORM, error) {
	if cfg.Driver == "postgres" {
		// Wait until postgres accepts connections before handing the DSN to
		// the ORM; gorm.Open gives up on the first refusal.
		var pool sql.Database = sql.NewPosgreDatabase(cfg.URL)
		if err := pool.Open(); err != nil {
			return nil, err
		}
		defer pool.Close()

		if err := pool.Command("SELECT 1"); err != nil {
			return nil, err
		}

		orm, err := sql.NewPosgreORM(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return orm, nil
	}

	return sql.NewMemoryORM()
}
