package database

import (
	"fmt"
	"log"

	"nortetech-site/config"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
)

// EmbeddedPostgres is a local PostgreSQL process used for development.
type EmbeddedPostgres struct {
	db *embeddedpostgres.EmbeddedPostgres
}

// StartEmbedded starts a PostgreSQL process listening on cfg.Port with cfg's
// credentials and database, storing its data under cfg.EmbeddedDataPath.
func StartEmbedded(cfg config.DBConfig) (*EmbeddedPostgres, error) {
	log.Printf("Mode: [Embedded PostgreSQL] - starting on port %d, data in %s", cfg.Port, cfg.EmbeddedDataPath)

	embeddedCfg := embeddedpostgres.DefaultConfig().
		DataPath(cfg.EmbeddedDataPath).
		Port(uint32(cfg.Port)).
		Database(cfg.Name).
		Username(cfg.User).
		Password(cfg.Password)

	db := embeddedpostgres.NewDatabase(embeddedCfg)
	if err := db.Start(); err != nil {
		return nil, fmt.Errorf("failed to start embedded database: %w", err)
	}

	log.Printf("Embedded PostgreSQL process started on port %d", cfg.Port)
	return &EmbeddedPostgres{db: db}, nil
}

// Stop shuts the process down.
func (e *EmbeddedPostgres) Stop() error {
	if e == nil || e.db == nil {
		return nil
	}
	log.Println("Stopping Embedded PostgreSQL process...")
	return e.db.Stop()
}
