package sqlc

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"weather-api/pkg/resource"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

// Connect opens the lib/pq pool described by app.db and creates the schema when missing
func Connect(ctx context.Context) (*sql.DB, error) {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schemaName := resource.GetString("app.db.schema")
	sslMode := "disable"

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		host, port, username, password, database, sslMode, schemaName)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}
