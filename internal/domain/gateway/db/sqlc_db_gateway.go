package db

import (
	"context"
	"database/sql"

	"weather-api/internal/domain/model"
)

type SQLCHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db}
}

func (gateway *SQLCHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if err := gateway.DB.PingContext(ctx); err != nil {
		return downStatus(err)
	}

	var documents int64
	if err := gateway.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM weather_documents`).Scan(&documents); err != nil {
		return downStatus(err)
	}
	return upStatus("sqlc", documents)
}
