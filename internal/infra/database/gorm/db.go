package gorm

import (
	"context"
	"fmt"

	"weather-api/internal/domain/gateway/db"
	"weather-api/pkg/resource"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a GORM session described by app.db and migrates the document table
func Connect(ctx context.Context) (*gorm.DB, error) {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	session, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = session.WithContext(ctx).AutoMigrate(&db.WeatherDocumentModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate weather documents: %w", err)
	}

	return session, nil
}
