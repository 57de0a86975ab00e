package db

import (
	"context"

	"weather-api/internal/domain/model"

	"gorm.io/gorm"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return downStatus(err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return downStatus(err)
	}

	var documents int64
	if err = gateway.DB.WithContext(ctx).Model(&WeatherDocumentModel{}).Count(&documents).Error; err != nil {
		return downStatus(err)
	}
	return upStatus("gorm", documents)
}
