package db

import (
	"context"
	"errors"
	"time"

	"weather-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeatherDocumentModel is the GORM mapping of the weather_documents table
type WeatherDocumentModel struct {
	ID        string                 `gorm:"type:uuid;primaryKey"`
	Location  string                 `gorm:"not null"`
	Data      entity.ForecastPayload `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt time.Time              `gorm:"index"`
	UpdatedAt time.Time
}

func (WeatherDocumentModel) TableName() string {
	return "weather_documents"
}

func (m WeatherDocumentModel) toEntity() entity.WeatherDocument {
	return entity.WeatherDocument{
		ID:          m.ID,
		Location:    m.Location,
		Data:        m.Data,
		CreatedDate: m.CreatedAt,
		UpdatedDate: m.UpdatedAt,
	}
}

type GormWeatherDocumentGateway struct {
	DB *gorm.DB
}

var _ WeatherDocumentGateway = (*GormWeatherDocumentGateway)(nil)

func NewGormWeatherDocumentGateway(db *gorm.DB) *GormWeatherDocumentGateway {
	return &GormWeatherDocumentGateway{DB: db}
}

func (gateway *GormWeatherDocumentGateway) List(ctx context.Context) ([]entity.WeatherDocument, error) {
	var models []WeatherDocumentModel
	if err := gateway.DB.WithContext(ctx).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toEntities(models), nil
}

func (gateway *GormWeatherDocumentGateway) FindByLocation(ctx context.Context, part string) ([]entity.WeatherDocument, error) {
	var models []WeatherDocumentModel
	err := gateway.DB.WithContext(ctx).
		Where("location ILIKE ?", containsPattern(part)).
		Order("created_at, id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toEntities(models), nil
}

func (gateway *GormWeatherDocumentGateway) FindByID(ctx context.Context, id string) (*entity.WeatherDocument, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}

	var model WeatherDocumentModel
	err := gateway.DB.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	document := model.toEntity()
	return &document, nil
}

func (gateway *GormWeatherDocumentGateway) Create(ctx context.Context, document entity.WeatherDocument) (*entity.WeatherDocument, error) {
	model := WeatherDocumentModel{
		ID:       uuid.NewString(),
		Location: document.Location,
		Data:     document.Data,
	}
	if err := gateway.DB.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}

	created := model.toEntity()
	return &created, nil
}

func (gateway *GormWeatherDocumentGateway) Update(ctx context.Context, document entity.WeatherDocument) (*entity.WeatherDocument, error) {
	if uuid.Validate(document.ID) != nil {
		return nil, nil
	}

	result := gateway.DB.WithContext(ctx).
		Model(&WeatherDocumentModel{ID: document.ID}).
		Select("location", "data", "updated_at").
		Updates(WeatherDocumentModel{Location: document.Location, Data: document.Data, UpdatedAt: time.Now().UTC()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return gateway.FindByID(ctx, document.ID)
}

func (gateway *GormWeatherDocumentGateway) Delete(ctx context.Context, id string) (bool, error) {
	if uuid.Validate(id) != nil {
		return false, nil
	}

	result := gateway.DB.WithContext(ctx).Delete(&WeatherDocumentModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (gateway *GormWeatherDocumentGateway) DeleteCreatedBefore(ctx context.Context, t time.Time) (int64, error) {
	result := gateway.DB.WithContext(ctx).Where("created_at < ?", t).Delete(&WeatherDocumentModel{})
	return result.RowsAffected, result.Error
}

func toEntities(models []WeatherDocumentModel) []entity.WeatherDocument {
	documents := make([]entity.WeatherDocument, 0, len(models))
	for _, model := range models {
		documents = append(documents, model.toEntity())
	}
	return documents
}
