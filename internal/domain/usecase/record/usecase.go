package record

import (
	"context"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

type UseCase interface {
	// List returns every stored document, oldest first
	List(ctx context.Context) ([]entity.WeatherDocument, error)

	// Search returns the merged, deduplicated and day-filtered groups of documents matching criteria
	Search(ctx context.Context, criteria model.SearchCriteria) ([]entity.MergedRecordGroup, error)

	// CreateCustom stores a manually entered single entry document
	CreateCustom(ctx context.Context, dto model.CreateCustomRecordDTO) (*entity.WeatherDocument, error)

	// UpdateEntry overwrites one or more fields of the entry at dto.Timestamp in a single write.
	// It returns the updated document and the fields changed, in canonical order.
	UpdateEntry(ctx context.Context, id string, dto model.UpdateEntryDTO) (*entity.WeatherDocument, []string, error)

	// Delete removes a single document
	Delete(ctx context.Context, id string) error

	// DeleteGroup removes every document of a merged group concurrently, without rollback
	DeleteGroup(ctx context.Context, ids []string) (model.DeleteGroupResult, error)

	// PurgeOlderThan removes documents created more than maxAge ago; zero maxAge is a no-op
	PurgeOlderThan(ctx context.Context, maxAge time.Duration) (int64, error)
}
