package record

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/model"
	"weather-api/pkg/log"
	"weather-api/pkg/metrics"
	"weather-api/pkg/msg"

	"go.uber.org/zap"
)

const (
	customCod         = "200"
	customDescription = "custom"
	customIcon        = "01d"
)

type recordUseCase struct {
	dbGateway db.WeatherDocumentGateway
	now       func() time.Time
}

func NewRecordUseCase(dbGateway db.WeatherDocumentGateway) UseCase {
	return &recordUseCase{
		dbGateway: dbGateway,
		now:       time.Now,
	}
}

// List returns every stored document, oldest first
func (uc *recordUseCase) List(ctx context.Context) ([]entity.WeatherDocument, error) {
	documents, err := uc.dbGateway.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list weather documents: %w", err)
	}
	return documents, nil
}

// Search returns the merged groups of documents matching criteria
func (uc *recordUseCase) Search(ctx context.Context, criteria model.SearchCriteria) ([]entity.MergedRecordGroup, error) {
	criteria.Location = strings.TrimSpace(criteria.Location)
	if criteria.Location == "" || criteria.Start.IsZero() || criteria.End.IsZero() {
		return nil, model.NewValidationError(msg.GetMessage("weather.error.missing-search-criteria"))
	}

	documents, err := uc.dbGateway.FindByLocation(ctx, criteria.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to find weather documents by location: %w", err)
	}

	groups := MergeRecords(documents, criteria)
	metrics.MergedGroups.Observe(float64(len(groups)))

	return groups, nil
}

// CreateCustom stores a manually entered single entry document
func (uc *recordUseCase) CreateCustom(ctx context.Context, dto model.CreateCustomRecordDTO) (*entity.WeatherDocument, error) {
	location := strings.TrimSpace(dto.Location)
	if location == "" || strings.TrimSpace(dto.DtTxt) == "" || dto.Temp == nil {
		return nil, model.NewValidationError(msg.GetMessage("weather.error.missing-custom-fields"))
	}

	at, ok := ParseTimestamp(dto.DtTxt)
	if !ok {
		return nil, model.NewValidationError(msg.GetMessage("weather.error.invalid-timestamp", dto.DtTxt))
	}

	entry := entity.ForecastEntry{
		Dt:    at.Unix(),
		DtTxt: dto.DtTxt,
		Main: entity.Main{
			Temp:     *dto.Temp,
			Humidity: valueOrZero(dto.Humidity),
			Pressure: valueOrZero(dto.Pressure),
		},
		Wind:    entity.Wind{Speed: valueOrZero(dto.WindSpeed)},
		Weather: []entity.Condition{{Description: customDescription, Icon: customIcon}},
	}

	document, err := uc.dbGateway.Create(ctx, entity.WeatherDocument{
		Location: location,
		Data: entity.ForecastPayload{
			Cod:  customCod,
			Cnt:  1,
			List: []entity.ForecastEntry{entry},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create custom weather document: %w", err)
	}

	log.Info("Custom weather document created", zap.String("id", document.ID), zap.String("location", location))
	return document, nil
}

// UpdateEntry validates every requested field, then overwrites them and persists once
func (uc *recordUseCase) UpdateEntry(ctx context.Context, id string, dto model.UpdateEntryDTO) (*entity.WeatherDocument, []string, error) {
	values, err := updateValues(dto)
	if err != nil {
		return nil, nil, err
	}
	fields := orderedFields(values)

	for _, field := range fields {
		if !ValidFieldValue(field, values[field]) {
			return nil, nil, model.NewValidationError(msg.GetMessage("weather.error.invalid-field-value", field))
		}
	}

	document, err := uc.dbGateway.FindByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find weather document %s: %w", id, err)
	}
	if document == nil {
		return nil, nil, model.NewNotFoundError(msg.GetMessage("weather.error.record-not-found"))
	}

	entry := document.FindEntry(dto.Timestamp)
	if entry == nil {
		return nil, nil, model.NewNotFoundError(msg.GetMessage("weather.error.timestamp-not-found"))
	}
	applyFields(entry, fields, values)

	updated, err := uc.dbGateway.Update(ctx, *document)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update weather document %s: %w", id, err)
	}
	if updated == nil {
		return nil, nil, model.NewNotFoundError(msg.GetMessage("weather.error.record-not-found"))
	}

	return updated, fields, nil
}

// updateValues merges the field map and the single field shape of dto
func updateValues(dto model.UpdateEntryDTO) (map[string]float64, error) {
	values := make(map[string]float64, len(dto.Values)+1)
	for field, value := range dto.Values {
		values[field] = value
	}

	if dto.UpdateField != "" {
		if dto.NewTemp == nil {
			return nil, model.NewValidationError(msg.GetMessage("weather.error.invalid-field-value", dto.UpdateField))
		}
		values[dto.UpdateField] = *dto.NewTemp
	}

	if len(values) == 0 {
		return nil, model.NewValidationError(msg.GetMessage("weather.error.missing-update-fields"))
	}
	return values, nil
}

// Delete removes a single document
func (uc *recordUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.dbGateway.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete weather document %s: %w", id, err)
	}
	if !found {
		return model.NewNotFoundError(msg.GetMessage("weather.error.record-not-found"))
	}
	return nil
}

// DeleteGroup deletes every id concurrently; a missing document counts as a failure
func (uc *recordUseCase) DeleteGroup(ctx context.Context, ids []string) (model.DeleteGroupResult, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return model.DeleteGroupResult{}, model.NewValidationError(msg.GetMessage("weather.error.missing-ids"))
	}

	errs := make([]error, len(ids))
	var wg sync.WaitGroup

	for i, id := range ids {
		i, id := i, id
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = uc.Delete(ctx, id)
		}()
	}
	wg.Wait()

	result := model.DeleteGroupResult{Deleted: []string{}, Failed: []string{}}
	var failures []error
	for i, id := range ids {
		if errs[i] == nil {
			result.Deleted = append(result.Deleted, id)
			continue
		}
		result.Failed = append(result.Failed, id)
		failures = append(failures, fmt.Errorf("%s: %w", id, errs[i]))
	}

	if len(failures) > 0 {
		metrics.DeleteFailuresTotal.Add(float64(len(failures)))
		joined := errors.Join(failures...)
		log.Error("Group delete finished with failures",
			zap.Strings("deleted", result.Deleted),
			zap.Strings("failed", result.Failed),
			zap.Error(joined))

		return result, &model.GroupDeleteError{
			Message: msg.GetMessage("weather.error.delete-failed", strings.Join(result.Failed, ", ")),
			Result:  result,
			Err:     joined,
		}
	}

	return result, nil
}

// PurgeOlderThan removes documents created more than maxAge ago
func (uc *recordUseCase) PurgeOlderThan(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, nil
	}

	removed, err := uc.dbGateway.DeleteCreatedBefore(ctx, uc.now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("failed to purge weather documents: %w", err)
	}
	return removed, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func valueOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
