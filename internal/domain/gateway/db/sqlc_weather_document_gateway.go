package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"weather-api/internal/domain/entity"

	"github.com/google/uuid"
)

const documentColumns = `id, location, data, created_at, updated_at`

type SQLCWeatherDocumentGateway struct {
	DB *sql.DB
}

var _ WeatherDocumentGateway = (*SQLCWeatherDocumentGateway)(nil)

func NewSQLCWeatherDocumentGateway(db *sql.DB) *SQLCWeatherDocumentGateway {
	return &SQLCWeatherDocumentGateway{DB: db}
}

func (gateway *SQLCWeatherDocumentGateway) List(ctx context.Context) ([]entity.WeatherDocument, error) {
	return gateway.query(ctx, `
		SELECT `+documentColumns+`
		FROM weather_documents
		ORDER BY created_at, id`)
}

func (gateway *SQLCWeatherDocumentGateway) FindByLocation(ctx context.Context, part string) ([]entity.WeatherDocument, error) {
	return gateway.query(ctx, `
		SELECT `+documentColumns+`
		FROM weather_documents
		WHERE location ILIKE $1
		ORDER BY created_at, id`, containsPattern(part))
}

func (gateway *SQLCWeatherDocumentGateway) FindByID(ctx context.Context, id string) (*entity.WeatherDocument, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}

	row := gateway.DB.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM weather_documents
		WHERE id = $1`, id)

	document, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return document, nil
}

func (gateway *SQLCWeatherDocumentGateway) Create(ctx context.Context, document entity.WeatherDocument) (*entity.WeatherDocument, error) {
	data, err := json.Marshal(document.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode forecast payload: %w", err)
	}

	now := time.Now().UTC()
	document.ID = uuid.NewString()
	document.CreatedDate = now
	document.UpdatedDate = now

	// lib/pq encodes []byte as bytea, jsonb needs the text form
	_, err = gateway.DB.ExecContext(ctx, `
		INSERT INTO weather_documents (`+documentColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		document.ID, document.Location, string(data), document.CreatedDate, document.UpdatedDate)
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (gateway *SQLCWeatherDocumentGateway) Update(ctx context.Context, document entity.WeatherDocument) (*entity.WeatherDocument, error) {
	if uuid.Validate(document.ID) != nil {
		return nil, nil
	}

	data, err := json.Marshal(document.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode forecast payload: %w", err)
	}

	row := gateway.DB.QueryRowContext(ctx, `
		UPDATE weather_documents
		SET location = $2, data = $3, updated_at = $4
		WHERE id = $1
		RETURNING `+documentColumns,
		document.ID, document.Location, string(data), time.Now().UTC())

	updated, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (gateway *SQLCWeatherDocumentGateway) Delete(ctx context.Context, id string) (bool, error) {
	if uuid.Validate(id) != nil {
		return false, nil
	}

	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM weather_documents WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (gateway *SQLCWeatherDocumentGateway) DeleteCreatedBefore(ctx context.Context, t time.Time) (int64, error) {
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM weather_documents WHERE created_at < $1`, t)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (gateway *SQLCWeatherDocumentGateway) query(ctx context.Context, query string, args ...any) (documents []entity.WeatherDocument, err error) {
	rows, err := gateway.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	documents = make([]entity.WeatherDocument, 0)
	for rows.Next() {
		document, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, *document)
	}
	return documents, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*entity.WeatherDocument, error) {
	var document entity.WeatherDocument
	var data []byte

	if err := row.Scan(&document.ID, &document.Location, &data, &document.CreatedDate, &document.UpdatedDate); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &document.Data); err != nil {
		return nil, fmt.Errorf("failed to decode forecast payload of %s: %w", document.ID, err)
	}
	return &document, nil
}
