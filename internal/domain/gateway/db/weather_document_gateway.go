package db

import (
	"context"
	"strings"
	"time"

	"weather-api/internal/domain/entity"
)

// WeatherDocumentGateway persists weather documents.
// Lookups of a missing id return (nil, nil).
type WeatherDocumentGateway interface {
	// List returns every document, oldest first
	List(ctx context.Context) ([]entity.WeatherDocument, error)
	// FindByLocation returns documents whose location contains part, case-insensitive, oldest first
	FindByLocation(ctx context.Context, part string) ([]entity.WeatherDocument, error)
	FindByID(ctx context.Context, id string) (*entity.WeatherDocument, error)
	// Create stores a new document, assigning id and timestamps
	Create(ctx context.Context, document entity.WeatherDocument) (*entity.WeatherDocument, error)
	// Update overwrites location and data of an existing document in a single write
	Update(ctx context.Context, document entity.WeatherDocument) (*entity.WeatherDocument, error)
	// Delete removes a document, found is false when it did not exist
	Delete(ctx context.Context, id string) (found bool, err error)
	// DeleteCreatedBefore removes documents created before t and returns how many were removed
	DeleteCreatedBefore(ctx context.Context, t time.Time) (int64, error)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching part literally anywhere
func containsPattern(part string) string {
	return "%" + likeEscaper.Replace(part) + "%"
}
