package export

import (
	"context"
)

// File is a rendered export
type File struct {
	ContentType string
	Filename    string
	Data        []byte
}

type UseCase interface {
	// Export renders every stored document as json, csv or pdf
	Export(ctx context.Context, format string) (*File, error)
}
