package ports

import (
	"context"

	"xiwal/domain"
)

// SchemeReader reads cached schemes
type SchemeReader interface {
	Get(ctx context.Context, key string) (*domain.SchemeEntry, error)
	GetByID(ctx context.Context, id string) (*domain.SchemeEntry, error)
	Latest(ctx context.Context) (*domain.SchemeEntry, error)
	List(ctx context.Context, limit int) ([]domain.SchemeEntry, error)
}

// SchemeWriter stores and removes cached schemes
type SchemeWriter interface {
	Clear(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
	Put(ctx context.Context, entry domain.SchemeEntry) (*domain.SchemeEntry, error)
}

// SchemeRepository is the composite interface
type SchemeRepository interface {
	SchemeReader
	SchemeWriter
	Close() error
}
