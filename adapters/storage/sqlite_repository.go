package storage

import (
	"context"
	"errors"
	"path/filepath"

	"xiwal/domain"
	"xiwal/ports"
	schemestore "xiwal/storage"
)

// SQLiteRepository implements ports.SchemeRepository by wrapping storage.Store
type SQLiteRepository struct {
	store *schemestore.Store
}

// Verify interface compliance at compile time
var _ ports.SchemeRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	store, err := schemestore.NewStore(dbPath)
	if err != nil {
		return nil, err
	}
	return &SQLiteRepository{store: store}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository for a specific XIWAL_HOME path
func NewSQLiteRepositoryForPath(xiwalHomePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(xiwalHomePath, "cache.db"))
}

// Close closes the underlying store
func (r *SQLiteRepository) Close() error {
	return r.store.Close()
}

// Get implements SchemeReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, key string) (*domain.SchemeEntry, error) {
	info, err := r.store.GetByKey(ctx, key)
	if err != nil {
		return nil, translateError(err)
	}
	entry := schemeInfoToDomain(*info)
	return &entry, nil
}

// GetByID implements SchemeReader.GetByID
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*domain.SchemeEntry, error) {
	info, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	entry := schemeInfoToDomain(*info)
	return &entry, nil
}

// Latest implements SchemeReader.Latest
func (r *SQLiteRepository) Latest(ctx context.Context) (*domain.SchemeEntry, error) {
	info, err := r.store.Latest(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	entry := schemeInfoToDomain(*info)
	return &entry, nil
}

// List implements SchemeReader.List
func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]domain.SchemeEntry, error) {
	infos, err := r.store.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.SchemeEntry, len(infos))
	for i, info := range infos {
		entries[i] = schemeInfoToDomain(info)
	}
	return entries, nil
}

// Put implements SchemeWriter.Put
func (r *SQLiteRepository) Put(ctx context.Context, entry domain.SchemeEntry) (*domain.SchemeEntry, error) {
	info, err := r.store.Put(ctx, domainToSchemeInfo(entry))
	if err != nil {
		return nil, err
	}
	saved := schemeInfoToDomain(*info)
	return &saved, nil
}

// Delete implements SchemeWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return translateError(r.store.Delete(ctx, id))
}

// Clear implements SchemeWriter.Clear
func (r *SQLiteRepository) Clear(ctx context.Context) (int64, error) {
	return r.store.Clear(ctx)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, schemestore.ErrNotFound):
		return domain.ErrSchemeNotFound
	case errors.Is(err, schemestore.ErrAmbiguousID):
		return domain.ErrAmbiguousID
	default:
		return err
	}
}
