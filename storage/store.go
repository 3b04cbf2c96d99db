package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"xiwal/logging"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound is returned when no scheme matches the lookup
	ErrNotFound = errors.New("scheme not found")
	// ErrAmbiguousID is returned when an id prefix matches more than one scheme
	ErrAmbiguousID = errors.New("ambiguous scheme id")
)

// gormLogger wraps the xiwal logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

// LogMode sets the log level
func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

// Info logs info messages
func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

// Warn logs warn messages
func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

// Error logs error messages
func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

// Trace logs SQL queries - only in debug mode
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

// newGormLogger creates a GORM logger that respects xiwal's debug settings
func newGormLogger() logger.Interface {
	// Set by cmd/root.go when --debug is used
	if os.Getenv("XIWAL_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// Store provides ACID access to the scheme cache
type Store struct {
	db *gorm.DB
}

// NewStore creates a new storage instance with WAL mode enabled
func NewStore(dbPath string) (*Store, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode so a running generate never blocks restore
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000") // 5 second timeout
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&Scheme{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate Scheme schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &Store{db: db}, nil
}

// GetByKey returns the scheme cached under the input digest
func (s *Store) GetByKey(ctx context.Context, key string) (*SchemeInfo, error) {
	var row Scheme
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("cache_key = ?", key).First(&row).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load scheme: %w", err)
	}
	return convertToSchemeInfo(row)
}

// GetByID returns the scheme whose id starts with the given prefix
func (s *Store) GetByID(ctx context.Context, id string) (*SchemeInfo, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	var rows []Scheme
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Where(`id LIKE ? ESCAPE '\'`, escapeLike(id)+"%").
			Order("id ASC").
			Limit(2).
			Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheme: %w", err)
	}

	switch len(rows) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return convertToSchemeInfo(rows[0])
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
	}
}

// Put stores a scheme, replacing any entry with the same key.
// A new entry gets a fresh id; a replaced one keeps its id and creation time.
func (s *Store) Put(ctx context.Context, info SchemeInfo) (*SchemeInfo, error) {
	row, err := convertFromSchemeInfo(info)
	if err != nil {
		return nil, err
	}

	err = withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing Scheme
			err := tx.Where("cache_key = ?", row.Key).First(&existing).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				if row.ID == "" {
					row.ID = uuid.New().String()
				}
				return tx.Create(&row).Error
			}
			if err != nil {
				return fmt.Errorf("failed to load scheme: %w", err)
			}

			row.ID = existing.ID
			row.CreatedAt = existing.CreatedAt
			return tx.Save(&row).Error
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to save scheme: %w", err)
	}

	return convertToSchemeInfo(row)
}

// Latest returns the most recently stored scheme
func (s *Store) Latest(ctx context.Context) (*SchemeInfo, error) {
	var row Scheme
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Order("updated_at DESC, created_at DESC").First(&row).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load latest scheme: %w", err)
	}
	return convertToSchemeInfo(row)
}

// List returns cached schemes, most recent first. A limit of zero or less
// returns all of them.
func (s *Store) List(ctx context.Context, limit int) ([]SchemeInfo, error) {
	var rows []Scheme
	err := withRetry(func() error {
		query := s.db.WithContext(ctx).Order("updated_at DESC, created_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list schemes: %w", err)
	}

	infos := make([]SchemeInfo, 0, len(rows))
	for _, row := range rows {
		info, err := convertToSchemeInfo(row)
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}
	return infos, nil
}

// Delete removes a scheme by its full id
func (s *Store) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Scheme{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}, 3)
}

// Clear removes every cached scheme and returns how many were removed
func (s *Store) Clear(ctx context.Context) (int64, error) {
	var removed int64
	err := withRetry(func() error {
		result := s.db.WithContext(ctx).Where("1 = 1").Delete(&Scheme{})
		removed = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return 0, fmt.Errorf("failed to clear schemes: %w", err)
	}
	return removed, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

// escapeLike makes LIKE treat the wildcard characters of s literally
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func convertToSchemeInfo(row Scheme) (*SchemeInfo, error) {
	var inputs, colors []string
	if err := json.Unmarshal([]byte(row.Inputs), &inputs); err != nil {
		return nil, fmt.Errorf("corrupt inputs for scheme %s: %w", row.ID, err)
	}
	if err := json.Unmarshal([]byte(row.Colors), &colors); err != nil {
		return nil, fmt.Errorf("corrupt colors for scheme %s: %w", row.ID, err)
	}

	return &SchemeInfo{
		ID:        row.ID,
		Key:       row.Key,
		Source:    row.Source,
		Inputs:    inputs,
		Colors:    colors,
		Full:      row.Full,
		Score:     row.Score,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func convertFromSchemeInfo(info SchemeInfo) (Scheme, error) {
	if info.Key == "" {
		return Scheme{}, errors.New("scheme key is required")
	}

	inputs, err := json.Marshal(nonNil(info.Inputs))
	if err != nil {
		return Scheme{}, fmt.Errorf("failed to encode inputs: %w", err)
	}
	colors, err := json.Marshal(nonNil(info.Colors))
	if err != nil {
		return Scheme{}, fmt.Errorf("failed to encode colors: %w", err)
	}

	return Scheme{
		ID:        info.ID,
		Key:       info.Key,
		Source:    info.Source,
		Inputs:    string(inputs),
		Colors:    string(colors),
		Full:      info.Full,
		Score:     info.Score,
		CreatedAt: info.CreatedAt,
		UpdatedAt: info.UpdatedAt,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
