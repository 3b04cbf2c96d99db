package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"xiwal/domain"
	"xiwal/lch"
	"xiwal/logging"
	"xiwal/ports"
	"xiwal/scheme"
)

// SchemeService handles scheme generation and the scheme cache
type SchemeService struct {
	generator *scheme.Generator
	repo      ports.SchemeRepository
	sampler   ports.ColorSampler
	tuning    scheme.Tuning
}

// NewSchemeService creates a new SchemeService. sampler may be nil when no
// image sampler is installed; generating from an image then fails.
func NewSchemeService(
	repo ports.SchemeRepository,
	sampler ports.ColorSampler,
	tuning scheme.Tuning,
) (*SchemeService, error) {
	generator, err := scheme.NewGenerator(tuning)
	if err != nil {
		return nil, err
	}
	return &SchemeService{
		generator: generator,
		repo:      repo,
		sampler:   sampler,
		tuning:    tuning,
	}, nil
}

// Generate gathers candidates, then returns the cached scheme for them or
// runs the engine and caches the result
func (s *SchemeService) Generate(ctx context.Context, params GenerateParams) (*GenerateResult, error) {
	logging.Logger.Info("Generating scheme",
		"image", params.Image,
		"sample_count", params.SampleCount,
		"explicit_colors", len(params.Colors),
		"full", params.Full,
		"no_cache", params.NoCache)

	source := domain.SourceColors
	var candidates []string

	if params.Image != "" {
		if s.sampler == nil {
			return nil, domain.ErrSamplerNotFound
		}
		sampled, err := s.sampler.Sample(ctx, params.Image, params.SampleCount)
		if err != nil {
			return nil, fmt.Errorf("failed to sample image: %w", err)
		}
		logging.Logger.Debug("Sampled image", "image", params.Image, "colors", sampled)
		candidates = append(candidates, sampled...)

		source = params.Image
		if abs, err := filepath.Abs(params.Image); err == nil {
			source = abs
		}
	}
	candidates = append(candidates, params.Colors...)

	inputs, err := normalizeColors(candidates)
	if err != nil {
		return nil, err
	}
	if len(inputs) < scheme.SlotCount {
		return nil, fmt.Errorf("%w: got %d", scheme.ErrTooFewColors, len(inputs))
	}

	key, err := s.cacheKey(inputs, params.Full)
	if err != nil {
		return nil, err
	}

	if !params.NoCache {
		if entry := s.lookup(ctx, key); entry != nil {
			return &GenerateResult{Cached: true, Entry: entry, Key: key}, nil
		}
	}

	generated, err := s.generator.Generate(ctx, inputs, scheme.Options{
		Full:    params.Full,
		Workers: params.Workers,
	})
	if err != nil {
		return nil, err
	}

	entry := &domain.SchemeEntry{
		Colors: generated.Colors,
		Full:   generated.Full,
		Inputs: inputs,
		Key:    key,
		Score:  generated.Selection.Score,
		Source: source,
	}

	if !params.NoCache {
		saved, err := s.repo.Put(ctx, *entry)
		if err != nil {
			// The scheme is still usable without the cache
			logging.Logger.Warn("Failed to cache scheme", "key", key, "error", err)
		} else {
			entry = saved
		}
	}

	logging.Logger.Info("Scheme generated", "key", key, "score", entry.Score, "id", entry.ID)
	return &GenerateResult{Entry: entry, Key: key}, nil
}

// lookup returns the cached entry for key, touching it so it becomes the
// latest. Cache failures are logged and treated as a miss.
func (s *SchemeService) lookup(ctx context.Context, key string) *domain.SchemeEntry {
	entry, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrSchemeNotFound) {
			logging.Logger.Warn("Failed to read scheme cache", "key", key, "error", err)
		}
		return nil
	}

	logging.Logger.Info("Scheme cache hit", "key", key, "id", entry.ID)
	touched, err := s.repo.Put(ctx, *entry)
	if err != nil {
		logging.Logger.Warn("Failed to touch cached scheme", "id", entry.ID, "error", err)
		return entry
	}
	return touched
}

// cacheKey digests everything that determines the generated colors
func (s *SchemeService) cacheKey(inputs []string, full bool) (string, error) {
	tuning, err := json.Marshal(s.tuning)
	if err != nil {
		return "", fmt.Errorf("failed to encode tuning: %w", err)
	}

	h := sha256.New()
	fmt.Fprintf(h, "inputs=%s\n", strings.Join(inputs, ","))
	fmt.Fprintf(h, "full=%t\n", full)
	fmt.Fprintf(h, "tuning=%s\n", tuning)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// normalizeColors rewrites every candidate as lowercase #rrggbb
func normalizeColors(colors []string) ([]string, error) {
	normalized := make([]string, len(colors))
	for i, c := range colors {
		rgb, err := lch.ParseHex(strings.TrimSpace(c))
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		normalized[i] = lch.FormatHex(rgb)
	}
	return normalized, nil
}

// Restore returns the most recently generated or used scheme
func (s *SchemeService) Restore(ctx context.Context) (*domain.SchemeEntry, error) {
	entry, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore scheme: %w", err)
	}
	return entry, nil
}

// ListSchemes returns cached schemes, most recent first
func (s *SchemeService) ListSchemes(ctx context.Context, limit int) ([]domain.SchemeEntry, error) {
	return s.repo.List(ctx, limit)
}

// GetScheme returns the cached scheme whose id starts with idPrefix
func (s *SchemeService) GetScheme(ctx context.Context, idPrefix string) (*domain.SchemeEntry, error) {
	return s.repo.GetByID(ctx, idPrefix)
}

// DeleteScheme removes the cached scheme whose id starts with idPrefix and
// returns it
func (s *SchemeService) DeleteScheme(ctx context.Context, idPrefix string) (*domain.SchemeEntry, error) {
	entry, err := s.repo.GetByID(ctx, idPrefix)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Deleting cached scheme", "id", entry.ID)
	if err := s.repo.Delete(ctx, entry.ID); err != nil {
		return nil, fmt.Errorf("failed to delete scheme: %w", err)
	}
	return entry, nil
}

// ClearCache removes every cached scheme
func (s *SchemeService) ClearCache(ctx context.Context) (int64, error) {
	removed, err := s.repo.Clear(ctx)
	if err != nil {
		return 0, err
	}
	logging.Logger.Info("Cleared scheme cache", "removed", removed)
	return removed, nil
}
