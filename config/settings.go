package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"xiwal/paths"
	"xiwal/scheme"
)

// Default values for the generate flags, shared with cmd so it can detect
// whether a flag was left at its default
const (
	DefaultColors = 8
	DefaultFormat = "hex"
)

// Settings represents the structure of $XIWAL_HOME/settings.json
type Settings struct {
	Apply       *bool           `json:"apply,omitempty"`
	Colors      *int            `json:"colors,omitempty"`
	DBPath      string          `json:"db_path,omitempty"`
	Debug       *bool           `json:"debug,omitempty"`
	ExtraColors StringArray     `json:"extra_colors,omitempty"`
	Format      string          `json:"format,omitempty"`
	Full256     *bool           `json:"full_256,omitempty"`
	MaxLogFiles *int            `json:"max_log_files,omitempty"`
	Tuning      *TuningSettings `json:"tuning,omitempty"`
	Workers     *int            `json:"workers,omitempty"`
}

// TuningSettings overrides individual scheme.Tuning constants.
// Unset fields keep the calibrated defaults.
type TuningSettings struct {
	ChromaFactor   *float64  `json:"chroma_factor,omitempty"`
	DarkLightness  []float64 `json:"dark_lightness,omitempty"`
	GreyChroma     *float64  `json:"grey_chroma,omitempty"`
	HueOffset      *float64  `json:"hue_offset,omitempty"`
	LightLightness []float64 `json:"light_lightness,omitempty"`
	SignalChroma   *float64  `json:"signal_chroma,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $XIWAL_HOME/settings.json (or ~/.xiwal/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths that start with ~
	if settings.DBPath != "" {
		settings.DBPath = paths.ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// ResolveTuning applies the tuning overrides on top of the defaults and
// validates the result
func (s *Settings) ResolveTuning() (scheme.Tuning, error) {
	tuning := scheme.DefaultTuning()
	if s == nil || s.Tuning == nil {
		return tuning, nil
	}

	t := s.Tuning
	if t.SignalChroma != nil {
		tuning.SignalChroma = *t.SignalChroma
	}
	if t.GreyChroma != nil {
		tuning.GreyChroma = *t.GreyChroma
	}
	if t.ChromaFactor != nil {
		tuning.ChromaFactor = *t.ChromaFactor
	}
	if t.HueOffset != nil {
		tuning.HueOffset = *t.HueOffset
	}
	if t.DarkLightness != nil {
		if len(t.DarkLightness) != len(tuning.DarkLightness) {
			return tuning, fmt.Errorf("%w: dark_lightness needs %d values, got %d",
				scheme.ErrInvalidTuning, len(tuning.DarkLightness), len(t.DarkLightness))
		}
		copy(tuning.DarkLightness[:], t.DarkLightness)
	}
	if t.LightLightness != nil {
		if len(t.LightLightness) != len(tuning.LightLightness) {
			return tuning, fmt.Errorf("%w: light_lightness needs %d values, got %d",
				scheme.ErrInvalidTuning, len(tuning.LightLightness), len(t.LightLightness))
		}
		copy(tuning.LightLightness[:], t.LightLightness)
	}

	if err := tuning.Validate(); err != nil {
		return tuning, err
	}
	return tuning, nil
}
