package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"xiwal/config"
	"xiwal/logging"
	"xiwal/paths"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DBPath      string           `help:"Path to the scheme cache database (default: $XIWAL_HOME/cache.db)" type:"path" env:"XIWAL_DB_PATH"`

	Generate GenerateCmd `cmd:"" help:"Generate a color scheme (default)" default:"withargs"`
	Restore  RestoreCmd  `cmd:"restore" help:"Print or re-apply the most recent scheme"`
	Cache    CacheCmd    `cmd:"cache" help:"Manage cached schemes (list, show, del, clear)"`
	Info     VersionCmd  `cmd:"" name:"version" help:"Show version information"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		// Apply DBPath setting (env is already folded into the flag by kong)
		if c.DBPath == "" && c.settings.DBPath != "" {
			c.DBPath = c.settings.DBPath
		}

		// Apply MaxLogFiles setting
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("XIWAL_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("XIWAL_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}
	if c.DBPath == "" {
		c.DBPath = paths.GetDBPath()
	}
	c.DBPath = paths.ExpandPath(c.DBPath)

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so the GORM logger and
	// any child process see the same debug settings
	if c.Debug || c.DebugFile != "" {
		os.Setenv("XIWAL_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("XIWAL_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("XIWAL_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	tuning, err := c.settings.ResolveTuning()
	if err != nil {
		return fmt.Errorf("invalid tuning in settings: %w", err)
	}

	// Create container AFTER logging is initialized so GORM logs go to the right place
	container, err := NewContainer(c.DBPath, tuning)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	kctx.Bind(container)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
