package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/config"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/store"
	"github.com/hance08/caja/internal/utils"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Owner   auth.Resolver
	Logger  *pterm.Logger
}

// NewApp initialize config, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger := pterm.DefaultLogger.
		WithLevel(ParseLogLevel(cfg.Log.Level)).
		WithWriter(os.Stderr)

	if err := utils.SetLocale(cfg.Defaults.Locale); err != nil {
		logger.Warn("falling back to default number format", logger.Args("error", err))
	}

	dbPath, err := ResolveDBPath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Debug("database ready", logger.Args("path", dbPath))

	svc := service.NewService(dbStore, cfg, logger)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logger.Error("closing database", logger.Args("error", err))
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Owner:   auth.NewStaticResolver(cfg.Owner),
		Logger:  logger,
	}, cleanup, nil
}

// ResolveDBPath expands the configured path or falls back to the app data dir.
func ResolveDBPath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return ExpandPath(cfg.Database.Path)
	}

	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, "caja.db"), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".caja"), nil
	}

	return filepath.Join(configDir, "caja"), nil
}

func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// ParseLogLevel maps the log.level setting onto pterm. Unknown values warn.
func ParseLogLevel(level string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "error":
		return pterm.LogLevelError
	case "off", "disabled", "none":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelWarn
	}
}
