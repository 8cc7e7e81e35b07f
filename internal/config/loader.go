package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is looked up from the working directory upwards
	ProjectConfigFile = "gohsjoint.yaml"
	// UserConfigDir is relative to the home directory
	UserConfigDir  = ".config/gohsjoint"
	UserConfigFile = "config.yaml"
)

// Loader resolves the fatigue settings for a command run
type Loader struct {
	logger *slog.Logger
}

// NewLoader falls back to slog.Default when logger is nil
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load starts from DefaultConfig and merges, in order, the user file,
// the nearest gohsjoint.yaml and the explicit --config file. Later files
// win field by field. A broken user or project file is logged and
// skipped; a broken explicit file is an error. The merged result must
// pass Validate.
func (l *Loader) Load(explicit string) (*Config, error) {
	cfg := DefaultConfig()

	userPath := l.userConfigPath()
	if user, err := LoadFromFile(userPath); err == nil {
		l.logger.Debug("Loaded user config", slog.String("path", userPath))
		cfg.Merge(user)
	} else if !errors.Is(err, os.ErrNotExist) {
		l.logger.Warn("Failed to load user config", slog.String("path", userPath), slog.String("error", err.Error()))
	}

	if projectPath := l.findProjectConfig(); projectPath != "" {
		if project, err := LoadFromFile(projectPath); err == nil {
			l.logger.Debug("Loaded project config", slog.String("path", projectPath))
			cfg.Merge(project)
		} else {
			l.logger.Warn("Failed to load project config", slog.String("path", projectPath), slog.String("error", err.Error()))
		}
	} else {
		l.logger.Debug("No project config found")
	}

	if explicit != "" {
		override, err := LoadFromFile(explicit)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config", slog.String("path", explicit))
		cfg.Merge(override)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EnsureUserConfig writes the defaults to the user file unless one is
// already there, and returns its path either way
func (l *Loader) EnsureUserConfig() (string, error) {
	path := l.userConfigPath()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := DefaultConfig().SaveToFile(path); err != nil {
		return "", err
	}
	l.logger.Info("Created default user config", slog.String("path", path))
	return path, nil
}

// userConfigPath is empty when the home directory is unknown
func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig walks from the working directory to the filesystem
// root and returns the first gohsjoint.yaml, or "" if there is none
func (l *Loader) findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
