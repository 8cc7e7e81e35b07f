package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 24.0, cfg.Fatigue.SigmaMax)
	assert.Equal(t, 2.0, cfg.Fatigue.SCFChordOP)
	assert.Equal(t, 2.0, cfg.Fatigue.SCFBraceOP)
	assert.Equal(t, stress.DefaultMagnification(), cfg.StressMagnification())
	assert.Zero(t, cfg.Magnification.TJoint)
	assert.Equal(t, 0.7, cfg.Fixity())
	assert.Equal(t, runtime.NumCPU(), cfg.Workers())
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"zero sigma max", func(c *Config) { c.Fatigue.SigmaMax = 0 }, true},
		{"unknown strategy", func(c *Config) { c.Fatigue.Strategy = "peak" }, true},
		{"components strategy", func(c *Config) { c.Fatigue.Strategy = "components" }, false},
		{"negative chord op SCF", func(c *Config) { c.Fatigue.SCFChordOP = -1 }, true},
		{"zero chord magnification", func(c *Config) { c.Magnification.Chord = 0 }, true},
		{"negative T-joint magnification", func(c *Config) { c.Magnification.TJoint = -1 }, true},
		{"T-joint magnification override", func(c *Config) { c.Magnification.TJoint = 1.0 }, false},
		{"fixity above 1", func(c *Config) { f := 1.5; c.TJoint.Fixity = &f }, true},
		{"pinned chord", func(c *Config) { f := 0.0; c.TJoint.Fixity = &f }, false},
		{"negative workers", func(c *Config) { c.Sweep.Workers = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFileAndMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
fatigue:
  sigma_max: 36
  strategy: components
magnification:
  brace_overlap: 1.0
t_joint:
  fixity: 0
sweep:
  workers: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	file, err := LoadFromFile(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Merge(file)

	assert.Equal(t, 36.0, cfg.Fatigue.SigmaMax)
	assert.Equal(t, "components", cfg.Fatigue.Strategy)
	assert.Equal(t, 2.0, cfg.Fatigue.SCFChordOP)
	assert.Equal(t, 1.0, cfg.Magnification.BraceOverlap)
	assert.Equal(t, 1.5, cfg.Magnification.Chord)
	assert.Equal(t, 0.0, cfg.Fixity())
	assert.Equal(t, 3, cfg.Workers())
	assert.Equal(t, "EN", cfg.Sweep.Standard)

	opts, err := cfg.StressOptions()
	require.NoError(t, err)
	assert.Equal(t, 36e6, opts.SigmaMax)
	assert.Equal(t, stress.Components, opts.Strategy)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fatigue: [1, 2"), 0644))
	_, err = LoadFromFile(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestSaveToFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, DefaultConfig().SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)
}

func TestLoaderLayers(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	user := DefaultConfig()
	user.Fatigue.SigmaMax = 30
	user.Sweep.Workers = 2
	require.NoError(t, user.SaveToFile(filepath.Join(home, UserConfigDir, UserConfigFile)))

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, ProjectConfigFile), []byte("fatigue:\n  sigma_max: 40\n"), 0644))
	sub := filepath.Join(project, "jobs")
	require.NoError(t, os.Mkdir(sub, 0755))
	chdir(t, sub)

	explicit := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("sweep:\n  workers: 8\n"), 0644))

	loader := NewLoader(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.Fatigue.SigmaMax)
	assert.Equal(t, 2, cfg.Sweep.Workers)

	cfg, err = loader.Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Sweep.Workers)

	_, err = loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := NewLoader(nil).EnsureUserConfig()
	require.NoError(t, err)
	assert.FileExists(t, path)

	again, err := NewLoader(nil).EnsureUserConfig()
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

// chdir changes the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
