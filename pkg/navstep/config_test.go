package navstep

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navstep/pkg/navstep/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "navstep.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 650*time.Millisecond, cfg.StepDelay)
	assert.Nil(t, cfg.PushMultiple)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
step_delay    = "300ms"
push_multiple = false
log_level     = "debug"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 300*time.Millisecond, cfg.StepDelay)
	require.NotNil(t, cfg.PushMultiple)
	assert.False(t, *cfg.PushMultiple)
	assert.False(t, cfg.CanPushMultiple())
	assert.Equal(t, "debug", cfg.LogLevel)

	opts := cfg.RouterOptions()
	assert.False(t, opts.CanPushMultiple)
	assert.Equal(t, 300*time.Millisecond, opts.StepDelay)
	assert.NotNil(t, opts.Logger)
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `log_level = "warn"`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultStepDelay, cfg.StepDelay)
	assert.Nil(t, cfg.PushMultiple)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv(constants.StepDelayEnvVar, "1s")
	t.Setenv(constants.PushMultipleEnvVar, "yes")
	t.Setenv(constants.LogLevelEnvVar, "error")
	path := writeConfig(t, `
step_delay    = "300ms"
push_multiple = false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.StepDelay)
	assert.True(t, cfg.CanPushMultiple())
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		env           map[string]string
		invalidConfig bool
	}{
		{
			name:          "unknown key",
			content:       `delay = "1s"`,
			invalidConfig: true,
		},
		{
			name:          "negative delay",
			content:       `step_delay = "-1s"`,
			invalidConfig: true,
		},
		{
			name:    "malformed toml",
			content: `step_delay = `,
		},
		{
			name:    "bad duration",
			content: `step_delay = "soon"`,
		},
		{
			name:          "bad env boolean",
			content:       ``,
			env:           map[string]string{constants.PushMultipleEnvVar: "maybe"},
			invalidConfig: true,
		},
		{
			name:          "bad env duration",
			content:       ``,
			env:           map[string]string{constants.StepDelayEnvVar: "later"},
			invalidConfig: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfig(t, tt.content)

			_, err := LoadConfig(path)

			require.Error(t, err)
			assert.True(t, IsConfigError(err))
			assert.Contains(t, err.Error(), path)
			if tt.invalidConfig {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))

	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCanPushMultiple(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"", true},
		{"0", false},
		{"false", false},
		{"OFF", false},
		{"1", true},
		{"garbage", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv(constants.PushMultipleEnvVar, tt.raw)
			assert.Equal(t, tt.want, CanPushMultiple())
			assert.Equal(t, tt.want, DefaultConfig().CanPushMultiple())
		})
	}
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("a.toml", ErrInvalidConfig)
	assert.Equal(t, "navstep: config a.toml: invalid configuration", err.Error())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	assert.Equal(t, "navstep: config a.toml", NewConfigError("a.toml", nil).Error())
	assert.False(t, IsConfigError(ErrInvalidConfig))
}

func TestNewRouter(t *testing.T) {
	enabled := true
	cfg := DefaultConfig()
	cfg.PushMultiple = &enabled

	r := NewRouter(cfg, "home", "list")
	defer r.Close()

	assert.True(t, r.CanPushMultiple())
	assert.Equal(t, []string{"home", "list"}, r.Path().Elements())
}

func TestNewRouter_FromConfigFile(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantMulti bool
		wantDelay time.Duration
	}{
		{
			name:      "one push per step",
			content:   "step_delay = \"300ms\"\npush_multiple = false\n",
			wantMulti: false,
			wantDelay: 300 * time.Millisecond,
		},
		{
			name:      "multi push",
			content:   "step_delay = \"2s\"\npush_multiple = true\n",
			wantMulti: true,
			wantDelay: 2 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content))
			require.NoError(t, err)

			r := NewRouter[string](cfg, "home")
			defer r.Close()

			assert.Equal(t, tt.wantMulti, r.CanPushMultiple())
			assert.Equal(t, tt.wantDelay, r.StepDelay())
			assert.Equal(t, []string{"home"}, r.Path().Elements())
		})
	}
}
