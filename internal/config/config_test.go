package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/readability-analyzer/internal/types"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/readability",
		"targets": {"dialogue": 6, "math_problem": 2, "narration": 4},
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/readability", cfg.DatabaseURL)
	require.NotNil(t, cfg.Targets)
	assert.Equal(t, 6, cfg.Targets.Dialogue)
	assert.Equal(t, 2, cfg.Targets.MathProblem)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_TargetsOutOfRange(t *testing.T) {
	cfg := &Config{Targets: &types.TargetConfig{Dialogue: 12, MathProblem: 3, Narration: 4}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid targets")
}

func TestApplyEnv_FillsUnsetFields(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("DATABASE_URL", "postgres://localhost/env")
	t.Setenv("TARGET_DIALOGUE", "7")

	cfg := &Config{}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "postgres://localhost/env", cfg.DatabaseURL)
	require.NotNil(t, cfg.Targets)
	assert.Equal(t, 7, cfg.Targets.Dialogue)
	// Unset target env vars fall back to the defaults.
	assert.Equal(t, types.DefaultMathProblemTarget, cfg.Targets.MathProblem)
}

func TestApplyEnv_DoesNotOverrideExplicitValues(t *testing.T) {
	t.Setenv("PORT", "9191")

	cfg := &Config{Port: 3000}
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, 3000, cfg.Port)
}

func TestApplyEnv_RejectsBadValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	cfg := &Config{}
	assert.Error(t, cfg.ApplyEnv())

	t.Setenv("PORT", "")
	t.Setenv("TARGET_NARRATION", "eight")
	cfg = &Config{}
	assert.Error(t, cfg.ApplyEnv())
}

func TestPortOrDefault(t *testing.T) {
	assert.Equal(t, DefaultPort, (&Config{}).PortOrDefault())
	assert.Equal(t, 3000, (&Config{Port: 3000}).PortOrDefault())
}

func TestTargetsOrDefault(t *testing.T) {
	assert.Equal(t, types.DefaultTargets(), (&Config{}).TargetsOrDefault())

	custom := types.TargetConfig{Dialogue: 1, MathProblem: 1, Narration: 1}
	assert.Equal(t, custom, (&Config{Targets: &custom}).TargetsOrDefault())
}
