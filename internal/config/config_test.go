package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config discovery at empty directories so the developer's
// real config never leaks into tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "")
	t.Setenv("CI", "")
}

func TestLoad_When_NoConfigFile(t *testing.T) {
	isolate(t)

	cfg := Load()
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.CI)
}

func TestLoad_When_LocalConfigFile(t *testing.T) {
	isolate(t)

	err := os.WriteFile(".minicheck.yaml", []byte("theme: slate\nno_color: true\n"), 0o644)
	require.NoError(t, err)

	cfg := Load()
	assert.Equal(t, "slate", cfg.Theme)
	assert.True(t, cfg.NoColor)
}

func TestLoad_When_XDGConfigFile(t *testing.T) {
	isolate(t)

	configHome := os.Getenv("XDG_CONFIG_HOME")
	dir := filepath.Join(configHome, "minicheck")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".minicheck.yaml"), []byte("theme: mono\n"), 0o644))

	cfg := Load()
	assert.Equal(t, "mono", cfg.Theme)
}

func TestLoad_When_MalformedYAML(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(".minicheck.yaml", []byte("theme: [unclosed\n"), 0o644))

	cfg := Load()
	assert.Equal(t, DefaultTheme, cfg.Theme, "malformed config falls back to defaults")
}

func TestResolve_When_FlagThemeWins(t *testing.T) {
	isolate(t)

	got := Resolve(&Config{Theme: "slate"}, Flags{Theme: "default"})
	assert.Equal(t, "default", got)
}

func TestResolve_When_NoColorEnvForcesMono(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "1")

	got := Resolve(&Config{Theme: "slate"}, Flags{})
	assert.Equal(t, "mono", got)
}

func TestResolve_When_CIEnvForcesMono(t *testing.T) {
	isolate(t)
	t.Setenv("CI", "true")

	assert.Equal(t, "mono", Resolve(&Config{Theme: "default"}, Flags{}))

	t.Setenv("CI", "false")
	assert.Equal(t, "default", Resolve(&Config{Theme: "default"}, Flags{}))
}

func TestResolve_When_ExplicitFlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "1")

	// -no-color=false given explicitly re-enables color.
	got := Resolve(&Config{Theme: "slate"}, Flags{NoColor: false, NoColorSet: true})
	assert.Equal(t, "slate", got)
}

func TestResolve_When_ConfigNoColor(t *testing.T) {
	isolate(t)

	got := Resolve(&Config{Theme: "slate", NoColor: true}, Flags{})
	assert.Equal(t, "mono", got)
}
