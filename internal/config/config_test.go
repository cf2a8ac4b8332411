package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "canvas.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const fullConfig = `
canvas_url = "https://canvas.example.edu"
token = "secret"
gradescope_cookie = "session=abc"
hide_overdue_after_days = 14
hide_overdue_without_submission = true
hide_locked = true

[[exclude]]
class_id = 100

[[exclude]]
assignment_id = 4242

[[include]]
assignment_id = 7
`

func TestLoad_Full(t *testing.T) {
	cfg, err := Load(writeConfig(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://canvas.example.edu", cfg.CanvasURL)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "session=abc", cfg.GradescopeCookie)
	require.NotNil(t, cfg.HideOverdueAfterDays)
	assert.Equal(t, 14, *cfg.HideOverdueAfterDays)
	assert.True(t, cfg.HideOverdueWithoutSubmission)
	assert.True(t, cfg.HideLocked)

	assert.True(t, cfg.ExcludesCourse(100))
	assert.False(t, cfg.ExcludesCourse(101))
	assert.True(t, cfg.ExcludesAssignment(4242))
	assert.False(t, cfg.ExcludesAssignment(100), "class_id rules must not match assignment ids")
	assert.True(t, cfg.IncludesAssignment(7))
	assert.False(t, cfg.IncludesAssignment(8))
}

func TestLoad_Minimal(t *testing.T) {
	cfg, err := Load(writeConfig(t, "canvas_url = \"https://c.example\"\ntoken = \"x\"\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.GradescopeCookie)
	assert.Nil(t, cfg.HideOverdueAfterDays)
	assert.Empty(t, cfg.Exclude)
}

func TestLoad_MissingToken(t *testing.T) {
	_, err := Load(writeConfig(t, "canvas_url = \"https://c.example\"\n"))
	require.Error(t, err)
	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "token")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoad_AmbiguousExclusion(t *testing.T) {
	content := `
canvas_url = "https://c.example"
token = "x"

[[exclude]]
class_id = 1
assignment_id = 2
`
	_, err := Load(writeConfig(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestAppendExclusion(t *testing.T) {
	path := writeConfig(t, fullConfig)

	require.NoError(t, AppendExclusion(path, 999))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.ExcludesAssignment(999))
	// Unrelated settings survive the rewrite.
	assert.True(t, cfg.ExcludesCourse(100))
	assert.True(t, cfg.IncludesAssignment(7))
	assert.Equal(t, "secret", cfg.Token)
}

func TestAppendExclusion_Idempotent(t *testing.T) {
	path := writeConfig(t, fullConfig)

	require.NoError(t, AppendExclusion(path, 999))
	require.NoError(t, AppendExclusion(path, 999))

	cfg, err := Load(path)
	require.NoError(t, err)
	count := 0
	for _, e := range cfg.Exclude {
		if e.AssignmentID != nil && *e.AssignmentID == 999 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("DUESOON_CONFIG", "/tmp/custom.toml")
	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.toml", path)
}
