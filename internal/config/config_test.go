package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"modemap/internal/config"
	"modemap/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const (
	validYAML = `
editor:
  default_filename: untitled
  preview_modes: [rst]
filter:
  max_results: 5
logging:
  level: debug
  format: json
`
	partialYAML = `
scan:
  sniff_limit: 512
`
	invalidSyntaxYAML = `
editor:
  default_filename: "unterminated
filter: [
`
	invalidLevelYAML = `
logging:
  level: shouting
`
	invalidLimitYAML = `
filter:
  max_results: 0
`
	invalidFormatYAML = `
logging:
  format: xml
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)

		assert.Equal(t, "untitled", cfg.Editor.DefaultFilename)
		assert.Equal(t, []string{"rst"}, cfg.Editor.PreviewModes)
		assert.True(t, cfg.Editor.MimeFallback, "unset fields keep defaults")
		assert.Equal(t, 5, cfg.Filter.MaxResults)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
		assert.Equal(t, "stderr", cfg.Logging.Output)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, partialYAML))
		require.NoError(t, err)

		assert.Equal(t, uint32(512), cfg.Scan.SniffLimit)
		assert.Equal(t, []string{".git", ".hg", ".svn", "node_modules"}, cfg.Scan.SkipDirs)
		assert.Equal(t, 20, cfg.Filter.MaxResults)
		assert.Equal(t, "filename1", cfg.Editor.DefaultFilename)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})

	invalid := map[string]struct {
		content string
		param   string
	}{
		"bad level":  {invalidLevelYAML, "logging.level"},
		"bad limit":  {invalidLimitYAML, "filter.max_results"},
		"bad format": {invalidFormatYAML, "logging.format"},
	}
	for name, tc := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadConfigFile(createTestYAML(t, tc.content))
			require.Error(t, err)

			var configErr *errors.ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tc.param, configErr.Param())
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := config.New()
	require.NoError(t, cfg.Validate())

	cfg.Editor.DefaultFilename = "dir/name"
	assert.Error(t, cfg.Validate())

	cfg = config.New()
	cfg.Scan.SkipDirs = []string{".git", ""}
	assert.Error(t, cfg.Validate())

	var nilCfg *config.Config
	assert.Error(t, nilCfg.Validate())
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	cfg := config.New()
	cfg.Filter.MaxResults = 42
	cfg.Editor.PreviewModes = []string{"gfm"}
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Filter.MaxResults)
	assert.Equal(t, []string{"gfm"}, loaded.Editor.PreviewModes)
}

func TestSkipDir(t *testing.T) {
	cfg := config.New()
	assert.True(t, cfg.SkipDir(".git"))
	assert.True(t, cfg.SkipDir("node_modules"))
	assert.False(t, cfg.SkipDir("src"))
}
