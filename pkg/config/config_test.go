package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points XDG at a temp dir so tests never read the real
// user config file.
func isolateConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return tmp
}

func TestLoadDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Process", cfg.Scope)
	assert.Equal(t, "", cfg.Delimiter)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, string(os.PathListSeparator), cfg.DelimiterOrDefault())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	tmp := isolateConfig(t)

	dir := filepath.Join(tmp, "pathctl")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`
scope = "User"
delimiter = ";"

[output]
format = "json"
`), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "User", cfg.Scope)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, ";", cfg.DelimiterOrDefault())
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	tmp := isolateConfig(t)

	dir := filepath.Join(tmp, "pathctl")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
		[]byte(`scope = "User"`), 0644))

	t.Setenv("PATHCTL_SCOPE", "Machine")
	t.Setenv("PATHCTL_OUTPUT_FORMAT", "yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Machine", cfg.Scope)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestFilePath(t *testing.T) {
	tmp := isolateConfig(t)

	got := FilePath()
	assert.Equal(t, filepath.Join(tmp, "pathctl", ConfigFileName), got)
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := GenerateConfigContent()
	require.NoError(t, err)

	assert.Contains(t, content, "# scope")
	assert.Contains(t, content, "[output]")

	// Every assignment must be commented out
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			continue
		}
		t.Errorf("uncommented value line in generated config: %q", line)
	}
}
