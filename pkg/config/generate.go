package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent renders a starter config file: the default
// values serialized to TOML with every assignment commented out.
func GenerateConfigContent() (string, error) {
	defaults := Config{
		Scope:     "Process",
		Delimiter: "",
		Output:    Output{Format: "auto"},
	}

	raw, err := gotoml.Marshal(defaults)
	if err != nil {
		return "", err
	}
	return commentOutConfigValues(string(raw)), nil
}

// commentOutConfigValues comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [output]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
