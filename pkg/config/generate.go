package config

import (
	"strings"
)

// GenerateConfigContent returns a starter config file: the embedded
// defaults with every value commented out, so uncommenting a line
// overrides exactly that default.
func GenerateConfigContent() string {
	return commentOutConfigValues(string(defaultConfig))
}

// commentOutConfigValues comments out all non-comment, non-blank lines
// that contain configuration values, leaving section headers intact
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
