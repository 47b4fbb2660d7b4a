package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/nelyj/command-line-reporter/pkg/errors"
)

// GenerateContent renders a config file template: the built-in defaults
// marshaled to TOML with every value line commented out, so dropping the
// file in place changes nothing until a line is uncommented.
func GenerateContent() (string, error) {
	data, err := toml.Marshal(Builtin())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "marshaling defaults")
	}

	header := "# clreport rendering defaults.\n# Uncomment a line to override the built-in value.\n\n"
	return header + commentOutValues(string(data)), nil
}

// commentOutValues comments every assignment line, keeping blanks,
// existing comments and section headers as they are
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
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
