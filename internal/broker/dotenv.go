// SPDX-License-Identifier: MPL-2.0

package broker

import (
	"fmt"
	"os"
	"strings"
)

// ParseWarning describes a dotenv line that could not be parsed.
// Malformed lines are skipped, never fatal: the env file is a convenience,
// and aborting the launch over a stray line would be worse than ignoring it.
type ParseWarning struct {
	File string
	Line int
	Msg  string
}

// String returns the warning in "file:line: message" form.
func (w ParseWarning) String() string {
	return fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Msg)
}

// LoadEnvFile reads and parses a dotenv file. A missing file is not an error;
// the returned map is nil in that case, matching "source if present" shell
// semantics.
func LoadEnvFile(path string) (map[string]string, []ParseWarning, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read env file '%s': %w", path, err)
	}
	vars, warnings := ParseEnvFile(content, path)
	return vars, warnings, nil
}

// ParseEnvFile parses dotenv format content into a fresh map.
// Supported format:
//   - Lines starting with # are comments
//   - Empty lines are ignored
//   - KEY=value (unquoted; trailing " #..." inline comments stripped)
//   - KEY="value" (double-quoted, escape sequences: \n, \r, \t, \\, \")
//   - KEY='value' (single-quoted, literal - no escape processing)
//   - export KEY=value (export prefix is optional and ignored)
//   - KEY= (empty value)
//
// Within a file, later keys overwrite earlier ones. Lines that cannot be
// parsed are reported as warnings and skipped. The filename parameter is
// used only for warning messages.
func ParseEnvFile(content []byte, filename string) (map[string]string, []ParseWarning) {
	vars := make(map[string]string)
	var warnings []ParseWarning

	for i, line := range strings.Split(string(content), "\n") {
		lineNum := i + 1

		// Trim trailing carriage return (for Windows line endings)
		line = strings.TrimSuffix(line, "\r")
		line = strings.TrimSpace(line)

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Remove optional 'export ' prefix
		line = strings.TrimPrefix(line, "export ")
		line = strings.TrimSpace(line)

		// Split on first '='
		key, value, found := strings.Cut(line, "=")
		if !found {
			warnings = append(warnings, ParseWarning{File: filename, Line: lineNum, Msg: "invalid format (missing '=')"})
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			warnings = append(warnings, ParseWarning{File: filename, Line: lineNum, Msg: "empty variable name"})
			continue
		}

		parsedValue, err := parseEnvValue(value)
		if err != nil {
			warnings = append(warnings, ParseWarning{File: filename, Line: lineNum, Msg: err.Error()})
			continue
		}

		vars[key] = parsedValue
	}

	return vars, warnings
}

// parseEnvValue parses a dotenv value, handling quoting and escape sequences.
func parseEnvValue(value string) (string, error) {
	value = strings.TrimSpace(value)

	if value == "" {
		return "", nil
	}

	if value[0] == '"' {
		if len(value) < 2 || value[len(value)-1] != '"' {
			return "", fmt.Errorf("unterminated double quote")
		}
		return parseDoubleQuotedValue(value[1 : len(value)-1]), nil
	}
	if value[0] == '\'' {
		if len(value) < 2 || value[len(value)-1] != '\'' {
			return "", fmt.Errorf("unterminated single quote")
		}
		// Single-quoted: literal value, no escape processing
		return value[1 : len(value)-1], nil
	}

	// Unquoted: strip inline comments
	if idx := strings.Index(value, " #"); idx != -1 {
		value = strings.TrimSpace(value[:idx])
	}

	return value, nil
}

// parseDoubleQuotedValue processes escape sequences in a double-quoted value.
func parseDoubleQuotedValue(value string) string {
	var result strings.Builder
	result.Grow(len(value))

	i := 0
	for i < len(value) {
		if value[i] == '\\' && i+1 < len(value) {
			next := value[i+1]
			switch next {
			case 'n':
				result.WriteByte('\n')
			case 'r':
				result.WriteByte('\r')
			case 't':
				result.WriteByte('\t')
			case '\\':
				result.WriteByte('\\')
			case '"':
				result.WriteByte('"')
			case '$':
				result.WriteByte('$')
			default:
				// Unknown escape - keep both characters
				result.WriteByte('\\')
				result.WriteByte(next)
			}
			i += 2
		} else {
			result.WriteByte(value[i])
			i++
		}
	}

	return result.String()
}
