package assistant

import "strings"

// ParseInput splits a line into a lower-cased command and its arguments.
// Arguments keep their case. Blank input yields an empty command.
func ParseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}
