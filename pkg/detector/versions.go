package detector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// normalizeVersion reduces a version string to major.minor (3.11.2 -> 3.11).
// Strings that do not parse as a version are returned untouched, and bare
// major versions ("17", "20") are kept as-is.
func normalizeVersion(raw string) string {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "v"))
	if raw == "" || !strings.Contains(raw, ".") {
		return raw
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// extractVersion applies a regex with one capture group and normalizes the
// captured version. Returns "" when the pattern does not match.
func extractVersion(content, pattern string) string {
	m := regexp.MustCompile(pattern).FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return normalizeVersion(m[1])
}
