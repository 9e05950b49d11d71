package format

import "fmt"

// TruncateNumeral shortens a numeral string that exceeds limit characters,
// keeping edges characters at each end and reporting the full length. Short
// numerals come back unchanged. The sign, if present, counts toward the
// kept prefix.
func TruncateNumeral(s string, limit, edges int) string {
	if len(s) <= limit || limit <= 0 || edges <= 0 || len(s) <= 2*edges {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:edges], s[len(s)-edges:], len(s))
}
