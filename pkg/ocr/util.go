package ocr

import "strings"

// mergeLines trims, drops empty lines, and keeps the first occurrence of
// each distinct line in pass order.
func mergeLines(lines []string) string {
	seen := map[string]struct{}{}
	var out []string
	for _, l := range lines {
		cleaned := strings.TrimSpace(l)
		if cleaned == "" {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return strings.Join(out, "\n")
}

// snippet shortens text for logging.
func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
