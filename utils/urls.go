package utils

import "strings"

// JoinURL appends path segments to base, collapsing duplicate slashes at the
// joins. A trailing slash on the last non-empty part is kept.
func JoinURL(base string, parts ...string) string {
	out := strings.TrimRight(base, "/")
	trailing := false

	for _, p := range parts {
		if p == "" {
			continue
		}
		trailing = strings.HasSuffix(p, "/")

		trimmed := strings.Trim(p, "/")
		if trimmed == "" {
			continue
		}
		out += "/" + trimmed
	}

	if trailing {
		out += "/"
	}
	return out
}
