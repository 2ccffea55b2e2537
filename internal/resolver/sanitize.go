package resolver

import "strings"

const illegalFilenameChars = `<>:"/\|?*`

// SanitizeFilename replaces characters that are illegal on common
// filesystems with underscores. Total and idempotent: sanitizing an already
// sanitized name is a no-op.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(illegalFilenameChars, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
