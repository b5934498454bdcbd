package utils

import "strings"

const filenameAllowed = "-_.() abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SanitizeFilename strips every character outside a conservative allow-list,
// trims the result, and replaces spaces with underscores. The result can be
// empty when the input has no safe characters at all.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(filenameAllowed, r) {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}
