package utils

import (
	"regexp"
	"strings"
)

var (
	unsafeCharsRe    = regexp.MustCompile(`[^A-Za-z0-9]`)
	underscoreRunsRe = regexp.MustCompile(`_+`)
)

// SanitizeFilenamePart reduces an arbitrary string to a filesystem-safe token:
// every character outside [A-Za-z0-9] becomes an underscore, runs of
// underscores collapse to one, and leading/trailing underscores are stripped.
func SanitizeFilenamePart(s string) string {
	s = unsafeCharsRe.ReplaceAllString(s, "_")
	s = underscoreRunsRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// BuildFilename derives the download filename for a generated resume from the
// profile name, target company and role. No collision handling; identical
// sanitized inputs produce identical names.
func BuildFilename(profileName, company, role string) string {
	parts := []string{
		SanitizeFilenamePart(profileName),
		SanitizeFilenamePart(company),
		SanitizeFilenamePart(role),
	}
	return strings.Join(parts, "_") + ".pdf"
}
