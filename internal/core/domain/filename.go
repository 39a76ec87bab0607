package domain

import (
	"regexp"
	"strings"
)

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]+`)

// SanitizeFilename turns a job label into a safe output filename with
// a .pdf extension. Empty or fully-invalid labels fall back to
// "document.pdf".
func SanitizeFilename(label string) string {
	name := strings.TrimSpace(label)
	name = strings.TrimSuffix(name, ".pdf")
	name = invalidFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, ". ")
	if name == "" {
		name = "document"
	}
	return name + ".pdf"
}
