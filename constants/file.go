package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{"TXT", "PDF", "IMAGE"}

// AllowedExtensions holds the default allowed file extensions for receipt ingestion.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// FormatForExt maps a normalized extension onto one of FileTypes.
func FormatForExt(ext string) (string, bool) {
	switch NormalizeExt(ext) {
	case "txt":
		return "TXT", true
	case "pdf":
		return "PDF", true
	case "jpg", "jpeg", "png":
		return "IMAGE", true
	}
	return "", false
}
