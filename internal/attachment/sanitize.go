package attachment

import (
	"fmt"
	"mime"
	"regexp"
	"registrar/pkg/domain"
	"strings"
)

const maxFilenameLength = 120

var unsafeFilenameChars = regexp.MustCompile(`[^\w\-.]+`) //nolint: gochecknoglobals

// allowedContentTypes are the media types accepted for every attachment type.
var allowedContentTypes = map[string]struct{}{ //nolint: gochecknoglobals
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
}

// SanitizeFilename replaces runs of characters outside [A-Za-z0-9_.-] with a
// single underscore and caps the result at 120 characters.
func SanitizeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(name), "_")
	if len(name) > maxFilenameLength {
		name = name[:maxFilenameLength]
	}
	if name == "" || name == "." || name == ".." {
		return "file"
	}

	return name
}

// BlobName is the bucket key of an attachment payload.
func BlobName(regCode string, attachmentType domain.AttachmentType, version int, filename string) string {
	return fmt.Sprintf("%s/%s/v%d-%s", regCode, attachmentType, version, filename)
}

// normalizeContentType strips parameters and lowercases the media type. It
// returns "" when the value does not parse or is not accepted.
func normalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if _, ok := allowedContentTypes[mediaType]; !ok {
		return ""
	}

	return mediaType
}
