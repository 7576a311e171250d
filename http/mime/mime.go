// Package mime resolves the content type of a file by its extension.
package mime

import (
	"strings"
)

// DefaultContentType is returned for all extensions that are not known.
const DefaultContentType = "application/octet-stream"

var types = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// Lookup returns the content type for the extension, including the leading dot.
// The extension is matched case-insensitive.
func Lookup(ext string) string {
	if mimeType, ok := types[strings.ToLower(ext)]; ok {
		return mimeType
	}

	return DefaultContentType
}

// Types returns a copy of the known extensions and their content types.
func Types() map[string]string {
	t := make(map[string]string, len(types))

	for ext, mimeType := range types {
		t[ext] = mimeType
	}

	return t
}
