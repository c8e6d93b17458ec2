package commands

import (
	"path/filepath"
	"strings"
)

// supportedExtensions lists the file extensions included in a migration:
// common raster images, raw camera formats, and video containers.
// Classification is by extension only; file contents are never inspected.
var supportedExtensions = map[string]struct{}{
	// Images.
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
	".tiff": {},
	".tif":  {},
	".heic": {},
	".heif": {},
	// Raw camera formats.
	".raw": {},
	".arw": {},
	".cr2": {},
	".nef": {},
	".orf": {},
	".rw2": {},
	// Videos.
	".mp4":  {},
	".mov":  {},
	".avi":  {},
	".wmv":  {},
	".flv":  {},
	".webm": {},
	".mkv":  {},
	".m4v":  {},
	".3gp":  {},
	".mpg":  {},
	".mpeg": {},
}

// isMediaFile reports whether the file name has a supported media extension.
// The match is case-insensitive.
func isMediaFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := supportedExtensions[ext]
	return ok
}
