package domain

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// MediaKind is the type of an uploaded asset.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// SizeClass selects the display slot an asset is rendered in.
type SizeClass string

const (
	SizeMin SizeClass = "min"
	SizeMax SizeClass = "max"
)

// DefaultImageDuration is the playback time assigned to still images.
const DefaultImageDuration = 10 * time.Second

// MaxMediaSize caps a single upload.
const MaxMediaSize = 100 << 20

var allowedMediaTypes = map[string]MediaKind{
	"image/jpeg":      MediaImage,
	"image/jpg":       MediaImage,
	"image/png":       MediaImage,
	"image/webp":      MediaImage,
	"image/gif":       MediaImage,
	"video/mp4":       MediaVideo,
	"video/quicktime": MediaVideo,
}

var allowedMediaExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
}

// MediaRef references an uploaded asset shown by an ad.
type MediaRef struct {
	ID        int64
	AdID      int64
	URL       string
	Kind      MediaKind
	SizeClass SizeClass
	Duration  int // seconds
	IsPrimary bool
	Position  int
}

// ClassifyMedia resolves the media kind and canonical content type from
// an upload's declared content type, falling back to the file extension.
func ClassifyMedia(contentType, filename string) (MediaKind, string, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if kind, ok := allowedMediaTypes[ct]; ok {
		return kind, ct, nil
	}
	if ct, ok := allowedMediaExtensions[strings.ToLower(path.Ext(filename))]; ok {
		return allowedMediaTypes[ct], ct, nil
	}
	return "", "", fmt.Errorf("%w: unsupported media type %q", ErrInvalidArgument, contentType)
}

// ParseSizeClass defaults an empty value to max.
func ParseSizeClass(s string) (SizeClass, error) {
	switch SizeClass(strings.ToLower(s)) {
	case "", SizeMax:
		return SizeMax, nil
	case SizeMin:
		return SizeMin, nil
	default:
		return "", fmt.Errorf("%w: unknown size class %q", ErrInvalidArgument, s)
	}
}

// NormalizePrimary keeps at most one primary asset, the first flagged one.
func NormalizePrimary(refs []MediaRef) {
	seen := false
	for i := range refs {
		if refs[i].IsPrimary {
			if seen {
				refs[i].IsPrimary = false
			}
			seen = true
		}
	}
}
