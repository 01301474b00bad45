package port

import (
	"context"
	"io"

	"salon-ads/internal/core/domain"
)

// Authorizer answers ownership questions for salon-scoped mutations.
type Authorizer interface {
	IsSalonOwner(ctx context.Context, userID, salonID int64) (bool, error)
	// IsAdOwner checks ownership through the ad's salon. Sponsor ads have
	// no owner.
	IsAdOwner(ctx context.Context, userID, adID int64) (bool, error)
}

// ObjectStorage stores media blobs. It offers no transactions: an upload
// whose database write later fails is leaked until the next delete.
type ObjectStorage interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, url string) error
}

// MediaProber measures playback duration in seconds.
type MediaProber interface {
	ProbeDuration(ctx context.Context, kind domain.MediaKind, body io.ReadSeeker) (int, error)
}

// ActivityRecorder receives audit events after successful mutations.
type ActivityRecorder interface {
	Record(ctx context.Context, userID int64, eventType string, details map[string]any) error
}
