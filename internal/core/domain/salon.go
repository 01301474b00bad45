package domain

// SalonStatus is the registration state of a salon.
type SalonStatus string

const (
	SalonPending  SalonStatus = "pending"
	SalonApproved SalonStatus = "approved"
	SalonRejected SalonStatus = "rejected"
)

// SalonLocation is the match key for targeting. Coordinates are stored
// but never used for matching.
type SalonLocation struct {
	SalonID      int64
	AddressLine1 string
	AddressLine2 string
	City         string
	District     string
	Latitude     float64
	Longitude    float64
}

// Actor is the caller of a mutation as established by the auth gateway.
type Actor struct {
	UserID  int64
	IsAdmin bool
}
