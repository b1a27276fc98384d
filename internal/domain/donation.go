package domain

import "time"

// AnonymousDonor is the recorded donor name when none is given.
const AnonymousDonor = "Anonymous"

// Donation is immutable once created; there is no deletion path.
type Donation struct {
	ID        string
	Amount    int
	Donor     string
	CreatedAt time.Time
	Campaign  string
}
