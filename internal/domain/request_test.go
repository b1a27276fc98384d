package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRequestID(t *testing.T) {
	assert.Equal(t, "REQ001", FormatRequestID(1))
	assert.Equal(t, "REQ026", FormatRequestID(26))
	assert.Equal(t, "REQ120", FormatRequestID(120))
}

func TestRequestMatches(t *testing.T) {
	r := &ServiceRequest{
		Type:        "Grocery Shopping",
		Description: "need milk and bread",
		Resident:    "Mrs. Sharma",
		Volunteer:   "TBD",
	}

	assert.True(t, r.Matches(""), "empty query matches everything")
	assert.True(t, r.Matches("MILK"), "query is case-insensitive")
	assert.True(t, r.Matches("sharma"))
	assert.True(t, r.Matches("grocery"))
	assert.True(t, r.Matches("tbd"), "volunteer field is searched")
	assert.False(t, r.Matches("doctor"))
}

func TestUrgencyRank(t *testing.T) {
	assert.True(t, UrgencyUrgent.Rank() > UrgencyHigh.Rank())
	assert.True(t, UrgencyHigh.Rank() > UrgencyMedium.Rank())
	assert.True(t, UrgencyMedium.Rank() > UrgencyLow.Rank())
	assert.Equal(t, 0, Urgency("bogus").Rank())
}
