package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/oahconnect/carelink/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 15, 14, 30, 5, 0, time.UTC)
	}
}

func TestInitialize_Idempotent(t *testing.T) {
	s := New(WithClock(fixedClock()))
	canned := []domain.Notification{
		{Time: "14:30", Message: "welcome", Severity: domain.SeveritySuccess},
	}

	s.Initialize(16, "#4CAF50", canned)
	require.Len(t, s.Notifications, 1)
	assert.Equal(t, 16, s.Prefs.FontSize)
	assert.True(t, s.Prefs.NotificationsEnabled)

	s.Prefs.FontSize = 20
	s.Initialize(16, "#4CAF50", canned)
	assert.Equal(t, 20, s.Prefs.FontSize, "second Initialize is a no-op")
	assert.Len(t, s.Notifications, 1)
}

func TestPushNotification_NewestFirstAndCapped(t *testing.T) {
	s := New(WithClock(fixedClock()))
	s.Initialize(16, "#4CAF50", nil)

	for i := 0; i < 20; i++ {
		s.PushNotification(fmt.Sprintf("event %d", i), domain.SeverityInfo)
		assert.LessOrEqual(t, len(s.Notifications), MaxNotifications)
		assert.Equal(t, fmt.Sprintf("event %d", i), s.Notifications[0].Message,
			"most recent push is always first")
	}

	require.Len(t, s.Notifications, MaxNotifications)
	assert.Equal(t, "event 19", s.Notifications[0].Message)
	assert.Equal(t, "event 5", s.Notifications[MaxNotifications-1].Message,
		"oldest entries are evicted from the back")
	assert.Equal(t, "14:30:05", s.Notifications[0].Time)
}

func TestCart_DuplicateAddsAndCheckoutClear(t *testing.T) {
	s := New()

	s.AddToCart("Milk (1L)", 60)
	s.AddToCart("Whole Wheat Bread", 45)
	s.AddToCart("Milk (1L)", 60)

	require.Len(t, s.Cart, 3, "repeat adds create duplicate line entries")
	assert.Equal(t, 165, s.CartTotal())

	s.ClearCart()
	assert.Empty(t, s.Cart)
	assert.Equal(t, 0, s.CartTotal())
}

func TestLogout_ClearsIdentityOnly(t *testing.T) {
	s := New(WithClock(fixedClock()))
	s.Initialize(16, "#4CAF50", nil)

	s.SetUser(&domain.User{Username: "admin", Role: domain.RoleAdmin, Name: "Admin User"})
	s.AddToCart("Walking Stick", 499)
	s.PushNotification("Welcome Admin User!", domain.SeveritySuccess)
	s.SetSearchQuery("walk")

	require.True(t, s.LoggedIn)
	assert.Equal(t, domain.RoleAdmin, s.Role())
	assert.Equal(t, "Admin User", s.UserName())

	s.Logout()

	assert.False(t, s.LoggedIn)
	assert.Nil(t, s.User)
	assert.Empty(t, s.UserName())
	assert.Len(t, s.Cart, 1, "cart survives logout")
	assert.Len(t, s.Notifications, 1, "notifications survive logout")
	assert.Equal(t, "walk", s.Prefs.SearchQuery, "preferences survive logout")
}

func TestSetFontSize_Clamped(t *testing.T) {
	s := New()
	s.SetFontSize(8)
	assert.Equal(t, 12, s.Prefs.FontSize)
	s.SetFontSize(40)
	assert.Equal(t, 24, s.Prefs.FontSize)
	s.SetFontSize(18)
	assert.Equal(t, 18, s.Prefs.FontSize)
}
