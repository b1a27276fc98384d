// Package session holds the per-session mutable state that is not backed
// by the database: identity, the shopping cart, the notification feed, and
// UI preferences. There is exactly one Store per running process and all
// mutations happen on the UI update loop, so no locking is needed.
package session

import (
	"time"

	"github.com/oahconnect/carelink/internal/domain"
)

// MaxNotifications caps the activity feed; the oldest entry is evicted
// when a new one is pushed onto a full feed.
const MaxNotifications = 15

// Preferences are the user-tunable UI settings.
type Preferences struct {
	FontSize             int
	ThemeColor           string
	Language             string
	SearchQuery          string
	NotificationsEnabled bool
}

// Store is the aggregate session state. Construct with New, then call
// Initialize once before first use.
type Store struct {
	LoggedIn bool
	User     *domain.User

	Cart          []domain.CartItem
	Notifications []domain.Notification
	Prefs         Preferences

	now         func() time.Time
	initialized bool
}

// Option configures a Store during construction.
type Option func(*Store)

// WithClock overrides the notification timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty, uninitialized Store.
func New(opts ...Option) *Store {
	s := &Store{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize populates defaults and the canned notification feed. It is
// idempotent: calling it again (e.g. after logout/login) changes nothing.
func (s *Store) Initialize(fontSize int, themeColor string, canned []domain.Notification) {
	if s.initialized {
		return
	}
	s.Prefs = Preferences{
		FontSize:             fontSize,
		ThemeColor:           themeColor,
		Language:             "English",
		NotificationsEnabled: true,
	}
	s.Notifications = append(s.Notifications, canned...)
	s.initialized = true
}

// SetUser records a successful login.
func (s *Store) SetUser(u *domain.User) {
	s.LoggedIn = true
	s.User = u
}

// Logout clears identity fields only. The cart, notifications, and
// preferences deliberately survive so a re-login within the same process
// resumes where the session left off.
func (s *Store) Logout() {
	s.LoggedIn = false
	s.User = nil
}

// UserName returns the display name of the current user, or "".
func (s *Store) UserName() string {
	if s.User == nil {
		return ""
	}
	return s.User.Name
}

// Role returns the role of the current user, or "".
func (s *Store) Role() domain.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// PushNotification inserts a new entry at the front of the feed, evicting
// the oldest entry beyond MaxNotifications.
func (s *Store) PushNotification(msg string, sev domain.Severity) {
	n := domain.NewNotification(s.now(), msg, sev)
	s.Notifications = append([]domain.Notification{n}, s.Notifications...)
	if len(s.Notifications) > MaxNotifications {
		s.Notifications = s.Notifications[:MaxNotifications]
	}
}

// ClearNotifications empties the feed.
func (s *Store) ClearNotifications() {
	s.Notifications = nil
}

// AddToCart appends a single-quantity line entry. Adding the same product
// twice creates two lines rather than bumping a quantity.
func (s *Store) AddToCart(name string, price int) {
	s.Cart = append(s.Cart, domain.CartItem{Name: name, Price: price, Qty: 1})
}

// CartTotal sums the cart.
func (s *Store) CartTotal() int {
	return domain.CartTotal(s.Cart)
}

// ClearCart empties the cart in one step.
func (s *Store) ClearCart() {
	s.Cart = nil
}

// SetSearchQuery updates the global free-text filter applied by views.
func (s *Store) SetSearchQuery(q string) {
	s.Prefs.SearchQuery = q
}

// SetFontSize clamps and stores the font size preference.
func (s *Store) SetFontSize(size int) {
	if size < 12 {
		size = 12
	}
	if size > 24 {
		size = 24
	}
	s.Prefs.FontSize = size
}

// SetThemeColor stores the theme color preference.
func (s *Store) SetThemeColor(color string) {
	s.Prefs.ThemeColor = color
}

// SetLanguage stores the preferred language.
func (s *Store) SetLanguage(lang string) {
	s.Prefs.Language = lang
}

// SetNotificationsEnabled toggles the notification preference.
func (s *Store) SetNotificationsEnabled(enabled bool) {
	s.Prefs.NotificationsEnabled = enabled
}
