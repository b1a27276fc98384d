package domain

import "time"

// Notification is a short-lived activity log entry shown to the user.
type Notification struct {
	Time     string // HH:MM:SS
	Message  string
	Severity Severity
}

// NewNotification stamps a notification with the given clock time.
func NewNotification(now time.Time, msg string, sev Severity) Notification {
	return Notification{
		Time:     now.Format("15:04:05"),
		Message:  msg,
		Severity: sev,
	}
}
