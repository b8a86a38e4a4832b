package siteutil

import "time"

// NotificationTTL is how long a notification stays visible.
const NotificationTTL = 5 * time.Second

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

// Notification is a dismissible alert shown at the top right of the page.
type Notification struct {
	Message   string
	Level     Level
	ExpiresAt time.Time
}

// NewNotification creates a notification shown at now. An empty level means success.
func NewNotification(message string, level Level, now time.Time) Notification {
	if level == "" {
		level = LevelSuccess
	}
	return Notification{Message: message, Level: level, ExpiresAt: now.Add(NotificationTTL)}
}

func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// CSSClass returns the alert classes used by the site stylesheet.
func (n Notification) CSSClass() string {
	return "alert alert-" + string(n.Level) + " alert-dismissible fade show position-fixed"
}
