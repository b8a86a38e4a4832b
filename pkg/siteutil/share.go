package siteutil

import "time"

// SharePayload is what gets handed to a native share sheet.
type SharePayload struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ShareFallback is the notification shown after the link was copied instead of shared.
func ShareFallback(now time.Time) Notification {
	return NewNotification("Link copied to clipboard!", LevelSuccess, now)
}
