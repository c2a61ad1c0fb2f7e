package model

import "time"

// Notice represents a row in the `notices` table joined with the poster's
// display name. Notices are append-only and age out of the public feed
// after a day.
type Notice struct {
	ID         uint64    // notices.id
	Text       string    // notices.notice
	PostedBy   string    // notices.posted_by (boarders.username)
	PosterName string    // boarders.name, joined at read time
	CreatedAt  time.Time // notices.created_at
}
