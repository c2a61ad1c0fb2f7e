package model

import "time"

// RoomCapacity is the maximum number of boarders a room can hold. The
// registration insert enforces it atomically in SQL; it is not merely a
// handler-side check.
const RoomCapacity = 2

// Boarder represents a row in the `boarders` table. The username is stored
// lowercased and is unique across the hostel; the PIN is stored only as a
// bcrypt hash. Handlers define their own response shapes, so no json tags
// appear here.
type Boarder struct {
	ID         uint64    // boarders.id
	Name       string    // boarders.name
	RoomNo     string    // boarders.room_no
	Username   string    // boarders.username (lowercased, unique)
	PINHash    string    // boarders.pin_hash (bcrypt)
	IsConvenor bool      // boarders.is_convenor
	CreatedAt  time.Time // boarders.created_at
}
