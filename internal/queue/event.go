// Package queue defines message payloads exchanged over the message broker.
package queue

// MealBookedEvent is published when a booking upsert succeeds. It carries
// enough information for kitchen or notification consumers to act without
// querying the primary database.
type MealBookedEvent struct {
	BoarderID    uint64 `json:"boarder_id"`
	BoarderName  string `json:"boarder_name"`
	RoomNo       string `json:"room_no"`
	MealDate     string `json:"meal_date"`
	Lunch        bool   `json:"lunch"`
	Dinner       bool   `json:"dinner"`
	DinnerChoice string `json:"dinner_choice,omitempty"`
	BookedAt     string `json:"booked_at"`
}
