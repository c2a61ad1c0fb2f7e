package model

import "time"

// DateLayout is the wire and column format for meal dates. Dates are civil
// days in IST; no time-of-day component is ever stored.
const DateLayout = "2006-01-02"

// DinnerChoice is one of the three proteins the mess can serve. Egg is
// always offered; the convenor picks Fish or Chicken as the day's second
// option.
type DinnerChoice string

const (
	ChoiceEgg     DinnerChoice = "Egg"
	ChoiceFish    DinnerChoice = "Fish"
	ChoiceChicken DinnerChoice = "Chicken"
)

// ParseDinnerChoice maps a raw string onto the enum. It reports false for
// anything outside the three known values, including casing variants.
func ParseDinnerChoice(s string) (DinnerChoice, bool) {
	switch DinnerChoice(s) {
	case ChoiceEgg, ChoiceFish, ChoiceChicken:
		return DinnerChoice(s), true
	}
	return "", false
}

// MealBooking represents a row in the `meal_bookings` table. The unique key
// on (boarder_id, meal_date) keeps at most one row per boarder per date;
// rebooking overwrites the whole row. DinnerChoice is nil whenever Dinner
// is false.
type MealBooking struct {
	BoarderID    uint64        // meal_bookings.boarder_id
	MealDate     time.Time     // meal_bookings.meal_date (civil day)
	Lunch        bool          // meal_bookings.lunch
	Dinner       bool          // meal_bookings.dinner
	DinnerChoice *DinnerChoice // meal_bookings.dinner_choice, nil unless dinner
}
