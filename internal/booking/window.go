// Package booking implements the meal-booking policy: which calendar date a
// booking action applies to, which dinner choices are offered, and how a
// booking is written exactly once per boarder per date.
package booking

import (
	"time"

	"github.com/iliyamo/hostel-mess/internal/model"
)

// ist is the civil timezone all booking windows are defined in.
var ist = loadIST()

func loadIST() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	// IST has no DST, so a fixed offset is equivalent when tzdata is missing.
	return time.FixedZone("IST", 5*3600+30*60)
}

// ResolveBookingDate maps the current wall-clock time to the calendar date a
// booking made right now applies to. Windows, in IST:
//
//	20:00-23:59  books tomorrow (pre-opening for the next day)
//	00:00-00:59  books today (tail of the previous evening's window)
//	06:00-15:59  books today (main window)
//
// Outside those hours booking is closed and ok is false. The result must be
// recomputed on every booking action; it changes as time passes.
func ResolveBookingDate(now time.Time) (date time.Time, ok bool) {
	local := now.In(ist)
	switch h := local.Hour(); {
	case h >= 20:
		return civilDate(local.AddDate(0, 0, 1)), true
	case h < 1:
		return civilDate(local), true
	case h >= 6 && h < 16:
		return civilDate(local), true
	}
	return time.Time{}, false
}

// AllowedChoices returns the dinner choices offered for a date given its
// shared non-veg option: Egg is always available alongside the option.
func AllowedChoices(option model.DinnerChoice) []model.DinnerChoice {
	if option == model.ChoiceEgg {
		return []model.DinnerChoice{model.ChoiceEgg}
	}
	return []model.DinnerChoice{model.ChoiceEgg, option}
}

// CurrentDate returns the IST calendar date for now. The convenor views
// fall back to it when no booking window is open.
func CurrentDate(now time.Time) time.Time {
	return civilDate(now.In(ist))
}

// civilDate truncates a timestamp to midnight IST.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, ist)
}

// SameDate reports whether two timestamps fall on the same IST calendar day.
func SameDate(a, b time.Time) bool {
	a, b = a.In(ist), b.In(ist)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
