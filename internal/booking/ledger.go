package booking

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/hostel-mess/internal/model"
)

// ErrWindowClosed is returned when a booking targets a date other than the
// one the current booking window resolves to (including "no window open").
var ErrWindowClosed = errors.New("booking window closed")

// ErrInvalidChoice is returned when dinner is booked without a choice, or
// with a choice that is not offered for the target date.
var ErrInvalidChoice = errors.New("dinner choice not offered for this date")

// BookingStore persists one meal booking per (boarder, date) through a
// single conflict-resolving upsert.
type BookingStore interface {
	Upsert(ctx context.Context, b model.MealBooking) error
}

// OptionSource reads the shared non-veg dinner option for a date.
type OptionSource interface {
	Get(ctx context.Context, date time.Time) (model.DinnerChoice, error)
}

// Ledger applies the booking policy before writing to the store. Handlers
// resolve the target date themselves; the ledger re-checks it so a stale or
// forged date can never slip through.
type Ledger struct {
	store   BookingStore
	options OptionSource
	now     func() time.Time
}

func NewLedger(store BookingStore, options OptionSource) *Ledger {
	return &Ledger{store: store, options: options, now: time.Now}
}

// Book validates the target date and dinner choice, then upserts the full
// record for (boarderID, date). A rebooking overwrites all three fields;
// partial merges never happen. The stored choice is nil unless dinner is
// booked, regardless of what the caller passed.
func (l *Ledger) Book(ctx context.Context, boarderID uint64, date time.Time, lunch, dinner bool, choice *model.DinnerChoice) error {
	target, open := ResolveBookingDate(l.now())
	if !open || !SameDate(target, date) {
		return ErrWindowClosed
	}
	var stored *model.DinnerChoice
	if dinner {
		if choice == nil {
			return ErrInvalidChoice
		}
		opt, err := l.options.Get(ctx, date)
		if err != nil {
			return err
		}
		if *choice != model.ChoiceEgg && *choice != opt {
			return ErrInvalidChoice
		}
		c := *choice
		stored = &c
	}
	return l.store.Upsert(ctx, model.MealBooking{
		BoarderID:    boarderID,
		MealDate:     date,
		Lunch:        lunch,
		Dinner:       dinner,
		DinnerChoice: stored,
	})
}
