package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hostel-mess/internal/model"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 14, hour, min, 0, 0, ist)
}

func TestResolveBookingDate(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, time.March, 14, 0, 0, 0, 0, ist)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
		open bool
	}{
		{"evening pre-open start", at(20, 0), tomorrow, true},
		{"late evening", at(23, 59), tomorrow, true},
		{"midnight tail", at(0, 0), today, true},
		{"just before tail ends", at(0, 59), today, true},
		{"tail closes at one", at(1, 0), time.Time{}, false},
		{"early morning closed", at(5, 59), time.Time{}, false},
		{"main window opens", at(6, 0), today, true},
		{"mid morning", at(9, 0), today, true},
		{"last open minute", at(15, 59), today, true},
		{"main window closes", at(16, 0), time.Time{}, false},
		{"afternoon closed", at(19, 59), time.Time{}, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, open := ResolveBookingDate(tt.now)
			require.Equal(t, tt.open, open)
			if tt.open {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestResolveBookingDateConvertsToIST(t *testing.T) {
	t.Parallel()

	// 15:00 UTC is 20:30 IST, so the pre-opening window applies and the
	// target is tomorrow in IST terms.
	now := time.Date(2026, time.March, 14, 15, 0, 0, 0, time.UTC)
	got, open := ResolveBookingDate(now)
	require.True(t, open)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, ist).Format(model.DateLayout),
		got.Format(model.DateLayout))
}

func TestAllowedChoices(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []model.DinnerChoice{model.ChoiceEgg, model.ChoiceFish}, AllowedChoices(model.ChoiceFish))
	assert.Equal(t, []model.DinnerChoice{model.ChoiceEgg, model.ChoiceChicken}, AllowedChoices(model.ChoiceChicken))
	assert.Equal(t, []model.DinnerChoice{model.ChoiceEgg}, AllowedChoices(model.ChoiceEgg))
}

func TestCurrentDate(t *testing.T) {
	t.Parallel()

	got := CurrentDate(at(17, 30))
	assert.True(t, got.Equal(time.Date(2026, time.March, 14, 0, 0, 0, 0, ist)))
}
