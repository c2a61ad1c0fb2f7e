package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hostel-mess/internal/model"
	"github.com/iliyamo/hostel-mess/internal/report"
)

// The morning flow end to end: a boarder books lunch only at 09:00 and the
// convenor report for today shows one row with no dinner and empty grocery
// counts.
func TestMorningLunchOnlyScenario(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	l := testLedger(store, model.ChoiceChicken, at(9, 0))

	date, open := ResolveBookingDate(at(9, 0))
	require.True(t, open)
	require.NoError(t, l.Book(context.Background(), 1, date, true, false, nil))

	rows := make([]report.Row, 0, len(store.rows))
	for _, b := range store.rows {
		row := report.Row{Name: "alice", RoomNo: "12"}
		if b.Lunch {
			row.Lunch = 1
		}
		if b.Dinner {
			row.Dinner = 1
		}
		if b.DinnerChoice != nil {
			row.DinnerChoice = string(*b.DinnerChoice)
		}
		rows = append(rows, row)
	}
	rep := report.Build(rows)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, 1, rep.TotalLunch)
	assert.Equal(t, 0, rep.TotalDinner)
	for _, c := range []model.DinnerChoice{model.ChoiceEgg, model.ChoiceFish, model.ChoiceChicken} {
		assert.Equal(t, 0, rep.Grocery[c])
	}
}
