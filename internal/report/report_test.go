package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hostel-mess/internal/model"
)

func TestBuildTotalsAndGrocery(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{Name: "Alice", RoomNo: "12", Lunch: 1, Dinner: 1, DinnerChoice: "Egg"},
		{Name: "Bala", RoomNo: "14", Lunch: 0, Dinner: 1, DinnerChoice: "Fish"},
	}
	rep := Build(rows)

	assert.Equal(t, 1, rep.TotalLunch)
	assert.Equal(t, 2, rep.TotalDinner)
	assert.Equal(t, 1, rep.Grocery[model.ChoiceEgg])
	assert.Equal(t, 1, rep.Grocery[model.ChoiceFish])
	assert.Equal(t, 0, rep.Grocery[model.ChoiceChicken])

	require.Len(t, rep.Rows, 3)
	total := rep.Rows[2]
	assert.Equal(t, "TOTAL", total.Name)
	assert.Equal(t, 1, total.Lunch)
	assert.Equal(t, 2, total.Dinner)
}

func TestBuildIgnoresChoiceWithoutDinner(t *testing.T) {
	t.Parallel()

	// A lunch-only row should never be counted toward groceries, whatever
	// its choice column holds.
	rep := Build([]Row{{Name: "Chitra", RoomNo: "7", Lunch: 1, Dinner: 0, DinnerChoice: "Chicken"}})

	assert.Equal(t, 0, rep.Grocery[model.ChoiceChicken])
	assert.Equal(t, 1, rep.TotalLunch)
	assert.Equal(t, 0, rep.TotalDinner)
}

func TestBuildEmptySnapshot(t *testing.T) {
	t.Parallel()

	rep := Build(nil)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "TOTAL", rep.Rows[0].Name)
	assert.Equal(t, 0, rep.TotalLunch)
	assert.Equal(t, 0, rep.TotalDinner)
	assert.Equal(t, 0, rep.Grocery[model.ChoiceEgg])
}

func TestCSV(t *testing.T) {
	t.Parallel()

	rep := Build([]Row{{Name: "Alice", RoomNo: "12", Lunch: 1, Dinner: 1, DinnerChoice: "Egg"}})
	data, err := rep.CSV()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,room_no,lunch,dinner,dinner_choice", lines[0])
	assert.Equal(t, "Alice,12,1,1,Egg", lines[1])
	assert.Equal(t, "TOTAL,,1,1,", lines[2])
}
