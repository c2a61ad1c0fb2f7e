// Package report derives the convenor views from a snapshot of one date's
// bookings: the per-boarder meal table with a TOTAL row and the grocery
// counts per protein. Everything here is a pure function of its input and
// is recomputed on every read.
package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/iliyamo/hostel-mess/internal/model"
)

// Row is one boarder's booking for the date, as joined with the boarder
// table. Lunch and Dinner are 0/1 so the synthetic TOTAL row can carry sums
// in the same columns, as the convenor sheet always has.
type Row struct {
	Name         string `json:"name"`
	RoomNo       string `json:"room_no"`
	Lunch        int    `json:"lunch"`
	Dinner       int    `json:"dinner"`
	DinnerChoice string `json:"dinner_choice"`
}

// Report is the assembled convenor view for one date.
type Report struct {
	Rows        []Row                      `json:"rows"` // per-boarder rows plus the TOTAL row
	TotalLunch  int                        `json:"total_lunch"`
	TotalDinner int                        `json:"total_dinner"`
	Grocery     map[model.DinnerChoice]int `json:"grocery"`
}

// Build aggregates per-boarder rows into a Report. Grocery counts only
// bookings whose dinner flag is set and whose choice matches the protein.
func Build(rows []Row) Report {
	rep := Report{
		Rows: make([]Row, 0, len(rows)+1),
		Grocery: map[model.DinnerChoice]int{
			model.ChoiceEgg:     0,
			model.ChoiceFish:    0,
			model.ChoiceChicken: 0,
		},
	}
	for _, r := range rows {
		rep.Rows = append(rep.Rows, r)
		rep.TotalLunch += r.Lunch
		rep.TotalDinner += r.Dinner
		if r.Dinner > 0 {
			if c, ok := model.ParseDinnerChoice(r.DinnerChoice); ok {
				rep.Grocery[c] += r.Dinner
			}
		}
	}
	rep.Rows = append(rep.Rows, Row{Name: "TOTAL", Lunch: rep.TotalLunch, Dinner: rep.TotalDinner})
	return rep
}

// CSV renders the meal table (including the TOTAL row) for download.
func (r Report) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"name", "room_no", "lunch", "dinner", "dinner_choice"}); err != nil {
		return nil, err
	}
	for _, row := range r.Rows {
		rec := []string{row.Name, row.RoomNo, strconv.Itoa(row.Lunch), strconv.Itoa(row.Dinner), row.DinnerChoice}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
