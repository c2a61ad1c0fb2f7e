package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hostel-mess/internal/model"
	"github.com/iliyamo/hostel-mess/internal/report"
)

// MealRepo persists meal bookings. The table carries a unique key on
// (boarder_id, meal_date); Upsert relies on it so the at-most-one-row
// invariant holds even under concurrent bookings for the same boarder.
type MealRepo struct{ DB *sql.DB }

func NewMealRepo(db *sql.DB) *MealRepo { return &MealRepo{DB: db} }

// Upsert inserts or fully overwrites the booking for (boarder, date) in a
// single conflict-resolving statement. Lunch, dinner and the choice are all
// replaced; there is no field-level merge.
func (r *MealRepo) Upsert(ctx context.Context, b model.MealBooking) error {
	var choice sql.NullString
	if b.DinnerChoice != nil {
		choice = sql.NullString{String: string(*b.DinnerChoice), Valid: true}
	}
	const q = `INSERT INTO meal_bookings (boarder_id, meal_date, lunch, dinner, dinner_choice)
	           VALUES (?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	               lunch = VALUES(lunch),
	               dinner = VALUES(dinner),
	               dinner_choice = VALUES(dinner_choice)`
	_, err := r.DB.ExecContext(ctx, q,
		b.BoarderID, b.MealDate.Format(model.DateLayout), b.Lunch, b.Dinner, choice)
	return err
}

// ListForDate returns the per-boarder report rows for a date, joined with
// the boarder table and ordered by room then name.
func (r *MealRepo) ListForDate(ctx context.Context, date time.Time) ([]report.Row, error) {
	const q = `SELECT b.name, b.room_no, m.lunch, m.dinner, COALESCE(m.dinner_choice, '')
	           FROM meal_bookings m
	           JOIN boarders b ON b.id = m.boarder_id
	           WHERE m.meal_date = ?
	           ORDER BY b.room_no, b.name`
	rows, err := r.DB.QueryContext(ctx, q, date.Format(model.DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]report.Row, 0)
	for rows.Next() {
		var row report.Row
		if err := rows.Scan(&row.Name, &row.RoomNo, &row.Lunch, &row.Dinner, &row.DinnerChoice); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
