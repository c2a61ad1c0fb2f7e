package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/hostel-mess/internal/model"
)

// DinnerOptionRepo stores the single shared non-veg option per date.
// Writes are last-writer-wins; only convenors and the superadmin reach Set.
type DinnerOptionRepo struct{ DB *sql.DB }

func NewDinnerOptionRepo(db *sql.DB) *DinnerOptionRepo { return &DinnerOptionRepo{DB: db} }

// Set upserts the option for a date, overwriting any earlier value.
func (r *DinnerOptionRepo) Set(ctx context.Context, date time.Time, choice model.DinnerChoice) error {
	const q = `INSERT INTO dinner_options (meal_date, choice)
	           VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE choice = VALUES(choice)`
	_, err := r.DB.ExecContext(ctx, q, date.Format(model.DateLayout), string(choice))
	return err
}

// Get returns the option for a date, defaulting to Chicken when unset.
func (r *DinnerOptionRepo) Get(ctx context.Context, date time.Time) (model.DinnerChoice, error) {
	var raw string
	err := r.DB.QueryRowContext(ctx,
		"SELECT choice FROM dinner_options WHERE meal_date=? LIMIT 1",
		date.Format(model.DateLayout)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ChoiceChicken, nil
	}
	if err != nil {
		return "", err
	}
	if c, ok := model.ParseDinnerChoice(raw); ok {
		return c, nil
	}
	return model.ChoiceChicken, nil
}
