package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/hostel-mess/internal/model"
)

// NoticeRepo appends to and reads the notice board. Notices are never
// mutated or deleted by the application.
type NoticeRepo struct{ DB *sql.DB }

func NewNoticeRepo(db *sql.DB) *NoticeRepo { return &NoticeRepo{DB: db} }

// Create appends a notice. The posted_by foreign key requires the poster to
// be a registered boarder; a violation maps to ErrBoarderNotFound.
func (r *NoticeRepo) Create(ctx context.Context, text, postedBy string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO notices (notice, posted_by) VALUES (?, ?)", text, postedBy)
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "1452") {
		return ErrBoarderNotFound
	}
	return err
}

// ListRecent returns up to limit notices posted within the last 24 hours,
// newest first, each joined with the poster's display name.
func (r *NoticeRepo) ListRecent(ctx context.Context, limit int) ([]model.Notice, error) {
	const q = `SELECT n.id, n.notice, n.posted_by, b.name, n.created_at
	           FROM notices n
	           JOIN boarders b ON b.username = n.posted_by
	           WHERE n.created_at >= NOW() - INTERVAL 1 DAY
	           ORDER BY n.created_at DESC, n.id DESC
	           LIMIT ?`
	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Notice, 0, limit)
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(&n.ID, &n.Text, &n.PostedBy, &n.PosterName, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
