package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/hostel-mess/internal/model"
)

type BoarderRepo struct{ DB *sql.DB }

func NewBoarderRepo(db *sql.DB) *BoarderRepo { return &BoarderRepo{DB: db} }

// Register inserts a new boarder with is_convenor=false. The room-capacity
// check runs inside the same INSERT statement, so two concurrent
// registrations cannot race past the two-per-room cap: the losing statement
// simply affects zero rows. A duplicate username surfaces as
// ErrUsernameTaken via the unique key.
func (r *BoarderRepo) Register(ctx context.Context, name, room, username, pinHash string) (uint64, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	const q = `INSERT INTO boarders (name, room_no, username, pin_hash)
	           SELECT ?, ?, ?, ? FROM DUAL
	           WHERE (SELECT COUNT(*) FROM boarders WHERE room_no = ?) < ?`
	res, err := r.DB.ExecContext(ctx, q, name, room, username, pinHash, room, model.RoomCapacity)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrRoomFull
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a boarder by id.
func (r *BoarderRepo) GetByID(ctx context.Context, id uint64) (model.Boarder, error) {
	var b model.Boarder
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,room_no,username,pin_hash,is_convenor,created_at FROM boarders WHERE id=? LIMIT 1",
		id).Scan(&b.ID, &b.Name, &b.RoomNo, &b.Username, &b.PINHash, &b.IsConvenor, &b.CreatedAt)
	return b, err
}

// GetByUsernameAndRoom fetches a boarder by normalized username and room.
func (r *BoarderRepo) GetByUsernameAndRoom(ctx context.Context, username, room string) (model.Boarder, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	var b model.Boarder
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,room_no,username,pin_hash,is_convenor,created_at FROM boarders WHERE username=? AND room_no=? LIMIT 1",
		username, room).Scan(&b.ID, &b.Name, &b.RoomNo, &b.Username, &b.PINHash, &b.IsConvenor, &b.CreatedAt)
	return b, err
}

// ListByRoom returns the boarders registered in a room, ordered by name.
// An empty roster is reported as ErrNoBoardersInRoom.
func (r *BoarderRepo) ListByRoom(ctx context.Context, room string) ([]model.Boarder, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,room_no,username,pin_hash,is_convenor,created_at FROM boarders WHERE room_no=? ORDER BY name",
		room)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := scanBoarders(rows)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoBoardersInRoom
	}
	return out, nil
}

// ListAll returns every boarder ordered by room then name.
func (r *BoarderRepo) ListAll(ctx context.Context) ([]model.Boarder, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,room_no,username,pin_hash,is_convenor,created_at FROM boarders ORDER BY room_no, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBoarders(rows)
}

// ListConvenors returns the boarders currently holding convenor status.
func (r *BoarderRepo) ListConvenors(ctx context.Context) ([]model.Boarder, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,room_no,username,pin_hash,is_convenor,created_at FROM boarders WHERE is_convenor=1 ORDER BY room_no, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBoarders(rows)
}

// SetConvenor grants or revokes convenor status for a boarder.
func (r *BoarderRepo) SetConvenor(ctx context.Context, id uint64, isConvenor bool) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE boarders SET is_convenor=? WHERE id=?", isConvenor, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	// n==0 can also mean the flag already had the requested value, so check
	// existence before reporting not-found.
	if n == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM boarders WHERE id=?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrBoarderNotFound
		}
	}
	return nil
}

// UpdatePIN replaces a boarder's PIN hash.
func (r *BoarderRepo) UpdatePIN(ctx context.Context, id uint64, pinHash string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE boarders SET pin_hash=? WHERE id=?", pinHash, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBoarderNotFound
	}
	return nil
}

func scanBoarders(rows *sql.Rows) ([]model.Boarder, error) {
	out := make([]model.Boarder, 0)
	for rows.Next() {
		var b model.Boarder
		if err := rows.Scan(&b.ID, &b.Name, &b.RoomNo, &b.Username, &b.PINHash, &b.IsConvenor, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
