package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hostel-mess/internal/model"
)

const registerPattern = `(?s)^INSERT\s+INTO\s+boarders\s*\(name,\s*room_no,\s*username,\s*pin_hash\)\s*` +
	`SELECT\s+\?,\s*\?,\s*\?,\s*\?\s+FROM\s+DUAL\s+` +
	`WHERE\s+\(SELECT\s+COUNT\(\*\)\s+FROM\s+boarders\s+WHERE\s+room_no\s*=\s*\?\)\s*<\s*\?\s*$`

func newBoarderRepoWithMock(t *testing.T) (*BoarderRepo, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewBoarderRepo(db), mock, db
}

func TestRegisterNormalizesUsernameAndGuardsRoomCap(t *testing.T) {
	t.Parallel()

	repo, mock, db := newBoarderRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(registerPattern).
		WithArgs("Alice", "12", "alice", "hash-1", "12", model.RoomCapacity).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Register(context.Background(), "Alice", "12", "  Alice ", "hash-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterFullRoomAffectsNoRows(t *testing.T) {
	t.Parallel()

	repo, mock, db := newBoarderRepoWithMock(t)
	defer db.Close()

	// The cap check lives inside the INSERT itself: a full room makes the
	// statement succeed while touching zero rows.
	mock.ExpectExec(registerPattern).
		WithArgs("Chitra", "12", "chitra", "hash-3", "12", model.RoomCapacity).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Register(context.Background(), "Chitra", "12", "chitra", "hash-3")
	assert.ErrorIs(t, err, ErrRoomFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	repo, mock, db := newBoarderRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(registerPattern).
		WithArgs("Alice", "14", "alice", "hash-2", "14", model.RoomCapacity).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'boarders.username'"})

	_, err := repo.Register(context.Background(), "Alice", "14", "alice", "hash-2")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

const listByRoomPattern = `(?s)^SELECT\s+id,name,room_no,username,pin_hash,is_convenor,created_at\s+` +
	`FROM\s+boarders\s+WHERE\s+room_no=\?\s+ORDER\s+BY\s+name$`

func TestListByRoomScansRoster(t *testing.T) {
	t.Parallel()

	repo, mock, db := newBoarderRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "room_no", "username", "pin_hash", "is_convenor", "created_at"}).
		AddRow(1, "Alice", "12", "alice", "h1", true, now).
		AddRow(2, "Bala", "12", "bala", "h2", false, now)
	mock.ExpectQuery(listByRoomPattern).WithArgs("12").WillReturnRows(rows)

	got, err := repo.ListByRoom(context.Background(), "12")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].Name)
	assert.True(t, got[0].IsConvenor)
	assert.Equal(t, "bala", got[1].Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByRoomEmptyRoster(t *testing.T) {
	t.Parallel()

	repo, mock, db := newBoarderRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "room_no", "username", "pin_hash", "is_convenor", "created_at"})
	mock.ExpectQuery(listByRoomPattern).WithArgs("99").WillReturnRows(rows)

	_, err := repo.ListByRoom(context.Background(), "99")
	assert.ErrorIs(t, err, ErrNoBoardersInRoom)
	require.NoError(t, mock.ExpectationsWereMet())
}
