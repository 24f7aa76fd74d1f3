package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/arena-klein/courtbooker/internal/domain"
)

func newSignUpRepoMock(t *testing.T) (*SignUpRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSignUpRepo(&dbpg.DB{Master: db}), mock
}

func testSignUp(actorID string) *domain.SignUp {
	return &domain.SignUp{
		ID:         "s-" + actorID,
		ActorID:    actorID,
		ActorName:  "player " + actorID,
		ActorEmail: actorID + "@example.com",
		SlotKey:    "fri-16-20",
		Date:       "2025-03-14",
		SignedUpAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

// expectSignUpInsert scripts one successful create: session lock, seat count,
// insert, commit, in that order.
func expectSignUpInsert(mock sqlmock.Sqlmock, seatsTaken int) {
	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(seatsTaken))
	mock.ExpectExec("INSERT INTO class_signups").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestSignUpRepo_Create_LocksThenCountsThenInserts(t *testing.T) {
	repo, mock := newSignUpRepoMock(t)

	expectSignUpInsert(mock, 3)

	err := repo.Create(context.Background(), testSignUp("u1"), 12)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUpRepo_Create_SessionFull(t *testing.T) {
	repo, mock := newSignUpRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testSignUp("u13"), 12)
	assert.ErrorIs(t, err, domain.ErrClassFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUpRepo_Create_DuplicateActor(t *testing.T) {
	repo, mock := newSignUpRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectExec("INSERT INTO class_signups").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testSignUp("u1"), 12)
	assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSignUpRepo_CapacityLifecycle walks a full session: twelve distinct
// players take the twelve seats, the thirteenth is turned away, then a
// cancellation frees a seat and the next attempt lands.
func TestSignUpRepo_CapacityLifecycle(t *testing.T) {
	repo, mock := newSignUpRepoMock(t)
	ctx := context.Background()
	const capacity = 12

	for i := 0; i < capacity; i++ {
		expectSignUpInsert(mock, i)
	}
	for i := 0; i < capacity; i++ {
		err := repo.Create(ctx, testSignUp(fmt.Sprintf("u%d", i+1)), capacity)
		require.NoError(t, err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(capacity))
	mock.ExpectRollback()

	err := repo.Create(ctx, testSignUp("u13"), capacity)
	require.ErrorIs(t, err, domain.ErrClassFull)

	mock.ExpectExec("DELETE FROM class_signups").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(ctx, "s-u7"))

	expectSignUpInsert(mock, capacity-1)
	require.NoError(t, repo.Create(ctx, testSignUp("u13"), capacity))

	assert.NoError(t, mock.ExpectationsWereMet())
}
