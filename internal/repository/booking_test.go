package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/arena-klein/courtbooker/internal/domain"
)

func newBookingRepoMock(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookingRepo(&dbpg.DB{Master: db}), mock
}

func testBooking() *domain.Booking {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:        "b1",
		CourtID:   "covered-court",
		CourtName: "Covered Court",
		CourtType: domain.CourtTypeCovered,
		Date:      "2025-03-13",
		Time:      "16:00",
		ActorID:   "u1",
		ActorName: "alice",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBookingRepo_Create(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), testBooking())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_Create_DuplicateSlot(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	// The insert is retried, every attempt hits the same unique index on
	// (court_id, date, slot_time).
	for i := 0; i < 3; i++ {
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnError(&pq.Error{Code: "23505"})
	}

	err := repo.Create(context.Background(), testBooking())
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestBookingRepo_Update_TargetConflict(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	for i := 0; i < 3; i++ {
		mock.ExpectExec("UPDATE bookings").
			WillReturnError(&pq.Error{Code: "23505"})
	}

	err := repo.Update(context.Background(), testBooking())
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestBookingRepo_Update_NotFound(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), testBooking())
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_Delete_NotFound(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectExec("DELETE FROM bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_GetByID_NotFound(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	cols := []string{
		"id", "court_id", "court_name", "court_type", "date", "slot_time",
		"actor_id", "actor_name", "on_behalf_of", "created_at", "updated_at",
	}
	mock.ExpectQuery("SELECT .+ FROM bookings").
		WillReturnRows(sqlmock.NewRows(cols))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
