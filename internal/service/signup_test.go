package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arena-klein/courtbooker/internal/domain"
	"github.com/arena-klein/courtbooker/internal/service/ports/mocks"
)

func newSignUpService(t *testing.T) (*SignUpService, *mocks.MockSignUpRepo, *mocks.MockAdminRepo, *mocks.MockEventPublisher) {
	t.Helper()

	signUpRepo := mocks.NewMockSignUpRepo(t)
	adminRepo := mocks.NewMockAdminRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := NewSignUpService(signUpRepo, adminRepo, publisher, testFacility(), time.UTC, newTestLogger(t))
	return svc, signUpRepo, adminRepo, publisher
}

func TestSignUpService_SignUp_OK(t *testing.T) {
	svc, signUpRepo, _, publisher := newSignUpService(t)

	// 2025-03-14 is a Friday.
	signUpRepo.EXPECT().GetBySession(mock.Anything, "fri-16-20", "2025-03-14", "u1").
		Return(nil, domain.ErrSignUpNotFound)
	signUpRepo.EXPECT().Create(mock.Anything, mock.Anything, 2).Return(nil)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	actor := domain.Actor{ID: "u1", Name: "alice", Email: "alice@example.com"}
	signUp, created, err := svc.SignUp(context.Background(), actor, "fri-16-20", "2025-03-14", true)

	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, signUp.ID)
	assert.Equal(t, "fri-16-20", signUp.SlotKey)
	assert.Equal(t, "2025-03-14", signUp.Date)
	assert.True(t, signUp.Experimental)

	time.Sleep(50 * time.Millisecond) // goroutine publish
}

func TestSignUpService_SignUp_DuplicateIsIdempotent(t *testing.T) {
	svc, signUpRepo, _, _ := newSignUpService(t)

	existing := &domain.SignUp{ID: "s1", ActorID: "u1", SlotKey: "fri-16-20", Date: "2025-03-14"}
	signUpRepo.EXPECT().GetBySession(mock.Anything, "fri-16-20", "2025-03-14", "u1").
		Return(existing, nil)

	signUp, created, err := svc.SignUp(context.Background(), domain.Actor{ID: "u1"}, "fri-16-20", "2025-03-14", false)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "s1", signUp.ID)
}

func TestSignUpService_SignUp_LostInsertRaceIsIdempotent(t *testing.T) {
	svc, signUpRepo, _, _ := newSignUpService(t)

	existing := &domain.SignUp{ID: "s1", ActorID: "u1", SlotKey: "fri-16-20", Date: "2025-03-14"}
	signUpRepo.EXPECT().GetBySession(mock.Anything, "fri-16-20", "2025-03-14", "u1").
		Return(nil, domain.ErrSignUpNotFound).Once()
	signUpRepo.EXPECT().Create(mock.Anything, mock.Anything, 2).Return(domain.ErrAlreadySignedUp)
	signUpRepo.EXPECT().GetBySession(mock.Anything, "fri-16-20", "2025-03-14", "u1").
		Return(existing, nil).Once()

	signUp, created, err := svc.SignUp(context.Background(), domain.Actor{ID: "u1"}, "fri-16-20", "2025-03-14", false)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "s1", signUp.ID)
}

func TestSignUpService_SignUp_ClassFull(t *testing.T) {
	svc, signUpRepo, _, _ := newSignUpService(t)

	signUpRepo.EXPECT().GetBySession(mock.Anything, "fri-16-20", "2025-03-14", "u1").
		Return(nil, domain.ErrSignUpNotFound)
	signUpRepo.EXPECT().Create(mock.Anything, mock.Anything, 2).Return(domain.ErrClassFull)

	_, _, err := svc.SignUp(context.Background(), domain.Actor{ID: "u1"}, "fri-16-20", "2025-03-14", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClassFull)
}

func TestSignUpService_SignUp_UnknownSlot(t *testing.T) {
	svc, _, _, _ := newSignUpService(t)

	_, _, err := svc.SignUp(context.Background(), domain.Actor{ID: "u1"}, "mon-10-12", "2025-03-14", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClassSlotNotFound)
}

func TestSignUpService_SignUp_WrongWeekday(t *testing.T) {
	svc, _, _, _ := newSignUpService(t)

	// 2025-03-13 is a Thursday, the slot runs on Fridays.
	_, _, err := svc.SignUp(context.Background(), domain.Actor{ID: "u1"}, "fri-16-20", "2025-03-13", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignUpService_SignUp_BadDate(t *testing.T) {
	svc, _, _, _ := newSignUpService(t)

	_, _, err := svc.SignUp(context.Background(), domain.Actor{ID: "u1"}, "fri-16-20", "14/03/2025", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignUpService_Cancel_Owner(t *testing.T) {
	svc, signUpRepo, _, publisher := newSignUpService(t)

	signUpRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.SignUp{ID: "s1", ActorID: "u1"}, nil)
	signUpRepo.EXPECT().Delete(mock.Anything, "s1").Return(nil)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	err := svc.Cancel(context.Background(), domain.Actor{ID: "u1"}, "s1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestSignUpService_Cancel_StrangerForbidden(t *testing.T) {
	svc, signUpRepo, adminRepo, _ := newSignUpService(t)

	signUpRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.SignUp{ID: "s1", ActorID: "u1"}, nil)
	adminRepo.EXPECT().IsAdmin(mock.Anything, "u2").Return(false, nil)

	err := svc.Cancel(context.Background(), domain.Actor{ID: "u2"}, "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSignUpService_Cancel_AdminOverride(t *testing.T) {
	svc, signUpRepo, adminRepo, publisher := newSignUpService(t)

	signUpRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.SignUp{ID: "s1", ActorID: "u1"}, nil)
	adminRepo.EXPECT().IsAdmin(mock.Anything, "admin1").Return(true, nil)
	signUpRepo.EXPECT().Delete(mock.Anything, "s1").Return(nil)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	err := svc.Cancel(context.Background(), domain.Actor{ID: "admin1"}, "s1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestSignUpService_Sessions(t *testing.T) {
	svc, signUpRepo, _, _ := newSignUpService(t)

	// Friday 2025-03-14 at 18:00: today's session has started.
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)

	signUpRepo.EXPECT().List(mock.Anything).Return([]*domain.SignUp{
		{ID: "s1", ActorID: "u1", SlotKey: "fri-16-20", Date: "2025-03-14"},
		{ID: "s2", ActorID: "u2", SlotKey: "fri-16-20", Date: "2025-03-14"},
		{ID: "s3", ActorID: "u2", SlotKey: "fri-16-20", Date: "2025-03-21"},
	}, nil)

	views, err := svc.Sessions(context.Background(), domain.Actor{ID: "u1"}, now)

	require.NoError(t, err)
	require.Len(t, views, 2) // WeeksAhead=2 occurrences of the single slot

	assert.Equal(t, "2025-03-14", views[0].Date)
	assert.True(t, views[0].HasStarted)
	assert.Equal(t, 2, views[0].SignUpCount)
	assert.Equal(t, 2, views[0].Capacity)
	assert.Equal(t, "s1", views[0].MySignUpID)

	assert.Equal(t, "2025-03-21", views[1].Date)
	assert.False(t, views[1].HasStarted)
	assert.Equal(t, 1, views[1].SignUpCount)
	assert.Empty(t, views[1].MySignUpID)
}

func TestSignUpService_Roster(t *testing.T) {
	svc, signUpRepo, _, _ := newSignUpService(t)

	roster := []*domain.SignUp{
		{ID: "s1", ActorID: "u1", SlotKey: "fri-16-20", Date: "2025-03-14"},
	}
	signUpRepo.EXPECT().ListBySession(mock.Anything, "fri-16-20", "2025-03-14").Return(roster, nil)

	got, err := svc.Roster(context.Background(), "fri-16-20", "2025-03-14")

	require.NoError(t, err)
	assert.Equal(t, roster, got)
}

func TestSignUpService_Roster_UnknownSlot(t *testing.T) {
	svc, _, _, _ := newSignUpService(t)

	_, err := svc.Roster(context.Background(), "mon-10-12", "2025-03-14")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClassSlotNotFound)
}
