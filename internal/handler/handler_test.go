package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/arena-klein/courtbooker/internal/domain"
	"github.com/arena-klein/courtbooker/internal/handler/dto"
	hmocks "github.com/arena-klein/courtbooker/internal/handler/mocks"
	"github.com/arena-klein/courtbooker/internal/schedule"
	"github.com/arena-klein/courtbooker/internal/service"
)

var testActor = domain.Actor{ID: "u1", Name: "alice", Email: "alice@example.com"}

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockSignUpSvc, *hmocks.MockAvailabilitySvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	signUpSvc := hmocks.NewMockSignUpSvc(t)
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)

	h := NewHandler(bookingSvc, signUpSvc, availabilitySvc, hmocks.NewMockEventHub(t))

	r := ginext.New("test")
	api := r.Group("/api")
	api.Use(func(c *ginext.Context) {
		c.Set("actor", testActor)
		c.Next()
	})
	{
		api.GET("/courts", h.ListCourts)
		api.GET("/courts/:id/availability", h.GetAvailability)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/my", h.GetMyBookings)
		api.POST("/bookings", h.CreateBooking)
		api.PATCH("/bookings/:id", h.UpdateBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.GET("/classes", h.ListSessions)
		api.GET("/classes/:key/roster", h.GetRoster)
		api.POST("/classes/:key/signups", h.CreateSignUp)
		api.DELETE("/signups/:id", h.CancelSignUp)
	}

	return bookingSvc, signUpSvc, availabilitySvc, r
}

// --- Courts and availability ---

func TestHandler_ListCourts(t *testing.T) {
	_, _, availabilitySvc, r := setupRouter(t)

	availabilitySvc.EXPECT().Courts().Return([]domain.Court{
		{ID: "covered-court", Name: "Covered Court", Type: domain.CourtTypeCovered},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CourtResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "covered-court", resp[0].ID)
}

func TestHandler_GetAvailability_Success(t *testing.T) {
	_, _, availabilitySvc, r := setupRouter(t)

	court := domain.Court{ID: "covered-court", Name: "Covered Court", Type: domain.CourtTypeCovered}
	slots := []schedule.SlotStatus{
		{Time: "10:00", Booked: true},
		{Time: "11:00"},
	}
	availabilitySvc.EXPECT().DaySlots(mock.Anything, "covered-court", "2025-03-13", mock.Anything).
		Return(court, slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courts/covered-court/availability?date=2025-03-13", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-13", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[0].Booked)
}

func TestHandler_GetAvailability_MissingDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courts/covered-court/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability_CourtNotFound(t *testing.T) {
	_, _, availabilitySvc, r := setupRouter(t)

	availabilitySvc.EXPECT().DaySlots(mock.Anything, "missing", "2025-03-13", mock.Anything).
		Return(domain.Court{}, nil, domain.ErrCourtNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courts/missing/availability?date=2025-03-13", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := &domain.Booking{
		ID:        "b1",
		CourtID:   "covered-court",
		CourtName: "Covered Court",
		CourtType: domain.CourtTypeCovered,
		Date:      "2025-03-13",
		Time:      "16:00",
		ActorID:   testActor.ID,
		ActorName: testActor.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	bookingSvc.EXPECT().Create(mock.Anything, testActor, domain.CreateBookingInput{
		CourtID: "covered-court",
		Date:    "2025-03-13",
		Time:    "16:00",
	}).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CourtID: "covered-court",
		Date:    "2025-03-13",
		Time:    "16:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.ID)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, testActor, mock.Anything).
		Return(nil, domain.ErrSlotTaken)

	body := []byte(`{"court_id":"covered-court","date":"2025-03-13","time":"16:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_StoreFailureRecordedForAccessLog(t *testing.T) {
	bookingSvc := hmocks.NewMockBookingSvc(t)
	h := NewHandler(bookingSvc, hmocks.NewMockSignUpSvc(t), hmocks.NewMockAvailabilitySvc(t), hmocks.NewMockEventHub(t))

	var logged any
	r := ginext.New("test")
	api := r.Group("/api")
	api.Use(func(c *ginext.Context) {
		c.Set("actor", testActor)
		c.Next()
		logged, _ = c.Get("error")
	})
	api.POST("/bookings", h.CreateBooking)

	bookingSvc.EXPECT().Create(mock.Anything, testActor, mock.Anything).
		Return(nil, errors.New("insert booking: connection reset by peer"))

	body := []byte(`{"court_id":"covered-court","date":"2025-03-13","time":"16:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "insert booking: connection reset by peer", logged)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestHandler_CreateBooking_Forbidden(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, testActor, mock.Anything).
		Return(nil, domain.ErrForbidden)

	body := []byte(`{"court_id":"covered-court","date":"2025-03-13","time":"16:00","on_behalf_of":"Bob"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"court_id":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetMyBookings(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().ListByActor(mock.Anything, testActor.ID).Return([]*domain.Booking{
		{ID: "b1", ActorID: testActor.ID},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/my", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestHandler_UpdateBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	updated := &domain.Booking{ID: "b1", Date: "2025-03-20", Time: "17:00"}
	bookingSvc.EXPECT().Update(mock.Anything, testActor, "b1", mock.Anything).Return(updated, nil)

	body := []byte(`{"date":"2025-03-20","time":"17:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/b1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-20", resp.Date)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, testActor, "b1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, testActor, "missing").Return(domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Class sessions ---

func TestHandler_ListSessions(t *testing.T) {
	_, signUpSvc, _, r := setupRouter(t)

	signUpSvc.EXPECT().Sessions(mock.Anything, testActor, mock.Anything).Return([]service.SessionView{
		{
			Slot:        domain.ClassSlot{Key: "fri-16-20", Label: "Friday class", StartTime: "16:00", EndTime: "20:00"},
			Date:        "2025-03-14",
			SignUpCount: 3,
			Capacity:    20,
			MySignUpID:  "s1",
		},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "fri-16-20", resp[0].SlotKey)
	assert.Equal(t, "s1", resp[0].MySignUpID)
}

func TestHandler_CreateSignUp_Created(t *testing.T) {
	_, signUpSvc, _, r := setupRouter(t)

	signUp := &domain.SignUp{ID: "s1", ActorID: testActor.ID, SlotKey: "fri-16-20", Date: "2025-03-14"}
	signUpSvc.EXPECT().SignUp(mock.Anything, testActor, "fri-16-20", "2025-03-14", false).
		Return(signUp, true, nil)

	body := []byte(`{"date":"2025-03-14"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classes/fri-16-20/signups", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateSignUp_Idempotent(t *testing.T) {
	_, signUpSvc, _, r := setupRouter(t)

	signUp := &domain.SignUp{ID: "s1", ActorID: testActor.ID, SlotKey: "fri-16-20", Date: "2025-03-14"}
	signUpSvc.EXPECT().SignUp(mock.Anything, testActor, "fri-16-20", "2025-03-14", false).
		Return(signUp, false, nil)

	body := []byte(`{"date":"2025-03-14"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classes/fri-16-20/signups", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CreateSignUp_ClassFull(t *testing.T) {
	_, signUpSvc, _, r := setupRouter(t)

	signUpSvc.EXPECT().SignUp(mock.Anything, testActor, "fri-16-20", "2025-03-14", false).
		Return(nil, false, domain.ErrClassFull)

	body := []byte(`{"date":"2025-03-14"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classes/fri-16-20/signups", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetRoster(t *testing.T) {
	_, signUpSvc, _, r := setupRouter(t)

	signUpSvc.EXPECT().Roster(mock.Anything, "fri-16-20", "2025-03-14").Return([]*domain.SignUp{
		{ID: "s1", ActorName: "alice", SlotKey: "fri-16-20", Date: "2025-03-14"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes/fri-16-20/roster?date=2025-03-14", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SignUpResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "alice", resp[0].ActorName)
}

func TestHandler_CancelSignUp_Forbidden(t *testing.T) {
	_, signUpSvc, _, r := setupRouter(t)

	signUpSvc.EXPECT().Cancel(mock.Anything, testActor, "s1").Return(domain.ErrForbidden)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/signups/s1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Unauthenticated(t *testing.T) {
	bookingSvc := hmocks.NewMockBookingSvc(t)
	signUpSvc := hmocks.NewMockSignUpSvc(t)
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)
	h := NewHandler(bookingSvc, signUpSvc, availabilitySvc, hmocks.NewMockEventHub(t))

	r := ginext.New("test")
	r.GET("/api/bookings/my", h.GetMyBookings) // no actor in context

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/my", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
