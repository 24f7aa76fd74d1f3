package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/arena-klein/courtbooker/internal/domain"
	"github.com/arena-klein/courtbooker/internal/handler/dto"
	"github.com/arena-klein/courtbooker/internal/middleware"
	"github.com/arena-klein/courtbooker/internal/schedule"
	"github.com/arena-klein/courtbooker/internal/service"
)

type BookingSvc interface {
	Create(ctx context.Context, actor domain.Actor, in domain.CreateBookingInput) (*domain.Booking, error)
	Update(ctx context.Context, actor domain.Actor, bookingID string, in domain.UpdateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, actor domain.Actor, bookingID string) error
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByActor(ctx context.Context, actorID string) ([]*domain.Booking, error)
}

type SignUpSvc interface {
	SignUp(ctx context.Context, actor domain.Actor, slotKey, date string, experimental bool) (*domain.SignUp, bool, error)
	Cancel(ctx context.Context, actor domain.Actor, signUpID string) error
	Sessions(ctx context.Context, actor domain.Actor, now time.Time) ([]service.SessionView, error)
	Roster(ctx context.Context, slotKey, date string) ([]*domain.SignUp, error)
}

type AvailabilitySvc interface {
	Courts() []domain.Court
	DaySlots(ctx context.Context, courtID, date string, now time.Time) (domain.Court, []schedule.SlotStatus, error)
}

type EventHub interface {
	Subscribe() (<-chan domain.Event, func())
}

type Handler struct {
	bookingService      BookingSvc
	signUpService       SignUpSvc
	availabilityService AvailabilitySvc
	hub                 EventHub
}

func NewHandler(bookingService BookingSvc, signUpService SignUpSvc, availabilityService AvailabilitySvc, hub EventHub) *Handler {
	return &Handler{
		bookingService:      bookingService,
		signUpService:       signUpService,
		availabilityService: availabilityService,
		hub:                 hub,
	}
}

// Courts

func (h *Handler) ListCourts(c *ginext.Context) {
	courts := h.availabilityService.Courts()

	resp := make([]dto.CourtResponse, 0, len(courts))
	for _, court := range courts {
		resp = append(resp, dto.ToCourtResponse(court))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	court, slots, err := h.availabilityService.DaySlots(c.Request.Context(), c.Param("id"), date, time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(court, date, slots))
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMyBookings(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByActor(c.Request.Context(), actor.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), actor, domain.CreateBookingInput{
		CourtID:    req.CourtID,
		Date:       req.Date,
		Time:       req.Time,
		OnBehalfOf: req.OnBehalfOf,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), actor, c.Param("id"), domain.UpdateBookingInput{
		Date:       req.Date,
		Time:       req.Time,
		OnBehalfOf: req.OnBehalfOf,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Class sessions

func (h *Handler) ListSessions(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	sessions, err := h.signUpService.Sessions(c.Request.Context(), actor, time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetRoster(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	roster, err := h.signUpService.Roster(c.Request.Context(), c.Param("key"), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SignUpResponse, 0, len(roster))
	for _, s := range roster {
		resp = append(resp, dto.ToSignUpResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateSignUp(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	signUp, created, err := h.signUpService.SignUp(c.Request.Context(), actor, c.Param("key"), req.Date, req.Experimental)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToSignUpResponse(signUp))
}

func (h *Handler) CancelSignUp(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.signUpService.Cancel(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) actor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
	}
	return actor, ok
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCourtNotFound),
		errors.Is(err, domain.ErrClassSlotNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrSignUpNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrClassFull):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
