package dto

import (
	"time"

	"github.com/arena-klein/courtbooker/internal/domain"
	"github.com/arena-klein/courtbooker/internal/schedule"
	"github.com/arena-klein/courtbooker/internal/service"
)

type CourtResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Description     string `json:"description,omitempty"`
	FullyBooked     bool   `json:"fully_booked"`
	FullyBookedNote string `json:"fully_booked_note,omitempty"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Booked    bool   `json:"booked"`
	ClassTime bool   `json:"class_time"`
	Started   bool   `json:"started"`
}

type AvailabilityResponse struct {
	Court CourtResponse  `json:"court"`
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	CourtID    string `json:"court_id"`
	CourtName  string `json:"court_name"`
	CourtType  string `json:"court_type"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	ActorID    string `json:"actor_id"`
	ActorName  string `json:"actor_name"`
	OnBehalfOf string `json:"on_behalf_of,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type SessionResponse struct {
	SlotKey     string `json:"slot_key"`
	Label       string `json:"label"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	HasStarted  bool   `json:"has_started"`
	SignUpCount int    `json:"sign_up_count"`
	Capacity    int    `json:"capacity"`
	MySignUpID  string `json:"my_sign_up_id,omitempty"`
}

type SignUpResponse struct {
	ID           string `json:"id"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
	SlotKey      string `json:"slot_key"`
	Date         string `json:"date"`
	Experimental bool   `json:"experimental"`
	SignedUpAt   string `json:"signed_up_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCourtResponse(c domain.Court) CourtResponse {
	return CourtResponse{
		ID:              c.ID,
		Name:            c.Name,
		Type:            string(c.Type),
		Description:     c.Description,
		FullyBooked:     c.FullyBooked,
		FullyBookedNote: c.FullyBookedNote,
	}
}

func ToAvailabilityResponse(court domain.Court, date string, slots []schedule.SlotStatus) AvailabilityResponse {
	resp := AvailabilityResponse{
		Court: ToCourtResponse(court),
		Date:  date,
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			Time:      s.Time,
			Booked:    s.Booked,
			ClassTime: s.ClassTime,
			Started:   s.Started,
		})
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		CourtID:    b.CourtID,
		CourtName:  b.CourtName,
		CourtType:  string(b.CourtType),
		Date:       b.Date,
		Time:       b.Time,
		ActorID:    b.ActorID,
		ActorName:  b.ActorName,
		OnBehalfOf: b.OnBehalfOf,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToSessionResponse(v service.SessionView) SessionResponse {
	return SessionResponse{
		SlotKey:     v.Slot.Key,
		Label:       v.Slot.Label,
		Date:        v.Date,
		StartTime:   v.Slot.StartTime,
		EndTime:     v.Slot.EndTime,
		HasStarted:  v.HasStarted,
		SignUpCount: v.SignUpCount,
		Capacity:    v.Capacity,
		MySignUpID:  v.MySignUpID,
	}
}

func ToSignUpResponse(s *domain.SignUp) SignUpResponse {
	return SignUpResponse{
		ID:           s.ID,
		ActorID:      s.ActorID,
		ActorName:    s.ActorName,
		SlotKey:      s.SlotKey,
		Date:         s.Date,
		Experimental: s.Experimental,
		SignedUpAt:   s.SignedUpAt.Format(time.RFC3339),
	}
}
