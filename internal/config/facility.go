package config

import (
	"fmt"
	"time"

	"github.com/arena-klein/courtbooker/internal/domain"
	"github.com/arena-klein/courtbooker/internal/schedule"
)

// Static facility configuration: the court list, the fixed daily slot
// enumeration and the weekly class windows. Not runtime-mutable; changing
// any of it is a deploy.

var Courts = []domain.Court{
	{
		ID:          "covered-court",
		Name:        "Covered Court",
		Type:        domain.CourtTypeCovered,
		Description: "Play comfortably whatever the weather on the covered court.",
	},
	{
		ID:          "uncovered-court",
		Name:        "Open-Air Court",
		Type:        domain.CourtTypeUncovered,
		Description: "Enjoy the sun on the spacious open-air court.",
	},
}

var SlotTimes = []string{
	"07:00", "08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

var ClassSlots = []domain.ClassSlot{
	{Key: "fri-16-20", Label: "Friday Session", DayOfWeek: time.Friday, StartTime: "16:00", EndTime: "20:00"},
	{Key: "sat-16-20", Label: "Saturday Session", DayOfWeek: time.Saturday, StartTime: "16:00", EndTime: "20:00"},
	{Key: "sun-16-20", Label: "Sunday Session", DayOfWeek: time.Sunday, StartTime: "16:00", EndTime: "20:00"},
}

// Facility combines the compiled-in configuration with the deploy-tunable
// capacity and projection window.
func Facility(cfg FacilityConfig) domain.Facility {
	return domain.Facility{
		Courts:        Courts,
		SlotTimes:     SlotTimes,
		ClassSlots:    ClassSlots,
		ClassCapacity: cfg.ClassCapacity,
		WeeksAhead:    cfg.WeeksAhead,
	}
}

// ValidateFacility rejects malformed static configuration at startup. The
// availability calculator assumes a slot is never legitimately both booked
// and class-time, so degenerate window definitions must not get this far.
func ValidateFacility() error {
	return validateFacility(Courts, SlotTimes, ClassSlots)
}

func validateFacility(courts []domain.Court, slotTimes []string, classSlots []domain.ClassSlot) error {
	if len(courts) == 0 {
		return fmt.Errorf("no courts configured")
	}
	courtIDs := make(map[string]struct{}, len(courts))
	for _, c := range courts {
		if c.ID == "" || c.Name == "" {
			return fmt.Errorf("court %q: id and name are required", c.ID)
		}
		if !c.Type.Valid() {
			return fmt.Errorf("court %q: invalid type %q", c.ID, c.Type)
		}
		if _, dup := courtIDs[c.ID]; dup {
			return fmt.Errorf("duplicate court id %q", c.ID)
		}
		courtIDs[c.ID] = struct{}{}
	}

	if len(slotTimes) == 0 {
		return fmt.Errorf("no slot times configured")
	}
	prev := -1
	for _, st := range slotTimes {
		m, err := schedule.MinutesOfDay(st)
		if err != nil {
			return fmt.Errorf("slot time %q: %w", st, err)
		}
		if m <= prev {
			return fmt.Errorf("slot times must be strictly ascending, got %q", st)
		}
		prev = m
	}

	keys := make(map[string]struct{}, len(classSlots))
	for _, cs := range classSlots {
		if cs.Key == "" || cs.Label == "" {
			return fmt.Errorf("class slot %q: key and label are required", cs.Key)
		}
		if _, dup := keys[cs.Key]; dup {
			return fmt.Errorf("duplicate class slot key %q", cs.Key)
		}
		keys[cs.Key] = struct{}{}
		if cs.DayOfWeek < time.Sunday || cs.DayOfWeek > time.Saturday {
			return fmt.Errorf("class slot %q: day of week out of range", cs.Key)
		}
		start, err := schedule.MinutesOfDay(cs.StartTime)
		if err != nil {
			return fmt.Errorf("class slot %q start: %w", cs.Key, err)
		}
		end, err := schedule.MinutesOfDay(cs.EndTime)
		if err != nil {
			return fmt.Errorf("class slot %q end: %w", cs.Key, err)
		}
		if start >= end {
			return fmt.Errorf("class slot %q: empty time range %s-%s", cs.Key, cs.StartTime, cs.EndTime)
		}
	}

	return nil
}
