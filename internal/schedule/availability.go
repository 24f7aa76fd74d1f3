package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/arena-klein/courtbooker/internal/domain"
)

// SlotStatus is the per-slot view of a court on one date. ClassTime routes
// the slot to class sign-up instead of ordinary booking; when a slot is
// somehow both booked and class-time, class-time wins for routing (the
// degenerate configuration is rejected at startup validation, not here).
type SlotStatus struct {
	Time      string `json:"time"`
	Booked    bool   `json:"booked"`
	ClassTime bool   `json:"class_time"`
	Started   bool   `json:"started"`
}

// IsClassTime reports whether a slot starting at hhmm on the given weekday
// falls inside any class window scheduled for that weekday.
func IsClassTime(classSlots []domain.ClassSlot, day time.Weekday, hhmm string) bool {
	for _, cs := range classSlots {
		if cs.DayOfWeek == day && WithinRange(hhmm, cs.StartTime, cs.EndTime) {
			return true
		}
	}
	return false
}

// DaySlots computes the ordered per-slot states for one court and date from
// the full current booking set. Filtering happens here, not in the store.
// Started is only meaningful when date is now's date in loc.
func DaySlots(
	court domain.Court,
	date string,
	slotTimes []string,
	classSlots []domain.ClassSlot,
	bookings []*domain.Booking,
	now time.Time,
	loc *time.Location,
) ([]SlotStatus, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed date %q", domain.ErrValidation, date)
	}

	isToday := now.In(loc).Format(DateLayout) == date

	out := make([]SlotStatus, 0, len(slotTimes))
	for _, slotTime := range slotTimes {
		booked := court.FullyBooked
		if !booked {
			for _, b := range bookings {
				if b.CourtID == court.ID && b.Date == date && b.Time == slotTime {
					booked = true
					break
				}
			}
		}

		started := false
		if isToday {
			start, err := SlotStart(date, slotTime, loc)
			if err != nil {
				return nil, err
			}
			started = !now.Before(start)
		}

		out = append(out, SlotStatus{
			Time:      slotTime,
			Booked:    booked,
			ClassTime: IsClassTime(classSlots, day.Weekday(), slotTime),
			Started:   started,
		})
	}
	return out, nil
}

// SessionInstances projects every class slot forward weeks occurrences and
// returns them in chronological session-start order.
func SessionInstances(classSlots []domain.ClassSlot, weeks int, now time.Time, loc *time.Location) []domain.SessionInstance {
	var out []domain.SessionInstance
	starts := make(map[string]time.Time)

	for _, cs := range classSlots {
		for _, occ := range NextOccurrences(now.In(loc), cs.DayOfWeek, weeks) {
			date := occ.Format(DateLayout)
			start, err := SlotStart(date, cs.StartTime, loc)
			if err != nil {
				continue
			}
			inst := domain.SessionInstance{
				Slot:       cs,
				Date:       date,
				HasStarted: !now.Before(start),
			}
			starts[cs.Key+"|"+date] = start
			out = append(out, inst)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		si := starts[out[i].Slot.Key+"|"+out[i].Date]
		sj := starts[out[j].Slot.Key+"|"+out[j].Date]
		return si.Before(sj)
	})
	return out
}
