package domain

// Facility bundles the static configuration the services operate on: court
// list, fixed daily slot enumeration, weekly class windows and the
// per-session capacity ceiling.
type Facility struct {
	Courts        []Court
	SlotTimes     []string
	ClassSlots    []ClassSlot
	ClassCapacity int
	WeeksAhead    int
}

func (f Facility) CourtByID(id string) (Court, error) {
	for _, c := range f.Courts {
		if c.ID == id {
			return c, nil
		}
	}
	return Court{}, ErrCourtNotFound
}

func (f Facility) ClassSlotByKey(key string) (ClassSlot, error) {
	for _, cs := range f.ClassSlots {
		if cs.Key == key {
			return cs, nil
		}
	}
	return ClassSlot{}, ErrClassSlotNotFound
}

func (f Facility) HasSlotTime(hhmm string) bool {
	for _, st := range f.SlotTimes {
		if st == hhmm {
			return true
		}
	}
	return false
}
