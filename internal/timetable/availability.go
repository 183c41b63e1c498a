package timetable

import "sort"

// Occupancy records which person ids are already placed into a lesson at each
// slot. It is derived from the lesson schedule and read-only here: a person
// occupied at a slot is never free there, independent of their busy set.
type Occupancy map[Slot]map[string]struct{}

// NewOccupancy returns an empty occupancy index.
func NewOccupancy() Occupancy {
	return make(Occupancy)
}

// AddExternal records a person at a 1-based slot number, skipping invalid
// slots.
func (o Occupancy) AddExternal(external int, personID string) {
	s, ok := SlotFromExternal(external)
	if !ok {
		return
	}
	if o[s] == nil {
		o[s] = make(map[string]struct{})
	}
	o[s][personID] = struct{}{}
}

// Occupied reports whether the person is placed into a lesson at the slot.
func (o Occupancy) Occupied(personID string, s Slot) bool {
	_, ok := o[s][personID]
	return ok
}

// IsFree reports whether the busy set leaves the slot open. Occupancy is
// checked separately by the callers that have it.
func IsFree(busy SlotSet, s Slot) bool {
	return !busy.Has(s)
}

// FreeAt returns the ids of people free at the slot: neither self-declared
// busy nor occupied by a lesson. A person without a busy set counts as free.
// Ids are returned sorted for stable output.
func FreeAt(s Slot, busyByID map[string]SlotSet, occ Occupancy) []string {
	free := make([]string, 0, len(busyByID))
	for id, busy := range busyByID {
		if !IsFree(busy, s) {
			continue
		}
		if occ.Occupied(id, s) {
			continue
		}
		free = append(free, id)
	}
	sort.Strings(free)
	return free
}

// AllFreeAt reports whether every member of the group is free at the slot.
// Group members missing from busyByID are treated as having declared nothing.
func AllFreeAt(s Slot, group []string, busyByID map[string]SlotSet, occ Occupancy) bool {
	for _, id := range group {
		if !IsFree(busyByID[id], s) {
			return false
		}
		if occ.Occupied(id, s) {
			return false
		}
	}
	return true
}

// FullyDeclared classifies a week as completely filled in. Marking all 42
// slots busy is how respondents signal they are done; this is a UI
// convenience, not a correctness rule.
func FullyDeclared(busy SlotSet) bool {
	return busy.Len() == SlotsPerWeek
}
