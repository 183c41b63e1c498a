package timetable

import "sort"

// SlotSet is an unordered set of slots. The zero value is not usable; build
// instances with NewSlotSet or FromExternal.
type SlotSet map[Slot]struct{}

// NewSlotSet returns an empty set.
func NewSlotSet(slots ...Slot) SlotSet {
	set := make(SlotSet, len(slots))
	for _, s := range slots {
		if s.Valid() {
			set[s] = struct{}{}
		}
	}
	return set
}

// FromExternal builds a set from 1-based slot numbers, skipping values
// outside the week.
func FromExternal(external []int64) SlotSet {
	set := make(SlotSet, len(external))
	for _, e := range external {
		if s, ok := SlotFromExternal(int(e)); ok {
			set[s] = struct{}{}
		}
	}
	return set
}

// Has reports membership.
func (set SlotSet) Has(s Slot) bool {
	_, ok := set[s]
	return ok
}

// Add inserts a slot; inserting an existing slot is a no-op.
func (set SlotSet) Add(s Slot) {
	if s.Valid() {
		set[s] = struct{}{}
	}
}

// Remove deletes a slot; removing an absent slot is a no-op.
func (set SlotSet) Remove(s Slot) {
	delete(set, s)
}

// Len returns the number of slots in the set.
func (set SlotSet) Len() int {
	return len(set)
}

// Clone returns an independent copy.
func (set SlotSet) Clone() SlotSet {
	clone := make(SlotSet, len(set))
	for s := range set {
		clone[s] = struct{}{}
	}
	return clone
}

// Sorted returns the slots in ascending internal order.
func (set SlotSet) Sorted() []Slot {
	slots := make([]Slot, 0, len(set))
	for s := range set {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// ExternalSorted returns the 1-based slot numbers in ascending order, the
// shape expected by busy-schedule payloads.
func (set SlotSet) ExternalSorted() []int64 {
	slots := set.Sorted()
	external := make([]int64, len(slots))
	for i, s := range slots {
		external[i] = int64(s.External())
	}
	return external
}
