package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeAtExcludesBusyAndOccupied(t *testing.T) {
	busyByID := map[string]SlotSet{
		"alice": NewSlotSet(Slot(3)),
		"bob":   NewSlotSet(),
		"carol": NewSlotSet(),
	}
	occ := NewOccupancy()
	occ.AddExternal(Slot(3).External(), "carol")

	free := FreeAt(Slot(3), busyByID, occ)
	assert.Equal(t, []string{"bob"}, free)

	free = FreeAt(Slot(4), busyByID, occ)
	assert.Equal(t, []string{"alice", "bob", "carol"}, free)
}

func TestOccupancyOverridesEmptyBusySet(t *testing.T) {
	// A person placed into a lesson is never free there, even with an empty
	// busy declaration.
	occ := NewOccupancy()
	for s := Slot(0); s < SlotsPerWeek; s++ {
		occ.AddExternal(s.External(), "alice")
	}
	busyByID := map[string]SlotSet{"alice": NewSlotSet()}
	for s := Slot(0); s < SlotsPerWeek; s++ {
		assert.Empty(t, FreeAt(s, busyByID, occ), "slot %d", s)
	}
}

func TestAllFreeAt(t *testing.T) {
	busyByID := map[string]SlotSet{
		"teacher": NewSlotSet(Slot(10)),
		"s1":      NewSlotSet(),
	}
	occ := NewOccupancy()
	occ.AddExternal(Slot(11).External(), "s2")

	group := []string{"teacher", "s1", "s2"}
	assert.False(t, AllFreeAt(Slot(10), group, busyByID, occ))
	assert.False(t, AllFreeAt(Slot(11), group, busyByID, occ))
	assert.True(t, AllFreeAt(Slot(12), group, busyByID, occ))
	assert.True(t, AllFreeAt(Slot(12), nil, busyByID, occ))
}

func TestOccupancyIgnoresInvalidExternal(t *testing.T) {
	occ := NewOccupancy()
	occ.AddExternal(0, "alice")
	occ.AddExternal(43, "alice")
	assert.Empty(t, occ)
}

func TestFullyDeclared(t *testing.T) {
	set := NewSlotSet()
	for s := Slot(0); s < SlotsPerWeek; s++ {
		set.Add(s)
	}
	require.True(t, FullyDeclared(set))

	set.Remove(Slot(0))
	assert.False(t, FullyDeclared(set))
}
