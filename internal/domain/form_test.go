package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newForm() *FormState {
	return NewFormState("token123", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
}

func TestNewFormState_Defaults(t *testing.T) {
	f := newForm()

	assert.Equal(t, BookingTypeSales, f.BookingType)
	assert.Equal(t, AccessMeetOnsite, f.AccessMethod)
	assert.Equal(t, PickerExpanded, f.Picker)
	assert.Equal(t, Selection{}, f.Selection)
	assert.False(t, f.Selection.Complete())
	assert.Equal(t, 0, f.MonthIndex)
}

func TestPickSlot_SetsDayAndSlotTogether(t *testing.T) {
	f := newForm()

	applied := f.PickSlot("28", "11:00")

	assert.True(t, applied)
	assert.Equal(t, Selection{Day: "28", Slot: "11:00"}, f.Selection)
	assert.True(t, f.Selection.Complete())
}

func TestPickDay_SwitchingDayClearsSlot(t *testing.T) {
	f := newForm()
	f.PickSlot("28", "11:00")

	applied := f.PickDay("30")

	assert.True(t, applied)
	assert.Equal(t, "30", f.Selection.Day)
	assert.Equal(t, "", f.Selection.Slot)
	assert.False(t, f.Selection.Complete())
}

func TestPickDay_SameDayKeepsSlot(t *testing.T) {
	f := newForm()
	f.PickSlot("28", "11:00")

	f.PickDay("28")

	assert.Equal(t, Selection{Day: "28", Slot: "11:00"}, f.Selection)
}

func TestPickSlot_SwitchingDayReplacesSlotAtomically(t *testing.T) {
	f := newForm()
	f.PickSlot("28", "11:00")

	applied := f.PickSlot("30", FlexibleSlot)

	assert.True(t, applied)
	assert.Equal(t, Selection{Day: "30", Slot: FlexibleSlot}, f.Selection)
}

func TestConfirmTimes_InertWithoutCompleteSelection(t *testing.T) {
	f := newForm()

	assert.False(t, f.ConfirmTimes())
	assert.Equal(t, PickerExpanded, f.Picker)

	f.PickDay("28")
	assert.False(t, f.ConfirmTimes())
	assert.Equal(t, PickerExpanded, f.Picker)
	assert.Equal(t, Selection{Day: "28"}, f.Selection)
}

func TestConfirmTimes_CollapsesAndKeepsSelection(t *testing.T) {
	f := newForm()
	f.PickSlot("28", "11:00")

	applied := f.ConfirmTimes()

	assert.True(t, applied)
	assert.Equal(t, PickerCollapsed, f.Picker)
	assert.Equal(t, Selection{Day: "28", Slot: "11:00"}, f.Selection)
}

func TestConfirmTimes_NoOpWhileCollapsed(t *testing.T) {
	f := newForm()
	f.PickSlot("28", "11:00")
	f.ConfirmTimes()

	assert.False(t, f.ConfirmTimes())
	assert.Equal(t, PickerCollapsed, f.Picker)
}

func TestEditTimes_RoundTripPreservesSelection(t *testing.T) {
	f := newForm()
	f.PickSlot("28", "11:00")

	assert.True(t, f.ConfirmTimes())
	assert.True(t, f.EditTimes())

	assert.Equal(t, PickerExpanded, f.Picker)
	assert.Equal(t, Selection{Day: "28", Slot: "11:00"}, f.Selection)
}

func TestEditTimes_NoOpWhileExpanded(t *testing.T) {
	f := newForm()

	assert.False(t, f.EditTimes())
	assert.Equal(t, PickerExpanded, f.Picker)
}

func TestPicks_InertWhileCollapsed(t *testing.T) {
	f := newForm()
	f.PickSlot("28", "11:00")
	f.ConfirmTimes()

	assert.False(t, f.PickDay("30"))
	assert.False(t, f.PickSlot("30", FlexibleSlot))
	assert.Equal(t, Selection{Day: "28", Slot: "11:00"}, f.Selection)
}

func TestNavigateMonth_ClampsAtBounds(t *testing.T) {
	f := newForm()

	assert.False(t, f.NavigateMonth(-1, 3))
	assert.Equal(t, 0, f.MonthIndex)

	assert.True(t, f.NavigateMonth(1, 3))
	assert.True(t, f.NavigateMonth(1, 3))
	assert.Equal(t, 2, f.MonthIndex)

	assert.False(t, f.NavigateMonth(1, 3))
	assert.Equal(t, 2, f.MonthIndex)
}

func TestNavigateMonth_DoesNotTouchSelection(t *testing.T) {
	f := newForm()
	f.PickSlot("28", "11:00")

	f.NavigateMonth(1, 3)

	assert.Equal(t, Selection{Day: "28", Slot: "11:00"}, f.Selection)
	assert.Equal(t, PickerExpanded, f.Picker)
}

func TestNavigateMonth_InertWhileCollapsed(t *testing.T) {
	f := newForm()
	f.PickSlot("28", "11:00")
	f.ConfirmTimes()

	assert.False(t, f.NavigateMonth(1, 3))
	assert.Equal(t, 0, f.MonthIndex)
}

func TestSelectBookingType_ReselectIsNoOp(t *testing.T) {
	f := newForm()

	assert.False(t, f.SelectBookingType(BookingTypeSales))
	assert.True(t, f.SelectBookingType(BookingTypeCommercial))
	assert.Equal(t, BookingTypeCommercial, f.BookingType)
}

func TestSelectAccessMethod_ReselectIsNoOp(t *testing.T) {
	f := newForm()

	assert.False(t, f.SelectAccessMethod(AccessMeetOnsite))
	assert.True(t, f.SelectAccessMethod(AccessLockbox))
	assert.Equal(t, AccessLockbox, f.AccessMethod)
}

func TestSlotSummary(t *testing.T) {
	assert.Equal(t, "Flexible Time", SlotSummary(FlexibleSlot))
	assert.Equal(t, "11:00", SlotSummary("11:00"))
}

// Full walk through the picker lifecycle: pick, repick across days, confirm,
// edit, repick, confirm again.
func TestPickerLifecycle(t *testing.T) {
	f := newForm()

	// nothing picked, confirm disabled
	assert.False(t, f.Selection.Complete())
	assert.False(t, f.ConfirmTimes())

	// pick day 28 at 11:00
	f.PickSlot("28", "11:00")
	assert.Equal(t, Selection{Day: "28", Slot: "11:00"}, f.Selection)

	// switch to day 30 flexible; 11:00 must not survive the switch
	f.PickSlot("30", FlexibleSlot)
	assert.Equal(t, Selection{Day: "30", Slot: FlexibleSlot}, f.Selection)

	// confirm, edit, selection intact throughout
	assert.True(t, f.ConfirmTimes())
	assert.Equal(t, PickerCollapsed, f.Picker)
	assert.True(t, f.EditTimes())
	assert.Equal(t, PickerExpanded, f.Picker)
	assert.Equal(t, Selection{Day: "30", Slot: FlexibleSlot}, f.Selection)

	// repick a concrete time and confirm again
	f.PickSlot("30", "09:30")
	assert.True(t, f.ConfirmTimes())
	assert.Equal(t, Selection{Day: "30", Slot: "09:30"}, f.Selection)
}
