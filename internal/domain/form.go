package domain

import "time"

type BookingType string

const (
	BookingTypeSales              BookingType = "sales"
	BookingTypePropertyManagement BookingType = "property_management"
	BookingTypeCommercial         BookingType = "commercial"
	BookingTypeOther              BookingType = "other"
)

type AccessMethod string

const (
	AccessMeetOnsite    AccessMethod = "meet_onsite"
	AccessLockbox       AccessMethod = "lockbox"
	AccessKeyCollection AccessMethod = "key_collection"
)

type PickerState string

const (
	PickerExpanded  PickerState = "EXPANDED"
	PickerCollapsed PickerState = "COLLAPSED"
)

// Selection is the current (day, slot) pick. Empty string means not picked.
// A slot is only meaningful together with the day it was picked under:
// switching day discards the slot.
type Selection struct {
	Day  string `json:"day"`
	Slot string `json:"slot"`
}

func (s Selection) Complete() bool {
	return s.Day != "" && s.Slot != ""
}

type Address struct {
	Line   string `json:"line"`
	Manual bool   `json:"manual"`
}

type PropertyDetails struct {
	Bedrooms  int `json:"bedrooms"`
	Bathrooms int `json:"bathrooms"`
	CarSpaces int `json:"car_spaces"`
}

// FormState holds everything a single booking form instance tracks. All
// mutation goes through the transition methods below; nothing else writes to
// the picker fields.
type FormState struct {
	Token        string          `json:"token"`
	BookingType  BookingType     `json:"booking_type"`
	AccessMethod AccessMethod    `json:"access_method"`
	Address      Address         `json:"address"`
	Details      PropertyDetails `json:"details"`
	Picker       PickerState     `json:"picker"`
	Selection    Selection       `json:"selection"`
	MonthIndex   int             `json:"month_index"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewFormState returns a fresh form with the defaults mandated for every new
// booking: sales, meet onsite, picker expanded, nothing picked.
func NewFormState(token string, now time.Time) *FormState {
	return &FormState{
		Token:        token,
		BookingType:  BookingTypeSales,
		AccessMethod: AccessMeetOnsite,
		Picker:       PickerExpanded,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// PickDay selects day. Changing day clears any slot picked under the previous
// day. Inert while collapsed: the day buttons only exist on the expanded grid.
func (f *FormState) PickDay(day string) bool {
	if f.Picker != PickerExpanded || day == "" {
		return false
	}
	if f.Selection.Day != day {
		f.Selection.Slot = ""
	}
	f.Selection.Day = day
	return true
}

// PickSlot selects slot under day in one step. Every time/flexi button carries
// both values, so a day switch and the new slot land atomically: the cleared
// intermediate selection is never observable.
func (f *FormState) PickSlot(day, slot string) bool {
	if f.Picker != PickerExpanded || slot == "" {
		return false
	}
	if !f.PickDay(day) {
		return false
	}
	f.Selection.Slot = slot
	return true
}

// ConfirmTimes collapses the picker into its summary. Guard, not an error:
// with an incomplete selection nothing happens, which must hold even when
// called programmatically rather than through a disabled button.
func (f *FormState) ConfirmTimes() bool {
	if f.Picker != PickerExpanded || !f.Selection.Complete() {
		return false
	}
	f.Picker = PickerCollapsed
	return true
}

// EditTimes re-expands a collapsed picker. The selection survives so editing
// resumes from the prior picks.
func (f *FormState) EditTimes() bool {
	if f.Picker != PickerCollapsed {
		return false
	}
	f.Picker = PickerExpanded
	return true
}

// NavigateMonth moves the month label cursor by delta, clamped to
// [0, monthCount). Display only: the offered day list never follows the
// month cursor.
func (f *FormState) NavigateMonth(delta, monthCount int) bool {
	if f.Picker != PickerExpanded {
		return false
	}
	next := f.MonthIndex + delta
	if next < 0 || next >= monthCount {
		return false
	}
	f.MonthIndex = next
	return true
}

func (f *FormState) SelectBookingType(v BookingType) bool {
	if f.BookingType == v {
		return false
	}
	f.BookingType = v
	return true
}

func (f *FormState) SelectAccessMethod(v AccessMethod) bool {
	if f.AccessMethod == v {
		return false
	}
	f.AccessMethod = v
	return true
}
