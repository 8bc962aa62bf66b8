package form

import (
	"fmt"

	"bookingform/internal/catalog"
	"bookingform/internal/domain"
)

// View is the render output for one form state: everything a client needs to
// draw the page, with no state readable anywhere else.
type View struct {
	Token         string                 `json:"token"`
	BookingTypes  []OptionView           `json:"booking_types"`
	AccessMethods []OptionView           `json:"access_methods"`
	Address       domain.Address         `json:"address"`
	Details       domain.PropertyDetails `json:"details"`
	Picker        PickerView             `json:"picker"`
}

type OptionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// PickerView renders the date/time section. Days and CanConfirm are only
// populated while expanded; Summary only while collapsed.
type PickerView struct {
	State        domain.PickerState `json:"state"`
	Month        string             `json:"month"`
	HasPrevMonth bool               `json:"has_prev_month"`
	HasNextMonth bool               `json:"has_next_month"`
	Days         []DayView          `json:"days,omitempty"`
	CanConfirm   bool               `json:"can_confirm"`
	Summary      *SummaryView       `json:"summary,omitempty"`
}

type DayView struct {
	Weekday   string     `json:"weekday"`
	Date      string     `json:"date"`
	Available bool       `json:"available"`
	Slots     []SlotView `json:"slots"`
}

type SlotView struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// SummaryView is the one-line recap shown while collapsed, alongside the
// edit affordance.
type SummaryView struct {
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
	Month   string `json:"month"`
	Time    string `json:"time"`
	Line    string `json:"line"`
}

func BuildView(f *domain.FormState, cat *catalog.Catalog) *View {
	return &View{
		Token:         f.Token,
		BookingTypes:  buildOptions(cat.BookingTypes, string(f.BookingType)),
		AccessMethods: buildOptions(cat.AccessMethods, string(f.AccessMethod)),
		Address:       f.Address,
		Details:       f.Details,
		Picker:        buildPicker(f, cat),
	}
}

func buildOptions(opts []domain.Option, selected string) []OptionView {
	views := make([]OptionView, 0, len(opts))
	for _, o := range opts {
		views = append(views, OptionView{
			Value:    o.Value,
			Label:    o.Label,
			Selected: o.Value == selected,
		})
	}
	return views
}

func buildPicker(f *domain.FormState, cat *catalog.Catalog) PickerView {
	pv := PickerView{
		State: f.Picker,
		Month: cat.Month(f.MonthIndex),
	}

	if f.Picker == domain.PickerCollapsed {
		pv.Summary = buildSummary(f, cat)
		return pv
	}

	pv.HasPrevMonth = f.MonthIndex > 0
	pv.HasNextMonth = f.MonthIndex < len(cat.Months)-1
	pv.CanConfirm = f.Selection.Complete()
	pv.Days = make([]DayView, 0, len(cat.Days))
	for _, d := range cat.Days {
		pv.Days = append(pv.Days, DayView{
			Weekday:   d.Weekday,
			Date:      d.Date,
			Available: d.Available,
			Slots:     buildSlots(d, f.Selection, cat.Slots),
		})
	}
	return pv
}

// buildSlots renders one day's buttons: the flexible button first, then the
// fixed times. A button is selected exactly when it is the current
// (day, slot) pair.
func buildSlots(day domain.CalendarDay, sel domain.Selection, slots []string) []SlotView {
	views := make([]SlotView, 0, len(slots)+1)
	views = append(views, SlotView{
		ID:       domain.FlexibleSlot,
		Label:    domain.FlexibleSlotLabel,
		Selected: sel.Day == day.Date && sel.Slot == domain.FlexibleSlot,
	})
	for _, slot := range slots {
		views = append(views, SlotView{
			ID:       slot,
			Label:    slot,
			Selected: sel.Day == day.Date && sel.Slot == slot,
		})
	}
	return views
}

func buildSummary(f *domain.FormState, cat *catalog.Catalog) *SummaryView {
	weekday := ""
	if d, ok := cat.DayByDate(f.Selection.Day); ok {
		weekday = d.Weekday
	}
	month := cat.Month(f.MonthIndex)
	slot := domain.SlotSummary(f.Selection.Slot)
	return &SummaryView{
		Weekday: weekday,
		Date:    f.Selection.Day,
		Month:   month,
		Time:    slot,
		Line:    fmt.Sprintf("%s %s %s, %s", weekday, f.Selection.Day, month, slot),
	}
}
