package domain

// FlexibleSlot is the sentinel slot meaning "any time that day works". It is
// offered alongside the concrete time slots for every day.
const FlexibleSlot = "flexible"

// FlexibleSlotLabel is the grid button caption for the sentinel.
const FlexibleSlotLabel = "Flexi"

// FlexibleSummaryLabel is how the sentinel reads in the collapsed summary.
const FlexibleSummaryLabel = "Flexible Time"

// CalendarDay is one offerable day. Weekday and Date are display strings, not
// validated calendar dates.
type CalendarDay struct {
	Weekday   string `json:"weekday" yaml:"weekday"`
	Date      string `json:"date" yaml:"date"`
	Available bool   `json:"available" yaml:"available"`
}

// Option is one entry of an enumerated single-select set.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// SlotSummary renders a slot identifier for the collapsed summary line: the
// sentinel reads "Flexible Time", any concrete slot reads as its own label.
func SlotSummary(slot string) string {
	if slot == FlexibleSlot {
		return FlexibleSummaryLabel
	}
	return slot
}
