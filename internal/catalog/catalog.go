package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bookingform/internal/domain"
)

// Catalog is the static configuration data behind the form: the enumerated
// option sets, the offerable days and the time slots shared by every day.
// Loaded once at startup, never mutated. A real availability feed would
// replace Days; until then this is fixed data.
type Catalog struct {
	BookingTypes  []domain.Option      `yaml:"booking_types"`
	AccessMethods []domain.Option      `yaml:"access_methods"`
	Months        []string             `yaml:"months"`
	Days          []domain.CalendarDay `yaml:"days"`
	Slots         []string             `yaml:"slots"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		BookingTypes: []domain.Option{
			{Value: string(domain.BookingTypeSales), Label: "Sales"},
			{Value: string(domain.BookingTypePropertyManagement), Label: "Property Management"},
			{Value: string(domain.BookingTypeCommercial), Label: "Commercial"},
			{Value: string(domain.BookingTypeOther), Label: "Other"},
		},
		AccessMethods: []domain.Option{
			{Value: string(domain.AccessMeetOnsite), Label: "Meet Onsite"},
			{Value: string(domain.AccessLockbox), Label: "Lockbox"},
			{Value: string(domain.AccessKeyCollection), Label: "Key Collection"},
		},
		Months: []string{"July 2025", "August 2025", "September 2025"},
		Days: []domain.CalendarDay{
			{Weekday: "Mon", Date: "28", Available: true},
			{Weekday: "Tue", Date: "29", Available: true},
			{Weekday: "Wed", Date: "30", Available: true},
			{Weekday: "Thu", Date: "31", Available: true},
			{Weekday: "Fri", Date: "01", Available: false},
		},
		Slots: []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
	}
}

// Load reads a catalog from a YAML file. An empty path yields the default
// catalog; a file only overrides the sections it sets.
func Load(path string) (*Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	cat.merge(&override)

	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *Catalog) merge(o *Catalog) {
	if len(o.BookingTypes) > 0 {
		c.BookingTypes = o.BookingTypes
	}
	if len(o.AccessMethods) > 0 {
		c.AccessMethods = o.AccessMethods
	}
	if len(o.Months) > 0 {
		c.Months = o.Months
	}
	if len(o.Days) > 0 {
		c.Days = o.Days
	}
	if len(o.Slots) > 0 {
		c.Slots = o.Slots
	}
}

func (c *Catalog) validate() error {
	if len(c.BookingTypes) == 0 {
		return fmt.Errorf("catalog has no booking types")
	}
	if len(c.AccessMethods) == 0 {
		return fmt.Errorf("catalog has no access methods")
	}
	if len(c.Months) == 0 {
		return fmt.Errorf("catalog has no months")
	}
	if len(c.Days) == 0 {
		return fmt.Errorf("catalog has no days")
	}
	if len(c.Slots) == 0 {
		return fmt.Errorf("catalog has no time slots")
	}
	return nil
}

func (c *Catalog) HasBookingType(v string) bool {
	return hasOption(c.BookingTypes, v)
}

func (c *Catalog) HasAccessMethod(v string) bool {
	return hasOption(c.AccessMethods, v)
}

// DayByDate finds the offered day with the given date label.
func (c *Catalog) DayByDate(date string) (domain.CalendarDay, bool) {
	for _, d := range c.Days {
		if d.Date == date {
			return d, true
		}
	}
	return domain.CalendarDay{}, false
}

// HasSlot reports whether slot is offerable: one of the fixed time labels or
// the flexible sentinel.
func (c *Catalog) HasSlot(slot string) bool {
	if slot == domain.FlexibleSlot {
		return true
	}
	for _, s := range c.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// Month returns the month label at idx, clamped into range.
func (c *Catalog) Month(idx int) string {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.Months) {
		idx = len(c.Months) - 1
	}
	return c.Months[idx]
}

func hasOption(opts []domain.Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}
