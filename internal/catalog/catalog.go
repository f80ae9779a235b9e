// Package catalog holds the fixed reference data offered by the booking
// wizard: service types, frequency plans and time slots.
package catalog

// ServiceType is a bookable cleaning service. PriceCents is the one-time
// price before any frequency discount.
type ServiceType struct {
	Key         string
	Label       string
	PriceCents  int64
	Description string
}

// FrequencyPlan is a recurrence option with its percentage discount.
type FrequencyPlan struct {
	Key             string
	Label           string
	DiscountPercent int
}

// TimeSlot is a bookable start time. Key is a 24-hour HH:MM string.
type TimeSlot struct {
	Key   string
	Label string
}

// DefaultFrequency is the zero-discount plan every new draft starts on.
const DefaultFrequency = "one-time"

var services = []ServiceType{
	{Key: "residential", Label: "Residential Cleaning", PriceCents: 15000, Description: "Perfect for homes and apartments"},
	{Key: "commercial", Label: "Commercial Cleaning", PriceCents: 30000, Description: "Ideal for offices and retail spaces"},
	{Key: "deep", Label: "Deep Cleaning", PriceCents: 40000, Description: "Thorough cleaning of all spaces"},
}

var frequencies = []FrequencyPlan{
	{Key: DefaultFrequency, Label: "One-time Service", DiscountPercent: 0},
	{Key: "weekly", Label: "Weekly Service 15% OFF", DiscountPercent: 15},
	{Key: "bi-weekly", Label: "Bi-weekly Service 10% OFF", DiscountPercent: 10},
	{Key: "monthly", Label: "Monthly Service 5% OFF", DiscountPercent: 5},
}

var slots = []TimeSlot{
	{Key: "09:00", Label: "09:00 AM"},
	{Key: "10:00", Label: "10:00 AM"},
	{Key: "11:00", Label: "11:00 AM"},
	{Key: "14:00", Label: "02:00 PM"},
	{Key: "15:00", Label: "03:00 PM"},
	{Key: "16:00", Label: "04:00 PM"},
}

// Services returns the service types in display order.
func Services() []ServiceType { return append([]ServiceType(nil), services...) }

// Frequencies returns the frequency plans in display order.
func Frequencies() []FrequencyPlan { return append([]FrequencyPlan(nil), frequencies...) }

// Slots returns the time slots in chronological order.
func Slots() []TimeSlot { return append([]TimeSlot(nil), slots...) }

// Service looks up a service type by key.
func Service(key string) (ServiceType, bool) {
	for _, s := range services {
		if s.Key == key {
			return s, true
		}
	}
	return ServiceType{}, false
}

// Frequency looks up a frequency plan by key.
func Frequency(key string) (FrequencyPlan, bool) {
	for _, f := range frequencies {
		if f.Key == key {
			return f, true
		}
	}
	return FrequencyPlan{}, false
}

// Slot looks up a time slot by key.
func Slot(key string) (TimeSlot, bool) {
	for _, s := range slots {
		if s.Key == key {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// ServiceKeys returns every service key, for suggestions.
func ServiceKeys() []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, s.Key)
	}
	return out
}

// FrequencyKeys returns every frequency key, for suggestions.
func FrequencyKeys() []string {
	out := make([]string, 0, len(frequencies))
	for _, f := range frequencies {
		out = append(out, f.Key)
	}
	return out
}

// SlotKeys returns every slot key, for suggestions.
func SlotKeys() []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Key)
	}
	return out
}
