package catalog

import "testing"

func TestCatalogSizes(t *testing.T) {
	if got := len(Services()); got != 3 {
		t.Fatalf("services = %d, want 3", got)
	}
	if got := len(Frequencies()); got != 4 {
		t.Fatalf("frequencies = %d, want 4", got)
	}
	if got := len(Slots()); got != 6 {
		t.Fatalf("slots = %d, want 6", got)
	}
}

func TestDefaultFrequencyHasNoDiscount(t *testing.T) {
	f, ok := Frequency(DefaultFrequency)
	if !ok {
		t.Fatalf("default frequency %q not in catalog", DefaultFrequency)
	}
	if f.DiscountPercent != 0 {
		t.Fatalf("default discount = %d, want 0", f.DiscountPercent)
	}
}

func TestLookups(t *testing.T) {
	s, ok := Service("deep")
	if !ok || s.PriceCents != 40000 || s.Label != "Deep Cleaning" {
		t.Fatalf("Service(deep) = %+v, %v", s, ok)
	}
	f, ok := Frequency("weekly")
	if !ok || f.DiscountPercent != 15 {
		t.Fatalf("Frequency(weekly) = %+v, %v", f, ok)
	}
	slot, ok := Slot("14:00")
	if !ok || slot.Label != "02:00 PM" {
		t.Fatalf("Slot(14:00) = %+v, %v", slot, ok)
	}
}

func TestLookupUnknownKeys(t *testing.T) {
	if _, ok := Service(""); ok {
		t.Error("empty service key resolved")
	}
	if _, ok := Service("Residential"); ok {
		t.Error("lookups must be case-sensitive")
	}
	if _, ok := Frequency("daily"); ok {
		t.Error("unknown frequency resolved")
	}
	if _, ok := Slot("9:00"); ok {
		t.Error("slot keys must match exactly")
	}
}

func TestListsAreCopies(t *testing.T) {
	list := Services()
	list[0].PriceCents = 1
	if s, _ := Service(list[0].Key); s.PriceCents == 1 {
		t.Fatal("mutating Services() result changed the catalog")
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input string
		keys  []string
		want  string
		ok    bool
	}{
		{"resdential", ServiceKeys(), "residential", true},
		{"Weekley", FrequencyKeys(), "weekly", true},
		{"biweekly", FrequencyKeys(), "bi-weekly", true},
		{"deep", ServiceKeys(), "", false},
		{"", ServiceKeys(), "", false},
		{"zzzzzz", ServiceKeys(), "", false},
		{"10:0", SlotKeys(), "10:00", true},
	}
	for _, tt := range tests {
		got, ok := Suggest(tt.input, tt.keys)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Suggest(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
