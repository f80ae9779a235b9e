package booking

import (
	"reflect"
	"testing"
	"time"
)

func validDetails() Draft {
	d := NewDraft()
	d.Name = "Aisha Rahman"
	d.Email = "aisha@example.com"
	d.Phone = "+60123456789"
	d.Address = "12 Jalan Ampang, Kuala Lumpur"
	return d
}

func TestValidateServiceStep(t *testing.T) {
	d := NewDraft()
	errs := Validate(StepService, d)
	if !reflect.DeepEqual(errs.Fields(), []Field{FieldServiceType}) {
		t.Fatalf("fields = %v, want [serviceType]", errs.Fields())
	}
	if errs[FieldServiceType].Kind != MissingField {
		t.Errorf("kind = %v, want missing", errs[FieldServiceType].Kind)
	}
	if got := errs.Message(FieldServiceType); got != "Please select a service type" {
		t.Errorf("message = %q", got)
	}

	d.ServiceType = "castle"
	errs = Validate(StepService, d)
	if errs[FieldServiceType].Kind != UnresolvedReference {
		t.Errorf("unknown service kind = %v, want unresolved", errs[FieldServiceType].Kind)
	}
	if errs.Message(FieldServiceType) != "Please select a service type" {
		t.Errorf("unresolved reference should read like a missing field, got %q", errs.Message(FieldServiceType))
	}

	d.ServiceType = "residential"
	if errs := Validate(StepService, d); !errs.Empty() {
		t.Fatalf("valid service rejected: %v", errs)
	}
}

func TestValidateScheduleStep(t *testing.T) {
	d := NewDraft()
	errs := Validate(StepSchedule, d)
	if !reflect.DeepEqual(errs.Fields(), []Field{FieldDate, FieldTime}) {
		t.Fatalf("fields = %v, want [date time]", errs.Fields())
	}

	d.Date = "2026-10-20"
	d.Time = "12:00"
	errs = Validate(StepSchedule, d)
	if !reflect.DeepEqual(errs.Fields(), []Field{FieldTime}) {
		t.Fatalf("fields = %v, want [time]", errs.Fields())
	}
	if errs[FieldTime].Kind != UnresolvedReference {
		t.Errorf("kind = %v, want unresolved", errs[FieldTime].Kind)
	}

	d.Time = "15:00"
	if errs := Validate(StepSchedule, d); errs != nil {
		t.Fatalf("valid schedule rejected: %v", errs)
	}
}

func TestValidateScheduleAcceptsPastDatesByDefault(t *testing.T) {
	d := NewDraft()
	d.Date = "1999-01-01"
	d.Time = "09:00"
	if errs := Validate(StepSchedule, d); !errs.Empty() {
		t.Fatalf("past date should pass standard rules: %v", errs)
	}
}

func TestValidateRejectPastDates(t *testing.T) {
	today := func() time.Time { return time.Date(2026, 10, 14, 18, 30, 0, 0, time.Local) }
	r := Rules{RejectPastDates: true, Today: today}

	tests := []struct {
		date string
		ok   bool
		kind Kind
	}{
		{"2026-10-14", true, 0},
		{"2026-12-01", true, 0},
		{"2026-10-13", false, MalformedField},
		{"14/10/2026", false, MalformedField},
	}
	for _, tt := range tests {
		d := NewDraft()
		d.Date = tt.date
		d.Time = "10:00"
		errs := r.Validate(StepSchedule, d)
		if tt.ok && !errs.Empty() {
			t.Errorf("%s rejected: %v", tt.date, errs)
			continue
		}
		if !tt.ok && errs[FieldDate].Kind != tt.kind {
			t.Errorf("%s kind = %v, want %v", tt.date, errs[FieldDate].Kind, tt.kind)
		}
	}
}

func TestValidateDetailsAllInvalid(t *testing.T) {
	d := NewDraft()
	d.Name = "A"
	d.Email = "bad"
	d.Phone = "123"
	d.Address = "x"
	errs := Validate(StepDetails, d)
	want := []Field{FieldName, FieldEmail, FieldPhone, FieldAddress}
	if !reflect.DeepEqual(errs.Fields(), want) {
		t.Fatalf("fields = %v, want %v", errs.Fields(), want)
	}
	for _, f := range want {
		if errs[f].Kind != MalformedField {
			t.Errorf("%s kind = %v, want malformed", f, errs[f].Kind)
		}
	}
}

func TestValidateDetailsEmptyIsMissing(t *testing.T) {
	errs := Validate(StepDetails, NewDraft())
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %v", errs)
	}
	for f, fe := range errs {
		if fe.Kind != MissingField {
			t.Errorf("%s kind = %v, want missing", f, fe.Kind)
		}
	}
}

func TestValidateDetailsRules(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Draft)
		field Field
		fails bool
	}{
		{"valid", func(d *Draft) {}, 0, false},
		{"name whitespace only", func(d *Draft) { d.Name = "   " }, FieldName, true},
		{"name padded short", func(d *Draft) { d.Name = " A " }, FieldName, true},
		{"name two chars", func(d *Draft) { d.Name = "Al" }, FieldName, false},
		{"email no dot", func(d *Draft) { d.Email = "a@b" }, FieldEmail, true},
		{"email no at", func(d *Draft) { d.Email = "ab.com" }, FieldEmail, true},
		{"email minimal", func(d *Draft) { d.Email = "a@b.c" }, FieldEmail, false},
		{"phone ten digits", func(d *Draft) { d.Phone = "0123456789" }, FieldPhone, false},
		{"phone fourteen digits plus", func(d *Draft) { d.Phone = "+12345678901234" }, FieldPhone, false},
		{"phone fifteen digits", func(d *Draft) { d.Phone = "123456789012345" }, FieldPhone, true},
		{"phone nine digits", func(d *Draft) { d.Phone = "123456789" }, FieldPhone, true},
		{"phone with spaces", func(d *Draft) { d.Phone = "012 345 6789" }, FieldPhone, true},
		{"phone dashes", func(d *Draft) { d.Phone = "012-3456789" }, FieldPhone, true},
		{"phone plus in middle", func(d *Draft) { d.Phone = "0123+456789" }, FieldPhone, true},
		{"address four chars", func(d *Draft) { d.Address = " abcd " }, FieldAddress, true},
		{"address five chars", func(d *Draft) { d.Address = "abcde" }, FieldAddress, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.edit(&d)
			errs := Validate(StepDetails, d)
			if !tt.fails {
				if !errs.Empty() {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}
			if len(errs) != 1 || !errs.Has(tt.field) {
				t.Fatalf("errors = %v, want only %s", errs, tt.field)
			}
		})
	}
}

func TestValidateOnlyChecksCurrentStep(t *testing.T) {
	d := NewDraft()
	d.ServiceType = "deep"
	if errs := Validate(StepService, d); !errs.Empty() {
		t.Fatalf("step 1 should ignore later fields: %v", errs)
	}
	d = validDetails()
	if errs := Validate(StepDetails, d); !errs.Empty() {
		t.Fatalf("step 3 should ignore service and schedule: %v", errs)
	}
}

func TestValidateUnknownStep(t *testing.T) {
	for _, s := range []Step{0, 4, -1} {
		if errs := Validate(s, NewDraft()); errs != nil {
			t.Errorf("step %d: expected no rules, got %v", s, errs)
		}
	}
}

func TestValidateIsRepeatable(t *testing.T) {
	d := NewDraft()
	d.Name = "A"
	first := Validate(StepDetails, d)
	second := Validate(StepDetails, d)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation not repeatable: %v vs %v", first, second)
	}
}

func TestValidateLengthCountsUTF16Units(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"emoji is two units", "😀", false},
		{"single ascii", "A", true},
		{"single accented", "é", true},
		{"two runes", "Li", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDetails()
			d.Name = tc.value
			errs := Validate(StepDetails, d)
			if got := errs.Has(FieldName); got != tc.wantErr {
				t.Fatalf("name %q: has error = %v, want %v", tc.value, got, tc.wantErr)
			}
		})
	}

	d := validDetails()
	d.Address = "😀😀😀"
	if errs := Validate(StepDetails, d); errs.Has(FieldAddress) {
		t.Fatalf("address of three emoji (6 units) rejected: %v", errs)
	}
}
