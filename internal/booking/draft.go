package booking

import "github.com/cleanco/cleanco/internal/catalog"

// Draft is an in-progress booking. Empty strings mean "not chosen yet".
type Draft struct {
	ServiceType string
	Date        string
	Time        string
	Name        string
	Email       string
	Phone       string
	Address     string
	Frequency   string
}

// NewDraft returns an empty draft on the default frequency plan.
func NewDraft() Draft {
	return Draft{Frequency: catalog.DefaultFrequency}
}

var setters = map[Field]func(*Draft, string){
	FieldServiceType: func(d *Draft, v string) { d.ServiceType = v },
	FieldDate:        func(d *Draft, v string) { d.Date = v },
	FieldTime:        func(d *Draft, v string) { d.Time = v },
	FieldName:        func(d *Draft, v string) { d.Name = v },
	FieldEmail:       func(d *Draft, v string) { d.Email = v },
	FieldPhone:       func(d *Draft, v string) { d.Phone = v },
	FieldAddress:     func(d *Draft, v string) { d.Address = v },
	FieldFrequency:   func(d *Draft, v string) { d.Frequency = v },
}

var getters = map[Field]func(Draft) string{
	FieldServiceType: func(d Draft) string { return d.ServiceType },
	FieldDate:        func(d Draft) string { return d.Date },
	FieldTime:        func(d Draft) string { return d.Time },
	FieldName:        func(d Draft) string { return d.Name },
	FieldEmail:       func(d Draft) string { return d.Email },
	FieldPhone:       func(d Draft) string { return d.Phone },
	FieldAddress:     func(d Draft) string { return d.Address },
	FieldFrequency:   func(d Draft) string { return d.Frequency },
}

// With returns a copy of d with field set to value. Unknown fields return d
// unchanged and false.
func (d Draft) With(field Field, value string) (Draft, bool) {
	set, ok := setters[field]
	if !ok {
		return d, false
	}
	set(&d, value)
	return d, true
}

// Get returns the raw value of field.
func (d Draft) Get(field Field) string {
	if get, ok := getters[field]; ok {
		return get(d)
	}
	return ""
}
