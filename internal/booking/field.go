package booking

// Field identifies one editable value of a Draft.
type Field int

const (
	FieldServiceType Field = iota + 1
	FieldDate
	FieldTime
	FieldName
	FieldEmail
	FieldPhone
	FieldAddress
	FieldFrequency
)

var fieldNames = map[Field]string{
	FieldServiceType: "serviceType",
	FieldDate:        "date",
	FieldTime:        "time",
	FieldName:        "name",
	FieldEmail:       "email",
	FieldPhone:       "phone",
	FieldAddress:     "address",
	FieldFrequency:   "frequency",
}

// Fields returns every field in form order.
func Fields() []Field {
	return []Field{
		FieldServiceType, FieldDate, FieldTime,
		FieldName, FieldEmail, FieldPhone, FieldAddress, FieldFrequency,
	}
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	_, ok := fieldNames[f]
	return ok
}

// ParseField maps a field name such as "serviceType" to its Field.
func ParseField(name string) (Field, bool) {
	for f, n := range fieldNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}
