package booking

import "sort"

// Kind classifies a validation failure.
type Kind int

const (
	// MissingField is a required value that is empty.
	MissingField Kind = iota + 1
	// MalformedField is present but fails a shape or length rule.
	MalformedField
	// UnresolvedReference is a catalog key that does not match any entry.
	// It is messaged the same way as MissingField.
	UnresolvedReference
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "missing"
	case MalformedField:
		return "malformed"
	case UnresolvedReference:
		return "unresolved"
	default:
		return "unknown"
	}
}

// FieldError is the failure recorded against one field.
type FieldError struct {
	Kind    Kind
	Message string
}

// Errors maps failing fields to their error. A nil or empty Errors means
// the validated step may advance.
type Errors map[Field]FieldError

// Empty reports whether no field failed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Has reports whether field failed.
func (e Errors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// Message returns the message for field, or "" when it passed.
func (e Errors) Message(field Field) string {
	return e[field].Message
}

// Fields returns the failing fields in form order.
func (e Errors) Fields() []Field {
	out := make([]Field, 0, len(e))
	for f := range e {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy. Clone of an empty Errors is nil.
func (e Errors) Clone() Errors {
	if len(e) == 0 {
		return nil
	}
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
