package booking

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/cleanco/cleanco/internal/catalog"
)

// DateLayout is the ISO calendar date format of Draft.Date.
const DateLayout = "2006-01-02"

const (
	msgServiceType = "Please select a service type"
	msgDate        = "Please select a date"
	msgPastDate    = "Please select a date from today onwards"
	msgTime        = "Please select a time slot"
	msgName        = "Please enter a valid name"
	msgEmail       = "Please enter a valid email address"
	msgPhone       = "Please enter a valid phone number"
	msgAddress     = "Please enter a valid address"

	minNameLen    = 2
	minAddressLen = 5
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,14}$`)
)

// Rules configures validation. The zero value applies the standard rule set.
type Rules struct {
	// RejectPastDates additionally requires Date to parse and be no earlier
	// than Today.
	RejectPastDates bool
	// Today returns the current local date. Defaults to time.Now.
	Today func() time.Time
}

// Validate checks the fields of step against the standard rules.
func Validate(step Step, d Draft) Errors {
	return Rules{}.Validate(step, d)
}

// Validate checks the fields belonging to step. It returns nil when every
// rule passes; unknown steps have no rules.
func (r Rules) Validate(step Step, d Draft) Errors {
	errs := Errors{}
	switch step {
	case StepService:
		r.checkService(d, errs)
	case StepSchedule:
		r.checkSchedule(d, errs)
	case StepDetails:
		r.checkDetails(d, errs)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r Rules) checkService(d Draft, errs Errors) {
	switch {
	case d.ServiceType == "":
		errs[FieldServiceType] = FieldError{Kind: MissingField, Message: msgServiceType}
	default:
		if _, ok := catalog.Service(d.ServiceType); !ok {
			errs[FieldServiceType] = FieldError{Kind: UnresolvedReference, Message: msgServiceType}
		}
	}
}

func (r Rules) checkSchedule(d Draft, errs Errors) {
	if d.Date == "" {
		errs[FieldDate] = FieldError{Kind: MissingField, Message: msgDate}
	} else if r.RejectPastDates {
		if fe, bad := r.checkFutureDate(d.Date); bad {
			errs[FieldDate] = fe
		}
	}
	switch {
	case d.Time == "":
		errs[FieldTime] = FieldError{Kind: MissingField, Message: msgTime}
	default:
		if _, ok := catalog.Slot(d.Time); !ok {
			errs[FieldTime] = FieldError{Kind: UnresolvedReference, Message: msgTime}
		}
	}
}

func (r Rules) checkFutureDate(raw string) (FieldError, bool) {
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return FieldError{Kind: MalformedField, Message: msgDate}, true
	}
	now := time.Now
	if r.Today != nil {
		now = r.Today
	}
	t := now()
	today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return FieldError{Kind: MalformedField, Message: msgPastDate}, true
	}
	return FieldError{}, false
}

func (r Rules) checkDetails(d Draft, errs Errors) {
	if fe, bad := minLength(d.Name, minNameLen, msgName); bad {
		errs[FieldName] = fe
	}
	if fe, bad := matches(d.Email, emailPattern, msgEmail); bad {
		errs[FieldEmail] = fe
	}
	if fe, bad := matches(d.Phone, phonePattern, msgPhone); bad {
		errs[FieldPhone] = fe
	}
	if fe, bad := minLength(d.Address, minAddressLen, msgAddress); bad {
		errs[FieldAddress] = fe
	}
}

// minLength counts UTF-16 code units, so a single astral character such as
// an emoji has length 2.
func minLength(v string, n int, msg string) (FieldError, bool) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return FieldError{Kind: MissingField, Message: msg}, true
	}
	if len(utf16.Encode([]rune(trimmed))) < n {
		return FieldError{Kind: MalformedField, Message: msg}, true
	}
	return FieldError{}, false
}

func matches(v string, re *regexp.Regexp, msg string) (FieldError, bool) {
	if v == "" {
		return FieldError{Kind: MissingField, Message: msg}, true
	}
	if !re.MatchString(v) {
		return FieldError{Kind: MalformedField, Message: msg}, true
	}
	return FieldError{}, false
}
