package dates

import (
	"errors"
	"fmt"
)

// Kind classifies why a value failed the date policy.
type Kind uint8

const (
	KindNone Kind = iota
	KindMissingValue
	KindMalformedValue
	KindOutOfRange
	KindFutureDate
	KindInvalidOrdering
)

// String implements fmt.Stringer. The names double as the wire values used by
// the HTTP adapter.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMissingValue:
		return "missing_value"
	case KindMalformedValue:
		return "malformed_value"
	case KindOutOfRange:
		return "out_of_range"
	case KindFutureDate:
		return "future_date"
	case KindInvalidOrdering:
		return "invalid_ordering"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Sentinel errors, one per failing Kind, for errors.Is checks on Verdict.Err.
var (
	ErrMissingValue    = errors.New("missing value")
	ErrMalformedValue  = errors.New("malformed value")
	ErrOutOfRange      = errors.New("out of range")
	ErrFutureDate      = errors.New("future date")
	ErrInvalidOrdering = errors.New("invalid ordering")
)

// Subject names the value a verdict is about.
type Subject uint8

const (
	SubjectDate Subject = iota
	SubjectYear
	SubjectStart
	SubjectEnd
	SubjectRange
)

// String implements fmt.Stringer.
func (s Subject) String() string {
	switch s {
	case SubjectDate:
		return "date"
	case SubjectYear:
		return "year"
	case SubjectStart:
		return "start_date"
	case SubjectEnd:
		return "end_date"
	case SubjectRange:
		return "date_range"
	default:
		return fmt.Sprintf("subject(%d)", uint8(s))
	}
}

// Bound tells which side of an allowed year range was crossed.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundLower
	BoundUpper
)

// Verdict is the outcome of a single validator call. A zero Kind means the
// value passed. For KindOutOfRange, Bound and Limit carry the year that was
// crossed.
type Verdict struct {
	Valid   bool
	Kind    Kind
	Subject Subject
	Bound   Bound
	Limit   int
}

func pass() Verdict {
	return Verdict{Valid: true}
}

func fail(kind Kind, subject Subject) Verdict {
	return Verdict{Kind: kind, Subject: subject}
}

func outOfRange(subject Subject, bound Bound, limit int) Verdict {
	return Verdict{Kind: KindOutOfRange, Subject: subject, Bound: bound, Limit: limit}
}

// Message renders the user-facing reason for a failed verdict. It returns an
// empty string when the verdict is valid.
func (v Verdict) Message() string {
	if v.Valid {
		return ""
	}

	switch v.Kind {
	case KindMissingValue:
		switch v.Subject {
		case SubjectYear:
			return "Year is required."
		case SubjectStart:
			return "Start date is required."
		case SubjectRange:
			return "Both start and end dates are required."
		default:
			return "Date is required."
		}
	case KindMalformedValue:
		switch v.Subject {
		case SubjectYear:
			return "Invalid year."
		case SubjectStart:
			return "Invalid start date format."
		case SubjectEnd:
			return "Invalid end date format."
		default:
			return "Invalid date format."
		}
	case KindOutOfRange:
		noun := "Date"
		if v.Subject == SubjectYear {
			noun = "Year"
		}
		if v.Bound == BoundUpper {
			return fmt.Sprintf("%s cannot be after %d.", noun, v.Limit)
		}
		return fmt.Sprintf("%s cannot be before %d.", noun, v.Limit)
	case KindFutureDate:
		switch v.Subject {
		case SubjectStart:
			return "Start date cannot be in the future."
		case SubjectEnd:
			return "End date cannot be in the future."
		default:
			return "Date cannot be in the future."
		}
	case KindInvalidOrdering:
		return "Start date must be before end date."
	default:
		return "Invalid date."
	}
}

// Err returns nil for a valid verdict and a *VerdictError otherwise.
func (v Verdict) Err() error {
	if v.Valid {
		return nil
	}
	return &VerdictError{Verdict: v}
}

// VerdictError carries a failed Verdict through error-returning code paths.
// It unwraps to the sentinel matching the verdict's Kind.
type VerdictError struct {
	Verdict Verdict
}

func (e *VerdictError) Error() string {
	return e.Verdict.Message()
}

func (e *VerdictError) Unwrap() error {
	switch e.Verdict.Kind {
	case KindMissingValue:
		return ErrMissingValue
	case KindMalformedValue:
		return ErrMalformedValue
	case KindOutOfRange:
		return ErrOutOfRange
	case KindFutureDate:
		return ErrFutureDate
	case KindInvalidOrdering:
		return ErrInvalidOrdering
	default:
		return nil
	}
}
