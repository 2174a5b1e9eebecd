package dates

import "time"

// DefaultMinYear is the earliest year accepted when no minimum is configured.
const DefaultMinYear = 1900

// Option configures a Validator or Detector.
type Option func(*settings)

type settings struct {
	loc     *time.Location
	minYear int
}

// WithLocation sets the zone whose midnight defines a calendar day.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *settings) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithMinYear sets the default lower year bound. Defaults to DefaultMinYear.
func WithMinYear(year int) Option {
	return func(s *settings) {
		s.minYear = year
	}
}

func newSettings(opts []Option) settings {
	s := settings{loc: time.Local, minYear: DefaultMinYear}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Validator checks user-entered dates and years before a record is saved.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	clock   Clock
	loc     *time.Location
	minYear int
}

// NewValidator creates a Validator that reads "today" from clock. A nil clock
// falls back to SystemClock.
func NewValidator(clock Clock, opts ...Option) *Validator {
	if clock == nil {
		clock = SystemClock()
	}
	s := newSettings(opts)
	return &Validator{clock: clock, loc: s.loc, minYear: s.minYear}
}

// WithClock returns a copy of v that reads "today" from clock.
func (v *Validator) WithClock(clock Clock) *Validator {
	cp := *v
	if clock != nil {
		cp.clock = clock
	}
	return &cp
}

// MinYear returns the configured default lower year bound.
func (v *Validator) MinYear() int {
	return v.minYear
}

// IsRealisticDate checks a single past-or-present date using the configured
// minimum year.
func (v *Validator) IsRealisticDate(value string) Verdict {
	return v.IsRealisticDateSince(value, v.minYear)
}

// IsRealisticDateSince checks, in order: presence, format, year >= minYear,
// and not after today.
func (v *Validator) IsRealisticDateSince(value string, minYear int) Verdict {
	if isBlank(value) {
		return fail(KindMissingValue, SubjectDate)
	}

	date, err := Normalize(value, v.loc)
	if err != nil {
		return fail(KindMalformedValue, SubjectDate)
	}

	if date.Year() < minYear {
		return outOfRange(SubjectDate, BoundLower, minYear)
	}

	if date.After(v.today()) {
		return fail(KindFutureDate, SubjectDate)
	}

	return pass()
}

// IsRealisticYear checks a year value using the configured minimum year.
func (v *Validator) IsRealisticYear(value string) Verdict {
	return v.IsRealisticYearSince(value, v.minYear)
}

// IsRealisticYearSince checks, in order: presence, numeric, year >= minYear,
// and year <= the current calendar year. Only the leading integer of value
// is read.
func (v *Validator) IsRealisticYearSince(value string, minYear int) Verdict {
	if isBlank(value) {
		return fail(KindMissingValue, SubjectYear)
	}

	year, ok := leadingYear(value)
	if !ok {
		return fail(KindMalformedValue, SubjectYear)
	}

	if year < minYear {
		return outOfRange(SubjectYear, BoundLower, minYear)
	}

	currentYear := v.today().Year()
	if year > currentYear {
		return outOfRange(SubjectYear, BoundUpper, currentYear)
	}

	return pass()
}

// IsStartBeforeEnd checks a range where both ends are mandatory. Neither end
// may be in the future and start must be strictly before end.
func (v *Validator) IsStartBeforeEnd(start, end string) Verdict {
	if isBlank(start) || isBlank(end) {
		return fail(KindMissingValue, SubjectRange)
	}

	startDate, startErr := Normalize(start, v.loc)
	endDate, endErr := Normalize(end, v.loc)
	if startErr != nil || endErr != nil {
		return fail(KindMalformedValue, SubjectRange)
	}

	today := v.today()
	if startDate.After(today) {
		return fail(KindFutureDate, SubjectStart)
	}
	if endDate.After(today) {
		return fail(KindFutureDate, SubjectEnd)
	}

	if !startDate.Before(endDate) {
		return fail(KindInvalidOrdering, SubjectRange)
	}

	return pass()
}

// IsStartBeforeEndOrOngoing checks a range whose end may be left empty to
// mark the activity as ongoing. Once start passes, an empty end is valid.
func (v *Validator) IsStartBeforeEndOrOngoing(start, end string) Verdict {
	if isBlank(start) {
		return fail(KindMissingValue, SubjectStart)
	}

	startDate, err := Normalize(start, v.loc)
	if err != nil {
		return fail(KindMalformedValue, SubjectStart)
	}

	today := v.today()
	if startDate.After(today) {
		return fail(KindFutureDate, SubjectStart)
	}

	if isBlank(end) {
		return pass()
	}

	endDate, err := Normalize(end, v.loc)
	if err != nil {
		return fail(KindMalformedValue, SubjectEnd)
	}

	if endDate.After(today) {
		return fail(KindFutureDate, SubjectEnd)
	}

	if !startDate.Before(endDate) {
		return fail(KindInvalidOrdering, SubjectRange)
	}

	return pass()
}

func (v *Validator) today() time.Time {
	return Today(v.clock, v.loc)
}
