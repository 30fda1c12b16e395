package clock

import "time"

// ReferenceTimezone is the single canonical timezone for every
// "is it a new day yet" decision, matching NYT Wordle
const ReferenceTimezone = "America/Los_Angeles"

// Clock supplies the current time. It is the only impure dependency of
// the game core; everything else is deterministic given its inputs.
type Clock interface {
	Now() time.Time
}

// Reference is the real clock, expressed in the reference timezone
type Reference struct {
	loc *time.Location
}

// NewReference creates the production clock
func NewReference() (*Reference, error) {
	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		return nil, err
	}
	return &Reference{loc: loc}, nil
}

// Now returns the current time in the reference timezone
func (r *Reference) Now() time.Time {
	return time.Now().In(r.loc)
}

// Fixed is a clock pinned to a single instant. It backs the fake-date
// mode and deterministic tests.
type Fixed struct {
	Time time.Time
}

// NewFixed creates a clock that always reports t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{Time: t}
}

// Now returns the pinned instant
func (f *Fixed) Now() time.Time {
	return f.Time
}

// Set moves the pinned instant, for advancing time in tests
func (f *Fixed) Set(t time.Time) {
	f.Time = t
}
