package domain

import "fmt"

// ParseError reports a line that carries the record marker but does not
// match the entry grammar.
type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid format for line: %s", e.Line)
}

// TimeValueError reports a clock value with a bad digit count or an
// out-of-range hour or minute. Field names the offending side.
type TimeValueError struct {
	Field  string // "start" or "end"
	Value  string
	Reason string
}

func (e *TimeValueError) Error() string {
	return fmt.Sprintf("invalid %s time %q: %s", e.Field, e.Value, e.Reason)
}

// DateFormatError reports a date string that is not exactly 8 digits or
// does not name a valid calendar date.
type DateFormatError struct {
	Value  string
	Reason string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

// OverlapError names the two colliding records within one business group.
// Previous is the record holding the running end watermark when Next's
// start fell inside it.
type OverlapError struct {
	Previous WorkRecord
	Next     WorkRecord
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlap detected between entries: %s %s-%s (%s) and %s %s-%s (%s)",
		e.Previous.Date, e.Previous.Start, e.Previous.End, e.Previous.Description,
		e.Next.Date, e.Next.Start, e.Next.End, e.Next.Description)
}

// MonthRangeError reports a malformed or out-of-range month/year shorthand.
type MonthRangeError struct {
	Input  string
	Reason string
}

func (e *MonthRangeError) Error() string {
	return fmt.Sprintf("invalid month range %q: %s", e.Input, e.Reason)
}
