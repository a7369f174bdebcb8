package sequence

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Hyphen is the Unicode non-breaking hyphen used inside date sequence ids so
// the id stays a single word in rendered markdown.
const Hyphen = "‑"

// DateLayout formats a dated sequence id, e.g. "2025‑01‑31".
const DateLayout = "2006" + Hyphen + "01" + Hyphen + "02"

// Notation selects how the main sequence id is encoded.
type Notation string

const (
	// Numeric encodes the id as a zero-padded three digit counter ("001").
	Numeric Notation = "numeric"
	// Date encodes the id as an ISO date with non-breaking hyphens.
	Date Notation = "date"
)

// Valid reports whether the notation is one of the recognized modes.
func (n Notation) Valid() bool {
	return n == Numeric || n == Date
}

// ErrNotation is returned when the configured notation is not recognized.
var ErrNotation = errors.New("invalid sequence notation")

// ErrNoStartDate indicates the project start date is required but unset.
var ErrNoStartDate = errors.New("project start date is not set")

// Value is one unit of the main sequence: an integer day counter in numeric
// mode or a calendar day in date mode.
type Value struct {
	notation Notation
	num      int
	date     time.Time
}

// NumericValue wraps a day counter as a sequence value.
func NumericValue(n int) Value {
	return Value{notation: Numeric, num: n}
}

// DateValue wraps a calendar day as a sequence value.
func DateValue(t time.Time) Value {
	return Value{notation: Date, date: truncate(t)}
}

// String renders the value as it appears in filenames and the Day column.
func (v Value) String() string {
	if v.notation == Date {
		return v.date.Format(DateLayout)
	}
	return fmt.Sprintf("%03d", v.num)
}

// Compare orders two values of the same notation: -1, 0 or +1.
func (v Value) Compare(o Value) int {
	if v.notation == Date {
		switch {
		case v.date.Before(o.date):
			return -1
		case v.date.After(o.date):
			return 1
		}
		return 0
	}
	switch {
	case v.num < o.num:
		return -1
	case v.num > o.num:
		return 1
	}
	return 0
}

// Next returns the value one unit later.
func (v Value) Next() Value {
	if v.notation == Date {
		return Value{notation: Date, date: v.date.AddDate(0, 0, 1)}
	}
	return Value{notation: Numeric, num: v.num + 1}
}

// Between enumerates the main ids strictly between prev and next, in
// ascending order. Empty when the gap is a single unit or less.
func Between(prev, next Value) []string {
	var ids []string
	for v := prev.Next(); v.Compare(next) < 0; v = v.Next() {
		ids = append(ids, v.String())
	}
	return ids
}

// Derivation is the outcome of deriving the next sequence id from the set of
// stored entry filenames.
type Derivation struct {
	// Full is the main id plus suffix, e.g. "001_01".
	Full string
	// Main is the primary ordering key, e.g. "001" or "2025‑01‑31".
	Main string
	// Suffix disambiguates entries sharing the same main id.
	Suffix string
	// Prev is the most recent stored value; nil for the first entry.
	Prev *Value
	// Next is the value derived for this run.
	Next Value
	// SameDay is set when this run repeats the previous main id.
	SameDay bool
	// OutOfOrder is set when the stored value sorts after the derived one.
	OutOfOrder bool
}

// Derive computes the next sequence id from the configured notation, the
// project start date, "today", and the sorted list of stored entry
// filenames. It never touches the filesystem.
func Derive(n Notation, start string, today time.Time, filenames []string) (Derivation, error) {
	if !n.Valid() {
		return Derivation{}, fmt.Errorf("%w: %q", ErrNotation, n)
	}
	if start == "" && (n == Numeric || len(filenames) > 0) {
		return Derivation{}, ErrNoStartDate
	}

	if len(filenames) == 0 {
		return deriveFirst(n, today), nil
	}

	last := filenames[len(filenames)-1]
	prev, prevSuffix, err := parseFilename(n, last)
	if err != nil {
		return Derivation{}, err
	}

	next, err := deriveNext(n, start, today)
	if err != nil {
		return Derivation{}, err
	}

	d := Derivation{
		Main: next.String(),
		Prev: &prev,
		Next: next,
	}

	switch prev.Compare(next) {
	case 0:
		d.SameDay = true
		d.Suffix = fmt.Sprintf("%02d", prevSuffix+1)
	case -1:
		d.Suffix = "01"
	default:
		// Stored sequence is ahead of today. Log-and-continue policy: keep
		// the derived value and reset the suffix.
		d.OutOfOrder = true
		d.Suffix = "01"
	}
	d.Full = d.Main + "_" + d.Suffix

	return d, nil
}

func deriveFirst(n Notation, today time.Time) Derivation {
	d := Derivation{Suffix: "01"}
	if n == Date {
		d.Next = DateValue(today)
	} else {
		d.Next = NumericValue(1)
	}
	d.Main = d.Next.String()
	d.Full = d.Main + "_" + d.Suffix
	return d
}

func deriveNext(n Notation, start string, today time.Time) (Value, error) {
	if n == Date {
		return DateValue(today), nil
	}
	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return Value{}, fmt.Errorf("parse project start date %q: %w", start, err)
	}
	days := int(truncate(today).Sub(truncate(startDate)).Hours() / 24)
	return NumericValue(days + 1), nil
}

// parseFilename extracts the main value and suffix from a stored entry
// filename, e.g. "001_02_two_sum.md" or "2025‑01‑31_01_two_sum.md".
func parseFilename(n Notation, name string) (Value, int, error) {
	runes := []rune(name)
	if n == Numeric {
		if len(runes) < 6 {
			return Value{}, 0, fmt.Errorf("malformed entry filename %q", name)
		}
		main, err := strconv.Atoi(string(runes[:3]))
		if err != nil {
			return Value{}, 0, fmt.Errorf("malformed entry filename %q: %w", name, err)
		}
		suffix, err := strconv.Atoi(string(runes[4:6]))
		if err != nil {
			return Value{}, 0, fmt.Errorf("malformed entry filename %q: %w", name, err)
		}
		return NumericValue(main), suffix, nil
	}

	if len(runes) < 13 {
		return Value{}, 0, fmt.Errorf("malformed entry filename %q", name)
	}
	date, err := time.Parse(DateLayout, string(runes[:10]))
	if err != nil {
		return Value{}, 0, fmt.Errorf("malformed entry filename %q: %w", name, err)
	}
	suffix, err := strconv.Atoi(string(runes[11:13]))
	if err != nil {
		return Value{}, 0, fmt.Errorf("malformed entry filename %q: %w", name, err)
	}
	return DateValue(date), suffix, nil
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
