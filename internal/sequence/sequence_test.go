package sequence

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func TestDeriveFirstEntryNumeric(t *testing.T) {
	d, err := Derive(Numeric, "2025"+Hyphen+"02"+Hyphen+"26", date(2025, time.March, 10), nil)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if d.Full != "001_01" {
		t.Fatalf("Full = %q, want %q", d.Full, "001_01")
	}
	if d.Prev != nil {
		t.Fatalf("Prev = %v, want nil", d.Prev)
	}
}

func TestDeriveFirstEntryDate(t *testing.T) {
	d, err := Derive(Date, "", date(2025, time.January, 31), nil)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	want := "2025" + Hyphen + "01" + Hyphen + "31_01"
	if d.Full != want {
		t.Fatalf("Full = %q, want %q", d.Full, want)
	}
}

func TestDeriveNumericMainTracksElapsedDays(t *testing.T) {
	// Main id is elapsed calendar days since project start plus one,
	// independent of how many entries already exist.
	start := "2025" + Hyphen + "01" + Hyphen + "01"
	files := []string{"001_01_two_sum.md", "002_01_add_digits.md"}

	d, err := Derive(Numeric, start, date(2025, time.January, 8), files)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if d.Main != "008" {
		t.Fatalf("Main = %q, want %q", d.Main, "008")
	}
	if d.Full != "008_01" {
		t.Fatalf("Full = %q, want %q", d.Full, "008_01")
	}
	if d.SameDay || d.OutOfOrder {
		t.Fatalf("unexpected flags: %+v", d)
	}
}

func TestDeriveSameDayIncrementsSuffix(t *testing.T) {
	start := "2025" + Hyphen + "01" + Hyphen + "01"
	files := []string{"003_01_two_sum.md"}

	d, err := Derive(Numeric, start, date(2025, time.January, 3), files)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if !d.SameDay {
		t.Fatal("SameDay = false, want true")
	}
	if d.Full != "003_02" {
		t.Fatalf("Full = %q, want %q", d.Full, "003_02")
	}
}

func TestDeriveSameDayDateNotation(t *testing.T) {
	day := "2025" + Hyphen + "06" + Hyphen + "15"
	files := []string{day + "_01_two_sum.md", day + "_02_add_digits.md"}

	d, err := Derive(Date, day, date(2025, time.June, 15), files)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if d.Full != day+"_03" {
		t.Fatalf("Full = %q, want %q", d.Full, day+"_03")
	}
}

func TestDeriveOutOfOrderWarnsAndContinues(t *testing.T) {
	start := "2025" + Hyphen + "01" + Hyphen + "01"
	files := []string{"020_01_two_sum.md"}

	d, err := Derive(Numeric, start, date(2025, time.January, 5), files)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if !d.OutOfOrder {
		t.Fatal("OutOfOrder = false, want true")
	}
	if d.Full != "005_01" {
		t.Fatalf("Full = %q, want %q", d.Full, "005_01")
	}
}

func TestDeriveInvalidNotation(t *testing.T) {
	_, err := Derive(Notation("roman"), "", date(2025, time.January, 1), nil)
	if !errors.Is(err, ErrNotation) {
		t.Fatalf("err = %v, want ErrNotation", err)
	}
}

func TestDeriveMissingStartDate(t *testing.T) {
	if _, err := Derive(Numeric, "", date(2025, time.January, 1), nil); !errors.Is(err, ErrNoStartDate) {
		t.Fatalf("numeric err = %v, want ErrNoStartDate", err)
	}

	files := []string{"2025" + Hyphen + "01" + Hyphen + "01_01_two_sum.md"}
	if _, err := Derive(Date, "", date(2025, time.January, 2), files); !errors.Is(err, ErrNoStartDate) {
		t.Fatalf("date err = %v, want ErrNoStartDate", err)
	}
}

func TestDeriveMalformedFilename(t *testing.T) {
	start := "2025" + Hyphen + "01" + Hyphen + "01"
	if _, err := Derive(Numeric, start, date(2025, time.January, 2), []string{"oops.md"}); err == nil {
		t.Fatal("expected error for malformed filename")
	}
}

func TestBetweenNumeric(t *testing.T) {
	got := Between(NumericValue(5), NumericValue(8))
	want := []string{"006", "007"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Between mismatch (-want +got):\n%s", diff)
	}
}

func TestBetweenDates(t *testing.T) {
	prev := DateValue(date(2025, time.March, 1))
	next := DateValue(date(2025, time.March, 4))
	want := []string{
		"2025" + Hyphen + "03" + Hyphen + "02",
		"2025" + Hyphen + "03" + Hyphen + "03",
	}
	if diff := cmp.Diff(want, Between(prev, next)); diff != "" {
		t.Fatalf("Between mismatch (-want +got):\n%s", diff)
	}
}

func TestBetweenAdjacentIsEmpty(t *testing.T) {
	if got := Between(NumericValue(4), NumericValue(5)); len(got) != 0 {
		t.Fatalf("Between = %v, want empty", got)
	}
}
