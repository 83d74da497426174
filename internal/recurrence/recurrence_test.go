package recurrence

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		raw     string
		want    Pattern
		wantErr bool
	}{
		{"daily", Daily, false},
		{"weekly", Weekly, false},
		{"monthly", Monthly, false},
		{"quarterly", Quarterly, false},
		{" Monthly ", Monthly, false},
		{"", "", true},
		{"yearly", "", true},
		{"bi-weekly", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePattern(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("ParsePattern(%q) err=%v, want ErrInvalidPattern", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePattern(%q) err=%v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePattern(%q)=%q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNextRejectsUnknownPattern(t *testing.T) {
	_, err := Next(date(2024, time.January, 1, 0, 0, 0), Pattern("fortnightly"))
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("Next() err=%v, want ErrInvalidPattern", err)
	}
}

func TestNextDaily(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"mid month", date(2024, time.June, 10, 9, 30, 0), date(2024, time.June, 11, 9, 30, 0)},
		{"month boundary", date(2024, time.April, 30, 23, 59, 59), date(2024, time.May, 1, 23, 59, 59)},
		{"leap day", date(2024, time.February, 29, 12, 0, 0), date(2024, time.March, 1, 12, 0, 0)},
		{"feb 28 leap year", date(2024, time.February, 28, 8, 0, 0), date(2024, time.February, 29, 8, 0, 0)},
		{"feb 28 non-leap", date(2023, time.February, 28, 8, 0, 0), date(2023, time.March, 1, 8, 0, 0)},
		{"year boundary", date(2023, time.December, 31, 6, 15, 0), date(2024, time.January, 1, 6, 15, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDaily(tt.in)
			if !got.Equal(tt.want) {
				t.Fatalf("NextDaily(%v)=%v, want %v", tt.in, got, tt.want)
			}
			if diff := got.Sub(tt.in); diff != 24*time.Hour {
				t.Fatalf("delta %v, want 24h", diff)
			}
		})
	}
}

func TestNextWeekly(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"plain", date(2024, time.June, 3, 10, 0, 0), date(2024, time.June, 10, 10, 0, 0)},
		{"month boundary", date(2024, time.May, 29, 18, 45, 12), date(2024, time.June, 5, 18, 45, 12)},
		{"year boundary", date(2024, time.December, 30, 7, 0, 0), date(2025, time.January, 6, 7, 0, 0)},
		{"over leap day", date(2024, time.February, 26, 0, 0, 0), date(2024, time.March, 4, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextWeekly(tt.in)
			if !got.Equal(tt.want) {
				t.Fatalf("NextWeekly(%v)=%v, want %v", tt.in, got, tt.want)
			}
			if got.Weekday() != tt.in.Weekday() {
				t.Fatalf("weekday %v, want %v", got.Weekday(), tt.in.Weekday())
			}
			if diff := got.Sub(tt.in); diff != 7*24*time.Hour {
				t.Fatalf("delta %v, want 168h", diff)
			}
		})
	}
}

func TestNextMonthly(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"day preserved", date(2024, time.March, 15, 14, 30, 0), date(2024, time.April, 15, 14, 30, 0)},
		{"day 28 always preserved", date(2024, time.January, 28, 0, 0, 0), date(2024, time.February, 28, 0, 0, 0)},
		{"jan 31 clamps to feb 28", date(2021, time.January, 31, 10, 0, 0), date(2021, time.February, 28, 10, 0, 0)},
		{"jan 31 clamps to feb 29 leap", date(2020, time.January, 31, 10, 0, 0), date(2020, time.February, 29, 10, 0, 0)},
		{"mar 31 clamps to apr 30", date(2020, time.March, 31, 23, 0, 0), date(2020, time.April, 30, 23, 0, 0)},
		{"dec wraps to jan", date(2023, time.December, 31, 5, 5, 5), date(2024, time.January, 31, 5, 5, 5)},
		{"feb 29 to mar 29", date(2024, time.February, 29, 9, 0, 0), date(2024, time.March, 29, 9, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextMonthly(tt.in)
			if !got.Equal(tt.want) {
				t.Fatalf("NextMonthly(%v)=%v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNextQuarterly(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"may 31 to aug 31", date(2020, time.May, 31, 11, 0, 0), date(2020, time.August, 31, 11, 0, 0)},
		{"aug 31 clamps to nov 30", date(2020, time.August, 31, 11, 0, 0), date(2020, time.November, 30, 11, 0, 0)},
		{"nov 30 to leap feb 29", date(2019, time.November, 30, 16, 20, 0), date(2020, time.February, 29, 16, 20, 0)},
		{"nov 30 to non-leap feb 28", date(2020, time.November, 30, 16, 20, 0), date(2021, time.February, 28, 16, 20, 0)},
		{"year wrap", date(2023, time.October, 15, 0, 0, 0), date(2024, time.January, 15, 0, 0, 0)},
		{"day preserved", date(2024, time.January, 10, 3, 0, 0), date(2024, time.April, 10, 3, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextQuarterly(tt.in)
			if !got.Equal(tt.want) {
				t.Fatalf("NextQuarterly(%v)=%v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNextPreservesTimeOfDay(t *testing.T) {
	in := time.Date(2024, time.January, 31, 13, 37, 42, 123456789, time.UTC)
	for _, p := range []Pattern{Daily, Weekly, Monthly, Quarterly} {
		got, err := Next(in, p)
		if err != nil {
			t.Fatalf("Next(%v, %s) err=%v", in, p, err)
		}
		hh, mm, ss := got.Clock()
		if hh != 13 || mm != 37 || ss != 42 || got.Nanosecond() != 123456789 {
			t.Errorf("%s: time of day %02d:%02d:%02d.%09d, want 13:37:42.123456789",
				p, hh, mm, ss, got.Nanosecond())
		}
	}
}

func TestNextPreservesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	in := time.Date(2024, time.May, 31, 8, 0, 0, 0, loc)
	got := NextMonthly(in)
	if got.Location() != loc {
		t.Fatalf("location %v, want %v", got.Location(), loc)
	}
}

func TestNextStrictlyAfterInput(t *testing.T) {
	starts := []time.Time{
		date(2020, time.January, 31, 0, 0, 0),
		date(2020, time.February, 29, 23, 59, 59),
		date(2023, time.December, 31, 12, 0, 0),
		date(2024, time.June, 1, 0, 0, 0),
	}
	for _, p := range []Pattern{Daily, Weekly, Monthly, Quarterly} {
		for _, in := range starts {
			got, err := Next(in, p)
			if err != nil {
				t.Fatalf("Next(%v, %s) err=%v", in, p, err)
			}
			if !got.After(in) {
				t.Errorf("Next(%v, %s)=%v is not strictly after input", in, p, got)
			}
		}
	}
}

func TestNextIsDeterministic(t *testing.T) {
	in := date(2021, time.January, 31, 10, 30, 0)
	for _, p := range []Pattern{Daily, Weekly, Monthly, Quarterly} {
		first, err := Next(in, p)
		if err != nil {
			t.Fatalf("Next err=%v", err)
		}
		second, err := Next(in, p)
		if err != nil {
			t.Fatalf("Next err=%v", err)
		}
		if !first.Equal(second) {
			t.Errorf("%s: %v != %v for identical input", p, first, second)
		}
	}
}

func TestIteratedSequenceStrictlyIncreasing(t *testing.T) {
	const iterations = 48

	starts := []time.Time{
		date(2019, time.November, 30, 16, 20, 0),
		date(2020, time.January, 31, 9, 0, 0),
		date(2024, time.February, 29, 0, 0, 1),
	}

	for _, p := range []Pattern{Daily, Weekly, Monthly, Quarterly} {
		for _, start := range starts {
			seq := []time.Time{start}
			cur := start
			for i := 0; i < iterations; i++ {
				next, err := Next(cur, p)
				if err != nil {
					t.Fatalf("Next(%v, %s) err=%v", cur, p, err)
				}
				seq = append(seq, next)
				cur = next
			}
			if len(seq) != iterations+1 {
				t.Fatalf("%s from %v: sequence length %d, want %d", p, start, len(seq), iterations+1)
			}
			for i := 1; i < len(seq); i++ {
				if !seq[i].After(seq[i-1]) {
					t.Fatalf("%s from %v: seq[%d]=%v is not after seq[%d]=%v",
						p, start, i, seq[i], i-1, seq[i-1])
				}
			}
		}
	}
}
