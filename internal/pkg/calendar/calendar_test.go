package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekNumber(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{date(2025, time.January, 1), 1},   // Wednesday
		{date(2025, time.March, 10), 11},   // Monday
		{date(2025, time.December, 29), 1}, // Monday, belongs to 2026-W01
		{date(2024, time.December, 31), 1}, // Tuesday, belongs to 2025-W01
		{date(2020, time.December, 31), 53},
		{date(2021, time.January, 3), 53}, // Sunday, still 2020-W53
		{date(2016, time.January, 1), 53}, // Friday, belongs to 2015-W53
	}
	for _, c := range cases {
		if got := WeekNumber(c.date); got != c.want {
			t.Errorf("WeekNumber(%s) = %d, want %d", c.date.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestWeekNumberMatchesISOWeek(t *testing.T) {
	// Sweep several years against the standard library's ISO week.
	d := date(2019, time.January, 1)
	end := date(2027, time.January, 1)
	for d.Before(end) {
		isoYear, isoWeek := d.ISOWeek()
		if got := WeekNumber(d); got != isoWeek {
			t.Fatalf("WeekNumber(%s) = %d, ISOWeek = %d", d.Format("2006-01-02"), got, isoWeek)
		}
		if got := WeekYear(d); got != isoYear {
			t.Fatalf("WeekYear(%s) = %d, ISOWeek year = %d", d.Format("2006-01-02"), got, isoYear)
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestWeekDates(t *testing.T) {
	r, err := WeekDates(2025, 11)
	if err != nil {
		t.Fatalf("WeekDates(2025, 11) error: %v", err)
	}
	if !r.StartDate.Equal(date(2025, time.March, 10)) {
		t.Errorf("start = %s, want 2025-03-10", r.StartDate.Format("2006-01-02"))
	}
	if !r.EndDate.Equal(date(2025, time.March, 16)) {
		t.Errorf("end = %s, want 2025-03-16", r.EndDate.Format("2006-01-02"))
	}
	if r.StartDate.Weekday() != time.Monday {
		t.Errorf("start weekday = %s, want Monday", r.StartDate.Weekday())
	}
}

func TestWeekDatesInvalidWeek(t *testing.T) {
	for _, week := range []int{0, -3, 54} {
		if _, err := WeekDates(2025, week); err != ErrInvalidWeekNumber {
			t.Errorf("WeekDates(2025, %d) err = %v, want ErrInvalidWeekNumber", week, err)
		}
	}
	// 2020 has 53 weeks, 2025 does not.
	if _, err := WeekDates(2020, 53); err != nil {
		t.Errorf("WeekDates(2020, 53) err = %v, want nil", err)
	}
	if _, err := WeekDates(2025, 53); err != ErrInvalidWeekNumber {
		t.Errorf("WeekDates(2025, 53) err = %v, want ErrInvalidWeekNumber", err)
	}
}

// Any date must fall inside the range derived from its own week number.
func TestWeekDatesRoundTrip(t *testing.T) {
	d := date(2023, time.December, 20)
	end := date(2026, time.January, 20)
	for d.Before(end) {
		year, week := WeekYear(d), WeekNumber(d)
		r, err := WeekDates(year, week)
		if err != nil {
			t.Fatalf("WeekDates(%d, %d) error: %v (date %s)", year, week, err, d.Format("2006-01-02"))
		}
		if d.Before(r.StartDate) || d.After(r.EndDate) {
			t.Fatalf("%s outside WeekDates(%d, %d) = [%s, %s]",
				d.Format("2006-01-02"), year, week,
				r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"))
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestWeeksInYear(t *testing.T) {
	cases := map[int]int{
		2015: 53,
		2016: 52,
		2020: 53,
		2024: 52,
		2025: 52,
		2026: 53,
	}
	for year, want := range cases {
		if got := WeeksInYear(year); got != want {
			t.Errorf("WeeksInYear(%d) = %d, want %d", year, got, want)
		}
	}
}
