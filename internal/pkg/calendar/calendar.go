package calendar

import (
	"errors"
	"time"
)

var ErrInvalidWeekNumber = errors.New("week number out of range for year")

// WeekRange is the Monday-to-Sunday date span of one ISO week.
// Both bounds are calendar dates (midnight, no time component).
type WeekRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// thursdayOf shifts a date to the Thursday of its ISO week.
func thursdayOf(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	daysSinceMonday := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, 3-daysSinceMonday)
}

// WeekNumber returns the ISO week number of a date, Thursday-anchored:
// the week number is the distance in weeks between the Thursday of the
// date's week and the Thursday of week 1 of that ISO year.
func WeekNumber(date time.Time) int {
	thursday := thursdayOf(date)
	week1Thursday := thursdayOf(time.Date(thursday.Year(), time.January, 4, 0, 0, 0, 0, time.UTC))
	return int(thursday.Sub(week1Thursday).Hours()/(24*7)) + 1
}

// WeekYear returns the ISO year a date's week belongs to, which can differ
// from the calendar year around January 1st.
func WeekYear(date time.Time) int {
	return thursdayOf(date).Year()
}

// WeekDates returns the inclusive Monday..Sunday range of the given ISO week.
func WeekDates(year, weekNumber int) (WeekRange, error) {
	if weekNumber < 1 || weekNumber > WeeksInYear(year) {
		return WeekRange{}, ErrInvalidWeekNumber
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	daysSinceMonday := (int(jan4.Weekday()) + 6) % 7
	week1Monday := jan4.AddDate(0, 0, -daysSinceMonday)

	start := week1Monday.AddDate(0, 0, (weekNumber-1)*7)
	return WeekRange{StartDate: start, EndDate: start.AddDate(0, 0, 6)}, nil
}

// CurrentWeek returns the ISO year and week number of today.
func CurrentWeek() (year, weekNumber int) {
	now := time.Now()
	return WeekYear(now), WeekNumber(now)
}

// WeeksInYear returns 52 or 53. When December 31st already belongs to week 1
// of the next ISO year, the year has 52 weeks; when it lands in week 53 the
// year is a long one.
func WeeksInYear(year int) int {
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	w := WeekNumber(dec31)
	if w == 1 {
		return WeekNumber(dec31.AddDate(0, 0, -7))
	}
	return w
}
