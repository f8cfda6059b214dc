package schedule

import (
	"time"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
)

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// BreakDuration returns the break length in minutes: the explicit override
// when set, the window length otherwise.
func BreakDuration(b schedule.Break) int {
	if b.DurationMinutes != nil {
		return *b.DurationMinutes
	}
	return minuteOfDay(b.EndTime) - minuteOfDay(b.StartTime)
}

// effectiveWindow returns the minute-of-day bounds used for overlap checks.
// A flexible break is widened by its flexibility on both ends.
func effectiveWindow(b schedule.Break) (int, int) {
	start := minuteOfDay(b.StartTime)
	end := minuteOfDay(b.EndTime)
	if b.IsFlexible && b.FlexibilityMinutes > 0 {
		start -= b.FlexibilityMinutes
		end += b.FlexibilityMinutes
	}
	return start, end
}

// BreaksOverlap reports whether two breaks' effective windows intersect.
// Touching endpoints do not overlap.
func BreaksOverlap(a, b schedule.Break) bool {
	aStart, aEnd := effectiveWindow(a)
	bStart, bEnd := effectiveWindow(b)
	return aStart < bEnd && bStart < aEnd
}

// CalculateEffectiveWorkTime computes the minute accounting for one work
// window and its breaks. Unpaid break minutes subtract from the work window;
// paid break minutes stay inside effective time. The result is nil when the
// window is incomplete.
func CalculateEffectiveWorkTime(workStart, workEnd *time.Time, breaks []schedule.Break) *schedule.WorkTimeSummary {
	if workStart == nil || workEnd == nil {
		return nil
	}

	summary := &schedule.WorkTimeSummary{
		TotalWorkMinutes: minuteOfDay(*workEnd) - minuteOfDay(*workStart),
	}
	for _, b := range breaks {
		d := BreakDuration(b)
		summary.TotalBreakMinutes += d
		if b.IsPaid {
			summary.PaidBreakMinutes += d
		} else {
			summary.UnpaidBreakMinutes += d
		}
	}

	summary.EffectiveWorkMinutes = summary.TotalWorkMinutes - summary.UnpaidBreakMinutes
	// Not clamped: a negative value means the breaks are misconfigured and
	// the caller should see it.
	summary.IsAnomalous = summary.EffectiveWorkMinutes < 0
	return summary
}
