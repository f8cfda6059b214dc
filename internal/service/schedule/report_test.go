package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
)

func TestGetSchedulingStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	tpl := seedTemplate(t, env, "Standard week")

	for week := 1; week <= 10; week++ {
		_, err := env.assignments.Create(ctx, schedule.WeeklyAssignment{
			EmployeeID: "emp-1",
			TemplateID: &tpl.ID,
			Year:       2025,
			WeekNumber: week,
		})
		require.NoError(t, err)
	}
	_, err := env.exceptions.Create(ctx, schedule.DailyException{
		EmployeeID:    "emp-1",
		Date:          date(2025, time.March, 12),
		ExceptionType: schedule.ExceptionDayOff,
		CreatedBy:     "mgr-1",
	})
	require.NoError(t, err)

	stats, err := env.service.GetSchedulingStats(ctx, "emp-1", 2025)

	require.NoError(t, err)
	assert.Equal(t, 52, stats.TotalWeeks)
	assert.Equal(t, 10, stats.ScheduledWeeks)
	assert.Equal(t, 42, stats.UnscheduledWeeks)
	assert.InDelta(t, 19.2, stats.ScheduledWeeksPercentage, 0.001)
	assert.Equal(t, 1, stats.DailyExceptions)
	assert.Equal(t, 1, stats.TemplatesUsed)
}

func TestGetSchedulingStats_EmptyYear(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	stats, err := env.service.GetSchedulingStats(context.Background(), "emp-1", 2020)

	require.NoError(t, err)
	assert.Equal(t, 53, stats.TotalWeeks)
	assert.Equal(t, 0, stats.ScheduledWeeks)
	assert.Equal(t, 53, stats.UnscheduledWeeks)
	assert.Equal(t, 0.0, stats.ScheduledWeeksPercentage)
}

func TestGenerateBreakReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	seedFixedWeek(env, "emp-1")

	// Unpaid lunch on Monday only.
	monday, err := env.fixed.GetByEmployeeAndDay(ctx, "emp-1", 1)
	require.NoError(t, err)
	_, err = env.breaks.Create(ctx, schedule.Break{
		Parent:    schedule.ParentRef{Kind: schedule.ParentFixedSchedule, ID: monday.ID},
		Name:      "Lunch",
		StartTime: *clock(13, 0),
		EndTime:   *clock(14, 0),
		BreakType: schedule.BreakTypeMeal,
	})
	require.NoError(t, err)

	report, err := env.service.GenerateBreakReport(ctx, "emp-1", date(2025, time.March, 10), date(2025, time.March, 16))

	require.NoError(t, err)
	assert.Equal(t, 7, report.TotalDays)
	assert.Equal(t, 5, report.WorkingDays)
	assert.Equal(t, 5*480, report.TotalWorkMinutes)
	assert.Equal(t, 60, report.TotalBreakMinutes)
	assert.Equal(t, 60, report.TotalUnpaidBreakMinutes)
	assert.Equal(t, 0, report.TotalPaidBreakMinutes)
	assert.Equal(t, 5*480-60, report.TotalEffectiveMinutes)
	assert.InDelta(t, 12.0, report.AverageBreakMinutesPerDay, 0.001)
	require.Len(t, report.Days, 7)

	assert.Equal(t, "2025-03-10", report.Days[0].Date)
	assert.Equal(t, 1, report.Days[0].BreakCount)
	require.NotNil(t, report.Days[0].WorkTime)
	assert.Equal(t, 420, report.Days[0].WorkTime.EffectiveWorkMinutes)

	// Sunday is non-working: counted, no work time.
	assert.Equal(t, "2025-03-16", report.Days[6].Date)
	assert.Nil(t, report.Days[6].WorkTime)
}
