package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
)

// Week 11 of 2025 runs Monday March 10 through Sunday March 16.

func TestResolveEffectiveSchedule_FixedScheduleBaseline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	seedFixedWeek(env, "emp-1")

	monday := date(2025, time.March, 10)
	res, err := env.service.ResolveEffectiveSchedule(ctx, "emp-1", monday)

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceRegular, res.Type)
	assert.True(t, res.IsWorkingDay)
	assert.Equal(t, "09:00", res.StartTime.Format("15:04"))
	assert.Equal(t, "17:00", res.EndTime.Format("15:04"))

	sunday := date(2025, time.March, 16)
	res, err = env.service.ResolveEffectiveSchedule(ctx, "emp-1", sunday)

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceRegular, res.Type)
	assert.False(t, res.IsWorkingDay)
	assert.Nil(t, res.StartTime)
}

func TestResolveEffectiveSchedule_NoSchedule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()

	res, err := env.service.ResolveEffectiveSchedule(ctx, "emp-1", date(2025, time.March, 10))

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceNone, res.Type)
	assert.False(t, res.IsWorkingDay)
	assert.Empty(t, res.SourceID)
	assert.Equal(t, schedule.NoScheduleNotes, res.Notes)
}

func TestResolveEffectiveSchedule_ExceptionOverridesFixed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	seedFixedWeek(env, "emp-1")

	wednesday := date(2025, time.March, 12)
	_, err := env.exceptions.Create(ctx, schedule.DailyException{
		EmployeeID:    "emp-1",
		Date:          wednesday,
		ExceptionType: schedule.ExceptionDayOff,
		IsWorkingDay:  false,
		Notes:         "medical appointment",
		CreatedBy:     "mgr-1",
	})
	require.NoError(t, err)

	res, err := env.service.ResolveEffectiveSchedule(ctx, "emp-1", wednesday)

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceDailyException, res.Type)
	assert.False(t, res.IsWorkingDay)
	assert.Nil(t, res.StartTime)

	// The surrounding days still come from the fixed schedule.
	res, err = env.service.ResolveEffectiveSchedule(ctx, "emp-1", date(2025, time.March, 11))
	require.NoError(t, err)
	assert.Equal(t, schedule.SourceRegular, res.Type)
	assert.True(t, res.IsWorkingDay)
}

func TestResolveEffectiveSchedule_CustomHoursException(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	seedFixedWeek(env, "emp-1")

	monday := date(2025, time.March, 10)
	de, err := env.exceptions.Create(ctx, schedule.DailyException{
		EmployeeID:    "emp-1",
		Date:          monday,
		ExceptionType: schedule.ExceptionCustomHours,
		IsWorkingDay:  true,
		StartTime:     clock(12, 0),
		EndTime:       clock(20, 0),
		CreatedBy:     "mgr-1",
	})
	require.NoError(t, err)

	res, err := env.service.ResolveEffectiveSchedule(ctx, "emp-1", monday)

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceDailyException, res.Type)
	assert.Equal(t, de.ID, res.SourceID)
	assert.True(t, res.IsWorkingDay)
	assert.Equal(t, "12:00", res.StartTime.Format("15:04"))
	assert.Equal(t, "20:00", res.EndTime.Format("15:04"))
}

func TestResolveEffectiveSchedule_TemplateOverridesFixed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	seedFixedWeek(env, "emp-1")

	tpl, err := env.templates.Create(ctx, schedule.Template{Name: "Morning shift", IsActive: true, CreatedBy: "mgr-1"})
	require.NoError(t, err)
	td, err := env.days.Create(ctx, schedule.TemplateDay{
		TemplateID:   tpl.ID,
		DayOfWeek:    1,
		IsWorkingDay: true,
		StartTime:    clock(6, 0),
		EndTime:      clock(14, 0),
	})
	require.NoError(t, err)

	_, err = env.assignments.Create(ctx, schedule.WeeklyAssignment{
		EmployeeID: "emp-1",
		TemplateID: &tpl.ID,
		Year:       2025,
		WeekNumber: 11,
	})
	require.NoError(t, err)

	monday := date(2025, time.March, 10)
	res, err := env.service.ResolveEffectiveSchedule(ctx, "emp-1", monday)

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceWeeklyTemplate, res.Type)
	assert.Equal(t, td.ID, res.SourceID)
	assert.Equal(t, "06:00", res.StartTime.Format("15:04"))
	assert.Equal(t, "14:00", res.EndTime.Format("15:04"))

	// Tuesday has no template day, so the fixed schedule wins.
	res, err = env.service.ResolveEffectiveSchedule(ctx, "emp-1", date(2025, time.March, 11))
	require.NoError(t, err)
	assert.Equal(t, schedule.SourceRegular, res.Type)
	assert.Equal(t, "09:00", res.StartTime.Format("15:04"))
}

func TestResolveEffectiveSchedule_NullTemplateAssignmentFallsThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	seedFixedWeek(env, "emp-1")

	_, err := env.assignments.Create(ctx, schedule.WeeklyAssignment{
		EmployeeID: "emp-1",
		TemplateID: nil,
		Year:       2025,
		WeekNumber: 11,
	})
	require.NoError(t, err)

	res, err := env.service.ResolveEffectiveSchedule(ctx, "emp-1", date(2025, time.March, 10))

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceRegular, res.Type)
	assert.True(t, res.IsWorkingDay)
}

func TestResolveEffectiveSchedule_ExceptionBeatsTemplate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	seedFixedWeek(env, "emp-1")

	tpl, err := env.templates.Create(ctx, schedule.Template{Name: "Night shift", IsActive: true, CreatedBy: "mgr-1"})
	require.NoError(t, err)
	_, err = env.days.Create(ctx, schedule.TemplateDay{
		TemplateID:   tpl.ID,
		DayOfWeek:    1,
		IsWorkingDay: true,
		StartTime:    clock(22, 0),
		EndTime:      clock(23, 30),
	})
	require.NoError(t, err)
	_, err = env.assignments.Create(ctx, schedule.WeeklyAssignment{
		EmployeeID: "emp-1",
		TemplateID: &tpl.ID,
		Year:       2025,
		WeekNumber: 11,
	})
	require.NoError(t, err)

	monday := date(2025, time.March, 10)
	_, err = env.exceptions.Create(ctx, schedule.DailyException{
		EmployeeID:    "emp-1",
		Date:          monday,
		ExceptionType: schedule.ExceptionHoliday,
		CreatedBy:     "mgr-1",
	})
	require.NoError(t, err)

	res, err := env.service.ResolveEffectiveSchedule(ctx, "emp-1", monday)

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceDailyException, res.Type)
	assert.False(t, res.IsWorkingDay)
}

func TestResolveEffectiveSchedule_RequiresEmployeeID(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	_, err := env.service.ResolveEffectiveSchedule(context.Background(), "", date(2025, time.March, 10))
	assert.ErrorIs(t, err, schedule.ErrEmployeeIDRequired)
}

func TestResolveEffectiveRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	seedFixedWeek(env, "emp-1")

	resolved, err := env.service.ResolveEffectiveRange(ctx, "emp-1", date(2025, time.March, 10), date(2025, time.March, 16))

	require.NoError(t, err)
	require.Len(t, resolved, 7)
	assert.Equal(t, date(2025, time.March, 10), resolved[0].Date)
	assert.Equal(t, date(2025, time.March, 16), resolved[6].Date)

	working := 0
	for _, res := range resolved {
		if res.IsWorkingDay {
			working++
		}
	}
	assert.Equal(t, 5, working)
}

func TestResolveEffectiveRange_InvalidRange(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	_, err := env.service.ResolveEffectiveRange(context.Background(), "emp-1", date(2025, time.March, 16), date(2025, time.March, 10))
	assert.ErrorIs(t, err, schedule.ErrInvalidDateRange)
}

func TestGetEffectiveBreaks_FromWinningSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	seedFixedWeek(env, "emp-1")

	monday := date(2025, time.March, 10)
	fs, err := env.fixed.GetByEmployeeAndDay(ctx, "emp-1", 1)
	require.NoError(t, err)

	parent := schedule.ParentRef{Kind: schedule.ParentFixedSchedule, ID: fs.ID}
	_, err = env.breaks.Create(ctx, schedule.Break{
		Parent:    parent,
		Name:      "Lunch",
		StartTime: *clock(13, 0),
		EndTime:   *clock(14, 0),
		BreakType: schedule.BreakTypeMeal,
	})
	require.NoError(t, err)

	eb, err := env.service.GetEffectiveBreaks(ctx, "emp-1", monday)

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceRegular, eb.Source)
	assert.Equal(t, fs.ID, eb.SourceID)
	require.Len(t, eb.Breaks, 1)
	assert.Equal(t, "Lunch", eb.Breaks[0].Name)
}

func TestGetEffectiveBreaks_NoScheduleHasNoBreaks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()

	eb, err := env.service.GetEffectiveBreaks(ctx, "emp-1", date(2025, time.March, 10))

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceNone, eb.Source)
	assert.Empty(t, eb.Breaks)
}
