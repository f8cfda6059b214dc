package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
)

func seedTemplate(t *testing.T, env *testEnv, name string) schedule.Template {
	t.Helper()
	tpl, err := env.templates.Create(context.Background(), schedule.Template{
		Name:      name,
		IsActive:  true,
		CreatedBy: "mgr-1",
	})
	require.NoError(t, err)
	return tpl
}

func TestPlanifyYear_FullYear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	tpl := seedTemplate(t, env, "Standard week")

	result, err := env.service.PlanifyYearWithTemplate(ctx, schedule.PlanifyYearRequest{
		EmployeeID: "emp-1",
		Year:       2025,
		TemplateID: tpl.ID,
		CreatedBy:  "mgr-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 52, result.Summary.Total)
	assert.Equal(t, 52, result.Summary.Successful)
	assert.Equal(t, 0, result.Summary.Failed)
	assert.Equal(t, 0, result.Summary.Skipped)
	require.Len(t, result.Results, 52)
	assert.Equal(t, "created", result.Results[0].Action)
	assert.Empty(t, result.Errors)

	count, err := env.assignments.CountByEmployeeYear(ctx, "emp-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 52, count)

	// Week 11 carries its Monday..Sunday bounds.
	wa, err := env.assignments.GetByEmployeeWeek(ctx, "emp-1", 2025, 11)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", wa.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-03-16", wa.EndDate.Format("2006-01-02"))
}

func TestPlanifyYear_RerunUpdatesInsteadOfDuplicating(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	tpl := seedTemplate(t, env, "Standard week")

	req := schedule.PlanifyYearRequest{
		EmployeeID: "emp-1",
		Year:       2025,
		TemplateID: tpl.ID,
		CreatedBy:  "mgr-1",
	}
	_, err := env.service.PlanifyYearWithTemplate(ctx, req)
	require.NoError(t, err)

	result, err := env.service.PlanifyYearWithTemplate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 52, result.Summary.Successful)
	for _, wr := range result.Results {
		assert.Equal(t, "updated", wr.Action)
	}

	count, err := env.assignments.CountByEmployeeYear(ctx, "emp-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 52, count)
}

func TestPlanifyYear_SkipExistingWeeks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	tpl := seedTemplate(t, env, "Standard week")

	_, err := env.assignments.Create(ctx, schedule.WeeklyAssignment{
		EmployeeID: "emp-1",
		TemplateID: &tpl.ID,
		Year:       2025,
		WeekNumber: 3,
	})
	require.NoError(t, err)

	result, err := env.service.PlanifyYearWithTemplate(ctx, schedule.PlanifyYearRequest{
		EmployeeID:        "emp-1",
		Year:              2025,
		TemplateID:        tpl.ID,
		CreatedBy:         "mgr-1",
		SkipExistingWeeks: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 51, result.Summary.Successful)
	assert.Equal(t, 1, result.Summary.Skipped)
}

func TestPlanifyYear_SpecificAndExcludedWeeks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	tpl := seedTemplate(t, env, "Standard week")

	result, err := env.service.PlanifyYearWithTemplate(ctx, schedule.PlanifyYearRequest{
		EmployeeID:    "emp-1",
		Year:          2025,
		TemplateID:    tpl.ID,
		CreatedBy:     "mgr-1",
		SpecificWeeks: []int{1, 2, 3, 4},
		ExcludeWeeks:  []int{3},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Summary.Total)
	assert.Equal(t, 3, result.Summary.Successful)

	_, err = env.assignments.GetByEmployeeWeek(ctx, "emp-1", 2025, 3)
	assert.ErrorIs(t, err, schedule.ErrWeeklyAssignmentNotFound)
}

func TestPlanifyYear_InvalidWeekCollected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	tpl := seedTemplate(t, env, "Standard week")

	// 2025 has 52 weeks; week 53 fails without aborting the run.
	result, err := env.service.PlanifyYearWithTemplate(ctx, schedule.PlanifyYearRequest{
		EmployeeID:    "emp-1",
		Year:          2025,
		TemplateID:    tpl.ID,
		CreatedBy:     "mgr-1",
		SpecificWeeks: []int{52, 53},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.Successful)
	assert.Equal(t, 1, result.Summary.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 53, result.Errors[0].WeekNumber)
}

func TestPlanifyYear_InactiveTemplate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()

	tpl, err := env.templates.Create(ctx, schedule.Template{Name: "Retired", IsActive: false, CreatedBy: "mgr-1"})
	require.NoError(t, err)

	_, err = env.service.PlanifyYearWithTemplate(ctx, schedule.PlanifyYearRequest{
		EmployeeID: "emp-1",
		Year:       2025,
		TemplateID: tpl.ID,
		CreatedBy:  "mgr-1",
	})

	assert.ErrorIs(t, err, schedule.ErrTemplateInactive)
}

func TestPlanifyYear_TemplateNotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	_, err := env.service.PlanifyYearWithTemplate(context.Background(), schedule.PlanifyYearRequest{
		EmployeeID: "emp-1",
		Year:       2025,
		TemplateID: "missing",
		CreatedBy:  "mgr-1",
	})

	assert.ErrorIs(t, err, schedule.ErrTemplateNotFound)
}

func TestApplyTemplateBreaks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv()
	seedFixedWeek(env, "emp-1")
	tpl := seedTemplate(t, env, "Standard week")

	td, err := env.days.Create(ctx, schedule.TemplateDay{
		TemplateID:   tpl.ID,
		DayOfWeek:    1,
		IsWorkingDay: true,
		StartTime:    clock(9, 0),
		EndTime:      clock(17, 0),
	})
	require.NoError(t, err)

	source := schedule.ParentRef{Kind: schedule.ParentTemplateDay, ID: td.ID}
	_, err = env.breaks.Create(ctx, schedule.Break{
		Parent:    source,
		Name:      "Lunch",
		StartTime: *clock(13, 0),
		EndTime:   *clock(14, 0),
		BreakType: schedule.BreakTypeMeal,
	})
	require.NoError(t, err)

	monday, err := env.fixed.GetByEmployeeAndDay(ctx, "emp-1", 1)
	require.NoError(t, err)
	tuesday, err := env.fixed.GetByEmployeeAndDay(ctx, "emp-1", 2)
	require.NoError(t, err)

	// A pre-existing break on the target is replaced, not merged.
	mondayRef := schedule.ParentRef{Kind: schedule.ParentFixedSchedule, ID: monday.ID}
	_, err = env.breaks.Create(ctx, schedule.Break{
		Parent:    mondayRef,
		Name:      "Old break",
		StartTime: *clock(10, 0),
		EndTime:   *clock(10, 30),
	})
	require.NoError(t, err)

	result, err := env.service.ApplyTemplateBreaksToSchedules(ctx, schedule.ApplyTemplateBreaksRequest{
		TemplateDayID: td.ID,
		ScheduleIDs:   []string{monday.ID, tuesday.ID, "missing"},
		CreatedBy:     "mgr-1",
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{monday.ID, tuesday.ID}, result.Applied)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "missing", result.Failed[0].ScheduleID)

	mondayBreaks, err := env.breaks.GetByParent(ctx, mondayRef)
	require.NoError(t, err)
	require.Len(t, mondayBreaks, 1)
	assert.Equal(t, "Lunch", mondayBreaks[0].Name)

	// Source breaks are untouched.
	sourceBreaks, err := env.breaks.GetByParent(ctx, source)
	require.NoError(t, err)
	assert.Len(t, sourceBreaks, 1)
}
