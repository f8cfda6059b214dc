package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/calendar"
)

// sourceResolver inspects one schedule source for a date. A nil result with a
// nil error means the source does not cover the date and resolution falls
// through to the next one.
type sourceResolver func(ctx context.Context, employeeID string, date time.Time) (*schedule.EffectiveSchedule, error)

func (s *scheduleServiceImpl) resolvers() []sourceResolver {
	return []sourceResolver{
		s.resolveDailyException,
		s.resolveWeeklyTemplate,
		s.resolveFixedSchedule,
	}
}

// ResolveEffectiveSchedule implements schedule.ScheduleService. Sources are
// consulted in priority order: daily exception, weekly template, fixed
// schedule. When none covers the date a no_schedule placeholder is returned.
func (s *scheduleServiceImpl) ResolveEffectiveSchedule(ctx context.Context, employeeID string, date time.Time) (schedule.EffectiveSchedule, error) {
	if employeeID == "" {
		return schedule.EffectiveSchedule{}, schedule.ErrEmployeeIDRequired
	}
	date = truncateToDay(date)

	for _, resolve := range s.resolvers() {
		res, err := resolve(ctx, employeeID, date)
		if err != nil {
			return schedule.EffectiveSchedule{}, err
		}
		if res != nil {
			return *res, nil
		}
	}

	return schedule.EffectiveSchedule{
		EmployeeID:   employeeID,
		Date:         date,
		Type:         schedule.SourceNone,
		IsWorkingDay: false,
		Notes:        schedule.NoScheduleNotes,
	}, nil
}

// ResolveEffectiveRange implements schedule.ScheduleService. Each date in the
// inclusive range resolves independently.
func (s *scheduleServiceImpl) ResolveEffectiveRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]schedule.EffectiveSchedule, error) {
	if employeeID == "" {
		return nil, schedule.ErrEmployeeIDRequired
	}
	startDate = truncateToDay(startDate)
	endDate = truncateToDay(endDate)
	if startDate.After(endDate) {
		return nil, schedule.ErrInvalidDateRange
	}

	var results []schedule.EffectiveSchedule
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		res, err := s.ResolveEffectiveSchedule(ctx, employeeID, d)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *scheduleServiceImpl) resolveDailyException(ctx context.Context, employeeID string, date time.Time) (*schedule.EffectiveSchedule, error) {
	de, err := s.exceptionRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if err == schedule.ErrDailyExceptionNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve daily exception: %w", err)
	}

	working := de.IsWorkingDay && de.ExceptionType.RequiresTimes()
	res := &schedule.EffectiveSchedule{
		EmployeeID:   employeeID,
		Date:         date,
		Type:         schedule.SourceDailyException,
		SourceID:     de.ID,
		IsWorkingDay: working,
		Notes:        de.Notes,
	}
	if working {
		res.StartTime = de.StartTime
		res.EndTime = de.EndTime
	}
	return res, nil
}

func (s *scheduleServiceImpl) resolveWeeklyTemplate(ctx context.Context, employeeID string, date time.Time) (*schedule.EffectiveSchedule, error) {
	year := calendar.WeekYear(date)
	week := calendar.WeekNumber(date)

	wa, err := s.assignmentRepo.GetByEmployeeWeek(ctx, employeeID, year, week)
	if err != nil {
		if err == schedule.ErrWeeklyAssignmentNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve weekly assignment: %w", err)
	}
	if wa.TemplateID == nil {
		// Unscheduled week: the assignment row reserves the week without
		// binding a pattern, so lower-priority sources still apply.
		return nil, nil
	}

	td, err := s.templateDayRepo.GetByTemplateAndDay(ctx, *wa.TemplateID, int(date.Weekday()))
	if err != nil {
		if err == schedule.ErrTemplateDayNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve template day: %w", err)
	}

	res := &schedule.EffectiveSchedule{
		EmployeeID:   employeeID,
		Date:         date,
		Type:         schedule.SourceWeeklyTemplate,
		SourceID:     td.ID,
		IsWorkingDay: td.IsWorkingDay,
		Notes:        td.Notes,
	}
	if td.IsWorkingDay {
		res.StartTime = td.StartTime
		res.EndTime = td.EndTime
		res.BreakStartTime = td.BreakStartTime
		res.BreakEndTime = td.BreakEndTime
	}
	return res, nil
}

func (s *scheduleServiceImpl) resolveFixedSchedule(ctx context.Context, employeeID string, date time.Time) (*schedule.EffectiveSchedule, error) {
	fs, err := s.fixedRepo.GetByEmployeeAndDay(ctx, employeeID, int(date.Weekday()))
	if err != nil {
		if err == schedule.ErrFixedScheduleNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve fixed schedule: %w", err)
	}

	res := &schedule.EffectiveSchedule{
		EmployeeID:   employeeID,
		Date:         date,
		Type:         schedule.SourceRegular,
		SourceID:     fs.ID,
		IsWorkingDay: fs.IsWorkingDay,
		Notes:        fs.Notes,
	}
	if fs.IsWorkingDay {
		res.StartTime = fs.StartTime
		res.EndTime = fs.EndTime
		res.BreakStartTime = fs.BreakStartTime
		res.BreakEndTime = fs.BreakEndTime
	}
	return res, nil
}

// GetEffectiveBreaks implements schedule.ScheduleService. The break set is
// the one attached to whichever source won resolution for the date.
func (s *scheduleServiceImpl) GetEffectiveBreaks(ctx context.Context, employeeID string, date time.Time) (schedule.EffectiveBreaks, error) {
	res, err := s.ResolveEffectiveSchedule(ctx, employeeID, date)
	if err != nil {
		return schedule.EffectiveBreaks{}, err
	}

	eb := schedule.EffectiveBreaks{
		EmployeeID:    res.EmployeeID,
		Date:          res.Date,
		Source:        res.Type,
		SourceID:      res.SourceID,
		IsWorkingDay:  res.IsWorkingDay,
		WorkStartTime: res.StartTime,
		WorkEndTime:   res.EndTime,
		Breaks:        []schedule.Break{},
	}

	if parent, ok := res.ParentRef(); ok {
		breaks, err := s.breakRepo.GetByParent(ctx, parent)
		if err != nil {
			return schedule.EffectiveBreaks{}, fmt.Errorf("failed to get effective breaks: %w", err)
		}
		eb.Breaks = breaks
	}
	return eb, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
