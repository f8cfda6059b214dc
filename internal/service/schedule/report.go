package schedule

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/calendar"
)

// GetSchedulingStats implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetSchedulingStats(ctx context.Context, employeeID string, year int) (schedule.SchedulingStats, error) {
	if employeeID == "" {
		return schedule.SchedulingStats{}, schedule.ErrEmployeeIDRequired
	}

	totalWeeks := calendar.WeeksInYear(year)

	scheduled, err := s.assignmentRepo.CountByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return schedule.SchedulingStats{}, fmt.Errorf("failed to count weekly assignments: %w", err)
	}
	exceptions, err := s.exceptionRepo.CountByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return schedule.SchedulingStats{}, fmt.Errorf("failed to count daily exceptions: %w", err)
	}
	templates, err := s.assignmentRepo.DistinctTemplates(ctx, employeeID, year)
	if err != nil {
		return schedule.SchedulingStats{}, fmt.Errorf("failed to list distinct templates: %w", err)
	}

	percentage := 0.0
	if totalWeeks > 0 {
		percentage = math.Round(float64(scheduled)/float64(totalWeeks)*1000) / 10
	}

	return schedule.SchedulingStats{
		EmployeeID:               employeeID,
		Year:                     year,
		TotalWeeks:               totalWeeks,
		ScheduledWeeks:           scheduled,
		UnscheduledWeeks:         totalWeeks - scheduled,
		ScheduledWeeksPercentage: percentage,
		DailyExceptions:          exceptions,
		TemplatesUsed:            len(templates),
	}, nil
}

// GenerateBreakReport implements schedule.ScheduleService. Non-working days
// count toward total days but contribute nothing else; the per-day break
// average is taken over working days.
func (s *scheduleServiceImpl) GenerateBreakReport(ctx context.Context, employeeID string, startDate, endDate time.Time) (schedule.BreakReport, error) {
	resolved, err := s.ResolveEffectiveRange(ctx, employeeID, startDate, endDate)
	if err != nil {
		return schedule.BreakReport{}, err
	}

	report := schedule.BreakReport{
		EmployeeID: employeeID,
		StartDate:  fmtDate(truncateToDay(startDate)),
		EndDate:    fmtDate(truncateToDay(endDate)),
		Days:       []schedule.BreakReportDay{},
	}

	for _, res := range resolved {
		report.TotalDays++
		day := schedule.BreakReportDay{
			Date:   fmtDate(res.Date),
			Source: res.Type,
		}
		if !res.IsWorkingDay {
			report.Days = append(report.Days, day)
			continue
		}
		report.WorkingDays++

		var breaks []schedule.Break
		if parent, ok := res.ParentRef(); ok {
			breaks, err = s.breakRepo.GetByParent(ctx, parent)
			if err != nil {
				return schedule.BreakReport{}, fmt.Errorf("failed to get breaks: %w", err)
			}
		}
		day.BreakCount = len(breaks)

		if wt := CalculateEffectiveWorkTime(res.StartTime, res.EndTime, breaks); wt != nil {
			day.WorkTime = wt
			report.TotalWorkMinutes += wt.TotalWorkMinutes
			report.TotalBreakMinutes += wt.TotalBreakMinutes
			report.TotalPaidBreakMinutes += wt.PaidBreakMinutes
			report.TotalUnpaidBreakMinutes += wt.UnpaidBreakMinutes
			report.TotalEffectiveMinutes += wt.EffectiveWorkMinutes
		}
		report.Days = append(report.Days, day)
	}

	if report.WorkingDays > 0 {
		report.AverageBreakMinutesPerDay = math.Round(float64(report.TotalBreakMinutes)/float64(report.WorkingDays)*10) / 10
	}
	return report, nil
}
