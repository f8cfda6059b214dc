package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
)

// ValidateBreaksForParent checks a break set against its parent's work
// window. Three conflict kinds are reported: a break outside the window, an
// inverted window, and a pairwise overlap. Overlap checks honor flexibility;
// the window containment check does not.
func ValidateBreaksForParent(breaks []schedule.Break, workStart, workEnd *time.Time) schedule.BreakValidationResult {
	result := schedule.BreakValidationResult{IsValid: true, Errors: []schedule.BreakConflict{}}

	for i, b := range breaks {
		start := minuteOfDay(b.StartTime)
		end := minuteOfDay(b.EndTime)

		if start >= end {
			result.Errors = append(result.Errors, schedule.BreakConflict{
				Code:       schedule.ConflictInvalidTimeRange,
				Message:    fmt.Sprintf("break %q has start time at or after end time", b.Name),
				BreakIndex: i,
				BreakName:  b.Name,
			})
			continue
		}

		if workStart == nil || workEnd == nil {
			result.Errors = append(result.Errors, schedule.BreakConflict{
				Code:       schedule.ConflictOutsideWorkHours,
				Message:    fmt.Sprintf("break %q is attached to a day without work hours", b.Name),
				BreakIndex: i,
				BreakName:  b.Name,
			})
			continue
		}
		if start < minuteOfDay(*workStart) || end > minuteOfDay(*workEnd) {
			result.Errors = append(result.Errors, schedule.BreakConflict{
				Code:       schedule.ConflictOutsideWorkHours,
				Message:    fmt.Sprintf("break %q falls outside work hours", b.Name),
				BreakIndex: i,
				BreakName:  b.Name,
			})
		}
	}

	for i := 0; i < len(breaks); i++ {
		for j := i + 1; j < len(breaks); j++ {
			if !BreaksOverlap(breaks[i], breaks[j]) {
				continue
			}
			otherIndex := j
			otherName := breaks[j].Name
			result.Errors = append(result.Errors, schedule.BreakConflict{
				Code:       schedule.ConflictBreakOverlap,
				Message:    fmt.Sprintf("break %q overlaps break %q", breaks[i].Name, breaks[j].Name),
				BreakIndex: i,
				BreakName:  breaks[i].Name,
				OtherIndex: &otherIndex,
				OtherName:  &otherName,
			})
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// ValidateParentBreaks implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ValidateParentBreaks(ctx context.Context, parent schedule.ParentRef) (schedule.BreakValidationResult, error) {
	workStart, workEnd, err := s.loadParentWindow(ctx, parent)
	if err != nil {
		return schedule.BreakValidationResult{}, err
	}
	breaks, err := s.breakRepo.GetByParent(ctx, parent)
	if err != nil {
		return schedule.BreakValidationResult{}, fmt.Errorf("failed to get breaks: %w", err)
	}
	return ValidateBreaksForParent(breaks, workStart, workEnd), nil
}

// ValidateScheduleConflicts implements schedule.ScheduleService. Each working
// day in the range is checked for an inverted work window and for a legacy
// break window escaping the work window.
func (s *scheduleServiceImpl) ValidateScheduleConflicts(ctx context.Context, employeeID string, startDate, endDate time.Time) (schedule.ConflictReport, error) {
	resolved, err := s.ResolveEffectiveRange(ctx, employeeID, startDate, endDate)
	if err != nil {
		return schedule.ConflictReport{}, err
	}

	report := schedule.ConflictReport{Conflicts: []schedule.ScheduleConflict{}}
	for _, res := range resolved {
		if !res.IsWorkingDay {
			continue
		}
		date := res.Date.Format("2006-01-02")

		if res.StartTime == nil || res.EndTime == nil {
			report.Conflicts = append(report.Conflicts, schedule.ScheduleConflict{
				Date:    date,
				Source:  res.Type,
				Code:    schedule.ConflictInvalidTimeRange,
				Message: "working day has no work window",
			})
			continue
		}
		workStart := minuteOfDay(*res.StartTime)
		workEnd := minuteOfDay(*res.EndTime)
		if workStart >= workEnd {
			report.Conflicts = append(report.Conflicts, schedule.ScheduleConflict{
				Date:    date,
				Source:  res.Type,
				Code:    schedule.ConflictInvalidTimeRange,
				Message: "work start time is at or after end time",
			})
			continue
		}

		if res.BreakStartTime != nil && res.BreakEndTime != nil {
			breakStart := minuteOfDay(*res.BreakStartTime)
			breakEnd := minuteOfDay(*res.BreakEndTime)
			if breakStart >= breakEnd {
				report.Conflicts = append(report.Conflicts, schedule.ScheduleConflict{
					Date:    date,
					Source:  res.Type,
					Code:    schedule.ConflictInvalidTimeRange,
					Message: "break start time is at or after end time",
				})
			} else if breakStart < workStart || breakEnd > workEnd {
				report.Conflicts = append(report.Conflicts, schedule.ScheduleConflict{
					Date:    date,
					Source:  res.Type,
					Code:    schedule.ConflictOutsideWorkHours,
					Message: "break falls outside work hours",
				})
			}
		}
	}

	report.ConflictCount = len(report.Conflicts)
	report.HasConflicts = report.ConflictCount > 0
	return report, nil
}
