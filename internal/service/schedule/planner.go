package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/calendar"
)

// PlanifyYearWithTemplate implements schedule.ScheduleService. Each week is
// processed in its own transaction so one bad week never rolls back the rest;
// failures are collected instead of aborting the run. Re-running is safe:
// existing assignments are updated (or skipped when requested), never
// duplicated.
func (s *scheduleServiceImpl) PlanifyYearWithTemplate(ctx context.Context, req schedule.PlanifyYearRequest) (schedule.PlanifyYearResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.PlanifyYearResult{}, err
	}

	template, err := s.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		if err == schedule.ErrTemplateNotFound {
			return schedule.PlanifyYearResult{}, err
		}
		return schedule.PlanifyYearResult{}, fmt.Errorf("failed to get template: %w", err)
	}
	if !template.IsActive {
		return schedule.PlanifyYearResult{}, schedule.ErrTemplateInactive
	}

	weeks := planWeeks(req)
	result := schedule.PlanifyYearResult{
		Results: []schedule.PlanifyWeekResult{},
		Errors:  []schedule.PlanifyWeekError{},
	}
	result.Summary.Total = len(weeks)

	for _, week := range weeks {
		wr, err := calendar.WeekDates(req.Year, week)
		if err != nil {
			result.Summary.Failed++
			result.Errors = append(result.Errors, schedule.PlanifyWeekError{
				WeekNumber: week,
				Message:    err.Error(),
			})
			continue
		}

		var action string
		txErr := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			existing, err := s.assignmentRepo.GetByEmployeeWeek(ctx, req.EmployeeID, req.Year, week)
			switch {
			case err == nil:
				if req.SkipExistingWeeks {
					action = "skipped"
					return nil
				}
				existing.TemplateID = &req.TemplateID
				existing.Notes = req.Notes
				existing.StartDate = wr.StartDate
				existing.EndDate = wr.EndDate
				if _, err := s.assignmentRepo.Update(ctx, existing); err != nil {
					return err
				}
				action = "updated"
				return nil
			case err == schedule.ErrWeeklyAssignmentNotFound:
				wa := schedule.WeeklyAssignment{
					EmployeeID: req.EmployeeID,
					TemplateID: &req.TemplateID,
					Year:       req.Year,
					WeekNumber: week,
					StartDate:  wr.StartDate,
					EndDate:    wr.EndDate,
					Notes:      req.Notes,
					CreatedBy:  req.CreatedBy,
				}
				if _, err := s.assignmentRepo.Create(ctx, wa); err != nil {
					return err
				}
				action = "created"
				return nil
			default:
				return err
			}
		})
		if txErr != nil {
			result.Summary.Failed++
			result.Errors = append(result.Errors, schedule.PlanifyWeekError{
				WeekNumber: week,
				Message:    txErr.Error(),
			})
			continue
		}

		if action == "skipped" {
			result.Summary.Skipped++
		} else {
			result.Summary.Successful++
		}
		result.Results = append(result.Results, schedule.PlanifyWeekResult{
			WeekNumber: week,
			Action:     action,
			StartDate:  fmtDate(wr.StartDate),
			EndDate:    fmtDate(wr.EndDate),
		})
	}

	return result, nil
}

// planWeeks expands the request into the ordered week list to process:
// either the explicit selection or the whole year, minus exclusions.
func planWeeks(req schedule.PlanifyYearRequest) []int {
	excluded := make(map[int]bool, len(req.ExcludeWeeks))
	for _, w := range req.ExcludeWeeks {
		excluded[w] = true
	}

	var weeks []int
	if len(req.SpecificWeeks) > 0 {
		seen := make(map[int]bool, len(req.SpecificWeeks))
		for _, w := range req.SpecificWeeks {
			if seen[w] || excluded[w] {
				continue
			}
			seen[w] = true
			weeks = append(weeks, w)
		}
		sort.Ints(weeks)
		return weeks
	}

	total := calendar.WeeksInYear(req.Year)
	for w := 1; w <= total; w++ {
		if excluded[w] {
			continue
		}
		weeks = append(weeks, w)
	}
	return weeks
}

// ApplyTemplateBreaksToSchedules implements schedule.ScheduleService. The
// template day's break set is copied onto each target fixed schedule,
// replacing whatever breaks the schedule had. Per-schedule failures are
// collected; one bad target does not stop the rest.
func (s *scheduleServiceImpl) ApplyTemplateBreaksToSchedules(ctx context.Context, req schedule.ApplyTemplateBreaksRequest) (schedule.ApplyTemplateBreaksResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.ApplyTemplateBreaksResult{}, err
	}

	if _, err := s.templateDayRepo.GetByID(ctx, req.TemplateDayID); err != nil {
		if err == schedule.ErrTemplateDayNotFound {
			return schedule.ApplyTemplateBreaksResult{}, err
		}
		return schedule.ApplyTemplateBreaksResult{}, fmt.Errorf("failed to get template day: %w", err)
	}

	source := schedule.ParentRef{Kind: schedule.ParentTemplateDay, ID: req.TemplateDayID}
	templateBreaks, err := s.breakRepo.GetByParent(ctx, source)
	if err != nil {
		return schedule.ApplyTemplateBreaksResult{}, fmt.Errorf("failed to get template breaks: %w", err)
	}

	result := schedule.ApplyTemplateBreaksResult{
		Applied: []string{},
		Failed:  []schedule.ApplyBreakFailure{},
	}
	for _, scheduleID := range req.ScheduleIDs {
		if _, err := s.fixedRepo.GetByID(ctx, scheduleID); err != nil {
			msg := "failed to get fixed schedule"
			if err == schedule.ErrFixedScheduleNotFound {
				msg = err.Error()
			}
			result.Failed = append(result.Failed, schedule.ApplyBreakFailure{
				ScheduleID: scheduleID,
				Message:    msg,
			})
			continue
		}

		target := schedule.ParentRef{Kind: schedule.ParentFixedSchedule, ID: scheduleID}
		copies := make([]schedule.Break, 0, len(templateBreaks))
		for _, b := range templateBreaks {
			clone := b
			clone.ID = ""
			clone.Parent = target
			copies = append(copies, clone)
		}
		if _, err := s.breakRepo.ReplaceForParent(ctx, target, copies); err != nil {
			result.Failed = append(result.Failed, schedule.ApplyBreakFailure{
				ScheduleID: scheduleID,
				Message:    err.Error(),
			})
			continue
		}
		result.Applied = append(result.Applied, scheduleID)
	}

	return result, nil
}
