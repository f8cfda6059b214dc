package schedule

import (
	"fmt"
	"time"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/calendar"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/validator"
)

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func dayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ""
	}
	return dayNames[dayOfWeek]
}

// parseClock turns an HH:MM string into a clock-only time. Input is assumed
// validated; a malformed value maps to nil.
func parseClock(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, err := time.Parse("15:04", *value)
	if err != nil {
		return nil
	}
	return &t
}

func fmtClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func fmtTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func weekBounds(year, weekNumber int) (calendar.WeekRange, error) {
	wr, err := calendar.WeekDates(year, weekNumber)
	if err != nil {
		return calendar.WeekRange{}, err
	}
	return wr, nil
}

// breakConflictsToValidationErrors exposes break conflicts through the same
// error shape as request validation, so handlers map them to 422 uniformly.
func breakConflictsToValidationErrors(result schedule.BreakValidationResult) validator.ValidationErrors {
	errs := make(validator.ValidationErrors, 0, len(result.Errors))
	for _, c := range result.Errors {
		errs = append(errs, validator.ValidationError{
			Field:   fmt.Sprintf("breaks[%d]", c.BreakIndex),
			Message: c.Message,
		})
	}
	return errs
}

func mapFixedScheduleToResponse(fs schedule.FixedSchedule) schedule.FixedScheduleResponse {
	return schedule.FixedScheduleResponse{
		ID:             fs.ID,
		EmployeeID:     fs.EmployeeID,
		DayOfWeek:      fs.DayOfWeek,
		DayName:        dayName(fs.DayOfWeek),
		IsWorkingDay:   fs.IsWorkingDay,
		StartTime:      fmtClock(fs.StartTime),
		EndTime:        fmtClock(fs.EndTime),
		BreakStartTime: fmtClock(fs.BreakStartTime),
		BreakEndTime:   fmtClock(fs.BreakEndTime),
		Notes:          fs.Notes,
		CreatedAt:      fs.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      fs.UpdatedAt.Format(time.RFC3339),
	}
}

func mapTemplateToResponse(t schedule.Template) schedule.TemplateResponse {
	days := make([]schedule.TemplateDayResponse, 0, len(t.Days))
	for _, td := range t.Days {
		days = append(days, mapTemplateDayToResponse(td))
	}
	return schedule.TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedBy:   t.CreatedBy,
		Days:        days,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func mapTemplateDayToResponse(td schedule.TemplateDay) schedule.TemplateDayResponse {
	return schedule.TemplateDayResponse{
		ID:             td.ID,
		TemplateID:     td.TemplateID,
		DayOfWeek:      td.DayOfWeek,
		DayName:        dayName(td.DayOfWeek),
		IsWorkingDay:   td.IsWorkingDay,
		StartTime:      fmtClock(td.StartTime),
		EndTime:        fmtClock(td.EndTime),
		BreakStartTime: fmtClock(td.BreakStartTime),
		BreakEndTime:   fmtClock(td.BreakEndTime),
		Notes:          td.Notes,
		CreatedAt:      td.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      td.UpdatedAt.Format(time.RFC3339),
	}
}

func mapWeeklyAssignmentToResponse(wa schedule.WeeklyAssignment) schedule.WeeklyAssignmentResponse {
	return schedule.WeeklyAssignmentResponse{
		ID:         wa.ID,
		EmployeeID: wa.EmployeeID,
		TemplateID: wa.TemplateID,
		Year:       wa.Year,
		WeekNumber: wa.WeekNumber,
		StartDate:  fmtDate(wa.StartDate),
		EndDate:    fmtDate(wa.EndDate),
		Notes:      wa.Notes,
		CreatedBy:  wa.CreatedBy,
		CreatedAt:  wa.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  wa.UpdatedAt.Format(time.RFC3339),
	}
}

func mapDailyExceptionToResponse(de schedule.DailyException) schedule.DailyExceptionResponse {
	return schedule.DailyExceptionResponse{
		ID:            de.ID,
		EmployeeID:    de.EmployeeID,
		Date:          fmtDate(de.Date),
		ExceptionType: string(de.ExceptionType),
		IsWorkingDay:  de.IsWorkingDay,
		StartTime:     fmtClock(de.StartTime),
		EndTime:       fmtClock(de.EndTime),
		Notes:         de.Notes,
		ApprovedBy:    de.ApprovedBy,
		ApprovedAt:    fmtTimestamp(de.ApprovedAt),
		CreatedBy:     de.CreatedBy,
		CreatedAt:     de.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     de.UpdatedAt.Format(time.RFC3339),
	}
}

func mapBreakToResponse(b schedule.Break) schedule.BreakResponse {
	return schedule.BreakResponse{
		ID:                 b.ID,
		ParentType:         string(b.Parent.Kind),
		ParentID:           b.Parent.ID,
		Name:               b.Name,
		StartTime:          b.StartTime.Format("15:04"),
		EndTime:            b.EndTime.Format("15:04"),
		BreakType:          string(b.BreakType),
		IsPaid:             b.IsPaid,
		IsRequired:         b.IsRequired,
		DurationMinutes:    BreakDuration(b),
		IsFlexible:         b.IsFlexible,
		FlexibilityMinutes: b.FlexibilityMinutes,
		SortOrder:          b.SortOrder,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}

func mapEffectiveScheduleToResponse(es schedule.EffectiveSchedule) schedule.EffectiveScheduleResponse {
	return schedule.EffectiveScheduleResponse{
		EmployeeID:     es.EmployeeID,
		Date:           fmtDate(es.Date),
		Type:           string(es.Type),
		SourceID:       es.SourceID,
		IsWorkingDay:   es.IsWorkingDay,
		StartTime:      fmtClock(es.StartTime),
		EndTime:        fmtClock(es.EndTime),
		BreakStartTime: fmtClock(es.BreakStartTime),
		BreakEndTime:   fmtClock(es.BreakEndTime),
		Notes:          es.Notes,
	}
}
