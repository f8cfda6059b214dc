package response

import (
	"errors"
	"net/http"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/attendance"
	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/vacation"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/calendar"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Schedule domain errors
	case errors.Is(err, schedule.ErrFixedScheduleNotFound):
		NotFound(w, "Fixed schedule not found")
	case errors.Is(err, schedule.ErrFixedScheduleExists):
		Conflict(w, "Fixed schedule for this employee and day already exists")
	case errors.Is(err, schedule.ErrTemplateNotFound):
		NotFound(w, "Schedule template not found")
	case errors.Is(err, schedule.ErrTemplateNameExists):
		Conflict(w, "Schedule template with this name already exists")
	case errors.Is(err, schedule.ErrTemplateInUse):
		Conflict(w, "Schedule template is referenced by weekly assignments")
	case errors.Is(err, schedule.ErrTemplateInactive):
		BadRequest(w, "Schedule template is inactive", nil)
	case errors.Is(err, schedule.ErrTemplateDayNotFound):
		NotFound(w, "Template day not found")
	case errors.Is(err, schedule.ErrTemplateDayExists):
		Conflict(w, "Template day for this day of week already exists")
	case errors.Is(err, schedule.ErrWeeklyAssignmentNotFound):
		NotFound(w, "Weekly schedule assignment not found")
	case errors.Is(err, schedule.ErrWeeklyAssignmentExists):
		Conflict(w, "Weekly schedule assignment for this week already exists")
	case errors.Is(err, schedule.ErrDailyExceptionNotFound):
		NotFound(w, "Daily exception not found")
	case errors.Is(err, schedule.ErrDailyExceptionExists):
		Conflict(w, "Daily exception for this date already exists")
	case errors.Is(err, schedule.ErrAlreadyApproved):
		Conflict(w, "Daily exception is already approved")
	case errors.Is(err, schedule.ErrBreakNotFound):
		NotFound(w, "Break not found")
	case errors.Is(err, schedule.ErrBreakParentNotFound):
		NotFound(w, "Break parent not found")
	case errors.Is(err, schedule.ErrEmployeeIDRequired):
		BadRequest(w, "Employee ID is required", nil)
	case errors.Is(err, schedule.ErrInvalidDateFormat):
		BadRequest(w, "Invalid date format, use YYYY-MM-DD", nil)
	case errors.Is(err, schedule.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, calendar.ErrInvalidWeekNumber):
		BadRequest(w, "Invalid week number for this year", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee already checked in for this date")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Employee has not checked in for this date")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Employee already checked out for this date")
	case errors.Is(err, attendance.ErrNotWorkingDay):
		Conflict(w, "No working schedule for this date")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrAlreadyProcessed):
		Conflict(w, "Vacation request already processed")
	case errors.Is(err, vacation.ErrOverlappingDates):
		Conflict(w, "Vacation request overlaps an existing request")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
