package schedule

import "errors"

var (
	// Fixed Schedule Errors
	ErrFixedScheduleNotFound = errors.New("fixed schedule not found")
	ErrFixedScheduleExists   = errors.New("fixed schedule for this employee and day already exists")

	// Template Errors
	ErrTemplateNotFound   = errors.New("schedule template not found")
	ErrTemplateNameExists = errors.New("schedule template with this name already exists")
	ErrTemplateInUse      = errors.New("schedule template is referenced by weekly assignments")
	ErrTemplateInactive   = errors.New("schedule template is inactive")

	// Template Day Errors
	ErrTemplateDayNotFound = errors.New("template day not found")
	ErrTemplateDayExists   = errors.New("template day for this day of week already exists")

	// Weekly Assignment Errors
	ErrWeeklyAssignmentNotFound = errors.New("weekly schedule assignment not found")
	ErrWeeklyAssignmentExists   = errors.New("weekly schedule assignment for this week already exists")

	// Daily Exception Errors
	ErrDailyExceptionNotFound = errors.New("daily exception not found")
	ErrDailyExceptionExists   = errors.New("daily exception for this date already exists")
	ErrAlreadyApproved        = errors.New("daily exception is already approved")

	// Break Errors
	ErrBreakNotFound       = errors.New("break not found")
	ErrBreakParentNotFound = errors.New("break parent not found")

	// Validation Errors
	ErrEmployeeIDRequired = errors.New("employee ID is required")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
)
