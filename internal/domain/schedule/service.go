package schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	// Fixed Schedule
	CreateFixedSchedule(ctx context.Context, req CreateFixedScheduleRequest) (FixedScheduleResponse, error)
	GetFixedSchedules(ctx context.Context, employeeID string) ([]FixedScheduleResponse, error)
	UpdateFixedSchedule(ctx context.Context, req UpdateFixedScheduleRequest) (FixedScheduleResponse, error)
	DeleteFixedSchedule(ctx context.Context, id string) error

	// Template
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (TemplateResponse, error)
	GetTemplate(ctx context.Context, id string) (TemplateResponse, error)
	ListTemplates(ctx context.Context, activeOnly bool) ([]TemplateResponse, error)
	UpdateTemplate(ctx context.Context, req UpdateTemplateRequest) (TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id string) error

	// Template Day
	CreateTemplateDay(ctx context.Context, req CreateTemplateDayRequest) (TemplateDayResponse, error)
	UpdateTemplateDay(ctx context.Context, req UpdateTemplateDayRequest) (TemplateDayResponse, error)
	DeleteTemplateDay(ctx context.Context, id string) error

	// Weekly Assignment
	CreateWeeklyAssignment(ctx context.Context, req CreateWeeklyAssignmentRequest) (WeeklyAssignmentResponse, error)
	GetWeeklyAssignments(ctx context.Context, employeeID string, year int) ([]WeeklyAssignmentResponse, error)
	DeleteWeeklyAssignment(ctx context.Context, id string) error

	// Daily Exception
	CreateDailyException(ctx context.Context, req CreateDailyExceptionRequest) (DailyExceptionResponse, error)
	GetDailyExceptions(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]DailyExceptionResponse, error)
	UpdateDailyException(ctx context.Context, req UpdateDailyExceptionRequest) (DailyExceptionResponse, error)
	ApproveDailyException(ctx context.Context, id, approvedBy string) (DailyExceptionResponse, error)
	DeleteDailyException(ctx context.Context, id string) error

	// Break
	CreateBreak(ctx context.Context, req CreateBreakRequest) (BreakResponse, error)
	GetBreaksForParent(ctx context.Context, parent ParentRef) ([]BreakResponse, error)
	UpdateBreak(ctx context.Context, req UpdateBreakRequest) (BreakResponse, error)
	DeleteBreak(ctx context.Context, id string) error

	// Resolution
	ResolveEffectiveSchedule(ctx context.Context, employeeID string, date time.Time) (EffectiveSchedule, error)
	ResolveEffectiveRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]EffectiveSchedule, error)
	GetEffectiveBreaks(ctx context.Context, employeeID string, date time.Time) (EffectiveBreaks, error)

	// Bulk planning
	PlanifyYearWithTemplate(ctx context.Context, req PlanifyYearRequest) (PlanifyYearResult, error)
	ApplyTemplateBreaksToSchedules(ctx context.Context, req ApplyTemplateBreaksRequest) (ApplyTemplateBreaksResult, error)

	// Conflict validation
	ValidateParentBreaks(ctx context.Context, parent ParentRef) (BreakValidationResult, error)
	ValidateScheduleConflicts(ctx context.Context, employeeID string, startDate, endDate time.Time) (ConflictReport, error)

	// Reports
	GetSchedulingStats(ctx context.Context, employeeID string, year int) (SchedulingStats, error)
	GenerateBreakReport(ctx context.Context, employeeID string, startDate, endDate time.Time) (BreakReport, error)
}
