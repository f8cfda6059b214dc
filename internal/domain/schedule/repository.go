package schedule

import (
	"context"
	"time"
)

type FixedScheduleRepository interface {
	Create(ctx context.Context, fs FixedSchedule) (FixedSchedule, error)
	GetByID(ctx context.Context, id string) (FixedSchedule, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]FixedSchedule, error)
	GetByEmployeeAndDay(ctx context.Context, employeeID string, dayOfWeek int) (FixedSchedule, error)
	Update(ctx context.Context, fs FixedSchedule) (FixedSchedule, error)
	Delete(ctx context.Context, id string) error
}

type TemplateRepository interface {
	Create(ctx context.Context, t Template) (Template, error)
	// GetByID loads the template with its days.
	GetByID(ctx context.Context, id string) (Template, error)
	List(ctx context.Context, activeOnly bool) ([]Template, error)
	Update(ctx context.Context, t Template) (Template, error)
	Delete(ctx context.Context, id string) error
}

type TemplateDayRepository interface {
	Create(ctx context.Context, td TemplateDay) (TemplateDay, error)
	GetByID(ctx context.Context, id string) (TemplateDay, error)
	GetByTemplate(ctx context.Context, templateID string) ([]TemplateDay, error)
	GetByTemplateAndDay(ctx context.Context, templateID string, dayOfWeek int) (TemplateDay, error)
	Update(ctx context.Context, td TemplateDay) (TemplateDay, error)
	Delete(ctx context.Context, id string) error
}

type WeeklyAssignmentRepository interface {
	Create(ctx context.Context, wa WeeklyAssignment) (WeeklyAssignment, error)
	GetByID(ctx context.Context, id string) (WeeklyAssignment, error)
	GetByEmployeeWeek(ctx context.Context, employeeID string, year, weekNumber int) (WeeklyAssignment, error)
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]WeeklyAssignment, error)
	Update(ctx context.Context, wa WeeklyAssignment) (WeeklyAssignment, error)
	Delete(ctx context.Context, id string) error
	CountByEmployeeYear(ctx context.Context, employeeID string, year int) (int, error)
	CountByTemplate(ctx context.Context, templateID string) (int, error)
	DistinctTemplates(ctx context.Context, employeeID string, year int) ([]string, error)
}

type DailyExceptionRepository interface {
	Create(ctx context.Context, de DailyException) (DailyException, error)
	GetByID(ctx context.Context, id string) (DailyException, error)
	// GetByEmployeeAndDate only returns exceptions whose soft-delete flag
	// is not set.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (DailyException, error)
	GetByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]DailyException, error)
	CountByEmployeeYear(ctx context.Context, employeeID string, year int) (int, error)
	Update(ctx context.Context, de DailyException) (DailyException, error)
	Approve(ctx context.Context, id, approvedBy string) (DailyException, error)
	SoftDelete(ctx context.Context, id string) error
}

type BreakRepository interface {
	Create(ctx context.Context, b Break) (Break, error)
	GetByID(ctx context.Context, id string) (Break, error)
	// GetByParent returns the parent's breaks ordered by sort order, then
	// start time.
	GetByParent(ctx context.Context, parent ParentRef) ([]Break, error)
	// ReplaceForParent swaps the parent's whole break set atomically; a
	// concurrent reader never observes the set half-replaced.
	ReplaceForParent(ctx context.Context, parent ParentRef, breaks []Break) ([]Break, error)
	Update(ctx context.Context, b Break) (Break, error)
	Delete(ctx context.Context, id string) error
}
