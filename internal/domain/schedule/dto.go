package schedule

import (
	"strings"
	"time"

	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/validator"
)

// ==================== FIXED SCHEDULE ====================

type CreateFixedScheduleRequest struct {
	EmployeeID     string  `json:"employee_id"`
	DayOfWeek      *int    `json:"day_of_week"`
	IsWorkingDay   *bool   `json:"is_working_day"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	BreakStartTime *string `json:"break_start_time"`
	BreakEndTime   *string `json:"break_end_time"`
	Notes          string  `json:"notes"`
}

func (r *CreateFixedScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.DayOfWeek == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week is required",
		})
	} else if !validator.IsValidDayOfWeek(*r.DayOfWeek) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
		})
	}
	if r.IsWorkingDay == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "is_working_day",
			Message: "is_working_day is required",
		})
	}

	working := r.IsWorkingDay != nil && *r.IsWorkingDay
	errs = append(errs, validateWorkWindow(working, r.StartTime, r.EndTime)...)
	errs = append(errs, validateOptionalWindow("break_start_time", r.BreakStartTime, "break_end_time", r.BreakEndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateFixedScheduleRequest struct {
	ID             string  `json:"-"`
	IsWorkingDay   *bool   `json:"is_working_day"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	BreakStartTime *string `json:"break_start_time"`
	BreakEndTime   *string `json:"break_end_time"`
	Notes          *string `json:"notes"`
}

func (r *UpdateFixedScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.IsWorkingDay == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "is_working_day",
			Message: "is_working_day is required",
		})
	}

	working := r.IsWorkingDay != nil && *r.IsWorkingDay
	errs = append(errs, validateWorkWindow(working, r.StartTime, r.EndTime)...)
	errs = append(errs, validateOptionalWindow("break_start_time", r.BreakStartTime, "break_end_time", r.BreakEndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FixedScheduleResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	DayOfWeek      int     `json:"day_of_week"`
	DayName        string  `json:"day_name"`
	IsWorkingDay   bool    `json:"is_working_day"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	BreakStartTime *string `json:"break_start_time,omitempty"`
	BreakEndTime   *string `json:"break_end_time,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// ==================== TEMPLATE ====================

type CreateTemplateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.CreatedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "created_by",
			Message: "created_by is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTemplateRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TemplateResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	IsActive    bool                  `json:"is_active"`
	CreatedBy   string                `json:"created_by"`
	Days        []TemplateDayResponse `json:"days,omitempty"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

// ==================== TEMPLATE DAY ====================

type CreateTemplateDayRequest struct {
	TemplateID     string  `json:"template_id"`
	DayOfWeek      *int    `json:"day_of_week"`
	IsWorkingDay   *bool   `json:"is_working_day"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	BreakStartTime *string `json:"break_start_time"`
	BreakEndTime   *string `json:"break_end_time"`
	Notes          string  `json:"notes"`
}

func (r *CreateTemplateDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TemplateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "template_id",
			Message: "template_id is required",
		})
	}
	if r.DayOfWeek == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week is required",
		})
	} else if !validator.IsValidDayOfWeek(*r.DayOfWeek) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
		})
	}
	if r.IsWorkingDay == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "is_working_day",
			Message: "is_working_day is required",
		})
	}

	working := r.IsWorkingDay != nil && *r.IsWorkingDay
	errs = append(errs, validateWorkWindow(working, r.StartTime, r.EndTime)...)
	errs = append(errs, validateOptionalWindow("break_start_time", r.BreakStartTime, "break_end_time", r.BreakEndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTemplateDayRequest struct {
	ID             string  `json:"-"`
	IsWorkingDay   *bool   `json:"is_working_day"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	BreakStartTime *string `json:"break_start_time"`
	BreakEndTime   *string `json:"break_end_time"`
	Notes          *string `json:"notes"`
}

func (r *UpdateTemplateDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.IsWorkingDay == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "is_working_day",
			Message: "is_working_day is required",
		})
	}

	working := r.IsWorkingDay != nil && *r.IsWorkingDay
	errs = append(errs, validateWorkWindow(working, r.StartTime, r.EndTime)...)
	errs = append(errs, validateOptionalWindow("break_start_time", r.BreakStartTime, "break_end_time", r.BreakEndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TemplateDayResponse struct {
	ID             string  `json:"id"`
	TemplateID     string  `json:"template_id"`
	DayOfWeek      int     `json:"day_of_week"`
	DayName        string  `json:"day_name"`
	IsWorkingDay   bool    `json:"is_working_day"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	BreakStartTime *string `json:"break_start_time,omitempty"`
	BreakEndTime   *string `json:"break_end_time,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// ==================== WEEKLY ASSIGNMENT ====================

type CreateWeeklyAssignmentRequest struct {
	EmployeeID string  `json:"employee_id"`
	Year       int     `json:"year"`
	WeekNumber int     `json:"week_number"`
	TemplateID *string `json:"template_id"`
	Notes      string  `json:"notes"`
	CreatedBy  string  `json:"created_by"`
}

func (r *CreateWeeklyAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if r.WeekNumber < 1 || r.WeekNumber > 53 {
		errs = append(errs, validator.ValidationError{
			Field:   "week_number",
			Message: "week_number must be between 1 and 53",
		})
	}
	if r.TemplateID != nil && validator.IsEmpty(*r.TemplateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "template_id",
			Message: "template_id must not be empty when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WeeklyAssignmentResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	TemplateID *string `json:"template_id"`
	Year       int     `json:"year"`
	WeekNumber int     `json:"week_number"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Notes      string  `json:"notes,omitempty"`
	CreatedBy  string  `json:"created_by"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// ==================== DAILY EXCEPTION ====================

type CreateDailyExceptionRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	ExceptionType string  `json:"exception_type"`
	IsWorkingDay  *bool   `json:"is_working_day"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Notes         string  `json:"notes"`
	CreatedBy     string  `json:"created_by"`
}

func (r *CreateDailyExceptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}
	if !validator.IsInSlice(r.ExceptionType, ExceptionTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "exception_type",
			Message: "exception_type must be one of: " + strings.Join(ExceptionTypeValues, ", "),
		})
	}

	if ExceptionType(r.ExceptionType).RequiresTimes() {
		errs = append(errs, validateWorkWindow(true, r.StartTime, r.EndTime)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDailyExceptionRequest struct {
	ID            string  `json:"-"`
	ExceptionType *string `json:"exception_type"`
	IsWorkingDay  *bool   `json:"is_working_day"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Notes         *string `json:"notes"`
}

func (r *UpdateDailyExceptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.ExceptionType != nil && !validator.IsInSlice(*r.ExceptionType, ExceptionTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "exception_type",
			Message: "exception_type must be one of: " + strings.Join(ExceptionTypeValues, ", "),
		})
	}
	errs = append(errs, validateOptionalWindow("start_time", r.StartTime, "end_time", r.EndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyExceptionResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	ExceptionType string  `json:"exception_type"`
	IsWorkingDay  bool    `json:"is_working_day"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Notes         string  `json:"notes,omitempty"`
	CreatedBy     string  `json:"created_by"`
	ApprovedBy    *string `json:"approved_by"`
	ApprovedAt    *string `json:"approved_at"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ==================== BREAK ====================

type CreateBreakRequest struct {
	ParentType         string `json:"parent_type"`
	ParentID           string `json:"parent_id"`
	Name               string `json:"name"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	BreakType          string `json:"break_type"`
	IsPaid             *bool  `json:"is_paid"`
	IsRequired         *bool  `json:"is_required"`
	DurationMinutes    *int   `json:"duration_minutes"`
	IsFlexible         *bool  `json:"is_flexible"`
	FlexibilityMinutes *int   `json:"flexibility_minutes"`
	SortOrder          *int   `json:"sort_order"`
}

func (r *CreateBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.ParentType, ParentKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "parent_type",
			Message: "parent_type must be one of: " + strings.Join(ParentKindValues, ", "),
		})
	}
	if validator.IsEmpty(r.ParentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "parent_id",
			Message: "parent_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsInSlice(r.BreakType, BreakTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_type",
			Message: "break_type must be one of: " + strings.Join(BreakTypeValues, ", "),
		})
	}

	start, startOK := validator.IsValidClockTime(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM time",
		})
	}
	end, endOK := validator.IsValidClockTime(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM time",
		})
	}
	if startOK && endOK && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be before end_time",
		})
	}
	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_minutes",
			Message: "duration_minutes must be positive",
		})
	}
	if r.FlexibilityMinutes != nil && *r.FlexibilityMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "flexibility_minutes",
			Message: "flexibility_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBreakRequest struct {
	ID                 string  `json:"-"`
	Name               *string `json:"name"`
	StartTime          *string `json:"start_time"`
	EndTime            *string `json:"end_time"`
	BreakType          *string `json:"break_type"`
	IsPaid             *bool   `json:"is_paid"`
	IsRequired         *bool   `json:"is_required"`
	DurationMinutes    *int    `json:"duration_minutes"`
	IsFlexible         *bool   `json:"is_flexible"`
	FlexibilityMinutes *int    `json:"flexibility_minutes"`
	SortOrder          *int    `json:"sort_order"`
}

func (r *UpdateBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.BreakType != nil && !validator.IsInSlice(*r.BreakType, BreakTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_type",
			Message: "break_type must be one of: " + strings.Join(BreakTypeValues, ", "),
		})
	}
	errs = append(errs, validateOptionalWindow("start_time", r.StartTime, "end_time", r.EndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BreakResponse struct {
	ID                 string `json:"id"`
	ParentType         string `json:"parent_type"`
	ParentID           string `json:"parent_id"`
	Name               string `json:"name"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	BreakType          string `json:"break_type"`
	IsPaid             bool   `json:"is_paid"`
	IsRequired         bool   `json:"is_required"`
	DurationMinutes    int    `json:"duration_minutes"`
	IsFlexible         bool   `json:"is_flexible"`
	FlexibilityMinutes int    `json:"flexibility_minutes"`
	SortOrder          int    `json:"sort_order"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// ==================== RESOLUTION ====================

type EffectiveScheduleResponse struct {
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	Type           string  `json:"type"`
	SourceID       string  `json:"source_id,omitempty"`
	IsWorkingDay   bool    `json:"is_working_day"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	BreakStartTime *string `json:"break_start_time"`
	BreakEndTime   *string `json:"break_end_time"`
	Notes          string  `json:"notes,omitempty"`
}

type EffectiveBreaksResponse struct {
	EmployeeID    string           `json:"employee_id"`
	Date          string           `json:"date"`
	Source        string           `json:"source"`
	SourceID      string           `json:"source_id,omitempty"`
	IsWorkingDay  bool             `json:"is_working_day"`
	WorkStartTime *string          `json:"work_start_time"`
	WorkEndTime   *string          `json:"work_end_time"`
	Breaks        []BreakResponse  `json:"breaks"`
	WorkTime      *WorkTimeSummary `json:"work_time,omitempty"`
}

// ==================== BULK PLANNING ====================

type PlanifyYearRequest struct {
	EmployeeID        string `json:"employee_id"`
	Year              int    `json:"year"`
	TemplateID        string `json:"template_id"`
	CreatedBy         string `json:"created_by"`
	SkipExistingWeeks bool   `json:"skip_existing_weeks"`
	SpecificWeeks     []int  `json:"specific_weeks,omitempty"`
	ExcludeWeeks      []int  `json:"exclude_weeks,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

func (r *PlanifyYearRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.TemplateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "template_id",
			Message: "template_id is required",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	for _, w := range r.SpecificWeeks {
		if w < 1 || w > 53 {
			errs = append(errs, validator.ValidationError{
				Field:   "specific_weeks",
				Message: "week numbers must be between 1 and 53",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PlanifySummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}

type PlanifyWeekResult struct {
	WeekNumber int    `json:"week_number"`
	Action     string `json:"action"` // created, updated, skipped
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type PlanifyWeekError struct {
	WeekNumber int    `json:"week_number"`
	Message    string `json:"message"`
}

type PlanifyYearResult struct {
	Summary PlanifySummary      `json:"summary"`
	Results []PlanifyWeekResult `json:"results"`
	Errors  []PlanifyWeekError  `json:"errors"`
}

type ApplyTemplateBreaksRequest struct {
	TemplateDayID string   `json:"template_day_id"`
	ScheduleIDs   []string `json:"schedule_ids"`
	CreatedBy     string   `json:"created_by"`
}

func (r *ApplyTemplateBreaksRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TemplateDayID) {
		errs = append(errs, validator.ValidationError{
			Field:   "template_day_id",
			Message: "template_day_id is required",
		})
	}
	if len(r.ScheduleIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_ids",
			Message: "schedule_ids must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplyBreakFailure struct {
	ScheduleID string `json:"schedule_id"`
	Message    string `json:"message"`
}

type ApplyTemplateBreaksResult struct {
	Applied []string            `json:"applied"`
	Failed  []ApplyBreakFailure `json:"failed"`
}

// ==================== CONFLICT VALIDATION ====================

type BreakConflictCode string

const (
	ConflictOutsideWorkHours BreakConflictCode = "outside_work_hours"
	ConflictInvalidTimeRange BreakConflictCode = "invalid_time_range"
	ConflictBreakOverlap     BreakConflictCode = "break_overlap"
)

type BreakConflict struct {
	Code       BreakConflictCode `json:"code"`
	Message    string            `json:"message"`
	BreakIndex int               `json:"break_index"`
	BreakName  string            `json:"break_name"`
	OtherIndex *int              `json:"other_index,omitempty"`
	OtherName  *string           `json:"other_name,omitempty"`
}

type BreakValidationResult struct {
	IsValid bool            `json:"is_valid"`
	Errors  []BreakConflict `json:"errors"`
}

type ScheduleConflict struct {
	Date    string            `json:"date"`
	Source  ScheduleSource    `json:"source"`
	Code    BreakConflictCode `json:"code"`
	Message string            `json:"message"`
}

type ConflictReport struct {
	HasConflicts  bool               `json:"has_conflicts"`
	ConflictCount int                `json:"conflict_count"`
	Conflicts     []ScheduleConflict `json:"conflicts"`
}

type ValidateConflictsRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *ValidateConflictsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ==================== REPORTS ====================

type SchedulingStats struct {
	EmployeeID               string  `json:"employee_id"`
	Year                     int     `json:"year"`
	TotalWeeks               int     `json:"total_weeks"`
	ScheduledWeeks           int     `json:"scheduled_weeks"`
	UnscheduledWeeks         int     `json:"unscheduled_weeks"`
	ScheduledWeeksPercentage float64 `json:"scheduled_weeks_percentage"`
	DailyExceptions          int     `json:"daily_exceptions"`
	TemplatesUsed            int     `json:"templates_used"`
}

type BreakReportDay struct {
	Date       string           `json:"date"`
	Source     ScheduleSource   `json:"source"`
	BreakCount int              `json:"break_count"`
	WorkTime   *WorkTimeSummary `json:"work_time,omitempty"`
}

type BreakReport struct {
	EmployeeID                string           `json:"employee_id"`
	StartDate                 string           `json:"start_date"`
	EndDate                   string           `json:"end_date"`
	TotalDays                 int              `json:"total_days"`
	WorkingDays               int              `json:"working_days"`
	TotalWorkMinutes          int              `json:"total_work_minutes"`
	TotalBreakMinutes         int              `json:"total_break_minutes"`
	TotalPaidBreakMinutes     int              `json:"total_paid_break_minutes"`
	TotalUnpaidBreakMinutes   int              `json:"total_unpaid_break_minutes"`
	TotalEffectiveMinutes     int              `json:"total_effective_minutes"`
	AverageBreakMinutesPerDay float64          `json:"average_break_minutes_per_day"`
	Days                      []BreakReportDay `json:"days"`
}

// ==================== SHARED VALIDATION HELPERS ====================

// validateWorkWindow checks the start/end pair of a working day: both
// required when working, start strictly before end.
func validateWorkWindow(working bool, startTime, endTime *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !working {
		return nil
	}
	var start, end time.Time
	startOK, endOK := false, false

	if startTime == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required for working days",
		})
	} else if start, startOK = validator.IsValidClockTime(*startTime); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM time",
		})
	}
	if endTime == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required for working days",
		})
	} else if end, endOK = validator.IsValidClockTime(*endTime); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM time",
		})
	}
	if startOK && endOK && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be before end_time",
		})
	}
	return errs
}

// validateOptionalWindow checks a pair of optional HH:MM fields that must
// either both be absent or form a valid window.
func validateOptionalWindow(startField string, startTime *string, endField string, endTime *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if startTime == nil && endTime == nil {
		return nil
	}
	if startTime == nil || endTime == nil {
		errs = append(errs, validator.ValidationError{
			Field:   startField,
			Message: startField + " and " + endField + " must be provided together",
		})
		return errs
	}

	start, startOK := validator.IsValidClockTime(*startTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   startField,
			Message: startField + " must be a valid HH:MM time",
		})
	}
	end, endOK := validator.IsValidClockTime(*endTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   endField,
			Message: endField + " must be a valid HH:MM time",
		})
	}
	if startOK && endOK && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   startField,
			Message: startField + " must be before " + endField,
		})
	}
	return errs
}
