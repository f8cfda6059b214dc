package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/database"
)

type scheduleServiceImpl struct {
	tx              database.TxRunner
	fixedRepo       schedule.FixedScheduleRepository
	templateRepo    schedule.TemplateRepository
	templateDayRepo schedule.TemplateDayRepository
	assignmentRepo  schedule.WeeklyAssignmentRepository
	exceptionRepo   schedule.DailyExceptionRepository
	breakRepo       schedule.BreakRepository
}

func NewScheduleService(
	tx database.TxRunner,
	fixedRepo schedule.FixedScheduleRepository,
	templateRepo schedule.TemplateRepository,
	templateDayRepo schedule.TemplateDayRepository,
	assignmentRepo schedule.WeeklyAssignmentRepository,
	exceptionRepo schedule.DailyExceptionRepository,
	breakRepo schedule.BreakRepository,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		tx:              tx,
		fixedRepo:       fixedRepo,
		templateRepo:    templateRepo,
		templateDayRepo: templateDayRepo,
		assignmentRepo:  assignmentRepo,
		exceptionRepo:   exceptionRepo,
		breakRepo:       breakRepo,
	}
}

// ==================== FIXED SCHEDULE ====================

// CreateFixedSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateFixedSchedule(ctx context.Context, req schedule.CreateFixedScheduleRequest) (schedule.FixedScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.FixedScheduleResponse{}, err
	}

	fs := schedule.FixedSchedule{
		EmployeeID:     req.EmployeeID,
		DayOfWeek:      *req.DayOfWeek,
		IsWorkingDay:   *req.IsWorkingDay,
		StartTime:      parseClock(req.StartTime),
		EndTime:        parseClock(req.EndTime),
		BreakStartTime: parseClock(req.BreakStartTime),
		BreakEndTime:   parseClock(req.BreakEndTime),
		Notes:          req.Notes,
	}

	created, err := s.fixedRepo.Create(ctx, fs)
	if err != nil {
		if err == schedule.ErrFixedScheduleExists {
			return schedule.FixedScheduleResponse{}, err
		}
		return schedule.FixedScheduleResponse{}, fmt.Errorf("failed to create fixed schedule: %w", err)
	}

	return mapFixedScheduleToResponse(created), nil
}

// GetFixedSchedules implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetFixedSchedules(ctx context.Context, employeeID string) ([]schedule.FixedScheduleResponse, error) {
	if employeeID == "" {
		return nil, schedule.ErrEmployeeIDRequired
	}

	schedules, err := s.fixedRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixed schedules: %w", err)
	}

	responses := make([]schedule.FixedScheduleResponse, 0, len(schedules))
	for _, fs := range schedules {
		responses = append(responses, mapFixedScheduleToResponse(fs))
	}
	return responses, nil
}

// UpdateFixedSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateFixedSchedule(ctx context.Context, req schedule.UpdateFixedScheduleRequest) (schedule.FixedScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.FixedScheduleResponse{}, err
	}

	fs, err := s.fixedRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == schedule.ErrFixedScheduleNotFound {
			return schedule.FixedScheduleResponse{}, err
		}
		return schedule.FixedScheduleResponse{}, fmt.Errorf("failed to get fixed schedule: %w", err)
	}

	fs.IsWorkingDay = *req.IsWorkingDay
	fs.StartTime = parseClock(req.StartTime)
	fs.EndTime = parseClock(req.EndTime)
	fs.BreakStartTime = parseClock(req.BreakStartTime)
	fs.BreakEndTime = parseClock(req.BreakEndTime)
	if req.Notes != nil {
		fs.Notes = *req.Notes
	}

	updated, err := s.fixedRepo.Update(ctx, fs)
	if err != nil {
		return schedule.FixedScheduleResponse{}, fmt.Errorf("failed to update fixed schedule: %w", err)
	}
	return mapFixedScheduleToResponse(updated), nil
}

// DeleteFixedSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteFixedSchedule(ctx context.Context, id string) error {
	err := s.fixedRepo.Delete(ctx, id)
	if err != nil {
		if err == schedule.ErrFixedScheduleNotFound {
			return err
		}
		return fmt.Errorf("failed to delete fixed schedule: %w", err)
	}
	return nil
}

// ==================== TEMPLATE ====================

// CreateTemplate implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateTemplate(ctx context.Context, req schedule.CreateTemplateRequest) (schedule.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.TemplateResponse{}, err
	}

	t := schedule.Template{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		CreatedBy:   req.CreatedBy,
	}

	created, err := s.templateRepo.Create(ctx, t)
	if err != nil {
		if err == schedule.ErrTemplateNameExists {
			return schedule.TemplateResponse{}, err
		}
		return schedule.TemplateResponse{}, fmt.Errorf("failed to create template: %w", err)
	}
	return mapTemplateToResponse(created), nil
}

// GetTemplate implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetTemplate(ctx context.Context, id string) (schedule.TemplateResponse, error) {
	t, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if err == schedule.ErrTemplateNotFound {
			return schedule.TemplateResponse{}, err
		}
		return schedule.TemplateResponse{}, fmt.Errorf("failed to get template: %w", err)
	}
	return mapTemplateToResponse(t), nil
}

// ListTemplates implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListTemplates(ctx context.Context, activeOnly bool) ([]schedule.TemplateResponse, error) {
	templates, err := s.templateRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	responses := make([]schedule.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, mapTemplateToResponse(t))
	}
	return responses, nil
}

// UpdateTemplate implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateTemplate(ctx context.Context, req schedule.UpdateTemplateRequest) (schedule.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.TemplateResponse{}, err
	}

	t, err := s.templateRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == schedule.ErrTemplateNotFound {
			return schedule.TemplateResponse{}, err
		}
		return schedule.TemplateResponse{}, fmt.Errorf("failed to get template: %w", err)
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	updated, err := s.templateRepo.Update(ctx, t)
	if err != nil {
		if err == schedule.ErrTemplateNameExists {
			return schedule.TemplateResponse{}, err
		}
		return schedule.TemplateResponse{}, fmt.Errorf("failed to update template: %w", err)
	}
	return mapTemplateToResponse(updated), nil
}

// DeleteTemplate implements schedule.ScheduleService. A template referenced
// by any weekly assignment cannot be deleted.
func (s *scheduleServiceImpl) DeleteTemplate(ctx context.Context, id string) error {
	count, err := s.assignmentRepo.CountByTemplate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count template assignments: %w", err)
	}
	if count > 0 {
		return schedule.ErrTemplateInUse
	}

	err = s.templateRepo.Delete(ctx, id)
	if err != nil {
		if err == schedule.ErrTemplateNotFound {
			return err
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

// ==================== TEMPLATE DAY ====================

// CreateTemplateDay implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateTemplateDay(ctx context.Context, req schedule.CreateTemplateDayRequest) (schedule.TemplateDayResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.TemplateDayResponse{}, err
	}

	if _, err := s.templateRepo.GetByID(ctx, req.TemplateID); err != nil {
		if err == schedule.ErrTemplateNotFound {
			return schedule.TemplateDayResponse{}, err
		}
		return schedule.TemplateDayResponse{}, fmt.Errorf("failed to get template: %w", err)
	}

	td := schedule.TemplateDay{
		TemplateID:     req.TemplateID,
		DayOfWeek:      *req.DayOfWeek,
		IsWorkingDay:   *req.IsWorkingDay,
		StartTime:      parseClock(req.StartTime),
		EndTime:        parseClock(req.EndTime),
		BreakStartTime: parseClock(req.BreakStartTime),
		BreakEndTime:   parseClock(req.BreakEndTime),
		Notes:          req.Notes,
	}

	created, err := s.templateDayRepo.Create(ctx, td)
	if err != nil {
		if err == schedule.ErrTemplateDayExists {
			return schedule.TemplateDayResponse{}, err
		}
		return schedule.TemplateDayResponse{}, fmt.Errorf("failed to create template day: %w", err)
	}
	return mapTemplateDayToResponse(created), nil
}

// UpdateTemplateDay implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateTemplateDay(ctx context.Context, req schedule.UpdateTemplateDayRequest) (schedule.TemplateDayResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.TemplateDayResponse{}, err
	}

	td, err := s.templateDayRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == schedule.ErrTemplateDayNotFound {
			return schedule.TemplateDayResponse{}, err
		}
		return schedule.TemplateDayResponse{}, fmt.Errorf("failed to get template day: %w", err)
	}

	td.IsWorkingDay = *req.IsWorkingDay
	td.StartTime = parseClock(req.StartTime)
	td.EndTime = parseClock(req.EndTime)
	td.BreakStartTime = parseClock(req.BreakStartTime)
	td.BreakEndTime = parseClock(req.BreakEndTime)
	if req.Notes != nil {
		td.Notes = *req.Notes
	}

	updated, err := s.templateDayRepo.Update(ctx, td)
	if err != nil {
		return schedule.TemplateDayResponse{}, fmt.Errorf("failed to update template day: %w", err)
	}
	return mapTemplateDayToResponse(updated), nil
}

// DeleteTemplateDay implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteTemplateDay(ctx context.Context, id string) error {
	err := s.templateDayRepo.Delete(ctx, id)
	if err != nil {
		if err == schedule.ErrTemplateDayNotFound {
			return err
		}
		return fmt.Errorf("failed to delete template day: %w", err)
	}
	return nil
}

// ==================== WEEKLY ASSIGNMENT ====================

// CreateWeeklyAssignment implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateWeeklyAssignment(ctx context.Context, req schedule.CreateWeeklyAssignmentRequest) (schedule.WeeklyAssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeeklyAssignmentResponse{}, err
	}

	wr, err := weekBounds(req.Year, req.WeekNumber)
	if err != nil {
		return schedule.WeeklyAssignmentResponse{}, err
	}

	if req.TemplateID != nil {
		if _, err := s.templateRepo.GetByID(ctx, *req.TemplateID); err != nil {
			if err == schedule.ErrTemplateNotFound {
				return schedule.WeeklyAssignmentResponse{}, err
			}
			return schedule.WeeklyAssignmentResponse{}, fmt.Errorf("failed to get template: %w", err)
		}
	}

	wa := schedule.WeeklyAssignment{
		EmployeeID: req.EmployeeID,
		TemplateID: req.TemplateID,
		Year:       req.Year,
		WeekNumber: req.WeekNumber,
		StartDate:  wr.StartDate,
		EndDate:    wr.EndDate,
		Notes:      req.Notes,
		CreatedBy:  req.CreatedBy,
	}

	created, err := s.assignmentRepo.Create(ctx, wa)
	if err != nil {
		if err == schedule.ErrWeeklyAssignmentExists {
			return schedule.WeeklyAssignmentResponse{}, err
		}
		return schedule.WeeklyAssignmentResponse{}, fmt.Errorf("failed to create weekly assignment: %w", err)
	}
	return mapWeeklyAssignmentToResponse(created), nil
}

// GetWeeklyAssignments implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetWeeklyAssignments(ctx context.Context, employeeID string, year int) ([]schedule.WeeklyAssignmentResponse, error) {
	if employeeID == "" {
		return nil, schedule.ErrEmployeeIDRequired
	}

	assignments, err := s.assignmentRepo.GetByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly assignments: %w", err)
	}

	responses := make([]schedule.WeeklyAssignmentResponse, 0, len(assignments))
	for _, wa := range assignments {
		responses = append(responses, mapWeeklyAssignmentToResponse(wa))
	}
	return responses, nil
}

// DeleteWeeklyAssignment implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteWeeklyAssignment(ctx context.Context, id string) error {
	err := s.assignmentRepo.Delete(ctx, id)
	if err != nil {
		if err == schedule.ErrWeeklyAssignmentNotFound {
			return err
		}
		return fmt.Errorf("failed to delete weekly assignment: %w", err)
	}
	return nil
}

// ==================== DAILY EXCEPTION ====================

// CreateDailyException implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateDailyException(ctx context.Context, req schedule.CreateDailyExceptionRequest) (schedule.DailyExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.DailyExceptionResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	excType := schedule.ExceptionType(req.ExceptionType)

	working := false
	if excType.RequiresTimes() {
		working = true
		if req.IsWorkingDay != nil {
			working = *req.IsWorkingDay
		}
	}

	de := schedule.DailyException{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		ExceptionType: excType,
		IsWorkingDay:  working,
		Notes:         req.Notes,
		CreatedBy:     req.CreatedBy,
	}
	if working {
		de.StartTime = parseClock(req.StartTime)
		de.EndTime = parseClock(req.EndTime)
	}

	created, err := s.exceptionRepo.Create(ctx, de)
	if err != nil {
		if err == schedule.ErrDailyExceptionExists {
			return schedule.DailyExceptionResponse{}, err
		}
		return schedule.DailyExceptionResponse{}, fmt.Errorf("failed to create daily exception: %w", err)
	}
	return mapDailyExceptionToResponse(created), nil
}

// GetDailyExceptions implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetDailyExceptions(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]schedule.DailyExceptionResponse, error) {
	if employeeID == "" {
		return nil, schedule.ErrEmployeeIDRequired
	}
	if startDate.After(endDate) {
		return nil, schedule.ErrInvalidDateRange
	}

	exceptions, err := s.exceptionRepo.GetByEmployeeRange(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily exceptions: %w", err)
	}

	responses := make([]schedule.DailyExceptionResponse, 0, len(exceptions))
	for _, de := range exceptions {
		responses = append(responses, mapDailyExceptionToResponse(de))
	}
	return responses, nil
}

// UpdateDailyException implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateDailyException(ctx context.Context, req schedule.UpdateDailyExceptionRequest) (schedule.DailyExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.DailyExceptionResponse{}, err
	}

	de, err := s.exceptionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == schedule.ErrDailyExceptionNotFound {
			return schedule.DailyExceptionResponse{}, err
		}
		return schedule.DailyExceptionResponse{}, fmt.Errorf("failed to get daily exception: %w", err)
	}

	if req.ExceptionType != nil {
		de.ExceptionType = schedule.ExceptionType(*req.ExceptionType)
	}
	if req.IsWorkingDay != nil {
		de.IsWorkingDay = *req.IsWorkingDay
	}
	if !de.ExceptionType.RequiresTimes() {
		de.IsWorkingDay = false
	}
	if req.StartTime != nil {
		de.StartTime = parseClock(req.StartTime)
	}
	if req.EndTime != nil {
		de.EndTime = parseClock(req.EndTime)
	}
	if !de.IsWorkingDay {
		de.StartTime = nil
		de.EndTime = nil
	}
	if req.Notes != nil {
		de.Notes = *req.Notes
	}

	updated, err := s.exceptionRepo.Update(ctx, de)
	if err != nil {
		return schedule.DailyExceptionResponse{}, fmt.Errorf("failed to update daily exception: %w", err)
	}
	return mapDailyExceptionToResponse(updated), nil
}

// ApproveDailyException implements schedule.ScheduleService. Approval is
// monotonic: an approved exception stays approved.
func (s *scheduleServiceImpl) ApproveDailyException(ctx context.Context, id, approvedBy string) (schedule.DailyExceptionResponse, error) {
	de, err := s.exceptionRepo.GetByID(ctx, id)
	if err != nil {
		if err == schedule.ErrDailyExceptionNotFound {
			return schedule.DailyExceptionResponse{}, err
		}
		return schedule.DailyExceptionResponse{}, fmt.Errorf("failed to get daily exception: %w", err)
	}
	if de.IsApproved() {
		return schedule.DailyExceptionResponse{}, schedule.ErrAlreadyApproved
	}

	approved, err := s.exceptionRepo.Approve(ctx, id, approvedBy)
	if err != nil {
		return schedule.DailyExceptionResponse{}, fmt.Errorf("failed to approve daily exception: %w", err)
	}
	return mapDailyExceptionToResponse(approved), nil
}

// DeleteDailyException implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteDailyException(ctx context.Context, id string) error {
	err := s.exceptionRepo.SoftDelete(ctx, id)
	if err != nil {
		if err == schedule.ErrDailyExceptionNotFound {
			return err
		}
		return fmt.Errorf("failed to delete daily exception: %w", err)
	}
	return nil
}

// ==================== BREAK ====================

// CreateBreak implements schedule.ScheduleService. The candidate break is
// validated against the parent's work window and its sibling breaks before
// being persisted.
func (s *scheduleServiceImpl) CreateBreak(ctx context.Context, req schedule.CreateBreakRequest) (schedule.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BreakResponse{}, err
	}

	parent := schedule.ParentRef{Kind: schedule.ParentKind(req.ParentType), ID: req.ParentID}
	workStart, workEnd, err := s.loadParentWindow(ctx, parent)
	if err != nil {
		return schedule.BreakResponse{}, err
	}

	start, _ := time.Parse("15:04", req.StartTime)
	end, _ := time.Parse("15:04", req.EndTime)

	b := schedule.Break{
		Parent:          parent,
		Name:            req.Name,
		StartTime:       start,
		EndTime:         end,
		BreakType:       schedule.BreakType(req.BreakType),
		DurationMinutes: req.DurationMinutes,
	}
	if req.IsPaid != nil {
		b.IsPaid = *req.IsPaid
	}
	if req.IsRequired != nil {
		b.IsRequired = *req.IsRequired
	}
	if req.IsFlexible != nil {
		b.IsFlexible = *req.IsFlexible
	}
	if req.FlexibilityMinutes != nil {
		b.FlexibilityMinutes = *req.FlexibilityMinutes
	}
	if req.SortOrder != nil {
		b.SortOrder = *req.SortOrder
	}

	siblings, err := s.breakRepo.GetByParent(ctx, parent)
	if err != nil {
		return schedule.BreakResponse{}, fmt.Errorf("failed to get sibling breaks: %w", err)
	}
	result := ValidateBreaksForParent(append(siblings, b), workStart, workEnd)
	if !result.IsValid {
		return schedule.BreakResponse{}, breakConflictsToValidationErrors(result)
	}

	created, err := s.breakRepo.Create(ctx, b)
	if err != nil {
		return schedule.BreakResponse{}, fmt.Errorf("failed to create break: %w", err)
	}
	return mapBreakToResponse(created), nil
}

// GetBreaksForParent implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetBreaksForParent(ctx context.Context, parent schedule.ParentRef) ([]schedule.BreakResponse, error) {
	breaks, err := s.breakRepo.GetByParent(ctx, parent)
	if err != nil {
		return nil, fmt.Errorf("failed to get breaks: %w", err)
	}

	responses := make([]schedule.BreakResponse, 0, len(breaks))
	for _, b := range breaks {
		responses = append(responses, mapBreakToResponse(b))
	}
	return responses, nil
}

// UpdateBreak implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateBreak(ctx context.Context, req schedule.UpdateBreakRequest) (schedule.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BreakResponse{}, err
	}

	b, err := s.breakRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == schedule.ErrBreakNotFound {
			return schedule.BreakResponse{}, err
		}
		return schedule.BreakResponse{}, fmt.Errorf("failed to get break: %w", err)
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.StartTime != nil {
		if t := parseClock(req.StartTime); t != nil {
			b.StartTime = *t
		}
	}
	if req.EndTime != nil {
		if t := parseClock(req.EndTime); t != nil {
			b.EndTime = *t
		}
	}
	if req.BreakType != nil {
		b.BreakType = schedule.BreakType(*req.BreakType)
	}
	if req.IsPaid != nil {
		b.IsPaid = *req.IsPaid
	}
	if req.IsRequired != nil {
		b.IsRequired = *req.IsRequired
	}
	if req.DurationMinutes != nil {
		b.DurationMinutes = req.DurationMinutes
	}
	if req.IsFlexible != nil {
		b.IsFlexible = *req.IsFlexible
	}
	if req.FlexibilityMinutes != nil {
		b.FlexibilityMinutes = *req.FlexibilityMinutes
	}
	if req.SortOrder != nil {
		b.SortOrder = *req.SortOrder
	}

	workStart, workEnd, err := s.loadParentWindow(ctx, b.Parent)
	if err != nil {
		return schedule.BreakResponse{}, err
	}
	siblings, err := s.breakRepo.GetByParent(ctx, b.Parent)
	if err != nil {
		return schedule.BreakResponse{}, fmt.Errorf("failed to get sibling breaks: %w", err)
	}
	candidates := make([]schedule.Break, 0, len(siblings))
	for _, sib := range siblings {
		if sib.ID == b.ID {
			candidates = append(candidates, b)
			continue
		}
		candidates = append(candidates, sib)
	}
	result := ValidateBreaksForParent(candidates, workStart, workEnd)
	if !result.IsValid {
		return schedule.BreakResponse{}, breakConflictsToValidationErrors(result)
	}

	updated, err := s.breakRepo.Update(ctx, b)
	if err != nil {
		return schedule.BreakResponse{}, fmt.Errorf("failed to update break: %w", err)
	}
	return mapBreakToResponse(updated), nil
}

// DeleteBreak implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteBreak(ctx context.Context, id string) error {
	err := s.breakRepo.Delete(ctx, id)
	if err != nil {
		if err == schedule.ErrBreakNotFound {
			return err
		}
		return fmt.Errorf("failed to delete break: %w", err)
	}
	return nil
}

// loadParentWindow fetches the work window of a break parent. A non-working
// parent has no window; both bounds come back nil.
func (s *scheduleServiceImpl) loadParentWindow(ctx context.Context, parent schedule.ParentRef) (*time.Time, *time.Time, error) {
	switch parent.Kind {
	case schedule.ParentFixedSchedule:
		fs, err := s.fixedRepo.GetByID(ctx, parent.ID)
		if err != nil {
			if err == schedule.ErrFixedScheduleNotFound {
				return nil, nil, schedule.ErrBreakParentNotFound
			}
			return nil, nil, fmt.Errorf("failed to get break parent: %w", err)
		}
		return fs.StartTime, fs.EndTime, nil
	case schedule.ParentTemplateDay:
		td, err := s.templateDayRepo.GetByID(ctx, parent.ID)
		if err != nil {
			if err == schedule.ErrTemplateDayNotFound {
				return nil, nil, schedule.ErrBreakParentNotFound
			}
			return nil, nil, fmt.Errorf("failed to get break parent: %w", err)
		}
		return td.StartTime, td.EndTime, nil
	case schedule.ParentDailyException:
		de, err := s.exceptionRepo.GetByID(ctx, parent.ID)
		if err != nil {
			if err == schedule.ErrDailyExceptionNotFound {
				return nil, nil, schedule.ErrBreakParentNotFound
			}
			return nil, nil, fmt.Errorf("failed to get break parent: %w", err)
		}
		return de.StartTime, de.EndTime, nil
	}
	return nil, nil, schedule.ErrBreakParentNotFound
}
