package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	"github.com/fichaje-hq/fichaje-backend-go/internal/handler/http/response"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/calendar"
	scheduleservice "github.com/fichaje-hq/fichaje-backend-go/internal/service/schedule"
)

type ScheduleHandler interface {
	// Fixed Schedule
	CreateFixedSchedule(w http.ResponseWriter, r *http.Request)
	ListFixedSchedules(w http.ResponseWriter, r *http.Request)
	UpdateFixedSchedule(w http.ResponseWriter, r *http.Request)
	DeleteFixedSchedule(w http.ResponseWriter, r *http.Request)

	// Template
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	GetTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	UpdateTemplate(w http.ResponseWriter, r *http.Request)
	DeleteTemplate(w http.ResponseWriter, r *http.Request)

	// Template Day
	CreateTemplateDay(w http.ResponseWriter, r *http.Request)
	UpdateTemplateDay(w http.ResponseWriter, r *http.Request)
	DeleteTemplateDay(w http.ResponseWriter, r *http.Request)

	// Weekly Assignment
	CreateWeeklyAssignment(w http.ResponseWriter, r *http.Request)
	ListWeeklyAssignments(w http.ResponseWriter, r *http.Request)
	DeleteWeeklyAssignment(w http.ResponseWriter, r *http.Request)

	// Daily Exception
	CreateDailyException(w http.ResponseWriter, r *http.Request)
	ListDailyExceptions(w http.ResponseWriter, r *http.Request)
	UpdateDailyException(w http.ResponseWriter, r *http.Request)
	ApproveDailyException(w http.ResponseWriter, r *http.Request)
	DeleteDailyException(w http.ResponseWriter, r *http.Request)

	// Break
	CreateBreak(w http.ResponseWriter, r *http.Request)
	ListBreaksForParent(w http.ResponseWriter, r *http.Request)
	UpdateBreak(w http.ResponseWriter, r *http.Request)
	DeleteBreak(w http.ResponseWriter, r *http.Request)
	ValidateParentBreaks(w http.ResponseWriter, r *http.Request)

	// Resolution
	GetEffectiveSchedule(w http.ResponseWriter, r *http.Request)
	GetEffectiveScheduleRange(w http.ResponseWriter, r *http.Request)
	GetEffectiveBreaks(w http.ResponseWriter, r *http.Request)

	// Bulk planning
	PlanifyYear(w http.ResponseWriter, r *http.Request)
	ApplyTemplateBreaks(w http.ResponseWriter, r *http.Request)

	// Conflicts and reports
	ValidateScheduleConflicts(w http.ResponseWriter, r *http.Request)
	GetSchedulingStats(w http.ResponseWriter, r *http.Request)
	GetBreakReport(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// ==================== FIXED SCHEDULE HANDLERS ====================

func (h *scheduleHandlerImpl) CreateFixedSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateFixedScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.scheduleService.CreateFixedSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Fixed schedule created successfully", result)
}

func (h *scheduleHandlerImpl) ListFixedSchedules(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.scheduleService.GetFixedSchedules(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) UpdateFixedSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateFixedScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.scheduleService.UpdateFixedSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Fixed schedule updated successfully", result)
}

func (h *scheduleHandlerImpl) DeleteFixedSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteFixedSchedule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Fixed schedule deleted successfully", nil)
}

// ==================== TEMPLATE HANDLERS ====================

func (h *scheduleHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CreateTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Template created successfully", result)
}

func (h *scheduleHandlerImpl) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.scheduleService.GetTemplate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.scheduleService.ListTemplates(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.scheduleService.UpdateTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template updated successfully", result)
}

func (h *scheduleHandlerImpl) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteTemplate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template deleted successfully", nil)
}

// ==================== TEMPLATE DAY HANDLERS ====================

func (h *scheduleHandlerImpl) CreateTemplateDay(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateTemplateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.TemplateID = chi.URLParam(r, "id")

	result, err := h.scheduleService.CreateTemplateDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Template day created successfully", result)
}

func (h *scheduleHandlerImpl) UpdateTemplateDay(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateTemplateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.scheduleService.UpdateTemplateDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template day updated successfully", result)
}

func (h *scheduleHandlerImpl) DeleteTemplateDay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteTemplateDay(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template day deleted successfully", nil)
}

// ==================== WEEKLY ASSIGNMENT HANDLERS ====================

func (h *scheduleHandlerImpl) CreateWeeklyAssignment(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateWeeklyAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CreateWeeklyAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Weekly assignment created successfully", result)
}

func (h *scheduleHandlerImpl) ListWeeklyAssignments(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year := parseYearParam(r)

	result, err := h.scheduleService.GetWeeklyAssignments(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) DeleteWeeklyAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteWeeklyAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly assignment deleted successfully", nil)
}

// ==================== DAILY EXCEPTION HANDLERS ====================

func (h *scheduleHandlerImpl) CreateDailyException(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateDailyExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CreateDailyException(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Daily exception created successfully", result)
}

func (h *scheduleHandlerImpl) ListDailyExceptions(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	startDate, endDate, err := parseRangeParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.GetDailyExceptions(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) UpdateDailyException(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateDailyExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.scheduleService.UpdateDailyException(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily exception updated successfully", result)
}

func (h *scheduleHandlerImpl) ApproveDailyException(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		ApprovedBy string `json:"approved_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.ApproveDailyException(r.Context(), id, body.ApprovedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily exception approved successfully", result)
}

func (h *scheduleHandlerImpl) DeleteDailyException(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteDailyException(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily exception deleted successfully", nil)
}

// ==================== BREAK HANDLERS ====================

func (h *scheduleHandlerImpl) CreateBreak(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CreateBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break created successfully", result)
}

func (h *scheduleHandlerImpl) ListBreaksForParent(w http.ResponseWriter, r *http.Request) {
	parent := schedule.ParentRef{
		Kind: schedule.ParentKind(chi.URLParam(r, "parentType")),
		ID:   chi.URLParam(r, "parentID"),
	}

	result, err := h.scheduleService.GetBreaksForParent(r.Context(), parent)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) UpdateBreak(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.scheduleService.UpdateBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break updated successfully", result)
}

func (h *scheduleHandlerImpl) DeleteBreak(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteBreak(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break deleted successfully", nil)
}

func (h *scheduleHandlerImpl) ValidateParentBreaks(w http.ResponseWriter, r *http.Request) {
	parent := schedule.ParentRef{
		Kind: schedule.ParentKind(chi.URLParam(r, "parentType")),
		ID:   chi.URLParam(r, "parentID"),
	}

	result, err := h.scheduleService.ValidateParentBreaks(r.Context(), parent)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ==================== RESOLUTION HANDLERS ====================

func (h *scheduleHandlerImpl) GetEffectiveSchedule(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	date, err := parseDateParam(r, "date")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.ResolveEffectiveSchedule(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapEffectiveSchedule(result))
}

func (h *scheduleHandlerImpl) GetEffectiveScheduleRange(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	startDate, endDate, err := parseRangeParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resolved, err := h.scheduleService.ResolveEffectiveRange(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]schedule.EffectiveScheduleResponse, 0, len(resolved))
	for _, es := range resolved {
		result = append(result, mapEffectiveSchedule(es))
	}
	response.Success(w, result)
}

func (h *scheduleHandlerImpl) GetEffectiveBreaks(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	date, err := parseDateParam(r, "date")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	eb, err := h.scheduleService.GetEffectiveBreaks(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapEffectiveBreaks(eb))
}

// ==================== BULK PLANNING HANDLERS ====================

func (h *scheduleHandlerImpl) PlanifyYear(w http.ResponseWriter, r *http.Request) {
	var req schedule.PlanifyYearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.scheduleService.PlanifyYearWithTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Year planning completed", result)
}

func (h *scheduleHandlerImpl) ApplyTemplateBreaks(w http.ResponseWriter, r *http.Request) {
	var req schedule.ApplyTemplateBreaksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.TemplateDayID = chi.URLParam(r, "id")

	result, err := h.scheduleService.ApplyTemplateBreaksToSchedules(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template breaks applied", result)
}

// ==================== CONFLICT AND REPORT HANDLERS ====================

func (h *scheduleHandlerImpl) ValidateScheduleConflicts(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	startDate, endDate, err := parseRangeParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.ValidateScheduleConflicts(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) GetSchedulingStats(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year := parseYearParam(r)

	result, err := h.scheduleService.GetSchedulingStats(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) GetBreakReport(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	startDate, endDate, err := parseRangeParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.GenerateBreakReport(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ==================== HELPERS ====================

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, schedule.ErrInvalidDateFormat
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, schedule.ErrInvalidDateFormat
	}
	return date, nil
}

func parseRangeParams(r *http.Request) (time.Time, time.Time, error) {
	startDate, err := parseDateParam(r, "start_date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDateParam(r, "end_date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startDate, endDate, nil
}

func parseYearParam(r *http.Request) int {
	if value := r.URL.Query().Get("year"); value != "" {
		if year, err := strconv.Atoi(value); err == nil {
			return year
		}
	}
	year, _ := calendar.CurrentWeek()
	return year
}

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func mapEffectiveSchedule(es schedule.EffectiveSchedule) schedule.EffectiveScheduleResponse {
	return schedule.EffectiveScheduleResponse{
		EmployeeID:     es.EmployeeID,
		Date:           es.Date.Format("2006-01-02"),
		Type:           string(es.Type),
		SourceID:       es.SourceID,
		IsWorkingDay:   es.IsWorkingDay,
		StartTime:      clockString(es.StartTime),
		EndTime:        clockString(es.EndTime),
		BreakStartTime: clockString(es.BreakStartTime),
		BreakEndTime:   clockString(es.BreakEndTime),
		Notes:          es.Notes,
	}
}

func mapEffectiveBreaks(eb schedule.EffectiveBreaks) schedule.EffectiveBreaksResponse {
	resp := schedule.EffectiveBreaksResponse{
		EmployeeID:    eb.EmployeeID,
		Date:          eb.Date.Format("2006-01-02"),
		Source:        string(eb.Source),
		SourceID:      eb.SourceID,
		IsWorkingDay:  eb.IsWorkingDay,
		WorkStartTime: clockString(eb.WorkStartTime),
		WorkEndTime:   clockString(eb.WorkEndTime),
		Breaks:        make([]schedule.BreakResponse, 0, len(eb.Breaks)),
	}
	for _, b := range eb.Breaks {
		resp.Breaks = append(resp.Breaks, mapBreak(b))
	}
	if eb.IsWorkingDay {
		resp.WorkTime = scheduleservice.CalculateEffectiveWorkTime(eb.WorkStartTime, eb.WorkEndTime, eb.Breaks)
	}
	return resp
}

func mapBreak(b schedule.Break) schedule.BreakResponse {
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
		DurationMinutes:    scheduleservice.BreakDuration(b),
		IsFlexible:         b.IsFlexible,
		FlexibilityMinutes: b.FlexibilityMinutes,
		SortOrder:          b.SortOrder,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
