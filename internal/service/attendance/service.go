package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/attendance"
	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	svcschedule "github.com/fichaje-hq/fichaje-backend-go/internal/service/schedule"
)

type attendanceServiceImpl struct {
	repo            attendance.Repository
	scheduleService schedule.ScheduleService
	now             func() time.Time
}

func NewAttendanceService(repo attendance.Repository, scheduleService schedule.ScheduleService) attendance.Service {
	return &attendanceServiceImpl{
		repo:            repo,
		scheduleService: scheduleService,
		now:             time.Now,
	}
}

// CheckIn implements attendance.Service. Check-in is only allowed on days the
// resolved schedule marks as working, and at most once per day.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.now()
	today := truncateToDay(now)

	resolved, err := s.scheduleService.ResolveEffectiveSchedule(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !resolved.IsWorkingDay {
		return attendance.RecordResponse{}, attendance.ErrNotWorkingDay
	}

	_, err = s.repo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	switch {
	case err == nil:
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	case err != attendance.ErrRecordNotFound:
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	rec := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       today,
		CheckInAt:  now,
		Notes:      req.Notes,
	}
	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return mapRecordToResponse(created), nil
}

// CheckOut implements attendance.Service. Worked minutes are the elapsed time
// since check-in minus the day's unpaid break minutes, floored at zero.
func (s *attendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.now()
	today := truncateToDay(now)

	rec, err := s.repo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		if err == attendance.ErrRecordNotFound {
			return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec.CheckOutAt != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	eb, err := s.scheduleService.GetEffectiveBreaks(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	unpaid := 0
	for _, b := range eb.Breaks {
		if !b.IsPaid {
			unpaid += svcschedule.BreakDuration(b)
		}
	}

	worked := int(now.Sub(rec.CheckInAt).Minutes()) - unpaid
	if worked < 0 {
		worked = 0
	}
	rec.CheckOutAt = &now
	rec.WorkedMinutes = &worked

	updated, err := s.repo.Update(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return mapRecordToResponse(updated), nil
}

// ListByEmployee implements attendance.Service.
func (s *attendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]attendance.RecordResponse, error) {
	if employeeID == "" {
		return nil, schedule.ErrEmployeeIDRequired
	}
	if startDate.After(endDate) {
		return nil, schedule.ErrInvalidDateRange
	}

	records, err := s.repo.GetByEmployeeRange(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		Date:          rec.Date.Format("2006-01-02"),
		CheckInAt:     rec.CheckInAt.Format(time.RFC3339),
		WorkedMinutes: rec.WorkedMinutes,
		Notes:         rec.Notes,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.CheckOutAt != nil {
		s := rec.CheckOutAt.Format(time.RFC3339)
		resp.CheckOutAt = &s
	}
	return resp
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
