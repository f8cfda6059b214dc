package attendance

import "errors"

var (
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrAlreadyCheckedIn  = errors.New("employee already checked in for this date")
	ErrNotCheckedIn      = errors.New("employee has not checked in for this date")
	ErrAlreadyCheckedOut = errors.New("employee already checked out for this date")
	ErrNotWorkingDay     = errors.New("no working schedule for this date")
)
