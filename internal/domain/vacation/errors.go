package vacation

import "errors"

var (
	ErrRequestNotFound  = errors.New("vacation request not found")
	ErrAlreadyProcessed = errors.New("vacation request already processed")
	ErrOverlappingDates = errors.New("vacation request overlaps an existing request")
)
