package attendance

import (
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
	Notes      string `json:"notes"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	CheckInAt     string  `json:"check_in_at"`
	CheckOutAt    *string `json:"check_out_at"`
	WorkedMinutes *int    `json:"worked_minutes"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
