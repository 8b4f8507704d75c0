package dto

import (
	"encoding/json"
	"time"
)

// Date layouts accepted for date_of_joining
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// CreateEmployeeRequest represents the request to create an employee.
// Salary is a json.Number so both "95000" and 95000 are accepted.
type CreateEmployeeRequest struct {
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	Email         string      `json:"email"`
	Position      string      `json:"position"`
	Salary        json.Number `json:"salary"`
	DateOfJoining string      `json:"date_of_joining"`
	Department    string      `json:"department"`
}

// Validate validates the CreateEmployeeRequest
func (r *CreateEmployeeRequest) Validate() (bool, string) {
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.Position == "" ||
		r.Salary.String() == "" || r.DateOfJoining == "" || r.Department == "" {
		return false, "All fields are required."
	}
	salary, err := r.Salary.Float64()
	if err != nil {
		return false, "Salary must be a valid number."
	}
	if salary < 0 {
		return false, "Salary cannot be negative."
	}
	if _, err := parseDate(r.DateOfJoining); err != nil {
		return false, "date_of_joining must be a valid date (YYYY-MM-DD)."
	}
	return true, ""
}

// SalaryValue returns the parsed salary. Call Validate first.
func (r *CreateEmployeeRequest) SalaryValue() float64 {
	salary, _ := r.Salary.Float64()
	return salary
}

// DateOfJoiningValue returns the parsed joining date. Call Validate first.
func (r *CreateEmployeeRequest) DateOfJoiningValue() time.Time {
	t, _ := parseDate(r.DateOfJoining)
	return t
}

// UpdateEmployeeRequest represents a partial employee update. Only the
// fields present in the request body are applied.
type UpdateEmployeeRequest struct {
	FirstName     *string      `json:"first_name"`
	LastName      *string      `json:"last_name"`
	Email         *string      `json:"email"`
	Position      *string      `json:"position"`
	Salary        *json.Number `json:"salary"`
	DateOfJoining *string      `json:"date_of_joining"`
	Department    *string      `json:"department"`
}

// Validate validates the UpdateEmployeeRequest
func (r *UpdateEmployeeRequest) Validate() (bool, string) {
	if r.Salary != nil {
		salary, err := r.Salary.Float64()
		if err != nil {
			return false, "Salary must be a valid number."
		}
		if salary < 0 {
			return false, "Salary cannot be negative."
		}
	}
	if r.DateOfJoining != nil {
		if _, err := parseDate(*r.DateOfJoining); err != nil {
			return false, "date_of_joining must be a valid date (YYYY-MM-DD)."
		}
	}
	return true, ""
}

// Fields returns the bson field map for the provided values. Call
// Validate first.
func (r *UpdateEmployeeRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["last_name"] = *r.LastName
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Position != nil {
		fields["position"] = *r.Position
	}
	if r.Salary != nil {
		salary, _ := r.Salary.Float64()
		fields["salary"] = salary
	}
	if r.DateOfJoining != nil {
		t, _ := parseDate(*r.DateOfJoining)
		fields["date_of_joining"] = t
	}
	if r.Department != nil {
		fields["department"] = *r.Department
	}
	return fields
}

// SearchEmployeeQuery represents the /search query parameters
type SearchEmployeeQuery struct {
	Department string `form:"department"`
	Position   string `form:"position"`
}

// ListEmployeeQuery represents the optional listing filters
type ListEmployeeQuery struct {
	Department string `form:"department"`
	Position   string `form:"position"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
