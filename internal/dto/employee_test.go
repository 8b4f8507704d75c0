package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := func() CreateEmployeeRequest {
		return CreateEmployeeRequest{
			FirstName:     "Alice",
			LastName:      "Nguyen",
			Email:         "alice@example.com",
			Position:      "Engineer",
			Salary:        json.Number("95000"),
			DateOfJoining: "2022-06-01",
			Department:    "Engineering",
		}
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid()
		ok, msg := req.Validate()
		assert.True(t, ok)
		assert.Empty(t, msg)
	})

	t.Run("missing field", func(t *testing.T) {
		req := valid()
		req.Department = ""
		ok, msg := req.Validate()
		assert.False(t, ok)
		assert.Equal(t, "All fields are required.", msg)
	})

	t.Run("non-numeric salary", func(t *testing.T) {
		req := valid()
		req.Salary = json.Number("lots")
		ok, _ := req.Validate()
		assert.False(t, ok)
	})

	t.Run("negative salary", func(t *testing.T) {
		req := valid()
		req.Salary = json.Number("-1")
		ok, _ := req.Validate()
		assert.False(t, ok)
	})

	t.Run("bad date", func(t *testing.T) {
		req := valid()
		req.DateOfJoining = "June 1st"
		ok, _ := req.Validate()
		assert.False(t, ok)
	})

	t.Run("rfc3339 date accepted", func(t *testing.T) {
		req := valid()
		req.DateOfJoining = "2022-06-01T09:30:00Z"
		ok, _ := req.Validate()
		assert.True(t, ok)
		assert.Equal(t, 9, req.DateOfJoiningValue().Hour())
	})
}

func TestCreateEmployeeRequest_SalaryFromJSON(t *testing.T) {
	t.Run("string salary", func(t *testing.T) {
		var req CreateEmployeeRequest
		require.NoError(t, json.Unmarshal([]byte(`{"salary": "95000"}`), &req))
		assert.Equal(t, float64(95000), func() float64 { v, _ := req.Salary.Float64(); return v }())
	})

	t.Run("numeric salary", func(t *testing.T) {
		var req CreateEmployeeRequest
		require.NoError(t, json.Unmarshal([]byte(`{"salary": 95000.5}`), &req))
		assert.Equal(t, 95000.5, func() float64 { v, _ := req.Salary.Float64(); return v }())
	})
}

func TestUpdateEmployeeRequest_Fields(t *testing.T) {
	t.Run("only provided fields", func(t *testing.T) {
		position := "Senior Engineer"
		salary := json.Number("120000")
		req := UpdateEmployeeRequest{
			Position: &position,
			Salary:   &salary,
		}

		ok, _ := req.Validate()
		require.True(t, ok)

		fields := req.Fields()
		assert.Len(t, fields, 2)
		assert.Equal(t, "Senior Engineer", fields["position"])
		assert.Equal(t, float64(120000), fields["salary"])
	})

	t.Run("empty request yields no fields", func(t *testing.T) {
		req := UpdateEmployeeRequest{}
		ok, _ := req.Validate()
		require.True(t, ok)
		assert.Empty(t, req.Fields())
	})

	t.Run("date of joining parsed", func(t *testing.T) {
		date := "2023-04-01"
		req := UpdateEmployeeRequest{DateOfJoining: &date}

		ok, _ := req.Validate()
		require.True(t, ok)

		fields := req.Fields()
		parsed, isTime := fields["date_of_joining"].(time.Time)
		require.True(t, isTime)
		assert.Equal(t, "2023-04-01", parsed.Format("2006-01-02"))
	})

	t.Run("invalid salary rejected", func(t *testing.T) {
		salary := json.Number("abc")
		req := UpdateEmployeeRequest{Salary: &salary}
		ok, _ := req.Validate()
		assert.False(t, ok)
	})
}
