package leaverequest_test

import (
	"strings"
	"testing"
	"time"

	"go-leavedesk/internal/leaverequest"

	"github.com/stretchr/testify/assert"
)

var validationNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func validSubmission() leaverequest.SubmitLeaveRequest {
	return leaverequest.SubmitLeaveRequest{
		EmployeeID:   "EMP001",
		EmployeeName: "John Doe",
		Department:   "IT",
		Position:     "Senior Staff",
		LeaveType:    "Cuti",
		StartDate:    "2026-03-16",
		EndDate:      "2026-03-19",
		Reason:       "Need to take vacation for personal refreshment.",
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	sub, fieldErrs := leaverequest.ValidateSubmission(validSubmission(), validationNow)

	assert.Nil(t, fieldErrs)
	assert.Equal(t, "EMP001", sub.EmployeeID)
	assert.Equal(t, "2026-03-16", sub.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2026-03-19", sub.EndDate.Format("2006-01-02"))
}

func TestValidateSubmission_SingleDayLeaveIsValid(t *testing.T) {
	req := validSubmission()
	req.StartDate = "2026-03-16"
	req.EndDate = "2026-03-16"

	sub, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

	assert.Nil(t, fieldErrs)
	assert.True(t, sub.StartDate.Equal(sub.EndDate))
}

func TestValidateSubmission_StartDateTodayIsValid(t *testing.T) {
	req := validSubmission()
	req.StartDate = "2026-03-15"
	req.EndDate = "2026-03-15"

	_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

	assert.Nil(t, fieldErrs)
}

func TestValidateSubmission_EndBeforeStart(t *testing.T) {
	req := validSubmission()
	req.StartDate = "2026-03-20"
	req.EndDate = "2026-03-16"

	_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

	assert.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "end_date")
	assert.NotContains(t, fieldErrs, "start_date")
}

func TestValidateSubmission_StartInThePast(t *testing.T) {
	req := validSubmission()
	req.StartDate = "2026-03-14"
	req.EndDate = "2026-03-16"

	_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

	assert.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "start_date")
}

func TestValidateSubmission_AllViolationsReportedAtOnce(t *testing.T) {
	req := leaverequest.SubmitLeaveRequest{}

	_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

	assert.NotNil(t, fieldErrs)
	for _, field := range []string{
		"employee_id",
		"employee_name",
		"department",
		"position",
		"leave_type",
		"start_date",
		"end_date",
		"reason",
	} {
		assert.Contains(t, fieldErrs, field, "expected error for field %s", field)
	}
}

func TestValidateSubmission_EnumMembership(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*leaverequest.SubmitLeaveRequest)
		field  string
	}{
		{
			name:   "unknown department",
			mutate: func(r *leaverequest.SubmitLeaveRequest) { r.Department = "Legal" },
			field:  "department",
		},
		{
			name:   "unknown position",
			mutate: func(r *leaverequest.SubmitLeaveRequest) { r.Position = "CEO" },
			field:  "position",
		},
		{
			name:   "unknown leave type",
			mutate: func(r *leaverequest.SubmitLeaveRequest) { r.LeaveType = "Dinas Luar" },
			field:  "leave_type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmission()
			tc.mutate(&req)

			_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

			assert.NotNil(t, fieldErrs)
			assert.Contains(t, fieldErrs, tc.field)
			assert.Len(t, fieldErrs, 1)
		})
	}
}

func TestValidateSubmission_EmployeeNameTooLong(t *testing.T) {
	req := validSubmission()
	req.EmployeeName = strings.Repeat("a", 256)

	_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

	assert.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "employee_name")
}

func TestValidateSubmission_ReasonLength(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		req := validSubmission()
		req.Reason = "short"

		_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

		assert.Contains(t, fieldErrs, "reason")
	})

	t.Run("too long", func(t *testing.T) {
		req := validSubmission()
		req.Reason = strings.Repeat("a", 1001)

		_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

		assert.Contains(t, fieldErrs, "reason")
	})

	t.Run("whitespace is not trimmed before the length check", func(t *testing.T) {
		req := validSubmission()
		req.Reason = "   abc    " // 10 karakter termasuk spasi

		_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

		assert.Nil(t, fieldErrs)
	})

	t.Run("exactly at bounds", func(t *testing.T) {
		req := validSubmission()
		req.Reason = strings.Repeat("a", 10)
		_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)
		assert.Nil(t, fieldErrs)

		req.Reason = strings.Repeat("a", 1000)
		_, fieldErrs = leaverequest.ValidateSubmission(req, validationNow)
		assert.Nil(t, fieldErrs)
	})
}

func TestValidateSubmission_MalformedDates(t *testing.T) {
	req := validSubmission()
	req.StartDate = "16-03-2026"
	req.EndDate = "not-a-date"

	_, fieldErrs := leaverequest.ValidateSubmission(req, validationNow)

	assert.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "start_date")
	assert.Contains(t, fieldErrs, "end_date")
}
