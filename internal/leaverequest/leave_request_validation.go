package leaverequest

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const dateLayout = "2006-01-02"

const (
	maxEmployeeNameLen = 255
	minReasonLen       = 10
	maxReasonLen       = 1000
)

var Departments = []string{"HR", "IT", "Finance", "Marketing", "Operations", "Sales"}

var Positions = []string{"Manager", "Supervisor", "Team Lead", "Senior Staff", "Staff", "Junior Staff", "Intern"}

var LeaveTypes = []string{"Cuti", "Sakit", "Izin Pribadi"}

// FieldErrors memetakan nama field ke daftar pesan pelanggaran.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Submission adalah hasil validasi yang sudah dinormalisasi (tanggal terparse).
type Submission struct {
	EmployeeID   string
	EmployeeName string
	Department   string
	Position     string
	LeaveType    string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
}

// ValidateSubmission memeriksa seluruh aturan pengajuan izin sekaligus.
// Tidak fail-fast: form di sisi client menampilkan semua error per field
// dalam satu kali render. Fungsi ini murni, "hari ini" diambil dari now.
func ValidateSubmission(req SubmitLeaveRequest, now time.Time) (Submission, FieldErrors) {
	fieldErrs := FieldErrors{}

	if req.EmployeeID == "" {
		fieldErrs.add("employee_id", "ID karyawan wajib diisi.")
	}

	if req.EmployeeName == "" {
		fieldErrs.add("employee_name", "Nama karyawan wajib diisi.")
	} else if utf8.RuneCountInString(req.EmployeeName) > maxEmployeeNameLen {
		fieldErrs.add("employee_name", fmt.Sprintf("Nama karyawan tidak boleh lebih dari %d karakter.", maxEmployeeNameLen))
	}

	if req.Department == "" {
		fieldErrs.add("department", "Departemen wajib dipilih.")
	} else if !contains(Departments, req.Department) {
		fieldErrs.add("department", "Departemen yang dipilih tidak valid.")
	}

	if req.Position == "" {
		fieldErrs.add("position", "Jabatan wajib dipilih.")
	} else if !contains(Positions, req.Position) {
		fieldErrs.add("position", "Jabatan yang dipilih tidak valid.")
	}

	if req.LeaveType == "" {
		fieldErrs.add("leave_type", "Jenis izin wajib dipilih.")
	} else if !contains(LeaveTypes, req.LeaveType) {
		fieldErrs.add("leave_type", "Jenis izin yang dipilih tidak valid.")
	}

	var startDate, endDate time.Time
	startValid, endValid := false, false

	if req.StartDate == "" {
		fieldErrs.add("start_date", "Tanggal mulai wajib diisi.")
	} else if parsed, err := time.Parse(dateLayout, req.StartDate); err != nil {
		fieldErrs.add("start_date", "Tanggal mulai harus berupa tanggal yang valid.")
	} else {
		startDate = parsed
		startValid = true
	}

	if req.EndDate == "" {
		fieldErrs.add("end_date", "Tanggal selesai wajib diisi.")
	} else if parsed, err := time.Parse(dateLayout, req.EndDate); err != nil {
		fieldErrs.add("end_date", "Tanggal selesai harus berupa tanggal yang valid.")
	} else {
		endDate = parsed
		endValid = true
	}

	// Perbandingan tanggal hanya pada komponen tanggal, jam diabaikan
	if startValid {
		today, _ := time.Parse(dateLayout, now.Format(dateLayout))
		if startDate.Before(today) {
			fieldErrs.add("start_date", "Tanggal mulai tidak boleh sebelum hari ini.")
		}
	}
	if startValid && endValid && endDate.Before(startDate) {
		fieldErrs.add("end_date", "Tanggal selesai tidak boleh sebelum tanggal mulai.")
	}

	// Panjang alasan dihitung apa adanya, tanpa trim whitespace
	if req.Reason == "" {
		fieldErrs.add("reason", "Alasan wajib diisi.")
	} else if n := utf8.RuneCountInString(req.Reason); n < minReasonLen {
		fieldErrs.add("reason", fmt.Sprintf("Alasan harus minimal %d karakter.", minReasonLen))
	} else if n > maxReasonLen {
		fieldErrs.add("reason", fmt.Sprintf("Alasan tidak boleh lebih dari %d karakter.", maxReasonLen))
	}

	if len(fieldErrs) > 0 {
		return Submission{}, fieldErrs
	}

	return Submission{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Department:   req.Department,
		Position:     req.Position,
		LeaveType:    req.LeaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       req.Reason,
	}, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
