package leaverequest

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"type:varchar(50);not null;index:idx_leave_requests_employee"`

	// Snapshot identitas karyawan saat pengajuan. Sengaja denormalized:
	// perubahan data karyawan di kemudian hari tidak mengubah riwayat.
	EmployeeName       string `gorm:"size:255;not null"`
	EmployeeDepartment string `gorm:"size:100;not null"`
	EmployeePosition   string `gorm:"size:100;not null"`

	LeaveType string    `gorm:"type:varchar(30);not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text;not null"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index:idx_leave_requests_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
