package employee

import "time"

// Employee adalah snapshot identitas karyawan yang dibuat lazy saat
// employee_id pertama kali muncul di sebuah pengajuan izin. Setelah dibuat,
// record ini tidak pernah diubah oleh service ini.
type Employee struct {
	ID         string    `gorm:"type:varchar(50);primaryKey"`
	Name       string    `gorm:"size:255;not null"`
	Department string    `gorm:"size:100;not null"`
	Position   string    `gorm:"size:100;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
