package position

// Position adalah data referensi statis, di-scope per departemen agar
// dropdown jabatan di form bisa difilter mengikuti departemen terpilih.
type Position struct {
	ID           string `gorm:"type:varchar(100);primaryKey"`
	Name         string `gorm:"size:255;not null"`
	DepartmentID string `gorm:"type:varchar(50);not null;index"`
}
