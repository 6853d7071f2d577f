package department

// Department adalah data referensi statis untuk form pengajuan izin.
// Di-seed saat startup dan hanya dibaca setelahnya.
type Department struct {
	ID   string `gorm:"type:varchar(50);primaryKey"`
	Name string `gorm:"size:255;not null;uniqueIndex"`
}
