package department

// DefaultDepartments mengembalikan daftar departemen yang dipakai oleh
// validasi pengajuan dan dropdown form di client.
func DefaultDepartments() []Department {
	return []Department{
		{ID: "hr", Name: "HR"},
		{ID: "it", Name: "IT"},
		{ID: "finance", Name: "Finance"},
		{ID: "marketing", Name: "Marketing"},
		{ID: "operations", Name: "Operations"},
		{ID: "sales", Name: "Sales"},
	}
}
