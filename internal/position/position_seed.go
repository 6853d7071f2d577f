package position

import "strings"

var positionNames = []string{
	"Manager",
	"Supervisor",
	"Team Lead",
	"Senior Staff",
	"Staff",
	"Junior Staff",
	"Intern",
}

// DefaultPositions mengembalikan satu set jabatan standar untuk setiap
// departemen. ID deterministik (mis. "it-team-lead") agar seed idempotent.
func DefaultPositions(departmentIDs []string) []Position {
	positions := make([]Position, 0, len(departmentIDs)*len(positionNames))
	for _, deptID := range departmentIDs {
		for _, name := range positionNames {
			positions = append(positions, Position{
				ID:           deptID + "-" + slugify(name),
				Name:         name,
				DepartmentID: deptID,
			})
		}
	}
	return positions
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
