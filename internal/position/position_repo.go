package position

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Position, error)
	FindAllByDepartment(ctx context.Context, departmentID string) ([]Position, error)
	Seed(ctx context.Context, positions []Position) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).
		Order("department_id ASC, name ASC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) FindAllByDepartment(ctx context.Context, departmentID string) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("name ASC").
		Find(&positions).Error
	return positions, err
}

// Seed idempotent: row yang sudah ada dibiarkan apa adanya
func (r *repository) Seed(ctx context.Context, positions []Position) error {
	if len(positions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&positions).Error
}
