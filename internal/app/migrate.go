package app

import (
	"context"

	"go-leavedesk/internal/department"
	"go-leavedesk/internal/employee"
	"go-leavedesk/internal/leaverequest"
	"go-leavedesk/internal/position"

	"gorm.io/gorm"
)

// Tabel outbox dikelola dengan SQL mentah karena repo-nya bekerja di level
// database/sql, bukan lewat model gorm.
const outboxTableDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
    id UUID PRIMARY KEY,
    request_id VARCHAR(100),
    aggregate_type VARCHAR(50) NOT NULL,
    aggregate_id VARCHAR(100) NOT NULL,
    event_type VARCHAR(100) NOT NULL,
    topic VARCHAR(200) NOT NULL,
    payload BYTEA NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'pending',
    retry_count INT NOT NULL DEFAULT 0,
    error_message VARCHAR(500),
    next_retry_at TIMESTAMPTZ,
    processed_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&leaverequest.LeaveRequest{},
		&department.Department{},
		&position.Position{},
	); err != nil {
		return err
	}

	return gormDB.Exec(outboxTableDDL).Error
}

func seedReferenceData(gormDB *gorm.DB) error {
	ctx := context.Background()

	departments := department.DefaultDepartments()
	if err := department.NewRepository(gormDB).Seed(ctx, departments); err != nil {
		return err
	}

	departmentIDs := make([]string, len(departments))
	for i, d := range departments {
		departmentIDs[i] = d.ID
	}
	return position.NewRepository(gormDB).Seed(ctx, position.DefaultPositions(departmentIDs))
}
