package leaverequest_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-leavedesk/internal/leaverequest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormOverMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func newMockTx(t *testing.T) (*sql.Tx, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectBegin()
	tx, err := db.Begin()
	assert.NoError(t, err)
	return tx, mock
}

// Insert di dalam WithTx harus berjalan lewat koneksi transaksi, bukan
// lewat pool gorm: rollback service harus membatalkan row leave request.
func TestLeaveRequestRepository_CreateJoinsTx(t *testing.T) {
	gormDB, poolMock := newGormOverMock(t)
	tx, txMock := newMockTx(t)

	txMock.ExpectExec(`INSERT INTO "leave_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectRollback()

	repo := leaverequest.NewRepository(gormDB).WithTx(tx)
	err := repo.Create(context.Background(), &leaverequest.LeaveRequest{
		ID:                 uuid.New(),
		EmployeeID:         "EMP001",
		EmployeeName:       "John Doe",
		EmployeeDepartment: "IT",
		EmployeePosition:   "Senior Staff",
		LeaveType:          "Cuti",
		StartDate:          time.Now().AddDate(0, 0, 1),
		EndDate:            time.Now().AddDate(0, 0, 4),
		TotalDays:          4,
		Reason:             "Need to take vacation for personal refreshment.",
		Status:             leaverequest.StatusPending,
	})

	assert.NoError(t, err)
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestLeaveRequestRepository_UpdateJoinsTx(t *testing.T) {
	gormDB, poolMock := newGormOverMock(t)
	tx, txMock := newMockTx(t)

	txMock.ExpectExec(`UPDATE "leave_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectCommit()

	repo := leaverequest.NewRepository(gormDB).WithTx(tx)
	err := repo.Update(context.Background(), &leaverequest.LeaveRequest{
		ID:                 uuid.New(),
		EmployeeID:         "EMP001",
		EmployeeName:       "John Doe",
		EmployeeDepartment: "IT",
		EmployeePosition:   "Senior Staff",
		LeaveType:          "Cuti",
		StartDate:          time.Now().AddDate(0, 0, 1),
		EndDate:            time.Now().AddDate(0, 0, 4),
		TotalDays:          4,
		Reason:             "Need to take vacation for personal refreshment.",
		Status:             leaverequest.StatusApproved,
		CreatedAt:          time.Now().Add(-time.Hour),
		UpdatedAt:          time.Now(),
	})

	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
