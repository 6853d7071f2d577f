package employee_test

import (
	"context"
	"testing"

	"go-leavedesk/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Insert employee di dalam WithTx harus berjalan lewat koneksi transaksi,
// bukan lewat pool gorm: rollback service harus membatalkan row employee.
func TestEmployeeRepository_CreateIfAbsentJoinsTx(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	defer poolDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{})
	assert.NoError(t, err)

	txDB, txMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	txMock.ExpectExec(`INSERT INTO "employees".+ON CONFLICT`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectRollback()

	tx, err := txDB.Begin()
	assert.NoError(t, err)

	repo := employee.NewRepository(gormDB).WithTx(tx)
	err = repo.CreateIfAbsent(context.Background(), &employee.Employee{
		ID:         "EMP001",
		Name:       "John Doe",
		Department: "IT",
		Position:   "Senior Staff",
	})

	assert.NoError(t, err)
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
