package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leavedesk/internal/department"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentRepository struct {
	findAllFn func(ctx context.Context) ([]department.Department, error)
	seedFn    func(ctx context.Context, departments []department.Department) error
}

func (f *fakeDepartmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	return f.findAllFn(ctx)
}

func (f *fakeDepartmentRepository) Seed(ctx context.Context, departments []department.Department) error {
	if f.seedFn != nil {
		return f.seedFn(ctx, departments)
	}
	return nil
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()
	depts := []department.Department{
		{ID: "finance", Name: "Finance"},
		{ID: "it", Name: "IT"},
	}
	expected := []department.DepartmentResponse{
		{ID: "finance", Name: "Finance"},
		{ID: "it", Name: "IT"},
	}
	cachedJSON, _ := json.Marshal(expected)

	t.Run("cache miss hits the repository and warms the cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(department.DepartmentAllKey).RedisNil()
		mock.ExpectSet(department.DepartmentAllKey, cachedJSON, 30*time.Minute).SetVal("OK")

		repoCalls := 0
		repo := &fakeDepartmentRepository{
			findAllFn: func(ctx context.Context) ([]department.Department, error) {
				repoCalls++
				return depts, nil
			},
		}
		svc := department.NewService(repo, rdb)

		got, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.Equal(t, 1, repoCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(department.DepartmentAllKey).SetVal(string(cachedJSON))

		repo := &fakeDepartmentRepository{
			findAllFn: func(ctx context.Context) ([]department.Department, error) {
				t.Fatal("repository should not be called on cache hit")
				return nil, nil
			},
		}
		svc := department.NewService(repo, rdb)

		got, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repository error propagates", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(department.DepartmentAllKey).RedisNil()

		dbErr := errors.New("connection refused")
		repo := &fakeDepartmentRepository{
			findAllFn: func(ctx context.Context) ([]department.Department, error) {
				return nil, dbErr
			},
		}
		svc := department.NewService(repo, rdb)

		_, err := svc.GetAll(ctx)

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("without redis falls back to the repository", func(t *testing.T) {
		repo := &fakeDepartmentRepository{
			findAllFn: func(ctx context.Context) ([]department.Department, error) {
				return depts, nil
			},
		}
		svc := department.NewService(repo, nil)

		got, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	})
}
