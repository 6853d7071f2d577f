package position

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	PositionAllKey             = "positions:all"
	PositionByDepartmentPrefix = "positions:department:"
	referenceDataCacheTTL      = 30 * time.Minute
)

func GetPositionByDepartmentKey(departmentID string) string {
	return PositionByDepartmentPrefix + departmentID
}

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetAllByDepartment(ctx context.Context, departmentID string) ([]PositionResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]PositionResponse, error) {
	return s.cachedList(ctx, PositionAllKey, func() ([]Position, error) {
		return s.repo.FindAll(ctx)
	})
}

func (s *service) GetAllByDepartment(ctx context.Context, departmentID string) ([]PositionResponse, error) {
	cacheKey := GetPositionByDepartmentKey(departmentID)
	return s.cachedList(ctx, cacheKey, func() ([]Position, error) {
		return s.repo.FindAllByDepartment(ctx, departmentID)
	})
}

// cachedList: Redis dulu, lalu singleflight ke DB saat cache dingin.
// Data master cukup di-cache 30 menit tanpa invalidasi.
func (s *service) cachedList(
	ctx context.Context,
	cacheKey string,
	load func() ([]Position, error),
) ([]PositionResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []PositionResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		positions, err := load()
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(positions)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, referenceDataCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]PositionResponse), nil
}

func mapToResponse(post Position) PositionResponse {
	return PositionResponse{
		ID:           post.ID,
		Name:         post.Name,
		DepartmentID: post.DepartmentID,
	}
}

func mapToListResponse(positions []Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	return res
}
