package stats

import (
	"context"

	"go-leavedesk/internal/leaverequest"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=stats_service.go -destination=mock/stats_service_mock.go -package=mock
type Service interface {
	GetDashboardStats(ctx context.Context) (DashboardStats, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("stats.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stats.service")
	}
	return &service{repo: repo, sf: &singleflight.Group{}, logger: l}
}

// GetDashboardStats menjalankan agregasi best-effort snapshot di atas
// repository. Singleflight meredam query berulang saat dashboard dibuka
// banyak user bersamaan.
func (s *service) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	v, err, _ := s.sf.Do("dashboard_stats", func() (interface{}, error) {
		return s.computeStats(ctx)
	})
	if err != nil {
		return DashboardStats{}, err
	}
	return v.(DashboardStats), nil
}

func (s *service) computeStats(ctx context.Context) (DashboardStats, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		s.logger.Error("count all leave requests failed", zap.Error(err))
		return DashboardStats{}, err
	}

	pending, err := s.repo.CountByStatus(ctx, leaverequest.StatusPending)
	if err != nil {
		return DashboardStats{}, err
	}
	approved, err := s.repo.CountByStatus(ctx, leaverequest.StatusApproved)
	if err != nil {
		return DashboardStats{}, err
	}
	rejected, err := s.repo.CountByStatus(ctx, leaverequest.StatusRejected)
	if err != nil {
		return DashboardStats{}, err
	}

	employees, err := s.repo.CountDistinctEmployees(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalRequests:    total,
		PendingRequests:  pending,
		ApprovedRequests: approved,
		RejectedRequests: rejected,
		TotalEmployees:   employees,
	}, nil
}
