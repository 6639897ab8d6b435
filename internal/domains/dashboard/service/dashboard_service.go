package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"creatorhub-backend/internal/domains/dashboard/model"
	"creatorhub-backend/internal/domains/dashboard/repository"
)

const (
	recentVideoLimit = 5
	chartMonthLimit  = 6
	reportMonthLimit = 12
)

var ErrDashboardQuery = errors.New("dashboard query error")

// ServiceInterface assembles the dashboard read models.
type ServiceInterface interface {
	Overview(ctx context.Context) (*model.Overview, error)
	Charts(ctx context.Context) (*model.Charts, error)
	PaymentsReport(ctx context.Context) (*model.PaymentsReport, error)
}

type dashboardService struct {
	repo repository.RepositoryInterface
}

func NewDashboardService(repo repository.RepositoryInterface) ServiceInterface {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) Overview(ctx context.Context) (*model.Overview, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load dashboard stats")
		return nil, ErrDashboardQuery
	}

	recent, err := s.repo.RecentVideos(ctx, recentVideoLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load recent videos")
		return nil, ErrDashboardQuery
	}

	breakdown, err := s.repo.StatusBreakdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load payment breakdown")
		return nil, ErrDashboardQuery
	}

	return &model.Overview{
		Stats:        *stats,
		RecentVideos: recent,
		PaymentStats: breakdown,
	}, nil
}

func (s *dashboardService) Charts(ctx context.Context) (*model.Charts, error) {
	breakdown, err := s.repo.StatusBreakdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load payment breakdown")
		return nil, ErrDashboardQuery
	}

	trends, err := s.repo.ChartTrends(ctx, chartMonthLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load chart trends")
		return nil, ErrDashboardQuery
	}

	return &model.Charts{
		PaymentDistribution: breakdown,
		MonthlyTrends:       trends,
	}, nil
}

func (s *dashboardService) PaymentsReport(ctx context.Context) (*model.PaymentsReport, error) {
	summary, err := s.repo.PaymentSummary(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load payment summary")
		return nil, ErrDashboardQuery
	}

	trends, err := s.repo.MonthlyTrends(ctx, reportMonthLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load monthly trends")
		return nil, ErrDashboardQuery
	}

	return &model.PaymentsReport{
		Summary:       summary,
		MonthlyTrends: trends,
	}, nil
}
