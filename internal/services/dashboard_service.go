package services

import (
	"context"

	"wxbrief/internal/models/db_models"
	"wxbrief/internal/models/response_models"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, user *db_models.User) (*response_models.DashboardResponse, error)
}

type dashboardService struct {
	plans FlightPlanServiceInterface
}

func NewDashboardService(plans FlightPlanServiceInterface) DashboardService {
	return &dashboardService{plans: plans}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, user *db_models.User) (*response_models.DashboardResponse, error) {

	recent, err := s.plans.GetRecentPlans(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &response_models.DashboardResponse{
		User: response_models.UserSummary{
			Name:  user.Name,
			Email: user.Email,
		},
		RecentPlans: recent,
	}, nil
}
