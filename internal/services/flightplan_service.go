package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"wxbrief/internal/models/db_models"
	"wxbrief/internal/models/request_models"
	"wxbrief/internal/models/response_models"
	"wxbrief/internal/repositories"
	"wxbrief/pkg/utils"
)

const recentPlanLimit = 20

type FlightPlanServiceInterface interface {
	CreateFlightPlan(ctx context.Context, userID uuid.UUID, request request_models.CreateFlightPlanRequest) (uuid.UUID, error)
	GetRecentPlans(ctx context.Context, userID uuid.UUID) ([]response_models.FlightPlanSummary, error)
}

type FlightPlanService struct {
	planRepo repositories.FlightPlanRepository
}

func NewFlightPlanService(planRepo repositories.FlightPlanRepository) FlightPlanServiceInterface {
	return &FlightPlanService{
		planRepo: planRepo,
	}
}

// CreateFlightPlan stores the plan tagged with its creator. ICAO codes are
// normalized to upper case before they hit the database.
func (f *FlightPlanService) CreateFlightPlan(ctx context.Context, userID uuid.UUID, request request_models.CreateFlightPlanRequest) (uuid.UUID, error) {

	alternates := make([]string, 0, len(request.Alternates))
	for _, icao := range request.Alternates {
		alternates = append(alternates, strings.ToUpper(icao))
	}

	plan := &db_models.FlightPlan{
		UserID:         userID,
		Callsign:       request.Callsign,
		Origin:         strings.ToUpper(request.Origin),
		Destination:    strings.ToUpper(request.Destination),
		Alternates:     pq.StringArray(alternates),
		Route:          request.Route,
		DepartureTime:  request.DepartureTime.UTC(),
		CruiseAltitude: request.CruiseAltitude,
		AircraftType:   request.AircraftType,
	}

	if err := f.planRepo.Insert(ctx, plan); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	return plan.ID, nil
}

func (f *FlightPlanService) GetRecentPlans(ctx context.Context, userID uuid.UUID) ([]response_models.FlightPlanSummary, error) {

	plans, err := f.planRepo.ListRecentByUser(ctx, userID, recentPlanLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FlightPlanSummary, 0, len(plans))
	for _, plan := range plans {
		out = append(out, toPlanSummary(plan))
	}
	return out, nil
}

func toPlanSummary(plan db_models.FlightPlan) response_models.FlightPlanSummary {
	return response_models.FlightPlanSummary{
		ID:             plan.ID.String(),
		Callsign:       plan.Callsign,
		Origin:         plan.Origin,
		Destination:    plan.Destination,
		Alternates:     []string(plan.Alternates),
		Route:          plan.Route,
		DepartureTime:  plan.DepartureTime,
		CruiseAltitude: plan.CruiseAltitude,
		AircraftType:   plan.AircraftType,
		CreatedAt:      plan.CreatedAt,
	}
}
