package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"wxbrief/internal/models/db_models"
	"wxbrief/internal/models/response_models"
	"wxbrief/internal/repositories"
	"wxbrief/pkg/utils"
)

type BriefingServiceInterface interface {
	GenerateBriefing(ctx context.Context, user *db_models.User, flightPlanID string) (*response_models.BriefingResponse, error)
}

type BriefingService struct {
	planRepo     repositories.FlightPlanRepository
	briefingRepo repositories.BriefingRepository
	weather      WeatherSource
}

func NewBriefingService(
	planRepo repositories.FlightPlanRepository,
	briefingRepo repositories.BriefingRepository,
	weather WeatherSource,
) BriefingServiceInterface {
	return &BriefingService{
		planRepo:     planRepo,
		briefingRepo: briefingRepo,
		weather:      weather,
	}
}

// GenerateBriefing builds and stores a briefing for one of the caller's
// flight plans. The lookup is scoped to the caller, so another user's plan id
// behaves exactly like a nonexistent one.
func (b *BriefingService) GenerateBriefing(ctx context.Context, user *db_models.User, flightPlanID string) (*response_models.BriefingResponse, error) {

	planID, err := uuid.Parse(flightPlanID)
	if err != nil {
		return nil, utils.ErrFlightPlanNotFound
	}

	plan, err := b.planRepo.FindByIDForUser(ctx, planID, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrFlightPlanNotFound
	}

	report, err := b.weather.GetReport(ctx, plan)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	briefing := &db_models.Briefing{
		UserID:       user.ID,
		FlightPlanID: plan.ID,
		Summary:      report.Summary,
		RiskLevel:    report.RiskLevel,
	}

	if err := marshalReportPayloads(briefing, report); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := b.briefingRepo.Insert(ctx, briefing); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.BriefingResponse{
		ID:      briefing.ID.String(),
		Summary: briefing.Summary,
		Risk:    string(briefing.RiskLevel),
	}, nil
}

func marshalReportPayloads(briefing *db_models.Briefing, report *WeatherReport) error {
	fields := []struct {
		dst *datatypes.JSON
		src interface{}
	}{
		{&briefing.Hazards, report.Hazards},
		{&briefing.Metar, report.Metar},
		{&briefing.Taf, report.Taf},
		{&briefing.Notams, report.Notams},
		{&briefing.Pireps, report.Pireps},
		{&briefing.Alternates, report.Alternates},
		{&briefing.Overlays, report.Overlays},
	}
	for _, f := range fields {
		raw, err := json.Marshal(f.src)
		if err != nil {
			return err
		}
		*f.dst = datatypes.JSON(raw)
	}
	return nil
}
