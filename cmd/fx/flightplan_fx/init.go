package flightplan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wxbrief/internal/repositories"
	"wxbrief/internal/services"
)

var Module = fx.Provide(
	provideFlightPlanRepo, provideFlightPlanService)

func provideFlightPlanRepo(db *gorm.DB) repositories.FlightPlanRepository {
	return repositories.NewFlightPlanRepository(db)
}

func provideFlightPlanService(planRepo repositories.FlightPlanRepository) services.FlightPlanServiceInterface {
	return services.NewFlightPlanService(planRepo)
}
