package briefing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wxbrief/internal/repositories"
	"wxbrief/internal/services"
)

var Module = fx.Provide(
	provideBriefingRepo, provideWeatherSource, provideBriefingService)

func provideBriefingRepo(db *gorm.DB) repositories.BriefingRepository {
	return repositories.NewBriefingRepository(db)
}

func provideWeatherSource() services.WeatherSource {
	return services.NewStaticWeatherSource()
}

func provideBriefingService(
	planRepo repositories.FlightPlanRepository,
	briefingRepo repositories.BriefingRepository,
	weather services.WeatherSource,
) services.BriefingServiceInterface {
	return services.NewBriefingService(planRepo, briefingRepo, weather)
}
