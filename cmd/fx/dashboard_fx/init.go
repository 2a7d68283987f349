package dashboard_fx

import (
	"go.uber.org/fx"

	"wxbrief/internal/services"
)

var Module = fx.Provide(
	provideDashboardService)

func provideDashboardService(plans services.FlightPlanServiceInterface) services.DashboardService {
	return services.NewDashboardService(plans)
}
