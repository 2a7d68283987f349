package controllers_fx

import (
	"go.uber.org/fx"

	"wxbrief/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewFlightPlanController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewBriefingController),
	fx.Provide(controllers.NewHealthController))
