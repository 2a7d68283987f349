package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"wxbrief/cmd/fx/account_fx"
	"wxbrief/cmd/fx/briefing_fx"
	"wxbrief/cmd/fx/config_fx"
	"wxbrief/cmd/fx/controllers_fx"
	"wxbrief/cmd/fx/dashboard_fx"
	"wxbrief/cmd/fx/db_fx"
	"wxbrief/cmd/fx/flightplan_fx"
	"wxbrief/internal/api/controllers"
	"wxbrief/internal/infra"
	"wxbrief/internal/repositories"
	"wxbrief/pkg/middleware"
	"wxbrief/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		flightplan_fx.Module,
		briefing_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	tokens *utils.TokenIssuer,
	userRepo repositories.UserRepository,
	authController *controllers.AuthController,
	flightPlanController *controllers.FlightPlanController,
	dashboardController *controllers.DashboardController,
	briefingController *controllers.BriefingController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))

	r.GET("/", healthController.Root)
	r.GET("/test", healthController.TestStore)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)

	protected := r.Group("/")
	protected.Use(middleware.AuthRequired(tokens, userRepo))
	protected.POST("/flightplan", flightPlanController.CreateFlightPlan)
	protected.GET("/dashboard", dashboardController.GetDashboard)
	protected.POST("/brief", briefingController.GenerateBriefing)

	return r
}
