package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wxbrief/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(infra.AutoMigrate),
)

func provideDB(cfg *infra.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
