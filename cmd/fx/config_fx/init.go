package config_fx

import (
	"go.uber.org/fx"

	"wxbrief/internal/infra"
)

var Module = fx.Provide(
	infra.LoadConfig)
