package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wxbrief/internal/infra"
	"wxbrief/internal/repositories"
	"wxbrief/internal/services"
	"wxbrief/pkg/utils"
)

var Module = fx.Provide(
	provideUserRepo, provideTokenIssuer, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideTokenIssuer(cfg *infra.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
}

func provideAccountService(userRepo repositories.UserRepository, tokens *utils.TokenIssuer) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, tokens)
}
