package services

import (
	"context"

	"wxbrief/internal/models/db_models"
	"wxbrief/internal/models/request_models"
	"wxbrief/internal/repositories"
	"wxbrief/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	tokens   *utils.TokenIssuer
}

func NewAccountService(userRepo repositories.UserRepository, tokens *utils.TokenIssuer) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates the user and hands back a freshly issued token, so the
// caller is logged in immediately after signup.
func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (string, error) {

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return "", utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return "", utils.ErrDatabaseError
	}

	return a.tokens.Issue(newUser.Email)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	// Unknown email and wrong password are indistinguishable to the caller
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return a.tokens.Issue(user.Email)
}
