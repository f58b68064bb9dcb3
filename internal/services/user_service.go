package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshua-takyi/staywise/internal/auth"
	"github.com/joshua-takyi/staywise/internal/helpers"
	"github.com/joshua-takyi/staywise/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	userRepo models.UserRepo
	tokens   *auth.Service
}

func NewUserService(userRepo models.UserRepo, tokens *auth.Service) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register stores a new user with a hashed password and returns a signed
// session token. A duplicate email fails with models.ErrEmailRegistered.
func (us *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(name, "required"); err != nil {
		return "", fmt.Errorf("name is required")
	}
	if err := models.Validate.Var(password, "required,min=6"); err != nil {
		return "", fmt.Errorf("password must be at least 6 characters")
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}

	created, err := us.userRepo.CreateUser(ctx, user)
	if err != nil {
		return "", err
	}

	return us.tokens.Issue(created.ID.Hex(), created.Role)
}

// Authenticate verifies the credentials and returns a signed session token.
// Unknown email and wrong password both fail with the same error so the
// response never reveals which part was wrong.
func (us *UserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if !helpers.CheckPassword(password, user.Password) {
		return "", models.ErrInvalidCredentials
	}

	return us.tokens.Issue(user.ID.Hex(), user.Role)
}

func (us *UserService) GetUser(ctx context.Context, userId string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, models.ErrUserNotFound
	}

	return us.userRepo.GetUserByID(ctx, id)
}
