package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flavour_fusion/internal/model"
	"flavour_fusion/internal/repository"
	"flavour_fusion/internal/utils"
)

// UserService provides registration and login
type UserService interface {
	Register(ctx context.Context, req model.RegisterRequest) error
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type userService struct {
	userRepo       repository.UserRepository
	profilePicture string
	now            func() time.Time
}

// NewUserService creates a new UserService. New accounts get profilePicture as their picture.
func NewUserService(userRepo repository.UserRepository, profilePicture string) UserService {
	return &userService{
		userRepo:       userRepo,
		profilePicture: profilePicture,
		now:            time.Now,
	}
}

// Register validates the request and creates a new user account
func (s *userService) Register(ctx context.Context, req model.RegisterRequest) error {
	if err := validateRegistration(req); err != nil {
		return err
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ProfilePicture: s.profilePicture,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       hashedPassword,
		Admin:          false,
		CreatedAt:      s.now().Format(model.CreatedAtLayout),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user in repository: %w", err)
	}
	return nil
}

func validateRegistration(req model.RegisterRequest) error {
	switch {
	case req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "":
		return newValidationError(MsgAllFieldsRequired)
	case !isValidName(req.FirstName):
		return newValidationError(MsgInvalidFirstName)
	case !isValidName(req.LastName):
		return newValidationError(MsgInvalidLastName)
	case !isValidEmail(req.Email):
		return newValidationError(MsgInvalidEmail)
	case !isStrongPassword(req.Password):
		return newValidationError(MsgWeakPassword)
	}
	return nil
}

// Login checks the credentials and returns the matching user
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, newValidationError(MsgLoginFieldsRequired)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
