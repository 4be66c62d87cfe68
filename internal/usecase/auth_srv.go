package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.UserResponse, error)
	SignIn(ctx context.Context, req *request.SignInRequest) (*response.SignInResponse, error)
}

type authService struct {
	repo   *repository.Repository // users and sessions
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
		now:    time.Now,
	}
}

func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign up validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(errs)
	}

	// 2. Email must be unused
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	if existing != nil {
		return nil, utils.ConflictError("email already registered")
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("sign up: %w", err)
	}

	// 4. Save user, the unique index catches a concurrent sign up
	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hashed,
	}
	err = s.repo.User.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, utils.ConflictError("email already registered")
	}
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	s.log.Info("User registered", zap.Int("user_id", user.ID), zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.SignInResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign in validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(errs)
	}

	// 2. Check credentials
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, utils.UnauthorizedError("email or password is incorrect")
	}

	// 3. Issue token and persist the session
	token, err := utils.GenerateToken(s.config.JWT.Secret, user.ID, s.now())
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.Int("user_id", user.ID))
		return nil, fmt.Errorf("sign in: %w", err)
	}

	session := &entity.Session{
		UserID: user.ID,
		Token:  token,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	s.log.Info("User signed in", zap.Int("user_id", user.ID))

	return &response.SignInResponse{
		User:  response.UserToResponse(user),
		Token: token,
	}, nil
}
