package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/auth"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/user"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/database"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/jwt"
	"github.com/SakshiM24/Employee-Attendance-System/internal/repository/postgresql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db         *database.DB
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:         db,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	email := auth.NormalizeEmail(req.Email)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.userRepo.GetByEmail(txCtx, email); err == nil {
			return user.ErrEmailExists
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return err
		}

		if _, err := s.userRepo.GetByEmployeeCode(txCtx, req.EmployeeCode); err == nil {
			return user.ErrEmployeeCodeExists
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return err
		}

		created, err = s.userRepo.Create(txCtx, user.User{
			ID:           uuid.NewString(),
			EmployeeCode: req.EmployeeCode,
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
			Department:   req.Department,
			Role:         user.Role(req.Role),
		})
		return err
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return s.respondWithToken(created)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, auth.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return s.respondWithToken(u)
}

func (s *AuthServiceImpl) respondWithToken(u user.User) (auth.AuthResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.EmployeeCode, u.Role)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AuthResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		EmployeeCode: u.EmployeeCode,
		Department:   u.Department,
		AccessToken:  token,
		ExpiresAt:    expiresAt,
	}, nil
}
