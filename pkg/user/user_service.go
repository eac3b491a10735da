package user

import (
	"context"
	"errors"
	"log/slog"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/entities"
	"smart-pantry-backend/internal/utils/mailing"
	"smart-pantry-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error)
		Me(ctx context.Context, username string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailSender     mailing.Sender
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailSender mailing.Sender) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailSender:     mailSender,
	}
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error) {
	if _, err := s.userRepository.FindByUsername(ctx, req.Username); err == nil {
		return domain.UserRegisterResponse{}, domain.ErrUsernameTaken
	}
	if _, err := s.userRepository.FindByEmail(ctx, req.Email); err == nil {
		return domain.UserRegisterResponse{}, domain.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserRegisterResponse{}, err
	}

	newUser := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := s.userRepository.Create(ctx, newUser); err != nil {
		return domain.UserRegisterResponse{}, err
	}

	// Welcome mail must not block or fail registration.
	go func(email string, username string) {
		if err := s.mailSender.Send(email, mailing.WelcomeSubject, mailing.WelcomeBody(username)); err != nil {
			slog.Warn("failed to send welcome email", "user", username, "error", err)
		}
	}(newUser.Email, newUser.Username)

	return domain.UserRegisterResponse{
		ID:       newUser.ID.String(),
		Username: newUser.Username,
		Email:    newUser.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error) {
	found, err := s.userRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			return domain.UserLoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.UserLoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(req.Password)); err != nil {
		return domain.UserLoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(found.ID.String(), found.Username)

	return domain.UserLoginResponse{
		Token:    token,
		Username: found.Username,
	}, nil
}

func (s *userService) Me(ctx context.Context, username string) (domain.UserResponse, error) {
	found, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:       found.ID.String(),
		Username: found.Username,
		Email:    found.Email,
	}, nil
}
