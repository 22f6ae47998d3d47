package service

import (
	"context"
	"fmt"
	"strings"

	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type UserService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewUserService(repo domain.Repository, logger *zerolog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if strings.TrimSpace(user.Email) == "" || !strings.Contains(user.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrBadRequest)
	}

	existing, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn().Str("email", user.Email).Msg("email already registered")
		return nil, fmt.Errorf("%w: email %s is already in use", ErrConflict, user.Email)
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, userID int64, patch *models.UserPatch) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if strings.TrimSpace(*patch.Email) == "" || !strings.Contains(*patch.Email, "@") {
			return nil, fmt.Errorf("%w: a valid email is required", ErrBadRequest)
		}
		existing, err := s.repo.GetUserByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.logger.Warn().Str("email", *patch.Email).Msg("email already registered")
			return nil, fmt.Errorf("%w: email %s is already in use", ErrConflict, *patch.Email)
		}
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}

	updated, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Msg("user updated")
	return updated, nil
}

func (s *UserService) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userID int64) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", userID).Msg("user deleted")
	return nil
}

func (s *UserService) FindAll(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}
