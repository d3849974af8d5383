package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/SscSPs/fx_settlement/internal/dto"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users", "limit", limit, "offset", offset)
		return nil, fmt.Errorf("failed to list users in service: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// UpsertUser stores the actor's display name. The id always comes from the token subject,
// so one actor can only ever name itself.
func (s *userService) UpsertUser(ctx context.Context, userID string, req dto.UpsertUserRequest) (*domain.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.NewValidationError("user id is required")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name must not be blank")
	}

	user, err := s.userRepo.SaveUser(ctx, domain.User{
		UserID:    userID,
		Name:      name,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save user", "user_id", userID)
		return nil, fmt.Errorf("failed to save user %s: %w", userID, err)
	}

	s.LogInfo(ctx, "User details saved", "user_id", userID)
	return user, nil
}
