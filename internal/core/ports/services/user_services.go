package services

import (
	"context"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpsertUser records the display details of an actor authenticated elsewhere.
	UpsertUser(ctx context.Context, userID string, req dto.UpsertUserRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
