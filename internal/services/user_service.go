package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/google/uuid"
)

type userService struct {
	uow      repositories.UnitOfWorkInterface
	userRepo repositories.UserRepositoryInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

func NewUserService(
	uow repositories.UnitOfWorkInterface,
	userRepo repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &userService{
		uow:      uow,
		userRepo: userRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// EnsureUser returns the local user for the token subject, creating it from
// the profile claims the first time the subject is seen. Two first requests
// racing on the same subject both end up with the row that won the insert.
// The email claim is optional and is never used to match an existing user.
func (s *userService) EnsureUser(ctx context.Context, claims *models.IdentityClaims) (*models.User, error) {
	if claims == nil || strings.TrimSpace(claims.Subject) == "" {
		return nil, models.ErrMissingSubject
	}

	user, err := s.userRepo.GetByClerkUserID(ctx, claims.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	email := strings.TrimSpace(claims.Email)
	if email != "" && !models.ValidEmail(email) {
		s.logger.WarnContext(ctx, "ignoring malformed email claim", slog.String("subject", claims.Subject))
		email = ""
	}

	user = &models.User{
		ClerkUserID: claims.Subject,
		Email:       email,
		Name:        strings.TrimSpace(claims.Name),
		ImageURL:    claims.ImageURL,
	}

	err = s.uow.Do(ctx, func(store repositories.Store) error {
		if err := store.Users().Create(ctx, user); err != nil {
			return err
		}
		return recordAudit(ctx, store.AuditLogs(), newAuditLog(ctx, user.ID,
			models.AuditActionUserCreated, models.AuditResourceUser, user.ID,
			models.JSONBMap{"email": user.Email}))
	})
	if errors.Is(err, repositories.ErrUserAlreadyExists) {
		existing, lookupErr := s.userRepo.GetByClerkUserID(ctx, claims.Subject)
		if lookupErr != nil {
			return nil, fmt.Errorf("failed to load concurrently created user: %w", lookupErr)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user provisioned",
		slog.String("user_id", user.ID.String()),
		slog.String("subject", user.ClerkUserID),
	)
	s.metrics.IncrementCounter("user.provisioned", nil)

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
