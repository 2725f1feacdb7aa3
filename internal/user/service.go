package user

import (
	"context"
	"fmt"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

// Service defines the interface for user account operations
type Service interface {
	// RegisterUser creates the account on first login and refreshes its profile afterwards
	RegisterUser(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error)
	GetStats(ctx context.Context, discordID string) (*domain.UserStats, error)
}

type service struct {
	repo repository.User
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

func (s *service) RegisterUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if !domain.IsValidDiscordID(user.DiscordID) {
		return nil, domain.ErrInvalidDiscordID
	}
	if user.Username == "" {
		user.Username = domain.UnknownUsername
	}

	saved, err := s.repo.UpsertUser(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRegisterUser, err)
	}
	logger.FromContext(ctx).Info(LogMsgUserRegistered, "discord_id", saved.DiscordID, "username", saved.Username)
	return saved, nil
}

func (s *service) FindUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	if !domain.IsValidDiscordID(discordID) {
		return nil, domain.ErrInvalidDiscordID
	}
	u, err := s.repo.GetUserByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFindUser, err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *service) GetStats(ctx context.Context, discordID string) (*domain.UserStats, error) {
	if !domain.IsValidDiscordID(discordID) {
		return nil, domain.ErrInvalidDiscordID
	}
	return s.repo.GetUserStats(ctx, discordID)
}
