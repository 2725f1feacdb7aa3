package admin

import (
	"context"
	"fmt"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

// SeedGrantor is recorded as granted_by for admins loaded from configuration
const SeedGrantor = "config"

// Log messages
const (
	LogMsgAdminGranted = "Admin granted"
	LogMsgAdminRevoked = "Admin revoked"
	LogMsgSeedSkipped  = "Skipping invalid admin id from configuration"
	LogMsgAdminsSeeded = "Admins seeded from configuration"
)

// Service manages the admin role table
type Service interface {
	IsAdmin(ctx context.Context, discordID string) (bool, error)
	Grant(ctx context.Context, discordID, grantedBy string) error
	// Revoke removes an admin. Admins cannot revoke themselves.
	Revoke(ctx context.Context, discordID, revokedBy string) error
	List(ctx context.Context) ([]domain.Admin, error)
	// Seed grants every valid id in ids and returns how many were valid
	Seed(ctx context.Context, ids []string) (int, error)
}

type service struct {
	repo repository.Admin
}

// NewService creates a new admin service
func NewService(repo repository.Admin) Service {
	return &service{repo: repo}
}

func (s *service) IsAdmin(ctx context.Context, discordID string) (bool, error) {
	if discordID == "" {
		return false, nil
	}
	return s.repo.IsAdmin(ctx, discordID)
}

func (s *service) Grant(ctx context.Context, discordID, grantedBy string) error {
	if !domain.IsValidDiscordID(discordID) {
		return domain.ErrInvalidDiscordID
	}
	if err := s.repo.AddAdmin(ctx, discordID, grantedBy); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	logger.FromContext(ctx).Info(LogMsgAdminGranted, "discord_id", discordID, "granted_by", grantedBy)
	return nil
}

func (s *service) Revoke(ctx context.Context, discordID, revokedBy string) error {
	if !domain.IsValidDiscordID(discordID) {
		return domain.ErrInvalidDiscordID
	}
	if discordID == revokedBy {
		return fmt.Errorf("%w: admins cannot revoke themselves", domain.ErrInvalidInput)
	}
	if err := s.repo.RemoveAdmin(ctx, discordID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	logger.FromContext(ctx).Info(LogMsgAdminRevoked, "discord_id", discordID, "revoked_by", revokedBy)
	return nil
}

func (s *service) List(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.repo.ListAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	if admins == nil {
		admins = []domain.Admin{}
	}
	return admins, nil
}

func (s *service) Seed(ctx context.Context, ids []string) (int, error) {
	log := logger.FromContext(ctx)
	seeded := 0
	for _, id := range ids {
		if !domain.IsValidDiscordID(id) {
			log.Warn(LogMsgSeedSkipped, "discord_id", id)
			continue
		}
		if err := s.repo.AddAdmin(ctx, id, SeedGrantor); err != nil {
			return seeded, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
		}
		seeded++
	}
	log.Info(LogMsgAdminsSeeded, "count", seeded)
	return seeded, nil
}
