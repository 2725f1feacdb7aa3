package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osse101/BroadcasterPro_Go/internal/database/sqlitegen"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

type adminRepository struct {
	q *sqlitegen.Queries
}

// NewAdminRepository creates a new SQLite admin role repository
func NewAdminRepository(db *sql.DB) repository.Admin {
	return &adminRepository{q: sqlitegen.New(db)}
}

func (r *adminRepository) IsAdmin(ctx context.Context, discordID string) (bool, error) {
	n, err := r.q.CountAdmin(ctx, discordID)
	if err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}
	return n > 0, nil
}

func (r *adminRepository) AddAdmin(ctx context.Context, discordID, grantedBy string) error {
	if err := r.q.AddAdmin(ctx, sqlitegen.AddAdminParams{DiscordID: discordID, GrantedBy: grantedBy}); err != nil {
		return fmt.Errorf("failed to add admin: %w", err)
	}
	return nil
}

func (r *adminRepository) RemoveAdmin(ctx context.Context, discordID string) error {
	if err := r.q.RemoveAdmin(ctx, discordID); err != nil {
		return fmt.Errorf("failed to remove admin: %w", err)
	}
	return nil
}

func (r *adminRepository) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.q.ListAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	out := make([]domain.Admin, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Admin{
			DiscordID: row.DiscordID,
			GrantedBy: row.GrantedBy,
			CreatedAt: row.CreatedAt.Time,
		})
	}
	return out, nil
}
