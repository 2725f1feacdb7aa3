package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/BroadcasterPro_Go/internal/database/generated"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

// isPgError reports whether err is a postgres error with the given SQLSTATE
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// textOrNull maps "" to SQL NULL for optional text columns
func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// timeToPgtimetz converts *time.Time to pgtype.Timestamptz
func timeToPgtimetz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// pgtimetzToPtr converts pgtype.Timestamptz to *time.Time
func pgtimetzToPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func mapUser(row generated.User) *domain.User {
	return &domain.User{
		ID:            row.ID,
		DiscordID:     row.DiscordID,
		Username:      row.Username,
		Discriminator: row.Discriminator,
		Avatar:        row.Avatar,
		Email:         row.Email,
		Credits:       int(row.Credits),
		TotalSpent:    int(row.TotalSpent),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

func mapQueueEntry(row generated.BroadcastQueue) *domain.QueueEntry {
	return &domain.QueueEntry{
		ID:             row.ID,
		UserID:         row.UserID,
		GuildID:        row.GuildID,
		Message:        row.Message,
		TargetType:     domain.TargetFilter(row.TargetType),
		DelaySeconds:   int(row.DelaySeconds),
		EnableMentions: row.EnableMentions,
		BotToken:       row.BotToken,
		CreditsUsed:    int(row.CreditsUsed),
		Status:         domain.QueueStatus(row.Status),
		Progress:       int(row.Progress),
		TotalMembers:   int(row.TotalMembers),
		SentCount:      int(row.SentCount),
		FailedCount:    int(row.FailedCount),
		ErrorMessage:   row.ErrorMessage,
		CreatedAt:      row.CreatedAt.Time,
		StartedAt:      pgtimetzToPtr(row.StartedAt),
		CompletedAt:    pgtimetzToPtr(row.CompletedAt),
	}
}

func mapQueueEntries(rows []generated.BroadcastQueue) []domain.QueueEntry {
	out := make([]domain.QueueEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, *mapQueueEntry(row))
	}
	return out
}

func mapPayment(row generated.PaymentMonitoring) *domain.PaymentRequest {
	return &domain.PaymentRequest{
		ID:             row.ID,
		UserID:         row.UserID,
		ExpectedAmount: int(row.ExpectedAmount),
		Status:         domain.PaymentStatus(row.Status),
		CreatedAt:      row.CreatedAt.Time,
		ExpiresAt:      row.ExpiresAt.Time,
		ReceivedAt:     pgtimetzToPtr(row.ReceivedAt),
	}
}

func mapTransactions(rows []generated.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Transaction{
			ID:          row.ID,
			UserID:      row.UserID,
			Type:        domain.TransactionType(row.Type),
			Amount:      int(row.Amount),
			Description: row.Description,
			ExternalRef: row.ExternalRef.String,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt.Time,
		})
	}
	return out
}

func mapBroadcasts(rows []generated.Broadcast) []domain.Broadcast {
	out := make([]domain.Broadcast, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Broadcast{
			ID:             row.ID,
			UserID:         row.UserID,
			GuildID:        row.GuildID,
			GuildName:      row.GuildName,
			Message:        row.Message,
			TargetType:     domain.TargetFilter(row.TargetType),
			MessagesSent:   int(row.MessagesSent),
			MessagesFailed: int(row.MessagesFailed),
			CreditsUsed:    int(row.CreditsUsed),
			CreatedAt:      row.CreatedAt.Time,
		})
	}
	return out
}
