// Package sqlite implements the repository interfaces on database/sql with
// the mattn/go-sqlite3 driver, for single-node deployments.
package sqlite

import (
	"database/sql"

	"github.com/osse101/BroadcasterPro_Go/internal/database/sqlitegen"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func mapUser(row sqlitegen.User) *domain.User {
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

func mapQueueEntry(row sqlitegen.BroadcastQueue) *domain.QueueEntry {
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
		StartedAt:      row.StartedAt.Ptr(),
		CompletedAt:    row.CompletedAt.Ptr(),
	}
}

func mapQueueEntries(rows []sqlitegen.BroadcastQueue) []domain.QueueEntry {
	out := make([]domain.QueueEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, *mapQueueEntry(row))
	}
	return out
}

func mapPayment(row sqlitegen.PaymentMonitoring) *domain.PaymentRequest {
	return &domain.PaymentRequest{
		ID:             row.ID,
		UserID:         row.UserID,
		ExpectedAmount: int(row.ExpectedAmount),
		Status:         domain.PaymentStatus(row.Status),
		CreatedAt:      row.CreatedAt.Time,
		ExpiresAt:      row.ExpiresAt.Time,
		ReceivedAt:     row.ReceivedAt.Ptr(),
	}
}

func mapTransactions(rows []sqlitegen.Transaction) []domain.Transaction {
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

func mapBroadcasts(rows []sqlitegen.Broadcast) []domain.Broadcast {
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
