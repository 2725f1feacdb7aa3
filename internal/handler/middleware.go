package handler

import (
	"context"
	"net/http"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/session"
)

// AdminChecker reports whether a Discord user holds the admin role
type AdminChecker interface {
	IsAdmin(ctx context.Context, discordID string) (bool, error)
}

// RequireAdmin rejects requests whose session user is not an admin
func RequireAdmin(admins AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := requireSession(w, r)
			if !ok {
				return
			}
			isAdmin, err := admins.IsAdmin(r.Context(), sess.DiscordID)
			if err != nil {
				respondServiceError(w, r, "check admin", err)
				return
			}
			if !isAdmin {
				respondServiceError(w, r, "check admin", domain.ErrNotAdmin)
				return
			}
			logger.FromContext(r.Context()).Info(LogMsgAdminAction, "admin_id", sess.DiscordID, "path", r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}

// isAdmin reports whether the session user is an admin. Lookup errors count as not admin.
func isAdmin(r *http.Request, admins AdminChecker, sess session.Session) bool {
	ok, err := admins.IsAdmin(r.Context(), sess.DiscordID)
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgAdminLookupFailed, "discord_id", sess.DiscordID, "error", err)
		return false
	}
	return ok
}
