package handler

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/session"
	"github.com/osse101/BroadcasterPro_Go/internal/user"
)

// OAuthFlow is the Discord authorization-code login
type OAuthFlow interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*discord.Profile, error)
}

// AuthHandler handles Discord login and the session cookie
type AuthHandler struct {
	oauth        OAuthFlow
	sessions     *session.Store
	users        user.Service
	admins       AdminChecker
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new auth handler. oauth may be nil when login is not configured.
func NewAuthHandler(oauth OAuthFlow, sessions *session.Store, users user.Service, admins AdminChecker, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		oauth:        oauth,
		sessions:     sessions,
		users:        users,
		admins:       admins,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

// MeResponse is the logged-in user as shown by the dashboard
type MeResponse struct {
	User    *domain.User `json:"user"`
	Avatar  string       `json:"avatar_url"`
	IsAdmin bool         `json:"is_admin"`
}

// HandleLogin redirects to the Discord consent page
// @Summary Start Discord login
// @Tags auth
// @Success 302
// @Failure 503 {object} ErrorResponse
// @Router /auth/login [get]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		respondError(w, http.StatusServiceUnavailable, ErrMsgOAuthDisabled)
		return
	}
	logger.FromContext(r.Context()).Debug(LogMsgLoginRedirect)
	state := h.sessions.NewState()
	http.SetCookie(w, h.stateCookie(state, int(session.StateTTL.Seconds())))
	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusFound)
}

// HandleCallback completes the login, registers the user and sets the session cookie
// @Summary Discord login callback
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "State issued by /auth/login"
// @Success 302
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /auth/callback [get]
func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		respondError(w, http.StatusServiceUnavailable, ErrMsgOAuthDisabled)
		return
	}
	log := logger.FromContext(r.Context())
	q := r.URL.Query()

	state := q.Get("state")
	http.SetCookie(w, h.stateCookie("", -1))
	if !stateMatchesBrowser(r, state) {
		log.Warn(LogMsgStateMismatch)
		respondServiceError(w, r, "oauth callback", domain.ErrInvalidOAuthState)
		return
	}
	if !h.sessions.ConsumeState(state) {
		respondServiceError(w, r, "oauth callback", domain.ErrInvalidOAuthState)
		return
	}
	if errParam := q.Get("error"); errParam != "" {
		log.Warn(LogMsgLoginFailed, "reason", errParam)
		respondError(w, http.StatusBadRequest, ErrMsgLoginFailed)
		return
	}
	code := q.Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, ErrMsgLoginFailed)
		return
	}

	profile, err := h.oauth.Exchange(r.Context(), code)
	if err != nil {
		log.Warn(LogMsgLoginFailed, "error", err)
		respondServiceError(w, r, "oauth exchange", err)
		return
	}

	u, err := h.users.RegisterUser(r.Context(), domain.User{
		DiscordID:     profile.ID,
		Username:      profile.Username,
		Discriminator: profile.Discriminator,
		Avatar:        profile.Avatar,
		Email:         profile.Email,
	})
	if err != nil {
		respondServiceError(w, r, "register user", err)
		return
	}

	sess := h.sessions.Create(u.DiscordID, u.Username, u.Avatar)
	http.SetCookie(w, h.cookie(sess.Token, int(h.sessionTTL.Seconds())))
	log.Info(LogMsgLoginSucceeded, "discord_id", u.DiscordID, "username", u.Username)
	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleLogout ends the current session
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok {
		h.sessions.Delete(sess.Token)
		logger.FromContext(r.Context()).Info(LogMsgLoggedOut, "discord_id", sess.DiscordID)
	} else if c, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Delete(c.Value)
	}
	http.SetCookie(w, h.cookie("", -1))
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOut})
}

// HandleMe returns the logged-in user
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me [get]
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	u, err := h.users.FindUserByDiscordID(r.Context(), sess.DiscordID)
	if err != nil {
		respondServiceError(w, r, "get current user", err)
		return
	}
	respondJSON(w, http.StatusOK, MeResponse{
		User:    u,
		Avatar:  u.AvatarURL(),
		IsAdmin: isAdmin(r, h.admins, sess),
	})
}

func (h *AuthHandler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// stateCookie is scoped to /auth and lives no longer than the state itself
func (h *AuthHandler) stateCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     session.StateCookieName,
		Value:    value,
		Path:     "/auth",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// stateMatchesBrowser reports whether the callback state is the one issued to this browser
func stateMatchesBrowser(r *http.Request, state string) bool {
	c, err := r.Cookie(session.StateCookieName)
	if err != nil || c.Value == "" || state == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Value), []byte(state)) == 1
}
