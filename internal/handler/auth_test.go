package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/session"
	"github.com/osse101/BroadcasterPro_Go/mocks"
)

type fakeOAuth struct {
	profile *discord.Profile
	err     error
	codes   []string
}

func (f *fakeOAuth) AuthCodeURL(state string) string {
	return "https://discord.com/oauth2/authorize?state=" + url.QueryEscape(state)
}

func (f *fakeOAuth) Exchange(_ context.Context, code string) (*discord.Profile, error) {
	f.codes = append(f.codes, code)
	return f.profile, f.err
}

// callbackRequest is the Discord redirect as sent by the browser that holds stateCookie
func callbackRequest(query, stateCookie string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/auth/callback?"+query, nil)
	if stateCookie != "" {
		req.AddCookie(&http.Cookie{Name: session.StateCookieName, Value: stateCookie})
	}
	return req
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHandleLogin_RedirectsWithState(t *testing.T) {
	store := session.NewStore(10, time.Hour)
	h := NewAuthHandler(&fakeOAuth{}, store, mocks.NewMockUserService(t), mocks.NewMockAdminService(t), time.Hour, false)

	w := httptest.NewRecorder()
	h.HandleLogin(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	require.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	state := loc.Query().Get("state")

	c := findCookie(w.Result().Cookies(), session.StateCookieName)
	require.NotNil(t, c)
	assert.Equal(t, state, c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/auth", c.Path)
	assert.Equal(t, int(session.StateTTL.Seconds()), c.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.True(t, store.ConsumeState(state))
}

func TestHandleLogin_Disabled(t *testing.T) {
	h := NewAuthHandler(nil, session.NewStore(10, time.Hour), mocks.NewMockUserService(t), mocks.NewMockAdminService(t), time.Hour, false)

	w := httptest.NewRecorder()
	h.HandleLogin(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleCallback(t *testing.T) {
	t.Run("creates session and cookie", func(t *testing.T) {
		store := session.NewStore(10, time.Hour)
		oauth := &fakeOAuth{profile: &discord.Profile{ID: testUserID, Username: "alice", Avatar: "abc"}}
		users := mocks.NewMockUserService(t)
		users.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.DiscordID == testUserID && u.Username == "alice"
		})).Return(&domain.User{DiscordID: testUserID, Username: "alice", Avatar: "abc"}, nil)
		h := NewAuthHandler(oauth, store, users, mocks.NewMockAdminService(t), time.Hour, true)

		state := store.NewState()
		w := httptest.NewRecorder()
		h.HandleCallback(w, callbackRequest("code=c0de&state="+state, state))

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, []string{"c0de"}, oauth.codes)
		cookie := findCookie(w.Result().Cookies(), session.CookieName)
		require.NotNil(t, cookie)
		assert.True(t, cookie.Secure)
		assert.True(t, cookie.HttpOnly)
		cleared := findCookie(w.Result().Cookies(), session.StateCookieName)
		require.NotNil(t, cleared)
		assert.Negative(t, cleared.MaxAge)

		sess, ok := store.Get(cookie.Value)
		require.True(t, ok)
		assert.Equal(t, testUserID, sess.DiscordID)
	})

	t.Run("unknown state", func(t *testing.T) {
		oauth := &fakeOAuth{}
		h := NewAuthHandler(oauth, session.NewStore(10, time.Hour), mocks.NewMockUserService(t), mocks.NewMockAdminService(t), time.Hour, false)

		w := httptest.NewRecorder()
		h.HandleCallback(w, callbackRequest("code=c0de&state=forged", "forged"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidState)
		assert.Empty(t, oauth.codes)
	})

	t.Run("state is single use", func(t *testing.T) {
		store := session.NewStore(10, time.Hour)
		oauth := &fakeOAuth{err: &discord.UpstreamError{Op: "exchange oauth code", Status: http.StatusBadRequest, Reason: "invalid_grant"}}
		h := NewAuthHandler(oauth, store, mocks.NewMockUserService(t), mocks.NewMockAdminService(t), time.Hour, false)
		state := store.NewState()

		w := httptest.NewRecorder()
		h.HandleCallback(w, callbackRequest("code=bad&state="+state, state))
		assert.Equal(t, http.StatusBadGateway, w.Code)

		w = httptest.NewRecorder()
		h.HandleCallback(w, callbackRequest("code=bad&state="+state, state))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("state without browser cookie", func(t *testing.T) {
		store := session.NewStore(10, time.Hour)
		oauth := &fakeOAuth{}
		h := NewAuthHandler(oauth, store, mocks.NewMockUserService(t), mocks.NewMockAdminService(t), time.Hour, false)
		state := store.NewState()

		w := httptest.NewRecorder()
		h.HandleCallback(w, callbackRequest("code=c0de&state="+state, ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidState)
		assert.Empty(t, oauth.codes)
	})

	t.Run("state issued to another browser", func(t *testing.T) {
		store := session.NewStore(10, time.Hour)
		oauth := &fakeOAuth{profile: &discord.Profile{ID: testUserID, Username: "mallory"}}
		h := NewAuthHandler(oauth, store, mocks.NewMockUserService(t), mocks.NewMockAdminService(t), time.Hour, false)
		attackerState := store.NewState()
		victimState := store.NewState()

		w := httptest.NewRecorder()
		h.HandleCallback(w, callbackRequest("code=attacker&state="+attackerState, victimState))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, oauth.codes)
		assert.Nil(t, findCookie(w.Result().Cookies(), session.CookieName))
	})

	t.Run("user denied consent", func(t *testing.T) {
		store := session.NewStore(10, time.Hour)
		oauth := &fakeOAuth{}
		h := NewAuthHandler(oauth, store, mocks.NewMockUserService(t), mocks.NewMockAdminService(t), time.Hour, false)

		w := httptest.NewRecorder()
		state := store.NewState()
		h.HandleCallback(w, callbackRequest("error=access_denied&state="+state, state))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, oauth.codes)
	})
}

func TestHandleLogout(t *testing.T) {
	store := session.NewStore(10, time.Hour)
	sess := store.Create(testUserID, "alice", "")
	h := NewAuthHandler(&fakeOAuth{}, store, mocks.NewMockUserService(t), mocks.NewMockAdminService(t), time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req = req.WithContext(session.WithSession(req.Context(), sess))
	w := httptest.NewRecorder()
	h.HandleLogout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	_, ok := store.Get(sess.Token)
	assert.False(t, ok)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestHandleMe(t *testing.T) {
	users := mocks.NewMockUserService(t)
	admins := mocks.NewMockAdminService(t)
	users.On("FindUserByDiscordID", mock.Anything, testAdminID).Return(&domain.User{DiscordID: testAdminID, Username: "root"}, nil)
	admins.On("IsAdmin", mock.Anything, testAdminID).Return(true, nil)
	h := NewAuthHandler(&fakeOAuth{}, session.NewStore(10, time.Hour), users, admins, time.Hour, false)

	w := httptest.NewRecorder()
	h.HandleMe(w, newRequest(t, http.MethodGet, "/api/v1/me", nil, testAdminID))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[MeResponse](t, w)
	assert.True(t, resp.IsAdmin)
	assert.Equal(t, domain.DefaultAvatarURL, resp.Avatar)
}
