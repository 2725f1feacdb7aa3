package discord

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/osse101/BroadcasterPro_Go/internal/logger"
)

// OAuth performs the Discord authorization-code login flow
type OAuth struct {
	config     *oauth2.Config
	httpClient *http.Client
}

// NewOAuth creates the login flow for a Discord application.
// httpClient may be nil to use the default transport.
func NewOAuth(clientID, clientSecret, redirectURI string, httpClient *http.Client) *OAuth {
	return &OAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       OAuthScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   OAuthAuthorizeURL,
				TokenURL:  OAuthTokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
	}
}

// AuthCodeURL returns the Discord consent page URL carrying state
func (o *OAuth) AuthCodeURL(state string) string {
	return o.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token and returns the account it belongs to.
// The access token is not kept.
func (o *OAuth) Exchange(ctx context.Context, code string) (*Profile, error) {
	logger.FromContext(ctx).Debug(LogMsgOAuthExchange)

	var opts []Option
	if o.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
		opts = append(opts, WithHTTPClient(o.httpClient))
	}

	token, err := o.config.Exchange(ctx, code)
	if err != nil {
		return nil, upstreamError("exchange oauth code", err)
	}

	client, err := NewBearerClient(token.AccessToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create user client: %w", err)
	}
	return client.Me(ctx)
}
