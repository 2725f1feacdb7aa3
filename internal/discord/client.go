package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

// Client is the subset of the Discord REST API used by the application
type Client interface {
	// GuildMembers returns up to limit members of a guild, bots included
	GuildMembers(ctx context.Context, guildID string, limit int) ([]Member, error)
	Guild(ctx context.Context, guildID string) (*Guild, error)
	Guilds(ctx context.Context) ([]Guild, error)
	Me(ctx context.Context) (*Profile, error)
	// CreateDM opens (or reuses) the DM channel with a user and returns its id
	CreateDM(ctx context.Context, userID string) (string, error)
	SendMessage(ctx context.Context, channelID, content string) error
	ChannelMessages(ctx context.Context, channelID string, limit int) ([]ChannelMessage, error)
}

// Factory builds a Client for a bot token
type Factory func(botToken string) (Client, error)

// Option configures a REST client
type Option func(*discordgo.Session)

// WithHTTPClient replaces the HTTP client used for REST calls
func WithHTTPClient(c *http.Client) Option {
	return func(s *discordgo.Session) {
		s.Client = c
	}
}

// restClient implements Client on a discordgo session without opening the gateway
type restClient struct {
	session *discordgo.Session
}

// NewBotClient creates a Client authenticated with a bot token
func NewBotClient(botToken string, opts ...Option) (Client, error) {
	return newClient("Bot "+botToken, opts...)
}

// NewBearerClient creates a Client authenticated with a user's OAuth access token
func NewBearerClient(accessToken string, opts ...Option) (Client, error) {
	return newClient("Bearer "+accessToken, opts...)
}

// NewFactory returns a Factory that applies opts to every client
func NewFactory(opts ...Option) Factory {
	return func(botToken string) (Client, error) {
		return NewBotClient(botToken, opts...)
	}
}

func newClient(auth string, opts ...Option) (*restClient, error) {
	s, err := discordgo.New(auth)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	// Failed calls surface to the caller; nothing is retried here.
	s.MaxRestRetries = 0
	s.ShouldRetryOnRateLimit = false
	s.Client = &http.Client{Timeout: RequestTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return &restClient{session: s}, nil
}

func (c *restClient) GuildMembers(ctx context.Context, guildID string, limit int) ([]Member, error) {
	members, err := c.session.GuildMembers(guildID, "", limit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, upstreamError("list guild members", err)
	}

	out := make([]Member, 0, len(members))
	for _, m := range members {
		if m.User == nil {
			continue
		}
		out = append(out, Member{
			ID:         m.User.ID,
			Username:   m.User.Username,
			GlobalName: m.User.GlobalName,
			Avatar:     m.User.Avatar,
			Bot:        m.User.Bot,
		})
	}
	return out, nil
}

func (c *restClient) Guild(ctx context.Context, guildID string) (*Guild, error) {
	g, err := c.session.GuildWithCounts(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, upstreamError("get guild", err)
	}
	count := g.ApproximateMemberCount
	if count == 0 {
		count = g.MemberCount
	}
	return &Guild{ID: g.ID, Name: g.Name, Icon: g.Icon, MemberCount: count}, nil
}

func (c *restClient) Guilds(ctx context.Context) ([]Guild, error) {
	guilds, err := c.session.UserGuilds(MaxUserGuilds, "", "", true, discordgo.WithContext(ctx))
	if err != nil {
		return nil, upstreamError("list guilds", err)
	}
	out := make([]Guild, 0, len(guilds))
	for _, g := range guilds {
		out = append(out, Guild{
			ID:          g.ID,
			Name:        g.Name,
			Icon:        g.Icon,
			Owner:       g.Owner,
			MemberCount: g.ApproximateMemberCount,
		})
	}
	return out, nil
}

func (c *restClient) Me(ctx context.Context) (*Profile, error) {
	u, err := c.session.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		return nil, upstreamError("get current user", err)
	}
	return &Profile{
		ID:            u.ID,
		Username:      u.Username,
		Discriminator: u.Discriminator,
		Avatar:        u.Avatar,
		Email:         u.Email,
		Bot:           u.Bot,
	}, nil
}

func (c *restClient) CreateDM(ctx context.Context, userID string) (string, error) {
	ch, err := c.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", upstreamError("create DM channel", err)
	}
	return ch.ID, nil
}

func (c *restClient) SendMessage(ctx context.Context, channelID, content string) error {
	if _, err := c.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		return upstreamError("send message", err)
	}
	return nil
}

func (c *restClient) ChannelMessages(ctx context.Context, channelID string, limit int) ([]ChannelMessage, error) {
	msgs, err := c.session.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, upstreamError("read channel messages", err)
	}

	out := make([]ChannelMessage, 0, len(msgs))
	for _, m := range msgs {
		cm := ChannelMessage{ID: m.ID, Content: m.Content, Timestamp: m.Timestamp}
		if m.Author != nil {
			cm.AuthorID = m.Author.ID
		}
		for _, e := range m.Embeds {
			if e != nil && e.Description != "" {
				cm.EmbedDescriptions = append(cm.EmbedDescriptions, e.Description)
			}
		}
		if m.ReferencedMessage != nil && m.ReferencedMessage.Author != nil {
			cm.ReferencedAuthorID = m.ReferencedMessage.Author.ID
		}
		if m.Interaction != nil && m.Interaction.User != nil {
			cm.InteractionUserID = m.Interaction.User.ID
		}
		out = append(out, cm)
	}
	return out, nil
}

// UpstreamError is a failed Discord REST call. It matches domain.ErrUpstream.
type UpstreamError struct {
	Op     string
	Status int
	Reason string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s: %s", domain.ErrMsgUpstream, e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: %s: HTTP %d: %s", domain.ErrMsgUpstream, e.Op, e.Status, e.Reason)
}

func (e *UpstreamError) Unwrap() error {
	return domain.ErrUpstream
}

func upstreamError(op string, err error) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		reason := http.StatusText(restErr.Response.StatusCode)
		if restErr.Message != nil && restErr.Message.Message != "" {
			reason = restErr.Message.Message
		}
		return &UpstreamError{Op: op, Status: restErr.Response.StatusCode, Reason: reason}
	}
	return &UpstreamError{Op: op, Reason: err.Error()}
}

// StatusCode returns the HTTP status of an upstream failure, or 0
func StatusCode(err error) int {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Status
	}
	return 0
}
