package discord

import "time"

// Member is a guild member as needed for broadcasting
type Member struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	Bot        bool   `json:"bot"`
}

// Guild is a guild visible to the bot or a user
type Guild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Owner       bool   `json:"owner,omitempty"`
	MemberCount int    `json:"member_count"`
}

// Profile is the account behind a bot token or an OAuth access token
type Profile struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	Email         string `json:"email,omitempty"`
	Bot           bool   `json:"bot"`
}

// ChannelMessage is a text channel message reduced to what payment scanning reads
type ChannelMessage struct {
	ID                 string
	AuthorID           string
	Content            string
	EmbedDescriptions  []string
	ReferencedAuthorID string
	InteractionUserID  string
	Timestamp          time.Time
}
