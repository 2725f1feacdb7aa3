package domain

import (
	"regexp"
	"time"
)

// User is a Discord account known to the application
type User struct {
	ID            int64     `json:"id"`
	DiscordID     string    `json:"discord_id"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	Email         string    `json:"email,omitempty"`
	Credits       int       `json:"credits"`
	TotalSpent    int       `json:"total_spent"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AvatarURL returns the CDN url for the user's avatar, or the default avatar
func (u *User) AvatarURL() string {
	if u.Avatar == "" {
		return DefaultAvatarURL
	}
	return DiscordCDNBase + "/avatars/" + u.DiscordID + "/" + u.Avatar + ".png"
}

// UserStats is the wallet summary shown to a user
type UserStats struct {
	Credits           int `json:"credits"`
	TotalSpent        int `json:"total_spent"`
	TotalBroadcasts   int `json:"total_broadcasts"`
	TotalMessagesSent int `json:"total_messages_sent"`
}

// Admin is a row of the admin role table
type Admin struct {
	DiscordID string    `json:"discord_id"`
	GrantedBy string    `json:"granted_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

var discordIDPattern = regexp.MustCompile(`^\d{17,19}$`)

// IsValidDiscordID reports whether id looks like a Discord snowflake (17-19 digits)
func IsValidDiscordID(id string) bool {
	return discordIDPattern.MatchString(id)
}
