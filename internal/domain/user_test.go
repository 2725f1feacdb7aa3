package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDiscordID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"17 digits", "12345678901234567", true},
		{"18 digits", "123456789012345678", true},
		{"19 digits", "1234567890123456789", true},
		{"16 digits", "1234567890123456", false},
		{"20 digits", "12345678901234567890", false},
		{"letters", "12345678901234567a", false},
		{"empty", "", false},
		{"mention syntax", "<@123456789012345678>", false},
		{"whitespace", " 123456789012345678", false},
		{"negative", "-12345678901234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDiscordID(tt.id))
		})
	}
}

func TestUser_AvatarURL(t *testing.T) {
	u := &User{DiscordID: "123456789012345678"}
	assert.Equal(t, DefaultAvatarURL, u.AvatarURL())

	u.Avatar = "abc"
	assert.Equal(t, "https://cdn.discordapp.com/avatars/123456789012345678/abc.png", u.AvatarURL())
}
