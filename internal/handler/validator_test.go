package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type snowflakeRequest struct {
	UserID string `json:"user_id" validate:"required,snowflake"`
	Target string `json:"target_type" validate:"omitempty,target_filter"`
	Amount int    `json:"amount" validate:"min=1,max=1000"`
}

func TestValidateSnowflake(t *testing.T) {
	InitValidator()

	tests := []struct {
		name    string
		req     snowflakeRequest
		wantErr map[string]string
	}{
		{"17 digits", snowflakeRequest{UserID: "12345678901234567", Amount: 1}, nil},
		{"19 digits", snowflakeRequest{UserID: "1234567890123456789", Amount: 1}, nil},
		{"16 digits", snowflakeRequest{UserID: "1234567890123456", Amount: 1}, map[string]string{"user_id": "Must be a Discord ID (17-19 digits)"}},
		{"20 digits", snowflakeRequest{UserID: "12345678901234567890", Amount: 1}, map[string]string{"user_id": "Must be a Discord ID (17-19 digits)"}},
		{"letters", snowflakeRequest{UserID: "12345678901234567a", Amount: 1}, map[string]string{"user_id": "Must be a Discord ID (17-19 digits)"}},
		{"missing", snowflakeRequest{Amount: 1}, map[string]string{"user_id": "This field is required"}},
		{"bad target", snowflakeRequest{UserID: "12345678901234567", Target: "bots", Amount: 1}, map[string]string{"target_type": "Must be one of all, online, offline"}},
		{"amount too large", snowflakeRequest{UserID: "12345678901234567", Amount: 1001}, map[string]string{"amount": "Must be at most 1000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().ValidateStruct(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, FormatValidationError(err))
		})
	}
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
