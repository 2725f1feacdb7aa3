package payment

import (
	"regexp"
	"strconv"

	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

// ProBot posts transfers in English and Arabic; both capture amount then recipient.
var transferPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)transferred\s+\$?(\d+)\s+credits?\s+to\s+<@!?(\d+)>`),
	regexp.MustCompile(`(?i)تم\s+تحويل\s+\$?(\d+)\s+.*?إلى\s+<@!?(\d+)>`),
}

// senderPattern finds a payer mention written before the transfer verb
var senderPattern = regexp.MustCompile(`(?i)<@!?(\d+)>[^<]*?transferred`)

// ParseTransfer extracts a ProBot transfer from a channel message.
// It returns false when the message is not a transfer by ProBot or the payer cannot be determined.
func ParseTransfer(msg discord.ChannelMessage) (*domain.ProBotTransfer, bool) {
	if msg.AuthorID != domain.ProBotUserID {
		return nil, false
	}

	texts := append([]string{msg.Content}, msg.EmbedDescriptions...)
	for _, text := range texts {
		amount, recipient, ok := matchTransfer(text)
		if !ok {
			continue
		}
		payer := payerOf(text, msg)
		if payer == "" {
			return nil, false
		}
		return &domain.ProBotTransfer{
			MessageID:   msg.ID,
			PayerID:     payer,
			RecipientID: recipient,
			Amount:      amount,
			PostedAt:    msg.Timestamp,
		}, true
	}
	return nil, false
}

func matchTransfer(text string) (int, string, bool) {
	for _, re := range transferPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amount, err := strconv.Atoi(m[1])
		if err != nil || amount <= 0 {
			continue
		}
		return amount, m[2], true
	}
	return 0, "", false
}

func payerOf(text string, msg discord.ChannelMessage) string {
	if msg.ReferencedAuthorID != "" {
		return msg.ReferencedAuthorID
	}
	if msg.InteractionUserID != "" {
		return msg.InteractionUserID
	}
	if m := senderPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
