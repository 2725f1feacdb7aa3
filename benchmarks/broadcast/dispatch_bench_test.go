package broadcast_bench

import (
	"context"
	"fmt"
	"testing"

	"github.com/osse101/BroadcasterPro_Go/internal/broadcast"
	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/payment"
)

// --- Stubs (zero-overhead clients for benchmarking) ---

type StubClient struct {
	members []discord.Member
}

func newStubClient(n int) *StubClient {
	members := make([]discord.Member, n)
	for i := range members {
		members[i] = discord.Member{
			ID:       fmt.Sprintf("1%017d", i),
			Username: fmt.Sprintf("member%d", i),
			Bot:      i%10 == 0,
		}
	}
	return &StubClient{members: members}
}

func (s *StubClient) GuildMembers(ctx context.Context, guildID string, limit int) ([]discord.Member, error) {
	return s.members, nil
}
func (s *StubClient) Guild(ctx context.Context, guildID string) (*discord.Guild, error) {
	return &discord.Guild{ID: guildID, Name: "bench"}, nil
}
func (s *StubClient) Guilds(ctx context.Context) ([]discord.Guild, error) { return nil, nil }
func (s *StubClient) Me(ctx context.Context) (*discord.Profile, error) {
	return &discord.Profile{ID: "100000000000000000", Bot: true}, nil
}
func (s *StubClient) CreateDM(ctx context.Context, userID string) (string, error) {
	return "dm-" + userID, nil
}
func (s *StubClient) SendMessage(ctx context.Context, channelID, content string) error { return nil }
func (s *StubClient) ChannelMessages(ctx context.Context, channelID string, limit int) ([]discord.ChannelMessage, error) {
	return nil, nil
}

func BenchmarkDispatch(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("members=%d", size), func(b *testing.B) {
			client := newStubClient(size)
			d := broadcast.NewDispatcher(client, nil)
			req := broadcast.DispatchRequest{
				GuildID:        "300000000000000000",
				Message:        "Hello {user}, news from the server",
				EnableMentions: true,
			}
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := d.Dispatch(ctx, req); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRender(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = broadcast.Render("Hey {user} ({username}), check the announcements!", "123456789012345678", "someone")
	}
}

func BenchmarkParseTransfer(b *testing.B) {
	msg := discord.ChannelMessage{
		ID:       "1",
		AuthorID: domain.ProBotUserID,
		Content:  "<@123456789012345678> transferred 1500 credits to <@223456789012345678>",
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = payment.ParseTransfer(msg)
	}
}
