package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"isp-dashboard/internal/alert"
	"isp-dashboard/pkg/discord"
	"isp-dashboard/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiscord struct {
	discord.IDiscord
	mu   sync.Mutex
	sent []discord.MessageOptions
	err  error
}

func (f *fakeDiscord) SendEmbed(_ context.Context, opts discord.MessageOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, opts)
	return f.err
}

func TestDispatchUrgentTicket(t *testing.T) {
	d := &fakeDiscord{}
	uc := New(log.NewNop(), d)

	err := uc.DispatchUrgentTicket(context.Background(), alert.UrgentTicketInput{
		OrganizationID: "org-1",
		TicketID:       "t1",
		Title:          "Tower down",
		Priority:       "URGENT",
		Description:    strings.Repeat("x", 2000),
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	sent := d.sent[0]
	assert.Equal(t, discord.ColorRed, sent.Color)
	assert.Contains(t, sent.Title, "Tower down")
	for _, f := range sent.Fields {
		assert.LessOrEqual(t, len(f.Value), 1024)
	}

	assert.ErrorIs(t, uc.DispatchUrgentTicket(context.Background(), alert.UrgentTicketInput{}), alert.ErrInvalidInput)
}

func TestMapPriorityToColor(t *testing.T) {
	tests := map[string]int{
		"URGENT": discord.ColorRed,
		"high":   discord.ColorOrange,
		"MEDIUM": discord.ColorYellow,
		"LOW":    discord.ColorBlue,
		"":       discord.ColorGray,
	}
	for in, want := range tests {
		assert.Equal(t, want, mapPriorityToColor(in), in)
	}
}

func TestGoOutlivesRequest(t *testing.T) {
	uc := New(log.NewNop(), &fakeDiscord{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	uc.Go(ctx, "test", func(ctx context.Context) error {
		cancel()
		done <- ctx.Err()
		return errors.New("logged, not returned")
	})

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("background func did not run")
	}
}

func TestNilDiscordDropsAlerts(t *testing.T) {
	uc := New(log.NewNop(), nil)
	assert.NoError(t, uc.DispatchSubscriptionChange(context.Background(), alert.SubscriptionChangeInput{SubscriptionID: "s1", Event: "cancelled"}))
}
