// Package slack wraps the Slack web API calls spond needs: fetching a single
// message and adding reactions to it.
package slack

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"tableflip.dev/spond/pkg/permalink"
)

// Client talks to the Slack web API with a user token.
type Client struct {
	api *slack.Client
}

// New creates a Client for the given user token.
func New(token string) *Client {
	return &Client{api: slack.New(token)}
}

// Message fetches the text of the single message a permalink points at. The
// history call is pinned to the message's own timestamp on both ends so at
// most one message comes back.
func (c *Client) Message(ctx context.Context, ref permalink.Ref) (string, error) {
	history, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: ref.Channel,
		Latest:    ref.Timestamp,
		Oldest:    ref.Timestamp,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		return "", fmt.Errorf("fetch message: %w", classify(err))
	}
	if len(history.Messages) == 0 {
		return "", fmt.Errorf("%w: %s/%s", ErrNotFound, ref.Channel, ref.Timestamp)
	}
	return history.Messages[0].Text, nil
}

// React adds a single emoji reaction to the message. One attempt, no retry;
// an already_reacted answer comes back as ErrAlreadyReacted for the caller
// to treat as success.
func (c *Client) React(ctx context.Context, ref permalink.Ref, name string) error {
	err := c.api.AddReactionContext(ctx, name, slack.NewRefToMessage(ref.Channel, ref.Timestamp))
	return classify(err)
}
