package slack

import (
	"errors"
	"fmt"

	"github.com/slack-go/slack"
)

// Sentinel errors for the Slack API failures callers branch on. Everything
// else surfaces as a wrapped API error.
var (
	ErrNoToken        = errors.New("no Slack token: set SLACK_USER_TOKEN or pass --token")
	ErrNotFound       = errors.New("message not found")
	ErrAuth           = errors.New("authentication failed")
	ErrRateLimited    = errors.New("rate limited")
	ErrAlreadyReacted = errors.New("already reacted")
)

// classify maps slack-go errors onto the package sentinels. The web API
// reports failures as bare error strings, so matching is by message.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var rle *slack.RateLimitedError
	if errors.As(err, &rle) {
		return fmt.Errorf("%w: retry after %s", ErrRateLimited, rle.RetryAfter)
	}
	switch err.Error() {
	case "already_reacted":
		return ErrAlreadyReacted
	case "message_not_found", "channel_not_found", "thread_not_found":
		return fmt.Errorf("%w: %s", ErrNotFound, err.Error())
	case "invalid_auth", "not_authed", "account_inactive", "token_revoked", "token_expired", "missing_scope":
		return fmt.Errorf("%w: %s", ErrAuth, err.Error())
	case "ratelimited", "rate_limited":
		return fmt.Errorf("%w: %s", ErrRateLimited, err.Error())
	}
	return err
}
