package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

// ErrNoConversation is returned by Reply when the event being handled was
// not posted in a conversation.
var ErrNoConversation = errors.New("event has no conversation to reply to")

// Responder performs the outbound side effects of handling one event.
type Responder interface {
	// Ack acknowledges the inbound envelope. Only the first call has an
	// effect; payload is sent back to Slack as the response, for example a
	// view submission response carrying validation errors.
	Ack(payload ...interface{})
	// Reply posts text in the thread of the message being handled.
	Reply(ctx context.Context, text string) error
	// PublishHome publishes view as userID's Home tab.
	PublishHome(ctx context.Context, userID string, view slack.HomeTabViewRequest) error
	// OpenModal opens view for the interaction identified by triggerID.
	OpenModal(ctx context.Context, triggerID string, view slack.ModalViewRequest) error
}

type responder struct {
	api   SlackAPI
	acker Acker
	req   *socketmode.Request
	acked bool

	channel string
	thread  string
}

func (r *responder) Ack(payload ...interface{}) {
	if r.acked {
		return
	}
	r.acked = true
	if r.req == nil {
		return
	}
	r.acker.Ack(*r.req, payload...)
}

func (r *responder) Reply(ctx context.Context, text string) error {
	if r.channel == "" {
		return ErrNoConversation
	}
	_, _, err := r.api.PostMessageContext(ctx, r.channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionTS(r.thread),
	)
	if err != nil {
		return fmt.Errorf("posting reply in %s: %w", r.channel, err)
	}
	return nil
}

func (r *responder) PublishHome(ctx context.Context, userID string, view slack.HomeTabViewRequest) error {
	_, err := r.api.PublishViewContext(ctx, userID, view, "")
	if err != nil {
		return fmt.Errorf("publishing home view for %s: %w", userID, err)
	}
	return nil
}

func (r *responder) OpenModal(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	_, err := r.api.OpenViewContext(ctx, triggerID, view)
	if err != nil {
		return fmt.Errorf("opening modal: %w", err)
	}
	return nil
}
