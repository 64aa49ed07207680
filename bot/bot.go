// Package bot connects to Slack over Socket Mode and routes the events it
// receives to registered handlers, one event at a time.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack/socketmode"

	"github.com/gobridge/autoresponder/metrics"
)

type (
	// Handler handles one event.
	Handler interface {
		Handle(ctx context.Context, e Event, r Responder)
	}

	// HandlerFunc adapts a function to a Handler.
	HandlerFunc func(ctx context.Context, e Event, r Responder)

	// Bot structure
	Bot struct {
		userID string
		botID  string

		api      SlackAPI
		acker    Acker
		events   <-chan socketmode.Event
		run      func(ctx context.Context) error
		log      *slog.Logger
		handlers map[Route]Handler
	}
)

// Handle calls f(ctx, e, r).
func (f HandlerFunc) Handle(ctx context.Context, e Event, r Responder) {
	f(ctx, e, r)
}

// New creates a bot using api for Web API calls and client for the Socket
// Mode connection.
func New(api SlackAPI, client *socketmode.Client, log *slog.Logger) *Bot {
	return &Bot{
		api:      api,
		acker:    client,
		events:   client.Events,
		run:      client.RunContext,
		log:      log,
		handlers: make(map[Route]Handler),
	}
}

// Init must be called before Run in order to learn the bot's own identity.
func (b *Bot) Init(ctx context.Context) error {
	b.log.Info("determining bot identity")
	resp, err := b.api.AuthTestContext(ctx)
	if err != nil {
		return fmt.Errorf("auth test: %w", err)
	}
	b.userID = resp.UserID
	b.botID = resp.BotID
	b.log.Info("initialized", "user", resp.User, "user_id", b.userID, "bot_id", b.botID, "team", resp.Team)
	return nil
}

// Handle registers h for route, replacing any previous handler.
func (b *Bot) Handle(route Route, h Handler) {
	b.handlers[route] = h
}

// OnMessage registers h for message events.
func (b *Bot) OnMessage(h Handler) {
	b.Handle(Route{Kind: KindMessage}, h)
}

// OnHomeOpened registers h for Home tab opens.
func (b *Bot) OnHomeOpened(h Handler) {
	b.Handle(Route{Kind: KindHomeOpened}, h)
}

// OnAction registers h for block actions with actionID.
func (b *Bot) OnAction(actionID string, h Handler) {
	b.Handle(Route{Kind: KindBlockAction, ID: actionID}, h)
}

// OnSubmission registers h for submissions of views with callbackID.
func (b *Bot) OnSubmission(callbackID string, h Handler) {
	b.Handle(Route{Kind: KindViewSubmission, ID: callbackID}, h)
}

// Run connects to Slack and dispatches events until ctx is done or the
// connection fails.
func (b *Bot) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- b.run(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			if err == nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("socket mode: %w", err)
		case evt, ok := <-b.events:
			if !ok {
				return nil
			}
			b.Dispatch(ctx, evt)
		}
	}
}

// Dispatch acknowledges evt and calls the handler registered for it.
func (b *Bot) Dispatch(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		b.log.Info("connecting to slack with socket mode")
	case socketmode.EventTypeConnected:
		b.log.Info("connected to slack with socket mode")
	case socketmode.EventTypeConnectionError:
		b.log.Warn("socket mode connection failed, retrying", "data", evt.Data)
	case socketmode.EventTypeInvalidAuth:
		b.log.Error("socket mode authentication rejected")

	case socketmode.EventTypeEventsAPI:
		r := b.newResponder(evt)
		// Events API envelopes carry no response payload.
		r.Ack()

		e, err := parseEventsAPI(evt.Data)
		if err != nil {
			b.log.Warn("dropping event", "error", err)
			return
		}
		if e == nil {
			return
		}
		if m, ok := e.(MessagePosted); ok {
			m.Self = b.isSelf(m)
			r.channel = m.Channel
			r.thread = m.ThreadAnchor()
			e = m
		}
		b.route(ctx, e, r)

	case socketmode.EventTypeInteractive:
		r := b.newResponder(evt)
		defer r.Ack()

		e, err := parseInteractive(evt.Data)
		if err != nil {
			b.log.Warn("dropping interaction", "error", err)
			return
		}
		if e == nil {
			return
		}
		b.route(ctx, e, r)

	default:
		b.log.Debug("ignoring socket mode event", "type", evt.Type)
	}
}

func (b *Bot) route(ctx context.Context, e Event, r *responder) {
	metrics.RecordEvent(e.Kind().String())

	h, ok := b.handlers[e.route()]
	if !ok {
		b.log.Debug("no handler registered", "kind", e.Kind(), "id", e.route().ID)
		return
	}
	h.Handle(ctx, e, r)
}

func (b *Bot) newResponder(evt socketmode.Event) *responder {
	return &responder{
		api:   b.api,
		acker: b.acker,
		req:   evt.Request,
	}
}

func (b *Bot) isSelf(m MessagePosted) bool {
	return (b.userID != "" && m.User == b.userID) || (b.botID != "" && m.BotID == b.botID)
}
