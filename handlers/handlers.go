// Package handlers implements the bot's reactions to Slack events: keyword
// replies to messages and the Home tab configuration flow.
package handlers

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/gobridge/autoresponder/bot"
	"github.com/gobridge/autoresponder/metrics"
	"github.com/gobridge/autoresponder/responses"
	"github.com/gobridge/autoresponder/views"
)

// postedSubtypes are the message subtypes that represent a newly posted
// message. Edits, deletions, joins and the like are ignored.
var postedSubtypes = map[string]bool{
	"":                 true,
	"bot_message":      true,
	"thread_broadcast": true,
	"file_share":       true,
}

// Register wires every handler onto b.
func Register(b *bot.Bot, s responses.Store, log *slog.Logger) {
	b.OnMessage(WhenPosted(KeywordReply(s, log)))
	b.OnHomeOpened(HomeTab(s, log))
	b.OnAction(views.ActionSave, OpenEditor(log))
	b.OnAction(views.ActionDelete, DeleteResponse(s, log))
	b.OnSubmission(views.CallbackSaving, SaveResponse(s, log))
}

// WhenPosted calls h for newly posted messages not written by the bot itself.
func WhenPosted(h bot.Handler) bot.Handler {
	return bot.HandlerFunc(func(ctx context.Context, e bot.Event, r bot.Responder) {
		m, ok := e.(bot.MessagePosted)
		if !ok || m.Self || !postedSubtypes[m.SubType] {
			return
		}
		h.Handle(ctx, m, r)
	})
}

// KeywordReply answers in thread with the response of the first configured
// keyword found in the message.
func KeywordReply(s responses.Store, log *slog.Logger) bot.Handler {
	return bot.HandlerFunc(func(ctx context.Context, e bot.Event, r bot.Responder) {
		m, ok := e.(bot.MessagePosted)
		if !ok {
			return
		}

		response, found := responses.Find(s, m.Text)
		if !found {
			metrics.RecordLookup(metrics.OutcomeUnmatched)
			return
		}
		metrics.RecordLookup(metrics.OutcomeMatched)

		if err := r.Reply(ctx, response); err != nil {
			log.Error("failed to reply", "channel", m.Channel, "error", err)
		}
	})
}

// HomeTab publishes the configuration panel to the user opening the Home tab.
func HomeTab(s responses.Store, log *slog.Logger) bot.Handler {
	return bot.HandlerFunc(func(ctx context.Context, e bot.Event, r bot.Responder) {
		h, ok := e.(bot.HomeOpened)
		if !ok {
			return
		}
		publishHome(ctx, s, r, h.UserID, log)
	})
}

// OpenEditor acknowledges the add/edit button and opens the editor modal.
func OpenEditor(log *slog.Logger) bot.Handler {
	return bot.HandlerFunc(func(ctx context.Context, e bot.Event, r bot.Responder) {
		a, ok := e.(bot.BlockAction)
		if !ok {
			return
		}
		r.Ack()

		if err := r.OpenModal(ctx, a.TriggerID, views.Editor()); err != nil {
			log.Error("failed to open editor", "user", a.UserID, "error", err)
		}
	})
}

// DeleteResponse removes the keyword carried by the button value and
// refreshes the Home tab.
func DeleteResponse(s responses.Store, log *slog.Logger) bot.Handler {
	return bot.HandlerFunc(func(ctx context.Context, e bot.Event, r bot.Responder) {
		a, ok := e.(bot.BlockAction)
		if !ok {
			return
		}
		r.Ack()

		if s.Delete(a.Value) {
			metrics.RecordMutation(metrics.OpDelete, s.Len())
			log.Info("deleted response", "keyword", a.Value, "user", a.UserID)
		}

		publishHome(ctx, s, r, a.UserID, log)
	})
}

// SaveResponse stores the submitted keyword and response, or keeps the modal
// open with inline errors when the submission is invalid.
func SaveResponse(s responses.Store, log *slog.Logger) bot.Handler {
	return bot.HandlerFunc(func(ctx context.Context, e bot.Event, r bot.Responder) {
		v, ok := e.(bot.ViewSubmission)
		if !ok {
			return
		}

		sub := submission{
			Keyword:  v.Value(views.BlockKeyword, views.InputAction),
			Response: v.Value(views.BlockResponse, views.InputAction),
		}
		if errs := sub.validate(); len(errs) > 0 {
			r.Ack(slack.NewErrorsViewSubmissionResponse(errs))
			return
		}
		r.Ack()

		s.Put(sub.Keyword, sub.Response)
		metrics.RecordMutation(metrics.OpPut, s.Len())
		log.Info("saved response", "keyword", sub.Keyword, "user", v.UserID)

		publishHome(ctx, s, r, v.UserID, log)
	})
}

func publishHome(ctx context.Context, s responses.Store, r bot.Responder, userID string, log *slog.Logger) {
	if err := r.PublishHome(ctx, userID, views.Home(s.All())); err != nil {
		log.Error("failed to publish home tab", "user", userID, "error", err)
	}
}
