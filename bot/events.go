package bot

import (
	"errors"
	"fmt"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// ErrInvalidEvent is returned when an inbound payload lacks a required field.
var ErrInvalidEvent = errors.New("invalid event")

// Kind identifies the variant of an Event.
type Kind int

// Event kinds the bot can route.
const (
	KindMessage Kind = iota + 1
	KindHomeOpened
	KindBlockAction
	KindViewSubmission
)

func (k Kind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindHomeOpened:
		return "app_home_opened"
	case KindBlockAction:
		return "block_action"
	case KindViewSubmission:
		return "view_submission"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Route selects the handler for an event. ID is the action ID for block
// actions, the callback ID for view submissions and empty otherwise.
type Route struct {
	Kind Kind
	ID   string
}

// Event is one of MessagePosted, HomeOpened, BlockAction or ViewSubmission.
type Event interface {
	Kind() Kind
	route() Route
}

// MessagePosted is a message event in a channel the bot is in.
type MessagePosted struct {
	Channel         string
	User            string
	BotID           string
	Text            string
	SubType         string
	TimeStamp       string
	ThreadTimeStamp string

	// Self is set when the message was written by this bot.
	Self bool
}

// Kind implements Event.
func (MessagePosted) Kind() Kind { return KindMessage }

func (m MessagePosted) route() Route { return Route{Kind: KindMessage} }

// ThreadAnchor returns the timestamp a reply must be attached to: the
// message's thread if it is in one, otherwise the message itself.
func (m MessagePosted) ThreadAnchor() string {
	if m.ThreadTimeStamp != "" {
		return m.ThreadTimeStamp
	}
	return m.TimeStamp
}

// HomeOpened is sent when a user opens the app's Home tab.
type HomeOpened struct {
	UserID string
	Tab    string
}

// Kind implements Event.
func (HomeOpened) Kind() Kind { return KindHomeOpened }

func (h HomeOpened) route() Route { return Route{Kind: KindHomeOpened} }

// BlockAction is a click on an interactive element such as a button.
type BlockAction struct {
	ActionID  string
	Value     string
	TriggerID string
	UserID    string
}

// Kind implements Event.
func (BlockAction) Kind() Kind { return KindBlockAction }

func (a BlockAction) route() Route { return Route{Kind: KindBlockAction, ID: a.ActionID} }

// ViewSubmission is a submitted modal.
type ViewSubmission struct {
	CallbackID string
	UserID     string
	// Values maps block ID to action ID to the submitted value.
	Values map[string]map[string]string
}

// Kind implements Event.
func (ViewSubmission) Kind() Kind { return KindViewSubmission }

func (v ViewSubmission) route() Route { return Route{Kind: KindViewSubmission, ID: v.CallbackID} }

// Value returns the submitted value of an input, or "" if absent.
func (v ViewSubmission) Value(blockID, actionID string) string {
	return v.Values[blockID][actionID]
}

// parseEventsAPI turns an Events API payload into an Event. A nil Event and
// nil error mean the payload is of a type the bot does not handle.
func parseEventsAPI(data interface{}) (Event, error) {
	ev, ok := data.(slackevents.EventsAPIEvent)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected events api payload %T", ErrInvalidEvent, data)
	}
	if ev.Type != slackevents.CallbackEvent {
		return nil, nil
	}

	switch inner := ev.InnerEvent.Data.(type) {
	case *slackevents.MessageEvent:
		if inner.Channel == "" || inner.TimeStamp == "" {
			return nil, fmt.Errorf("%w: message without channel or timestamp", ErrInvalidEvent)
		}
		return MessagePosted{
			Channel:         inner.Channel,
			User:            inner.User,
			BotID:           inner.BotID,
			Text:            inner.Text,
			SubType:         inner.SubType,
			TimeStamp:       inner.TimeStamp,
			ThreadTimeStamp: inner.ThreadTimeStamp,
		}, nil
	case *slackevents.AppHomeOpenedEvent:
		if inner.User == "" {
			return nil, fmt.Errorf("%w: app_home_opened without user", ErrInvalidEvent)
		}
		return HomeOpened{UserID: inner.User, Tab: inner.Tab}, nil
	}
	return nil, nil
}

// parseInteractive turns an interaction payload into an Event. A nil Event
// and nil error mean the interaction type is not handled.
func parseInteractive(data interface{}) (Event, error) {
	cb, ok := data.(slack.InteractionCallback)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected interactive payload %T", ErrInvalidEvent, data)
	}

	switch cb.Type {
	case slack.InteractionTypeBlockActions:
		if len(cb.ActionCallback.BlockActions) == 0 || cb.ActionCallback.BlockActions[0] == nil {
			return nil, fmt.Errorf("%w: block_actions without actions", ErrInvalidEvent)
		}
		action := cb.ActionCallback.BlockActions[0]
		if action.ActionID == "" {
			return nil, fmt.Errorf("%w: block action without action_id", ErrInvalidEvent)
		}
		return BlockAction{
			ActionID:  action.ActionID,
			Value:     action.Value,
			TriggerID: cb.TriggerID,
			UserID:    cb.User.ID,
		}, nil
	case slack.InteractionTypeViewSubmission:
		if cb.View.CallbackID == "" {
			return nil, fmt.Errorf("%w: view_submission without callback_id", ErrInvalidEvent)
		}
		values := make(map[string]map[string]string)
		if cb.View.State != nil {
			for blockID, actions := range cb.View.State.Values {
				values[blockID] = make(map[string]string, len(actions))
				for actionID, action := range actions {
					values[blockID][actionID] = action.Value
				}
			}
		}
		return ViewSubmission{
			CallbackID: cb.View.CallbackID,
			UserID:     cb.User.ID,
			Values:     values,
		}, nil
	}
	return nil, nil
}
