// Package views renders the Home tab and the add/edit modal from the
// contents of a response store. Rendering has no side effects.
package views

import (
	"fmt"
	"iter"

	"github.com/slack-go/slack"
)

// Identifiers shared between the rendered views and the handlers reading
// the interactions they produce.
const (
	ActionSave     = "save"
	ActionDelete   = "delete"
	CallbackSaving = "saving"
	BlockKeyword   = "keyword"
	BlockResponse  = "response"
	InputAction    = "input"
)

func mrkdwn(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

func plain(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

func button(actionID, value, text string, style slack.Style) *slack.Accessory {
	return slack.NewAccessory(
		slack.NewButtonBlockElement(actionID, value, plain(text)).WithStyle(style),
	)
}

// Home renders the configuration panel listing every entry with a delete
// button keyed by its keyword.
func Home(entries iter.Seq2[string, string]) slack.HomeTabViewRequest {
	blocks := []slack.Block{
		slack.NewSectionBlock(mrkdwn("*Configuration*"), nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			mrkdwn("Click this button to add/edit a response :point_right:"),
			nil,
			button(ActionSave, ActionSave, "Add/Edit", slack.StylePrimary),
		),
		slack.NewSectionBlock(mrkdwn("*Custom Responses*"), nil, nil),
		slack.NewDividerBlock(),
	}

	for keyword, response := range entries {
		blocks = append(blocks, slack.NewSectionBlock(
			mrkdwn(fmt.Sprintf("*Keyword:* %s\n*Response:* %s", keyword, response)),
			nil,
			button(ActionDelete, keyword, "Delete", slack.StyleDanger),
		))
	}

	return slack.HomeTabViewRequest{
		Type:   slack.VTHomeTab,
		Blocks: slack.Blocks{BlockSet: blocks},
	}
}

// Editor renders the modal used to add or overwrite a response.
func Editor() slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: CallbackSaving,
		Title:      plain("My Custom Response"),
		Submit:     plain("Save"),
		Close:      plain("Close"),
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			slack.NewInputBlock(
				BlockKeyword,
				plain("When someone says"),
				nil,
				slack.NewPlainTextInputBlockElement(nil, InputAction),
			),
			slack.NewInputBlock(
				BlockResponse,
				plain("This app's bot user responds"),
				nil,
				slack.NewPlainTextInputBlockElement(nil, InputAction),
			),
		}},
	}
}
