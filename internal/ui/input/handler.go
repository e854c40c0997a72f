package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"torrview/internal/ui/input/modes"
	"torrview/internal/ui/input/types"
)

// Handler routes keys to the current input mode and applies mode
// transitions that the modes request.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: types.ModeBrowse,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeBrowse] = modes.NewBrowseMode()
	h.modes[types.ModeQuery] = modes.NewQueryMode(h.textInput)
	h.modes[types.ModeHelp] = modes.NewHelpMode()

	return h
}

// HandleKey dispatches a key to the current mode and returns the
// resulting actions plus any text-input command.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	// Keys the browse and help modes don't claim are simply ignored.
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	// Apply mode changes here so Enter/Exit hooks run in order.
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			}

			h.currentMode = changeMode.Mode

			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			}

			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
			allActions = append(allActions, action)
		} else {
			allActions = append(allActions, action)
		}
	}

	// In a text mode, unconsumed keys go into the text input.
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// CurrentMode returns the active input mode.
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextValue returns the live text input value while a text mode is
// active, and "" otherwise.
func (h *Handler) TextValue() string {
	if h.isTextMode(h.currentMode) {
		return h.textInput.Value()
	}
	return ""
}

// TextView renders the text input for the prompt line.
func (h *Handler) TextView() string {
	return h.textInput.View()
}

// Update handles non-keyboard messages (cursor blink) for the text input.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeQuery
}
