package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"torrview/internal/ui/input/types"
)

// QueryMode is the free-text search prompt. It suspends browse
// handling entirely: every printable key goes into the text input
// until the query is confirmed with Enter or abandoned with Esc.
type QueryMode struct {
	textInput *textinput.Model
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{textInput: ti}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	m.textInput.Reset()
	m.textInput.Focus()
	m.textInput.Prompt = "" // Prompt is handled in the view layer
	return nil
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	m.textInput.Blur()
	m.textInput.Reset()
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc":
		return []types.Action{
			types.CancelQueryAction{},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true
	case "enter":
		return []types.Action{
			types.SubmitQueryAction{Text: m.textInput.Value()},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true
	default:
		// Unconsumed: the handler feeds the key to the text input
		return nil, false
	}
}
