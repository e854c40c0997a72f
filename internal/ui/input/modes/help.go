package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"torrview/internal/ui/input/types"
)

// HelpMode is the blocking help popup. Any key returns to browse.
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{}}, true
	}
	return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
}
