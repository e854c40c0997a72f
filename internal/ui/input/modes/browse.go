package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"torrview/internal/ui/input/types"
)

// BrowseMode is the default mode: vim-style movement over the result
// table with a numeric count prefix, plus the page/open/mark commands.
type BrowseMode struct{}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyEnter:
		if ctx.ResultCount() > 0 {
			return []types.Action{types.ShowDetailsAction{}}, true
		}
		return nil, false
	}

	key := msg.String()

	// Count prefix: digits stack up until the next movement or page
	// command consumes them.
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return []types.Action{types.DigitAction{Digit: rune(key[0])}}, true
	}

	switch key {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "last"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "first"}}, true

	case "n":
		if ctx.Loading() {
			return nil, true // one fetch at a time
		}
		return []types.Action{types.PageAction{Direction: "next"}}, true

	case "p":
		if ctx.Loading() {
			return nil, true
		}
		return []types.Action{types.PageAction{Direction: "prev"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true

	case "b":
		if ctx.Loading() {
			return nil, true
		}
		return []types.Action{types.ResetQueryAction{}}, true

	case "o":
		if ctx.ResultCount() > 0 {
			return []types.Action{types.OpenAction{Target: "listing"}}, true
		}
		return nil, true

	case "m":
		if ctx.ResultCount() > 0 {
			return []types.Action{types.OpenAction{Target: "magnet"}}, true
		}
		return nil, true

	case "t":
		if ctx.ResultCount() > 0 {
			return []types.Action{types.OpenAction{Target: "torrent"}}, true
		}
		return nil, true

	case "s":
		if ctx.ResultCount() > 0 {
			return []types.Action{types.MarkViewedAction{}}, true
		}
		return nil, true

	case "i":
		if ctx.ResultCount() > 0 {
			return []types.Action{types.ShowDetailsAction{}}, true
		}
		return nil, true

	case "h", "?":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	}

	return nil, false
}
