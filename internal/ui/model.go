package ui

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"torrview/internal/browser"
	"torrview/internal/config"
	"torrview/internal/domain"
	"torrview/internal/feed"
	"torrview/internal/ui/input"
	"torrview/internal/ui/input/types"
	"torrview/internal/ui/logic"
	"torrview/internal/ui/views"
	"torrview/internal/watermark"
)

// Model is the session state machine. One instance owns the result
// set, navigation state, the viewed watermark and the input modes;
// Bubble Tea serialises every mutation through Update.
type Model struct {
	cfg      *config.Config
	client   feed.Client
	store    watermark.Store
	opener   browser.Opener
	handler  *input.Handler
	nav      *logic.Navigator
	renderer *views.Renderer
	pager    *DetailsPager

	params    feed.Params
	torrents  []domain.Torrent
	watermark uint64

	loading   bool
	width     int
	height    int
	status    string
	statusErr bool
}

// NewModel builds the session model. The watermark is read once here
// and only written again by the mark-viewed command.
func NewModel(cfg *config.Config, client feed.Client, store watermark.Store, opener browser.Opener, params feed.Params) *Model {
	return &Model{
		cfg:       cfg,
		client:    client,
		store:     store,
		opener:    opener,
		handler:   input.New(),
		nav:       logic.NewNavigator(),
		renderer:  views.NewRenderer(),
		pager:     NewDetailsPager(),
		params:    params,
		watermark: store.Load(),
		loading:   true, // Init issues the first fetch
	}
}

// SetProgram wires the running program into the details pager.
func (m *Model) SetProgram(program *tea.Program) {
	m.pager.SetProgram(program)
}

// Init issues the initial fetch.
func (m *Model) Init() tea.Cmd {
	return m.fetchCmd(m.params)
}

// Update handles all messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.handler.HandleKey(msg, m)
		cmds := m.applyActions(actions)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case resultsMsg:
		m.loading = false
		if msg.err != nil {
			// Keep the previous result set; the session survives a
			// failed fetch.
			log.Printf("fetch failed: %v", msg.err)
			m.setError(fmt.Sprintf("fetch failed: %v", msg.err))
			return m, nil
		}
		m.params = msg.params
		m.torrents = msg.torrents
		m.nav.Clamp(len(m.torrents))
		m.clearStatus()
		return m, nil

	case openURLMsg:
		if msg.err != nil {
			log.Printf("open %s: %v", msg.url, msg.err)
			m.setError(fmt.Sprintf("open failed: %v", msg.err))
		}
		return m, nil

	case detailsPagerMsg:
		if msg.err != nil {
			log.Printf("details pager: %v", msg.err)
			m.setError(fmt.Sprintf("pager failed: %v", msg.err))
		}
		return m, nil
	}

	// Cursor blink and friends go to the text input
	return m, m.handler.Update(msg)
}

// View renders the current state.
func (m *Model) View() string {
	sel, has := m.nav.Selected()
	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Torrents:      m.torrents,
		SelectedIndex: sel,
		HasSelection:  has,
		Watermark:     m.watermark,
		Page:          m.params.Page,
		Query:         m.params.Query,
		Loading:       m.loading,
		StatusMessage: m.status,
		StatusIsError: m.statusErr,
		PendingRepeat: m.nav.PendingRepeat(),
		InputMode:     m.modeName(),
		TextInput:     m.handler.TextView(),
		DateFormat:    m.cfg.UISettings.DateFormat,
	})
}

// applyActions mutates session state per action and collects commands.
func (m *Model) applyActions(actions []types.Action) []tea.Cmd {
	var cmds []tea.Cmd

	for _, action := range actions {
		switch action := action.(type) {
		case types.DigitAction:
			m.nav.AccumulateDigit(action.Digit)

		case types.NavigateAction:
			// Movement consumes the count prefix whether or not
			// digits were entered.
			count := m.nav.ConsumeRepeat()
			switch action.Direction {
			case "down":
				m.nav.MoveDown(count, len(m.torrents))
			case "up":
				m.nav.MoveUp(count, len(m.torrents))
			case "first":
				m.nav.JumpFirst(len(m.torrents))
			case "last":
				m.nav.JumpLast(len(m.torrents))
			}

		case types.PageAction:
			amount := m.nav.ConsumeRepeat()
			if m.loading {
				break
			}
			next := m.params
			switch action.Direction {
			case "next":
				next.NextPageBy(amount)
			case "prev":
				next.PrevPageBy(amount)
			}
			cmds = append(cmds, m.startFetch(next))

		case types.SubmitQueryAction:
			if m.loading {
				break
			}
			next := m.params
			next.SetQuery(action.Text) // page stays where it was
			cmds = append(cmds, m.startFetch(next))

		case types.ResetQueryAction:
			if m.loading {
				break
			}
			next := m.params
			next.SetQuery("")
			cmds = append(cmds, m.startFetch(next))

		case types.OpenAction:
			if url, ok := m.targetURL(action.Target); ok {
				cmds = append(cmds, m.openCmd(url))
			}

		case types.MarkViewedAction:
			m.markViewed()

		case types.ShowDetailsAction:
			if t, ok := m.selectedTorrent(); ok {
				cmds = append(cmds, m.detailsCmd(t))
			}

		case types.QuitAction:
			cmds = append(cmds, tea.Quit)

		case types.ChangeModeAction, types.CancelQueryAction, types.UpdateTextAction:
			// Mode switches are applied by the handler; the text
			// value is read from it at render time.
		}
	}

	return cmds
}

// startFetch marks the fetch in flight and returns its command. Every
// fetch-starting action checks the loading flag in applyActions, so at
// most one fetch is pending no matter which mode produced the action;
// a stale response can never overwrite a newer one.
func (m *Model) startFetch(params feed.Params) tea.Cmd {
	m.loading = true
	return m.fetchCmd(params)
}

func (m *Model) fetchCmd(params feed.Params) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		torrents, err := client.Search(context.Background(), params)
		return resultsMsg{torrents: torrents, params: params, err: err}
	}
}

func (m *Model) openCmd(url string) tea.Cmd {
	opener := m.opener
	return func() tea.Msg {
		return openURLMsg{url: url, err: opener.Open(url)}
	}
}

func (m *Model) detailsCmd(t domain.Torrent) tea.Cmd {
	pager := m.pager
	return func() tea.Msg {
		return detailsPagerMsg{err: pager.Show(t)}
	}
}

// markViewed moves the watermark to the selected listing and persists
// it before the loop continues. The in-memory watermark is updated
// even when the write fails; the glyphs flip either way.
func (m *Model) markViewed() {
	t, ok := m.selectedTorrent()
	if !ok {
		return
	}
	id := t.NumericID()
	m.watermark = id
	if err := m.store.Persist(id); err != nil {
		log.Printf("persist watermark %d: %v", id, err)
		m.setError(fmt.Sprintf("could not save viewed marker: %v", err))
		return
	}
	m.clearStatus()
}

// selectedTorrent returns the selected record, falling back to the
// first row when nothing was selected yet.
func (m *Model) selectedTorrent() (domain.Torrent, bool) {
	if len(m.torrents) == 0 {
		return domain.Torrent{}, false
	}
	idx, ok := m.nav.Selected()
	if !ok {
		idx = 0
	}
	if idx >= len(m.torrents) {
		idx = len(m.torrents) - 1
	}
	return m.torrents[idx], true
}

// targetURL resolves an open target against the selected record.
func (m *Model) targetURL(target string) (string, bool) {
	t, ok := m.selectedTorrent()
	if !ok {
		return "", false
	}
	switch target {
	case "listing":
		return fmt.Sprintf("%s/view/%s", m.cfg.SiteURL, t.ID), true
	case "magnet":
		return t.Magnet, true
	case "torrent":
		return t.Torrent, true
	}
	return "", false
}

func (m *Model) modeName() string {
	switch m.handler.CurrentMode() {
	case types.ModeQuery:
		return "query"
	case types.ModeHelp:
		return "help"
	default:
		return "browse"
	}
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// types.Context implementation: read access for the mode handlers.

// ResultCount returns the length of the current result set.
func (m *Model) ResultCount() int {
	return len(m.torrents)
}

// Loading reports whether a fetch is in flight.
func (m *Model) Loading() bool {
	return m.loading
}
