package views

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/charmbracelet/lipgloss"

	"torrview/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Torrents      []domain.Torrent
	SelectedIndex int
	HasSelection  bool
	Watermark     uint64
	Page          int
	Query         string
	Loading       bool
	StatusMessage string
	StatusIsError bool
	PendingRepeat string
	InputMode     string // "browse", "query", "help"
	TextInput     string // rendered text input for the query prompt
	DateFormat    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view for the current state.
func (r *Renderer) Render(state ViewState) string {
	if state.InputMode == "query" {
		return r.renderQueryPrompt(state)
	}
	if state.InputMode == "help" {
		return r.renderHelpOverlay(state)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderTable(state))
	content.WriteString("\n")
	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render("j/k move · n/p page · / search · o/m/t open · s mark seen · h help · q quit"))

	return content.String()
}

// renderTitle builds the title line with the page indicator and any
// active query or loading state right-aligned.
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("torrview")

	right := r.styles.Page.Render(fmt.Sprintf("page %d", state.Page))
	if state.Query != "" {
		right += r.styles.Dim.Render(fmt.Sprintf("  [%q]", state.Query))
	}
	// Static marker: redraws only happen on messages, so an animated
	// spinner would sit frozen on one frame anyway.
	if state.Loading {
		right += r.styles.Dim.Render("  … fetching")
	}
	if state.PendingRepeat != "" {
		right += r.styles.Dim.Render("  " + state.PendingRepeat)
	}

	pad := state.Width - lipgloss.Width(logo) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return logo + strings.Repeat(" ", pad) + right
}

// fixed column widths; the name column takes the remainder
const (
	viewedColWidth   = 3
	dateColWidth     = 12
	sizeColWidth     = 11
	seedersColWidth  = 5
	leechersColWidth = 5
)

// renderTable renders the result rows with the selected one highlighted.
func (r *Renderer) renderTable(state ViewState) string {
	if len(state.Torrents) == 0 {
		if state.Loading {
			return r.styles.Dim.Render("  fetching results...")
		}
		return r.styles.Dim.Render("  no results")
	}

	nameWidth := state.Width - viewedColWidth - dateColWidth - sizeColWidth - seedersColWidth - leechersColWidth - 6
	if nameWidth < 10 {
		nameWidth = 10
	}

	rows := &strings.Builder{}
	header := fmt.Sprintf(" %-*s %-*s %-*s %*s %*s %*s",
		viewedColWidth, "",
		nameWidth, "Name",
		dateColWidth, "Date",
		sizeColWidth, "Size",
		seedersColWidth, "S",
		leechersColWidth, "L")
	rows.WriteString(r.styles.Header.Render(header))
	rows.WriteString("\n")

	visible := r.visibleWindow(state)
	for i := visible.start; i < visible.end; i++ {
		t := state.Torrents[i]

		// Plain glyphs: styling them here would throw off the padded
		// column widths.
		glyph := "·"
		if t.ViewedBy(state.Watermark) {
			glyph = "✓"
		}

		line := fmt.Sprintf(" %-*s %-*s %-*s %*s %*s %*s",
			viewedColWidth, glyph,
			nameWidth, truncate(t.Name, nameWidth),
			dateColWidth, r.formatDate(t.Date, state.DateFormat),
			sizeColWidth, truncate(t.Filesize, sizeColWidth),
			seedersColWidth, t.Seeders,
			leechersColWidth, t.Leechers)

		if state.HasSelection && i == state.SelectedIndex {
			line = r.styles.Highlight.Render(line)
		}
		rows.WriteString(line)
		rows.WriteString("\n")
	}

	if visible.start > 0 {
		rows.WriteString(r.styles.Dim.Render(fmt.Sprintf(" ↑ %d more", visible.start)))
		rows.WriteString("\n")
	}
	if visible.end < len(state.Torrents) {
		rows.WriteString(r.styles.Dim.Render(fmt.Sprintf(" ↓ %d more", len(state.Torrents)-visible.end)))
		rows.WriteString("\n")
	}

	return strings.TrimRight(rows.String(), "\n")
}

type window struct {
	start, end int
}

// visibleWindow keeps the selected row inside the rows that fit on
// screen. The selection itself is already clamped by the navigator;
// this only decides which slice of rows to draw.
func (r *Renderer) visibleWindow(state ViewState) window {
	total := len(state.Torrents)
	rows := state.Height - 7 // title, header, status, footer, margins
	if rows < 3 {
		rows = 3
	}
	if total <= rows {
		return window{0, total}
	}

	sel := 0
	if state.HasSelection {
		sel = state.SelectedIndex
	}
	start := sel - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > total {
		end = total
		start = end - rows
	}
	return window{start, end}
}

// formatDate normalises the publish date for the date column. Source
// dates arrive in whatever format the tracker emitted; anything
// unparseable is shown as-is.
func (r *Renderer) formatDate(raw, layout string) string {
	if layout == "" {
		layout = "2006-01-02"
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return truncate(raw, dateColWidth)
	}
	return t.Format(layout)
}

// renderStatus renders the status/error line.
func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	if state.StatusIsError {
		return r.styles.StatusError.Render(state.StatusMessage)
	}
	return r.styles.Status.Render(state.StatusMessage)
}

// renderQueryPrompt renders the single-line search prompt view.
func (r *Renderer) renderQueryPrompt(state ViewState) string {
	prompt := r.styles.Prompt.Render("Search: ")
	hint := r.styles.Help.Render("enter to search · esc to cancel")
	return fmt.Sprintf("\n %s%s\n\n %s", prompt, state.TextInput, hint)
}

// renderHelpOverlay centers the help popup on a cleared screen.
func (r *Renderer) renderHelpOverlay(state ViewState) string {
	popup := r.styles.HelpBox.Render(helpContent(r.styles))
	if state.Width > 0 && state.Height > 0 {
		return lipgloss.Place(state.Width, state.Height,
			lipgloss.Center, lipgloss.Center, popup)
	}
	return popup
}

// helpContent lists every binding; shown until the next key press.
func helpContent(styles *Styles) string {
	key := styles.Header
	desc := styles.Status

	lines := []struct{ key, desc string }{
		{"/", "search"},
		{"<count>j / ↓", "move down"},
		{"<count>k / ↑", "move up"},
		{"g / G", "first / last row"},
		{"<count>n", "next page (5n jumps 5 pages)"},
		{"<count>p", "previous page"},
		{"b", "clear query"},
		{"o", "open listing in browser"},
		{"m", "open magnet link"},
		{"t", "open torrent file"},
		{"i / enter", "full listing details"},
		{"s", "mark viewed up to this listing"},
		{"q", "quit"},
	}

	b := &strings.Builder{}
	b.WriteString(styles.Title.Render("torrview keys"))
	b.WriteString("\n\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render(fmt.Sprintf("%-14s", l.key)), desc.Render(l.desc)))
	}
	b.WriteString("\n")
	b.WriteString(styles.Help.Render("press any key to close"))
	return b.String()
}

// truncate cuts s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
