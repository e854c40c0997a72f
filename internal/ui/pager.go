package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"torrview/internal/domain"
)

// DetailsPager shows the full record of a listing in the ov pager.
// It needs the running Bubble Tea program so it can release the
// terminal while ov owns it.
type DetailsPager struct {
	program *tea.Program
}

// NewDetailsPager creates a pager without a program; SetProgram must
// be called once the program exists.
func NewDetailsPager() *DetailsPager {
	return &DetailsPager{}
}

// SetProgram attaches the running program for terminal handover.
func (p *DetailsPager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages the rendered listing details, blocking until ov exits.
func (p *DetailsPager) Show(t domain.Torrent) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay so ov has fully exited before the terminal is restored
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	reader := strings.NewReader(renderDetails(t))

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Don't let ov write its buffer to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// renderDetails lays out every field of the record, including the
// ones the table has no room for.
func renderDetails(t domain.Torrent) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n\n", t.Name)
	fmt.Fprintf(b, "ID:           %s\n", t.ID)
	fmt.Fprintf(b, "Category:     %s / %s\n", t.Category, t.SubCategory)
	fmt.Fprintf(b, "Date:         %s\n", t.Date)
	fmt.Fprintf(b, "Size:         %s\n", t.Filesize)
	fmt.Fprintf(b, "Seeders:      %s\n", t.Seeders)
	fmt.Fprintf(b, "Leechers:     %s\n", t.Leechers)
	fmt.Fprintf(b, "Completed:    %s\n", t.Completed)
	fmt.Fprintf(b, "Status:       %s\n", t.Status)
	fmt.Fprintf(b, "Hash:         %s\n", t.Hash)
	fmt.Fprintf(b, "Torrent:      %s\n", t.Torrent)
	fmt.Fprintf(b, "Magnet:       %s\n", t.Magnet)
	return b.String()
}
