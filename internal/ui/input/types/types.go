package types

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode identifies an input mode
type Mode int

const (
	// ModeBrowse is the default mode: vim-style list navigation.
	ModeBrowse Mode = iota
	// ModeQuery is the free-text search prompt.
	ModeQuery
	// ModeHelp is the blocking help popup; any key leaves it.
	ModeHelp
)

// ModeHandler processes keys for one input mode
type ModeHandler interface {
	Name() string
	Enter(ctx Context) []Action
	Exit(ctx Context) []Action
	// HandleKey returns the actions for a key and whether the key was
	// consumed. Unconsumed keys in text modes fall through to the
	// text input.
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)
}

// Context gives mode handlers read access to session state
type Context interface {
	// ResultCount is the length of the current result set.
	ResultCount() int
	// Loading reports whether a fetch is in flight. Commands that
	// would start another fetch are ignored while one is pending.
	Loading() bool
}
