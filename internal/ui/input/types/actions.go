package types

// Action is a command produced by a mode handler and applied by the
// session model. Keeping these as plain values keeps the key handling
// testable without a terminal.
type Action interface {
	isAction()
}

// NavigateAction moves the selection. Direction is one of "up",
// "down", "first", "last". Up/down consume the pending count prefix.
type NavigateAction struct {
	Direction string
}

// DigitAction appends one digit to the count-prefix buffer.
type DigitAction struct {
	Digit rune
}

// PageAction changes the result page and triggers a refetch.
// Direction is "next" or "prev"; the pending count prefix is the
// page delta.
type PageAction struct {
	Direction string
}

// ChangeModeAction switches the input mode.
type ChangeModeAction struct {
	Mode Mode
}

// SubmitQueryAction commits the query prompt text and refetches with
// the page unchanged.
type SubmitQueryAction struct {
	Text string
}

// CancelQueryAction leaves the query prompt without changing anything.
type CancelQueryAction struct{}

// ResetQueryAction clears the query string and refetches.
type ResetQueryAction struct{}

// OpenAction opens the selected listing externally. Target is one of
// "listing", "magnet", "torrent".
type OpenAction struct {
	Target string
}

// MarkViewedAction sets the viewed watermark to the selected listing's
// id and persists it.
type MarkViewedAction struct{}

// ShowDetailsAction pages the full record of the selected listing.
type ShowDetailsAction struct{}

// UpdateTextAction mirrors the live text input value into view state.
type UpdateTextAction struct {
	Text string
}

// QuitAction ends the session.
type QuitAction struct{}

func (NavigateAction) isAction()    {}
func (DigitAction) isAction()       {}
func (PageAction) isAction()        {}
func (ChangeModeAction) isAction()  {}
func (SubmitQueryAction) isAction() {}
func (CancelQueryAction) isAction() {}
func (ResetQueryAction) isAction()  {}
func (OpenAction) isAction()        {}
func (MarkViewedAction) isAction()  {}
func (ShowDetailsAction) isAction() {}
func (UpdateTextAction) isAction()  {}
func (QuitAction) isAction()        {}
