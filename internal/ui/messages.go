package ui

import (
	"torrview/internal/domain"
	"torrview/internal/feed"
)

// resultsMsg carries the outcome of a fetch along with the params it
// was issued for; params are committed only when the fetch succeeds.
type resultsMsg struct {
	torrents []domain.Torrent
	params   feed.Params
	err      error
}

// openURLMsg reports the outcome of handing a URL to the OS
type openURLMsg struct {
	url string
	err error
}

// detailsPagerMsg reports the outcome of the details pager run
type detailsPagerMsg struct {
	err error
}
