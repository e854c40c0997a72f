package domain

import "strconv"

// Torrent is a single listing as returned by the search API.
// Records are immutable once fetched; the UI replaces the whole
// result slice on every fetch instead of mutating records in place.
type Torrent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Hash        string `json:"hash"`
	Date        string `json:"date"`
	Filesize    string `json:"filesize"`
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	Magnet      string `json:"magnet"`
	Torrent     string `json:"torrent"`
	Seeders     string `json:"seeders"`
	Leechers    string `json:"leechers"`
	Completed   string `json:"completed"`
	Status      string `json:"status"`
}

// NumericID parses the string-encoded listing id. The API has never
// returned a non-numeric id, but a malformed one defaults to 0 rather
// than failing the caller.
func (t Torrent) NumericID() uint64 {
	id, err := strconv.ParseUint(t.ID, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// ViewedBy reports whether this listing falls under the given
// watermark: every listing with a numeric id at or below the watermark
// counts as already seen.
func (t Torrent) ViewedBy(watermark uint64) bool {
	return t.NumericID() <= watermark
}
