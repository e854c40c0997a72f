package feed

// Page bounds for the upstream API. The source caps listings at 1000
// pages; page numbers below FirstPage are never sent.
const (
	FirstPage = 1
	MaxPage   = 1000
)

// Params are the query parameters for one search request.
type Params struct {
	Page  int
	Query string
}

// NewParams returns params pointing at the first page with an empty query.
func NewParams() Params {
	return Params{Page: FirstPage}
}

// NextPageBy advances the page by amount, clamped at MaxPage.
func (p *Params) NextPageBy(amount int) {
	if amount < 0 {
		amount = 0
	}
	if p.Page > MaxPage-amount {
		p.Page = MaxPage
		return
	}
	p.Page += amount
}

// PrevPageBy moves the page back by amount, clamped at FirstPage.
// The page never goes below 1: page 0 is not a meaningful query value.
func (p *Params) PrevPageBy(amount int) {
	if amount < 0 {
		amount = 0
	}
	if p.Page-amount < FirstPage {
		p.Page = FirstPage
		return
	}
	p.Page -= amount
}

// SetQuery replaces the free-text query. The page is left untouched;
// callers decide whether a query change should also reset pagination.
func (p *Params) SetQuery(query string) {
	p.Query = query
}
