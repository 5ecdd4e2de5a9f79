package client

// FetchPageFunc loads one page of rows and reports the unpaginated total.
type FetchPageFunc func(offset, limit int64) (rows []interface{}, total int64, err error)

// Pager accumulates offset-paginated rows. Loaded rows are only ever
// appended; changing filters means building a new Pager.
type Pager struct {
	fetch FetchPageFunc
	limit int64

	rows    []interface{}
	total   int64
	fetched bool
}

// NewPager creates a pager fetching `limit` rows at a time.
func NewPager(fetch FetchPageFunc, limit int64) *Pager {
	return &Pager{
		fetch: fetch,
		limit: limit,
	}
}

// LoadMore fetches the next page and appends it. It does nothing once all
// rows are loaded. Returns the number of rows added.
func (p *Pager) LoadMore() (int, error) {
	if p.fetched && !p.HasMore() {
		return 0, nil
	}

	rows, total, err := p.fetch(int64(len(p.rows)), p.limit)
	if err != nil {
		return 0, err
	}

	p.rows = append(p.rows, rows...)
	p.total = total
	p.fetched = true
	return len(rows), nil
}

// HasMore reports whether another page remains. Before the first fetch it is
// always true.
func (p *Pager) HasMore() bool {
	if !p.fetched {
		return true
	}
	return int64(len(p.rows)) < p.total
}

// Rows returns all rows loaded so far.
func (p *Pager) Rows() []interface{} {
	return p.rows
}

// Total returns the server-side total, 0 before the first fetch.
func (p *Pager) Total() int64 {
	return p.total
}
