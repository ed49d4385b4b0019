package aspirantes

import (
	"context"
	"log"
	"sync"
	"time"
)

// FetchFunc is the single data-fetching seam between the store and an
// incremental consumer: the same filter object plus explicit
// pagination, returning one page.
type FetchFunc func(ctx context.Context, params QueryParams) ([]Aspirante, error)

// loadDebounce suppresses load triggers that arrive within this window
// of the previous one, so scroll jitter does not fire extra fetches.
const loadDebounce = 200 * time.Millisecond

// Feed accumulates pages of aspirantes for an infinite-scroll listing.
// Triggers while a fetch is in flight are suppressed, fetched items are
// deduplicated by slug, and a short page marks the end of the data.
// Reset discards any fetch still in flight for the previous filter set.
type Feed struct {
	fetch FetchFunc
	now   func() time.Time

	mu          sync.Mutex
	params      QueryParams
	items       []Aspirante
	seen        map[string]struct{}
	offset      int
	hasMore     bool
	loading     bool
	epoch       int
	lastTrigger time.Time
}

// NewFeed builds a feed over fetch, seeded with the server-rendered
// initial page. A short initial page means there is nothing further to
// load.
func NewFeed(fetch FetchFunc, params QueryParams, initial []Aspirante) *Feed {
	f := &Feed{fetch: fetch, now: time.Now}
	f.reset(params, initial)
	return f
}

func (f *Feed) reset(params QueryParams, initial []Aspirante) {
	f.params = params
	f.items = append([]Aspirante(nil), initial...)
	f.seen = make(map[string]struct{}, len(initial))
	for _, a := range initial {
		f.seen[a.Slug] = struct{}{}
	}
	f.offset = len(initial)
	f.hasMore = len(initial) == pageLimit(params)
	f.loading = false
	f.epoch++
	f.lastTrigger = time.Time{}
}

// Reset replaces the filter set and the accumulated items. A fetch
// dispatched before the reset resolves into a stale epoch and is
// discarded.
func (f *Feed) Reset(params QueryParams, initial []Aspirante) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset(params, initial)
}

// Items returns a snapshot of the accumulated aspirantes.
func (f *Feed) Items() []Aspirante {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Aspirante(nil), f.items...)
}

// HasMore reports whether another page may exist.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// LoadMore fetches and appends the next page. The trigger is ignored
// while a fetch is in flight, after the end of the data, or within the
// debounce window of the previous trigger. A fetch error is logged and
// treated as end-of-data; navigating back to the full list is the
// recovery path.
func (f *Feed) LoadMore(ctx context.Context) {
	f.mu.Lock()
	if f.loading || !f.hasMore {
		f.mu.Unlock()
		return
	}
	now := f.now()
	if !f.lastTrigger.IsZero() && now.Sub(f.lastTrigger) < loadDebounce {
		f.mu.Unlock()
		return
	}
	f.lastTrigger = now
	f.loading = true
	epoch := f.epoch
	params := f.params
	params.Offset = f.offset
	params.Limit = pageLimit(f.params)
	f.mu.Unlock()

	page, err := f.fetch(ctx, params)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.epoch != epoch {
		// Superseded by a reset; drop the stale page.
		return
	}
	f.loading = false
	if err != nil {
		log.Printf("[feed] fetch offset=%d failed: %v", params.Offset, err)
		f.hasMore = false
		return
	}

	for _, a := range page {
		if _, dup := f.seen[a.Slug]; dup {
			continue
		}
		f.seen[a.Slug] = struct{}{}
		f.items = append(f.items, a)
	}
	f.offset += params.Limit
	f.hasMore = len(page) == params.Limit
}

func pageLimit(params QueryParams) int {
	if params.Limit > 0 {
		return params.Limit
	}
	return DefaultPageSize
}
