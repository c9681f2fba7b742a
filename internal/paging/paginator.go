// Package paging owns the fixed-size page window over the task list. The
// current page index survives restarts through a Store; everything else is
// recomputed from the latest fetched snapshot.
package paging

// Store persists the page index across process restarts. A stored value that
// is out of range for freshly loaded data is clamped by the paginator, never
// treated as an error.
type Store interface {
	LoadPageIndex(key string) (index int, ok bool, err error)
	SavePageIndex(key string, index int) error
}

// Meta is the paging metadata handed to the renderer.
type Meta struct {
	PageIndex  int
	PageCount  int
	PageSize   int
	TotalItems int
}

// Paginator tracks the current page index against a total item count and a
// fixed page size. Every mutation clamps before the caller can slice, so a
// shrinking task list can never leave the view pointing past the last page.
type Paginator struct {
	pageSize int
	index    int
	total    int

	key   string
	store Store
}

// New returns a paginator for the given page size. store may be nil when no
// persistence is wanted (tests); key identifies this deployment in the store.
func New(pageSize int, key string, store Store) *Paginator {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Paginator{pageSize: pageSize, key: key, store: store}
}

// Restore loads the persisted page index, if any. The loaded value is
// clamped against the current total on the next SetTotal.
func (p *Paginator) Restore() {
	if p.store == nil {
		return
	}
	if idx, ok, err := p.store.LoadPageIndex(p.key); err == nil && ok {
		p.index = idx
		p.clamp()
	}
}

// PageSize returns the fixed page size.
func (p *Paginator) PageSize() int { return p.pageSize }

// Index returns the current 0-based page index.
func (p *Paginator) Index() int { return p.index }

// Total returns the item count of the last snapshot.
func (p *Paginator) Total() int { return p.total }

// PageCount returns the number of pages, at least 1.
func (p *Paginator) PageCount() int {
	pages := (p.total + p.pageSize - 1) / p.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Meta returns the paging metadata for the current state.
func (p *Paginator) Meta() Meta {
	return Meta{
		PageIndex:  p.index,
		PageCount:  p.PageCount(),
		PageSize:   p.pageSize,
		TotalItems: p.total,
	}
}

// Multipage reports whether there is more than one page to navigate.
func (p *Paginator) Multipage() bool { return p.total > p.pageSize }

// SetTotal records the item count of a fresh snapshot and clamps the index.
func (p *Paginator) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
	p.clamp()
}

// Advance moves the page index by dir (+1 forward, -1 back) and reports
// whether the index changed. It never wraps: advancing past either end is a
// no-op.
func (p *Paginator) Advance(dir int) bool {
	next := p.index + dir
	if next < 0 || next > p.PageCount()-1 {
		return false
	}
	p.index = next
	p.persist()
	return true
}

// Next advances one page forward; a no-op at the last page.
func (p *Paginator) Next() bool { return p.Advance(1) }

// Prev goes one page back; a no-op at the first page.
func (p *Paginator) Prev() bool { return p.Advance(-1) }

// clamp forces the index into [0, PageCount-1], persisting when it moved.
func (p *Paginator) clamp() {
	old := p.index
	if max := p.PageCount() - 1; p.index > max {
		p.index = max
	}
	if p.index < 0 {
		p.index = 0
	}
	if p.index != old {
		p.persist()
	}
}

// persist writes the index through the store. Best effort: a failed write
// costs the kiosk its remembered page on the next restart, nothing more.
func (p *Paginator) persist() {
	if p.store == nil {
		return
	}
	_ = p.store.SavePageIndex(p.key, p.index)
}

// Window returns the items visible on the current page plus the number of
// inert spacer slots needed to keep the rendered grid at its fixed shape.
func Window[T any](p *Paginator, items []T) (page []T, spacers int) {
	start := p.index * p.pageSize
	if start >= len(items) {
		return nil, p.pageSize
	}
	end := start + p.pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], p.pageSize - (end - start)
}
