package pagination

// Pager pages over a fixed slice with a fixed page size. Navigation is
// bounded: the page index always stays within [0, PageCount-1].
type Pager[T any] struct {
	items []T
	size  int
	page  int
}

// New builds a pager positioned on the first page. A non-positive size
// falls back to 1 so the pager is always usable.
func New[T any](items []T, size int) *Pager[T] {
	if size < 1 {
		size = 1
	}
	return &Pager[T]{items: items, size: size}
}

// Page returns the items on the current page.
func (p *Pager[T]) Page() []T {
	start, end := p.Bounds()
	return p.items[start:end]
}

// Bounds returns the global [start, end) range of the current page.
func (p *Pager[T]) Bounds() (int, int) {
	start := p.page * p.size
	if start > len(p.items) {
		start = len(p.items)
	}
	end := start + p.size
	if end > len(p.items) {
		end = len(p.items)
	}
	return start, end
}

// PageIndex returns the zero-based current page.
func (p *Pager[T]) PageIndex() int {
	return p.page
}

// PageCount returns the number of pages; at least 1 even when empty.
func (p *Pager[T]) PageCount() int {
	if len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + p.size - 1) / p.size
}

// Total returns the number of items across all pages.
func (p *Pager[T]) Total() int {
	return len(p.items)
}

// Next advances one page; reports whether the pager moved.
func (p *Pager[T]) Next() bool {
	if p.page+1 >= p.PageCount() {
		return false
	}
	p.page++
	return true
}

// Prev goes back one page; reports whether the pager moved.
func (p *Pager[T]) Prev() bool {
	if p.page == 0 {
		return false
	}
	p.page--
	return true
}

// Select returns the item at a global (one-based) index, as displayed
// across all pages.
func (p *Pager[T]) Select(n int) (T, bool) {
	var zero T
	if n < 1 || n > len(p.items) {
		return zero, false
	}
	return p.items[n-1], true
}
