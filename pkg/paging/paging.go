// Package paging provides a lazy iterator over paginated server responses.
package paging

import (
	"context"
	"fmt"
)

// DefaultPageSize is used when a non-positive page size is requested.
const DefaultPageSize = 100

// FetchFunc returns one page of results starting at startIndex. Returning an
// empty page signals that no further results exist.
type FetchFunc[T any] func(ctx context.Context, pageSize, startIndex int) ([]T, error)

// PagedResult is a lazy, single-pass sequence of T backed by repeated calls
// to a page-fetch function. Pages are fetched on demand as the consumer
// advances; consumed pages are not cached. The end of the sequence is
// confirmed by observing an empty page, so a full iteration always issues one
// more fetch than the number of non-empty pages. A PagedResult cannot be
// restarted; construct a new one to iterate again.
//
// Usage follows the bufio.Scanner pattern:
//
//	for page.Scan(ctx) {
//	    item := page.Item()
//	    ...
//	}
//	if err := page.Err(); err != nil {
//	    ...
//	}
type PagedResult[T any] struct {
	fetch      FetchFunc[T]
	pageSize   int
	startIndex int
	buf        []T
	pos        int
	done       bool
	err        error
	current    T
}

// New creates a PagedResult over fetch. A non-positive pageSize falls back to
// DefaultPageSize. fetch must be non-nil.
func New[T any](fetch FetchFunc[T], pageSize int) *PagedResult[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PagedResult[T]{
		fetch:    fetch,
		pageSize: pageSize,
	}
}

// Scan advances to the next item, fetching the next page when the current one
// is exhausted. It returns false when the sequence ends or a fetch fails;
// check Err to distinguish the two.
func (p *PagedResult[T]) Scan(ctx context.Context) bool {
	if p.err != nil {
		return false
	}
	if p.pos >= len(p.buf) {
		if p.done {
			return false
		}
		page, err := p.fetch(ctx, p.pageSize, p.startIndex)
		if err != nil {
			p.err = err
			return false
		}
		if len(page) == 0 {
			p.done = true
			return false
		}
		p.startIndex += len(page)
		p.buf = page
		p.pos = 0
	}
	p.current = p.buf[p.pos]
	p.pos++
	return true
}

// Item returns the item produced by the most recent successful Scan.
func (p *PagedResult[T]) Item() T {
	return p.current
}

// Err returns the first error encountered by Scan, if any.
func (p *PagedResult[T]) Err() error {
	return p.err
}

// Collect drains the remaining sequence into a slice. On error the partial
// result is discarded and the error returned.
func (p *PagedResult[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	for p.Scan(ctx) {
		items = append(items, p.Item())
	}
	if p.err != nil {
		return nil, p.err
	}
	return items, nil
}

// PageSize returns the page size requested from the fetch function.
func (p *PagedResult[T]) PageSize() int {
	return p.pageSize
}

func (p *PagedResult[T]) String() string {
	var zero T
	return fmt.Sprintf("PagedResult[%T] pageSize=%d", zero, p.pageSize)
}
