package domain

// PageResult is an immutable snapshot of one page of an ordered result set
// plus pagination metadata. It owns its item slice rather than embedding a
// list type, so no mutation methods leak onto what is a read-only value.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// NewPageResult constructs a PageResult. TotalPages is derived from totalItems
// and pageSize via ceiling division and may be 0 when the result set is empty.
// A nil items slice is normalized to an empty one so JSON encodes [] not null.
func NewPageResult[T any](items []T, totalItems int64, pageIndex, pageSize int) *PageResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}

	if items == nil {
		items = []T{}
	}

	return &PageResult[T]{
		Items:      items,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// HasPreviousPage reports whether a page precedes this one.
func (p *PageResult[T]) HasPreviousPage() bool {
	return p.PageIndex > 1
}

// HasNextPage reports whether a page follows this one.
func (p *PageResult[T]) HasNextPage() bool {
	return p.PageIndex < p.TotalPages
}
