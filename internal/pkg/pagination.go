package pkg

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/samtimberlan/wishop/internal/domain"
)

const (
	defaultPageIndex = 1
	defaultPageSize  = 15
	maxPageSize      = 100
)

// UnsupportedSourceError signals that the underlying data source could not
// evaluate the paging query. It is the only error translation the paginator
// performs: a stable type for callers, with the cause preserved for
// diagnostics via Unwrap.
type UnsupportedSourceError struct {
	Err error
}

func (e *UnsupportedSourceError) Error() string {
	return "pagination not supported by this data source: " + e.Err.Error()
}

func (e *UnsupportedSourceError) Unwrap() error {
	return e.Err
}

// ParsePageRequest extracts pageNumber and pageSize query parameters.
// Missing or non-positive values fall back to defaults; pageSize is capped.
func ParsePageRequest(c *gin.Context) domain.PageRequest {
	pageIndex, _ := strconv.Atoi(c.DefaultQuery("pageNumber", strconv.Itoa(defaultPageIndex)))
	if pageIndex < 1 {
		pageIndex = defaultPageIndex
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return domain.PageRequest{
		PageIndex: pageIndex,
		PageSize:  pageSize,
	}
}

// Paginate turns a prepared GORM query into one page of results plus metadata.
//
// The caller pre-applies filters and a deterministic ordering to query; page
// boundaries are undefined otherwise. Paginate issues a count and then an
// offset/limit fetch with no transaction around them, so the count and the
// slice can disagree under concurrent writes. That read skew is accepted
// here; stronger isolation is the store's job.
//
// An out-of-range page index is not an error: the result carries an empty
// item slice and the true totals.
func Paginate[T any](ctx context.Context, query *gorm.DB, req domain.PageRequest) (*domain.PageResult[T], error) {
	pageIndex := req.PageIndex
	if pageIndex < 1 {
		pageIndex = defaultPageIndex
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	var totalItems int64
	if err := query.WithContext(ctx).Count(&totalItems).Error; err != nil {
		return nil, &UnsupportedSourceError{Err: err}
	}

	if totalItems == 0 || int64(pageIndex-1)*int64(pageSize) >= totalItems {
		return domain.NewPageResult([]T{}, totalItems, pageIndex, pageSize), nil
	}

	var items []T
	err := query.WithContext(ctx).
		Offset((pageIndex - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, &UnsupportedSourceError{Err: err}
	}

	return domain.NewPageResult(items, totalItems, pageIndex, pageSize), nil
}
