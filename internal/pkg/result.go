package pkg

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samtimberlan/wishop/internal/domain"
)

// Paging is the flattened pagination metadata block carried by Result when
// the payload is one page of a larger result set.
type Paging struct {
	PageIndex       int   `json:"pageIndex"`
	PageSize        int   `json:"pageSize"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
}

// Result is the uniform success/failure envelope returned by every operation.
// Status drives the HTTP response code, including for business failures like
// conflict and not-found. Paging is populated only by SuccessPage, so its
// presence is an explicit construction choice, never a runtime type check on
// the payload.
type Result struct {
	Success  bool    `json:"success"`
	Title    string  `json:"title,omitempty"`
	Status   int     `json:"status"`
	Detail   string  `json:"detail,omitempty"`
	Instance string  `json:"instance,omitempty"`
	Message  string  `json:"message,omitempty"`
	Code     string  `json:"code,omitempty"`
	Path     string  `json:"path,omitempty"`
	Content  any     `json:"content,omitempty"`
	Paging   *Paging `json:"paging,omitempty"`
}

// Success returns a 200 envelope wrapping a non-paged payload.
func Success(content any) *Result {
	return &Result{
		Success: true,
		Status:  http.StatusOK,
		Message: "Successful",
		Content: content,
	}
}

// SuccessMessage returns a 200 envelope carrying only a message.
func SuccessMessage(message string) *Result {
	return &Result{
		Success: true,
		Status:  http.StatusOK,
		Message: message,
	}
}

// SuccessStatus returns a success envelope with an explicit status code.
func SuccessStatus(content any, message string, status int) *Result {
	return &Result{
		Success: true,
		Status:  status,
		Message: message,
		Content: content,
	}
}

// SuccessPage returns a 200 envelope wrapping one page of results. The page's
// items become the content and the five paging fields are copied into the
// envelope's paging block.
func SuccessPage[T any](page *domain.PageResult[T], message string) *Result {
	return &Result{
		Success: true,
		Status:  http.StatusOK,
		Message: message,
		Content: page.Items,
		Paging: &Paging{
			PageIndex:       page.PageIndex,
			PageSize:        page.PageSize,
			TotalPages:      page.TotalPages,
			TotalItems:      page.TotalItems,
			HasPreviousPage: page.HasPreviousPage(),
			HasNextPage:     page.HasNextPage(),
		},
	}
}

// Failure returns a 500 envelope for an uncategorized failure.
func Failure() *Result {
	return &Result{
		Success: false,
		Status:  http.StatusInternalServerError,
	}
}

// FailureMessage returns a 400 envelope: a message without an explicit status
// indicates a caller-level failure.
func FailureMessage(message string) *Result {
	return &Result{
		Success: false,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// FailureStatus returns a failure envelope with an explicit status code.
func FailureStatus(message string, status int) *Result {
	return &Result{
		Success: false,
		Status:  status,
		Message: message,
	}
}

// FromError converts a domain error into a failure envelope using the
// business error taxonomy: conflict 409, not-found 404, validation 400,
// anything else 500.
func FromError(err error) *Result {
	status := domain.HTTPStatusCode(err)

	message := "internal error"
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	return FailureStatus(message, status)
}

// Write serializes the envelope as JSON using its own status field as the
// HTTP response code. The request path is recorded on the envelope.
func Write(c *gin.Context, r *Result) {
	if r.Path == "" {
		r.Path = c.Request.URL.Path
	}
	status := r.Status
	if status == 0 {
		status = http.StatusInternalServerError
		if r.Success {
			status = http.StatusOK
		}
	}
	c.JSON(status, r)
}
