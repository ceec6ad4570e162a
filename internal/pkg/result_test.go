package pkg

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/samtimberlan/wishop/internal/domain"
)

func TestSuccess_Defaults(t *testing.T) {
	r := Success(map[string]string{"k": "v"})
	if !r.Success {
		t.Error("expected Success=true")
	}
	if r.Status != http.StatusOK {
		t.Errorf("Status=%d; want 200", r.Status)
	}
	if r.Paging != nil {
		t.Error("non-paged content must not carry paging")
	}
}

func TestFailure_StatusDefaults(t *testing.T) {
	if got := Failure().Status; got != http.StatusInternalServerError {
		t.Errorf("Failure().Status=%d; want 500", got)
	}
	if got := FailureMessage("bad input").Status; got != http.StatusBadRequest {
		t.Errorf("FailureMessage().Status=%d; want 400", got)
	}
	if got := FailureStatus("conflict", http.StatusConflict).Status; got != http.StatusConflict {
		t.Errorf("FailureStatus().Status=%d; want 409", got)
	}
}

func TestSuccessPage_CopiesPagingMetadata(t *testing.T) {
	page := domain.NewPageResult([]string{"a", "b", "c", "d", "e"}, 25, 3, 10)
	r := SuccessPage(page, "Successful")

	if r.Paging == nil {
		t.Fatal("expected paging block for paged content")
	}
	if r.Paging.PageIndex != 3 || r.Paging.PageSize != 10 {
		t.Errorf("paging index/size = %d/%d; want 3/10", r.Paging.PageIndex, r.Paging.PageSize)
	}
	if r.Paging.TotalItems != 25 || r.Paging.TotalPages != 3 {
		t.Errorf("paging totals = %d/%d; want 25/3", r.Paging.TotalItems, r.Paging.TotalPages)
	}
	if !r.Paging.HasPreviousPage {
		t.Error("expected hasPreviousPage on page 3")
	}
	if r.Paging.HasNextPage {
		t.Error("did not expect hasNextPage on last page")
	}

	items, ok := r.Content.([]string)
	if !ok {
		t.Fatalf("Content is %T; want []string", r.Content)
	}
	if len(items) != 5 {
		t.Errorf("len(content)=%d; want 5", len(items))
	}
}

func TestFromError_Taxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"conflict", domain.NewAppError(domain.CodeAlreadyExists, "Product with SKU already exists", nil), http.StatusConflict, "Product with SKU already exists"},
		{"not found", domain.NewAppError(domain.CodeNotFound, "Product not found", nil), http.StatusNotFound, "Product not found"},
		{"validation", domain.NewAppError(domain.CodeValidation, "email is required", nil), http.StatusBadRequest, "email is required"},
		{"uncategorized", assertableError("boom"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromError(tt.err)
			if r.Success {
				t.Error("expected Success=false")
			}
			if r.Status != tt.wantStatus {
				t.Errorf("Status=%d; want %d", r.Status, tt.wantStatus)
			}
			if r.Message != tt.wantMsg {
				t.Errorf("Message=%q; want %q", r.Message, tt.wantMsg)
			}
		})
	}
}

type assertableError string

func (e assertableError) Error() string { return string(e) }

func TestWrite_UsesEnvelopeStatusAndRecordsPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/products/ABC", nil)

	Write(c, FailureStatus("Product not found", http.StatusNotFound))

	if w.Code != http.StatusNotFound {
		t.Errorf("HTTP status=%d; want 404", w.Code)
	}

	var r Result
	if err := json.Unmarshal(w.Body.Bytes(), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Status != http.StatusNotFound {
		t.Errorf("envelope status=%d; want 404", r.Status)
	}
	if r.Path != "/api/products/ABC" {
		t.Errorf("Path=%q; want /api/products/ABC", r.Path)
	}
}

func TestWrite_ZeroStatusFallsBack(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	Write(c, &Result{Success: true})
	if w.Code != http.StatusOK {
		t.Errorf("success fallback=%d; want 200", w.Code)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	Write(c, &Result{Success: false})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("failure fallback=%d; want 500", w.Code)
	}
}

func TestPagingInvariant_OnlySuccessPageSetsPaging(t *testing.T) {
	page := domain.NewPageResult([]int{1, 2}, 2, 1, 10)

	// Passing a page result through the plain constructor must not attach
	// paging: the choice is explicit at the call site.
	plain := Success(page)
	if plain.Paging != nil {
		t.Error("Success must never attach paging")
	}

	paged := SuccessPage(page, "Successful")
	if paged.Paging == nil {
		t.Error("SuccessPage must attach paging")
	}
}
