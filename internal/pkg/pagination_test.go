package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/samtimberlan/wishop/internal/domain"
)

type widget struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50"`
}

// setupWidgetDB creates an in-memory SQLite database seeded with n widgets
// named w01, w02, ... so that ordering by name is deterministic.
func setupWidgetDB(t *testing.T, n int) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&widget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for i := 1; i <= n; i++ {
		if err := db.Create(&widget{Name: fmt.Sprintf("w%02d", i)}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return db
}

func widgetQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&widget{}).Order("name")
}

func TestPaginate_MiddlePage(t *testing.T) {
	db := setupWidgetDB(t, 25)

	page, err := Paginate[widget](context.Background(), widgetQuery(db), domain.PageRequest{PageIndex: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}

	if len(page.Items) != 10 {
		t.Errorf("len(Items)=%d; want 10", len(page.Items))
	}
	if page.TotalItems != 25 {
		t.Errorf("TotalItems=%d; want 25", page.TotalItems)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages=%d; want 3", page.TotalPages)
	}
	if page.Items[0].Name != "w11" {
		t.Errorf("first item on page 2 = %q; want w11", page.Items[0].Name)
	}
	if !page.HasPreviousPage() || !page.HasNextPage() {
		t.Error("page 2 of 3 should have both previous and next")
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	db := setupWidgetDB(t, 25)

	page, err := Paginate[widget](context.Background(), widgetQuery(db), domain.PageRequest{PageIndex: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}

	if len(page.Items) != 5 {
		t.Errorf("len(Items)=%d; want 5", len(page.Items))
	}
	if page.HasNextPage() {
		t.Error("last page should not have next")
	}
	if !page.HasPreviousPage() {
		t.Error("page 3 should have previous")
	}
}

func TestPaginate_OutOfRangeIsEmptyNotError(t *testing.T) {
	db := setupWidgetDB(t, 25)

	page, err := Paginate[widget](context.Background(), widgetQuery(db), domain.PageRequest{PageIndex: 50, PageSize: 10})
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}

	if len(page.Items) != 0 {
		t.Errorf("len(Items)=%d; want 0", len(page.Items))
	}
	if page.TotalItems != 25 {
		t.Errorf("TotalItems=%d; want 25", page.TotalItems)
	}
	if page.HasNextPage() {
		t.Error("out-of-range page should not have next")
	}
}

func TestPaginate_EmptySource(t *testing.T) {
	db := setupWidgetDB(t, 0)

	page, err := Paginate[widget](context.Background(), widgetQuery(db), domain.PageRequest{PageIndex: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}

	if len(page.Items) != 0 {
		t.Errorf("len(Items)=%d; want 0", len(page.Items))
	}
	if page.TotalPages != 0 {
		t.Errorf("TotalPages=%d; want 0", page.TotalPages)
	}
	if page.HasPreviousPage() || page.HasNextPage() {
		t.Error("empty result should have neither previous nor next")
	}
}

func TestPaginate_NonPositiveInputsFallBackToDefaults(t *testing.T) {
	db := setupWidgetDB(t, 5)

	page, err := Paginate[widget](context.Background(), widgetQuery(db), domain.PageRequest{PageIndex: 0, PageSize: -1})
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if page.PageIndex != 1 {
		t.Errorf("PageIndex=%d; want 1", page.PageIndex)
	}
	if page.PageSize != defaultPageSize {
		t.Errorf("PageSize=%d; want %d", page.PageSize, defaultPageSize)
	}
	if len(page.Items) != 5 {
		t.Errorf("len(Items)=%d; want 5", len(page.Items))
	}
}

func TestPaginate_UnsupportedSource(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// No migration: the widgets table does not exist, so the source cannot
	// evaluate the count query.
	_, err = Paginate[widget](context.Background(), db.Model(&widget{}), domain.PageRequest{PageIndex: 1, PageSize: 10})
	if err == nil {
		t.Fatal("expected error for unsupported source")
	}

	var unsupported *UnsupportedSourceError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *UnsupportedSourceError, got %T: %v", err, err)
	}
	if unsupported.Unwrap() == nil {
		t.Error("expected original cause to be preserved")
	}
}

func TestParsePageRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantIndex int
		wantSize  int
	}{
		{"defaults", "", defaultPageIndex, defaultPageSize},
		{"explicit", "pageNumber=3&pageSize=20", 3, 20},
		{"non-positive", "pageNumber=0&pageSize=-5", defaultPageIndex, defaultPageSize},
		{"garbage", "pageNumber=abc&pageSize=xyz", defaultPageIndex, defaultPageSize},
		{"capped", "pageNumber=1&pageSize=9999", 1, maxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/api/products?"+tt.query, nil)

			req := ParsePageRequest(c)
			if req.PageIndex != tt.wantIndex {
				t.Errorf("PageIndex=%d; want %d", req.PageIndex, tt.wantIndex)
			}
			if req.PageSize != tt.wantSize {
				t.Errorf("PageSize=%d; want %d", req.PageSize, tt.wantSize)
			}
		})
	}
}
