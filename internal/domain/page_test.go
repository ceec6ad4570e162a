package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPageResult_TotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		pageSize   int
		want       int
	}{
		{"empty", 0, 10, 0},
		{"exact multiple", 30, 10, 3},
		{"partial last page", 25, 10, 3},
		{"single item", 1, 10, 1},
		{"page size one", 7, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageResult([]int{}, tt.totalItems, 1, tt.pageSize)
			if p.TotalPages != tt.want {
				t.Errorf("TotalPages=%d; want %d", p.TotalPages, tt.want)
			}
		})
	}
}

func TestPageResult_HasPreviousAndNext(t *testing.T) {
	// 25 items, page size 10, page 3: last page with 5 items.
	p := NewPageResult([]string{"a", "b", "c", "d", "e"}, 25, 3, 10)
	if p.TotalPages != 3 {
		t.Errorf("TotalPages=%d; want 3", p.TotalPages)
	}
	if !p.HasPreviousPage() {
		t.Error("expected HasPreviousPage on page 3")
	}
	if p.HasNextPage() {
		t.Error("did not expect HasNextPage on last page")
	}

	first := NewPageResult([]string{"a"}, 25, 1, 10)
	if first.HasPreviousPage() {
		t.Error("did not expect HasPreviousPage on page 1")
	}
	if !first.HasNextPage() {
		t.Error("expected HasNextPage on page 1 of 3")
	}
}

func TestNewPageResult_Empty(t *testing.T) {
	p := NewPageResult[string](nil, 0, 1, 10)
	if len(p.Items) != 0 {
		t.Errorf("expected no items, got %d", len(p.Items))
	}
	if p.TotalPages != 0 {
		t.Errorf("TotalPages=%d; want 0", p.TotalPages)
	}
	if p.HasPreviousPage() || p.HasNextPage() {
		t.Error("empty result should have neither previous nor next page")
	}
}

func TestNewPageResult_NilItemsEncodeAsEmptyArray(t *testing.T) {
	p := NewPageResult[string](nil, 0, 1, 10)
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "null") {
		t.Errorf("expected items to encode as [], got %s", b)
	}
}
