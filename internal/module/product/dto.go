package product

import (
	"time"

	"github.com/samtimberlan/wishop/internal/domain"
)

// CreateProductRequest represents the input for creating a new product.
type CreateProductRequest struct {
	SKU         string `json:"sku" form:"sku" binding:"required,max=50"`
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Description string `json:"description" form:"description" binding:"max=1000"`
}

// ProductResponse is the public representation of a product.
type ProductResponse struct {
	Reference   string    `json:"reference"`
	SKU         string    `json:"sku"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	DateCreated time.Time `json:"dateCreated"`
}

// toResponse maps a domain product to its public representation.
func toResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		Reference:   p.Reference,
		SKU:         p.SKU,
		Title:       p.Title,
		Description: p.Description,
		Active:      p.Active,
		DateCreated: p.CreatedAt,
	}
}

// toResponsePage maps a page of domain products, preserving the paging metadata.
func toResponsePage(page *domain.PageResult[domain.Product]) *domain.PageResult[ProductResponse] {
	items := make([]ProductResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toResponse(&page.Items[i]))
	}
	return domain.NewPageResult(items, page.TotalItems, page.PageIndex, page.PageSize)
}
