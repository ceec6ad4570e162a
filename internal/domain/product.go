package domain

import "context"

// Product is a catalog item. SKU, title, and description are stored trimmed
// and upper-cased. Deactivation flips Active; rows are only removed by the
// explicit delete operation.
type Product struct {
	BaseModel
	Reference   string `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	SKU         string `gorm:"column:sku;size:50;uniqueIndex;not null" json:"sku"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:1000" json:"description"`
	Active      bool   `gorm:"not null" json:"active"`
	BuyerID     uint   `json:"buyer_id"`
	CreatedBy   uint   `json:"created_by"`
}

// ProductRepository defines the data access interface for products.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	SKUExists(ctx context.Context, sku string) (bool, error)
	// GetBySKU matches products whose Active flag equals onlyActive,
	// so onlyActive=false finds only deactivated products.
	GetBySKU(ctx context.Context, sku string, onlyActive bool) (*Product, error)
	// GetBySKUAnyState ignores the Active flag.
	GetBySKUAnyState(ctx context.Context, sku string) (*Product, error)
	Search(ctx context.Context, term string, onlyActive bool, req PageRequest) (*PageResult[Product], error)
	Deactivate(ctx context.Context, product *Product) error
	Delete(ctx context.Context, product *Product) error
}

// ProductService defines the business logic interface for products.
type ProductService interface {
	AddProduct(ctx context.Context, sku, title, description string) (*Product, error)
	GetProduct(ctx context.Context, sku string, onlyActive bool) (*Product, error)
	SearchProducts(ctx context.Context, term string, onlyActive bool, req PageRequest) (*PageResult[Product], error)
	DeactivateProduct(ctx context.Context, sku string) error
	DeleteProduct(ctx context.Context, sku string) error
}
