package domain

import "context"

// Buyer is a registered purchaser. Email and name are stored trimmed and
// upper-cased; email is unique.
type Buyer struct {
	BaseModel
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string `gorm:"size:100;not null" json:"name"`
	CreatedBy uint   `json:"created_by"`
}

// BuyerRepository defines the data access interface for buyers.
type BuyerRepository interface {
	Create(ctx context.Context, buyer *Buyer) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

// BuyerService defines the business logic interface for buyers.
type BuyerService interface {
	CreateBuyer(ctx context.Context, email, name string) (*Buyer, error)
}
