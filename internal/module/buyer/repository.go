package buyer

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/samtimberlan/wishop/internal/domain"
)

// buyerRepository implements domain.BuyerRepository using GORM.
type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository creates a BuyerRepository backed by the given GORM database.
func NewBuyerRepository(db *gorm.DB) domain.BuyerRepository {
	return &buyerRepository{db: db}
}

// Create inserts a new buyer.
func (r *buyerRepository) Create(ctx context.Context, buyer *domain.Buyer) error {
	if err := r.db.WithContext(ctx).Create(buyer).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// EmailExists reports whether any buyer is registered under the given email.
func (r *buyerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Buyer{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, mapError(err)
	}
	return count > 0, nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations the dialector did
// not translate to gorm.ErrDuplicatedKey.
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
