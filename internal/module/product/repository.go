package product

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/samtimberlan/wishop/internal/domain"
	"github.com/samtimberlan/wishop/internal/pkg"
)

// productRepository implements domain.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a ProductRepository backed by the given GORM database.
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// SKUExists reports whether any product carries the given SKU.
func (r *productRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("sku = ?", sku).
		Count(&count).Error
	if err != nil {
		return false, mapError(err)
	}
	return count > 0, nil
}

// GetBySKU retrieves the product whose SKU matches and whose Active flag
// equals onlyActive.
func (r *productRepository) GetBySKU(ctx context.Context, sku string, onlyActive bool) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Where("sku = ? AND active = ?", sku, onlyActive).
		First(&product).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &product, nil
}

// GetBySKUAnyState retrieves a product by SKU regardless of its Active flag.
func (r *productRepository) GetBySKUAnyState(ctx context.Context, sku string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Where("sku = ?", sku).
		First(&product).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &product, nil
}

// Search returns one page of products matching the search term, ordered by
// title so page boundaries are stable across calls.
//
// TODO: confirm the intended filter grouping with the product owner. The
// condition deliberately mirrors the long-standing behavior where the active
// filter applies only to the SKU branch, i.e.
// title LIKE x OR (sku LIKE x AND active = onlyActive); the likely intent is
// (title LIKE x OR sku LIKE x) AND active = onlyActive.
func (r *productRepository) Search(ctx context.Context, term string, onlyActive bool, req domain.PageRequest) (*domain.PageResult[domain.Product], error) {
	pattern := "%" + term + "%"
	query := r.db.Model(&domain.Product{}).
		Where("title LIKE ? OR (sku LIKE ? AND active = ?)", pattern, pattern, onlyActive).
		Order("title")

	return pkg.Paginate[domain.Product](ctx, query, req)
}

// Deactivate clears the product's Active flag within a transaction.
func (r *productRepository) Deactivate(ctx context.Context, product *domain.Product) error {
	err := pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		result := tx.Model(&domain.Product{}).
			Where("id = ?", product.ID).
			Update("active", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return mapError(err)
	}
	product.Active = false
	return nil
}

// Delete removes the product row.
func (r *productRepository) Delete(ctx context.Context, product *domain.Product) error {
	result := r.db.WithContext(ctx).Delete(&domain.Product{}, product.ID)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapError converts GORM errors to domain errors. Errors that already carry a
// domain code pass through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. Not all GORM dialectors translate driver-level errors to
// gorm.ErrDuplicatedKey (the pure-Go SQLite driver among them).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
