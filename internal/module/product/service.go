package product

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/samtimberlan/wishop/internal/domain"
)

// User identifiers for deactivation notices. Buyer and seller resolution is
// not implemented yet; the placeholder channel notifies fixed parties.
const (
	notifyBuyerID  = "1"
	notifySellerID = "2"
)

// defaultCreatedBy stands in for the authenticated user until the API grows
// an identity layer.
const defaultCreatedBy = 1

// productService implements domain.ProductService.
type productService struct {
	repo     domain.ProductRepository
	notifier domain.Notifier
	logger   *slog.Logger
}

// NewProductService creates a ProductService with the given repository and notifier.
func NewProductService(repo domain.ProductRepository, notifier domain.Notifier, logger *slog.Logger) domain.ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	return &productService{repo: repo, notifier: notifier, logger: logger}
}

// AddProduct normalizes input, rejects duplicate SKUs, and persists a new
// active product. The existence check and the insert are not atomic; a
// concurrent create for the same SKU is resolved by the store's unique index
// and still surfaces as a conflict.
func (s *productService) AddProduct(ctx context.Context, sku, title, description string) (*domain.Product, error) {
	sku = normalize(sku)
	title = normalize(title)
	description = normalize(description)

	if sku == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "SKU is required", nil)
	}
	if title == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "title is required", nil)
	}

	s.logger.InfoContext(ctx, "adding product", slog.String("sku", sku))

	exists, err := s.repo.SKUExists(ctx, sku)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.WarnContext(ctx, "product already exists", slog.String("sku", sku))
		return nil, domain.NewAppError(domain.CodeAlreadyExists, "Product with SKU already exists", nil)
	}

	product := &domain.Product{
		Reference:   uuid.NewString(),
		SKU:         sku,
		Title:       title,
		Description: description,
		Active:      true,
		BuyerID:     defaultCreatedBy,
		CreatedBy:   defaultCreatedBy,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if domain.IsAlreadyExists(err) {
			return nil, domain.NewAppError(domain.CodeAlreadyExists, "Product with SKU already exists", err)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "product added", slog.String("sku", sku))
	return product, nil
}

// GetProduct retrieves a single product by SKU. With onlyActive=true a
// deactivated product is reported as not found.
func (s *productService) GetProduct(ctx context.Context, sku string, onlyActive bool) (*domain.Product, error) {
	sku = normalize(sku)

	product, err := s.repo.GetBySKU(ctx, sku, onlyActive)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeNotFound, "Product not found", err)
		}
		return nil, err
	}
	return product, nil
}

// SearchProducts returns one page of products matching the search term.
// No matches and out-of-range pages yield an empty page, not an error.
func (s *productService) SearchProducts(ctx context.Context, term string, onlyActive bool, req domain.PageRequest) (*domain.PageResult[domain.Product], error) {
	return s.repo.Search(ctx, strings.TrimSpace(term), onlyActive, req)
}

// DeactivateProduct marks a product inactive and notifies the interested
// parties. A missing or already-inactive product is not found, and no
// notifications fire for it.
func (s *productService) DeactivateProduct(ctx context.Context, sku string) error {
	sku = normalize(sku)

	s.logger.InfoContext(ctx, "deactivating product", slog.String("sku", sku))

	product, err := s.repo.GetBySKUAnyState(ctx, sku)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeNotFound, "Product not found", err)
		}
		return err
	}
	if !product.Active {
		return domain.NewAppError(domain.CodeNotFound, "Product not found", nil)
	}

	if err := s.repo.Deactivate(ctx, product); err != nil {
		return err
	}

	s.notifyUsers(ctx, notifyBuyerID, notifySellerID)
	s.logger.InfoContext(ctx, "product deactivated", slog.String("sku", sku))
	return nil
}

// DeleteProduct removes a product by SKU.
func (s *productService) DeleteProduct(ctx context.Context, sku string) error {
	sku = normalize(sku)

	s.logger.InfoContext(ctx, "deleting product", slog.String("sku", sku))

	product, err := s.repo.GetBySKUAnyState(ctx, sku)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeNotFound, "Product not found", err)
		}
		return err
	}

	if err := s.repo.Delete(ctx, product); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "product deleted", slog.String("sku", sku))
	return nil
}

// notifyUsers sends the deactivation notice on the placeholder side channel.
// Delivery is fire-and-forget; failures never reach the caller.
func (s *productService) notifyUsers(ctx context.Context, buyerID, sellerID string) {
	if s.notifier == nil {
		return
	}
	const message = "Product Deactivated"
	s.notifier.Notify(ctx, buyerID, message)
	s.notifier.Notify(ctx, sellerID, message)
}

// normalize trims surrounding whitespace and upper-cases the value, matching
// how catalog text is stored.
func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
