package buyer

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/samtimberlan/wishop/internal/domain"
)

const defaultCreatedBy = 1

// buyerService implements domain.BuyerService.
type buyerService struct {
	repo   domain.BuyerRepository
	logger *slog.Logger
}

// NewBuyerService creates a BuyerService with the given repository.
func NewBuyerService(repo domain.BuyerRepository, logger *slog.Logger) domain.BuyerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &buyerService{repo: repo, logger: logger}
}

// CreateBuyer validates and normalizes input, rejects duplicate emails, and
// persists the buyer. Email and name are stored trimmed and upper-cased, so
// "  a@b.com " and "A@B.COM" are the same registration. The existence check
// and the insert are separate reads; a concurrent create for the same email
// is resolved by the unique index and still surfaces as a conflict.
func (s *buyerService) CreateBuyer(ctx context.Context, email, name string) (*domain.Buyer, error) {
	email = normalize(email)
	name = normalize(name)

	if err := validateBuyer(email, name); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating buyer", slog.String("email", email))

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.WarnContext(ctx, "buyer already exists", slog.String("email", email))
		return nil, domain.NewAppError(domain.CodeAlreadyExists, "Buyer with email already exists", nil)
	}

	buyer := &domain.Buyer{
		Reference: uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedBy: defaultCreatedBy,
	}

	if err := s.repo.Create(ctx, buyer); err != nil {
		if domain.IsAlreadyExists(err) {
			return nil, domain.NewAppError(domain.CodeAlreadyExists, "Buyer with email already exists", err)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "buyer created", slog.String("email", email))
	return buyer, nil
}

// validateBuyer checks the normalized email and name.
func validateBuyer(email, name string) error {
	if email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	return nil
}

// normalize trims surrounding whitespace and upper-cases the value.
func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
