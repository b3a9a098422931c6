package service

import (
	"fmt"
	"strings"

	"meal-planner-backend/internal/cache"
	"meal-planner-backend/internal/database/models"
	apperrors "meal-planner-backend/internal/errors"
	"meal-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ProductService provides product-related business logic
type ProductService struct {
	repo      repository.ProductRepositoryInterface
	cache     cache.Cache
	validator *validator.Validate
}

// Ensure ProductService implements ProductServiceInterface
var _ ProductServiceInterface = (*ProductService)(nil)

// NewProductService creates a new ProductService. A nil cache disables view caching.
func NewProductService(repo repository.ProductRepositoryInterface, viewCache cache.Cache, validator *validator.Validate) *ProductService {
	return &ProductService{
		repo:      repo,
		cache:     orNoop(viewCache),
		validator: validator,
	}
}

// ProductInput represents the editable fields of a product
type ProductInput struct {
	Name     string  `json:"name" form:"name" validate:"required,max=80"`
	Category *string `json:"category,omitempty" form:"category" validate:"omitempty,max=40"`
	Notes    *string `json:"notes,omitempty" form:"notes" validate:"omitempty,max=200"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category *string `json:"category,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (in *ProductInput) normalize() *ProductInput {
	return &ProductInput{
		Name:     strings.TrimSpace(in.Name),
		Category: trimOptional(in.Category),
		Notes:    trimOptional(in.Notes),
	}
}

// Add creates a product after validation and a case-insensitive duplicate check
func (s *ProductService) Add(input *ProductInput) (*ProductResponse, error) {
	in := input.normalize()
	if err := validateInput(s.validator, in); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByNameCI(in.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing product by name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrProductNameTaken.WithName(in.Name)
	}

	product := &models.Product{
		Name:     in.Name,
		Category: in.Category,
		Notes:    in.Notes,
	}
	if err := s.repo.Create(product); err != nil {
		if dup := duplicateFromStore(err, repository.ProductNameIndex, apperrors.ErrProductNameTaken, in.Name); dup != nil {
			return nil, dup
		}
		logStoreFailure("product", "create", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logMutation("product", "created", product.ID)
	invalidateViews(s.cache)
	return toProductResponse(product), nil
}

// Update replaces all editable fields of a product
func (s *ProductService) Update(id uint, input *ProductInput) (*ProductResponse, error) {
	in := input.normalize()
	if err := validateInput(s.validator, in); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		if nf := notFound(err, apperrors.ErrProductNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	exists, err := s.repo.ExistsByNameCI(in.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing product by name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrProductNameTaken.WithName(in.Name)
	}

	product.Name = in.Name
	product.Category = in.Category
	product.Notes = in.Notes
	if err := s.repo.Update(product); err != nil {
		if dup := duplicateFromStore(err, repository.ProductNameIndex, apperrors.ErrProductNameTaken, in.Name); dup != nil {
			return nil, dup
		}
		logStoreFailure("product", "update", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	logMutation("product", "updated", product.ID)
	invalidateViews(s.cache)
	return toProductResponse(product), nil
}

// Delete removes a product and its dish links. Deleting a missing product is a no-op.
func (s *ProductService) Delete(id uint) error {
	removed, err := s.repo.Delete(id)
	if err != nil {
		logStoreFailure("product", "delete", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if removed {
		logMutation("product", "deleted", id)
		invalidateViews(s.cache)
	}
	return nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(id uint) (*ProductResponse, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if nf := notFound(err, apperrors.ErrProductNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return toProductResponse(product), nil
}

// List returns all products ordered by name
func (s *ProductService) List() ([]ProductResponse, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *toProductResponse(&products[i])
	}
	return responses, nil
}

func toProductResponse(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Notes:    p.Notes,
	}
}
