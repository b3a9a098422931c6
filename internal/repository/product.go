package repository

import (
	"meal-planner-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *gorm.DB
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetAll retrieves all products ordered by name
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("name ASC").Find(&products).Error
	return products, err
}

// Update replaces the editable fields of a product
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Model(product).
		Select("name", "category", "notes", "updated_at").
		Updates(product).Error
}

// Delete deletes a product; its dish links go with it through the cascading foreign key.
// The boolean reports whether a row was removed.
func (r *ProductRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Product{}, id)
	return res.RowsAffected > 0, res.Error
}

// ExistsByNameCI checks for a product with the same name ignoring case, skipping excludeID
func (r *ProductRepository) ExistsByNameCI(name string, excludeID uint) (bool, error) {
	return existsByNameCI(r.db.Model(&models.Product{}), name, excludeID)
}

// ExistingIDs returns the subset of ids that reference existing products
func (r *ProductRepository) ExistingIDs(ids []uint) ([]uint, error) {
	return existingIDs(r.db.Model(&models.Product{}), ids)
}

func existsByNameCI(q *gorm.DB, name string, excludeID uint) (bool, error) {
	q = q.Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func existingIDs(q *gorm.DB, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return []uint{}, nil
	}
	var found []uint
	err := q.Where("id IN ?", ids).Order("id ASC").Pluck("id", &found).Error
	return found, err
}
