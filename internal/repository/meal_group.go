package repository

import (
	"meal-planner-backend/internal/database/models"

	"gorm.io/gorm"
)

// MealGroupRepository handles database operations for meal groups
type MealGroupRepository struct {
	db *gorm.DB
}

// Ensure MealGroupRepository implements MealGroupRepositoryInterface
var _ MealGroupRepositoryInterface = (*MealGroupRepository)(nil)

// NewMealGroupRepository creates a new meal group repository
func NewMealGroupRepository(db *gorm.DB) *MealGroupRepository {
	return &MealGroupRepository{db: db}
}

// Create creates a new meal group
func (r *MealGroupRepository) Create(group *models.MealGroup) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a meal group by ID
func (r *MealGroupRepository) GetByID(id uint) (*models.MealGroup, error) {
	var group models.MealGroup
	if err := r.db.First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// GetAll retrieves all meal groups ordered by name, with their dish links
func (r *MealGroupRepository) GetAll() ([]models.MealGroup, error) {
	var groups []models.MealGroup
	err := r.db.Preload("MealGroupDishes").Order("name ASC").Find(&groups).Error
	return groups, err
}

// GetWithDishes retrieves a meal group with its dishes and their products
func (r *MealGroupRepository) GetWithDishes(id uint) (*models.MealGroup, error) {
	var group models.MealGroup
	err := r.withDishes(r.db).First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// ListWithDishes retrieves all meal groups ordered by name with their dishes and products
func (r *MealGroupRepository) ListWithDishes() ([]models.MealGroup, error) {
	var groups []models.MealGroup
	err := r.withDishes(r.db).Order("name ASC").Find(&groups).Error
	return groups, err
}

// ListExcept retrieves all meal groups other than id, ordered by name, with their dish links
func (r *MealGroupRepository) ListExcept(id uint) ([]models.MealGroup, error) {
	var groups []models.MealGroup
	err := r.db.Preload("MealGroupDishes").Where("id <> ?", id).Order("name ASC").Find(&groups).Error
	return groups, err
}

// Update replaces the editable fields of a meal group
func (r *MealGroupRepository) Update(group *models.MealGroup) error {
	return r.db.Model(group).
		Select("name", "description", "accent_color", "updated_at").
		Updates(group).Error
}

// Delete deletes a meal group; its dish links go with it through the cascading foreign key
func (r *MealGroupRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.MealGroup{}, id)
	return res.RowsAffected > 0, res.Error
}

// ExistsByNameCI checks for a meal group with the same name ignoring case, skipping excludeID
func (r *MealGroupRepository) ExistsByNameCI(name string, excludeID uint) (bool, error) {
	return existsByNameCI(r.db.Model(&models.MealGroup{}), name, excludeID)
}

// ExistingIDs returns the subset of ids that reference existing meal groups
func (r *MealGroupRepository) ExistingIDs(ids []uint) ([]uint, error) {
	return existingIDs(r.db.Model(&models.MealGroup{}), ids)
}

// withDishes loads each linked dish with its products and every group the dish belongs to
func (r *MealGroupRepository) withDishes(db *gorm.DB) *gorm.DB {
	return db.
		Preload("MealGroupDishes.Dish.DishProducts.Product").
		Preload("MealGroupDishes.Dish.MealGroupDishes.MealGroup")
}
