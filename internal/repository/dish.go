package repository

import (
	"fmt"

	"meal-planner-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkChanges describes how a dish's association rows must change to match a submission
type LinkChanges struct {
	AddProducts        []models.DishProduct
	UpdateQuantities   []models.DishProduct
	RemoveProductIDs   []uint
	AddMealGroupIDs    []uint
	RemoveMealGroupIDs []uint
}

// Empty reports whether the changes leave the links untouched
func (c LinkChanges) Empty() bool {
	return len(c.AddProducts) == 0 && len(c.UpdateQuantities) == 0 && len(c.RemoveProductIDs) == 0 &&
		len(c.AddMealGroupIDs) == 0 && len(c.RemoveMealGroupIDs) == 0
}

// DishRepository handles database operations for dishes and their link rows
type DishRepository struct {
	db *gorm.DB
}

// Ensure DishRepository implements DishRepositoryInterface
var _ DishRepositoryInterface = (*DishRepository)(nil)

// NewDishRepository creates a new dish repository
func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{db: db}
}

// CreateWithLinks inserts a dish together with its product and meal group links in one transaction
func (r *DishRepository) CreateWithLinks(dish *models.Dish, products []models.DishProduct, mealGroupIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(dish).Error; err != nil {
			return err
		}

		if len(products) > 0 {
			links := make([]models.DishProduct, len(products))
			for i, p := range products {
				links[i] = models.DishProduct{DishID: dish.ID, ProductID: p.ProductID, Quantity: p.Quantity}
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return fmt.Errorf("link products: %w", err)
			}
			dish.DishProducts = links
		}

		if len(mealGroupIDs) > 0 {
			links := make([]models.MealGroupDish, len(mealGroupIDs))
			for i, groupID := range mealGroupIDs {
				links[i] = models.MealGroupDish{MealGroupID: groupID, DishID: dish.ID}
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return fmt.Errorf("link meal groups: %w", err)
			}
			dish.MealGroupDishes = links
		}

		return nil
	})
}

// GetByID retrieves a dish by ID without its links
func (r *DishRepository) GetByID(id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.First(&dish, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// GetWithLinks retrieves a dish by ID with its products and meal groups
func (r *DishRepository) GetWithLinks(id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := r.withRelations(r.db).First(&dish, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// ListWithRelations retrieves all dishes ordered by name with products and meal groups
func (r *DishRepository) ListWithRelations() ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.withRelations(r.db).Order("name ASC").Find(&dishes).Error
	return dishes, err
}

// ListUngrouped retrieves dishes that belong to no meal group, ordered by name
func (r *DishRepository) ListUngrouped() ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.db.
		Preload("DishProducts.Product").
		Where("NOT EXISTS (SELECT 1 FROM meal_group_dishes mgd WHERE mgd.dish_id = dishes.id)").
		Order("name ASC").
		Find(&dishes).Error
	return dishes, err
}

// UpdateWithLinks replaces the editable fields of a dish and applies the link changes atomically
func (r *DishRepository) UpdateWithLinks(dish *models.Dish, changes LinkChanges) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(dish).
			Omit(clause.Associations).
			Select("name", "description", "instructions", "preparation_minutes", "image_url", "updated_at").
			Updates(dish).Error
		if err != nil {
			return err
		}

		if len(changes.RemoveProductIDs) > 0 {
			err := tx.Where("dish_id = ? AND product_id IN ?", dish.ID, changes.RemoveProductIDs).
				Delete(&models.DishProduct{}).Error
			if err != nil {
				return fmt.Errorf("unlink products: %w", err)
			}
		}

		for _, link := range changes.UpdateQuantities {
			err := tx.Model(&models.DishProduct{}).
				Where("dish_id = ? AND product_id = ?", dish.ID, link.ProductID).
				Update("quantity", link.Quantity).Error
			if err != nil {
				return fmt.Errorf("update quantity: %w", err)
			}
		}

		if len(changes.AddProducts) > 0 {
			links := make([]models.DishProduct, len(changes.AddProducts))
			for i, p := range changes.AddProducts {
				links[i] = models.DishProduct{DishID: dish.ID, ProductID: p.ProductID, Quantity: p.Quantity}
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return fmt.Errorf("link products: %w", err)
			}
		}

		if len(changes.RemoveMealGroupIDs) > 0 {
			err := tx.Where("dish_id = ? AND meal_group_id IN ?", dish.ID, changes.RemoveMealGroupIDs).
				Delete(&models.MealGroupDish{}).Error
			if err != nil {
				return fmt.Errorf("unlink meal groups: %w", err)
			}
		}

		if len(changes.AddMealGroupIDs) > 0 {
			links := make([]models.MealGroupDish, len(changes.AddMealGroupIDs))
			for i, groupID := range changes.AddMealGroupIDs {
				links[i] = models.MealGroupDish{MealGroupID: groupID, DishID: dish.ID}
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return fmt.Errorf("link meal groups: %w", err)
			}
		}

		return nil
	})
}

// Delete deletes a dish; product and meal group links go with it through the cascading foreign keys
func (r *DishRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Dish{}, id)
	return res.RowsAffected > 0, res.Error
}

// ExistsByNameCI checks for a dish with the same name ignoring case, skipping excludeID
func (r *DishRepository) ExistsByNameCI(name string, excludeID uint) (bool, error) {
	return existsByNameCI(r.db.Model(&models.Dish{}), name, excludeID)
}

func (r *DishRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("DishProducts.Product").
		Preload("MealGroupDishes.MealGroup")
}
