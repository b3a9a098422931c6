package repository

import (
	"meal-planner-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProductRepositoryInterface defines the interface for product repository operations
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetAll() ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) (bool, error)
	ExistsByNameCI(name string, excludeID uint) (bool, error)
	ExistingIDs(ids []uint) ([]uint, error)
}

// DishRepositoryInterface defines the interface for dish repository operations
type DishRepositoryInterface interface {
	CreateWithLinks(dish *models.Dish, products []models.DishProduct, mealGroupIDs []uint) error
	GetByID(id uint) (*models.Dish, error)
	GetWithLinks(id uint) (*models.Dish, error)
	ListWithRelations() ([]models.Dish, error)
	ListUngrouped() ([]models.Dish, error)
	UpdateWithLinks(dish *models.Dish, changes LinkChanges) error
	Delete(id uint) (bool, error)
	ExistsByNameCI(name string, excludeID uint) (bool, error)
}

// MealGroupRepositoryInterface defines the interface for meal group repository operations
type MealGroupRepositoryInterface interface {
	Create(group *models.MealGroup) error
	GetByID(id uint) (*models.MealGroup, error)
	GetAll() ([]models.MealGroup, error)
	GetWithDishes(id uint) (*models.MealGroup, error)
	ListWithDishes() ([]models.MealGroup, error)
	ListExcept(id uint) ([]models.MealGroup, error)
	Update(group *models.MealGroup) error
	Delete(id uint) (bool, error)
	ExistsByNameCI(name string, excludeID uint) (bool, error)
	ExistingIDs(ids []uint) ([]uint, error)
}

// StatsRepositoryInterface defines the interface for catalog-wide counters
type StatsRepositoryInterface interface {
	Totals() (*CatalogTotals, error)
}
