package testutils

import (
	"fmt"
	"sync/atomic"

	"meal-planner-backend/internal/database/models"
)

var factorySeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&factorySeq, 1)
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to i
func IntPtr(i int) *int {
	return &i
}

// ProductFactory provides methods to create test Product data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates a test Product with a unique name
func (f *ProductFactory) Create() *models.Product {
	return &models.Product{
		Name:     fmt.Sprintf("Product %d", nextSeq()),
		Category: StringPtr("Pantry"),
	}
}

// WithName creates a test Product with a custom name
func (f *ProductFactory) WithName(name string) *models.Product {
	p := f.Create()
	p.Name = name
	return p
}

// DishFactory provides methods to create test Dish data
type DishFactory struct{}

// NewDishFactory creates a new DishFactory
func NewDishFactory() *DishFactory {
	return &DishFactory{}
}

// Create creates a test Dish with a unique name
func (f *DishFactory) Create() *models.Dish {
	return &models.Dish{
		Name:               fmt.Sprintf("Dish %d", nextSeq()),
		Description:        StringPtr("A test dish"),
		PreparationMinutes: IntPtr(15),
	}
}

// WithName creates a test Dish with a custom name
func (f *DishFactory) WithName(name string) *models.Dish {
	d := f.Create()
	d.Name = name
	return d
}

// WithMinutes creates a test Dish with a custom name and preparation time; nil leaves it unset
func (f *DishFactory) WithMinutes(name string, minutes *int) *models.Dish {
	d := f.WithName(name)
	d.PreparationMinutes = minutes
	return d
}

// MealGroupFactory provides methods to create test MealGroup data
type MealGroupFactory struct{}

// NewMealGroupFactory creates a new MealGroupFactory
func NewMealGroupFactory() *MealGroupFactory {
	return &MealGroupFactory{}
}

// Create creates a test MealGroup with a unique name
func (f *MealGroupFactory) Create() *models.MealGroup {
	return &models.MealGroup{
		Name:        fmt.Sprintf("Group %d", nextSeq()),
		AccentColor: StringPtr(models.DefaultAccentColor),
	}
}

// WithName creates a test MealGroup with a custom name
func (f *MealGroupFactory) WithName(name string) *models.MealGroup {
	g := f.Create()
	g.Name = name
	return g
}
