package service

import (
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProductServiceInterface defines the interface for product service
type ProductServiceInterface interface {
	Add(input *ProductInput) (*ProductResponse, error)
	Update(id uint, input *ProductInput) (*ProductResponse, error)
	Delete(id uint) error
	GetByID(id uint) (*ProductResponse, error)
	List() ([]ProductResponse, error)
}

// DishServiceInterface defines the interface for dish service
type DishServiceInterface interface {
	Add(input *DishInput) (*DishResponse, error)
	Update(id uint, input *DishInput) (*DishResponse, error)
	Delete(id uint) error
	GetByID(id uint) (*DishResponse, error)
	List() ([]DishResponse, error)
}

// MealGroupServiceInterface defines the interface for meal group service
type MealGroupServiceInterface interface {
	Add(input *MealGroupInput) (*MealGroupResponse, error)
	Update(id uint, input *MealGroupInput) (*MealGroupResponse, error)
	Delete(id uint) error
	GetByID(id uint) (*MealGroupResponse, error)
	List() ([]MealGroupResponse, error)
}

// ViewServiceInterface defines the interface for the read-only catalog views
type ViewServiceInterface interface {
	Overview() (*OverviewResponse, error)
	Menu() (*MenuResponse, error)
	GroupDetail(id uint) (*GroupDetailResponse, error)
	IngredientFrequency() ([]IngredientUsage, error)
	Totals() (*TotalsResponse, error)
	HighlightedDishes() ([]DishResponse, error)
	UngroupedDishes() ([]DishResponse, error)
}

// ExportServiceInterface defines the interface for the spreadsheet export
type ExportServiceInterface interface {
	ExportCatalog(w io.Writer) error
}
