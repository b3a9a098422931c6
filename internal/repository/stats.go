package repository

import (
	"gorm.io/gorm"
)

// CatalogTotals holds catalog-wide counters
type CatalogTotals struct {
	MealGroups      int64 `json:"meal_groups" gorm:"column:meal_group_count"`
	Dishes          int64 `json:"dishes" gorm:"column:dish_count"`
	ProductsInUse   int64 `json:"products_in_use" gorm:"column:products_in_use"`
	UngroupedDishes int64 `json:"ungrouped_dishes" gorm:"column:ungrouped_count"`
}

// StatsRepository computes counters across the catalog tables
type StatsRepository struct {
	db *gorm.DB
}

// Ensure StatsRepository implements StatsRepositoryInterface
var _ StatsRepositoryInterface = (*StatsRepository)(nil)

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Totals counts meal groups, dishes, distinct products used by dishes and dishes without a group
func (r *StatsRepository) Totals() (*CatalogTotals, error) {
	var totals CatalogTotals
	err := r.db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM meal_groups) AS meal_group_count,
			(SELECT COUNT(*) FROM dishes) AS dish_count,
			(SELECT COUNT(DISTINCT product_id) FROM dish_products) AS products_in_use,
			(SELECT COUNT(*) FROM dishes d
				WHERE NOT EXISTS (SELECT 1 FROM meal_group_dishes mgd WHERE mgd.dish_id = d.id)) AS ungrouped_count
	`).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
