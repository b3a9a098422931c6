package models

// Dish represents a named recipe composed of products
type Dish struct {
	BaseModel
	Name               string  `json:"name" gorm:"not null;size:100;uniqueIndex:idx_dishes_name"`
	Description        *string `json:"description,omitempty" gorm:"size:300"`
	Instructions       *string `json:"instructions,omitempty" gorm:"size:2000"`
	PreparationMinutes *int    `json:"preparation_minutes,omitempty"`
	ImageURL           *string `json:"image_url,omitempty" gorm:"column:image_url;size:200"`

	// Relationships
	DishProducts    []DishProduct   `json:"dish_products,omitempty" gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
	MealGroupDishes []MealGroupDish `json:"meal_group_dishes,omitempty" gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Dish
func (Dish) TableName() string {
	return "dishes"
}

// ProductIDs returns the ids of the products linked to the dish
func (d *Dish) ProductIDs() []uint {
	ids := make([]uint, 0, len(d.DishProducts))
	for _, link := range d.DishProducts {
		ids = append(ids, link.ProductID)
	}
	return ids
}

// MealGroupIDs returns the ids of the meal groups the dish belongs to
func (d *Dish) MealGroupIDs() []uint {
	ids := make([]uint, 0, len(d.MealGroupDishes))
	for _, link := range d.MealGroupDishes {
		ids = append(ids, link.MealGroupID)
	}
	return ids
}
