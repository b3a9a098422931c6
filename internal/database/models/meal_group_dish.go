package models

// MealGroupDish records that a dish belongs to a meal group
type MealGroupDish struct {
	MealGroupID uint `json:"meal_group_id" gorm:"primaryKey;autoIncrement:false"`
	DishID      uint `json:"dish_id" gorm:"primaryKey;autoIncrement:false;index:idx_meal_group_dishes_dish_id"`

	// Relationships
	MealGroup *MealGroup `json:"meal_group,omitempty" gorm:"foreignKey:MealGroupID;constraint:OnDelete:CASCADE"`
	Dish      *Dish      `json:"dish,omitempty" gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MealGroupDish
func (MealGroupDish) TableName() string {
	return "meal_group_dishes"
}
