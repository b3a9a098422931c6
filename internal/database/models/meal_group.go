package models

// DefaultAccentColor is used when a meal group is saved without an accent color
const DefaultAccentColor = "#2563EB"

// MealGroup represents a named category (e.g. breakfast) grouping dishes
type MealGroup struct {
	BaseModel
	Name        string  `json:"name" gorm:"not null;size:60;uniqueIndex:idx_meal_groups_name"`
	Description *string `json:"description,omitempty" gorm:"size:200"`
	AccentColor *string `json:"accent_color,omitempty" gorm:"size:30"`

	// Relationships
	MealGroupDishes []MealGroupDish `json:"meal_group_dishes,omitempty" gorm:"foreignKey:MealGroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MealGroup
func (MealGroup) TableName() string {
	return "meal_groups"
}
