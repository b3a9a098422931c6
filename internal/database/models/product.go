package models

// Product represents an ingredient usable across dishes
type Product struct {
	BaseModel
	Name     string  `json:"name" gorm:"not null;size:80;uniqueIndex:idx_products_name"`
	Category *string `json:"category,omitempty" gorm:"size:40"`
	Notes    *string `json:"notes,omitempty" gorm:"size:200"`

	// Relationships
	DishProducts []DishProduct `json:"dish_products,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}
