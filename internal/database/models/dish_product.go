package models

// DishProduct records that a dish requires a product in a given quantity.
// The (dish_id, product_id) pair is the primary key.
type DishProduct struct {
	DishID    uint    `json:"dish_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint    `json:"product_id" gorm:"primaryKey;autoIncrement:false;index:idx_dish_products_product_id"`
	Quantity  *string `json:"quantity,omitempty" gorm:"size:80"`

	// Relationships
	Dish    *Dish    `json:"dish,omitempty" gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DishProduct
func (DishProduct) TableName() string {
	return "dish_products"
}
