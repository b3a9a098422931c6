package database

import (
	_ "embed"
	"errors"
	"fmt"

	"meal-planner-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed seed/catalog.yaml
var catalogYAML []byte

// Simple structures that directly match the seed file
type ProductData struct {
	ID       uint   `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category,omitempty"`
	Notes    string `yaml:"notes,omitempty"`
}

type MealGroupData struct {
	ID          uint   `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	AccentColor string `yaml:"accent_color,omitempty"`
}

type DishProductData struct {
	ProductID uint   `yaml:"product_id"`
	Quantity  string `yaml:"quantity,omitempty"`
}

type DishData struct {
	ID                 uint              `yaml:"id"`
	Name               string            `yaml:"name"`
	Description        string            `yaml:"description,omitempty"`
	Instructions       string            `yaml:"instructions,omitempty"`
	PreparationMinutes int               `yaml:"preparation_minutes,omitempty"`
	ImageURL           string            `yaml:"image_url,omitempty"`
	Products           []DishProductData `yaml:"products,omitempty"`
	MealGroups         []uint            `yaml:"meal_groups,omitempty"`
}

// CatalogData is the full seed dataset
type CatalogData struct {
	Version    string          `yaml:"version"`
	Products   []ProductData   `yaml:"products"`
	MealGroups []MealGroupData `yaml:"meal_groups"`
	Dishes     []DishData      `yaml:"dishes"`
}

// seededTables have serial ids that must be advanced past the fixed seed ids
var seededTables = []string{"products", "meal_groups", "dishes"}

// LoadCatalogData parses the embedded seed dataset
func LoadCatalogData() (*CatalogData, error) {
	return ParseCatalogData(catalogYAML)
}

// ParseCatalogData parses a seed dataset in the embedded file's format
func ParseCatalogData(raw []byte) (*CatalogData, error) {
	var data CatalogData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	if data.Version == "" {
		return nil, fmt.Errorf("seed data has no version")
	}
	return &data, nil
}

// Seed applies the embedded dataset once. It reports whether anything was applied;
// a version already recorded in seed_history is skipped, and rows whose primary key
// already exists are left untouched.
func Seed(db *gorm.DB) (bool, error) {
	data, err := LoadCatalogData()
	if err != nil {
		return false, err
	}
	return SeedData(db, data)
}

// SeedData applies data under the same rules as Seed
func SeedData(db *gorm.DB, data *CatalogData) (bool, error) {
	applied := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var history models.SeedHistory
		err := tx.First(&history, "version = ?", data.Version).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("read seed history: %w", err)
		}

		if err := insertCatalog(tx, data); err != nil {
			return err
		}
		if err := advanceSequences(tx); err != nil {
			return err
		}
		if err := tx.Create(&models.SeedHistory{Version: data.Version}).Error; err != nil {
			return fmt.Errorf("record seed history: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func insertCatalog(tx *gorm.DB, data *CatalogData) error {
	doNothing := clause.OnConflict{DoNothing: true}

	products := make([]models.Product, 0, len(data.Products))
	for _, p := range data.Products {
		products = append(products, models.Product{
			BaseModel: models.BaseModel{ID: p.ID},
			Name:      p.Name,
			Category:  optional(p.Category),
			Notes:     optional(p.Notes),
		})
	}
	if len(products) > 0 {
		if err := tx.Clauses(doNothing).Create(&products).Error; err != nil {
			return fmt.Errorf("insert products: %w", err)
		}
	}

	groups := make([]models.MealGroup, 0, len(data.MealGroups))
	for _, g := range data.MealGroups {
		color := g.AccentColor
		if color == "" {
			color = models.DefaultAccentColor
		}
		groups = append(groups, models.MealGroup{
			BaseModel:   models.BaseModel{ID: g.ID},
			Name:        g.Name,
			Description: optional(g.Description),
			AccentColor: &color,
		})
	}
	if len(groups) > 0 {
		if err := tx.Clauses(doNothing).Create(&groups).Error; err != nil {
			return fmt.Errorf("insert meal groups: %w", err)
		}
	}

	dishes := make([]models.Dish, 0, len(data.Dishes))
	var dishProducts []models.DishProduct
	var groupDishes []models.MealGroupDish
	for _, d := range data.Dishes {
		dish := models.Dish{
			BaseModel:    models.BaseModel{ID: d.ID},
			Name:         d.Name,
			Description:  optional(d.Description),
			Instructions: optional(d.Instructions),
			ImageURL:     optional(d.ImageURL),
		}
		if d.PreparationMinutes > 0 {
			minutes := d.PreparationMinutes
			dish.PreparationMinutes = &minutes
		}
		dishes = append(dishes, dish)

		for _, p := range d.Products {
			dishProducts = append(dishProducts, models.DishProduct{
				DishID:    d.ID,
				ProductID: p.ProductID,
				Quantity:  optional(p.Quantity),
			})
		}
		for _, groupID := range d.MealGroups {
			groupDishes = append(groupDishes, models.MealGroupDish{MealGroupID: groupID, DishID: d.ID})
		}
	}
	if len(dishes) > 0 {
		if err := tx.Omit(clause.Associations).Clauses(doNothing).Create(&dishes).Error; err != nil {
			return fmt.Errorf("insert dishes: %w", err)
		}
	}
	if len(dishProducts) > 0 {
		if err := tx.Omit(clause.Associations).Clauses(doNothing).Create(&dishProducts).Error; err != nil {
			return fmt.Errorf("insert dish products: %w", err)
		}
	}
	if len(groupDishes) > 0 {
		if err := tx.Omit(clause.Associations).Clauses(doNothing).Create(&groupDishes).Error; err != nil {
			return fmt.Errorf("insert meal group dishes: %w", err)
		}
	}
	return nil
}

func advanceSequences(tx *gorm.DB) error {
	for _, table := range seededTables {
		stmt := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM %[1]s), 1))`,
			table,
		)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("advance %s sequence: %w", table, err)
		}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
