package service

import (
	"fmt"
	"io"
	"strings"

	"meal-planner-backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names
const (
	SheetProducts    = "Products"
	SheetDishes      = "Dishes"
	SheetMealGroups  = "Meal groups"
	SheetIngredients = "Ingredients"
)

// ExportService writes the catalog as a spreadsheet
type ExportService struct {
	dishRepo      repository.DishRepositoryInterface
	productRepo   repository.ProductRepositoryInterface
	mealGroupRepo repository.MealGroupRepositoryInterface
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// NewExportService creates a new ExportService
func NewExportService(
	dishRepo repository.DishRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
	mealGroupRepo repository.MealGroupRepositoryInterface,
) *ExportService {
	return &ExportService{
		dishRepo:      dishRepo,
		productRepo:   productRepo,
		mealGroupRepo: mealGroupRepo,
	}
}

// ExportCatalog writes an .xlsx workbook with products, dishes, meal groups and ingredient usage
func (s *ExportService) ExportCatalog(w io.Writer) error {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to get products: %w", err)
	}
	dishes, err := s.dishRepo.ListWithRelations()
	if err != nil {
		return fmt.Errorf("failed to get dishes: %w", err)
	}
	groups, err := s.mealGroupRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to get meal groups: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetProducts); err != nil {
		return err
	}
	for _, name := range []string{SheetDishes, SheetMealGroups, SheetIngredients} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	productRows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		productRows = append(productRows, []interface{}{p.ID, p.Name, deref(p.Category), deref(p.Notes)})
	}
	if err := writeSheet(f, SheetProducts, []interface{}{"ID", "Name", "Category", "Notes"}, productRows); err != nil {
		return err
	}

	dishRows := make([][]interface{}, 0, len(dishes))
	for _, d := range toDishResponses(dishes) {
		ingredients := make([]string, 0, len(d.Products))
		for _, p := range d.Products {
			if q := deref(p.Quantity); q != "" {
				ingredients = append(ingredients, p.Name+" ("+q+")")
			} else {
				ingredients = append(ingredients, p.Name)
			}
		}
		groupNames := make([]string, 0, len(d.MealGroups))
		for _, g := range d.MealGroups {
			groupNames = append(groupNames, g.Name)
		}
		var minutes interface{}
		if d.PreparationMinutes != nil {
			minutes = *d.PreparationMinutes
		}
		dishRows = append(dishRows, []interface{}{
			d.ID, d.Name, deref(d.Description), minutes, strings.Join(ingredients, ", "), strings.Join(groupNames, ", "),
		})
	}
	dishHeader := []interface{}{"ID", "Name", "Description", "Preparation, min", "Products", "Meal groups"}
	if err := writeSheet(f, SheetDishes, dishHeader, dishRows); err != nil {
		return err
	}

	groupRows := make([][]interface{}, 0, len(groups))
	for i := range groups {
		g := toMealGroupResponse(&groups[i])
		groupRows = append(groupRows, []interface{}{g.ID, g.Name, deref(g.Description), g.AccentColor, g.DishCount})
	}
	groupHeader := []interface{}{"ID", "Name", "Description", "Accent color", "Dishes"}
	if err := writeSheet(f, SheetMealGroups, groupHeader, groupRows); err != nil {
		return err
	}

	usageRows := [][]interface{}{}
	for _, u := range CountIngredients(dishes, IngredientFrequencyLimit) {
		usageRows = append(usageRows, []interface{}{u.Name, u.Count})
	}
	if err := writeSheet(f, SheetIngredients, []interface{}{"Product", "Dishes"}, usageRows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
