package service

import (
	"fmt"
	"sort"
	"strings"

	"meal-planner-backend/internal/cache"
	"meal-planner-backend/internal/database/models"
	apperrors "meal-planner-backend/internal/errors"
	"meal-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// DishService provides dish business logic including reconciliation of the dish's
// product and meal group links.
type DishService struct {
	repo          repository.DishRepositoryInterface
	productRepo   repository.ProductRepositoryInterface
	mealGroupRepo repository.MealGroupRepositoryInterface
	cache         cache.Cache
	validator     *validator.Validate
}

// Ensure DishService implements DishServiceInterface
var _ DishServiceInterface = (*DishService)(nil)

// NewDishService creates a new DishService. A nil cache disables view caching.
func NewDishService(
	repo repository.DishRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
	mealGroupRepo repository.MealGroupRepositoryInterface,
	viewCache cache.Cache,
	validator *validator.Validate,
) *DishService {
	return &DishService{
		repo:          repo,
		productRepo:   productRepo,
		mealGroupRepo: mealGroupRepo,
		cache:         orNoop(viewCache),
		validator:     validator,
	}
}

// DishProductInput selects a product for a dish. A nil Quantity leaves the quantity of an
// already linked product untouched; an empty one clears it.
type DishProductInput struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  *string `json:"quantity,omitempty" validate:"omitempty,max=80"`
}

// DishInput represents the editable fields of a dish and the sets of linked products and meal groups
type DishInput struct {
	Name               string             `json:"name" validate:"required,max=100"`
	Description        *string            `json:"description,omitempty" validate:"omitempty,max=300"`
	Instructions       *string            `json:"instructions,omitempty" validate:"omitempty,max=2000"`
	PreparationMinutes *int               `json:"preparation_minutes,omitempty" validate:"omitempty,min=1,max=360"`
	ImageURL           *string            `json:"image_url,omitempty" validate:"omitempty,max=200,url"`
	Products           []DishProductInput `json:"products" validate:"dive"`
	MealGroupIDs       []uint             `json:"meal_group_ids"`
}

// DishProductResponse is a product used by a dish
type DishProductResponse struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  *string `json:"quantity,omitempty"`
}

// MealGroupSummary is a meal group reference embedded in dish responses
type MealGroupSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	AccentColor string `json:"accent_color"`
}

// DishResponse represents a dish with its resolved products and meal groups
type DishResponse struct {
	ID                 uint                  `json:"id"`
	Name               string                `json:"name"`
	Description        *string               `json:"description,omitempty"`
	Instructions       *string               `json:"instructions,omitempty"`
	PreparationMinutes *int                  `json:"preparation_minutes,omitempty"`
	ImageURL           *string               `json:"image_url,omitempty"`
	Products           []DishProductResponse `json:"products"`
	MealGroups         []MealGroupSummary    `json:"meal_groups"`
}

// normalize trims the fields and collapses repeated product and meal group ids to their
// first occurrence
func (in *DishInput) normalize() *DishInput {
	out := &DishInput{
		Name:               strings.TrimSpace(in.Name),
		Description:        trimOptional(in.Description),
		Instructions:       trimOptional(in.Instructions),
		PreparationMinutes: in.PreparationMinutes,
		ImageURL:           trimOptional(in.ImageURL),
		Products:           make([]DishProductInput, 0, len(in.Products)),
		MealGroupIDs:       dedupeIDs(in.MealGroupIDs),
	}

	seen := make(map[uint]struct{}, len(in.Products))
	for _, p := range in.Products {
		if _, ok := seen[p.ProductID]; ok {
			continue
		}
		seen[p.ProductID] = struct{}{}

		var quantity *string
		if p.Quantity != nil {
			q := strings.TrimSpace(*p.Quantity)
			quantity = &q
		}
		out.Products = append(out.Products, DishProductInput{ProductID: p.ProductID, Quantity: quantity})
	}
	return out
}

func (in *DishInput) productIDs() []uint {
	ids := make([]uint, len(in.Products))
	for i, p := range in.Products {
		ids[i] = p.ProductID
	}
	return ids
}

// Add creates a dish with its product and meal group links
func (s *DishService) Add(input *DishInput) (*DishResponse, error) {
	in := input.normalize()
	if err := s.validate(in, 0); err != nil {
		return nil, err
	}

	dish := &models.Dish{}
	applyDishFields(dish, in)

	links := make([]models.DishProduct, len(in.Products))
	for i, p := range in.Products {
		links[i] = models.DishProduct{ProductID: p.ProductID, Quantity: storedQuantity(p.Quantity)}
	}

	if err := s.repo.CreateWithLinks(dish, links, in.MealGroupIDs); err != nil {
		if dup := duplicateFromStore(err, repository.DishNameIndex, apperrors.ErrDishNameTaken, in.Name); dup != nil {
			return nil, dup
		}
		logStoreFailure("dish", "create", err)
		return nil, fmt.Errorf("failed to create dish: %w", err)
	}

	logMutation("dish", "created", dish.ID)
	invalidateViews(s.cache)
	return s.GetByID(dish.ID)
}

// Update replaces all editable fields of a dish and reconciles its links with the submitted sets
func (s *DishService) Update(id uint, input *DishInput) (*DishResponse, error) {
	in := input.normalize()

	dish, err := s.repo.GetWithLinks(id)
	if err != nil {
		if nf := notFound(err, apperrors.ErrDishNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to get dish: %w", err)
	}

	if err := s.validate(in, id); err != nil {
		return nil, err
	}

	changes := ReconcileLinks(dish, in.Products, in.MealGroupIDs)
	applyDishFields(dish, in)

	if err := s.repo.UpdateWithLinks(dish, changes); err != nil {
		if dup := duplicateFromStore(err, repository.DishNameIndex, apperrors.ErrDishNameTaken, in.Name); dup != nil {
			return nil, dup
		}
		logStoreFailure("dish", "update", err)
		return nil, fmt.Errorf("failed to update dish: %w", err)
	}

	logMutation("dish", "updated", id)
	invalidateViews(s.cache)
	return s.GetByID(id)
}

// Delete removes a dish and all of its links. Deleting a missing dish is a no-op.
func (s *DishService) Delete(id uint) error {
	removed, err := s.repo.Delete(id)
	if err != nil {
		logStoreFailure("dish", "delete", err)
		return fmt.Errorf("failed to delete dish: %w", err)
	}
	if removed {
		logMutation("dish", "deleted", id)
		invalidateViews(s.cache)
	}
	return nil
}

// GetByID retrieves a dish with its products and meal groups
func (s *DishService) GetByID(id uint) (*DishResponse, error) {
	dish, err := s.repo.GetWithLinks(id)
	if err != nil {
		if nf := notFound(err, apperrors.ErrDishNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to get dish: %w", err)
	}
	return toDishResponse(dish), nil
}

// List returns all dishes ordered by name with their products and meal groups
func (s *DishService) List() ([]DishResponse, error) {
	dishes, err := s.repo.ListWithRelations()
	if err != nil {
		return nil, fmt.Errorf("failed to get dishes: %w", err)
	}
	return toDishResponses(dishes), nil
}

// validate checks field constraints, name uniqueness (excluding excludeID) and that every
// referenced product and meal group exists
func (s *DishService) validate(in *DishInput, excludeID uint) error {
	if err := validateInput(s.validator, in); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByNameCI(in.Name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check existing dish by name: %w", err)
	}
	if exists {
		return apperrors.ErrDishNameTaken.WithName(in.Name)
	}

	fields := map[string]string{}
	if ids := in.productIDs(); len(ids) > 0 {
		found, err := s.productRepo.ExistingIDs(ids)
		if err != nil {
			return fmt.Errorf("failed to check products: %w", err)
		}
		if missing := missingIDs(ids, found); len(missing) > 0 {
			fields["products"] = "unknown product ids: " + joinIDs(missing)
		}
	}
	if len(in.MealGroupIDs) > 0 {
		found, err := s.mealGroupRepo.ExistingIDs(in.MealGroupIDs)
		if err != nil {
			return fmt.Errorf("failed to check meal groups: %w", err)
		}
		if missing := missingIDs(in.MealGroupIDs, found); len(missing) > 0 {
			fields["meal_group_ids"] = "unknown meal group ids: " + joinIDs(missing)
		}
	}
	if len(fields) > 0 {
		return apperrors.NewFieldsValidationError(fields)
	}
	return nil
}

// ReconcileLinks diffs the dish's current links against the submitted sets. Links that are
// no longer selected are removed, newly selected ones are added and unchanged ones are left
// alone, except that a kept product link gets its quantity updated when a different one was
// submitted.
func ReconcileLinks(dish *models.Dish, products []DishProductInput, mealGroupIDs []uint) repository.LinkChanges {
	var changes repository.LinkChanges

	current := make(map[uint]models.DishProduct, len(dish.DishProducts))
	for _, link := range dish.DishProducts {
		current[link.ProductID] = link
	}
	selected := make(map[uint]struct{}, len(products))
	for _, p := range products {
		selected[p.ProductID] = struct{}{}
		link, ok := current[p.ProductID]
		if !ok {
			changes.AddProducts = append(changes.AddProducts, models.DishProduct{
				DishID:    dish.ID,
				ProductID: p.ProductID,
				Quantity:  storedQuantity(p.Quantity),
			})
			continue
		}
		if p.Quantity != nil && !sameQuantity(link.Quantity, storedQuantity(p.Quantity)) {
			changes.UpdateQuantities = append(changes.UpdateQuantities, models.DishProduct{
				DishID:    dish.ID,
				ProductID: p.ProductID,
				Quantity:  storedQuantity(p.Quantity),
			})
		}
	}
	for _, link := range dish.DishProducts {
		if _, ok := selected[link.ProductID]; !ok {
			changes.RemoveProductIDs = append(changes.RemoveProductIDs, link.ProductID)
		}
	}

	currentGroups := make(map[uint]struct{}, len(dish.MealGroupDishes))
	for _, link := range dish.MealGroupDishes {
		currentGroups[link.MealGroupID] = struct{}{}
	}
	selectedGroups := make(map[uint]struct{}, len(mealGroupIDs))
	for _, id := range mealGroupIDs {
		selectedGroups[id] = struct{}{}
		if _, ok := currentGroups[id]; !ok {
			changes.AddMealGroupIDs = append(changes.AddMealGroupIDs, id)
		}
	}
	for _, link := range dish.MealGroupDishes {
		if _, ok := selectedGroups[link.MealGroupID]; !ok {
			changes.RemoveMealGroupIDs = append(changes.RemoveMealGroupIDs, link.MealGroupID)
		}
	}

	return changes
}

func applyDishFields(dish *models.Dish, in *DishInput) {
	dish.Name = in.Name
	dish.Description = in.Description
	dish.Instructions = in.Instructions
	dish.PreparationMinutes = in.PreparationMinutes
	dish.ImageURL = in.ImageURL
}

// storedQuantity maps a submitted quantity to its column value; blank is stored as NULL
func storedQuantity(q *string) *string {
	if q == nil || *q == "" {
		return nil
	}
	return q
}

func sameQuantity(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func toDishResponse(d *models.Dish) *DishResponse {
	resp := &DishResponse{
		ID:                 d.ID,
		Name:               d.Name,
		Description:        d.Description,
		Instructions:       d.Instructions,
		PreparationMinutes: d.PreparationMinutes,
		ImageURL:           d.ImageURL,
		Products:           make([]DishProductResponse, 0, len(d.DishProducts)),
		MealGroups:         make([]MealGroupSummary, 0, len(d.MealGroupDishes)),
	}
	for _, link := range d.DishProducts {
		item := DishProductResponse{ProductID: link.ProductID, Quantity: link.Quantity}
		if link.Product != nil {
			item.Name = link.Product.Name
		}
		resp.Products = append(resp.Products, item)
	}
	sort.SliceStable(resp.Products, func(i, j int) bool {
		return resp.Products[i].Name < resp.Products[j].Name
	})
	for _, link := range d.MealGroupDishes {
		if link.MealGroup == nil {
			continue
		}
		resp.MealGroups = append(resp.MealGroups, MealGroupSummary{
			ID:          link.MealGroup.ID,
			Name:        link.MealGroup.Name,
			AccentColor: accentColor(link.MealGroup),
		})
	}
	sort.SliceStable(resp.MealGroups, func(i, j int) bool {
		return resp.MealGroups[i].Name < resp.MealGroups[j].Name
	})
	return resp
}

func toDishResponses(dishes []models.Dish) []DishResponse {
	responses := make([]DishResponse, len(dishes))
	for i := range dishes {
		responses[i] = *toDishResponse(&dishes[i])
	}
	return responses
}
