package service

import (
	"context"
	"fmt"
	"sort"

	"meal-planner-backend/internal/cache"
	"meal-planner-backend/internal/database/models"
	apperrors "meal-planner-backend/internal/errors"
	"meal-planner-backend/internal/logger"
	"meal-planner-backend/internal/repository"
)

// View limits
const (
	HighlightedDishLimit     = 6
	IngredientFrequencyLimit = 12
)

// ViewService composes read-only catalog views
type ViewService struct {
	dishRepo      repository.DishRepositoryInterface
	productRepo   repository.ProductRepositoryInterface
	mealGroupRepo repository.MealGroupRepositoryInterface
	statsRepo     repository.StatsRepositoryInterface
	cache         cache.Cache
}

// Ensure ViewService implements ViewServiceInterface
var _ ViewServiceInterface = (*ViewService)(nil)

// NewViewService creates a new ViewService. A nil cache disables view caching.
func NewViewService(
	dishRepo repository.DishRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
	mealGroupRepo repository.MealGroupRepositoryInterface,
	statsRepo repository.StatsRepositoryInterface,
	viewCache cache.Cache,
) *ViewService {
	return &ViewService{
		dishRepo:      dishRepo,
		productRepo:   productRepo,
		mealGroupRepo: mealGroupRepo,
		statsRepo:     statsRepo,
		cache:         orNoop(viewCache),
	}
}

// IngredientUsage is the number of dishes using a product
type IngredientUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TotalsResponse holds catalog-wide counters
type TotalsResponse struct {
	MealGroups      int64 `json:"meal_groups"`
	Dishes          int64 `json:"dishes"`
	ProductsInUse   int64 `json:"products_in_use"`
	UngroupedDishes int64 `json:"ungrouped_dishes"`
}

// OverviewResponse is the home page view
type OverviewResponse struct {
	MealGroups        []MealGroupResponse `json:"meal_groups"`
	HighlightedDishes []DishResponse      `json:"highlighted_dishes"`
	Pantry            []ProductResponse   `json:"pantry"`
	UngroupedDishes   []DishResponse      `json:"ungrouped_dishes"`
}

// MenuGroup is a meal group together with its dishes
type MenuGroup struct {
	MealGroupResponse
	Dishes []DishResponse `json:"dishes"`
}

// MenuResponse lists every meal group with its dishes
type MenuResponse struct {
	MealGroups []MenuGroup    `json:"meal_groups"`
	Totals     TotalsResponse `json:"totals"`
}

// GroupDetailResponse is a single meal group's page. Found is false when the group does not
// exist, in which case only OtherGroups is filled.
type GroupDetailResponse struct {
	Found             bool                `json:"found"`
	Group             *MealGroupResponse  `json:"group,omitempty"`
	Dishes            []DishResponse      `json:"dishes"`
	UniqueIngredients []string            `json:"unique_ingredients"`
	OtherGroups       []MealGroupResponse `json:"other_groups"`
}

// Overview returns meal groups with dish counts, highlighted dishes, the pantry and ungrouped dishes
func (s *ViewService) Overview() (*OverviewResponse, error) {
	key := s.viewKey(cache.KeyOverview)
	var cached OverviewResponse
	if s.fromCache(key, &cached) {
		return &cached, nil
	}

	groups, err := s.mealGroupRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get meal groups: %w", err)
	}
	dishes, err := s.dishRepo.ListWithRelations()
	if err != nil {
		return nil, fmt.Errorf("failed to get dishes: %w", err)
	}
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	ungrouped, err := s.dishRepo.ListUngrouped()
	if err != nil {
		return nil, fmt.Errorf("failed to get ungrouped dishes: %w", err)
	}

	resp := &OverviewResponse{
		MealGroups:        make([]MealGroupResponse, len(groups)),
		HighlightedDishes: toDishResponses(HighlightDishes(dishes, HighlightedDishLimit)),
		Pantry:            make([]ProductResponse, len(products)),
		UngroupedDishes:   toDishResponses(ungrouped),
	}
	for i := range groups {
		resp.MealGroups[i] = *toMealGroupResponse(&groups[i])
	}
	for i := range products {
		resp.Pantry[i] = *toProductResponse(&products[i])
	}

	s.toCache(key, resp)
	return resp, nil
}

// Menu returns every meal group with its dishes and products, plus the catalog totals
func (s *ViewService) Menu() (*MenuResponse, error) {
	key := s.viewKey(cache.KeyMenu)
	var cached MenuResponse
	if s.fromCache(key, &cached) {
		return &cached, nil
	}

	groups, err := s.mealGroupRepo.ListWithDishes()
	if err != nil {
		return nil, fmt.Errorf("failed to get meal groups: %w", err)
	}
	totals, err := s.Totals()
	if err != nil {
		return nil, err
	}

	resp := &MenuResponse{
		MealGroups: make([]MenuGroup, len(groups)),
		Totals:     *totals,
	}
	for i := range groups {
		resp.MealGroups[i] = MenuGroup{
			MealGroupResponse: *toMealGroupResponse(&groups[i]),
			Dishes:            toDishResponses(groupDishes(&groups[i])),
		}
	}

	s.toCache(key, resp)
	return resp, nil
}

// GroupDetail returns a meal group's dishes ordered by name, the distinct ingredients used by
// them and the other groups. A missing group is not an error.
func (s *ViewService) GroupDetail(id uint) (*GroupDetailResponse, error) {
	others, err := s.mealGroupRepo.ListExcept(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get other meal groups: %w", err)
	}
	resp := &GroupDetailResponse{
		Dishes:            []DishResponse{},
		UniqueIngredients: []string{},
		OtherGroups:       make([]MealGroupResponse, len(others)),
	}
	for i := range others {
		resp.OtherGroups[i] = *toMealGroupResponse(&others[i])
	}

	group, err := s.mealGroupRepo.GetWithDishes(id)
	if err != nil {
		if notFound(err, apperrors.ErrMealGroupNotFound) != nil {
			return resp, nil
		}
		return nil, fmt.Errorf("failed to get meal group: %w", err)
	}

	dishes := groupDishes(group)
	resp.Found = true
	resp.Group = toMealGroupResponse(group)
	resp.Dishes = toDishResponses(dishes)
	resp.UniqueIngredients = UniqueIngredients(dishes)
	return resp, nil
}

// IngredientFrequency counts dish usages per product
func (s *ViewService) IngredientFrequency() ([]IngredientUsage, error) {
	dishes, err := s.dishRepo.ListWithRelations()
	if err != nil {
		return nil, fmt.Errorf("failed to get dishes: %w", err)
	}
	return CountIngredients(dishes, IngredientFrequencyLimit), nil
}

// Totals returns counts of groups, dishes, distinct products in use and ungrouped dishes
func (s *ViewService) Totals() (*TotalsResponse, error) {
	totals, err := s.statsRepo.Totals()
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}
	return &TotalsResponse{
		MealGroups:      totals.MealGroups,
		Dishes:          totals.Dishes,
		ProductsInUse:   totals.ProductsInUse,
		UngroupedDishes: totals.UngroupedDishes,
	}, nil
}

// HighlightedDishes returns the quickest dishes to prepare
func (s *ViewService) HighlightedDishes() ([]DishResponse, error) {
	dishes, err := s.dishRepo.ListWithRelations()
	if err != nil {
		return nil, fmt.Errorf("failed to get dishes: %w", err)
	}
	return toDishResponses(HighlightDishes(dishes, HighlightedDishLimit)), nil
}

// UngroupedDishes returns dishes that belong to no meal group, ordered by name
func (s *ViewService) UngroupedDishes() ([]DishResponse, error) {
	dishes, err := s.dishRepo.ListUngrouped()
	if err != nil {
		return nil, fmt.Errorf("failed to get ungrouped dishes: %w", err)
	}
	return toDishResponses(dishes), nil
}

// viewKey names key under the cache generation current before the view is loaded. An empty
// key skips caching for this read.
func (s *ViewService) viewKey(key string) string {
	gen, err := s.cache.Generation(context.Background())
	if err != nil {
		logger.New().WithError(err).WithField("key", key).Warn("Failed to read cache generation")
		return ""
	}
	return cache.VersionedKey(key, gen)
}

func (s *ViewService) fromCache(key string, dest interface{}) bool {
	if key == "" {
		return false
	}
	hit, err := s.cache.Get(context.Background(), key, dest)
	if err != nil {
		logger.New().WithError(err).WithField("key", key).Warn("Failed to read cached view")
		return false
	}
	return hit
}

func (s *ViewService) toCache(key string, value interface{}) {
	if key == "" {
		return
	}
	if err := s.cache.Set(context.Background(), key, value); err != nil {
		logger.New().WithError(err).WithField("key", key).Warn("Failed to cache view")
	}
}

// HighlightDishes orders dishes by preparation time ascending with unknown times last, ties
// broken by name, and keeps the first limit.
func HighlightDishes(dishes []models.Dish, limit int) []models.Dish {
	sorted := make([]models.Dish, len(dishes))
	copy(sorted, dishes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].PreparationMinutes, sorted[j].PreparationMinutes
		switch {
		case a == nil && b == nil:
			return sorted[i].Name < sorted[j].Name
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		default:
			return sorted[i].Name < sorted[j].Name
		}
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// CountIngredients counts how many dishes use each product, ordered by count descending then
// name ascending, capped at limit.
func CountIngredients(dishes []models.Dish, limit int) []IngredientUsage {
	counts := map[string]int{}
	for _, dish := range dishes {
		for _, link := range dish.DishProducts {
			if link.Product == nil || link.Product.Name == "" {
				continue
			}
			counts[link.Product.Name]++
		}
	}

	usages := make([]IngredientUsage, 0, len(counts))
	for name, count := range counts {
		usages = append(usages, IngredientUsage{Name: name, Count: count})
	}
	sort.Slice(usages, func(i, j int) bool {
		if usages[i].Count != usages[j].Count {
			return usages[i].Count > usages[j].Count
		}
		return usages[i].Name < usages[j].Name
	})
	if len(usages) > limit {
		usages = usages[:limit]
	}
	return usages
}

// UniqueIngredients returns the distinct product names used by dishes, sorted
func UniqueIngredients(dishes []models.Dish) []string {
	seen := map[string]struct{}{}
	names := []string{}
	for _, dish := range dishes {
		for _, link := range dish.DishProducts {
			if link.Product == nil || link.Product.Name == "" {
				continue
			}
			if _, ok := seen[link.Product.Name]; ok {
				continue
			}
			seen[link.Product.Name] = struct{}{}
			names = append(names, link.Product.Name)
		}
	}
	sort.Strings(names)
	return names
}

// groupDishes returns the dishes linked to a group ordered by name
func groupDishes(group *models.MealGroup) []models.Dish {
	dishes := make([]models.Dish, 0, len(group.MealGroupDishes))
	for _, link := range group.MealGroupDishes {
		if link.Dish != nil {
			dishes = append(dishes, *link.Dish)
		}
	}
	sort.SliceStable(dishes, func(i, j int) bool {
		return dishes[i].Name < dishes[j].Name
	})
	return dishes
}
