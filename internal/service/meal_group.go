package service

import (
	"fmt"
	"strings"

	"meal-planner-backend/internal/cache"
	"meal-planner-backend/internal/database/models"
	apperrors "meal-planner-backend/internal/errors"
	"meal-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// MealGroupService provides meal group business logic
type MealGroupService struct {
	repo      repository.MealGroupRepositoryInterface
	cache     cache.Cache
	validator *validator.Validate
}

// Ensure MealGroupService implements MealGroupServiceInterface
var _ MealGroupServiceInterface = (*MealGroupService)(nil)

// NewMealGroupService creates a new MealGroupService. A nil cache disables view caching.
func NewMealGroupService(repo repository.MealGroupRepositoryInterface, viewCache cache.Cache, validator *validator.Validate) *MealGroupService {
	return &MealGroupService{
		repo:      repo,
		cache:     orNoop(viewCache),
		validator: validator,
	}
}

// MealGroupInput represents the editable fields of a meal group
type MealGroupInput struct {
	Name        string  `json:"name" form:"name" validate:"required,max=60"`
	Description *string `json:"description,omitempty" form:"description" validate:"omitempty,max=200"`
	AccentColor *string `json:"accent_color,omitempty" form:"accent_color" validate:"omitempty,accentcolor"`
}

// MealGroupResponse represents a meal group in API responses
type MealGroupResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	AccentColor string  `json:"accent_color"`
	DishCount   int     `json:"dish_count"`
}

// normalize trims the input; a blank accent color falls back to the default
func (in *MealGroupInput) normalize() *MealGroupInput {
	color := trimOptional(in.AccentColor)
	if color == nil {
		def := models.DefaultAccentColor
		color = &def
	}
	return &MealGroupInput{
		Name:        strings.TrimSpace(in.Name),
		Description: trimOptional(in.Description),
		AccentColor: color,
	}
}

// Add creates a meal group after validation and a case-insensitive duplicate check
func (s *MealGroupService) Add(input *MealGroupInput) (*MealGroupResponse, error) {
	in := input.normalize()
	if err := validateInput(s.validator, in); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByNameCI(in.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing meal group by name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrMealGroupNameTaken.WithName(in.Name)
	}

	group := &models.MealGroup{
		Name:        in.Name,
		Description: in.Description,
		AccentColor: in.AccentColor,
	}
	if err := s.repo.Create(group); err != nil {
		if dup := duplicateFromStore(err, repository.MealGroupNameIndex, apperrors.ErrMealGroupNameTaken, in.Name); dup != nil {
			return nil, dup
		}
		logStoreFailure("meal group", "create", err)
		return nil, fmt.Errorf("failed to create meal group: %w", err)
	}

	logMutation("meal group", "created", group.ID)
	invalidateViews(s.cache)
	return toMealGroupResponse(group), nil
}

// Update replaces all editable fields of a meal group
func (s *MealGroupService) Update(id uint, input *MealGroupInput) (*MealGroupResponse, error) {
	in := input.normalize()
	if err := validateInput(s.validator, in); err != nil {
		return nil, err
	}

	group, err := s.repo.GetWithDishes(id)
	if err != nil {
		if nf := notFound(err, apperrors.ErrMealGroupNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to get meal group: %w", err)
	}

	exists, err := s.repo.ExistsByNameCI(in.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing meal group by name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrMealGroupNameTaken.WithName(in.Name)
	}

	group.Name = in.Name
	group.Description = in.Description
	group.AccentColor = in.AccentColor
	if err := s.repo.Update(group); err != nil {
		if dup := duplicateFromStore(err, repository.MealGroupNameIndex, apperrors.ErrMealGroupNameTaken, in.Name); dup != nil {
			return nil, dup
		}
		logStoreFailure("meal group", "update", err)
		return nil, fmt.Errorf("failed to update meal group: %w", err)
	}

	logMutation("meal group", "updated", group.ID)
	invalidateViews(s.cache)
	return toMealGroupResponse(group), nil
}

// Delete removes a meal group and its dish links. Deleting a missing group is a no-op.
func (s *MealGroupService) Delete(id uint) error {
	removed, err := s.repo.Delete(id)
	if err != nil {
		logStoreFailure("meal group", "delete", err)
		return fmt.Errorf("failed to delete meal group: %w", err)
	}
	if removed {
		logMutation("meal group", "deleted", id)
		invalidateViews(s.cache)
	}
	return nil
}

// GetByID retrieves a meal group by ID
func (s *MealGroupService) GetByID(id uint) (*MealGroupResponse, error) {
	group, err := s.repo.GetWithDishes(id)
	if err != nil {
		if nf := notFound(err, apperrors.ErrMealGroupNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to get meal group: %w", err)
	}
	return toMealGroupResponse(group), nil
}

// List returns all meal groups ordered by name with their dish counts
func (s *MealGroupService) List() ([]MealGroupResponse, error) {
	groups, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get meal groups: %w", err)
	}
	responses := make([]MealGroupResponse, len(groups))
	for i := range groups {
		responses[i] = *toMealGroupResponse(&groups[i])
	}
	return responses, nil
}

func toMealGroupResponse(g *models.MealGroup) *MealGroupResponse {
	return &MealGroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		AccentColor: accentColor(g),
		DishCount:   len(g.MealGroupDishes),
	}
}

func accentColor(g *models.MealGroup) string {
	if g.AccentColor == nil || *g.AccentColor == "" {
		return models.DefaultAccentColor
	}
	return *g.AccentColor
}
