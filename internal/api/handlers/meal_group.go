package handlers

import (
	"net/http"

	"meal-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MealGroupHandler handles HTTP requests for meal groups
type MealGroupHandler struct {
	service service.MealGroupServiceInterface
}

// NewMealGroupHandler creates a new meal group handler
func NewMealGroupHandler(service service.MealGroupServiceInterface) *MealGroupHandler {
	return &MealGroupHandler{service: service}
}

// MealGroupListResponse is the meal groups page
type MealGroupListResponse struct {
	MealGroups []service.MealGroupResponse `json:"meal_groups"`
	Focus      *uint                       `json:"focus,omitempty"`
}

// ListMealGroups handles GET /api/v1/meal-groups
// @Summary List meal groups
// @Description List all meal groups ordered by name
// @Tags meal-groups
// @Produce json
// @Param focus query int false "ID of the meal group to highlight"
// @Success 200 {object} MealGroupListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meal-groups [get]
func (h *MealGroupHandler) ListMealGroups(c *gin.Context) {
	groups, err := h.service.List()
	if err != nil {
		respondError(c, err, "list meal groups", mealGroupsPath)
		return
	}
	c.JSON(http.StatusOK, MealGroupListResponse{MealGroups: groups, Focus: parseFocus(c)})
}

// CreateMealGroup handles POST /api/v1/meal-groups
// @Summary Create a meal group
// @Description Create a meal group from JSON or form fields. Form submissions are redirected to the meal groups page.
// @Tags meal-groups
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param group body service.MealGroupInput true "Meal group data"
// @Success 201 {object} service.MealGroupResponse
// @Success 303 "Redirect to /api/v1/meal-groups?focus={id}"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Meal group name already in use"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /meal-groups [post]
func (h *MealGroupHandler) CreateMealGroup(c *gin.Context) {
	var input service.MealGroupInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	group, err := h.service.Add(&input)
	if err != nil {
		respondError(c, err, "create meal group", mealGroupsPath)
		return
	}

	if isFormSubmission(c) {
		redirectToCollection(c, mealGroupsPath, group.ID)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// GetMealGroup handles GET /api/v1/meal-groups/:id
// @Summary Get a meal group
// @Tags meal-groups
// @Produce json
// @Param id path int true "Meal group ID"
// @Success 200 {object} service.MealGroupResponse
// @Failure 400 {object} ErrorResponse "Invalid meal group ID"
// @Failure 404 {object} ErrorResponse "Meal group not found"
// @Router /meal-groups/{id} [get]
func (h *MealGroupHandler) GetMealGroup(c *gin.Context) {
	id, ok := parseID(c, "meal group")
	if !ok {
		return
	}

	group, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "get meal group", mealGroupsPath)
		return
	}
	c.JSON(http.StatusOK, group)
}

// UpdateMealGroup handles PUT /api/v1/meal-groups/:id and POST /api/v1/meal-groups/:id/update
// @Summary Update a meal group
// @Description Replace all editable fields of a meal group
// @Tags meal-groups
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Meal group ID"
// @Param group body service.MealGroupInput true "Meal group data"
// @Success 200 {object} service.MealGroupResponse
// @Success 303 "Redirect to /api/v1/meal-groups?focus={id}"
// @Failure 404 {object} ErrorResponse "Meal group not found"
// @Failure 409 {object} ErrorResponse "Meal group name already in use"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /meal-groups/{id} [put]
func (h *MealGroupHandler) UpdateMealGroup(c *gin.Context) {
	id, ok := parseID(c, "meal group")
	if !ok {
		return
	}

	var input service.MealGroupInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	group, err := h.service.Update(id, &input)
	if err != nil {
		respondError(c, err, "update meal group", mealGroupsPath)
		return
	}

	if isFormSubmission(c) {
		redirectToCollection(c, mealGroupsPath, group.ID)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteMealGroup handles DELETE /api/v1/meal-groups/:id and POST /api/v1/meal-groups/:id/delete
// @Summary Delete a meal group
// @Description Delete a meal group and its dish links. Deleting a missing meal group succeeds.
// @Tags meal-groups
// @Param id path int true "Meal group ID"
// @Success 204 "Deleted"
// @Success 303 "Redirect to /api/v1/meal-groups"
// @Failure 400 {object} ErrorResponse "Invalid meal group ID"
// @Router /meal-groups/{id} [delete]
func (h *MealGroupHandler) DeleteMealGroup(c *gin.Context) {
	id, ok := parseID(c, "meal group")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "delete meal group", mealGroupsPath)
		return
	}

	if isFormSubmission(c) {
		redirectToCollection(c, mealGroupsPath, 0)
		return
	}
	c.Status(http.StatusNoContent)
}
