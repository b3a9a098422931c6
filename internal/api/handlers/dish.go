package handlers

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "meal-planner-backend/internal/errors"
	"meal-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DishHandler handles HTTP requests for dishes
type DishHandler struct {
	service service.DishServiceInterface
}

// NewDishHandler creates a new dish handler
func NewDishHandler(service service.DishServiceInterface) *DishHandler {
	return &DishHandler{service: service}
}

// DishListResponse is the dishes page
type DishListResponse struct {
	Dishes []service.DishResponse `json:"dishes"`
	Focus  *uint                  `json:"focus,omitempty"`
}

// ListDishes handles GET /api/v1/dishes
// @Summary List dishes
// @Description List all dishes ordered by name with their products and meal groups
// @Tags dishes
// @Produce json
// @Param focus query int false "ID of the dish to highlight"
// @Success 200 {object} DishListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dishes [get]
func (h *DishHandler) ListDishes(c *gin.Context) {
	dishes, err := h.service.List()
	if err != nil {
		respondError(c, err, "list dishes", dishesPath)
		return
	}
	c.JSON(http.StatusOK, DishListResponse{Dishes: dishes, Focus: parseFocus(c)})
}

// CreateDish handles POST /api/v1/dishes
// @Summary Create a dish
// @Description Create a dish with its products and meal groups. Forms send product_ids, quantity_{productId} and meal_group_ids.
// @Tags dishes
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param dish body service.DishInput true "Dish data"
// @Success 201 {object} service.DishResponse
// @Success 303 "Redirect to /api/v1/dishes?focus={id}"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Dish name already in use"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /dishes [post]
func (h *DishHandler) CreateDish(c *gin.Context) {
	input, err := bindDishInput(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	dish, err := h.service.Add(input)
	if err != nil {
		respondError(c, err, "create dish", dishesPath)
		return
	}

	if isFormSubmission(c) {
		redirectToCollection(c, dishesPath, dish.ID)
		return
	}
	c.JSON(http.StatusCreated, dish)
}

// GetDish handles GET /api/v1/dishes/:id
// @Summary Get a dish
// @Tags dishes
// @Produce json
// @Param id path int true "Dish ID"
// @Success 200 {object} service.DishResponse
// @Failure 400 {object} ErrorResponse "Invalid dish ID"
// @Failure 404 {object} ErrorResponse "Dish not found"
// @Router /dishes/{id} [get]
func (h *DishHandler) GetDish(c *gin.Context) {
	id, ok := parseID(c, "dish")
	if !ok {
		return
	}

	dish, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "get dish", dishesPath)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// UpdateDish handles PUT /api/v1/dishes/:id and POST /api/v1/dishes/:id/update
// @Summary Update a dish
// @Description Replace all editable fields of a dish and reconcile its product and meal group links
// @Tags dishes
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Dish ID"
// @Param dish body service.DishInput true "Dish data"
// @Success 200 {object} service.DishResponse
// @Success 303 "Redirect to /api/v1/dishes?focus={id}"
// @Failure 404 {object} ErrorResponse "Dish not found"
// @Failure 409 {object} ErrorResponse "Dish name already in use"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /dishes/{id} [put]
func (h *DishHandler) UpdateDish(c *gin.Context) {
	id, ok := parseID(c, "dish")
	if !ok {
		return
	}

	input, err := bindDishInput(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	dish, err := h.service.Update(id, input)
	if err != nil {
		respondError(c, err, "update dish", dishesPath)
		return
	}

	if isFormSubmission(c) {
		redirectToCollection(c, dishesPath, dish.ID)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// DeleteDish handles DELETE /api/v1/dishes/:id and POST /api/v1/dishes/:id/delete
// @Summary Delete a dish
// @Description Delete a dish and all of its links. Deleting a missing dish succeeds.
// @Tags dishes
// @Param id path int true "Dish ID"
// @Success 204 "Deleted"
// @Success 303 "Redirect to /api/v1/dishes"
// @Failure 400 {object} ErrorResponse "Invalid dish ID"
// @Router /dishes/{id} [delete]
func (h *DishHandler) DeleteDish(c *gin.Context) {
	id, ok := parseID(c, "dish")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "delete dish", dishesPath)
		return
	}

	if isFormSubmission(c) {
		redirectToCollection(c, dishesPath, 0)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindDishInput reads a dish from JSON or from form fields. Form submissions list selected
// products in product_ids with an optional quantity_{productId} field each, and selected
// groups in meal_group_ids.
func bindDishInput(c *gin.Context) (*service.DishInput, error) {
	var input service.DishInput
	if !isFormSubmission(c) {
		if err := c.ShouldBindJSON(&input); err != nil {
			return nil, err
		}
		return &input, nil
	}

	fields := map[string]string{}
	input.Name = c.PostForm("name")
	input.Description = optionalFormValue(c, "description")
	input.Instructions = optionalFormValue(c, "instructions")
	input.ImageURL = optionalFormValue(c, "image_url")

	if raw := strings.TrimSpace(c.PostForm("preparation_minutes")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			fields["preparation_minutes"] = "must be a whole number of minutes"
		} else {
			input.PreparationMinutes = &minutes
		}
	}

	for _, raw := range c.PostFormArray("product_ids") {
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			fields["products"] = "must reference products by id"
			continue
		}
		item := service.DishProductInput{ProductID: uint(id)}
		if q, ok := c.GetPostForm("quantity_" + strconv.FormatUint(id, 10)); ok {
			item.Quantity = &q
		}
		input.Products = append(input.Products, item)
	}

	for _, raw := range c.PostFormArray("meal_group_ids") {
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			fields["meal_group_ids"] = "must reference meal groups by id"
			continue
		}
		input.MealGroupIDs = append(input.MealGroupIDs, uint(id))
	}

	if len(fields) > 0 {
		return nil, apperrors.NewFieldsValidationError(fields)
	}
	return &input, nil
}

func optionalFormValue(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

func respondBindError(c *gin.Context, err error) {
	if apperrors.IsValidation(err) {
		respondError(c, err, "bind dish", dishesPath)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
}
