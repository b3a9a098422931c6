package handlers

import (
	"net/http"

	"meal-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service service.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(service service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// ProductListResponse is the products page
type ProductListResponse struct {
	Products []service.ProductResponse `json:"products"`
	Focus    *uint                     `json:"focus,omitempty"`
}

// ListProducts handles GET /api/v1/products
// @Summary List products
// @Description List all products ordered by name
// @Tags products
// @Produce json
// @Param focus query int false "ID of the product to highlight"
// @Success 200 {object} ProductListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.List()
	if err != nil {
		respondError(c, err, "list products", productsPath)
		return
	}
	c.JSON(http.StatusOK, ProductListResponse{Products: products, Focus: parseFocus(c)})
}

// CreateProduct handles POST /api/v1/products
// @Summary Create a product
// @Description Create a product from JSON or form fields. Form submissions are redirected to the products page.
// @Tags products
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param product body service.ProductInput true "Product data"
// @Success 201 {object} service.ProductResponse
// @Success 303 "Redirect to /api/v1/products?focus={id}"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Product name already in use"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := h.service.Add(&input)
	if err != nil {
		respondError(c, err, "create product", productsPath)
		return
	}

	if isFormSubmission(c) {
		redirectToCollection(c, productsPath, product.ID)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// GetProduct handles GET /api/v1/products/:id
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} service.ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "product")
	if !ok {
		return
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "get product", productsPath)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /api/v1/products/:id and POST /api/v1/products/:id/update
// @Summary Update a product
// @Description Replace all editable fields of a product
// @Tags products
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Product ID"
// @Param product body service.ProductInput true "Product data"
// @Success 200 {object} service.ProductResponse
// @Success 303 "Redirect to /api/v1/products?focus={id}"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 409 {object} ErrorResponse "Product name already in use"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "product")
	if !ok {
		return
	}

	var input service.ProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := h.service.Update(id, &input)
	if err != nil {
		respondError(c, err, "update product", productsPath)
		return
	}

	if isFormSubmission(c) {
		redirectToCollection(c, productsPath, product.ID)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id and POST /api/v1/products/:id/delete
// @Summary Delete a product
// @Description Delete a product and its dish links. Deleting a missing product succeeds.
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted"
// @Success 303 "Redirect to /api/v1/products"
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "product")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "delete product", productsPath)
		return
	}

	if isFormSubmission(c) {
		redirectToCollection(c, productsPath, 0)
		return
	}
	c.Status(http.StatusNoContent)
}
