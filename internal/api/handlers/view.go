package handlers

import (
	"bytes"
	"net/http"

	"meal-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ViewHandler serves the read-only catalog views
type ViewHandler struct {
	views  service.ViewServiceInterface
	export service.ExportServiceInterface
}

// NewViewHandler creates a new view handler
func NewViewHandler(views service.ViewServiceInterface, export service.ExportServiceInterface) *ViewHandler {
	return &ViewHandler{views: views, export: export}
}

// Overview handles GET /api/v1/overview
// @Summary Home page overview
// @Description Meal groups with dish counts, the six quickest dishes, the pantry and dishes without a group
// @Tags views
// @Produce json
// @Success 200 {object} service.OverviewResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /overview [get]
func (h *ViewHandler) Overview(c *gin.Context) {
	resp, err := h.views.Overview()
	if err != nil {
		respondError(c, err, "load overview", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Menu handles GET /api/v1/menu
// @Summary Menu
// @Description Every meal group with its dishes and products, plus catalog totals
// @Tags views
// @Produce json
// @Success 200 {object} service.MenuResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /menu [get]
func (h *ViewHandler) Menu(c *gin.Context) {
	resp, err := h.views.Menu()
	if err != nil {
		respondError(c, err, "load menu", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GroupDetail handles GET /api/v1/menu/groups/:id
// @Summary Meal group detail
// @Description A meal group's dishes and unique ingredients. A missing group answers 200 with found=false.
// @Tags views
// @Produce json
// @Param id path int true "Meal group ID"
// @Success 200 {object} service.GroupDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid meal group ID"
// @Router /menu/groups/{id} [get]
func (h *ViewHandler) GroupDetail(c *gin.Context) {
	id, ok := parseID(c, "meal group")
	if !ok {
		return
	}

	resp, err := h.views.GroupDetail(id)
	if err != nil {
		respondError(c, err, "load meal group", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// IngredientFrequency handles GET /api/v1/stats/ingredients
// @Summary Ingredient frequency
// @Description The twelve most used products with the number of dishes using each
// @Tags views
// @Produce json
// @Success 200 {array} service.IngredientUsage
// @Router /stats/ingredients [get]
func (h *ViewHandler) IngredientFrequency(c *gin.Context) {
	resp, err := h.views.IngredientFrequency()
	if err != nil {
		respondError(c, err, "count ingredients", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Totals handles GET /api/v1/stats/totals
// @Summary Catalog totals
// @Tags views
// @Produce json
// @Success 200 {object} service.TotalsResponse
// @Router /stats/totals [get]
func (h *ViewHandler) Totals(c *gin.Context) {
	resp, err := h.views.Totals()
	if err != nil {
		respondError(c, err, "count catalog", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HighlightedDishes handles GET /api/v1/dishes/highlighted
// @Summary Highlighted dishes
// @Description The six quickest dishes to prepare; dishes without a preparation time come last
// @Tags views
// @Produce json
// @Success 200 {array} service.DishResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dishes/highlighted [get]
func (h *ViewHandler) HighlightedDishes(c *gin.Context) {
	resp, err := h.views.HighlightedDishes()
	if err != nil {
		respondError(c, err, "load highlighted dishes", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UngroupedDishes handles GET /api/v1/dishes/ungrouped
// @Summary Ungrouped dishes
// @Description Dishes that belong to no meal group, ordered by name
// @Tags views
// @Produce json
// @Success 200 {array} service.DishResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dishes/ungrouped [get]
func (h *ViewHandler) UngroupedDishes(c *gin.Context) {
	resp, err := h.views.UngroupedDishes()
	if err != nil {
		respondError(c, err, "load ungrouped dishes", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportCatalog handles GET /api/v1/export/catalog.xlsx
// @Summary Export the catalog
// @Description Download products, dishes, meal groups and ingredient usage as an Excel workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /export/catalog.xlsx [get]
func (h *ViewHandler) ExportCatalog(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.export.ExportCatalog(&buf); err != nil {
		respondError(c, err, "export catalog", "")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="catalog.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
