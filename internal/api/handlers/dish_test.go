package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"meal-planner-backend/internal/api/handlers"
	apperrors "meal-planner-backend/internal/errors"
	"meal-planner-backend/internal/mocks"
	"meal-planner-backend/internal/service"
	"meal-planner-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DishHandlerTestSuite defines the test suite for DishHandler
type DishHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockDishSv *mocks.MockDishServiceInterface
	handler    *handlers.DishHandler
	http       *testutils.HTTPTestSuite
}

func (suite *DishHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDishSv = mocks.NewMockDishServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDishHandler(suite.mockDishSv)

	suite.http = testutils.SetupHTTPTest()
	dishes := suite.http.Router.Group("/api/v1/dishes")
	dishes.GET("", suite.handler.ListDishes)
	dishes.POST("", suite.handler.CreateDish)
	dishes.GET("/:id", suite.handler.GetDish)
	dishes.PUT("/:id", suite.handler.UpdateDish)
	dishes.POST("/:id/update", suite.handler.UpdateDish)
	dishes.DELETE("/:id", suite.handler.DeleteDish)
	dishes.POST("/:id/delete", suite.handler.DeleteDish)
}

func (suite *DishHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DishHandlerTestSuite) TestCreateDish_JSON_Created() {
	qty := "200 г"
	minutes := 15
	suite.mockDishSv.EXPECT().
		Add(&service.DishInput{
			Name:               "Каша",
			PreparationMinutes: &minutes,
			Products:           []service.DishProductInput{{ProductID: 1, Quantity: &qty}},
			MealGroupIDs:       []uint{2},
		}).
		Return(&service.DishResponse{ID: 7, Name: "Каша"}, nil)

	body := map[string]interface{}{
		"name":                "Каша",
		"preparation_minutes": 15,
		"products":            []map[string]interface{}{{"product_id": 1, "quantity": "200 г"}},
		"meal_group_ids":      []uint{2},
	}
	w := suite.http.MakeRequest(http.MethodPost, "/api/v1/dishes", body)

	var got service.DishResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), uint(7), got.ID)
}

func (suite *DishHandlerTestSuite) TestCreateDish_Form_ParsesSelections() {
	suite.mockDishSv.EXPECT().Add(gomock.Any()).DoAndReturn(func(in *service.DishInput) (*service.DishResponse, error) {
		assert.Equal(suite.T(), "Омлет", in.Name)
		require.NotNil(suite.T(), in.PreparationMinutes)
		assert.Equal(suite.T(), 10, *in.PreparationMinutes)
		assert.Nil(suite.T(), in.ImageURL)

		require.Len(suite.T(), in.Products, 2)
		assert.Equal(suite.T(), uint(3), in.Products[0].ProductID)
		require.NotNil(suite.T(), in.Products[0].Quantity)
		assert.Equal(suite.T(), "2 шт", *in.Products[0].Quantity)
		assert.Equal(suite.T(), uint(5), in.Products[1].ProductID)
		assert.Nil(suite.T(), in.Products[1].Quantity)

		assert.Equal(suite.T(), []uint{1, 4}, in.MealGroupIDs)
		return &service.DishResponse{ID: 21, Name: in.Name}, nil
	})

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/dishes", url.Values{
		"name":                {"Омлет"},
		"preparation_minutes": {"10"},
		"product_ids":         {"3", "5"},
		"quantity_3":          {"2 шт"},
		"meal_group_ids":      {"1", "4"},
	})

	testutils.AssertRedirect(suite.T(), w, "/api/v1/dishes?focus=21")
}

func (suite *DishHandlerTestSuite) TestCreateDish_Form_BadMinutes() {
	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/dishes", url.Values{
		"name":                {"Омлет"},
		"preparation_minutes": {"quick"},
	})

	var got handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusUnprocessableEntity, &got)
	assert.Equal(suite.T(), "must be a whole number of minutes", got.Fields["preparation_minutes"])
}

func (suite *DishHandlerTestSuite) TestCreateDish_UnknownProducts() {
	suite.mockDishSv.EXPECT().Add(gomock.Any()).
		Return(nil, apperrors.NewFieldsValidationError(map[string]string{"products": "unknown product ids: 42"}))

	body := map[string]interface{}{
		"name":     "Каша",
		"products": []map[string]interface{}{{"product_id": 42}},
	}
	w := suite.http.MakeRequest(http.MethodPost, "/api/v1/dishes", body)

	var got handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusUnprocessableEntity, &got)
	assert.Equal(suite.T(), "unknown product ids: 42", got.Fields["products"])
}

func (suite *DishHandlerTestSuite) TestUpdateDish_JSON_NotFound() {
	suite.mockDishSv.EXPECT().Update(uint(8), gomock.Any()).Return(nil, apperrors.ErrDishNotFound)

	w := suite.http.MakeRequest(http.MethodPut, "/api/v1/dishes/8", map[string]string{"name": "Суп"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "dish not found")
}

func (suite *DishHandlerTestSuite) TestUpdateDish_Form_Duplicate() {
	suite.mockDishSv.EXPECT().Update(uint(8), gomock.Any()).Return(nil, apperrors.ErrDishNameTaken.WithName("Суп"))

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/dishes/8/update", url.Values{"name": {"Суп"}})

	var got handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusConflict, &got)
	assert.Equal(suite.T(), "is already in use", got.Fields["name"])
}

func (suite *DishHandlerTestSuite) TestUpdateDish_Form_Redirects() {
	suite.mockDishSv.EXPECT().Update(uint(8), gomock.Any()).DoAndReturn(func(id uint, in *service.DishInput) (*service.DishResponse, error) {
		assert.Empty(suite.T(), in.Products)
		assert.Empty(suite.T(), in.MealGroupIDs)
		return &service.DishResponse{ID: id, Name: in.Name}, nil
	})

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/dishes/8/update", url.Values{"name": {"Суп"}})

	testutils.AssertRedirect(suite.T(), w, "/api/v1/dishes?focus=8")
}

func (suite *DishHandlerTestSuite) TestListDishes() {
	suite.mockDishSv.EXPECT().List().Return([]service.DishResponse{{ID: 1, Name: "Блины"}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/dishes", nil)

	var got handlers.DishListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got.Dishes, 1)
	assert.Nil(suite.T(), got.Focus)
}

func (suite *DishHandlerTestSuite) TestDeleteDish_Form_Redirects() {
	suite.mockDishSv.EXPECT().Delete(uint(4)).Return(nil)

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/dishes/4/delete", url.Values{})

	testutils.AssertRedirect(suite.T(), w, "/api/v1/dishes")
}

func TestDishHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DishHandlerTestSuite))
}
