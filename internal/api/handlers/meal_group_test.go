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

type MealGroupHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockGroupSv *mocks.MockMealGroupServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *MealGroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupSv = mocks.NewMockMealGroupServiceInterface(suite.ctrl)
	handler := handlers.NewMealGroupHandler(suite.mockGroupSv)

	suite.http = testutils.SetupHTTPTest()
	groups := suite.http.Router.Group("/api/v1/meal-groups")
	groups.GET("", handler.ListMealGroups)
	groups.POST("", handler.CreateMealGroup)
	groups.GET("/:id", handler.GetMealGroup)
	groups.PUT("/:id", handler.UpdateMealGroup)
	groups.POST("/:id/update", handler.UpdateMealGroup)
	groups.DELETE("/:id", handler.DeleteMealGroup)
	groups.POST("/:id/delete", handler.DeleteMealGroup)
}

func (suite *MealGroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MealGroupHandlerTestSuite) TestListMealGroups() {
	suite.mockGroupSv.EXPECT().List().Return([]service.MealGroupResponse{
		{ID: 1, Name: "Завтрак", AccentColor: "#F97316", DishCount: 2},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/meal-groups?focus=1", nil)

	var got handlers.MealGroupListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	require.Len(suite.T(), got.MealGroups, 1)
	assert.Equal(suite.T(), 2, got.MealGroups[0].DishCount)
	require.NotNil(suite.T(), got.Focus)
	assert.Equal(suite.T(), uint(1), *got.Focus)
}

func (suite *MealGroupHandlerTestSuite) TestCreateMealGroup_Form() {
	suite.mockGroupSv.EXPECT().Add(gomock.Any()).DoAndReturn(func(in *service.MealGroupInput) (*service.MealGroupResponse, error) {
		assert.Equal(suite.T(), "Ужин", in.Name)
		require.NotNil(suite.T(), in.AccentColor)
		assert.Equal(suite.T(), "#10B981", *in.AccentColor)
		return &service.MealGroupResponse{ID: 6, Name: in.Name, AccentColor: *in.AccentColor}, nil
	})

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/meal-groups", url.Values{
		"name":         {"Ужин"},
		"accent_color": {"#10B981"},
	})

	testutils.AssertRedirect(suite.T(), w, "/api/v1/meal-groups?focus=6")
}

func (suite *MealGroupHandlerTestSuite) TestCreateMealGroup_BadColor() {
	suite.mockGroupSv.EXPECT().Add(gomock.Any()).
		Return(nil, apperrors.NewFieldsValidationError(map[string]string{"accent_color": "must be a hex color such as #F97316"}))

	w := suite.http.MakeRequest(http.MethodPost, "/api/v1/meal-groups", map[string]string{"name": "Ужин", "accent_color": "red"})

	var got handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusUnprocessableEntity, &got)
	assert.Contains(suite.T(), got.Fields, "accent_color")
}

func (suite *MealGroupHandlerTestSuite) TestGetMealGroup_NotFound() {
	suite.mockGroupSv.EXPECT().GetByID(uint(3)).Return(nil, apperrors.ErrMealGroupNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/meal-groups/3", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "meal group not found")
}

func (suite *MealGroupHandlerTestSuite) TestUpdateMealGroup_FormMissing_RedirectsToList() {
	suite.mockGroupSv.EXPECT().Update(uint(3), gomock.Any()).Return(nil, apperrors.ErrMealGroupNotFound)

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/meal-groups/3/update", url.Values{"name": {"Обед"}})

	testutils.AssertRedirect(suite.T(), w, "/api/v1/meal-groups")
}

func (suite *MealGroupHandlerTestSuite) TestDeleteMealGroup() {
	suite.mockGroupSv.EXPECT().Delete(uint(3)).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/api/v1/meal-groups/3", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *MealGroupHandlerTestSuite) TestDeleteMealGroup_InvalidID() {
	w := suite.http.MakeRequest(http.MethodDelete, "/api/v1/meal-groups/0", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid meal group ID")
}

func TestMealGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MealGroupHandlerTestSuite))
}
