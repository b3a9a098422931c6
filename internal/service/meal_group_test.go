package service_test

import (
	"errors"
	"testing"

	"meal-planner-backend/internal/database/models"
	apperrors "meal-planner-backend/internal/errors"
	"meal-planner-backend/internal/mocks"
	"meal-planner-backend/internal/repository"
	"meal-planner-backend/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MealGroupServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockMealGroupRepo *mocks.MockMealGroupRepositoryInterface
	mockCache         *mocks.MockCache
	mealGroupService  *service.MealGroupService
}

func (suite *MealGroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMealGroupRepo = mocks.NewMockMealGroupRepositoryInterface(suite.ctrl)
	suite.mockCache = mocks.NewMockCache(suite.ctrl)
	suite.mealGroupService = service.NewMealGroupService(suite.mockMealGroupRepo, suite.mockCache, service.NewValidator())
}

func (suite *MealGroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MealGroupServiceTestSuite) TestAdd_BlankAccentColorUsesDefault() {
	suite.mockMealGroupRepo.EXPECT().ExistsByNameCI("Завтрак", uint(0)).Return(false, nil)
	suite.mockMealGroupRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.MealGroup) error {
		require.NotNil(suite.T(), g.AccentColor)
		assert.Equal(suite.T(), models.DefaultAccentColor, *g.AccentColor)
		g.ID = 1
		return nil
	})
	suite.mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	resp, err := suite.mealGroupService.Add(&service.MealGroupInput{Name: "Завтрак", AccentColor: strPtr("  ")})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DefaultAccentColor, resp.AccentColor)
	assert.Equal(suite.T(), 0, resp.DishCount)
}

func (suite *MealGroupServiceTestSuite) TestAdd_AcceptsShortHexColor() {
	suite.mockMealGroupRepo.EXPECT().ExistsByNameCI("Обед", uint(0)).Return(false, nil)
	suite.mockMealGroupRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	resp, err := suite.mealGroupService.Add(&service.MealGroupInput{Name: "Обед", AccentColor: strPtr("#f0a")})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "#f0a", resp.AccentColor)
}

func (suite *MealGroupServiceTestSuite) TestAdd_InvalidAccentColor() {
	for _, color := range []string{"F97316", "#F9731", "#GGGGGG", "red"} {
		_, err := suite.mealGroupService.Add(&service.MealGroupInput{Name: "Ужин", AccentColor: strPtr(color)})

		var vErr *apperrors.ValidationError
		require.True(suite.T(), errors.As(err, &vErr), color)
		assert.Equal(suite.T(), "must be a hex color such as #F97316", vErr.FieldMessages()["accent_color"])
	}
}

func (suite *MealGroupServiceTestSuite) TestAdd_DuplicateNameIgnoringCase() {
	suite.mockMealGroupRepo.EXPECT().ExistsByNameCI("ЗАВТРАК", uint(0)).Return(true, nil)

	_, err := suite.mealGroupService.Add(&service.MealGroupInput{Name: "ЗАВТРАК"})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrMealGroupNameTaken))
}

func (suite *MealGroupServiceTestSuite) TestUpdate_SelfRenameAndDefaultColor() {
	existing := &models.MealGroup{
		BaseModel:       models.BaseModel{ID: 2},
		Name:            "Обед",
		AccentColor:     strPtr("#F97316"),
		MealGroupDishes: []models.MealGroupDish{{MealGroupID: 2, DishID: 3}},
	}
	suite.mockMealGroupRepo.EXPECT().GetWithDishes(uint(2)).Return(existing, nil)
	suite.mockMealGroupRepo.EXPECT().ExistsByNameCI("Обед", uint(2)).Return(false, nil)
	suite.mockMealGroupRepo.EXPECT().Update(existing).Return(nil)
	suite.mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	resp, err := suite.mealGroupService.Update(2, &service.MealGroupInput{Name: "Обед"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DefaultAccentColor, resp.AccentColor)
	assert.Equal(suite.T(), 1, resp.DishCount)
}

func (suite *MealGroupServiceTestSuite) TestUpdate_NotFound() {
	suite.mockMealGroupRepo.EXPECT().GetWithDishes(uint(8)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.mealGroupService.Update(8, &service.MealGroupInput{Name: "Обед"})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrMealGroupNotFound))
}

func (suite *MealGroupServiceTestSuite) TestUpdate_UniqueViolationFromStore() {
	existing := &models.MealGroup{BaseModel: models.BaseModel{ID: 2}, Name: "Обед"}
	suite.mockMealGroupRepo.EXPECT().GetWithDishes(uint(2)).Return(existing, nil)
	suite.mockMealGroupRepo.EXPECT().ExistsByNameCI("Ужин", uint(2)).Return(false, nil)
	suite.mockMealGroupRepo.EXPECT().Update(gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: repository.MealGroupNameIndex})

	_, err := suite.mealGroupService.Update(2, &service.MealGroupInput{Name: "Ужин"})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrMealGroupNameTaken))
}

func (suite *MealGroupServiceTestSuite) TestDelete_MissingIsNoOp() {
	suite.mockMealGroupRepo.EXPECT().Delete(uint(8)).Return(false, nil)

	assert.NoError(suite.T(), suite.mealGroupService.Delete(8))
}

func (suite *MealGroupServiceTestSuite) TestList_CountsDishes() {
	suite.mockMealGroupRepo.EXPECT().GetAll().Return([]models.MealGroup{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Завтрак", MealGroupDishes: []models.MealGroupDish{{DishID: 1}, {DishID: 3}}},
		{BaseModel: models.BaseModel{ID: 4}, Name: "Перекус"},
	}, nil)

	resp, err := suite.mealGroupService.List()

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp[0].DishCount)
	assert.Equal(suite.T(), 0, resp[1].DishCount)
}

func TestMealGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MealGroupServiceTestSuite))
}
