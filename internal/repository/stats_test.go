//go:build integration
// +build integration

package repository

import (
	"testing"

	"meal-planner-backend/internal/database/models"
	"meal-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// StatsRepositoryTestSuite tests the catalog counters
type StatsRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *StatsRepository
}

func (suite *StatsRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewStatsRepository(suite.baseTestSuite.DB)
}

func (suite *StatsRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *StatsRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *StatsRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *StatsRepositoryTestSuite) TestTotals_Empty() {
	totals, err := suite.repo.Totals()
	suite.NoError(err)
	suite.Equal(CatalogTotals{}, *totals)
}

func (suite *StatsRepositoryTestSuite) TestTotals_SeededCatalog() {
	suite.baseTestSuite.SeedCatalog(suite.T())

	totals, err := suite.repo.Totals()
	suite.NoError(err)
	suite.Equal(int64(4), totals.MealGroups)
	suite.Equal(int64(3), totals.Dishes)
	suite.Equal(int64(9), totals.ProductsInUse)
	suite.Equal(int64(0), totals.UngroupedDishes)
}

func (suite *StatsRepositoryTestSuite) TestTotals_CountsUngroupedAndDistinctProducts() {
	suite.baseTestSuite.SeedCatalog(suite.T())
	dishRepo := NewDishRepository(suite.baseTestSuite.DB)

	// reuses products 1 and 2, so products in use stays at 9
	dish := testutils.NewDishFactory().WithName("Scrambled eggs")
	suite.Require().NoError(dishRepo.CreateWithLinks(dish, []models.DishProduct{{ProductID: 1}, {ProductID: 2}}, nil))

	totals, err := suite.repo.Totals()
	suite.NoError(err)
	suite.Equal(int64(4), totals.Dishes)
	suite.Equal(int64(9), totals.ProductsInUse)
	suite.Equal(int64(1), totals.UngroupedDishes)
}

func TestStatsRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StatsRepositoryTestSuite))
}
