//go:build integration
// +build integration

package repository

import (
	"testing"

	"meal-planner-backend/internal/database/models"
	"meal-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// DishRepositoryTestSuite tests the DishRepository
type DishRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DishRepository
	productRepo   *ProductRepository
	groupRepo     *MealGroupRepository
	dishes        *testutils.DishFactory
	products      *testutils.ProductFactory
	groups        *testutils.MealGroupFactory
}

func (suite *DishRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewDishRepository(suite.baseTestSuite.DB)
	suite.productRepo = NewProductRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewMealGroupRepository(suite.baseTestSuite.DB)
	suite.dishes = testutils.NewDishFactory()
	suite.products = testutils.NewProductFactory()
	suite.groups = testutils.NewMealGroupFactory()
}

func (suite *DishRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *DishRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *DishRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *DishRepositoryTestSuite) createProduct(name string) *models.Product {
	p := suite.products.WithName(name)
	suite.Require().NoError(suite.productRepo.Create(p))
	return p
}

func (suite *DishRepositoryTestSuite) createGroup(name string) *models.MealGroup {
	g := suite.groups.WithName(name)
	suite.Require().NoError(suite.groupRepo.Create(g))
	return g
}

func (suite *DishRepositoryTestSuite) TestCreateWithLinks() {
	milk := suite.createProduct("Milk")
	oats := suite.createProduct("Oats")
	breakfast := suite.createGroup("Breakfast")

	dish := suite.dishes.WithName("Porridge")
	err := suite.repo.CreateWithLinks(dish, []models.DishProduct{
		{ProductID: milk.ID, Quantity: testutils.StringPtr("200 ml")},
		{ProductID: oats.ID},
	}, []uint{breakfast.ID})
	suite.Require().NoError(err)
	suite.NotZero(dish.ID)

	got, err := suite.repo.GetWithLinks(dish.ID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]uint{milk.ID, oats.ID}, got.ProductIDs())
	suite.Equal([]uint{breakfast.ID}, got.MealGroupIDs())
	for _, link := range got.DishProducts {
		suite.Require().NotNil(link.Product)
		if link.ProductID == milk.ID {
			suite.Equal("200 ml", *link.Quantity)
		} else {
			suite.Nil(link.Quantity)
		}
	}
	suite.Equal("Breakfast", got.MealGroupDishes[0].MealGroup.Name)
}

func (suite *DishRepositoryTestSuite) TestCreateWithLinks_UnknownProductRollsBack() {
	dish := suite.dishes.WithName("Ghost")
	err := suite.repo.CreateWithLinks(dish, []models.DishProduct{{ProductID: 4242}}, nil)
	suite.Error(err)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Dish{}).Where("name = ?", "Ghost").Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *DishRepositoryTestSuite) TestCreateWithLinks_DuplicateName() {
	suite.Require().NoError(suite.repo.CreateWithLinks(suite.dishes.WithName("Soup"), nil, nil))

	err := suite.repo.CreateWithLinks(suite.dishes.WithName("Soup"), nil, nil)
	suite.True(IsUniqueViolation(err, DishNameIndex))
}

func (suite *DishRepositoryTestSuite) TestListWithRelations_OrderedByName() {
	suite.Require().NoError(suite.repo.CreateWithLinks(suite.dishes.WithName("Toast"), nil, nil))
	suite.Require().NoError(suite.repo.CreateWithLinks(suite.dishes.WithName("Omelette"), nil, nil))

	dishes, err := suite.repo.ListWithRelations()
	suite.NoError(err)
	suite.Require().Len(dishes, 2)
	suite.Equal("Omelette", dishes[0].Name)
	suite.Equal("Toast", dishes[1].Name)
}

func (suite *DishRepositoryTestSuite) TestListUngrouped() {
	lunch := suite.createGroup("Lunch")
	suite.Require().NoError(suite.repo.CreateWithLinks(suite.dishes.WithName("Grouped"), nil, []uint{lunch.ID}))
	suite.Require().NoError(suite.repo.CreateWithLinks(suite.dishes.WithName("Loose"), nil, nil))

	dishes, err := suite.repo.ListUngrouped()
	suite.NoError(err)
	suite.Require().Len(dishes, 1)
	suite.Equal("Loose", dishes[0].Name)
}

func (suite *DishRepositoryTestSuite) TestUpdateWithLinks() {
	a := suite.createProduct("A")
	b := suite.createProduct("B")
	c := suite.createProduct("C")
	lunch := suite.createGroup("Lunch")
	dinner := suite.createGroup("Dinner")

	dish := suite.dishes.WithName("Stew")
	suite.Require().NoError(suite.repo.CreateWithLinks(dish, []models.DishProduct{
		{ProductID: a.ID, Quantity: testutils.StringPtr("1")},
		{ProductID: b.ID, Quantity: testutils.StringPtr("2")},
	}, []uint{lunch.ID}))

	dish.Name = "Beef stew"
	dish.Description = nil
	dish.PreparationMinutes = testutils.IntPtr(90)
	err := suite.repo.UpdateWithLinks(dish, LinkChanges{
		AddProducts:        []models.DishProduct{{ProductID: c.ID, Quantity: testutils.StringPtr("3")}},
		UpdateQuantities:   []models.DishProduct{{ProductID: b.ID, Quantity: nil}},
		RemoveProductIDs:   []uint{a.ID},
		AddMealGroupIDs:    []uint{dinner.ID},
		RemoveMealGroupIDs: []uint{lunch.ID},
	})
	suite.Require().NoError(err)

	got, err := suite.repo.GetWithLinks(dish.ID)
	suite.Require().NoError(err)
	suite.Equal("Beef stew", got.Name)
	suite.Nil(got.Description)
	suite.Equal(90, *got.PreparationMinutes)
	suite.ElementsMatch([]uint{b.ID, c.ID}, got.ProductIDs())
	suite.Equal([]uint{dinner.ID}, got.MealGroupIDs())
	for _, link := range got.DishProducts {
		if link.ProductID == b.ID {
			suite.Nil(link.Quantity)
		}
	}
}

func (suite *DishRepositoryTestSuite) TestUpdateWithLinks_FailureKeepsLinks() {
	a := suite.createProduct("A")
	dish := suite.dishes.WithName("Salad")
	suite.Require().NoError(suite.repo.CreateWithLinks(dish, []models.DishProduct{{ProductID: a.ID}}, nil))

	dish.Name = "Greek salad"
	err := suite.repo.UpdateWithLinks(dish, LinkChanges{
		RemoveProductIDs: []uint{a.ID},
		AddProducts:      []models.DishProduct{{ProductID: 999999}},
	})
	suite.Error(err)

	got, err := suite.repo.GetWithLinks(dish.ID)
	suite.Require().NoError(err)
	suite.Equal("Salad", got.Name)
	suite.Equal([]uint{a.ID}, got.ProductIDs())
}

func (suite *DishRepositoryTestSuite) TestDelete_CascadesLinks() {
	a := suite.createProduct("A")
	lunch := suite.createGroup("Lunch")
	dish := suite.dishes.Create()
	suite.Require().NoError(suite.repo.CreateWithLinks(dish, []models.DishProduct{{ProductID: a.ID}}, []uint{lunch.ID}))

	removed, err := suite.repo.Delete(dish.ID)
	suite.NoError(err)
	suite.True(removed)

	var links, groupLinks int64
	suite.baseTestSuite.DB.Model(&models.DishProduct{}).Count(&links)
	suite.baseTestSuite.DB.Model(&models.MealGroupDish{}).Count(&groupLinks)
	suite.Equal(int64(0), links)
	suite.Equal(int64(0), groupLinks)

	removed, err = suite.repo.Delete(dish.ID)
	suite.NoError(err)
	suite.False(removed)
}

func (suite *DishRepositoryTestSuite) TestExistsByNameCI() {
	dish := suite.dishes.WithName("Pancakes")
	suite.Require().NoError(suite.repo.CreateWithLinks(dish, nil, nil))

	exists, err := suite.repo.ExistsByNameCI("pancakes", 0)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsByNameCI("PANCAKES", dish.ID)
	suite.NoError(err)
	suite.False(exists)
}

func TestDishRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DishRepositoryTestSuite))
}
