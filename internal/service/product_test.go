package service_test

import (
	"errors"
	"strings"
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

type ProductServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProductRepo *mocks.MockProductRepositoryInterface
	mockCache       *mocks.MockCache
	productService  *service.ProductService
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProductRepo = mocks.NewMockProductRepositoryInterface(suite.ctrl)
	suite.mockCache = mocks.NewMockCache(suite.ctrl)
	suite.productService = service.NewProductService(suite.mockProductRepo, suite.mockCache, service.NewValidator())
}

func (suite *ProductServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func strPtr(s string) *string { return &s }

func (suite *ProductServiceTestSuite) TestAdd_Success_TrimsAndDropsBlankOptionals() {
	suite.mockProductRepo.EXPECT().ExistsByNameCI("Молоко", uint(0)).Return(false, nil)
	suite.mockProductRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Product) error {
		assert.Equal(suite.T(), "Молоко", p.Name)
		assert.Equal(suite.T(), "Молочные продукты", *p.Category)
		assert.Nil(suite.T(), p.Notes)
		p.ID = 10
		return nil
	})
	suite.mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	resp, err := suite.productService.Add(&service.ProductInput{
		Name:     "  Молоко ",
		Category: strPtr(" Молочные продукты "),
		Notes:    strPtr("   "),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(10), resp.ID)
	assert.Equal(suite.T(), "Молоко", resp.Name)
	assert.Nil(suite.T(), resp.Notes)
}

func (suite *ProductServiceTestSuite) TestAdd_DuplicateNameIgnoringCase() {
	suite.mockProductRepo.EXPECT().ExistsByNameCI("milk", uint(0)).Return(true, nil)

	resp, err := suite.productService.Add(&service.ProductInput{Name: "milk"})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsDuplicateName(err))
	assert.True(suite.T(), errors.Is(err, apperrors.ErrProductNameTaken))
	assert.Contains(suite.T(), err.Error(), `"milk"`)
}

func (suite *ProductServiceTestSuite) TestAdd_ValidationError_ReportsEveryField() {
	resp, err := suite.productService.Add(&service.ProductInput{
		Name:     "   ",
		Category: strPtr(strings.Repeat("к", 41)),
		Notes:    strPtr(strings.Repeat("n", 201)),
	})

	assert.Nil(suite.T(), resp)
	var vErr *apperrors.ValidationError
	require.True(suite.T(), errors.As(err, &vErr))
	fields := vErr.FieldMessages()
	assert.Equal(suite.T(), "is required", fields["name"])
	assert.Equal(suite.T(), "must be at most 40 characters", fields["category"])
	assert.Equal(suite.T(), "must be at most 200 characters", fields["notes"])
}

func (suite *ProductServiceTestSuite) TestAdd_NameLengthCountsCharacters() {
	name := strings.Repeat("я", 80)
	suite.mockProductRepo.EXPECT().ExistsByNameCI(name, uint(0)).Return(false, nil)
	suite.mockProductRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	_, err := suite.productService.Add(&service.ProductInput{Name: name})

	assert.NoError(suite.T(), err)
}

func (suite *ProductServiceTestSuite) TestAdd_UniqueViolationFromStore_IsDuplicate() {
	suite.mockProductRepo.EXPECT().ExistsByNameCI("Rice", uint(0)).Return(false, nil)
	suite.mockProductRepo.EXPECT().Create(gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: repository.ProductNameIndex})

	resp, err := suite.productService.Add(&service.ProductInput{Name: "Rice"})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrProductNameTaken))
}

func (suite *ProductServiceTestSuite) TestAdd_StoreError() {
	suite.mockProductRepo.EXPECT().ExistsByNameCI("Rice", uint(0)).Return(false, nil)
	suite.mockProductRepo.EXPECT().Create(gomock.Any()).Return(errors.New("db failed"))

	_, err := suite.productService.Add(&service.ProductInput{Name: "Rice"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to create product")
	assert.False(suite.T(), apperrors.IsDuplicateName(err))
}

func (suite *ProductServiceTestSuite) TestUpdate_SelfRenamePasses() {
	existing := &models.Product{BaseModel: models.BaseModel{ID: 3}, Name: "Rice"}
	suite.mockProductRepo.EXPECT().GetByID(uint(3)).Return(existing, nil)
	suite.mockProductRepo.EXPECT().ExistsByNameCI("Rice", uint(3)).Return(false, nil)
	suite.mockProductRepo.EXPECT().Update(existing).Return(nil)
	suite.mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	resp, err := suite.productService.Update(3, &service.ProductInput{Name: "Rice", Notes: strPtr("basmati")})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Rice", resp.Name)
	assert.Equal(suite.T(), "basmati", *resp.Notes)
}

func (suite *ProductServiceTestSuite) TestUpdate_ClearsOptionalFields() {
	existing := &models.Product{BaseModel: models.BaseModel{ID: 3}, Name: "Rice", Category: strPtr("Grain")}
	suite.mockProductRepo.EXPECT().GetByID(uint(3)).Return(existing, nil)
	suite.mockProductRepo.EXPECT().ExistsByNameCI("Rice", uint(3)).Return(false, nil)
	suite.mockProductRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Product) error {
		assert.Nil(suite.T(), p.Category)
		return nil
	})
	suite.mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	_, err := suite.productService.Update(3, &service.ProductInput{Name: "Rice"})

	assert.NoError(suite.T(), err)
}

func (suite *ProductServiceTestSuite) TestUpdate_NotFound() {
	suite.mockProductRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.productService.Update(99, &service.ProductInput{Name: "Rice"})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrProductNotFound))
}

func (suite *ProductServiceTestSuite) TestUpdate_DuplicateOfAnotherProduct() {
	existing := &models.Product{BaseModel: models.BaseModel{ID: 3}, Name: "Rice"}
	suite.mockProductRepo.EXPECT().GetByID(uint(3)).Return(existing, nil)
	suite.mockProductRepo.EXPECT().ExistsByNameCI("MILK", uint(3)).Return(true, nil)

	_, err := suite.productService.Update(3, &service.ProductInput{Name: "MILK"})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrProductNameTaken))
}

func (suite *ProductServiceTestSuite) TestDelete_MissingIsNoOp() {
	suite.mockProductRepo.EXPECT().Delete(uint(404)).Return(false, nil)

	err := suite.productService.Delete(404)

	assert.NoError(suite.T(), err)
}

func (suite *ProductServiceTestSuite) TestDelete_InvalidatesViews() {
	suite.mockProductRepo.EXPECT().Delete(uint(1)).Return(true, nil)
	suite.mockCache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

	err := suite.productService.Delete(1)

	assert.NoError(suite.T(), err)
}

func (suite *ProductServiceTestSuite) TestGetByID_NotFound() {
	suite.mockProductRepo.EXPECT().GetByID(uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.productService.GetByID(5)

	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *ProductServiceTestSuite) TestList_Success() {
	suite.mockProductRepo.EXPECT().GetAll().Return([]models.Product{
		{BaseModel: models.BaseModel{ID: 2}, Name: "Apple"},
		{BaseModel: models.BaseModel{ID: 1}, Name: "Bread"},
	}, nil)

	resp, err := suite.productService.List()

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "Apple", resp[0].Name)
}

func (suite *ProductServiceTestSuite) TestList_StoreError() {
	suite.mockProductRepo.EXPECT().GetAll().Return(nil, errors.New("db failed"))

	resp, err := suite.productService.List()

	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to get products")
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
