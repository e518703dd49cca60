package service_test

import (
	"testing"

	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/mocks"
	"product-relations-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

type ProductServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockProductRepositoryInterface
	service  *service.ProductService
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProductRepositoryInterface(suite.ctrl)
	suite.service = service.NewProductService(suite.mockRepo, validator.New())
}

func (suite *ProductServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProductServiceTestSuite) TestUpsertProduct_Success() {
	images := models.ImageSet{models.ImageSizeFull: "https://cdn.example.com/1.jpg"}
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(p *models.Product) error {
		assert.Equal(suite.T(), uint64(1001), p.ID)
		assert.Equal(suite.T(), "Linen Shirt", p.Name)
		return nil
	})
	suite.mockRepo.EXPECT().SetAttributeValue(uint64(1001), uint64(7), "Blue").Return(nil)
	suite.mockRepo.EXPECT().GetByID(uint64(1001)).Return(&models.Product{
		ID:     1001,
		Name:   "Linen Shirt",
		Images: datatypes.NewJSONType(images),
	}, nil)

	resp, err := suite.service.UpsertProduct(1001, &service.UpsertProductRequest{
		Name:       "Linen Shirt",
		Images:     map[string]string{models.ImageSizeFull: "https://cdn.example.com/1.jpg"},
		Attributes: map[uint64]string{7: "Blue"},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://cdn.example.com/1.jpg", resp.Images[models.ImageSizeFull])
	assert.Equal(suite.T(), "Blue", resp.Attributes[7])
}

func (suite *ProductServiceTestSuite) TestUpsertProduct_ValidationError() {
	resp, err := suite.service.UpsertProduct(1001, &service.UpsertProductRequest{
		Name:   "Linen Shirt",
		Images: map[string]string{"full": "not-a-url"},
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ProductServiceTestSuite) TestUpsertProduct_MissingID() {
	_, err := suite.service.UpsertProduct(0, &service.UpsertProductRequest{Name: "Linen Shirt"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
