package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/mocks"
	"product-relations-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductGroupServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRelations *mocks.MockRelationRepositoryInterface
	mockGroups    *mocks.MockRelationGroupRepositoryInterface
	mockProducts  *mocks.MockProductRepositoryInterface
	mockPrices    *mocks.MockPriceHistoryRepositoryInterface
	service       *service.ProductGroupService
}

func (suite *ProductGroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRelations = mocks.NewMockRelationRepositoryInterface(suite.ctrl)
	suite.mockGroups = mocks.NewMockRelationGroupRepositoryInterface(suite.ctrl)
	suite.mockProducts = mocks.NewMockProductRepositoryInterface(suite.ctrl)
	suite.mockPrices = mocks.NewMockPriceHistoryRepositoryInterface(suite.ctrl)
	suite.service = service.NewProductGroupService(suite.mockRelations, suite.mockGroups, suite.mockProducts, suite.mockPrices, 0)
}

func (suite *ProductGroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func group(id uint64, name string, sortOrder int, onList bool) *models.RelationGroup {
	return &models.RelationGroup{
		BaseModel:           models.BaseModel{ID: id},
		Name:                name,
		DisplayOnList:       onList,
		DisplayStyleSingle:  models.DisplayStyleImageProduct,
		DisplayStyleArchive: models.DisplayStyleText,
		SortOrder:           sortOrder,
	}
}

func relation(id, productID, relatedID uint64, g *models.RelationGroup, sortOrder int) models.ProductRelation {
	return models.ProductRelation{
		ID:               id,
		ProductID:        productID,
		RelatedProductID: relatedID,
		GroupID:          g.ID,
		SortOrder:        sortOrder,
		Group:            g,
	}
}

func product(id uint64, name string) models.Product {
	return models.Product{
		ID:        id,
		Name:      name,
		Permalink: "https://shop.example.com/p/" + name,
		Images: datatypes.NewJSONType(models.ImageSet{
			"thumbnail":          "https://cdn.example.com/" + name + "-thumb.jpg",
			models.ImageSizeFull: "https://cdn.example.com/" + name + ".jpg",
		}),
	}
}

func catalog(ids ...uint64) []models.Product {
	products := make([]models.Product, len(ids))
	for i, id := range ids {
		products[i] = product(id, "p"+string(rune('0'+id)))
	}
	return products
}

func (suite *ProductGroupServiceTestSuite) TestBuildGroups_OrdersGroupsAndMembers() {
	g1 := group(1, "Size", 5, true)
	g2 := group(2, "Color", 1, true)
	rows := []models.ProductRelation{
		relation(10, 1, 2, g1, 1),
		relation(11, 1, 3, g1, 0),
		relation(12, 1, 4, g2, 0),
	}
	suite.mockRelations.EXPECT().GetRelationsForProduct(uint64(1), models.ContextSingle).Return(rows, nil)
	suite.mockProducts.EXPECT().GetByIDs(gomock.Any()).Return(catalog(1, 2, 3, 4), nil)

	views, err := suite.service.BuildGroups(context.Background(), 1, models.ContextSingle)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), views, 2)
	assert.Equal(suite.T(), uint64(2), views[0].GroupID)
	assert.Equal(suite.T(), "Color", views[0].GroupName)
	assert.Equal(suite.T(), []uint64{1, 4}, views[0].Relations)
	assert.Equal(suite.T(), uint64(1), views[1].GroupID)
	assert.Equal(suite.T(), []uint64{1, 3, 2}, views[1].Relations)
	assert.Equal(suite.T(), models.DisplayStyleImageProduct, views[1].Layout)

	require.Len(suite.T(), views[1].Members, 3)
	assert.True(suite.T(), views[1].Members[0].Current)
	assert.False(suite.T(), views[1].Members[1].Current)
	assert.Equal(suite.T(), "p3", views[1].Members[1].Label)
	require.NotNil(suite.T(), views[1].Members[1].Image)
	assert.Equal(suite.T(), "https://cdn.example.com/p3-thumb.jpg", views[1].Members[1].Image.URL)
}

func (suite *ProductGroupServiceTestSuite) TestBuildGroups_ListingOmitsHiddenGroups() {
	g1 := group(1, "Size", 5, false)
	g2 := group(2, "Color", 1, true)
	rows := []models.ProductRelation{
		relation(10, 1, 2, g1, 0),
		relation(12, 1, 4, g2, 0),
	}
	suite.mockRelations.EXPECT().GetRelationsForProduct(uint64(1), models.ContextListing).Return(rows, nil)
	suite.mockRelations.EXPECT().GetRelationsForProduct(uint64(1), models.ContextSingle).Return(rows, nil)
	suite.mockProducts.EXPECT().GetByIDs(gomock.Any()).Return(catalog(1, 2, 4), nil).Times(2)

	listing, err := suite.service.BuildGroups(context.Background(), 1, models.ContextListing)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), listing, 1)
	assert.Equal(suite.T(), uint64(2), listing[0].GroupID)
	// Listing uses the archive style, which is text here
	assert.Equal(suite.T(), models.DisplayStyleText, listing[0].Layout)
	assert.Nil(suite.T(), listing[0].Members[0].Image)

	single, err := suite.service.BuildGroups(context.Background(), 1, models.ContextSingle)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), single, 2)
}

func (suite *ProductGroupServiceTestSuite) TestBuildGroups_EmptyIsNotAnError() {
	suite.mockRelations.EXPECT().GetRelationsForProduct(uint64(7), models.ContextSingle).Return([]models.ProductRelation{}, nil)

	views, err := suite.service.BuildGroups(context.Background(), 7, models.ContextSingle)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), views)
	assert.Empty(suite.T(), views)
}

func (suite *ProductGroupServiceTestSuite) TestBuildGroups_SkipsSelfLoopsAndDuplicates() {
	g := group(1, "Color", 0, true)
	rows := []models.ProductRelation{
		relation(10, 1, 2, g, 0),
		relation(11, 1, 1, g, 1),
		relation(12, 1, 2, g, 2),
	}
	suite.mockRelations.EXPECT().GetRelationsForProduct(uint64(1), models.ContextSingle).Return(rows, nil)
	suite.mockProducts.EXPECT().GetByIDs([]uint64{1, 2}).Return(catalog(1, 2), nil)

	views, err := suite.service.BuildGroups(context.Background(), 1, models.ContextSingle)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), views, 1)
	assert.Equal(suite.T(), []uint64{1, 2}, views[0].Relations)
}

func (suite *ProductGroupServiceTestSuite) TestBuildGroups_MissingCatalogProductKeepsRelation() {
	g := group(1, "Color", 0, true)
	rows := []models.ProductRelation{relation(10, 1, 2, g, 0)}
	suite.mockRelations.EXPECT().GetRelationsForProduct(uint64(1), models.ContextSingle).Return(rows, nil)
	suite.mockProducts.EXPECT().GetByIDs(gomock.Any()).Return(catalog(1), nil)

	views, err := suite.service.BuildGroups(context.Background(), 1, models.ContextSingle)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uint64{1, 2}, views[0].Relations)
	assert.Len(suite.T(), views[0].Members, 1)
}

func (suite *ProductGroupServiceTestSuite) TestBuildGroups_CustomSettingsWin() {
	g := group(1, "Color", 0, true)
	row := relation(10, 1, 2, g, 0)
	row.Settings = models.NewRelationSetting(models.RelationSettingsData{
		CustomLabel: "Ocean Blue",
		CustomImage: "https://cdn.example.com/swatches/ocean.png",
	})
	suite.mockRelations.EXPECT().GetRelationsForProduct(uint64(1), models.ContextSingle).Return([]models.ProductRelation{row}, nil)
	suite.mockProducts.EXPECT().GetByIDs(gomock.Any()).Return(catalog(1, 2), nil)

	views, err := suite.service.BuildGroups(context.Background(), 1, models.ContextSingle)

	require.NoError(suite.T(), err)
	member := views[0].Members[1]
	assert.Equal(suite.T(), "Ocean Blue", member.Label)
	require.NotNil(suite.T(), member.Image)
	assert.True(suite.T(), member.Image.Custom)
	assert.Equal(suite.T(), "https://cdn.example.com/swatches/ocean.png", member.Image.URL)
	// The current product never inherits the pair's overrides
	assert.Equal(suite.T(), "p1", views[0].Members[0].Label)
}

func (suite *ProductGroupServiceTestSuite) TestBuildGroups_LowestPrice() {
	svc := service.NewProductGroupService(suite.mockRelations, suite.mockGroups, suite.mockProducts, suite.mockPrices, 30)
	g := group(1, "Color", 0, true)
	suite.mockRelations.EXPECT().GetRelationsForProduct(uint64(1), models.ContextSingle).
		Return([]models.ProductRelation{relation(10, 1, 2, g, 0)}, nil)
	suite.mockProducts.EXPECT().GetByIDs(gomock.Any()).Return(catalog(1, 2), nil)
	suite.mockPrices.EXPECT().LowestSinceMany([]uint64{1, 2}, gomock.Any()).
		DoAndReturn(func(_ []uint64, since time.Time) (map[uint64]float64, error) {
			assert.WithinDuration(suite.T(), time.Now().UTC().AddDate(0, 0, -30), since, time.Minute)
			return map[uint64]float64{2: 17.5}, nil
		})

	views, err := svc.BuildGroups(context.Background(), 1, models.ContextSingle)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), views[0].Members[0].LowestPrice)
	require.NotNil(suite.T(), views[0].Members[1].LowestPrice)
	assert.InDelta(suite.T(), 17.5, *views[0].Members[1].LowestPrice, 0.0001)
}

func (suite *ProductGroupServiceTestSuite) TestBuildGroups_LowestPriceFailureIsLogged() {
	svc := service.NewProductGroupService(suite.mockRelations, suite.mockGroups, suite.mockProducts, suite.mockPrices, 30)
	g := group(1, "Color", 0, true)
	suite.mockRelations.EXPECT().GetRelationsForProduct(uint64(1), models.ContextSingle).
		Return([]models.ProductRelation{relation(10, 1, 2, g, 0), relation(11, 1, 3, g, 1)}, nil)
	suite.mockProducts.EXPECT().GetByIDs(gomock.Any()).Return(catalog(1, 2, 3), nil)
	suite.mockPrices.EXPECT().LowestSinceMany([]uint64{1, 2, 3}, gomock.Any()).Times(1).
		Return(nil, errors.New("statement timeout"))

	views, err := svc.BuildGroups(context.Background(), 1, models.ContextSingle)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), views[0].Members, 3)
	for _, member := range views[0].Members {
		assert.Nil(suite.T(), member.LowestPrice)
	}
}

func (suite *ProductGroupServiceTestSuite) TestBuildGroups_StorageErrorPropagates() {
	storageErr := apperrors.NewStorageError("get relations for product", errors.New("connection refused"))
	suite.mockRelations.EXPECT().GetRelationsForProduct(uint64(1), models.ContextSingle).Return(nil, storageErr)

	views, err := suite.service.BuildGroups(context.Background(), 1, models.ContextSingle)

	assert.Nil(suite.T(), views)
	assert.True(suite.T(), apperrors.IsStorage(err))
}

func (suite *ProductGroupServiceTestSuite) TestBuildGroups_InvalidContext() {
	views, err := suite.service.BuildGroups(context.Background(), 1, models.DisplayContext("sidebar"))

	assert.Nil(suite.T(), views)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidContext)
}

func (suite *ProductGroupServiceTestSuite) TestGetProductLabel_AttributeValue() {
	g := group(1, "Color", 0, true)
	attr := uint64(7)
	g.AttributeID = &attr
	row := relation(10, 1, 2, g, 0)
	p := product(2, "shirt-blue")
	suite.mockRelations.EXPECT().GetRelation(uint64(1), uint64(2), uint64(1)).Return(&row, nil)
	suite.mockProducts.EXPECT().GetByID(uint64(2)).Return(&p, nil)
	suite.mockProducts.EXPECT().GetAttributeValue(uint64(2), attr).Return("Blue", nil)

	label, err := suite.service.GetProductLabel(1, 2, 1)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Blue", label)
}

func (suite *ProductGroupServiceTestSuite) TestGetProductLabel_FallsBackToName() {
	g := group(1, "Color", 0, true)
	attr := uint64(7)
	g.AttributeID = &attr
	row := relation(10, 1, 2, g, 0)
	p := product(2, "shirt-blue")
	suite.mockRelations.EXPECT().GetRelation(uint64(1), uint64(2), uint64(1)).Return(&row, nil)
	suite.mockProducts.EXPECT().GetByID(uint64(2)).Return(&p, nil)
	suite.mockProducts.EXPECT().GetAttributeValue(uint64(2), attr).Return("", nil)

	label, err := suite.service.GetProductLabel(1, 2, 1)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "shirt-blue", label)
}

func (suite *ProductGroupServiceTestSuite) TestGetProductLabel_CurrentProduct() {
	p := product(1, "shirt-red")
	suite.mockGroups.EXPECT().GetByID(uint64(1)).Return(group(1, "Color", 0, true), nil)
	suite.mockRelations.EXPECT().HasRelations(uint64(1), uint64(1)).Return(true, nil)
	suite.mockProducts.EXPECT().GetByID(uint64(1)).Return(&p, nil)

	label, err := suite.service.GetProductLabel(1, 1, 1)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "shirt-red", label)
}

func (suite *ProductGroupServiceTestSuite) TestGetProductLabel_CurrentProductOutsideGroup() {
	suite.mockGroups.EXPECT().GetByID(uint64(1)).Return(group(1, "Color", 0, true), nil)
	suite.mockRelations.EXPECT().HasRelations(uint64(99), uint64(1)).Return(false, nil)

	label, err := suite.service.GetProductLabel(99, 99, 1)

	assert.Equal(suite.T(), "", label)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRelationNotFound)
}

func (suite *ProductGroupServiceTestSuite) TestGetProductSwatchImage_CurrentProductOutsideGroup() {
	suite.mockGroups.EXPECT().GetByID(uint64(1)).Return(group(1, "Color", 0, true), nil)
	suite.mockRelations.EXPECT().HasRelations(uint64(99), uint64(1)).Return(false, nil)

	image, err := suite.service.GetProductSwatchImage(99, 99, 1, "", service.RenderOptions{})

	assert.Nil(suite.T(), image)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *ProductGroupServiceTestSuite) TestGetProductLabel_RelationNotFound() {
	suite.mockRelations.EXPECT().GetRelation(uint64(1), uint64(2), uint64(1)).Return(nil, apperrors.ErrRelationNotFound)

	label, err := suite.service.GetProductLabel(1, 2, 1)

	assert.Equal(suite.T(), "", label)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *ProductGroupServiceTestSuite) TestGetProductLabel_ProductNotFound() {
	g := group(1, "Color", 0, true)
	row := relation(10, 1, 2, g, 0)
	suite.mockRelations.EXPECT().GetRelation(uint64(1), uint64(2), uint64(1)).Return(&row, nil)
	suite.mockProducts.EXPECT().GetByID(uint64(2)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetProductLabel(1, 2, 1)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProductNotFound)
}

func (suite *ProductGroupServiceTestSuite) TestGetProductSwatchImage_TextStyleReturnsNil() {
	g := group(1, "Color", 0, true)
	row := relation(10, 1, 2, g, 0)
	suite.mockRelations.EXPECT().GetRelation(uint64(1), uint64(2), uint64(1)).Return(&row, nil)

	image, err := suite.service.GetProductSwatchImage(1, 2, 1, "thumbnail", service.RenderOptions{Context: models.ContextListing})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), image)
}

func (suite *ProductGroupServiceTestSuite) TestGetProductSwatchImage_FallsBackToFullSize() {
	g := group(1, "Color", 0, true)
	row := relation(10, 1, 2, g, 0)
	p := product(2, "shirt-blue")
	suite.mockRelations.EXPECT().GetRelation(uint64(1), uint64(2), uint64(1)).Return(&row, nil)
	suite.mockProducts.EXPECT().GetByID(uint64(2)).Return(&p, nil)

	image, err := suite.service.GetProductSwatchImage(1, 2, 1, "large", service.RenderOptions{Class: "swatch"})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), image)
	assert.Equal(suite.T(), "https://cdn.example.com/shirt-blue.jpg", image.URL)
	assert.Equal(suite.T(), "large", image.Size)
	assert.Equal(suite.T(), "swatch", image.Class)
	assert.False(suite.T(), image.Custom)
}

func (suite *ProductGroupServiceTestSuite) TestGetProductSwatchImage_CustomImage() {
	g := group(1, "Color", 0, true)
	g.DisplayStyleSingle = models.DisplayStyleImageCustom
	row := relation(10, 1, 2, g, 0)
	row.Settings = models.NewRelationSetting(models.RelationSettingsData{CustomImage: "https://cdn.example.com/custom.png"})
	p := product(2, "shirt-blue")
	suite.mockRelations.EXPECT().GetRelation(uint64(1), uint64(2), uint64(1)).Return(&row, nil)
	suite.mockProducts.EXPECT().GetByID(uint64(2)).Return(&p, nil)

	image, err := suite.service.GetProductSwatchImage(1, 2, 1, "", service.RenderOptions{Context: models.ContextSingle})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), image)
	assert.True(suite.T(), image.Custom)
	assert.Equal(suite.T(), "https://cdn.example.com/custom.png", image.URL)
	assert.Equal(suite.T(), service.DefaultSwatchSize, image.Size)
}

func TestProductGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductGroupServiceTestSuite))
}
