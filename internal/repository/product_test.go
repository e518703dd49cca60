//go:build integration
// +build integration

package repository

import (
	"testing"

	"product-relations-backend/internal/database/models"
	"product-relations-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductRepositoryTestSuite tests the ProductRepository
type ProductRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProductRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProductRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProductRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProductRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProductRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProductRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertInsertsAndOverwrites tests that upsert keeps the catalog id and refreshes fields
func (suite *ProductRepositoryTestSuite) TestUpsertInsertsAndOverwrites() {
	product := suite.factories.Product.WithName("Linen Shirt")

	suite.Require().NoError(suite.repo.Upsert(product))

	stored, err := suite.repo.GetByID(product.ID)
	suite.Require().NoError(err)
	suite.Equal("Linen Shirt", stored.Name)

	product.Name = "Linen Shirt Blue"
	product.Images = datatypes.NewJSONType(models.ImageSet{models.ImageSizeFull: "https://cdn.example.com/blue.jpg"})
	suite.Require().NoError(suite.repo.Upsert(product))

	stored, err = suite.repo.GetByID(product.ID)
	suite.NoError(err)
	suite.Equal("Linen Shirt Blue", stored.Name)
	suite.Equal("https://cdn.example.com/blue.jpg", stored.ImageURL("thumbnail"))
}

// TestGetByIDNotFound tests retrieving a product that is not mirrored
func (suite *ProductRepositoryTestSuite) TestGetByIDNotFound() {
	product, err := suite.repo.GetByID(1)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(product)
}

// TestGetByIDs tests that only existing products are returned
func (suite *ProductRepositoryTestSuite) TestGetByIDs() {
	a := suite.factories.Product.Create()
	b := suite.factories.Product.Create()
	suite.Require().NoError(suite.repo.Upsert(a))
	suite.Require().NoError(suite.repo.Upsert(b))

	products, err := suite.repo.GetByIDs([]uint64{a.ID, b.ID, 1})

	suite.NoError(err)
	suite.Len(products, 2)

	empty, err := suite.repo.GetByIDs(nil)
	suite.NoError(err)
	suite.Empty(empty)
}

// TestAttributeValues tests storing and overwriting attribute values
func (suite *ProductRepositoryTestSuite) TestAttributeValues() {
	product := suite.factories.Product.Create()
	suite.Require().NoError(suite.repo.Upsert(product))

	value, err := suite.repo.GetAttributeValue(product.ID, 7)
	suite.NoError(err)
	suite.Equal("", value)

	suite.Require().NoError(suite.repo.SetAttributeValue(product.ID, 7, "Blue"))
	suite.Require().NoError(suite.repo.SetAttributeValue(product.ID, 7, "Navy"))

	value, err = suite.repo.GetAttributeValue(product.ID, 7)
	suite.NoError(err)
	suite.Equal("Navy", value)
}

// Run the test suite
func TestProductRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryTestSuite))
}
