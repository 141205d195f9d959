// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/models"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	service  *CatalogService
	category *models.Category
	visible  *models.Product
	hidden   *models.Product
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewCatalogService(suite.db)

	suite.category = seedCategory(suite.T(), suite.db, "guitars")
	suite.visible = seedProduct(suite.T(), suite.db, suite.category.ID, "telecaster", 120.00, 4)

	suite.hidden = seedProduct(suite.T(), suite.db, suite.category.ID, "prototype", 999.00, 1)
	require.NoError(suite.T(), suite.db.Model(suite.hidden).
		Update("status", models.CatalogStatusHidden).Error)
}

func (suite *CatalogServiceTestSuite) TestGetActiveCategoriesSkipsHidden() {
	hiddenCat := seedCategory(suite.T(), suite.db, "discontinued")
	require.NoError(suite.T(), suite.db.Model(hiddenCat).
		Update("status", models.CatalogStatusHidden).Error)

	categories, err := suite.service.GetActiveCategories()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), categories, 1)
	assert.Equal(suite.T(), "guitars", categories[0].Slug)
}

func (suite *CatalogServiceTestSuite) TestGetCategoryProducts() {
	category, products, err := suite.service.GetCategoryProducts("guitars")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.category.ID, category.ID)

	// Hidden products are filtered out of the listing.
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "telecaster", products[0].Slug)
}

func (suite *CatalogServiceTestSuite) TestGetCategoryProductsUnknownSlug() {
	_, _, err := suite.service.GetCategoryProducts("woodwinds")

	var notFound *NotFoundError
	require.ErrorAs(suite.T(), err, &notFound)
	assert.Equal(suite.T(), "category", notFound.Resource)
}

func (suite *CatalogServiceTestSuite) TestGetProductDetail() {
	product, err := suite.service.GetProductDetail("guitars", "telecaster")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.visible.ID, product.ID)
}

func (suite *CatalogServiceTestSuite) TestGetProductDetailHiddenProduct() {
	_, err := suite.service.GetProductDetail("guitars", "prototype")

	var notFound *NotFoundError
	require.ErrorAs(suite.T(), err, &notFound)
	assert.Equal(suite.T(), "product", notFound.Resource)
}

func (suite *CatalogServiceTestSuite) TestSearchProductsCaseInsensitive() {
	products, err := suite.service.SearchProducts("TELE")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "telecaster", products[0].Slug)
}

func (suite *CatalogServiceTestSuite) TestSearchProductsByBrand() {
	products, err := suite.service.SearchProducts("testbrand")
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), products)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
