package service_test

import (
	"errors"
	"testing"

	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/mocks"
	"product-relations-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type RelationGroupServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockRelationGroupRepositoryInterface
	mockRelations *mocks.MockRelationRepositoryInterface
	service       *service.RelationGroupService
}

func (suite *RelationGroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockRelationGroupRepositoryInterface(suite.ctrl)
	suite.mockRelations = mocks.NewMockRelationRepositoryInterface(suite.ctrl)
	suite.service = service.NewRelationGroupService(suite.mockRepo, suite.mockRelations, validator.New())
}

func (suite *RelationGroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RelationGroupServiceTestSuite) TestCreateGroup_DefaultsStyles() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.RelationGroup) error {
		g.ID = 12
		return nil
	})

	resp, err := suite.service.CreateGroup(&service.CreateRelationGroupRequest{Name: "Color", DisplayStyleArchive: "text"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint64(12), resp.ID)
	assert.Equal(suite.T(), models.DisplayStyleImageProduct, resp.DisplayStyleSingle)
	assert.Equal(suite.T(), models.DisplayStyleText, resp.DisplayStyleArchive)
}

func (suite *RelationGroupServiceTestSuite) TestCreateGroup_InvalidStyle() {
	resp, err := suite.service.CreateGroup(&service.CreateRelationGroupRequest{Name: "Color", DisplayStyleSingle: "carousel"})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *RelationGroupServiceTestSuite) TestGetGroupByID_NotFound() {
	suite.mockRepo.EXPECT().GetByID(uint64(3)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetGroupByID(3)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRelationGroupNotFound)
}

func (suite *RelationGroupServiceTestSuite) TestGetAllGroups_NormalizesPagination() {
	groups := []models.RelationGroup{{BaseModel: models.BaseModel{ID: 1}, Name: "Color"}}
	suite.mockRepo.EXPECT().GetAll(20, 0).Return(groups, int64(1), nil)

	resp, err := suite.service.GetAllGroups(0, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Len(suite.T(), resp.Groups, 1)
}

func (suite *RelationGroupServiceTestSuite) TestGetAllGroups_RepositoryError() {
	suite.mockRepo.EXPECT().GetAll(10, 10).Return(nil, int64(0), errors.New("db failed"))

	resp, err := suite.service.GetAllGroups(2, 10)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *RelationGroupServiceTestSuite) TestUpdateGroup_PartialFields() {
	name := "Colour"
	hidden := false
	suite.mockRepo.EXPECT().Update(uint64(3), map[string]interface{}{
		"name":            "Colour",
		"display_on_list": false,
	}).Return(nil)
	suite.mockRepo.EXPECT().GetByID(uint64(3)).Return(&models.RelationGroup{BaseModel: models.BaseModel{ID: 3}, Name: "Colour"}, nil)

	resp, err := suite.service.UpdateGroup(3, &service.UpdateRelationGroupRequest{Name: &name, DisplayOnList: &hidden})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Colour", resp.Name)
}

func (suite *RelationGroupServiceTestSuite) TestUpdateGroup_NotFound() {
	name := "Colour"
	suite.mockRepo.EXPECT().Update(uint64(3), gomock.Any()).Return(gorm.ErrRecordNotFound)

	_, err := suite.service.UpdateGroup(3, &service.UpdateRelationGroupRequest{Name: &name})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRelationGroupNotFound)
}

func (suite *RelationGroupServiceTestSuite) TestDeleteGroup_InUse() {
	suite.mockRelations.EXPECT().DeleteGroup(uint64(3), false).Return(&apperrors.GroupInUseError{GroupID: 3, Relations: 4})

	err := suite.service.DeleteGroup(3, false)

	assert.True(suite.T(), apperrors.IsGroupInUse(err))
}

func (suite *RelationGroupServiceTestSuite) TestDeleteGroup_Cascade() {
	suite.mockRelations.EXPECT().DeleteGroup(uint64(3), true).Return(nil)

	assert.NoError(suite.T(), suite.service.DeleteGroup(3, true))
}

func TestRelationGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RelationGroupServiceTestSuite))
}
