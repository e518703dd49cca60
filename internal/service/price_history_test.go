package service_test

import (
	"errors"
	"testing"
	"time"

	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/mocks"
	"product-relations-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PriceHistoryServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockPriceHistoryRepositoryInterface
	service  *service.PriceHistoryService
}

func (suite *PriceHistoryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPriceHistoryRepositoryInterface(suite.ctrl)
	suite.service = service.NewPriceHistoryService(suite.mockRepo, validator.New(), 30)
}

func (suite *PriceHistoryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PriceHistoryServiceTestSuite) TestRecordPrice_FirstEntry() {
	suite.mockRepo.EXPECT().Latest(uint64(1)).Return(nil, nil)
	suite.mockRepo.EXPECT().Record(gomock.Any()).DoAndReturn(func(e *models.PriceHistoryEntry) error {
		e.ID = 1
		return nil
	})

	resp, err := suite.service.RecordPrice(1, &service.RecordPriceRequest{Price: 19.99, Currency: "eur"})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Recorded)
	assert.Equal(suite.T(), "EUR", resp.Entry.Currency)
	assert.False(suite.T(), resp.Entry.RecordedAt.IsZero())
}

func (suite *PriceHistoryServiceTestSuite) TestRecordPrice_UnchangedIsSkipped() {
	latest := &models.PriceHistoryEntry{ID: 3, ProductID: 1, Price: 19.99, Currency: "EUR", RecordedAt: time.Now()}
	suite.mockRepo.EXPECT().Latest(uint64(1)).Return(latest, nil)

	resp, err := suite.service.RecordPrice(1, &service.RecordPriceRequest{Price: 19.99})

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Recorded)
	assert.Equal(suite.T(), uint64(3), resp.Entry.ID)
}

func (suite *PriceHistoryServiceTestSuite) TestRecordPrice_RegularPriceChange() {
	regular := 25.0
	latest := &models.PriceHistoryEntry{ID: 3, ProductID: 1, Price: 19.99, Currency: "EUR"}
	suite.mockRepo.EXPECT().Latest(uint64(1)).Return(latest, nil)
	suite.mockRepo.EXPECT().Record(gomock.Any()).Return(nil)

	resp, err := suite.service.RecordPrice(1, &service.RecordPriceRequest{Price: 19.99, RegularPrice: &regular})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Recorded)
}

func (suite *PriceHistoryServiceTestSuite) TestRecordPrice_NegativePrice() {
	_, err := suite.service.RecordPrice(1, &service.RecordPriceRequest{Price: -1})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PriceHistoryServiceTestSuite) TestLowestPrice_DefaultWindow() {
	entry := &models.PriceHistoryEntry{ID: 2, ProductID: 1, Price: 14.5, Currency: "EUR"}
	suite.mockRepo.EXPECT().LowestSince(uint64(1), gomock.Any()).DoAndReturn(func(_ uint64, since time.Time) (*models.PriceHistoryEntry, error) {
		assert.WithinDuration(suite.T(), time.Now().UTC().AddDate(0, 0, -30), since, time.Minute)
		return entry, nil
	})

	resp, err := suite.service.LowestPrice(1, 0)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 30, resp.Days)
	require.NotNil(suite.T(), resp.Lowest)
	assert.InDelta(suite.T(), 14.5, resp.Lowest.Price, 0.0001)
}

func (suite *PriceHistoryServiceTestSuite) TestLowestPrice_NoEntries() {
	suite.mockRepo.EXPECT().LowestSince(uint64(1), gomock.Any()).Return(nil, nil)

	resp, err := suite.service.LowestPrice(1, 7)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.Lowest)
}

func (suite *PriceHistoryServiceTestSuite) TestLowestPrice_InvalidPeriod() {
	_, err := suite.service.LowestPrice(1, 400)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPeriod)
}

func (suite *PriceHistoryServiceTestSuite) TestLowestPrice_RepositoryError() {
	suite.mockRepo.EXPECT().LowestSince(uint64(1), gomock.Any()).Return(nil, errors.New("db failed"))

	resp, err := suite.service.LowestPrice(1, 7)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *PriceHistoryServiceTestSuite) TestGetHistory() {
	entries := []models.PriceHistoryEntry{
		{ID: 3, ProductID: 1, Price: 12, Currency: "EUR"},
		{ID: 2, ProductID: 1, Price: 15, Currency: "EUR"},
	}
	suite.mockRepo.EXPECT().GetByProduct(uint64(1), 2, 2).Return(entries, int64(5), nil)

	resp, err := suite.service.GetHistory(1, 2, 2)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), resp.Total)
	require.Len(suite.T(), resp.Entries, 2)
	assert.Equal(suite.T(), uint64(3), resp.Entries[0].ID)
}

func (suite *PriceHistoryServiceTestSuite) TestGetHistory_PaginationDefaults() {
	suite.mockRepo.EXPECT().GetByProduct(uint64(1), 20, 0).Return(nil, int64(0), nil)

	resp, err := suite.service.GetHistory(1, 0, 500)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Empty(suite.T(), resp.Entries)
}

func (suite *PriceHistoryServiceTestSuite) TestPurgeHistory() {
	suite.mockRepo.EXPECT().PurgeBefore(gomock.Any()).DoAndReturn(func(before time.Time) (int64, error) {
		assert.WithinDuration(suite.T(), time.Now().UTC().AddDate(0, 0, -90), before, time.Minute)
		return 4, nil
	})

	resp, err := suite.service.PurgeHistory(90)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(4), resp.Deleted)
}

func (suite *PriceHistoryServiceTestSuite) TestPurgeHistory_InsideLookbackWindow() {
	_, err := suite.service.PurgeHistory(10)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestPriceHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PriceHistoryServiceTestSuite))
}
