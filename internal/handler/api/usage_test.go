//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"minutes-recharge/internal/domain/usage"
	"minutes-recharge/internal/handler/api"
	resdto "minutes-recharge/internal/handler/dto/response"
	"minutes-recharge/tests/common/httptest"
	usecasemock "minutes-recharge/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UsageHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockUsage *usecasemock.MockUsageUseCase
}

func (s *UsageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsage = usecasemock.NewMockUsageUseCase(s.mockCtrl)
	h := api.NewUsageHandler(s.mockUsage)

	s.router.GET("/usage/consumption", withAccount(h.Consumption))
	s.router.GET("/usage/calls", withAccount(h.Calls))
}

func (s *UsageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUsageHandlerSuite(t *testing.T) {
	suite.Run(t, new(UsageHandlerTestSuite))
}

func (s *UsageHandlerTestSuite) TestConsumption() {
	s.Run("success", func() {
		s.mockUsage.EXPECT().ConsumptionSeries(gomock.Any(), "192535", "2025-03-01", "2025-03-03").
			Return(&usage.Series{
				Points: []usage.Point{
					{Date: "2025-03-01", Minutes: 12},
					{Date: "2025-03-02", Minutes: 0},
					{Date: "2025-03-03", Minutes: 3},
				},
				TotalMinutes: 15,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usage/consumption?start=2025-03-01&end=2025-03-03", nil, "bearer-token")

		var response resdto.ConsumptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Points, 3)
		s.Equal(int64(15), response.TotalMinutes)
		s.Equal("2025-03-02", response.Points[1].Date)
	})

	s.Run("error: missing bounds", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usage/consumption?start=2025-03-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("error: range rejected by usecase", func() {
		s.mockUsage.EXPECT().ConsumptionSeries(gomock.Any(), "192535", "2025-03-07", "2025-03-01").
			Return(nil, usage.ErrInvalidDateRange)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usage/consumption?start=2025-03-07&end=2025-03-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usage/consumption?start=2025-03-01&end=2025-03-03", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *UsageHandlerTestSuite) TestCalls() {
	startedAt := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	s.Run("success", func() {
		s.mockUsage.EXPECT().CallHistory(gomock.Any(), "192535", 2, 5).
			Return(&usage.CallHistory{
				Items: []usage.CallRecord{{
					ID:              uuid.New(),
					WorkspaceID:     "192535",
					ContactName:     "Ana Gómez",
					ContactEmail:    "ana@example.com",
					PhoneNumber:     "+573001234567",
					DurationSeconds: 3725,
					StartedAt:       startedAt,
				}},
				Total:      6,
				Page:       2,
				PageSize:   5,
				TotalPages: 2,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usage/calls?page=2&pageSize=5", nil, "bearer-token")

		var response resdto.CallHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal("1:02:05", response.Items[0].Duration)
		s.Equal(int64(6), response.Total)
		s.Equal(2, response.TotalPages)
	})

	s.Run("defaults are left to the usecase", func() {
		s.mockUsage.EXPECT().CallHistory(gomock.Any(), "192535", 0, 0).
			Return(&usage.CallHistory{Page: 1, PageSize: 10}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usage/calls", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"items":[]`)
	})

	s.Run("error: non-numeric page", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usage/calls?page=abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination")
	})
}
