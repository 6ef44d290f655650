//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"minutes-recharge/internal/domain/transaction"
	"minutes-recharge/internal/handler/api"
	resdto "minutes-recharge/internal/handler/dto/response"
	"minutes-recharge/internal/pkg/errs"
	"minutes-recharge/internal/usecase"
	"minutes-recharge/tests/common/httptest"
	usecasemock "minutes-recharge/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockTx   *usecasemock.MockTransactionUseCase
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTx = usecasemock.NewMockTransactionUseCase(s.mockCtrl)
	s.router.GET("/transactions/:id", api.NewTransactionHandler(s.mockTx).Get)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) TestGet() {
	ref := "workspace_id=66666-minutes=30-timestamp=1741964966535-type=RECARGA_MINUTOS"
	tx := transaction.ProviderTransaction{
		ID:                "12345-1741964999-67890",
		AmountInCents:     3000000,
		Currency:          "COP",
		Status:            transaction.StatusApproved,
		Reference:         ref,
		CreatedAt:         time.Date(2025, 3, 14, 15, 9, 59, 0, time.UTC),
		PaymentMethodType: transaction.MethodCard,
		CardType:          "CREDIT",
		CardBrand:         "VISA",
		CardLastFour:      "4242",
	}
	summary := transaction.NewSummary(tx, decimal.NewFromInt(4000))

	s.Run("success: sandbox lookup", func() {
		s.mockTx.EXPECT().GetSummary(gomock.Any(), "12345-1741964999-67890", "test").Return(summary, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions/12345-1741964999-67890?env=TEST", nil, "")

		var response resdto.TransactionSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("APPROVED", response.Status)
		s.Equal("¡Compra Exitosa!", response.StatusMessage)
		s.Equal("7.5", response.AmountUSD.String())
		s.Equal("30000", response.AmountCOP.String())
		s.Equal("66666", response.WorkspaceID)
		s.Equal(int64(30), response.Minutes)
		s.Equal("CREDIT", response.CardType)
		s.Equal("4242", response.CardLastFour)
	})

	s.Run("error: blank id", func() {
		s.mockTx.EXPECT().GetSummary(gomock.Any(), " ", "").Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions/%20", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Transaction id required")
	})

	s.Run("error: maps lookup errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", err: usecase.ErrTransactionNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Transaction not found"},
			{name: "provider down", err: errs.Mark(errs.New("502 Bad Gateway"), usecase.ErrProviderUnavailable), expectedStatus: http.StatusBadGateway, expectedMsg: "Payment provider unavailable"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockTx.EXPECT().GetSummary(gomock.Any(), "abc", "").Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions/abc", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
