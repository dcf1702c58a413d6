package transferdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/middleware"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/randompkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/tokenpkg"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func randomAccount(owner string) domain.Account {
	return domain.Account{
		ID:            randompkg.IntBetween(1, 100),
		Owner:         owner,
		AccountNumber: randompkg.AccountNumber(),
		Type:          randompkg.AccountType(),
		Balance:       randompkg.MoneyAmountBetween(1000, 10_000),
		Status:        domain.AccountStatusActive,
		CreatedAt:     time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreateTransferAPI(t *testing.T) {
	testUsername1 := randompkg.Owner()
	testUsername2 := randompkg.Owner()

	testAccount1 := randomAccount(testUsername1)
	testAccount2 := randomAccount(testUsername2)
	amount := "100"

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transferService := NewMockService(ctrl)
	transferHandler := NewHandler(transferService)

	server := gin.Default()
	url := "/transfer"

	server.Use(middleware.AuthMiddleware(tokenMaker))
	server.POST(url, transferHandler.Create)

	testCases := []struct {
		name          string
		requestBody   gin.H
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker)
		buildStubs    func(transferService *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "NoAuthorization",
			requestBody: gin.H{
				"fromAccountId":   testAccount1.ID,
				"toAccountNumber": testAccount2.AccountNumber,
				"amount":          amount,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "InvalidBindFromAccountID",
			requestBody: gin.H{
				"fromAccountId":   0,
				"toAccountNumber": testAccount2.AccountNumber,
				"amount":          amount,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				err := middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, testUsername1, time.Minute)
				require.NoError(t, err)
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "MissingToAccountNumber",
			requestBody: gin.H{
				"fromAccountId": testAccount1.ID,
				"amount":        amount,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				err := middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, testUsername1, time.Minute)
				require.NoError(t, err)
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InsufficientBalance",
			requestBody: gin.H{
				"fromAccountId":   testAccount1.ID,
				"toAccountNumber": testAccount2.AccountNumber,
				"amount":          "100000000",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				err := middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, testUsername1, time.Minute)
				require.NoError(t, err)
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(testUsername1), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrInsufficientBalance)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				require.Contains(t, recorder.Body.String(), domain.ErrInsufficientBalance.Error())
			},
		},
		{
			name: "SourceAccountNotFound",
			requestBody: gin.H{
				"fromAccountId":   testAccount2.ID,
				"toAccountNumber": testAccount1.AccountNumber,
				"amount":          amount,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				err := middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, testUsername1, time.Minute)
				require.NoError(t, err)
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(testUsername1), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrAccountNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"fromAccountId":   testAccount1.ID,
				"toAccountNumber": testAccount2.AccountNumber,
				"amount":          amount,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				err := middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, testUsername1, time.Minute)
				require.NoError(t, err)
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(testUsername1), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			requestBody: gin.H{
				"fromAccountId":   testAccount1.ID,
				"toAccountNumber": testAccount2.AccountNumber,
				"amount":          amount,
				"description":     "rent",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				err := middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, testUsername1, time.Minute)
				require.NoError(t, err)
			},
			buildStubs: func(transferService *MockService) {
				arg := domain.TransferParams{
					FromAccountID:   testAccount1.ID,
					ToAccountNumber: testAccount2.AccountNumber,
					Amount:          amount,
					Description:     "rent",
				}

				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(testUsername1), gomock.Eq(arg)).
					Times(1).
					Return(domain.TransferTxResult{FromAccount: testAccount1}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), "Transfer completed successfully")
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			tc.buildStubs(transferService)

			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
			require.NoError(t, err)

			tc.setupAuth(t, request, tokenMaker)
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}
