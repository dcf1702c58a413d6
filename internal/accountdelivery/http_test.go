package accountdelivery

import (
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

func randomAccount(id int32, owner string) domain.Account {
	return domain.Account{
		ID:            id,
		Owner:         owner,
		AccountNumber: randompkg.AccountNumber(),
		Type:          randompkg.AccountType(),
		Balance:       randompkg.MoneyAmountBetween(1000, 10_000),
		Status:        domain.AccountStatusActive,
		CreatedAt:     time.Now().Truncate(time.Second).UTC(),
	}
}

func newTestServer(t *testing.T) (*gin.Engine, *MockService, tokenpkg.Maker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	accountService := NewMockService(ctrl)
	accountHandler := NewHandler(accountService)

	server := gin.Default()
	authRoutes := server.Group("/").Use(middleware.AuthMiddleware(tokenMaker))
	authRoutes.GET("/accounts", accountHandler.List)
	authRoutes.GET("/accounts/:id", accountHandler.Get)
	authRoutes.GET("/transactions", accountHandler.Transactions)
	authRoutes.GET("/dashboard", accountHandler.Dashboard)

	return server, accountService, tokenMaker
}

func TestGetAccountAPI(t *testing.T) {
	username := randompkg.Owner()
	otherUsername := randompkg.Owner()

	account := randomAccount(1, username)
	otherAccount := randomAccount(2, otherUsername)

	testCases := []struct {
		name          string
		url           string
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker)
		buildStubs    func(accountService *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "NoAuthorization",
			url:  "/accounts/1",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
			},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "InvalidID",
			url:  "/accounts/0",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				err := middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, username, time.Minute)
				require.NoError(t, err)
			},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NotFound",
			url:  "/accounts/99",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				err := middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, username, time.Minute)
				require.NoError(t, err)
			},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Get(gomock.Any(), gomock.Eq(int32(99))).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "AnotherUsersAccountIsNotFound",
			url:  "/accounts/2",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				err := middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, username, time.Minute)
				require.NoError(t, err)
			},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Get(gomock.Any(), gomock.Eq(int32(2))).
					Times(1).
					Return(otherAccount, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "OK",
			url:  "/accounts/1",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				err := middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, username, time.Minute)
				require.NoError(t, err)
			},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Get(gomock.Any(), gomock.Eq(int32(1))).
					Times(1).
					Return(account, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), account.AccountNumber)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, accountService, tokenMaker := newTestServer(t)
			tc.buildStubs(accountService)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, tokenMaker)
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestListAccountsAPI(t *testing.T) {
	username := randompkg.Owner()
	accounts := []domain.Account{randomAccount(1, username), randomAccount(2, username)}

	server, accountService, tokenMaker := newTestServer(t)

	accountService.EXPECT().
		List(gomock.Any(), gomock.Eq(username)).
		Times(1).
		Return(accounts, nil)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/accounts", nil)
	require.NoError(t, err)

	err = middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, username, time.Minute)
	require.NoError(t, err)

	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), accounts[0].AccountNumber)
	require.Contains(t, recorder.Body.String(), accounts[1].AccountNumber)
}

func TestTransactionsAPI(t *testing.T) {
	username := randompkg.Owner()

	server, accountService, tokenMaker := newTestServer(t)

	accountService.EXPECT().
		RecentEntries(gomock.Any(), gomock.Eq(username), gomock.Eq(int32(transactionsLimit))).
		Times(1).
		Return([]domain.Entry{
			{ID: 1, AccountID: 1, Type: domain.EntryTypeDebit, Amount: "100.00", Category: "transfer"},
		}, nil)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/transactions", nil)
	require.NoError(t, err)

	err = middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, username, time.Minute)
	require.NoError(t, err)

	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "transfer")
}

func TestDashboardAPI(t *testing.T) {
	username := randompkg.Owner()

	testCases := []struct {
		name          string
		buildStubs    func(accountService *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Dashboard(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(domain.Dashboard{
						TotalBalance:    "6000.50",
						MonthlyDeposits: "250.00",
						MonthlyExpenses: "75.25",
					}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), "6000.50")
			},
		},
		{
			name: "InternalError",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Dashboard(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(domain.Dashboard{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, accountService, tokenMaker := newTestServer(t)
			tc.buildStubs(accountService)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, "/dashboard", nil)
			require.NoError(t, err)

			err = middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, username, time.Minute)
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}
