package userdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/randompkg"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func randomUser() (domain.UserWithoutPassword, string) {
	password := randompkg.String(10)

	user := domain.UserWithoutPassword{
		Username:  randompkg.Owner(),
		FullName:  randompkg.Owner(),
		Email:     randompkg.Email(),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}

	return user, password
}

func newTestServer(t *testing.T) (*gin.Engine, *MockService, *MockSessionMaker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userService := NewMockService(ctrl)
	sessionMaker := NewMockSessionMaker(ctrl)
	userHandler := NewHandler(userService, sessionMaker)

	server := gin.Default()
	server.POST("/users", userHandler.Create)
	server.POST("/users/login", userHandler.Login)

	return server, userService, sessionMaker
}

func TestCreateUserAPI(t *testing.T) {
	user, password := randomUser()

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(userService *MockService, sessionMaker *MockSessionMaker)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "InvalidUsername",
			requestBody: gin.H{
				"username": "no spaces allowed",
				"password": password,
				"fullName": user.FullName,
				"email":    user.Email,
			},
			buildStubs: func(userService *MockService, sessionMaker *MockSessionMaker) {
				userService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				sessionMaker.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "ShortPassword",
			requestBody: gin.H{
				"username": user.Username,
				"password": "12345",
				"fullName": user.FullName,
				"email":    user.Email,
			},
			buildStubs: func(userService *MockService, sessionMaker *MockSessionMaker) {
				userService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				sessionMaker.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InvalidEmail",
			requestBody: gin.H{
				"username": user.Username,
				"password": password,
				"fullName": user.FullName,
				"email":    "not-an-email",
			},
			buildStubs: func(userService *MockService, sessionMaker *MockSessionMaker) {
				userService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				sessionMaker.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "UsernameTaken",
			requestBody: gin.H{
				"username": user.Username,
				"password": password,
				"fullName": user.FullName,
				"email":    user.Email,
			},
			buildStubs: func(userService *MockService, sessionMaker *MockSessionMaker) {
				userService.EXPECT().
					Create(gomock.Any(), gomock.Eq(user.Username), gomock.Eq(password), gomock.Eq(user.FullName), gomock.Eq(user.Email)).
					Times(1).
					Return(domain.UserWithoutPassword{}, domain.ErrUsernameAlreadyExists)
				sessionMaker.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "SessionMakerError",
			requestBody: gin.H{
				"username": user.Username,
				"password": password,
				"fullName": user.FullName,
				"email":    user.Email,
			},
			buildStubs: func(userService *MockService, sessionMaker *MockSessionMaker) {
				userService.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(user, nil)
				sessionMaker.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return("", time.Time{}, domain.Session{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			requestBody: gin.H{
				"username": user.Username,
				"password": password,
				"fullName": user.FullName,
				"email":    user.Email,
			},
			buildStubs: func(userService *MockService, sessionMaker *MockSessionMaker) {
				userService.EXPECT().
					Create(gomock.Any(), gomock.Eq(user.Username), gomock.Eq(password), gomock.Eq(user.FullName), gomock.Eq(user.Email)).
					Times(1).
					Return(user, nil)
				sessionMaker.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return("access-token", time.Now().Add(time.Minute), domain.Session{
						Username:     user.Username,
						RefreshToken: "refresh-token",
						ExpiresAt:    time.Now().Add(time.Hour),
					}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), "access-token")
				require.Contains(t, recorder.Body.String(), user.Username)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, userService, sessionMaker := newTestServer(t)
			tc.buildStubs(userService, sessionMaker)

			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestLoginAPI(t *testing.T) {
	user, password := randomUser()

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(userService *MockService, sessionMaker *MockSessionMaker)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "UserNotFound",
			requestBody: gin.H{
				"username": user.Username,
				"password": password,
			},
			buildStubs: func(userService *MockService, sessionMaker *MockSessionMaker) {
				userService.EXPECT().
					CheckPassword(gomock.Any(), gomock.Eq(user.Username), gomock.Eq(password)).
					Times(1).
					Return(domain.UserWithoutPassword{}, domain.ErrUserNotFound)
				sessionMaker.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "WrongPassword",
			requestBody: gin.H{
				"username": user.Username,
				"password": password,
			},
			buildStubs: func(userService *MockService, sessionMaker *MockSessionMaker) {
				userService.EXPECT().
					CheckPassword(gomock.Any(), gomock.Eq(user.Username), gomock.Eq(password)).
					Times(1).
					Return(domain.UserWithoutPassword{}, domain.ErrWrongPassword)
				sessionMaker.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "OK",
			requestBody: gin.H{
				"username": user.Username,
				"password": password,
			},
			buildStubs: func(userService *MockService, sessionMaker *MockSessionMaker) {
				userService.EXPECT().
					CheckPassword(gomock.Any(), gomock.Eq(user.Username), gomock.Eq(password)).
					Times(1).
					Return(user, nil)
				sessionMaker.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return("access-token", time.Now().Add(time.Minute), domain.Session{
						Username:     user.Username,
						RefreshToken: "refresh-token",
						ExpiresAt:    time.Now().Add(time.Hour),
					}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), "refresh-token")
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, userService, sessionMaker := newTestServer(t)
			tc.buildStubs(userService, sessionMaker)

			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}
