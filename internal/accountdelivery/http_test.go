package accountdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/randompkg"
	"github.com/swiftpay/swiftpay/pkg/tokenpkg"
)

func newTestHandler(t *testing.T, service Service) (*Handler, tokenpkg.Maker) {
	t.Helper()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		require.NoError(t, v.RegisterValidation("pin", ValidPIN))
	}

	tokenMaker, err := tokenpkg.NewJWTMaker(randompkg.String(32))
	require.NoError(t, err)

	return NewHandler(service, tokenMaker, time.Minute), tokenMaker
}

func TestCreateAPI(t *testing.T) {
	testAccount := domain.Account{
		ID:          1,
		Name:        randompkg.Name(),
		Email:       randompkg.Email(),
		PhoneNumber: randompkg.PhoneNumber(),
		NID:         randompkg.NID(),
		Role:        domain.RoleUser,
		Balance:     domain.UserSeedBalance,
	}

	requestBody := gin.H{
		"name":        testAccount.Name,
		"email":       testAccount.Email,
		"phoneNumber": testAccount.PhoneNumber,
		"nid":         testAccount.NID,
		"pin":         "123456",
		"role":        domain.RoleUser,
	}

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:        "OK",
			requestBody: requestBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(),
						gomock.Eq(testAccount.Name),
						gomock.Eq(testAccount.Email),
						gomock.Eq(testAccount.PhoneNumber),
						gomock.Eq(testAccount.NID),
						gomock.Eq("123456"),
						gomock.Eq(domain.RoleUser)).
					Times(1).
					Return(testAccount, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var body struct {
					Status  bool           `json:"status"`
					User    domain.Account `json:"data"`
					Message string         `json:"message"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.True(t, body.Status)
				require.Equal(t, testAccount.Email, body.User.Email)
			},
		},
		{
			name:        "DuplicateEmailSoftFailure",
			requestBody: requestBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.ErrEmailAlreadyExists)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var body struct {
					Status  bool   `json:"status"`
					Message string `json:"message"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.False(t, body.Status)
				require.Equal(t, domain.ErrEmailAlreadyExists.Error(), body.Message)
			},
		},
		{
			name: "MissingEmail",
			requestBody: gin.H{
				"name":        testAccount.Name,
				"phoneNumber": testAccount.PhoneNumber,
				"nid":         testAccount.NID,
				"pin":         "123456",
				"role":        domain.RoleUser,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "BadPINFormat",
			requestBody: gin.H{
				"name":        testAccount.Name,
				"email":       testAccount.Email,
				"phoneNumber": testAccount.PhoneNumber,
				"nid":         testAccount.NID,
				"pin":         "12345a",
				"role":        domain.RoleUser,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountService := NewMockService(ctrl)
			tc.buildStubs(accountService)

			accountHandler, _ := newTestHandler(t, accountService)

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()
			server.POST("/users", accountHandler.Create)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			tc.checkResponse(recorder)
		})
	}
}

func TestLoginAPI(t *testing.T) {
	testAccount := domain.Account{
		ID:      1,
		Email:   randompkg.Email(),
		Role:    domain.RoleUser,
		Balance: domain.UserSeedBalance,
	}
	pin := randompkg.PIN()
	deviceID := "device-1"

	requestBody := gin.H{
		"email":    testAccount.Email,
		"pin":      pin,
		"deviceId": deviceID,
	}

	testCases := []struct {
		name          string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Login(gomock.Any(), gomock.Eq(testAccount.Email), gomock.Eq(pin), gomock.Eq(deviceID)).
					Times(1).
					Return(testAccount, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var body loginResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.True(t, body.Status)
				require.Equal(t, "Successfully Login", body.Message)
				require.NotNil(t, body.User)
				require.False(t, body.DeviceLogin)
			},
		},
		{
			name: "UnknownAccount",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var body loginResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.False(t, body.Status)
				require.Equal(t, "Invalid Credentials", body.Message)
			},
		},
		{
			name: "WrongPIN",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.ErrInvalidPIN)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var body loginResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.False(t, body.Status)
				require.Equal(t, "Invalid PIN", body.Message)
			},
		},
		{
			name: "DeviceConflict",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.ErrDeviceConflict)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var body loginResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.False(t, body.Status)
				require.True(t, body.DeviceLogin)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountService := NewMockService(ctrl)
			tc.buildStubs(accountService)

			accountHandler, _ := newTestHandler(t, accountService)

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()
			server.POST("/login-user", accountHandler.Login)

			body, err := json.Marshal(requestBody)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/login-user", bytes.NewReader(body))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			tc.checkResponse(recorder)
		})
	}
}

func TestCreateTokenAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountService := NewMockService(ctrl)
	accountHandler, tokenMaker := newTestHandler(t, accountService)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()
	server.POST("/jwt/create", accountHandler.CreateToken)

	email := randompkg.Email()

	body, err := json.Marshal(gin.H{"email": email, "role": domain.RoleUser})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/jwt/create", bytes.NewReader(body))
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

	payload, err := tokenMaker.VerifyToken(res.Token)
	require.NoError(t, err)
	require.Equal(t, email, payload.Email)
	require.Equal(t, domain.RoleUser, payload.Role)
}
