package approvaldelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/internal/middleware"
	"github.com/swiftpay/swiftpay/pkg/randompkg"
	"github.com/swiftpay/swiftpay/pkg/tokenpkg"
)

func TestAcceptCashOutAPI(t *testing.T) {
	agentEmail := randompkg.Email()

	tokenMaker, err := tokenpkg.NewJWTMaker(randompkg.String(32))
	require.NoError(t, err)

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:        "OK",
			requestBody: gin.H{"_id": 7},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					AcceptCashOut(gomock.Any(), gomock.Eq(int64(7)), gomock.Eq(agentEmail)).
					Times(1).
					Return(domain.AcceptCashOutResult{
						Transaction: domain.Transaction{ID: 7, Status: domain.StatusAccepted},
					}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var body struct {
					Status bool `json:"status"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.True(t, body.Status)
			},
		},
		{
			name:        "MissingID",
			requestBody: gin.H{},
			buildStubs: func(service *MockService) {
				service.EXPECT().AcceptCashOut(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:        "AnotherAgentsTransaction",
			requestBody: gin.H{"_id": 7},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					AcceptCashOut(gomock.Any(), gomock.Eq(int64(7)), gomock.Eq(agentEmail)).
					Times(1).
					Return(domain.AcceptCashOutResult{}, domain.ErrNotAssignedAgent)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:        "AlreadySettledSoftFailure",
			requestBody: gin.H{"_id": 7},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					AcceptCashOut(gomock.Any(), gomock.Eq(int64(7)), gomock.Eq(agentEmail)).
					Times(1).
					Return(domain.AcceptCashOutResult{}, domain.ErrTransactionNotPending)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var body struct {
					Status  bool   `json:"status"`
					Message string `json:"message"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.False(t, body.Status)
				require.Equal(t, domain.ErrTransactionNotPending.Error(), body.Message)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			approvalService := NewMockService(ctrl)
			tc.buildStubs(approvalService)

			approvalHandler := NewHandler(approvalService)

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()
			server.POST("/cash-out/accept", middleware.Auth(tokenMaker), approvalHandler.AcceptCashOut)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/cash-out/accept", bytes.NewReader(body))
			require.NoError(t, err)

			middleware.AddAuthorization(t, request, tokenMaker, agentEmail, domain.RoleAgent, time.Minute)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			tc.checkResponse(recorder)
		})
	}
}

func TestPendingCashOutsAPI(t *testing.T) {
	agentEmail := randompkg.Email()

	tokenMaker, err := tokenpkg.NewJWTMaker(randompkg.String(32))
	require.NoError(t, err)

	testCases := []struct {
		name          string
		tokenEmail    string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:       "OK",
			tokenEmail: agentEmail,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					PendingCashOuts(gomock.Any(), gomock.Eq(agentEmail)).
					Times(1).
					Return([]domain.Transaction{{ID: 1, Status: domain.StatusPending}}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var body struct {
					Status bool                 `json:"status"`
					Data   []domain.Transaction `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.True(t, body.Status)
				require.Len(t, body.Data, 1)
			},
		},
		{
			name:       "OtherAgentForbidden",
			tokenEmail: randompkg.Email(),
			buildStubs: func(service *MockService) {
				service.EXPECT().PendingCashOuts(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			approvalService := NewMockService(ctrl)
			tc.buildStubs(approvalService)

			approvalHandler := NewHandler(approvalService)

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()
			server.GET("/cash-out/request/:email", middleware.Auth(tokenMaker), approvalHandler.PendingCashOuts)

			request, err := http.NewRequest(http.MethodGet, "/cash-out/request/"+agentEmail, nil)
			require.NoError(t, err)

			middleware.AddAuthorization(t, request, tokenMaker, tc.tokenEmail, domain.RoleAgent, time.Minute)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			tc.checkResponse(recorder)
		})
	}
}
