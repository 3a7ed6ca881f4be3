package statsdelivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/swiftpay/swiftpay/internal/domain"
)

func TestStatsAPI(t *testing.T) {
	testCases := []struct {
		name          string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Compute(gomock.Any()).
					Times(1).
					Return(domain.Stats{
						TotalUsers:        10,
						TotalAgents:       3,
						TotalTransactions: 42,
						SystemTotalMoney:  "100500",
						LegacyTotalMoney:  "99000",
					}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var body struct {
					Status            bool   `json:"status"`
					TotalUsers        int64  `json:"totalUser"`
					TotalAgents       int64  `json:"totalAgent"`
					TotalTransactions int64  `json:"totalTransactions"`
					SystemTotalMoney  string `json:"systemTotalMoney"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.True(t, body.Status)
				require.Equal(t, int64(10), body.TotalUsers)
				require.Equal(t, int64(3), body.TotalAgents)
				require.Equal(t, int64(42), body.TotalTransactions)
				require.Equal(t, "100500", body.SystemTotalMoney)
			},
		},
		{
			name: "Service error",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Compute(gomock.Any()).
					Times(1).
					Return(domain.Stats{}, errors.New("db is down"))
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			statsService := NewMockService(ctrl)
			tc.buildStubs(statsService)

			statsHandler := NewHandler(statsService)

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()
			server.GET("/admin/stats", statsHandler.Stats)

			request, err := http.NewRequest(http.MethodGet, "/admin/stats", nil)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			tc.checkResponse(recorder)
		})
	}
}
