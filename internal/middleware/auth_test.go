package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/randompkg"
	"github.com/swiftpay/swiftpay/pkg/tokenpkg"
)

func TestAuth(t *testing.T) {
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewJWTMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewJWTMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	testCases := []struct {
		name           string
		setupAuth      func(t *testing.T, r *http.Request)
		wantStatusCode int
	}{
		{
			name:           "NoAuthorization",
			setupAuth:      func(t *testing.T, r *http.Request) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "ExpiredToken",
			setupAuth: func(t *testing.T, r *http.Request) {
				AddAuthorization(t, r, tokenMaker, "user@swiftpay.io", domain.RoleUser, -time.Minute)
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "GarbageToken",
			setupAuth: func(t *testing.T, r *http.Request) {
				r.Header.Set(AuthHeaderKey, "not-a-token")
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "OK",
			setupAuth: func(t *testing.T, r *http.Request) {
				AddAuthorization(t, r, tokenMaker, "user@swiftpay.io", domain.RoleUser, time.Minute)
			},
			wantStatusCode: http.StatusOK,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.ReleaseMode)
			server := gin.New()

			server.GET("/auth", Auth(tokenMaker), func(gctx *gin.Context) {
				gctx.JSON(http.StatusOK, gin.H{})
			})

			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/auth", nil)
			require.NoError(t, err)

			tc.setupAuth(t, request)
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

type accountGetterFunc func(ctx context.Context, email string) (domain.Account, error)

func (f accountGetterFunc) Get(ctx context.Context, email string) (domain.Account, error) {
	return f(ctx, email)
}

func TestRequireRole(t *testing.T) {
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewJWTMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewJWTMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	email := "agent@swiftpay.io"

	testCases := []struct {
		name           string
		account        domain.Account
		accountErr     error
		role           string
		verified       bool
		wantStatusCode int
	}{
		{
			name:           "OK",
			account:        domain.Account{Email: email, Role: domain.RoleAgent, Verified: true},
			role:           domain.RoleAgent,
			verified:       true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "AccountLookupFails",
			accountErr:     domain.ErrAccountNotFound,
			role:           domain.RoleAgent,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "RoleMismatch",
			account:        domain.Account{Email: email, Role: domain.RoleUser},
			role:           domain.RoleAgent,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "BlockedAccount",
			account:        domain.Account{Email: email, Role: domain.RoleAgent, Verified: true, Blocked: true},
			role:           domain.RoleAgent,
			verified:       true,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "UnverifiedAgent",
			account:        domain.Account{Email: email, Role: domain.RoleAgent},
			role:           domain.RoleAgent,
			verified:       true,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "UnverifiedAgentAllowedWhenNotRequired",
			account:        domain.Account{Email: email, Role: domain.RoleAgent},
			role:           domain.RoleAgent,
			verified:       false,
			wantStatusCode: http.StatusOK,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			accounts := accountGetterFunc(func(ctx context.Context, got string) (domain.Account, error) {
				require.Equal(t, email, got)
				return tc.account, tc.accountErr
			})

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()

			server.GET("/gated",
				Auth(tokenMaker),
				RequireRole(accounts, tc.role, tc.verified),
				func(gctx *gin.Context) {
					gctx.JSON(http.StatusOK, gin.H{})
				})

			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/gated", nil)
			require.NoError(t, err)

			AddAuthorization(t, request, tokenMaker, email, tc.role, time.Minute)
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}
