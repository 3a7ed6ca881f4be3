// Package middleware provides gin middleware for authentication,
// authorization and request logging.
package middleware

import (
	"context"
	"errors"

	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/jsonresponse"
	"github.com/swiftpay/swiftpay/pkg/tokenpkg"
)

const (
	// AuthHeaderKey is the header carrying the access token.
	// The token is sent bare, without a "Bearer " prefix; this is the
	// historical client contract.
	AuthHeaderKey = "Authorization"
	// AuthPayloadKey is the gin context key holding the verified token payload.
	AuthPayloadKey = "authorization_payload"
)

var (
	// ErrMissingToken indicates a request without an Authorization header.
	ErrMissingToken = errors.New("authorization header is not provided")
	// ErrForbidden indicates a role or flag check failure.
	ErrForbidden = errors.New("forbidden access")
)

// Auth verifies the bare access token and stores its payload in the context.
func Auth(tokenMaker tokenpkg.Maker) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		token := gctx.GetHeader(AuthHeaderKey)
		if token == "" {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, jsonresponse.Error(ErrMissingToken))
			return
		}

		payload, err := tokenMaker.VerifyToken(token)
		if err != nil {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, jsonresponse.Error(err))
			return
		}

		gctx.Set(AuthPayloadKey, payload)
		gctx.Next()
	}
}

// AccountGetter is the account lookup needed by the role gate.
type AccountGetter interface {
	Get(ctx context.Context, email string) (domain.Account, error)
}

// RequireRole gates a route on the caller's stored account: the account must
// have the given role, must not be blocked, and, when verified is set, must
// be a verified agent. The account is re-fetched on every request; the
// token's role claim is advisory only.
func RequireRole(accounts AccountGetter, role string, verified bool) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		payload := gctx.MustGet(AuthPayloadKey).(*tokenpkg.Payload)

		account, err := accounts.Get(gctx.Request.Context(), payload.Email)
		if err != nil {
			gctx.AbortWithStatusJSON(http.StatusForbidden, jsonresponse.Error(ErrForbidden))
			return
		}

		if account.Blocked || account.Role != role || (verified && !account.Verified) {
			gctx.AbortWithStatusJSON(http.StatusForbidden, jsonresponse.Error(ErrForbidden))
			return
		}

		gctx.Next()
	}
}
