package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/swiftpay/swiftpay/pkg/tokenpkg"
)

// AddAuthorization issues a token and sets it on the request for tests.
func AddAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker tokenpkg.Maker,
	email string,
	role string,
	duration time.Duration,
) {
	t.Helper()

	token, _, err := tokenMaker.CreateToken(email, role, duration)
	require.NoError(t, err)

	request.Header.Set(AuthHeaderKey, token)
}
