// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates internal server error. Handlers return it instead of
// the underlying failure so that store errors are never echoed to clients.
var ErrInternal = errors.New("internal")
