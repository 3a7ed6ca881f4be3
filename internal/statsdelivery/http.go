// Package statsdelivery manages delivery layer of system-wide statistics.
package statsdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/errorspkg"
	"github.com/swiftpay/swiftpay/pkg/jsonresponse"
)

// Service provides service layer interface needed by stats delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package statsdelivery
type Service interface {
	Compute(ctx context.Context) (domain.Stats, error)
}

// Handler facilitates stats delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns stats handler.
func NewHandler(ss Service) *Handler {
	return &Handler{
		service: ss,
	}
}

type statsResponse struct {
	Status bool `json:"status"`
	domain.Stats
}

// Stats handles http request to compute system-wide statistics.
func (h *Handler) Stats(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	stats, err := h.service.Compute(ctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, statsResponse{Status: true, Stats: stats})
}
