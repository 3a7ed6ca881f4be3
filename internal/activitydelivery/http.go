// Package activitydelivery manages delivery layer of activity records.
package activitydelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/errorspkg"
	"github.com/swiftpay/swiftpay/pkg/jsonresponse"
)

// Service provides service layer interface needed by activity delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package activitydelivery
type Service interface {
	Record(ctx context.Context, email, action, detail string) (domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
}

// Handler facilitates activity delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns activity handler.
func NewHandler(as Service) *Handler {
	return &Handler{
		service: as,
	}
}

type recordRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Action string `json:"action" binding:"required"`
	Detail string `json:"detail"`
}

// Record handles http request to append an activity record.
func (h *Handler) Record(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req recordRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	activity, err := h.service.Record(ctx, req.Email, req.Action, req.Detail)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("Activity recorded", activity))
}

// List handles http request to list recent activity records.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	activities, err := h.service.List(ctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("", activities))
}
