// Package transferdelivery manages delivery layer of balance transfers.
package transferdelivery

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/internal/middleware"
	"github.com/swiftpay/swiftpay/pkg/errorspkg"
	"github.com/swiftpay/swiftpay/pkg/jsonresponse"
	"github.com/swiftpay/swiftpay/pkg/tokenpkg"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	SendMoney(ctx context.Context, senderEmail, receiverPhone, amount, pin string) (domain.SendMoneyResult, error)
	RequestCashOut(ctx context.Context, senderEmail, agentEmail, amount, pin string) (domain.Transaction, error)
	RequestCashIn(ctx context.Context, senderEmail, agentEmail, amount string) (domain.Transaction, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

// softFail maps domain errors to the soft failure contract; anything
// unrecognized becomes an opaque 500.
func softFail(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrInvalidAmount,
		domain.ErrInsufficientBalance,
		domain.ErrSelfTransfer,
		domain.ErrReceiverNotFound,
		domain.ErrAgentAccountNotFound,
		domain.ErrAccountNotFound,
		domain.ErrInvalidPIN:
		gctx.JSON(http.StatusOK, jsonresponse.Fail(err.Error()))
		return
	}

	gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
}

type sendMoneyRequest struct {
	Amount        json.Number `json:"amount" binding:"required"`
	ReceiverPhone string      `json:"receiverPhoneNumber" binding:"required"`
	SenderEmail   string      `json:"senderEmail" binding:"required,email"`
	PIN           string      `json:"pin" binding:"required"`
}

type sendMoneyResponse struct {
	Status       bool   `json:"status"`
	Message      string `json:"message"`
	SendMoneyFee string `json:"sendMoneyFee"`
}

// SendMoney handles http request to transfer money between two users.
func (h *Handler) SendMoney(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req sendMoneyRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	if authPayload.Email != req.SenderEmail {
		gctx.JSON(http.StatusForbidden, jsonresponse.Error(middleware.ErrForbidden))
		return
	}

	result, err := h.service.SendMoney(ctx, req.SenderEmail, req.ReceiverPhone, req.Amount.String(), req.PIN)
	if err != nil {
		l.Info().Err(err).Send()
		softFail(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, sendMoneyResponse{
		Status:       true,
		Message:      "Money sent successfully!",
		SendMoneyFee: result.Transaction.Fee,
	})
}

type cashOutRequest struct {
	Amount      json.Number `json:"amount" binding:"required"`
	PIN         string      `json:"pin" binding:"required"`
	SenderEmail string      `json:"senderEmail" binding:"required,email"`
	AgentEmail  string      `json:"agentEmail" binding:"required,email"`
}

type cashOutResponse struct {
	Status  bool               `json:"status"`
	Result  domain.Transaction `json:"result"`
	Message string             `json:"message"`
}

// CashOut handles http request to create a pending cash-out request.
// No balance moves until an agent accepts it.
func (h *Handler) CashOut(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req cashOutRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	if authPayload.Email != req.SenderEmail {
		gctx.JSON(http.StatusForbidden, jsonresponse.Error(middleware.ErrForbidden))
		return
	}

	result, err := h.service.RequestCashOut(ctx, req.SenderEmail, req.AgentEmail, req.Amount.String(), req.PIN)
	if err != nil {
		l.Info().Err(err).Send()
		softFail(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, cashOutResponse{
		Status:  true,
		Result:  result,
		Message: "Cash out request submitted",
	})
}

type cashInRequest struct {
	Amount      json.Number `json:"amount" binding:"required"`
	SenderEmail string      `json:"senderEmail" binding:"required,email"`
	AgentEmail  string      `json:"agentEmail" binding:"required,email"`
}

type cashInResponse struct {
	Status      bool               `json:"status"`
	InsertedDoc domain.Transaction `json:"insertedDoc"`
	Message     string             `json:"message"`
}

// CashIn handles http request to create a pending cash-in request.
func (h *Handler) CashIn(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req cashInRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	if authPayload.Email != req.SenderEmail {
		gctx.JSON(http.StatusForbidden, jsonresponse.Error(middleware.ErrForbidden))
		return
	}

	result, err := h.service.RequestCashIn(ctx, req.SenderEmail, req.AgentEmail, req.Amount.String())
	if err != nil {
		l.Info().Err(err).Send()
		softFail(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, cashInResponse{
		Status:      true,
		InsertedDoc: result,
		Message:     "Cash in request submitted",
	})
}
