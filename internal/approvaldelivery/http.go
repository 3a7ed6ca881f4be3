// Package approvaldelivery manages delivery layer of pending transaction approvals.
package approvaldelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/internal/middleware"
	"github.com/swiftpay/swiftpay/pkg/errorspkg"
	"github.com/swiftpay/swiftpay/pkg/jsonresponse"
	"github.com/swiftpay/swiftpay/pkg/tokenpkg"
)

// Service provides service layer interface needed by approval delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package approvaldelivery
type Service interface {
	AcceptCashOut(ctx context.Context, id int64, agentEmail string) (domain.AcceptCashOutResult, error)
	CancelCashOut(ctx context.Context, id int64, agentEmail string) (domain.Transaction, error)
	AcceptCashIn(ctx context.Context, id int64, agentEmail string) (domain.AcceptCashInResult, error)
	CancelCashIn(ctx context.Context, id int64, agentEmail string) (domain.Transaction, error)
	PendingCashOuts(ctx context.Context, agentEmail string) ([]domain.Transaction, error)
	PendingCashIns(ctx context.Context, agentEmail string) ([]domain.Transaction, error)
	ListByAgent(ctx context.Context, agentEmail string) ([]domain.Transaction, error)
	ListBySender(ctx context.Context, senderEmail string) ([]domain.Transaction, error)
	ListAll(ctx context.Context) ([]domain.Transaction, error)
}

// Handler facilitates approval delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns approval handler.
func NewHandler(as Service) *Handler {
	return &Handler{
		service: as,
	}
}

func softFail(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrTransactionNotFound,
		domain.ErrTransactionNotPending,
		domain.ErrInsufficientBalance,
		domain.ErrAccountNotFound:
		gctx.JSON(http.StatusOK, jsonresponse.Fail(err.Error()))
		return
	}

	gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
}

type approvalRequest struct {
	ID int64 `json:"_id" binding:"required"`
}

type settleFunc func(ctx context.Context, id int64, agentEmail string) error

// settle binds the shared request shape and runs the given accept or
// cancel operation as the authenticated agent.
func (h *Handler) settle(gctx *gin.Context, run settleFunc, message string) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req approvalRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	if err := run(ctx, req.ID, authPayload.Email); err != nil {
		l.Info().Err(err).Send()

		if err == domain.ErrNotAssignedAgent {
			gctx.JSON(http.StatusForbidden, jsonresponse.Error(middleware.ErrForbidden))
			return
		}

		softFail(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK(message, nil))
}

// AcceptCashOut handles http request to settle a pending cash-out.
func (h *Handler) AcceptCashOut(gctx *gin.Context) {
	h.settle(gctx, func(ctx context.Context, id int64, agentEmail string) error {
		_, err := h.service.AcceptCashOut(ctx, id, agentEmail)
		return err
	}, "Cash out accepted")
}

// CancelCashOut handles http request to cancel a pending cash-out.
func (h *Handler) CancelCashOut(gctx *gin.Context) {
	h.settle(gctx, func(ctx context.Context, id int64, agentEmail string) error {
		_, err := h.service.CancelCashOut(ctx, id, agentEmail)
		return err
	}, "Cash out canceled")
}

// AcceptCashIn handles http request to settle a pending cash-in.
func (h *Handler) AcceptCashIn(gctx *gin.Context) {
	h.settle(gctx, func(ctx context.Context, id int64, agentEmail string) error {
		_, err := h.service.AcceptCashIn(ctx, id, agentEmail)
		return err
	}, "Cash in accepted")
}

// CancelCashIn handles http request to cancel a pending cash-in.
func (h *Handler) CancelCashIn(gctx *gin.Context) {
	h.settle(gctx, func(ctx context.Context, id int64, agentEmail string) error {
		_, err := h.service.CancelCashIn(ctx, id, agentEmail)
		return err
	}, "Cash in canceled")
}

type listFunc func(ctx context.Context, email string) ([]domain.Transaction, error)

// listForEmail serves the per-email list endpoints. The email path
// parameter must match the authenticated account.
func (h *Handler) listForEmail(gctx *gin.Context, list listFunc) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	email := gctx.Param("email")

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	if authPayload.Email != email {
		gctx.JSON(http.StatusForbidden, jsonresponse.Error(middleware.ErrForbidden))
		return
	}

	txns, err := list(ctx, email)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("", txns))
}

// PendingCashOuts handles http request to list pending cash-outs assigned to an agent.
func (h *Handler) PendingCashOuts(gctx *gin.Context) {
	h.listForEmail(gctx, h.service.PendingCashOuts)
}

// PendingCashIns handles http request to list pending cash-ins assigned to an agent.
func (h *Handler) PendingCashIns(gctx *gin.Context) {
	h.listForEmail(gctx, h.service.PendingCashIns)
}

// AgentTransactions handles http request to list an agent's transaction history.
func (h *Handler) AgentTransactions(gctx *gin.Context) {
	h.listForEmail(gctx, h.service.ListByAgent)
}

// UserTransactions handles http request to list a user's transaction history.
func (h *Handler) UserTransactions(gctx *gin.Context) {
	h.listForEmail(gctx, h.service.ListBySender)
}

// AllTransactions handles http request to list every transaction in the system.
func (h *Handler) AllTransactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	txns, err := h.service.ListAll(ctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("", txns))
}
